package importing

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedFormat = errors.New("formato de arquivo não suportado")
	ErrReadFile          = errors.New("erro ao ler o arquivo")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
	ErrGenerateID        = errors.New("erro ao gerar identificador")
)

// ImportError carrega o código da API e o arquivo envolvido
type ImportError struct {
	Err      error
	Code     string
	Filename string
	Details  string
}

func (e *ImportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

func NewImportError(err error, code string, filename string, details string) *ImportError {
	return &ImportError{
		Err:      err,
		Code:     code,
		Filename: filename,
		Details:  details,
	}
}
