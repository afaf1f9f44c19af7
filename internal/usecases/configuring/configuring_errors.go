package configuring

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig     = errors.New("configuração inválida")
	ErrEmployeeNotFound  = errors.New("colaborador não encontrado")
	ErrClientNotFound    = errors.New("cliente não encontrado")
	ErrGenerateID        = errors.New("erro ao gerar identificador")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// ConfigError carrega o código da API e o registro envolvido
type ConfigError struct {
	Err      error
	Code     string
	RecordID string
	Details  any
}

func (e *ConfigError) Error() string {
	if e.Details != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func NewConfigError(err error, code string, recordID string, details any) *ConfigError {
	return &ConfigError{
		Err:      err,
		Code:     code,
		RecordID: recordID,
		Details:  details,
	}
}
