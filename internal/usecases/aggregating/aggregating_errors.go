package aggregating

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPeriod   = errors.New("período inválido")
	ErrFetchEntries    = errors.New("erro ao buscar apontamentos")
	ErrFetchEmployees  = errors.New("erro ao buscar colaboradores")
	ErrFetchClients    = errors.New("erro ao buscar clientes")
	ErrInvalidCategory = errors.New("categoria inválida")
)

// ProfitabilityError carrega o código da API junto do erro base
type ProfitabilityError struct {
	Err     error
	Code    string
	Details string
}

func (e *ProfitabilityError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ProfitabilityError) Unwrap() error {
	return e.Err
}

func NewProfitabilityError(err error, code string, details string) *ProfitabilityError {
	return &ProfitabilityError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
