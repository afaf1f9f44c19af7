package scoring

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput       = errors.New("avaliação inválida")
	ErrInvalidMonth       = errors.New("mês inválido")
	ErrClientNotFound     = errors.New("cliente não encontrado")
	ErrEvaluationNotFound = errors.New("avaliação não encontrada")
	ErrDatabaseOperation  = errors.New("erro ao realizar operação no banco de dados")
)

// HealthError é um erro com contexto da avaliação de saúde
type HealthError struct {
	Err      error
	Code     string
	ClientID string
	Details  any
}

func (e *HealthError) Error() string {
	if e.Details != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *HealthError) Unwrap() error {
	return e.Err
}

func NewHealthError(err error, code string, details any) *HealthError {
	return &HealthError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewClientHealthError(err error, code string, clientID string, details any) *HealthError {
	return &HealthError{
		Err:      err,
		Code:     code,
		ClientID: clientID,
		Details:  details,
	}
}
