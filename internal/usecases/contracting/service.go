package contracting

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profitability-api/infrastructure/repository"
	"github.com/vfg2006/profitability-api/internal/domain"
	"github.com/vfg2006/profitability-api/pkg/apiErrors"
)

var (
	ErrEmptyContract     = errors.New("texto do contrato vazio")
	ErrClientNotFound    = errors.New("cliente não encontrado")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

type ContractError struct {
	Err      error
	Code     string
	ClientID string
	Details  string
}

func (e *ContractError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ContractError) Unwrap() error {
	return e.Err
}

func NewContractError(err error, code string, clientID string, details string) *ContractError {
	return &ContractError{
		Err:      err,
		Code:     code,
		ClientID: clientID,
		Details:  details,
	}
}

type ContractReader interface {
	Parse(text string) (*domain.ContractHints, error)
	ApplyToClient(clientID string, hints domain.ContractHints) (*domain.ClientConfig, error)
}

type Service struct {
	clientRepository repository.ClientRepository
}

func NewService(clientRepository repository.ClientRepository) ContractReader {
	return &Service{
		clientRepository: clientRepository,
	}
}

func (s *Service) Parse(text string) (*domain.ContractHints, error) {
	if strings.TrimSpace(text) == "" {
		return nil, NewContractError(ErrEmptyContract, apiErrors.ErrMissingRequiredData, "", "")
	}

	hints := ParseContract(text)
	return &hints, nil
}

// ApplyToClient preenche fee, taxa de implantação e início do contrato com os valores encontrados.
// Campos zerados nas sugestões mantêm o valor atual do cliente.
func (s *Service) ApplyToClient(clientID string, hints domain.ContractHints) (*domain.ClientConfig, error) {
	client, err := s.clientRepository.GetByID(clientID)
	if err != nil {
		return nil, NewContractError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, clientID, err.Error())
	}
	if client == nil {
		return nil, NewContractError(ErrClientNotFound, apiErrors.ErrResourceNotFound, clientID, "")
	}

	if hints.RecurringFee > 0 {
		client.DefaultFee = hints.RecurringFee
	}
	if hints.OneTimeFee > 0 {
		client.OneTimeFee = hints.OneTimeFee
	}
	if hints.StartDate != nil && !hints.StartDate.IsZero() {
		start := domain.DateOnly(*hints.StartDate)
		client.ContractStartDate = &start
	}

	if err := s.clientRepository.Upsert(client); err != nil {
		return nil, NewContractError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, clientID, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"client_id":     clientID,
		"recurring_fee": client.DefaultFee,
		"one_time_fee":  client.OneTimeFee,
	}).Info("Dados do contrato aplicados ao cliente")

	return client, nil
}
