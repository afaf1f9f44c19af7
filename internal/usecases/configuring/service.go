package configuring

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profitability-api/infrastructure/repository"
	"github.com/vfg2006/profitability-api/internal/domain"
	"github.com/vfg2006/profitability-api/pkg/apiErrors"
	"github.com/vfg2006/profitability-api/pkg/utils"
)

type Configurator interface {
	ListEmployees() ([]domain.EmployeeConfig, error)
	CreateEmployee(employee *domain.EmployeeConfig) (*domain.EmployeeConfig, error)
	UpdateEmployee(id string, employee *domain.EmployeeConfig) (*domain.EmployeeConfig, error)
	ListClients() ([]domain.ClientConfig, error)
	GetClient(id string) (*domain.ClientConfig, error)
	CreateClient(client *domain.ClientConfig) (*domain.ClientConfig, error)
	UpdateClient(id string, client *domain.ClientConfig) (*domain.ClientConfig, error)
}

type Service struct {
	employeeRepository repository.EmployeeRepository
	clientRepository   repository.ClientRepository
	validate           *validator.Validate
	generateID         func() (string, error)
}

func NewService(
	employeeRepository repository.EmployeeRepository,
	clientRepository repository.ClientRepository,
) Configurator {
	return &Service{
		employeeRepository: employeeRepository,
		clientRepository:   clientRepository,
		validate:           utils.NewValidator(),
		generateID:         utils.GenerateID,
	}
}

func (s *Service) ListEmployees() ([]domain.EmployeeConfig, error) {
	employees, err := s.employeeRepository.List()
	if err != nil {
		return nil, NewConfigError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "", err.Error())
	}
	return employees, nil
}

func (s *Service) CreateEmployee(employee *domain.EmployeeConfig) (*domain.EmployeeConfig, error) {
	id, err := s.generateID()
	if err != nil {
		return nil, NewConfigError(ErrGenerateID, apiErrors.ErrInternalServer, "", err.Error())
	}
	employee.ID = id

	return s.saveEmployee(employee)
}

func (s *Service) UpdateEmployee(id string, employee *domain.EmployeeConfig) (*domain.EmployeeConfig, error) {
	existing, err := s.employeeRepository.GetByID(id)
	if err != nil {
		return nil, NewConfigError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, err.Error())
	}
	if existing == nil {
		return nil, NewConfigError(ErrEmployeeNotFound, apiErrors.ErrResourceNotFound, id, nil)
	}

	employee.ID = id
	employee.CreatedAt = existing.CreatedAt

	return s.saveEmployee(employee)
}

func (s *Service) saveEmployee(employee *domain.EmployeeConfig) (*domain.EmployeeConfig, error) {
	normalizeEmployee(employee)

	if err := s.validate.Struct(employee); err != nil {
		return nil, NewConfigError(ErrInvalidConfig, apiErrors.ErrInvalidRequest, employee.ID, utils.ValidationDetails(err))
	}

	if err := s.employeeRepository.Upsert(employee); err != nil {
		return nil, NewConfigError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, employee.ID, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"employee_id": employee.ID,
		"name":        employee.Name,
	}).Info("Configuração de colaborador salva")

	return employee, nil
}

func (s *Service) ListClients() ([]domain.ClientConfig, error) {
	clients, err := s.clientRepository.List()
	if err != nil {
		return nil, NewConfigError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "", err.Error())
	}
	return clients, nil
}

func (s *Service) GetClient(id string) (*domain.ClientConfig, error) {
	client, err := s.clientRepository.GetByID(id)
	if err != nil {
		return nil, NewConfigError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, err.Error())
	}
	if client == nil {
		return nil, NewConfigError(ErrClientNotFound, apiErrors.ErrResourceNotFound, id, nil)
	}
	return client, nil
}

func (s *Service) CreateClient(client *domain.ClientConfig) (*domain.ClientConfig, error) {
	id, err := s.generateID()
	if err != nil {
		return nil, NewConfigError(ErrGenerateID, apiErrors.ErrInternalServer, "", err.Error())
	}
	client.ID = id

	return s.saveClient(client)
}

func (s *Service) UpdateClient(id string, client *domain.ClientConfig) (*domain.ClientConfig, error) {
	existing, err := s.GetClient(id)
	if err != nil {
		return nil, err
	}

	client.ID = id
	client.CreatedAt = existing.CreatedAt

	return s.saveClient(client)
}

func (s *Service) saveClient(client *domain.ClientConfig) (*domain.ClientConfig, error) {
	normalizeClient(client)

	if err := s.validate.Struct(client); err != nil {
		return nil, NewConfigError(ErrInvalidConfig, apiErrors.ErrInvalidRequest, client.ID, utils.ValidationDetails(err))
	}

	if err := s.clientRepository.Upsert(client); err != nil {
		return nil, NewConfigError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, client.ID, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"client_id": client.ID,
		"name":      client.Name,
	}).Info("Configuração de cliente salva")

	return client, nil
}

func normalizeEmployee(employee *domain.EmployeeConfig) {
	employee.Name = strings.TrimSpace(employee.Name)
	if employee.Department == "" {
		employee.Department = domain.DepartmentOthers
	}
	if employee.History == nil {
		employee.History = map[domain.MonthKey]domain.MonthlyCost{}
	}
}

func normalizeClient(client *domain.ClientConfig) {
	client.Name = strings.TrimSpace(client.Name)
	if client.Category == "" {
		client.Category = domain.CategoryExecutar
	}
	if client.History == nil {
		client.History = map[domain.MonthKey]float64{}
	}
	if client.ContractStartDate != nil {
		start := domain.DateOnly(*client.ContractStartDate)
		client.ContractStartDate = &start
	}
}
