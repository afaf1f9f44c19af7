package aggregating

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profitability-api/infrastructure/cache"
	"github.com/vfg2006/profitability-api/infrastructure/repository"
	"github.com/vfg2006/profitability-api/internal/domain"
	"github.com/vfg2006/profitability-api/pkg/apiErrors"
)

// SummaryQuery reúne o período e as opções de apresentação do dashboard
type SummaryQuery struct {
	Filters       domain.SummaryFilters
	ClientSort    ClientSortField
	ClientOrder   SortOrder
	EmployeeSort  EmployeeSortField
	EmployeeOrder SortOrder
	Category      domain.ClientCategory
}

type Profitability interface {
	GetSummary(ctx context.Context, query SummaryQuery) (*domain.Summary, error)
	ListEntries(filters *domain.SummaryFilters) ([]domain.TimeEntry, error)
}

type Service struct {
	entryRepository    repository.TimeEntryRepository
	employeeRepository repository.EmployeeRepository
	clientRepository   repository.ClientRepository
	cache              cache.Cache
}

func NewService(
	entryRepository repository.TimeEntryRepository,
	employeeRepository repository.EmployeeRepository,
	clientRepository repository.ClientRepository,
	summaryCache cache.Cache,
) Profitability {
	if summaryCache == nil {
		summaryCache = cache.Noop{}
	}

	return &Service{
		entryRepository:    entryRepository,
		employeeRepository: employeeRepository,
		clientRepository:   clientRepository,
		cache:              summaryCache,
	}
}

func (s *Service) ListEntries(filters *domain.SummaryFilters) ([]domain.TimeEntry, error) {
	if err := validateFilters(filters); err != nil {
		return nil, err
	}

	entries, err := s.entryRepository.ListByPeriod(filters)
	if err != nil {
		return nil, NewProfitabilityError(ErrFetchEntries, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return entries, nil
}

func (s *Service) GetSummary(ctx context.Context, query SummaryQuery) (*domain.Summary, error) {
	filters := query.Filters
	if err := validateFilters(&filters); err != nil {
		return nil, err
	}

	if query.Category != "" && domain.NormalizeCategory(query.Category) != query.Category {
		return nil, NewProfitabilityError(ErrInvalidCategory, apiErrors.ErrInvalidRequest, string(query.Category))
	}

	entries, err := s.entryRepository.ListByPeriod(&filters)
	if err != nil {
		return nil, NewProfitabilityError(ErrFetchEntries, apiErrors.ErrDatabaseOperation, err.Error())
	}

	employees, err := s.employeeRepository.List()
	if err != nil {
		return nil, NewProfitabilityError(ErrFetchEmployees, apiErrors.ErrDatabaseOperation, err.Error())
	}

	clients, err := s.clientRepository.List()
	if err != nil {
		return nil, NewProfitabilityError(ErrFetchClients, apiErrors.ErrDatabaseOperation, err.Error())
	}

	summary := s.aggregate(ctx, entries, employees, clients, &filters)

	if query.ClientSort != "" {
		SortClients(summary.Clients, query.ClientSort, ParseSortOrder(string(query.ClientOrder)))
	}
	if query.EmployeeSort != "" {
		SortEmployees(summary.Employees, query.EmployeeSort, ParseSortOrder(string(query.EmployeeOrder)))
	}
	summary.Clients = FilterByCategory(summary.Clients, query.Category)

	return &summary, nil
}

// aggregate consulta o cache antes de recalcular; falhas no cache não interrompem a consulta
func (s *Service) aggregate(
	ctx context.Context,
	entries []domain.TimeEntry,
	employees []domain.EmployeeConfig,
	clients []domain.ClientConfig,
	filters *domain.SummaryFilters,
) domain.Summary {
	key, err := cache.Key("summary", entries, employees, clients, filters)
	if err != nil {
		logrus.WithError(err).Warn("Não foi possível gerar a chave de cache do resumo")
		return Aggregate(entries, employees, clients, filters)
	}

	var cached domain.Summary
	found, err := s.cache.GetObject(ctx, key, &cached)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao ler resumo do cache")
	}
	if found {
		logrus.WithField("key", key).Debug("Resumo encontrado no cache")
		return cached
	}

	summary := Aggregate(entries, employees, clients, filters)

	if err := s.cache.SetObject(ctx, key, summary); err != nil {
		logrus.WithError(err).Warn("Erro ao gravar resumo no cache")
	}

	return summary
}

func validateFilters(filters *domain.SummaryFilters) error {
	if filters == nil || filters.StartDate == nil || filters.EndDate == nil {
		return nil
	}
	if filters.StartDate.After(*filters.EndDate) {
		return NewProfitabilityError(
			ErrInvalidPeriod,
			apiErrors.ErrInvalidPeriod,
			fmt.Sprintf("data inicial %s posterior à data final %s",
				filters.StartDate.Format("2006-01-02"), filters.EndDate.Format("2006-01-02")),
		)
	}
	return nil
}
