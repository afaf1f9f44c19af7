package importing

import (
	"context"
	"database/sql"
	"io"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profitability-api/infrastructure/database/postgres"
	"github.com/vfg2006/profitability-api/infrastructure/repository"
	"github.com/vfg2006/profitability-api/internal/domain"
	"github.com/vfg2006/profitability-api/pkg/apiErrors"
	"github.com/vfg2006/profitability-api/pkg/utils"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// DetectFormat usa a extensão do arquivo; arquivos sem extensão conhecida são tratados como CSV
func DetectFormat(filename string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		return FormatXLSX, true
	case ".csv", ".txt", "":
		return FormatCSV, true
	default:
		return "", false
	}
}

type Importer interface {
	Import(ctx context.Context, filename string, content io.Reader) (*domain.ImportResult, error)
}

type Service struct {
	db                 postgres.Transactor
	entryRepository    repository.TimeEntryRepository
	employeeRepository repository.EmployeeRepository
	clientRepository   repository.ClientRepository
	generateID         func() (string, error)
}

func NewService(
	db postgres.Transactor,
	entryRepository repository.TimeEntryRepository,
	employeeRepository repository.EmployeeRepository,
	clientRepository repository.ClientRepository,
) Importer {
	return &Service{
		db:                 db,
		entryRepository:    entryRepository,
		employeeRepository: employeeRepository,
		clientRepository:   clientRepository,
		generateID:         utils.GenerateID,
	}
}

// Import substitui os apontamentos do intervalo coberto pelo arquivo e cadastra
// executores e workspaces ainda desconhecidos com a configuração padrão.
func (s *Service) Import(ctx context.Context, filename string, content io.Reader) (*domain.ImportResult, error) {
	log := logrus.WithField("filename", filename)

	parsed, err := s.parse(filename, content)
	if err != nil {
		return nil, err
	}

	result := &domain.ImportResult{
		Skipped:      parsed.Skipped,
		NewEmployees: []string{},
		NewClients:   []string{},
	}

	if len(parsed.Entries) == 0 {
		log.WithField("skipped", parsed.Skipped).Warn("Nenhum apontamento válido encontrado no arquivo")
		return result, nil
	}

	employees, err := s.employeeRepository.List()
	if err != nil {
		return nil, NewImportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, filename, err.Error())
	}

	clients, err := s.clientRepository.List()
	if err != nil {
		return nil, NewImportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, filename, err.Error())
	}

	discovery, err := s.resolve(parsed.Entries, employees, clients)
	if err != nil {
		return nil, NewImportError(ErrGenerateID, apiErrors.ErrInternalServer, filename, err.Error())
	}

	start, end, _ := domain.EntriesRange(parsed.Entries)

	err = s.db.RunInTransaction(ctx, func(tx *sql.Tx) error {
		employeeRepo := s.employeeRepository.WithTx(tx)
		for i := range discovery.employees {
			if err := employeeRepo.Upsert(&discovery.employees[i]); err != nil {
				return errors.Wrapf(err, "erro ao cadastrar colaborador %s", discovery.employees[i].Name)
			}
		}

		clientRepo := s.clientRepository.WithTx(tx)
		for i := range discovery.clients {
			if err := clientRepo.Upsert(&discovery.clients[i]); err != nil {
				return errors.Wrapf(err, "erro ao cadastrar cliente %s", discovery.clients[i].Name)
			}
		}

		entryRepo := s.entryRepository.WithTx(tx)
		replaced, err := entryRepo.DeleteByPeriod(start, end)
		if err != nil {
			return errors.Wrap(err, "erro ao remover apontamentos do período")
		}
		result.Replaced = replaced

		if err := entryRepo.InsertBatch(parsed.Entries); err != nil {
			return errors.Wrap(err, "erro ao inserir apontamentos")
		}

		return nil
	})
	if err != nil {
		log.WithError(err).Error("Erro ao gravar importação")
		return nil, NewImportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, filename, err.Error())
	}

	for _, e := range discovery.employees {
		result.NewEmployees = append(result.NewEmployees, e.Name)
	}
	for _, c := range discovery.clients {
		result.NewClients = append(result.NewClients, c.Name)
	}
	result.Imported = len(parsed.Entries)
	result.SuggestedStartDate = &start
	result.SuggestedEndDate = &end

	log.WithFields(logrus.Fields{
		"imported":      result.Imported,
		"replaced":      result.Replaced,
		"skipped":       result.Skipped,
		"new_employees": len(result.NewEmployees),
		"new_clients":   len(result.NewClients),
		"start_date":    start.Format("2006-01-02"),
		"end_date":      end.Format("2006-01-02"),
	}).Info("Importação concluída")

	return result, nil
}

func (s *Service) parse(filename string, content io.Reader) (ParseResult, error) {
	format, ok := DetectFormat(filename)
	if !ok {
		return ParseResult{}, NewImportError(ErrUnsupportedFormat, apiErrors.ErrInvalidFormat, filename, filepath.Ext(filename))
	}

	var (
		parsed ParseResult
		err    error
	)
	switch format {
	case FormatXLSX:
		parsed, err = ParseXLSX(content)
	default:
		parsed, err = ParseCSV(content)
	}
	if err != nil {
		return ParseResult{}, NewImportError(ErrReadFile, apiErrors.ErrInvalidFormat, filename, err.Error())
	}

	return parsed, nil
}

type discovery struct {
	employees []domain.EmployeeConfig
	clients   []domain.ClientConfig
}

// resolve associa cada apontamento ao ID do colaborador e do cliente pelo nome,
// criando configurações padrão para nomes ainda não cadastrados
func (s *Service) resolve(
	entries []domain.TimeEntry,
	employees []domain.EmployeeConfig,
	clients []domain.ClientConfig,
) (discovery, error) {
	found := discovery{}

	employeeIDs := make(map[string]string, len(employees))
	for _, e := range employees {
		employeeIDs[nameKey(e.Name)] = e.ID
	}

	clientIDs := make(map[string]string, len(clients))
	for _, c := range clients {
		clientIDs[nameKey(c.Name)] = c.ID
	}

	for i := range entries {
		entry := &entries[i]

		id, err := s.generateID()
		if err != nil {
			return discovery{}, err
		}
		entry.ID = id

		if entry.Executor != "" {
			key := nameKey(entry.Executor)
			employeeID, ok := employeeIDs[key]
			if !ok {
				if employeeID, err = s.generateID(); err != nil {
					return discovery{}, err
				}
				employeeIDs[key] = employeeID
				found.employees = append(found.employees, domain.NewDiscoveredEmployee(employeeID, entry.Executor))
			}
			entry.EmployeeID = employeeID
		}

		if entry.Workspace != "" {
			key := nameKey(entry.Workspace)
			clientID, ok := clientIDs[key]
			if !ok {
				if clientID, err = s.generateID(); err != nil {
					return discovery{}, err
				}
				clientIDs[key] = clientID
				found.clients = append(found.clients, domain.NewDiscoveredClient(clientID, entry.Workspace))
			}
			entry.ClientID = clientID
		}
	}

	return found, nil
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
