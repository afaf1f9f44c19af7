package backup

import (
	"context"
	"database/sql"
	"io"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profitability-api/infrastructure/database/postgres"
	"github.com/vfg2006/profitability-api/infrastructure/repository"
	"github.com/vfg2006/profitability-api/internal/domain"
	"github.com/vfg2006/profitability-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Backuper interface {
	Export(ctx context.Context) (*domain.SystemBackup, error)
	Restore(ctx context.Context, backup *domain.SystemBackup) (*domain.RestoreResult, error)
}

type Service struct {
	db                    postgres.Transactor
	entryRepository       repository.TimeEntryRepository
	employeeRepository    repository.EmployeeRepository
	clientRepository      repository.ClientRepository
	healthInputRepository repository.HealthInputRepository
	now                   func() time.Time
}

func NewService(
	db postgres.Transactor,
	entryRepository repository.TimeEntryRepository,
	employeeRepository repository.EmployeeRepository,
	clientRepository repository.ClientRepository,
	healthInputRepository repository.HealthInputRepository,
) Backuper {
	return &Service{
		db:                    db,
		entryRepository:       entryRepository,
		employeeRepository:    employeeRepository,
		clientRepository:      clientRepository,
		healthInputRepository: healthInputRepository,
		now:                   time.Now,
	}
}

func (s *Service) Export(ctx context.Context) (*domain.SystemBackup, error) {
	entries, err := s.entryRepository.ListByPeriod(nil)
	if err != nil {
		return nil, NewBackupError(ErrExportBackup, apiErrors.ErrDatabaseOperation, err.Error())
	}

	employees, err := s.employeeRepository.List()
	if err != nil {
		return nil, NewBackupError(ErrExportBackup, apiErrors.ErrDatabaseOperation, err.Error())
	}

	clients, err := s.clientRepository.List()
	if err != nil {
		return nil, NewBackupError(ErrExportBackup, apiErrors.ErrDatabaseOperation, err.Error())
	}

	healthInputs, err := s.healthInputRepository.ListAll()
	if err != nil {
		return nil, NewBackupError(ErrExportBackup, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return &domain.SystemBackup{
		Entries:      entries,
		Employees:    employees,
		Clients:      clients,
		HealthInputs: healthInputs,
		Timestamp:    s.now(),
		Version:      domain.BackupVersion,
	}, nil
}

// Restore substitui todas as coleções pelo conteúdo do backup em uma única transação
func (s *Service) Restore(ctx context.Context, backup *domain.SystemBackup) (*domain.RestoreResult, error) {
	if backup == nil || backup.Version == "" {
		return nil, NewBackupError(ErrInvalidBackup, apiErrors.ErrInvalidFormat, "versão ausente")
	}
	if backup.Version != domain.BackupVersion {
		return nil, NewBackupError(ErrInvalidBackup, apiErrors.ErrInvalidFormat, "versão não suportada: "+backup.Version)
	}

	err := s.db.RunInTransaction(ctx, func(tx *sql.Tx) error {
		entryRepo := s.entryRepository.WithTx(tx)
		employeeRepo := s.employeeRepository.WithTx(tx)
		clientRepo := s.clientRepository.WithTx(tx)
		healthRepo := s.healthInputRepository.WithTx(tx)

		if _, err := healthRepo.DeleteAll(); err != nil {
			return err
		}
		if _, err := entryRepo.DeleteAll(); err != nil {
			return err
		}
		if _, err := employeeRepo.DeleteAll(); err != nil {
			return err
		}
		if _, err := clientRepo.DeleteAll(); err != nil {
			return err
		}

		for i := range backup.Employees {
			if err := employeeRepo.Upsert(&backup.Employees[i]); err != nil {
				return errors.Wrapf(err, "colaborador %s", backup.Employees[i].ID)
			}
		}

		for i := range backup.Clients {
			if err := clientRepo.Upsert(&backup.Clients[i]); err != nil {
				return errors.Wrapf(err, "cliente %s", backup.Clients[i].ID)
			}
		}

		if len(backup.Entries) > 0 {
			if err := entryRepo.InsertBatch(backup.Entries); err != nil {
				return errors.Wrap(err, "apontamentos")
			}
		}

		for i := range backup.HealthInputs {
			if err := healthRepo.Upsert(&backup.HealthInputs[i]); err != nil {
				return errors.Wrapf(err, "avaliação %s/%s", backup.HealthInputs[i].ClientID, backup.HealthInputs[i].MonthKey)
			}
		}

		return nil
	})
	if err != nil {
		return nil, NewBackupError(ErrRestoreBackup, apiErrors.ErrDatabaseOperation, err.Error())
	}

	result := &domain.RestoreResult{
		Entries:      len(backup.Entries),
		Employees:    len(backup.Employees),
		Clients:      len(backup.Clients),
		HealthInputs: len(backup.HealthInputs),
	}

	logrus.WithFields(logrus.Fields{
		"entries":       result.Entries,
		"employees":     result.Employees,
		"clients":       result.Clients,
		"health_inputs": result.HealthInputs,
		"backup_date":   backup.Timestamp.Format(time.RFC3339),
	}).Info("Backup restaurado")

	return result, nil
}

// Encode grava o backup como JSON indentado
func Encode(w io.Writer, backup *domain.SystemBackup) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(backup)
}

func Decode(r io.Reader) (*domain.SystemBackup, error) {
	var backup domain.SystemBackup
	if err := json.NewDecoder(r).Decode(&backup); err != nil {
		return nil, NewBackupError(ErrInvalidBackup, apiErrors.ErrInvalidFormat, err.Error())
	}
	return &backup, nil
}
