package backup

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/profitability-api/infrastructure/repository/mocks"
	"github.com/vfg2006/profitability-api/internal/domain"
	"github.com/vfg2006/profitability-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type fakeTransactor struct {
	calls int
}

func (f *fakeTransactor) RunInTransaction(_ context.Context, fn func(*sql.Tx) error) error {
	f.calls++
	return fn(nil)
}

type testDeps struct {
	transactor   *fakeTransactor
	entryRepo    *mocks.MockTimeEntryRepository
	employeeRepo *mocks.MockEmployeeRepository
	clientRepo   *mocks.MockClientRepository
	healthRepo   *mocks.MockHealthInputRepository
}

func newTestService(ctrl *gomock.Controller, now time.Time) (*Service, testDeps) {
	deps := testDeps{
		transactor:   &fakeTransactor{},
		entryRepo:    mocks.NewMockTimeEntryRepository(ctrl),
		employeeRepo: mocks.NewMockEmployeeRepository(ctrl),
		clientRepo:   mocks.NewMockClientRepository(ctrl),
		healthRepo:   mocks.NewMockHealthInputRepository(ctrl),
	}

	return &Service{
		db:                    deps.transactor,
		entryRepository:       deps.entryRepo,
		employeeRepository:    deps.employeeRepo,
		clientRepository:      deps.clientRepo,
		healthInputRepository: deps.healthRepo,
		now:                   func() time.Time { return now },
	}, deps
}

func sampleBackup() *domain.SystemBackup {
	return &domain.SystemBackup{
		Entries: []domain.TimeEntry{
			{ID: "e1", Executor: "Ana", Workspace: "Loja A", Hours: 2, MonthKey: "2025-03"},
		},
		Employees:    []domain.EmployeeConfig{{ID: "emp-1", Name: "Ana"}},
		Clients:      []domain.ClientConfig{{ID: "cli-1", Name: "Loja A"}, {ID: "cli-2", Name: "Loja B"}},
		HealthInputs: []domain.HealthInput{{ClientID: "cli-1", MonthKey: "2025-03"}},
		Timestamp:    time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
		Version:      domain.BackupVersion,
	}
}

func TestService_Export(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, time.April, 2, 9, 0, 0, 0, time.UTC)
	service, deps := newTestService(ctrl, now)
	expected := sampleBackup()

	deps.entryRepo.EXPECT().ListByPeriod(nil).Return(expected.Entries, nil)
	deps.employeeRepo.EXPECT().List().Return(expected.Employees, nil)
	deps.clientRepo.EXPECT().List().Return(expected.Clients, nil)
	deps.healthRepo.EXPECT().ListAll().Return(expected.HealthInputs, nil)

	backup, err := service.Export(context.Background())
	require.NoError(t, err)

	assert.Equal(t, now, backup.Timestamp)
	assert.Equal(t, domain.BackupVersion, backup.Version)
	assert.Len(t, backup.Entries, 1)
	assert.Len(t, backup.Clients, 2)
	assert.Len(t, backup.HealthInputs, 1)
}

func TestService_Export_ErroNoBanco(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, deps := newTestService(ctrl, time.Now())
	deps.entryRepo.EXPECT().ListByPeriod(nil).Return(nil, errors.New("timeout"))

	_, err := service.Export(context.Background())

	var backupErr *BackupError
	require.True(t, errors.As(err, &backupErr))
	assert.Equal(t, apiErrors.ErrDatabaseOperation, backupErr.Code)
	assert.True(t, errors.Is(err, ErrExportBackup))
}

func TestService_Restore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, deps := newTestService(ctrl, time.Now())
	backup := sampleBackup()

	deps.entryRepo.EXPECT().WithTx(gomock.Any()).Return(deps.entryRepo)
	deps.employeeRepo.EXPECT().WithTx(gomock.Any()).Return(deps.employeeRepo)
	deps.clientRepo.EXPECT().WithTx(gomock.Any()).Return(deps.clientRepo)
	deps.healthRepo.EXPECT().WithTx(gomock.Any()).Return(deps.healthRepo)

	gomock.InOrder(
		deps.healthRepo.EXPECT().DeleteAll().Return(int64(3), nil),
		deps.entryRepo.EXPECT().DeleteAll().Return(int64(10), nil),
		deps.employeeRepo.EXPECT().DeleteAll().Return(int64(2), nil),
		deps.clientRepo.EXPECT().DeleteAll().Return(int64(2), nil),
	)
	deps.employeeRepo.EXPECT().Upsert(gomock.Any()).Return(nil).Times(1)
	deps.clientRepo.EXPECT().Upsert(gomock.Any()).Return(nil).Times(2)
	deps.entryRepo.EXPECT().InsertBatch(backup.Entries).Return(nil)
	deps.healthRepo.EXPECT().Upsert(gomock.Any()).Return(nil).Times(1)

	result, err := service.Restore(context.Background(), backup)
	require.NoError(t, err)

	assert.Equal(t, 1, deps.transactor.calls)
	assert.Equal(t, &domain.RestoreResult{Entries: 1, Employees: 1, Clients: 2, HealthInputs: 1}, result)
}

func TestService_Restore_VersaoInvalida(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, deps := newTestService(ctrl, time.Now())

	tests := []struct {
		name   string
		backup *domain.SystemBackup
	}{
		{name: "Backup nulo", backup: nil},
		{name: "Sem versão", backup: &domain.SystemBackup{}},
		{name: "Versão desconhecida", backup: &domain.SystemBackup{Version: "9.9"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Restore(context.Background(), tt.backup)
			assert.True(t, errors.Is(err, ErrInvalidBackup))
		})
	}

	assert.Zero(t, deps.transactor.calls)
}

func TestService_Restore_FalhaNaInsercao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, deps := newTestService(ctrl, time.Now())
	backup := sampleBackup()

	deps.entryRepo.EXPECT().WithTx(gomock.Any()).Return(deps.entryRepo)
	deps.employeeRepo.EXPECT().WithTx(gomock.Any()).Return(deps.employeeRepo)
	deps.clientRepo.EXPECT().WithTx(gomock.Any()).Return(deps.clientRepo)
	deps.healthRepo.EXPECT().WithTx(gomock.Any()).Return(deps.healthRepo)

	deps.healthRepo.EXPECT().DeleteAll().Return(int64(0), nil)
	deps.entryRepo.EXPECT().DeleteAll().Return(int64(0), nil)
	deps.employeeRepo.EXPECT().DeleteAll().Return(int64(0), nil)
	deps.clientRepo.EXPECT().DeleteAll().Return(int64(0), nil)
	deps.employeeRepo.EXPECT().Upsert(gomock.Any()).Return(errors.New("violação de chave"))

	_, err := service.Restore(context.Background(), backup)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRestoreBackup))
	assert.Contains(t, err.Error(), "colaborador emp-1")
}

func TestEncodeDecode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sampleBackup()))
	assert.Contains(t, buf.String(), `"health_inputs"`)

	decoded, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, domain.BackupVersion, decoded.Version)
	assert.Len(t, decoded.Clients, 2)

	_, err = Decode(strings.NewReader("{não é json"))
	assert.True(t, errors.Is(err, ErrInvalidBackup))
}
