package handler

import (
	"context"
	"io"
	"net/http"
	"sync"

	"github.com/vfg2006/profitability-api/internal/api/handler/router"
	"github.com/vfg2006/profitability-api/internal/domain"
	"github.com/vfg2006/profitability-api/internal/usecases/aggregating"
)

type fakeAuthenticator struct {
	token string
	user  *domain.User
	err   error
}

func (f *fakeAuthenticator) Login(_ string) (string, *domain.User, error) {
	return f.token, f.user, f.err
}

func (f *fakeAuthenticator) ValidateToken(_ string) (*domain.Claims, error) {
	return nil, f.err
}

func (f *fakeAuthenticator) Profile(claims *domain.Claims) *domain.User {
	return &domain.User{Email: claims.UserEmail, RoleID: claims.UserRoleID, IsMaster: claims.IsMaster()}
}

type fakeProfitability struct {
	summary    *domain.Summary
	entries    []domain.TimeEntry
	err        error
	lastQuery  aggregating.SummaryQuery
	lastFilter *domain.SummaryFilters
}

func (f *fakeProfitability) GetSummary(_ context.Context, query aggregating.SummaryQuery) (*domain.Summary, error) {
	f.lastQuery = query
	return f.summary, f.err
}

func (f *fakeProfitability) ListEntries(filters *domain.SummaryFilters) ([]domain.TimeEntry, error) {
	f.lastFilter = filters
	return f.entries, f.err
}

type fakeConfigurator struct {
	clients    []domain.ClientConfig
	err        error
	lastID     string
	lastClient *domain.ClientConfig
}

func (f *fakeConfigurator) ListEmployees() ([]domain.EmployeeConfig, error) {
	return []domain.EmployeeConfig{}, f.err
}

func (f *fakeConfigurator) CreateEmployee(employee *domain.EmployeeConfig) (*domain.EmployeeConfig, error) {
	return employee, f.err
}

func (f *fakeConfigurator) UpdateEmployee(id string, employee *domain.EmployeeConfig) (*domain.EmployeeConfig, error) {
	f.lastID = id
	return employee, f.err
}

func (f *fakeConfigurator) ListClients() ([]domain.ClientConfig, error) {
	return f.clients, f.err
}

func (f *fakeConfigurator) GetClient(id string) (*domain.ClientConfig, error) {
	f.lastID = id
	return nil, f.err
}

func (f *fakeConfigurator) CreateClient(client *domain.ClientConfig) (*domain.ClientConfig, error) {
	f.lastClient = client
	return client, f.err
}

func (f *fakeConfigurator) UpdateClient(id string, client *domain.ClientConfig) (*domain.ClientConfig, error) {
	f.lastID = id
	f.lastClient = client
	if f.err != nil {
		return nil, f.err
	}
	client.ID = id
	return client, nil
}

type fakeHealthScorer struct {
	scores    []domain.HealthScoreResult
	input     *domain.HealthInput
	err       error
	lastMonth domain.MonthKey
	lastInput *domain.HealthInput
}

func (f *fakeHealthScorer) SaveEvaluation(input *domain.HealthInput) (*domain.HealthScoreResult, error) {
	f.lastInput = input
	if f.err != nil {
		return nil, f.err
	}
	return &domain.HealthScoreResult{ClientID: input.ClientID, MonthKey: input.MonthKey, Flag: domain.FlagGreen}, nil
}

func (f *fakeHealthScorer) GetEvaluation(_ string, month domain.MonthKey) (*domain.HealthInput, error) {
	f.lastMonth = month
	return f.input, f.err
}

func (f *fakeHealthScorer) GetScore(clientID string, month domain.MonthKey) (*domain.HealthScoreResult, error) {
	return &domain.HealthScoreResult{ClientID: clientID, MonthKey: month}, f.err
}

func (f *fakeHealthScorer) ListScores(month domain.MonthKey) ([]domain.HealthScoreResult, error) {
	f.lastMonth = month
	return f.scores, f.err
}

func (f *fakeHealthScorer) Preview(input *domain.HealthInput) (*domain.HealthScoreResult, error) {
	f.lastInput = input
	return &domain.HealthScoreResult{ClientID: input.ClientID}, f.err
}

type fakeImporter struct {
	result      *domain.ImportResult
	err         error
	lastName    string
	lastContent string
}

func (f *fakeImporter) Import(_ context.Context, filename string, content io.Reader) (*domain.ImportResult, error) {
	f.lastName = filename
	data, _ := io.ReadAll(content)
	f.lastContent = string(data)
	return f.result, f.err
}

type fakeBackuper struct {
	snapshot *domain.SystemBackup
	restored *domain.SystemBackup
	err      error
}

func (f *fakeBackuper) Export(_ context.Context) (*domain.SystemBackup, error) {
	return f.snapshot, f.err
}

func (f *fakeBackuper) Restore(_ context.Context, backup *domain.SystemBackup) (*domain.RestoreResult, error) {
	f.restored = backup
	if f.err != nil {
		return nil, f.err
	}
	return &domain.RestoreResult{Clients: len(backup.Clients)}, nil
}

type fakeCronJob struct {
	mu       sync.Mutex
	triggers int
	status   map[string]any
}

func (f *fakeCronJob) TriggerManualSync() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.triggers++
}

func (f *fakeCronJob) GetStatus() map[string]any {
	return f.status
}

// serveRoute registra uma única rota sem middlewares para que os parâmetros da URL sejam preenchidos
func serveRoute(method, path string, handler http.Handler) router.Router {
	return router.New(router.WithRoutes(router.Route{
		Path:    path,
		Method:  method,
		Handler: handler,
	}))
}
