package scheduler

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/profitability-api/internal/config"
	"github.com/vfg2006/profitability-api/internal/domain"
)

type fakeHealthScorer struct {
	mu      sync.Mutex
	results map[domain.MonthKey][]domain.HealthScoreResult
	errs    map[domain.MonthKey]error
	calls   []domain.MonthKey
}

func (f *fakeHealthScorer) ListScores(month domain.MonthKey) ([]domain.HealthScoreResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, month)
	if err := f.errs[month]; err != nil {
		return nil, err
	}
	return f.results[month], nil
}

func (f *fakeHealthScorer) SaveEvaluation(_ *domain.HealthInput) (*domain.HealthScoreResult, error) {
	return nil, nil
}

func (f *fakeHealthScorer) GetEvaluation(_ string, _ domain.MonthKey) (*domain.HealthInput, error) {
	return nil, nil
}

func (f *fakeHealthScorer) GetScore(_ string, _ domain.MonthKey) (*domain.HealthScoreResult, error) {
	return nil, nil
}

func (f *fakeHealthScorer) Preview(_ *domain.HealthInput) (*domain.HealthScoreResult, error) {
	return nil, nil
}

func newTestConfig() *config.Config {
	return &config.Config{
		BackupSync:   config.BackupSync{CronSchedule: "0 2 * * *", Retain: 3},
		HealthDigest: config.HealthDigest{CronSchedule: "0 7 1 * *"},
	}
}

func TestHealthDigestService_monthsToProcess(t *testing.T) {
	service := NewHealthDigestService(&fakeHealthScorer{}, newTestConfig())
	service.now = func() time.Time { return time.Date(2025, time.January, 1, 7, 0, 0, 0, time.UTC) }

	assert.Equal(t, []domain.MonthKey{"2024-12"}, service.monthsToProcess())

	service.config.LookbackMonths = 3
	assert.Equal(t, []domain.MonthKey{"2024-12", "2024-11", "2024-10"}, service.monthsToProcess())
}

func TestHealthDigestService_runDigest(t *testing.T) {
	scorer := &fakeHealthScorer{
		results: map[domain.MonthKey][]domain.HealthScoreResult{
			"2025-05": {
				{ClientName: "Loja Crítica", Score: 10, Flag: domain.FlagBlack},
				{ClientName: "Loja Atenção", Score: 40, Flag: domain.FlagRed},
				{ClientName: "Loja Boa", Score: 90, Flag: domain.FlagGreen},
			},
			"2025-04": {
				{ClientName: "Loja Boa", Score: 85, Flag: domain.FlagGreen},
			},
		},
		errs: map[domain.MonthKey]error{
			"2025-03": errors.New("timeout"),
		},
	}

	service := NewHealthDigestService(scorer, newTestConfig())
	service.config.LookbackMonths = 3
	service.config.MaxConcurrentJobs = 2
	service.now = func() time.Time { return time.Date(2025, time.June, 1, 7, 0, 0, 0, time.UTC) }

	service.runDigest()

	assert.ElementsMatch(t, []domain.MonthKey{"2025-05", "2025-04", "2025-03"}, scorer.calls)

	status := service.GetStatus()
	digests, ok := status["last_digest"].([]MonthDigest)
	require.True(t, ok)
	require.Len(t, digests, 2)

	assert.Equal(t, domain.MonthKey("2025-05"), digests[0].MonthKey)
	assert.Equal(t, 3, digests[0].Evaluated)
	assert.Equal(t, 1, digests[0].ByFlag[domain.FlagBlack])
	assert.Equal(t, 1, digests[0].ByFlag[domain.FlagRed])
	assert.Equal(t, 0, digests[0].ByFlag[domain.FlagYellow])
	assert.Equal(t, []string{"Loja Crítica", "Loja Atenção"}, digests[0].AtRisk)

	assert.Equal(t, domain.MonthKey("2025-04"), digests[1].MonthKey)
	assert.Empty(t, digests[1].AtRisk)
	assert.Equal(t, false, status["running"])
}

func TestNewHealthDigestService_Padroes(t *testing.T) {
	service := NewHealthDigestService(&fakeHealthScorer{}, newTestConfig())

	assert.Equal(t, 1, service.config.LookbackMonths)
	assert.Equal(t, 1, service.config.MaxConcurrentJobs)
	assert.False(t, service.config.SyncEnabled)
}
