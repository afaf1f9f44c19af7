package scheduler

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profitability-api/internal/config"
	"github.com/vfg2006/profitability-api/internal/domain"
	"github.com/vfg2006/profitability-api/internal/usecases/scoring"
)

// HealthDigestConfig representa a configuração do resumo mensal de saúde dos clientes
type HealthDigestConfig struct {
	CronSchedule      string
	LookbackMonths    int
	MaxConcurrentJobs int
	SyncEnabled       bool
}

// MonthDigest é a contagem de clientes por flag em um mês
type MonthDigest struct {
	MonthKey  domain.MonthKey           `json:"month_key"`
	Evaluated int                       `json:"evaluated"`
	ByFlag    map[domain.HealthFlag]int `json:"by_flag"`
	AtRisk    []string                  `json:"at_risk"`
}

type HealthDigestService struct {
	scheduler           *gocron.Scheduler
	config              HealthDigestConfig
	healthScorer        scoring.HealthScorer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastDigest          []MonthDigest
	now                 func() time.Time
}

func NewHealthDigestService(healthScorer scoring.HealthScorer, appConfig *config.Config) *HealthDigestService {
	digestConfig := HealthDigestConfig{
		CronSchedule:      appConfig.HealthDigest.CronSchedule,
		LookbackMonths:    appConfig.HealthDigest.LookbackMonths,
		MaxConcurrentJobs: appConfig.HealthDigest.MaxConcurrentJobs,
		SyncEnabled:       appConfig.HealthDigest.Enabled,
	}

	if digestConfig.LookbackMonths <= 0 {
		digestConfig.LookbackMonths = 1
	}
	if digestConfig.MaxConcurrentJobs <= 0 {
		digestConfig.MaxConcurrentJobs = 1
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       digestConfig.CronSchedule,
		"lookback_months":     digestConfig.LookbackMonths,
		"max_concurrent_jobs": digestConfig.MaxConcurrentJobs,
		"sync_enabled":        digestConfig.SyncEnabled,
	}).Info("Configuração do resumo de saúde carregada")

	return &HealthDigestService{
		scheduler:    gocron.NewScheduler(time.Local),
		config:       digestConfig,
		healthScorer: healthScorer,
		now:          time.Now,
	}
}

// Start inicia o agendador
func (s *HealthDigestService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Resumo de saúde desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do resumo de saúde")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runDigest()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar resumo de saúde: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do resumo de saúde")
		s.scheduler.Stop()
	}()

	return nil
}

// monthsToProcess retorna os meses fechados anteriores ao atual, do mais recente para o mais antigo
func (s *HealthDigestService) monthsToProcess() []domain.MonthKey {
	current := domain.NewMonthKey(s.now())
	months := make([]domain.MonthKey, 0, s.config.LookbackMonths)
	for i := 0; i < s.config.LookbackMonths; i++ {
		current = current.Previous()
		months = append(months, current)
	}
	return months
}

func (s *HealthDigestService) runDigest() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Resumo de saúde já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	startTime := time.Now()
	months := s.monthsToProcess()

	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup
	var resultMutex sync.Mutex
	digests := make([]MonthDigest, 0, len(months))

	for _, month := range months {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(month domain.MonthKey) {
			defer wg.Done()
			defer func() { <-semaphore }()

			digest, err := s.digestMonth(month)
			if err != nil {
				logrus.WithError(err).WithField("month", month).Error("Erro ao calcular resumo de saúde do mês")
				return
			}

			resultMutex.Lock()
			digests = append(digests, *digest)
			resultMutex.Unlock()
		}(month)
	}

	wg.Wait()

	sort.Slice(digests, func(i, j int) bool {
		return digests[i].MonthKey > digests[j].MonthKey
	})

	s.syncMutex.Lock()
	s.lastDigest = digests
	s.lastSyncCompletedAt = s.now()
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"months":   len(digests),
		"duration": time.Since(startTime).String(),
	}).Info("Resumo de saúde concluído")
}

func (s *HealthDigestService) digestMonth(month domain.MonthKey) (*MonthDigest, error) {
	results, err := s.healthScorer.ListScores(month)
	if err != nil {
		return nil, err
	}

	digest := &MonthDigest{
		MonthKey:  month,
		Evaluated: len(results),
		ByFlag:    scoring.CountByFlag(results),
		AtRisk:    []string{},
	}

	for _, r := range results {
		if r.Flag == domain.FlagRed || r.Flag == domain.FlagBlack {
			digest.AtRisk = append(digest.AtRisk, r.ClientName)
		}
	}

	log := logrus.WithFields(logrus.Fields{
		"month":     month,
		"evaluated": digest.Evaluated,
		"green":     digest.ByFlag[domain.FlagGreen],
		"yellow":    digest.ByFlag[domain.FlagYellow],
		"red":       digest.ByFlag[domain.FlagRed],
		"black":     digest.ByFlag[domain.FlagBlack],
	})
	if len(digest.AtRisk) > 0 {
		log.WithField("at_risk", digest.AtRisk).Warn("Clientes em risco no mês")
	} else {
		log.Info("Nenhum cliente em risco no mês")
	}

	return digest, nil
}

// TriggerManualSync executa o resumo fora do agendamento
func (s *HealthDigestService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Resumo de saúde já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando resumo de saúde manual")
	go s.runDigest()
}

func (s *HealthDigestService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"lookback_months":        s.config.LookbackMonths,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"running":                s.syncRunning,
		"last_digest":            s.lastDigest,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
