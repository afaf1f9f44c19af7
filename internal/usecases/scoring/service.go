package scoring

import (
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profitability-api/infrastructure/repository"
	"github.com/vfg2006/profitability-api/internal/domain"
	"github.com/vfg2006/profitability-api/pkg/apiErrors"
	"github.com/vfg2006/profitability-api/pkg/utils"
)

type HealthScorer interface {
	SaveEvaluation(input *domain.HealthInput) (*domain.HealthScoreResult, error)
	GetEvaluation(clientID string, month domain.MonthKey) (*domain.HealthInput, error)
	GetScore(clientID string, month domain.MonthKey) (*domain.HealthScoreResult, error)
	ListScores(month domain.MonthKey) ([]domain.HealthScoreResult, error)
	Preview(input *domain.HealthInput) (*domain.HealthScoreResult, error)
}

type Service struct {
	healthRepository repository.HealthInputRepository
	clientRepository repository.ClientRepository
	validate         *validator.Validate
	now              func() time.Time
}

func NewService(
	healthRepository repository.HealthInputRepository,
	clientRepository repository.ClientRepository,
) HealthScorer {
	return &Service{
		healthRepository: healthRepository,
		clientRepository: clientRepository,
		validate:         utils.NewValidator(),
		now:              time.Now,
	}
}

// SaveEvaluation grava a avaliação do mês (a última escrita prevalece) e devolve a nota calculada
func (s *Service) SaveEvaluation(input *domain.HealthInput) (*domain.HealthScoreResult, error) {
	if err := ValidateInput(s.validate, input); err != nil {
		return nil, err
	}

	client, err := s.findClient(input.ClientID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	input.LastUpdated = &now

	if err := s.healthRepository.Upsert(input); err != nil {
		logrus.WithError(err).WithField("client_id", input.ClientID).Error("Erro ao salvar avaliação de saúde")
		return nil, NewClientHealthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, input.ClientID, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"client_id": input.ClientID,
		"month_key": input.MonthKey,
	}).Info("Avaliação de saúde salva")

	result := ScoreHealth(input, client, now)
	return &result, nil
}

func (s *Service) GetEvaluation(clientID string, month domain.MonthKey) (*domain.HealthInput, error) {
	if !month.IsValid() {
		return nil, NewHealthError(ErrInvalidMonth, apiErrors.ErrInvalidPeriod, string(month))
	}

	input, err := s.healthRepository.Get(clientID, month)
	if err != nil {
		return nil, NewClientHealthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, clientID, err.Error())
	}
	if input == nil {
		return nil, NewClientHealthError(ErrEvaluationNotFound, apiErrors.ErrResourceNotFound, clientID, string(month))
	}

	return input, nil
}

func (s *Service) GetScore(clientID string, month domain.MonthKey) (*domain.HealthScoreResult, error) {
	input, err := s.GetEvaluation(clientID, month)
	if err != nil {
		return nil, err
	}

	client, err := s.findClient(clientID)
	if err != nil {
		return nil, err
	}

	result := ScoreHealth(input, client, s.now())
	return &result, nil
}

// ListScores calcula as notas dos clientes ativos que têm avaliação no mês, da pior para a melhor
func (s *Service) ListScores(month domain.MonthKey) ([]domain.HealthScoreResult, error) {
	if !month.IsValid() {
		return nil, NewHealthError(ErrInvalidMonth, apiErrors.ErrInvalidPeriod, string(month))
	}

	clients, err := s.clientRepository.ListActive()
	if err != nil {
		return nil, NewHealthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	inputs, err := s.healthRepository.ListByMonth(month)
	if err != nil {
		return nil, NewHealthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	byClient := make(map[string]*domain.HealthInput, len(inputs))
	for i := range inputs {
		byClient[inputs[i].ClientID] = &inputs[i]
	}

	now := s.now()
	results := make([]domain.HealthScoreResult, 0, len(inputs))
	for i := range clients {
		input, ok := byClient[clients[i].ID]
		if !ok {
			continue
		}
		results = append(results, ScoreHealth(input, &clients[i], now))
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score < results[j].Score
		}
		return results[i].ClientName < results[j].ClientName
	})

	return results, nil
}

// Preview calcula a nota sem gravar a avaliação
func (s *Service) Preview(input *domain.HealthInput) (*domain.HealthScoreResult, error) {
	if err := ValidateInput(s.validate, input); err != nil {
		return nil, err
	}

	client, err := s.findClient(input.ClientID)
	if err != nil {
		return nil, err
	}

	result := ScoreHealth(input, client, s.now())
	return &result, nil
}

func (s *Service) findClient(clientID string) (*domain.ClientConfig, error) {
	client, err := s.clientRepository.GetByID(clientID)
	if err != nil {
		return nil, NewClientHealthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, clientID, err.Error())
	}
	if client == nil {
		return nil, NewClientHealthError(ErrClientNotFound, apiErrors.ErrResourceNotFound, clientID, nil)
	}
	return client, nil
}

// CountByFlag agrupa as notas por cor
func CountByFlag(results []domain.HealthScoreResult) map[domain.HealthFlag]int {
	counts := make(map[domain.HealthFlag]int, len(domain.HealthFlags))
	for _, flag := range domain.HealthFlags {
		counts[flag] = 0
	}
	for _, r := range results {
		counts[r.Flag]++
	}
	return counts
}
