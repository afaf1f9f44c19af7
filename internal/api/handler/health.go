package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profitability-api/internal/domain"
	"github.com/vfg2006/profitability-api/internal/usecases/scoring"
	"github.com/vfg2006/profitability-api/pkg/apiErrors"
)

type HealthListResponse struct {
	MonthKey domain.MonthKey            `json:"month_key"`
	Scores   []domain.HealthScoreResult `json:"scores"`
	ByFlag   map[domain.HealthFlag]int  `json:"by_flag"`
}

type ClientHealthResponse struct {
	Input *domain.HealthInput       `json:"input"`
	Score *domain.HealthScoreResult `json:"score"`
}

// ListHealthScores lista as notas do mês, da pior para a melhor
func ListHealthScores(service scoring.HealthScorer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month := monthParam(r)

		scores, err := service.ListScores(month)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, HealthListResponse{
			MonthKey: month,
			Scores:   scores,
			ByFlag:   scoring.CountByFlag(scores),
		})
	}
}

func GetClientHealth(service scoring.HealthScorer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		month := monthParam(r)

		input, err := service.GetEvaluation(clientID, month)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		score, err := service.GetScore(clientID, month)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ClientHealthResponse{Input: input, Score: score})
	}
}

// SaveClientHealth grava a avaliação do mês; o cliente vem sempre da URL
func SaveClientHealth(service scoring.HealthScorer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if clientID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente não fornecido", nil)
			return
		}

		var input domain.HealthInput
		if err := decodeJSON(w, r, &input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}
		input.ClientID = clientID

		score, err := service.SaveEvaluation(&input)
		if err != nil {
			logrus.WithError(err).WithField("client_id", clientID).Warn("Avaliação de saúde rejeitada")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, score)
	}
}

func PreviewHealth(service scoring.HealthScorer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input domain.HealthInput
		if err := decodeJSON(w, r, &input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		score, err := service.Preview(&input)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, score)
	}
}
