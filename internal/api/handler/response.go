package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profitability-api/internal/domain"
	"github.com/vfg2006/profitability-api/internal/usecases/aggregating"
	"github.com/vfg2006/profitability-api/internal/usecases/authenticating"
	"github.com/vfg2006/profitability-api/internal/usecases/backup"
	"github.com/vfg2006/profitability-api/internal/usecases/configuring"
	"github.com/vfg2006/profitability-api/internal/usecases/contracting"
	"github.com/vfg2006/profitability-api/internal/usecases/importing"
	"github.com/vfg2006/profitability-api/internal/usecases/scoring"
	"github.com/vfg2006/profitability-api/pkg/apiErrors"
	"github.com/vfg2006/profitability-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxJSONBody = 10 << 20

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dest any) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody)).Decode(dest)
}

// parseFilters lê start_date e end_date da query string; ausentes deixam o intervalo aberto
func parseFilters(r *http.Request) (*domain.SummaryFilters, error) {
	query := r.URL.Query()

	startDate, err := utils.ParseDate(query.Get("start_date"))
	if err != nil {
		return nil, err
	}

	endDate, err := utils.ParseDate(query.Get("end_date"))
	if err != nil {
		return nil, err
	}

	return &domain.SummaryFilters{StartDate: startDate, EndDate: endDate}, nil
}

func monthParam(r *http.Request) domain.MonthKey {
	return domain.MonthKey(r.URL.Query().Get("month"))
}

// writeServiceError traduz os erros tipados dos casos de uso para a resposta padronizada
func writeServiceError(w http.ResponseWriter, err error) {
	var (
		profitabilityErr *aggregating.ProfitabilityError
		healthErr        *scoring.HealthError
		configErr        *configuring.ConfigError
		importErr        *importing.ImportError
		contractErr      *contracting.ContractError
		authErr          *authenticating.AuthError
		backupErr        *backup.BackupError
	)

	switch {
	case errors.As(err, &profitabilityErr):
		apiErrors.WriteError(w, profitabilityErr.Code, profitabilityErr.Err.Error(), detailsOrNil(profitabilityErr.Details))
	case errors.As(err, &healthErr):
		apiErrors.WriteError(w, healthErr.Code, healthErr.Err.Error(), healthErr.Details)
	case errors.As(err, &configErr):
		apiErrors.WriteError(w, configErr.Code, configErr.Err.Error(), configErr.Details)
	case errors.As(err, &importErr):
		apiErrors.WriteError(w, importErr.Code, importErr.Err.Error(), detailsOrNil(importErr.Details))
	case errors.As(err, &contractErr):
		apiErrors.WriteError(w, contractErr.Code, contractErr.Err.Error(), detailsOrNil(contractErr.Details))
	case errors.As(err, &authErr):
		apiErrors.WriteError(w, authErr.Code, authErr.Err.Error(), detailsOrNil(authErr.Details))
	case errors.As(err, &backupErr):
		apiErrors.WriteError(w, backupErr.Code, backupErr.Err.Error(), detailsOrNil(backupErr.Details))
	default:
		logrus.WithError(err).Error("Erro não mapeado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
	}
}

func detailsOrNil(details string) any {
	if details == "" {
		return nil
	}
	return details
}
