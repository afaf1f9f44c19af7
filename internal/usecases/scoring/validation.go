package scoring

import (
	"github.com/go-playground/validator/v10"
	"github.com/vfg2006/profitability-api/internal/domain"
	"github.com/vfg2006/profitability-api/pkg/apiErrors"
	"github.com/vfg2006/profitability-api/pkg/utils"
)

// ValidateInput verifica as respostas obrigatórias. As perguntas de resultados
// só são exigidas quando o cliente espera resultado mensurável e quando entram no foco escolhido.
func ValidateInput(validate *validator.Validate, input *domain.HealthInput) error {
	details := map[string]string{}

	if err := validate.Struct(input); err != nil {
		details = utils.ValidationDetails(err)
	}

	if input.ExpectsResults() {
		focus := input.Focus()
		if focus != domain.FocusROI {
			if input.Growth == "" {
				details["growth"] = "required"
			}
			if input.EngagementVsAvg == "" {
				details["engagement_vs_avg"] = "required"
			}
		}
		if focus != domain.FocusSocial && input.FinancialResultsMeasurable() && input.RoiBucket == "" {
			details["roi_bucket"] = "required"
		}
	}

	if len(details) > 0 {
		return NewClientHealthError(ErrInvalidInput, apiErrors.ErrMissingRequiredData, input.ClientID, details)
	}

	return nil
}
