package utils

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/vfg2006/profitability-api/internal/domain"
)

// NewValidator registra as regras próprias do domínio e usa as tags json como nome dos campos
func NewValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation("month_key", func(fl validator.FieldLevel) bool {
		return domain.MonthKey(fl.Field().String()).IsValid()
	})

	_ = validate.RegisterValidation("department", func(fl validator.FieldLevel) bool {
		department := domain.Department(fl.Field().String())
		return domain.NormalizeDepartment(department) == department
	})

	return validate
}

// ValidationDetails converte os erros do validator em campo -> regra violada
func ValidationDetails(err error) map[string]string {
	details := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		if err != nil {
			details["_"] = err.Error()
		}
		return details
	}

	for _, ve := range validationErrors {
		field := ve.Namespace()
		if idx := strings.Index(field, "."); idx >= 0 {
			field = field[idx+1:]
		}
		details[field] = ve.Tag()
	}

	return details
}
