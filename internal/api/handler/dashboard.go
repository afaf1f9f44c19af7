package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profitability-api/internal/domain"
	"github.com/vfg2006/profitability-api/internal/usecases/aggregating"
	"github.com/vfg2006/profitability-api/pkg/apiErrors"
)

// GetDashboard agrega os apontamentos do período e devolve os quatro resumos
func GetDashboard(service aggregating.Profitability) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		query := r.URL.Query()
		summaryQuery := aggregating.SummaryQuery{
			Filters:       *filters,
			ClientSort:    aggregating.ClientSortField(query.Get("client_sort")),
			ClientOrder:   aggregating.ParseSortOrder(query.Get("client_order")),
			EmployeeSort:  aggregating.EmployeeSortField(query.Get("employee_sort")),
			EmployeeOrder: aggregating.ParseSortOrder(query.Get("employee_order")),
			Category:      domain.ClientCategory(query.Get("category")),
		}

		summary, err := service.GetSummary(r.Context(), summaryQuery)
		if err != nil {
			logrus.WithError(err).Error("Erro ao calcular o dashboard")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}

func ListEntries(service aggregating.Profitability) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		entries, err := service.ListEntries(filters)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, entries)
	}
}
