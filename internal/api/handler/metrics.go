package handler

import (
	"net/http"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profitability-api/internal/domain"
	"github.com/vfg2006/profitability-api/internal/usecases/aggregating"
	"github.com/vfg2006/profitability-api/internal/usecases/scoring"
)

const metricsNamespace = "profitability_"

// Metrics expõe o dashboard e as cores de saúde do mês corrente no formato texto do Prometheus
func Metrics(profitability aggregating.Profitability, healthScorer scoring.HealthScorer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseFilters(r)
		if err != nil {
			filters = &domain.SummaryFilters{}
		}

		summary, err := profitability.GetSummary(r.Context(), aggregating.SummaryQuery{Filters: *filters})
		if err != nil {
			logrus.WithError(err).Error("Erro ao calcular métricas do dashboard")
			writeServiceError(w, err)
			return
		}

		var byFlag map[domain.HealthFlag]int
		scores, err := healthScorer.ListScores(domain.NewMonthKey(time.Now()))
		if err != nil {
			logrus.WithError(err).Warn("Métricas de saúde indisponíveis")
		} else {
			byFlag = scoring.CountByFlag(scores)
		}

		format := expfmt.NewFormat(expfmt.TypeTextPlain)
		w.Header().Set("Content-Type", string(format))

		encoder := expfmt.NewEncoder(w, format)
		for _, family := range BuildMetricFamilies(summary, byFlag) {
			if err := encoder.Encode(family); err != nil {
				logrus.WithError(err).Error("Erro ao serializar métricas")
				return
			}
		}
	}
}

// BuildMetricFamilies converte o resumo em gauges; byFlag nulo omite as métricas de saúde
func BuildMetricFamilies(summary *domain.Summary, byFlag map[domain.HealthFlag]int) []*dto.MetricFamily {
	dashboard := summary.Dashboard

	families := []*dto.MetricFamily{
		gaugeFamily("revenue", "Receita total do período", gauge(dashboard.TotalRevenue)),
		gaugeFamily("cost", "Custo operacional total do período", gauge(dashboard.TotalCost)),
		gaugeFamily("gross_profit", "Lucro bruto do período", gauge(dashboard.GrossProfit)),
		gaugeFamily("margin_percent", "Margem geral em porcentagem", gauge(dashboard.OverallMargin)),
		gaugeFamily("hours", "Horas realizadas no período", gauge(dashboard.TotalHours)),
		gaugeFamily("capacity_rate_percent", "Uso da capacidade da equipe em porcentagem", gauge(dashboard.GlobalCapacityRate)),
	}

	categories := make([]*dto.Metric, 0, len(dashboard.RevenueByCategory))
	for _, category := range []domain.ClientCategory{domain.CategoryExecutar, domain.CategorySaber, domain.CategoryTer} {
		categories = append(categories, gauge(dashboard.RevenueByCategory[category], "category", string(category)))
	}
	families = append(families, gaugeFamily("category_revenue", "Receita por categoria de cliente", categories...))

	clients := make([]*dto.Metric, 0, len(summary.Clients))
	for _, c := range summary.Clients {
		clients = append(clients, gauge(c.GrossProfit, "client_id", c.ID, "client", c.Name))
	}
	if len(clients) > 0 {
		families = append(families, gaugeFamily("client_gross_profit", "Lucro bruto por cliente", clients...))
	}

	if byFlag != nil {
		flags := make([]*dto.Metric, 0, len(domain.HealthFlags))
		for _, flag := range domain.HealthFlags {
			flags = append(flags, gauge(float64(byFlag[flag]), "flag", string(flag)))
		}
		families = append(families, gaugeFamily("health_clients", "Clientes avaliados no mês por cor de saúde", flags...))
	}

	return families
}

func gaugeFamily(name, help string, metrics ...*dto.Metric) *dto.MetricFamily {
	fullName := metricsNamespace + name
	return &dto.MetricFamily{
		Name:   &fullName,
		Help:   &help,
		Type:   dto.MetricType_GAUGE.Enum(),
		Metric: metrics,
	}
}

// gauge recebe os rótulos em pares nome/valor
func gauge(value float64, labels ...string) *dto.Metric {
	metric := &dto.Metric{Gauge: &dto.Gauge{Value: &value}}
	for i := 0; i+1 < len(labels); i += 2 {
		name, labelValue := labels[i], labels[i+1]
		metric.Label = append(metric.Label, &dto.LabelPair{Name: &name, Value: &labelValue})
	}
	return metric
}
