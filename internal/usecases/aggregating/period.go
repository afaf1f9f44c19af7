package aggregating

import (
	"sort"

	"github.com/vfg2006/profitability-api/internal/domain"
)

// ActiveMonths retorna os meses de calendário tocados pelo intervalo, em ordem e sem repetição.
// Sem uma das pontas o resultado é vazio.
func ActiveMonths(filters *domain.SummaryFilters) []domain.MonthKey {
	if !filters.HasRange() {
		return []domain.MonthKey{}
	}

	start := domain.DateOnly(*filters.StartDate)
	end := domain.DateOnly(*filters.EndDate)
	if start.After(end) {
		return []domain.MonthKey{}
	}

	months := make([]domain.MonthKey, 0)
	last := domain.NewMonthKey(end)
	for current := domain.NewMonthKey(start); current <= last; current = current.Next() {
		months = append(months, current)
	}

	return months
}

// ProRataRatio é a fração de dias do mês que cai dentro do intervalo.
// Sem intervalo definido o mês conta inteiro.
func ProRataRatio(month domain.MonthKey, filters *domain.SummaryFilters) float64 {
	if !filters.HasRange() {
		return 1
	}

	totalDays := month.DaysInMonth()
	if totalDays == 0 {
		return 0
	}

	effectiveStart := month.FirstDay()
	if start := domain.DateOnly(*filters.StartDate); start.After(effectiveStart) {
		effectiveStart = start
	}

	effectiveEnd := month.LastDay()
	if end := domain.DateOnly(*filters.EndDate); end.Before(effectiveEnd) {
		effectiveEnd = end
	}

	if effectiveStart.After(effectiveEnd) {
		return 0
	}

	overlap := effectiveEnd.Day() - effectiveStart.Day() + 1
	if overlap < 0 {
		overlap = 0
	}
	if overlap > totalDays {
		overlap = totalDays
	}

	return float64(overlap) / float64(totalDays)
}

// entryMonths lista os meses presentes nos apontamentos, usado quando a consulta não tem intervalo
func entryMonths(entries []domain.TimeEntry) []domain.MonthKey {
	seen := make(map[domain.MonthKey]struct{})
	months := make([]domain.MonthKey, 0)
	for _, e := range entries {
		month := e.MonthKey
		if !month.IsValid() {
			month = domain.NewMonthKey(e.Date)
		}
		if _, ok := seen[month]; ok {
			continue
		}
		seen[month] = struct{}{}
		months = append(months, month)
	}

	sort.Slice(months, func(i, j int) bool { return months[i] < months[j] })
	return months
}

// contractStartInRange indica se a taxa de implantação deve ser reconhecida no intervalo
func contractStartInRange(client *domain.ClientConfig, filters *domain.SummaryFilters) bool {
	if client == nil || client.ContractStartDate == nil || client.ContractStartDate.IsZero() {
		return false
	}
	if !filters.HasRange() {
		return false
	}
	return filters.Contains(*client.ContractStartDate)
}
