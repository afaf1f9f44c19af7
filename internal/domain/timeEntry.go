package domain

import "time"

// TimeEntry é um apontamento de horas importado da planilha de tarefas
type TimeEntry struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employee_id,omitempty"`
	ClientID     string    `json:"client_id,omitempty"`
	Executor     string    `json:"executor"`
	Workspace    string    `json:"workspace"`
	RealizedTime string    `json:"realized_time"`
	Hours        float64   `json:"hours"`
	Date         time.Time `json:"date"`
	MonthKey     MonthKey  `json:"month_key"`
}

// EntriesRange retorna a menor e a maior data do lote
func EntriesRange(entries []TimeEntry) (time.Time, time.Time, bool) {
	if len(entries) == 0 {
		return time.Time{}, time.Time{}, false
	}

	minDate := DateOnly(entries[0].Date)
	maxDate := minDate
	for _, e := range entries[1:] {
		d := DateOnly(e.Date)
		if d.Before(minDate) {
			minDate = d
		}
		if d.After(maxDate) {
			maxDate = d
		}
	}

	return minDate, maxDate, true
}

// FilterEntries mantém apenas os apontamentos dentro do intervalo
func FilterEntries(entries []TimeEntry, filters *SummaryFilters) []TimeEntry {
	filtered := make([]TimeEntry, 0, len(entries))
	for _, e := range entries {
		if filters.Contains(e.Date) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
