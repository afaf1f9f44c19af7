package domain

import (
	"fmt"
	"time"
)

// MonthKey identifica um mês de calendário no formato YYYY-MM
type MonthKey string

const MonthKeyLayout = "2006-01"

// NewMonthKey retorna a chave do mês em que a data se encontra
func NewMonthKey(date time.Time) MonthKey {
	return MonthKey(fmt.Sprintf("%04d-%02d", date.Year(), int(date.Month())))
}

// ParseMonthKey valida e normaliza uma chave no formato YYYY-MM
func ParseMonthKey(value string) (MonthKey, error) {
	t, err := time.Parse(MonthKeyLayout, value)
	if err != nil {
		return "", fmt.Errorf("mês inválido %q: %w", value, err)
	}
	return NewMonthKey(t), nil
}

func (m MonthKey) IsValid() bool {
	_, err := time.Parse(MonthKeyLayout, string(m))
	return err == nil
}

// FirstDay retorna o primeiro dia do mês à meia-noite UTC
func (m MonthKey) FirstDay() time.Time {
	t, _ := time.Parse(MonthKeyLayout, string(m))
	return t
}

// LastDay retorna o último dia do mês à meia-noite UTC
func (m MonthKey) LastDay() time.Time {
	return m.FirstDay().AddDate(0, 1, -1)
}

// DaysInMonth retorna 0 para chaves inválidas
func (m MonthKey) DaysInMonth() int {
	if !m.IsValid() {
		return 0
	}
	return m.LastDay().Day()
}

func (m MonthKey) Previous() MonthKey {
	return NewMonthKey(m.FirstDay().AddDate(0, -1, 0))
}

func (m MonthKey) Next() MonthKey {
	return NewMonthKey(m.FirstDay().AddDate(0, 1, 0))
}

func (m MonthKey) String() string {
	return string(m)
}

// DateOnly descarta o horário mantendo o dia de calendário
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SummaryFilters define o intervalo de datas da consulta, com as duas pontas inclusivas.
// Datas nulas significam intervalo aberto.
type SummaryFilters struct {
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

func (f *SummaryFilters) HasRange() bool {
	return f != nil &&
		f.StartDate != nil && !f.StartDate.IsZero() &&
		f.EndDate != nil && !f.EndDate.IsZero()
}

// Contains considera o fim do intervalo até 23:59:59 do último dia
func (f *SummaryFilters) Contains(date time.Time) bool {
	if f == nil {
		return true
	}

	d := DateOnly(date)
	if f.StartDate != nil && !f.StartDate.IsZero() && d.Before(DateOnly(*f.StartDate)) {
		return false
	}
	if f.EndDate != nil && !f.EndDate.IsZero() && d.After(DateOnly(*f.EndDate)) {
		return false
	}

	return true
}
