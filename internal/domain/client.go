package domain

import "time"

type ClientCategory string

const (
	CategorySaber    ClientCategory = "Saber"
	CategoryTer      ClientCategory = "Ter"
	CategoryExecutar ClientCategory = "Executar"
)

var ClientCategories = []ClientCategory{CategorySaber, CategoryTer, CategoryExecutar}

func NormalizeCategory(c ClientCategory) ClientCategory {
	for _, known := range ClientCategories {
		if c == known {
			return c
		}
	}
	return CategoryExecutar
}

type ClientConfig struct {
	ID                string               `json:"id" yaml:"id"`
	Name              string               `json:"name" yaml:"name" validate:"required"`
	IsActive          bool                 `json:"is_active" yaml:"is_active"`
	Category          ClientCategory       `json:"category" yaml:"category" validate:"omitempty,oneof=Saber Ter Executar"`
	DefaultFee        float64              `json:"default_fee" yaml:"default_fee" validate:"gte=0"`
	History           map[MonthKey]float64 `json:"history" yaml:"history" validate:"dive,keys,month_key,endkeys,gte=0"`
	OneTimeFee        float64              `json:"one_time_fee" yaml:"one_time_fee" validate:"gte=0"`
	ContractStartDate *time.Time           `json:"contract_start_date,omitempty" yaml:"contract_start_date,omitempty"`
	CreatedAt         time.Time            `json:"created_at" yaml:"-"`
	UpdatedAt         time.Time            `json:"updated_at" yaml:"-"`
}

// FeeForMonth retorna o fee do histórico quando existir, senão o fee padrão
func (c *ClientConfig) FeeForMonth(month MonthKey) float64 {
	if fee, ok := c.History[month]; ok {
		return fee
	}
	return c.DefaultFee
}

// HasAnyFee indica se o cliente tem algum valor comercial configurado
func (c *ClientConfig) HasAnyFee() bool {
	if c.DefaultFee > 0 || c.OneTimeFee > 0 {
		return true
	}
	for _, fee := range c.History {
		if fee > 0 {
			return true
		}
	}
	return false
}

// TenureMonths conta os meses de contrato arredondando para cima (meses de 30 dias).
// Sem data de início o resultado é 0.
func (c *ClientConfig) TenureMonths(now time.Time) int {
	if c == nil || c.ContractStartDate == nil || c.ContractStartDate.IsZero() {
		return 0
	}

	diff := now.Sub(*c.ContractStartDate)
	if diff < 0 {
		diff = -diff
	}

	const month = 30 * 24 * time.Hour
	months := int(diff / month)
	if diff%month != 0 {
		months++
	}

	return months
}

// NewDiscoveredClient cria a configuração padrão de um workspace visto pela primeira vez numa importação
func NewDiscoveredClient(id, name string) ClientConfig {
	return ClientConfig{
		ID:         id,
		Name:       name,
		IsActive:   true,
		Category:   CategoryExecutar,
		DefaultFee: 0,
		History:    map[MonthKey]float64{},
	}
}
