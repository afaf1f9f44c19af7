package domain

import "time"

type Department string

const (
	DepartmentCreation   Department = "Criação"
	DepartmentService    Department = "Atendimento"
	DepartmentTraffic    Department = "Gestão de Tráfego"
	DepartmentManagement Department = "Gestão"
	DepartmentOthers     Department = "Outros"
)

// DefaultCapacityHours é a carga mensal assumida quando não há configuração
const DefaultCapacityHours = 160.0

// Departments na ordem de exibição do dashboard
var Departments = []Department{
	DepartmentCreation,
	DepartmentService,
	DepartmentTraffic,
	DepartmentManagement,
	DepartmentOthers,
}

func NormalizeDepartment(d Department) Department {
	for _, known := range Departments {
		if d == known {
			return d
		}
	}
	return DepartmentOthers
}

// MonthlyCost sobrescreve custo e horas de um mês específico
type MonthlyCost struct {
	Cost  float64 `json:"cost" yaml:"cost" validate:"gte=0"`
	Hours float64 `json:"hours" yaml:"hours" validate:"gte=0"`
}

type EmployeeConfig struct {
	ID           string                   `json:"id" yaml:"id"`
	Name         string                   `json:"name" yaml:"name" validate:"required"`
	Department   Department               `json:"department" yaml:"department" validate:"omitempty,department"`
	DefaultCost  float64                  `json:"default_cost" yaml:"default_cost" validate:"gte=0"`
	DefaultHours float64                  `json:"default_hours" yaml:"default_hours" validate:"gte=0"`
	History      map[MonthKey]MonthlyCost `json:"history" yaml:"history" validate:"dive,keys,month_key,endkeys"`
	CreatedAt    time.Time                `json:"created_at" yaml:"-"`
	UpdatedAt    time.Time                `json:"updated_at" yaml:"-"`
}

// MonthConfig retorna custo e horas vigentes no mês, usando o padrão quando não há histórico
func (e *EmployeeConfig) MonthConfig(month MonthKey) MonthlyCost {
	if override, ok := e.History[month]; ok {
		return override
	}
	return MonthlyCost{Cost: e.DefaultCost, Hours: e.DefaultHours}
}

// HourlyRate é custo/horas do mês, ou 0 sem horas configuradas
func (e *EmployeeConfig) HourlyRate(month MonthKey) float64 {
	cfg := e.MonthConfig(month)
	if cfg.Hours <= 0 {
		return 0
	}
	return cfg.Cost / cfg.Hours
}

// NewDiscoveredEmployee cria a configuração padrão de um executor visto pela primeira vez numa importação
func NewDiscoveredEmployee(id, name string) EmployeeConfig {
	return EmployeeConfig{
		ID:           id,
		Name:         name,
		Department:   DepartmentOthers,
		DefaultCost:  0,
		DefaultHours: DefaultCapacityHours,
		History:      map[MonthKey]MonthlyCost{},
	}
}
