package domain

type ClientSummary struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	TotalHours       float64        `json:"total_hours"`
	OperationalCost  float64        `json:"operational_cost"`
	RecurringRevenue float64        `json:"recurring_revenue"`
	OneTimeFee       float64        `json:"one_time_fee"`
	Revenue          float64        `json:"revenue"`
	GrossProfit      float64        `json:"gross_profit"`
	Margin           float64        `json:"margin"`
	IsActive         bool           `json:"is_active"`
	Category         ClientCategory `json:"category"`
}

type EmployeeSummary struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	TotalHours      float64    `json:"total_hours"`
	CapacityHours   float64    `json:"capacity_hours"`
	UtilizationRate float64    `json:"utilization_rate"`
	CostGenerated   float64    `json:"cost_generated"`
	Department      Department `json:"department"`
}

type DepartmentSummary struct {
	Name               Department `json:"name"`
	TotalHoursRealized float64    `json:"total_hours_realized"`
	TotalCapacityHours float64    `json:"total_capacity_hours"`
	UtilizationRate    float64    `json:"utilization_rate"`
	Headcount          int        `json:"headcount"`
}

type DashboardSummary struct {
	TotalRevenue       float64                    `json:"total_revenue"`
	TotalCost          float64                    `json:"total_cost"`
	GrossProfit        float64                    `json:"gross_profit"`
	OverallMargin      float64                    `json:"overall_margin"`
	TotalHours         float64                    `json:"total_hours"`
	TotalCapacityHours float64                    `json:"total_capacity_hours"`
	GlobalCapacityRate float64                    `json:"global_capacity_rate"`
	RevenueByCategory  map[ClientCategory]float64 `json:"revenue_by_category"`
}

// Summary agrupa todos os resultados de uma agregação
type Summary struct {
	Clients     []ClientSummary     `json:"clients"`
	Employees   []EmployeeSummary   `json:"employees"`
	Departments []DepartmentSummary `json:"departments"`
	Dashboard   DashboardSummary    `json:"dashboard"`
	Filters     *SummaryFilters     `json:"filters,omitempty"`
}
