package aggregating

import (
	"strings"

	"github.com/vfg2006/profitability-api/internal/domain"
	"github.com/vfg2006/profitability-api/pkg/utils"
)

type accumulator struct {
	hours float64
	cost  float64
}

type employeeRecord struct {
	id     string
	name   string
	config *domain.EmployeeConfig
	accumulator
}

type clientRecord struct {
	id     string
	name   string
	config *domain.ClientConfig
	accumulator
}

// registry resolve apontamentos para registros por ID e, na falta dele, pelo nome
type registry[T any] struct {
	byID   map[string]*T
	byName map[string]*T
	order  []*T
}

func newRegistry[T any]() *registry[T] {
	return &registry[T]{
		byID:   make(map[string]*T),
		byName: make(map[string]*T),
	}
}

func (r *registry[T]) add(id, name string, record *T) {
	if id != "" {
		r.byID[id] = record
	}
	// sem ID nem nome, todos os apontamentos caem no mesmo registro em branco
	if key := nameKey(name); key != "" || id == "" {
		if _, exists := r.byName[key]; !exists {
			r.byName[key] = record
		}
	}
	r.order = append(r.order, record)
}

func (r *registry[T]) find(id, name string) *T {
	if id != "" {
		if record, ok := r.byID[id]; ok {
			return record
		}
	}
	return r.byName[nameKey(name)]
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Aggregate calcula os resumos de clientes, colaboradores, setores e o consolidado global.
// A função é pura: não altera os argumentos e sempre retorna um resultado completo.
func Aggregate(
	entries []domain.TimeEntry,
	employees []domain.EmployeeConfig,
	clients []domain.ClientConfig,
	filters *domain.SummaryFilters,
) domain.Summary {
	months := ActiveMonths(filters)
	if !filters.HasRange() {
		months = entryMonths(entries)
	}

	employeeIndex := newRegistry[employeeRecord]()
	for i := range employees {
		cfg := &employees[i]
		employeeIndex.add(cfg.ID, cfg.Name, &employeeRecord{id: cfg.ID, name: cfg.Name, config: cfg})
	}

	clientIndex := newRegistry[clientRecord]()
	for i := range clients {
		cfg := &clients[i]
		clientIndex.add(cfg.ID, cfg.Name, &clientRecord{id: cfg.ID, name: cfg.Name, config: cfg})
	}

	var totalHours, totalCost float64

	// custo por apontamento usa a taxa do mês em que o trabalho ocorreu
	for _, entry := range entries {
		emp := employeeIndex.find(entry.EmployeeID, entry.Executor)
		if emp == nil {
			emp = &employeeRecord{id: entry.EmployeeID, name: entry.Executor}
			employeeIndex.add(entry.EmployeeID, entry.Executor, emp)
		}

		client := clientIndex.find(entry.ClientID, entry.Workspace)
		if client == nil {
			client = &clientRecord{id: entry.ClientID, name: entry.Workspace}
			clientIndex.add(entry.ClientID, entry.Workspace, client)
		}

		month := entry.MonthKey
		if !month.IsValid() {
			month = domain.NewMonthKey(entry.Date)
		}

		hourlyRate := 0.0
		if emp.config != nil {
			hourlyRate = emp.config.HourlyRate(month)
		}
		cost := entry.Hours * hourlyRate

		emp.hours += entry.Hours
		emp.cost += cost
		client.hours += entry.Hours
		client.cost += cost

		totalHours += entry.Hours
		totalCost += cost
	}

	clientSummaries, revenueByCategory, totalRevenue := summarizeClients(clientIndex.order, months, filters)
	employeeSummaries := summarizeEmployees(employeeIndex.order, months, filters)
	departmentSummaries, totalCapacity := summarizeDepartments(employeeSummaries)

	grossProfit := totalRevenue - totalCost

	SortClients(clientSummaries, ClientSortGrossProfit, SortDesc)
	SortEmployees(employeeSummaries, EmployeeSortUtilization, SortDesc)
	SortDepartments(departmentSummaries)

	return domain.Summary{
		Clients:     clientSummaries,
		Employees:   employeeSummaries,
		Departments: departmentSummaries,
		Dashboard: domain.DashboardSummary{
			TotalRevenue:       totalRevenue,
			TotalCost:          totalCost,
			GrossProfit:        grossProfit,
			OverallMargin:      utils.Percentage(grossProfit, totalRevenue),
			TotalHours:         totalHours,
			TotalCapacityHours: totalCapacity,
			GlobalCapacityRate: utils.Percentage(totalHours, totalCapacity),
			RevenueByCategory:  revenueByCategory,
		},
		Filters: filters,
	}
}

func summarizeClients(
	records []*clientRecord,
	months []domain.MonthKey,
	filters *domain.SummaryFilters,
) ([]domain.ClientSummary, map[domain.ClientCategory]float64, float64) {
	revenueByCategory := map[domain.ClientCategory]float64{
		domain.CategorySaber:    0,
		domain.CategoryTer:      0,
		domain.CategoryExecutar: 0,
	}

	summaries := make([]domain.ClientSummary, 0, len(records))
	totalRevenue := 0.0

	for _, record := range records {
		category := domain.CategoryExecutar
		isActive := true
		recurring := 0.0
		oneTime := 0.0

		if record.config != nil {
			category = domain.NormalizeCategory(record.config.Category)
			isActive = record.config.IsActive

			for _, month := range months {
				recurring += record.config.FeeForMonth(month) * ProRataRatio(month, filters)
			}

			if contractStartInRange(record.config, filters) {
				oneTime = record.config.OneTimeFee
			}
		}

		revenue := recurring + oneTime

		include := record.hours > 0 || revenue > 0
		if record.config != nil && (isActive || record.config.HasAnyFee()) {
			include = true
		}
		if !include {
			continue
		}

		grossProfit := revenue - record.cost
		summaries = append(summaries, domain.ClientSummary{
			ID:               record.id,
			Name:             record.name,
			TotalHours:       record.hours,
			OperationalCost:  record.cost,
			RecurringRevenue: recurring,
			OneTimeFee:       oneTime,
			Revenue:          revenue,
			GrossProfit:      grossProfit,
			Margin:           utils.Percentage(grossProfit, revenue),
			IsActive:         isActive,
			Category:         category,
		})

		if isActive || revenue > 0 {
			totalRevenue += revenue
			revenueByCategory[category] += revenue
		}
	}

	return summaries, revenueByCategory, totalRevenue
}

func summarizeEmployees(
	records []*employeeRecord,
	months []domain.MonthKey,
	filters *domain.SummaryFilters,
) []domain.EmployeeSummary {
	summaries := make([]domain.EmployeeSummary, 0, len(records))

	for _, record := range records {
		department := domain.DepartmentOthers
		capacity := 0.0

		for _, month := range months {
			monthlyCapacity := domain.DefaultCapacityHours
			if record.config != nil {
				monthlyCapacity = record.config.MonthConfig(month).Hours
			}
			capacity += monthlyCapacity * ProRataRatio(month, filters)
		}

		if record.config != nil {
			department = domain.NormalizeDepartment(record.config.Department)
		}

		if len(months) == 0 {
			capacity = domain.DefaultCapacityHours
			if record.config != nil {
				capacity = record.config.DefaultHours
			}
		}

		summaries = append(summaries, domain.EmployeeSummary{
			ID:              record.id,
			Name:            record.name,
			TotalHours:      record.hours,
			CapacityHours:   capacity,
			UtilizationRate: utils.Percentage(record.hours, capacity),
			CostGenerated:   record.cost,
			Department:      department,
		})
	}

	return summaries
}

func summarizeDepartments(employees []domain.EmployeeSummary) ([]domain.DepartmentSummary, float64) {
	stats := make(map[domain.Department]*domain.DepartmentSummary, len(domain.Departments))
	for _, d := range domain.Departments {
		stats[d] = &domain.DepartmentSummary{Name: d}
	}

	for _, e := range employees {
		s := stats[domain.NormalizeDepartment(e.Department)]
		s.TotalHoursRealized += e.TotalHours
		s.TotalCapacityHours += e.CapacityHours
		s.Headcount++
	}

	summaries := make([]domain.DepartmentSummary, 0, len(domain.Departments))
	totalCapacity := 0.0
	for _, d := range domain.Departments {
		s := stats[d]
		if s.Headcount == 0 && s.TotalCapacityHours == 0 {
			continue
		}
		s.UtilizationRate = utils.Percentage(s.TotalHoursRealized, s.TotalCapacityHours)
		summaries = append(summaries, *s)
		totalCapacity += s.TotalCapacityHours
	}

	return summaries, totalCapacity
}
