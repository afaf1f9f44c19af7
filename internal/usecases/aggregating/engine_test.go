package aggregating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/profitability-api/internal/domain"
)

func entry(id, employeeID, executor, clientID, workspace string, hours float64, day time.Time) domain.TimeEntry {
	return domain.TimeEntry{
		ID:         id,
		EmployeeID: employeeID,
		ClientID:   clientID,
		Executor:   executor,
		Workspace:  workspace,
		Hours:      hours,
		Date:       day,
		MonthKey:   domain.NewMonthKey(day),
	}
}

func findClient(t *testing.T, summary domain.Summary, name string) domain.ClientSummary {
	t.Helper()
	for _, c := range summary.Clients {
		if c.Name == name {
			return c
		}
	}
	require.Failf(t, "cliente não encontrado", "cliente %q ausente do resumo", name)
	return domain.ClientSummary{}
}

func findEmployee(t *testing.T, summary domain.Summary, name string) domain.EmployeeSummary {
	t.Helper()
	for _, e := range summary.Employees {
		if e.Name == name {
			return e
		}
	}
	require.Failf(t, "colaborador não encontrado", "colaborador %q ausente do resumo", name)
	return domain.EmployeeSummary{}
}

func TestAggregate(t *testing.T) {
	march := &domain.SummaryFilters{
		StartDate: date(2025, time.March, 1),
		EndDate:   date(2025, time.March, 31),
	}

	ana := domain.EmployeeConfig{
		ID:           "emp-ana",
		Name:         "Ana",
		Department:   domain.DepartmentCreation,
		DefaultCost:  8000,
		DefaultHours: 160,
	}

	tests := []struct {
		name      string
		entries   []domain.TimeEntry
		employees []domain.EmployeeConfig
		clients   []domain.ClientConfig
		filters   *domain.SummaryFilters
		validate  func(t *testing.T, summary domain.Summary)
	}{
		{
			name: "Custo do apontamento usa a taxa horária do mês",
			entries: []domain.TimeEntry{
				entry("e1", "emp-ana", "Ana", "cli-a", "Loja A", 10, *date(2025, time.March, 10)),
			},
			employees: []domain.EmployeeConfig{ana},
			clients: []domain.ClientConfig{
				{ID: "cli-a", Name: "Loja A", IsActive: true, Category: domain.CategoryTer, DefaultFee: 3000},
			},
			filters: march,
			validate: func(t *testing.T, summary domain.Summary) {
				employee := findEmployee(t, summary, "Ana")
				assert.Equal(t, 500.0, employee.CostGenerated)
				assert.Equal(t, 160.0, employee.CapacityHours)
				assert.InDelta(t, 6.25, employee.UtilizationRate, 1e-9)
				assert.Equal(t, domain.DepartmentCreation, employee.Department)

				client := findClient(t, summary, "Loja A")
				assert.Equal(t, 500.0, client.OperationalCost)
				assert.Equal(t, 3000.0, client.Revenue)
				assert.Equal(t, 2500.0, client.GrossProfit)
				assert.InDelta(t, 83.3333, client.Margin, 1e-4)

				assert.Equal(t, 3000.0, summary.Dashboard.TotalRevenue)
				assert.Equal(t, 500.0, summary.Dashboard.TotalCost)
				assert.Equal(t, 2500.0, summary.Dashboard.GrossProfit)
				assert.Equal(t, 10.0, summary.Dashboard.TotalHours)
				assert.Equal(t, 3000.0, summary.Dashboard.RevenueByCategory[domain.CategoryTer])
				assert.Equal(t, 0.0, summary.Dashboard.RevenueByCategory[domain.CategorySaber])
				assert.Len(t, summary.Dashboard.RevenueByCategory, 3)
			},
		},
		{
			name: "Histórico do mês do apontamento prevalece sobre o padrão",
			entries: []domain.TimeEntry{
				entry("e1", "emp-bia", "Bia", "cli-a", "Loja A", 10, *date(2025, time.February, 10)),
				entry("e2", "emp-bia", "Bia", "cli-a", "Loja A", 10, *date(2025, time.March, 10)),
			},
			employees: []domain.EmployeeConfig{
				{
					ID:           "emp-bia",
					Name:         "Bia",
					Department:   domain.DepartmentService,
					DefaultCost:  8000,
					DefaultHours: 160,
					History: map[domain.MonthKey]domain.MonthlyCost{
						"2025-02": {Cost: 4000, Hours: 100},
					},
				},
			},
			filters: &domain.SummaryFilters{
				StartDate: date(2025, time.February, 1),
				EndDate:   date(2025, time.March, 31),
			},
			validate: func(t *testing.T, summary domain.Summary) {
				employee := findEmployee(t, summary, "Bia")
				// fevereiro: 10 * 40, março: 10 * 50
				assert.Equal(t, 900.0, employee.CostGenerated)
				assert.Equal(t, 260.0, employee.CapacityHours)
			},
		},
		{
			name:    "Fee mensal proporcional aos dias do período",
			entries: []domain.TimeEntry{},
			clients: []domain.ClientConfig{
				{ID: "cli-a", Name: "Loja A", IsActive: true, Category: domain.CategorySaber, DefaultFee: 3000},
			},
			filters: &domain.SummaryFilters{
				StartDate: date(2025, time.March, 1),
				EndDate:   date(2025, time.March, 15),
			},
			validate: func(t *testing.T, summary domain.Summary) {
				client := findClient(t, summary, "Loja A")
				assert.InDelta(t, 1451.61, client.Revenue, 0.01)
				assert.Equal(t, 0.0, client.TotalHours)
				assert.Equal(t, 100.0, client.Margin)
			},
		},
		{
			name:    "Taxa de implantação entra uma vez quando o contrato começa no período",
			entries: []domain.TimeEntry{},
			clients: []domain.ClientConfig{
				{
					ID:                "cli-b",
					Name:              "Loja B",
					IsActive:          true,
					Category:          domain.CategoryExecutar,
					OneTimeFee:        5000,
					ContractStartDate: date(2025, time.March, 10),
				},
			},
			filters: &domain.SummaryFilters{
				StartDate: date(2025, time.January, 1),
				EndDate:   date(2025, time.June, 30),
			},
			validate: func(t *testing.T, summary domain.Summary) {
				client := findClient(t, summary, "Loja B")
				assert.Equal(t, 5000.0, client.OneTimeFee)
				assert.Equal(t, 5000.0, client.Revenue)
				assert.Equal(t, 0.0, client.RecurringRevenue)
			},
		},
		{
			name:    "Taxa de implantação fica fora de um período posterior",
			entries: []domain.TimeEntry{},
			clients: []domain.ClientConfig{
				{
					ID:                "cli-b",
					Name:              "Loja B",
					IsActive:          true,
					OneTimeFee:        5000,
					ContractStartDate: date(2025, time.March, 10),
				},
			},
			filters: &domain.SummaryFilters{
				StartDate: date(2025, time.April, 1),
				EndDate:   date(2025, time.April, 30),
			},
			validate: func(t *testing.T, summary domain.Summary) {
				client := findClient(t, summary, "Loja B")
				assert.Equal(t, 0.0, client.OneTimeFee)
				assert.Equal(t, 0.0, client.Revenue)
			},
		},
		{
			name: "Executor e workspace sem configuração usam os padrões",
			entries: []domain.TimeEntry{
				entry("e1", "", "Carlos", "", "Loja Nova", 8, *date(2025, time.March, 3)),
			},
			filters: march,
			validate: func(t *testing.T, summary domain.Summary) {
				employee := findEmployee(t, summary, "Carlos")
				assert.Equal(t, 0.0, employee.CostGenerated)
				assert.Equal(t, domain.DefaultCapacityHours, employee.CapacityHours)
				assert.Equal(t, domain.DepartmentOthers, employee.Department)
				assert.InDelta(t, 5.0, employee.UtilizationRate, 1e-9)

				client := findClient(t, summary, "Loja Nova")
				assert.Equal(t, 8.0, client.TotalHours)
				assert.Equal(t, domain.CategoryExecutar, client.Category)
				assert.True(t, client.IsActive)
				assert.Equal(t, 0.0, client.Margin)
			},
		},
		{
			name: "Apontamento sem ID é associado à configuração pelo nome",
			entries: []domain.TimeEntry{
				entry("e1", "", " ana ", "", "LOJA A", 10, *date(2025, time.March, 10)),
			},
			employees: []domain.EmployeeConfig{ana},
			clients: []domain.ClientConfig{
				{ID: "cli-a", Name: "Loja A", IsActive: true, DefaultFee: 1000},
			},
			filters: march,
			validate: func(t *testing.T, summary domain.Summary) {
				require.Len(t, summary.Employees, 1)
				assert.Equal(t, "emp-ana", summary.Employees[0].ID)
				assert.Equal(t, 500.0, summary.Employees[0].CostGenerated)

				require.Len(t, summary.Clients, 1)
				assert.Equal(t, "cli-a", summary.Clients[0].ID)
				assert.Equal(t, 10.0, summary.Clients[0].TotalHours)
			},
		},
		{
			name:    "Cliente inativo sem fee e sem horas não aparece",
			entries: []domain.TimeEntry{},
			clients: []domain.ClientConfig{
				{ID: "cli-x", Name: "Antigo", IsActive: false},
				{ID: "cli-y", Name: "Ativo", IsActive: true},
			},
			filters: march,
			validate: func(t *testing.T, summary domain.Summary) {
				require.Len(t, summary.Clients, 1)
				assert.Equal(t, "Ativo", summary.Clients[0].Name)
			},
		},
		{
			name:    "Colaborador configurado aparece mesmo sem apontamentos",
			entries: []domain.TimeEntry{},
			employees: []domain.EmployeeConfig{
				ana,
				{ID: "emp-dan", Name: "Dan", Department: "Financeiro", DefaultHours: 120},
			},
			filters: march,
			validate: func(t *testing.T, summary domain.Summary) {
				require.Len(t, summary.Employees, 2)
				dan := findEmployee(t, summary, "Dan")
				assert.Equal(t, 120.0, dan.CapacityHours)
				assert.Equal(t, domain.DepartmentOthers, dan.Department)

				require.Len(t, summary.Departments, 2)
				assert.Equal(t, 280.0, summary.Dashboard.TotalCapacityHours)
			},
		},
		{
			name: "Sem período usa os meses dos apontamentos sem proporção",
			entries: []domain.TimeEntry{
				entry("e1", "emp-ana", "Ana", "cli-a", "Loja A", 4, *date(2025, time.March, 10)),
				entry("e2", "emp-ana", "Ana", "cli-a", "Loja A", 6, *date(2025, time.April, 2)),
			},
			employees: []domain.EmployeeConfig{ana},
			clients: []domain.ClientConfig{
				{
					ID:                "cli-a",
					Name:              "Loja A",
					IsActive:          true,
					DefaultFee:        1000,
					OneTimeFee:        700,
					ContractStartDate: date(2025, time.March, 1),
				},
			},
			filters: &domain.SummaryFilters{},
			validate: func(t *testing.T, summary domain.Summary) {
				client := findClient(t, summary, "Loja A")
				assert.Equal(t, 2000.0, client.Revenue)
				assert.Equal(t, 0.0, client.OneTimeFee)

				employee := findEmployee(t, summary, "Ana")
				assert.Equal(t, 320.0, employee.CapacityHours)
			},
		},
		{
			name:      "Sem período e sem apontamentos a capacidade é a carga padrão",
			entries:   []domain.TimeEntry{},
			employees: []domain.EmployeeConfig{{ID: "emp-eva", Name: "Eva", DefaultHours: 100}},
			filters:   nil,
			validate: func(t *testing.T, summary domain.Summary) {
				employee := findEmployee(t, summary, "Eva")
				assert.Equal(t, 100.0, employee.CapacityHours)
			},
		},
		{
			name:      "Horas configuradas zeradas não geram divisão por zero",
			entries:   []domain.TimeEntry{entry("e1", "emp-zed", "Zed", "", "Loja A", 5, *date(2025, time.March, 5))},
			employees: []domain.EmployeeConfig{{ID: "emp-zed", Name: "Zed", DefaultCost: 5000, DefaultHours: 0}},
			filters:   march,
			validate: func(t *testing.T, summary domain.Summary) {
				employee := findEmployee(t, summary, "Zed")
				assert.Equal(t, 0.0, employee.CostGenerated)
				assert.Equal(t, 0.0, employee.CapacityHours)
				assert.Equal(t, 0.0, employee.UtilizationRate)
			},
		},
		{
			name: "Ordenação padrão por lucro bruto e utilização",
			entries: []domain.TimeEntry{
				entry("e1", "emp-ana", "Ana", "cli-a", "Loja A", 40, *date(2025, time.March, 3)),
				entry("e2", "", "Beto", "cli-b", "Loja B", 80, *date(2025, time.March, 4)),
			},
			employees: []domain.EmployeeConfig{ana},
			clients: []domain.ClientConfig{
				{ID: "cli-a", Name: "Loja A", IsActive: true, DefaultFee: 1000},
				{ID: "cli-b", Name: "Loja B", IsActive: true, DefaultFee: 5000},
			},
			filters: march,
			validate: func(t *testing.T, summary domain.Summary) {
				require.Len(t, summary.Clients, 2)
				assert.Equal(t, "Loja B", summary.Clients[0].Name)
				assert.Equal(t, "Loja A", summary.Clients[1].Name)

				require.Len(t, summary.Employees, 2)
				assert.Equal(t, "Beto", summary.Employees[0].Name)
				assert.Equal(t, "Ana", summary.Employees[1].Name)

				require.Len(t, summary.Departments, 2)
				assert.Equal(t, domain.DepartmentOthers, summary.Departments[0].Name)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := Aggregate(tt.entries, tt.employees, tt.clients, tt.filters)
			tt.validate(t, summary)
		})
	}
}

func TestAggregate_IsIdempotent(t *testing.T) {
	filters := &domain.SummaryFilters{
		StartDate: date(2025, time.January, 15),
		EndDate:   date(2025, time.March, 10),
	}
	entries := []domain.TimeEntry{
		entry("e1", "emp-ana", "Ana", "cli-a", "Loja A", 3.5, *date(2025, time.January, 20)),
		entry("e2", "emp-ana", "Ana", "cli-b", "Loja B", 1.25, *date(2025, time.February, 11)),
		entry("e3", "", "Caio", "cli-a", "Loja A", 2, *date(2025, time.March, 9)),
	}
	employees := []domain.EmployeeConfig{
		{ID: "emp-ana", Name: "Ana", Department: domain.DepartmentTraffic, DefaultCost: 6000, DefaultHours: 150},
	}
	clients := []domain.ClientConfig{
		{ID: "cli-a", Name: "Loja A", IsActive: true, Category: domain.CategorySaber, DefaultFee: 2500,
			History: map[domain.MonthKey]float64{"2025-02": 2800}},
		{ID: "cli-b", Name: "Loja B", IsActive: true, Category: domain.CategoryTer, DefaultFee: 1800,
			OneTimeFee: 900, ContractStartDate: date(2025, time.February, 1)},
	}

	first := Aggregate(entries, employees, clients, filters)
	second := Aggregate(entries, employees, clients, filters)

	assert.Equal(t, first, second)
	assert.Equal(t, "emp-ana", employees[0].ID)
	assert.Len(t, entries, 3)
}

func TestAggregate_GroupsBlankExecutorAndWorkspace(t *testing.T) {
	filters := &domain.SummaryFilters{
		StartDate: date(2025, time.March, 1),
		EndDate:   date(2025, time.March, 31),
	}
	entries := []domain.TimeEntry{
		entry("e1", "", "", "", "", 2, *date(2025, time.March, 3)),
		entry("e2", "", "  ", "", "", 1.5, *date(2025, time.March, 4)),
		entry("e3", "", "Ana", "", "Loja A", 1, *date(2025, time.March, 5)),
	}

	summary := Aggregate(entries, nil, nil, filters)

	require.Len(t, summary.Employees, 2)
	require.Len(t, summary.Clients, 2)

	blankEmployee := findEmployee(t, summary, "")
	assert.Equal(t, 3.5, blankEmployee.TotalHours)

	blankClient := findClient(t, summary, "")
	assert.Equal(t, 3.5, blankClient.TotalHours)

	assert.Equal(t, 1.0, findEmployee(t, summary, "Ana").TotalHours)
	assert.Equal(t, 4.5, summary.Dashboard.TotalHours)
}

func TestSortClients(t *testing.T) {
	clients := []domain.ClientSummary{
		{Name: "Beta", Revenue: 100, TotalHours: 5},
		{Name: "Alfa", Revenue: 100, TotalHours: 10},
		{Name: "Gama", Revenue: 300, TotalHours: 1},
	}

	SortClients(clients, ClientSortRevenue, SortDesc)
	assert.Equal(t, []string{"Gama", "Alfa", "Beta"}, clientNames(clients))

	SortClients(clients, ClientSortHours, SortAsc)
	assert.Equal(t, []string{"Gama", "Beta", "Alfa"}, clientNames(clients))

	SortClients(clients, ClientSortName, SortAsc)
	assert.Equal(t, []string{"Alfa", "Beta", "Gama"}, clientNames(clients))
}

func TestFilterByCategory(t *testing.T) {
	clients := []domain.ClientSummary{
		{Name: "A", Category: domain.CategorySaber},
		{Name: "B", Category: domain.CategoryTer},
	}

	assert.Len(t, FilterByCategory(clients, ""), 2)
	filtered := FilterByCategory(clients, domain.CategoryTer)
	assert.Equal(t, []string{"B"}, clientNames(filtered))
}

func TestParseSortOrder(t *testing.T) {
	assert.Equal(t, SortAsc, ParseSortOrder("ASC"))
	assert.Equal(t, SortDesc, ParseSortOrder("desc"))
	assert.Equal(t, SortDesc, ParseSortOrder(""))
}

func clientNames(clients []domain.ClientSummary) []string {
	names := make([]string, 0, len(clients))
	for _, c := range clients {
		names = append(names, c.Name)
	}
	return names
}
