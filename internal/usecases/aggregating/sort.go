package aggregating

import (
	"sort"
	"strings"

	"github.com/vfg2006/profitability-api/internal/domain"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

type ClientSortField string

const (
	ClientSortGrossProfit ClientSortField = "gross_profit"
	ClientSortRevenue     ClientSortField = "revenue"
	ClientSortMargin      ClientSortField = "margin"
	ClientSortHours       ClientSortField = "hours"
	ClientSortCost        ClientSortField = "cost"
	ClientSortName        ClientSortField = "name"
)

type EmployeeSortField string

const (
	EmployeeSortUtilization EmployeeSortField = "utilization"
	EmployeeSortHours       EmployeeSortField = "hours"
	EmployeeSortCost        EmployeeSortField = "cost"
	EmployeeSortCapacity    EmployeeSortField = "capacity"
	EmployeeSortName        EmployeeSortField = "name"
)

// ParseSortOrder aceita "asc" ou "desc", usando desc por padrão
func ParseSortOrder(value string) SortOrder {
	if strings.EqualFold(value, string(SortAsc)) {
		return SortAsc
	}
	return SortDesc
}

func clientValue(c domain.ClientSummary, field ClientSortField) float64 {
	switch field {
	case ClientSortRevenue:
		return c.Revenue
	case ClientSortMargin:
		return c.Margin
	case ClientSortHours:
		return c.TotalHours
	case ClientSortCost:
		return c.OperationalCost
	default:
		return c.GrossProfit
	}
}

func employeeValue(e domain.EmployeeSummary, field EmployeeSortField) float64 {
	switch field {
	case EmployeeSortHours:
		return e.TotalHours
	case EmployeeSortCost:
		return e.CostGenerated
	case EmployeeSortCapacity:
		return e.CapacityHours
	default:
		return e.UtilizationRate
	}
}

// less compara valores e desempata pelo nome em ordem alfabética
func less(a, b float64, nameA, nameB string, order SortOrder) bool {
	if a != b {
		if order == SortAsc {
			return a < b
		}
		return a > b
	}
	return nameA < nameB
}

func SortClients(clients []domain.ClientSummary, field ClientSortField, order SortOrder) {
	sort.SliceStable(clients, func(i, j int) bool {
		if field == ClientSortName {
			if order == SortDesc {
				return clients[i].Name > clients[j].Name
			}
			return clients[i].Name < clients[j].Name
		}
		return less(clientValue(clients[i], field), clientValue(clients[j], field), clients[i].Name, clients[j].Name, order)
	})
}

func SortEmployees(employees []domain.EmployeeSummary, field EmployeeSortField, order SortOrder) {
	sort.SliceStable(employees, func(i, j int) bool {
		if field == EmployeeSortName {
			if order == SortDesc {
				return employees[i].Name > employees[j].Name
			}
			return employees[i].Name < employees[j].Name
		}
		return less(employeeValue(employees[i], field), employeeValue(employees[j], field), employees[i].Name, employees[j].Name, order)
	})
}

// SortDepartments ordena por utilização decrescente
func SortDepartments(departments []domain.DepartmentSummary) {
	sort.SliceStable(departments, func(i, j int) bool {
		return less(departments[i].UtilizationRate, departments[j].UtilizationRate,
			string(departments[i].Name), string(departments[j].Name), SortDesc)
	})
}

// FilterByCategory mantém apenas os clientes da categoria informada
func FilterByCategory(clients []domain.ClientSummary, category domain.ClientCategory) []domain.ClientSummary {
	if category == "" {
		return clients
	}

	filtered := make([]domain.ClientSummary, 0, len(clients))
	for _, c := range clients {
		if c.Category == category {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
