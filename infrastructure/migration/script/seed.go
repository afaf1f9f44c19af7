package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/vfg2006/profitability-api/internal/domain"
	"gopkg.in/yaml.v3"
)

// Seed é a carga inicial de colaboradores e clientes
type Seed struct {
	Employees []domain.EmployeeConfig `yaml:"employees"`
	Clients   []domain.ClientConfig   `yaml:"clients"`
}

func loadSeed(r io.Reader) (*Seed, error) {
	var seed Seed

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&seed); err != nil {
		if err == io.EOF {
			return &seed, nil
		}
		return nil, fmt.Errorf("erro ao ler arquivo de seed: %w", err)
	}

	return &seed, nil
}

// prepare completa os registros do seed: reaproveita o ID de registros já cadastrados
// com o mesmo nome e gera IDs para os novos
func (s *Seed) prepare(
	existingEmployees []domain.EmployeeConfig,
	existingClients []domain.ClientConfig,
	generateID func() (string, error),
) error {
	employeeIDs := make(map[string]string, len(existingEmployees))
	for _, e := range existingEmployees {
		employeeIDs[nameKey(e.Name)] = e.ID
	}

	for i := range s.Employees {
		employee := &s.Employees[i]
		employee.Name = strings.TrimSpace(employee.Name)
		if employee.Name == "" {
			return fmt.Errorf("colaborador %d sem nome", i+1)
		}

		if employee.ID == "" {
			employee.ID = employeeIDs[nameKey(employee.Name)]
		}
		if employee.ID == "" {
			id, err := generateID()
			if err != nil {
				return err
			}
			employee.ID = id
		}
		if employee.Department == "" {
			employee.Department = domain.DepartmentOthers
		}
		if employee.DefaultHours == 0 {
			employee.DefaultHours = domain.DefaultCapacityHours
		}
		if employee.History == nil {
			employee.History = map[domain.MonthKey]domain.MonthlyCost{}
		}
	}

	clientIDs := make(map[string]string, len(existingClients))
	for _, c := range existingClients {
		clientIDs[nameKey(c.Name)] = c.ID
	}

	for i := range s.Clients {
		client := &s.Clients[i]
		client.Name = strings.TrimSpace(client.Name)
		if client.Name == "" {
			return fmt.Errorf("cliente %d sem nome", i+1)
		}

		if client.ID == "" {
			client.ID = clientIDs[nameKey(client.Name)]
		}
		if client.ID == "" {
			id, err := generateID()
			if err != nil {
				return err
			}
			client.ID = id
		}
		if client.Category == "" {
			client.Category = domain.CategoryExecutar
		}
		if client.History == nil {
			client.History = map[domain.MonthKey]float64{}
		}
		if client.ContractStartDate != nil {
			start := domain.DateOnly(*client.ContractStartDate)
			client.ContractStartDate = &start
		}
	}

	return nil
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
