package main

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/profitability-api/internal/domain"
)

func sequentialIDs() func() (string, error) {
	next := 0
	return func() (string, error) {
		next++
		return "seed" + strconv.Itoa(next), nil
	}
}

func TestLoadSeed_Exemplo(t *testing.T) {
	file, err := os.Open("seed.example.yaml")
	require.NoError(t, err)
	defer file.Close()

	seed, err := loadSeed(file)
	require.NoError(t, err)

	require.Len(t, seed.Employees, 2)
	assert.Equal(t, domain.DepartmentCreation, seed.Employees[0].Department)
	assert.Equal(t, domain.MonthlyCost{Cost: 6000, Hours: 150}, seed.Employees[0].History["2025-01"])

	require.Len(t, seed.Clients, 2)
	assert.Equal(t, 6602.01, seed.Clients[0].DefaultFee)
	require.NotNil(t, seed.Clients[0].ContractStartDate)
	assert.Equal(t, time.Date(2025, time.February, 21, 0, 0, 0, 0, time.UTC), seed.Clients[0].ContractStartDate.UTC())
	assert.Equal(t, 3000.0, seed.Clients[1].History["2025-01"])
}

func TestLoadSeed_Invalido(t *testing.T) {
	_, err := loadSeed(strings.NewReader("employees:\n  - nome: Ana\n"))
	assert.Error(t, err)

	seed, err := loadSeed(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, seed.Employees)
}

func TestSeed_prepare(t *testing.T) {
	seed := &Seed{
		Employees: []domain.EmployeeConfig{
			{Name: " Ana Souza "},
			{Name: "Bruno Lima", DefaultHours: 120},
			{ID: "fixo", Name: "Carla"},
		},
		Clients: []domain.ClientConfig{
			{Name: "loja centro"},
			{Name: "Padaria"},
		},
	}

	existingEmployees := []domain.EmployeeConfig{{ID: "emp-ana", Name: "Ana Souza"}}
	existingClients := []domain.ClientConfig{{ID: "cli-centro", Name: "Loja Centro"}}

	require.NoError(t, seed.prepare(existingEmployees, existingClients, sequentialIDs()))

	assert.Equal(t, "emp-ana", seed.Employees[0].ID)
	assert.Equal(t, "Ana Souza", seed.Employees[0].Name)
	assert.Equal(t, domain.DepartmentOthers, seed.Employees[0].Department)
	assert.Equal(t, domain.DefaultCapacityHours, seed.Employees[0].DefaultHours)
	assert.NotNil(t, seed.Employees[0].History)

	assert.Equal(t, "seed1", seed.Employees[1].ID)
	assert.Equal(t, 120.0, seed.Employees[1].DefaultHours)
	assert.Equal(t, "fixo", seed.Employees[2].ID)

	assert.Equal(t, "cli-centro", seed.Clients[0].ID)
	assert.Equal(t, "seed2", seed.Clients[1].ID)
	assert.Equal(t, domain.CategoryExecutar, seed.Clients[1].Category)
}

func TestSeed_prepare_Erros(t *testing.T) {
	seed := &Seed{Employees: []domain.EmployeeConfig{{Name: "  "}}}
	assert.Error(t, seed.prepare(nil, nil, sequentialIDs()))

	seed = &Seed{Clients: []domain.ClientConfig{{Name: "Nova"}}}
	err := seed.prepare(nil, nil, func() (string, error) { return "", errors.New("sem entropia") })
	assert.EqualError(t, err, "sem entropia")
}
