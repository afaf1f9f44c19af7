package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/profitability-api/infrastructure/database/postgres"
	"github.com/vfg2006/profitability-api/internal/domain"
)

const (
	employeesTable = "employees"
)

var employeeColumns = []string{"id", "name", "department", "default_cost", "default_hours", "history", "created_at", "updated_at"}

type EmployeeRepository interface {
	List() ([]domain.EmployeeConfig, error)
	GetByID(id string) (*domain.EmployeeConfig, error)
	Upsert(employee *domain.EmployeeConfig) error
	DeleteAll() (int64, error)
	WithTx(tx *sql.Tx) EmployeeRepository
}

type employeeRepository struct {
	db postgres.Queryer
}

func NewEmployeeRepository(conn *postgres.Connection) EmployeeRepository {
	return &employeeRepository{
		db: conn,
	}
}

func (r *employeeRepository) WithTx(tx *sql.Tx) EmployeeRepository {
	return &employeeRepository{db: tx}
}

func (r *employeeRepository) List() ([]domain.EmployeeConfig, error) {
	query, args, err := squirrel.
		Select(employeeColumns...).
		From(employeesTable).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar colaboradores: %w", err)
	}
	defer rows.Close()

	employees := make([]domain.EmployeeConfig, 0)
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear colaborador: %w", err)
		}
		employees = append(employees, *employee)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return employees, nil
}

func (r *employeeRepository) GetByID(id string) (*domain.EmployeeConfig, error) {
	query, args, err := squirrel.
		Select(employeeColumns...).
		From(employeesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	employee, err := scanEmployee(r.db.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar colaborador: %w", err)
	}

	return employee, nil
}

func (r *employeeRepository) Upsert(employee *domain.EmployeeConfig) error {
	history, err := json.Marshal(employee.History)
	if err != nil {
		return fmt.Errorf("erro ao serializar histórico para JSON: %w", err)
	}

	query, args, err := squirrel.
		Insert(employeesTable).
		Columns("id", "name", "department", "default_cost", "default_hours", "history").
		Values(employee.ID, employee.Name, employee.Department, employee.DefaultCost, employee.DefaultHours, history).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				department = EXCLUDED.department,
				default_cost = EXCLUDED.default_cost,
				default_hours = EXCLUDED.default_hours,
				history = EXCLUDED.history,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.db.Exec(query, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao salvar colaborador: %w", err)
	}

	return nil
}

func (r *employeeRepository) DeleteAll() (int64, error) {
	result, err := r.db.Exec("DELETE FROM " + employeesTable)
	if err != nil {
		return 0, fmt.Errorf("erro ao remover colaboradores: %w", err)
	}
	return result.RowsAffected()
}

func scanEmployee(row scanner) (*domain.EmployeeConfig, error) {
	var employee domain.EmployeeConfig
	var history []byte

	err := row.Scan(
		&employee.ID,
		&employee.Name,
		&employee.Department,
		&employee.DefaultCost,
		&employee.DefaultHours,
		&history,
		&employee.CreatedAt,
		&employee.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	employee.History = map[domain.MonthKey]domain.MonthlyCost{}
	if len(history) > 0 {
		if err := json.Unmarshal(history, &employee.History); err != nil {
			return nil, fmt.Errorf("erro ao deserializar histórico: %w", err)
		}
	}

	return &employee, nil
}
