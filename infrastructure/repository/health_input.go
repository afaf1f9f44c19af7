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
	healthInputsTable = "health_inputs"
)

type HealthInputRepository interface {
	Get(clientID string, month domain.MonthKey) (*domain.HealthInput, error)
	ListByMonth(month domain.MonthKey) ([]domain.HealthInput, error)
	ListAll() ([]domain.HealthInput, error)
	Upsert(input *domain.HealthInput) error
	DeleteAll() (int64, error)
	WithTx(tx *sql.Tx) HealthInputRepository
}

type healthInputRepository struct {
	db postgres.Queryer
}

func NewHealthInputRepository(conn *postgres.Connection) HealthInputRepository {
	return &healthInputRepository{
		db: conn,
	}
}

func (r *healthInputRepository) WithTx(tx *sql.Tx) HealthInputRepository {
	return &healthInputRepository{db: tx}
}

func (r *healthInputRepository) Get(clientID string, month domain.MonthKey) (*domain.HealthInput, error) {
	query, args, err := squirrel.
		Select("answers", "updated_at").
		From(healthInputsTable).
		Where(squirrel.Eq{"client_id": clientID, "month_key": string(month)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	input, err := scanHealthInput(r.db.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar avaliação: %w", err)
	}

	return input, nil
}

func (r *healthInputRepository) ListByMonth(month domain.MonthKey) ([]domain.HealthInput, error) {
	return r.list(squirrel.Eq{"month_key": string(month)})
}

func (r *healthInputRepository) ListAll() ([]domain.HealthInput, error) {
	return r.list(nil)
}

func (r *healthInputRepository) list(where squirrel.Sqlizer) ([]domain.HealthInput, error) {
	queryBuilder := squirrel.
		Select("answers", "updated_at").
		From(healthInputsTable).
		OrderBy("month_key ASC", "client_id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if where != nil {
		queryBuilder = queryBuilder.Where(where)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar avaliações: %w", err)
	}
	defer rows.Close()

	inputs := make([]domain.HealthInput, 0)
	for rows.Next() {
		input, err := scanHealthInput(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear avaliação: %w", err)
		}
		inputs = append(inputs, *input)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return inputs, nil
}

// Upsert grava a avaliação do mês; a última escrita prevalece
func (r *healthInputRepository) Upsert(input *domain.HealthInput) error {
	answers, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("erro ao serializar avaliação para JSON: %w", err)
	}

	query, args, err := squirrel.
		Insert(healthInputsTable).
		Columns("client_id", "month_key", "answers").
		Values(input.ClientID, string(input.MonthKey), answers).
		Suffix(`
			ON CONFLICT (client_id, month_key) DO UPDATE SET
				answers = EXCLUDED.answers,
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
		return fmt.Errorf("erro ao salvar avaliação: %w", err)
	}

	return nil
}

func (r *healthInputRepository) DeleteAll() (int64, error) {
	result, err := r.db.Exec("DELETE FROM " + healthInputsTable)
	if err != nil {
		return 0, fmt.Errorf("erro ao remover avaliações: %w", err)
	}
	return result.RowsAffected()
}

func scanHealthInput(row scanner) (*domain.HealthInput, error) {
	var answers []byte
	var updatedAt sql.NullTime

	if err := row.Scan(&answers, &updatedAt); err != nil {
		return nil, err
	}

	var input domain.HealthInput
	if err := json.Unmarshal(answers, &input); err != nil {
		return nil, fmt.Errorf("erro ao deserializar avaliação: %w", err)
	}

	if updatedAt.Valid {
		input.LastUpdated = &updatedAt.Time
	}

	return &input, nil
}
