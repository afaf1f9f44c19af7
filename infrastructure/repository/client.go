package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/profitability-api/infrastructure/database/postgres"
	"github.com/vfg2006/profitability-api/internal/domain"
)

const (
	clientsTable = "clients"
)

var clientColumns = []string{
	"id", "name", "is_active", "category", "default_fee", "history",
	"one_time_fee", "contract_start_date", "created_at", "updated_at",
}

type ClientRepository interface {
	List() ([]domain.ClientConfig, error)
	ListActive() ([]domain.ClientConfig, error)
	GetByID(id string) (*domain.ClientConfig, error)
	Upsert(client *domain.ClientConfig) error
	DeleteAll() (int64, error)
	WithTx(tx *sql.Tx) ClientRepository
}

type clientRepository struct {
	db postgres.Queryer
}

func NewClientRepository(conn *postgres.Connection) ClientRepository {
	return &clientRepository{
		db: conn,
	}
}

func (r *clientRepository) WithTx(tx *sql.Tx) ClientRepository {
	return &clientRepository{db: tx}
}

func (r *clientRepository) List() ([]domain.ClientConfig, error) {
	return r.list(nil)
}

func (r *clientRepository) ListActive() ([]domain.ClientConfig, error) {
	return r.list(squirrel.Eq{"is_active": true})
}

func (r *clientRepository) list(where squirrel.Sqlizer) ([]domain.ClientConfig, error) {
	queryBuilder := squirrel.
		Select(clientColumns...).
		From(clientsTable).
		OrderBy("name ASC").
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
		return nil, fmt.Errorf("erro ao listar clientes: %w", err)
	}
	defer rows.Close()

	clients := make([]domain.ClientConfig, 0)
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
		}
		clients = append(clients, *client)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return clients, nil
}

func (r *clientRepository) GetByID(id string) (*domain.ClientConfig, error) {
	query, args, err := squirrel.
		Select(clientColumns...).
		From(clientsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	client, err := scanClient(r.db.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar cliente: %w", err)
	}

	return client, nil
}

func (r *clientRepository) Upsert(client *domain.ClientConfig) error {
	history, err := json.Marshal(client.History)
	if err != nil {
		return fmt.Errorf("erro ao serializar histórico para JSON: %w", err)
	}

	var contractStart any
	if client.ContractStartDate != nil && !client.ContractStartDate.IsZero() {
		contractStart = client.ContractStartDate.Format(time.DateOnly)
	}

	query, args, err := squirrel.
		Insert(clientsTable).
		Columns("id", "name", "is_active", "category", "default_fee", "history", "one_time_fee", "contract_start_date").
		Values(
			client.ID,
			client.Name,
			client.IsActive,
			client.Category,
			client.DefaultFee,
			history,
			client.OneTimeFee,
			contractStart,
		).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				is_active = EXCLUDED.is_active,
				category = EXCLUDED.category,
				default_fee = EXCLUDED.default_fee,
				history = EXCLUDED.history,
				one_time_fee = EXCLUDED.one_time_fee,
				contract_start_date = EXCLUDED.contract_start_date,
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
		return fmt.Errorf("erro ao salvar cliente: %w", err)
	}

	return nil
}

func (r *clientRepository) DeleteAll() (int64, error) {
	result, err := r.db.Exec("DELETE FROM " + clientsTable)
	if err != nil {
		return 0, fmt.Errorf("erro ao remover clientes: %w", err)
	}
	return result.RowsAffected()
}

func scanClient(row scanner) (*domain.ClientConfig, error) {
	var client domain.ClientConfig
	var history []byte
	var contractStart sql.NullTime

	err := row.Scan(
		&client.ID,
		&client.Name,
		&client.IsActive,
		&client.Category,
		&client.DefaultFee,
		&history,
		&client.OneTimeFee,
		&contractStart,
		&client.CreatedAt,
		&client.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if contractStart.Valid {
		start := domain.DateOnly(contractStart.Time)
		client.ContractStartDate = &start
	}

	client.History = map[domain.MonthKey]float64{}
	if len(history) > 0 {
		if err := json.Unmarshal(history, &client.History); err != nil {
			return nil, fmt.Errorf("erro ao deserializar histórico: %w", err)
		}
	}

	return &client, nil
}
