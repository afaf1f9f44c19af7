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
	timeEntriesTable = "time_entries"
)

var timeEntryColumns = []string{
	"id", "employee_id", "client_id", "executor", "workspace",
	"realized_time", "hours", "entry_date", "month_key",
}

type TimeEntryRepository interface {
	ListByPeriod(filters *domain.SummaryFilters) ([]domain.TimeEntry, error)
	DeleteByPeriod(startDate, endDate time.Time) (int64, error)
	InsertBatch(entries []domain.TimeEntry) error
	DeleteAll() (int64, error)
	WithTx(tx *sql.Tx) TimeEntryRepository
}

type timeEntryRepository struct {
	db postgres.Queryer
}

func NewTimeEntryRepository(conn *postgres.Connection) TimeEntryRepository {
	return &timeEntryRepository{
		db: conn,
	}
}

func (r *timeEntryRepository) WithTx(tx *sql.Tx) TimeEntryRepository {
	return &timeEntryRepository{db: tx}
}

// ListByPeriod busca os apontamentos do intervalo; pontas nulas deixam o intervalo aberto
func (r *timeEntryRepository) ListByPeriod(filters *domain.SummaryFilters) ([]domain.TimeEntry, error) {
	queryBuilder := squirrel.
		Select(timeEntryColumns...).
		From(timeEntriesTable).
		OrderBy("entry_date ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filters != nil && filters.StartDate != nil && !filters.StartDate.IsZero() {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"entry_date": filters.StartDate.Format(time.DateOnly)})
	}
	if filters != nil && filters.EndDate != nil && !filters.EndDate.IsZero() {
		queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"entry_date": filters.EndDate.Format(time.DateOnly)})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.TimeEntry, 0)
	for rows.Next() {
		var entry domain.TimeEntry
		var employeeID, clientID sql.NullString
		var monthKey string

		if err := rows.Scan(
			&entry.ID,
			&employeeID,
			&clientID,
			&entry.Executor,
			&entry.Workspace,
			&entry.RealizedTime,
			&entry.Hours,
			&entry.Date,
			&monthKey,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear apontamento: %w", err)
		}

		entry.EmployeeID = employeeID.String
		entry.ClientID = clientID.String
		entry.MonthKey = domain.MonthKey(monthKey)
		entry.Date = domain.DateOnly(entry.Date)
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func (r *timeEntryRepository) DeleteByPeriod(startDate, endDate time.Time) (int64, error) {
	query, args, err := squirrel.
		Delete(timeEntriesTable).
		Where(squirrel.GtOrEq{"entry_date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"entry_date": endDate.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.db.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao remover apontamentos do período: %w", err)
	}

	return result.RowsAffected()
}

func (r *timeEntryRepository) InsertBatch(entries []domain.TimeEntry) error {
	for start := 0; start < len(entries); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(entries) {
			end = len(entries)
		}

		queryBuilder := squirrel.
			Insert(timeEntriesTable).
			Columns(timeEntryColumns...).
			PlaceholderFormat(squirrel.Dollar)

		for _, e := range entries[start:end] {
			queryBuilder = queryBuilder.Values(
				e.ID,
				nullableString(e.EmployeeID),
				nullableString(e.ClientID),
				e.Executor,
				e.Workspace,
				e.RealizedTime,
				e.Hours,
				e.Date.Format(time.DateOnly),
				string(e.MonthKey),
			)
		}

		query, args, err := queryBuilder.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := r.db.Exec(query, args...); err != nil {
			if pqErr, ok := err.(*pq.Error); ok {
				return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
			}
			return fmt.Errorf("erro ao inserir apontamentos: %w", err)
		}
	}

	return nil
}

func (r *timeEntryRepository) DeleteAll() (int64, error) {
	result, err := r.db.Exec("DELETE FROM " + timeEntriesTable)
	if err != nil {
		return 0, fmt.Errorf("erro ao remover apontamentos: %w", err)
	}
	return result.RowsAffected()
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
