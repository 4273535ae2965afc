package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"employee-directory/internal/models"
)

// snapshotRow is the single row holding the employee array.
const snapshotRow = 1

// Querier is the subset of *pgxpool.Pool used by PostgresMirror.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresMirror stores the whole employee array as one JSONB value, the
// database analogue of the JSON file.
type PostgresMirror struct {
	db Querier
}

func NewPostgresMirror(db Querier) *PostgresMirror {
	return &PostgresMirror{db: db}
}

func (m *PostgresMirror) Ensure(ctx context.Context) error {
	if _, err := m.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS employee_snapshots (
			id         INT PRIMARY KEY,
			payload    JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`); err != nil {
		return fmt.Errorf("create employee_snapshots: %w", err)
	}
	if _, err := m.db.Exec(ctx, `
		INSERT INTO employee_snapshots (id, payload) VALUES ($1, '[]'::jsonb)
		ON CONFLICT (id) DO NOTHING`, snapshotRow); err != nil {
		return fmt.Errorf("seed employee_snapshots: %w", err)
	}
	return nil
}

func (m *PostgresMirror) Load(ctx context.Context) ([]models.Employee, error) {
	var payload []byte
	if err := m.db.QueryRow(ctx, `SELECT payload FROM employee_snapshots WHERE id=$1`, snapshotRow).
		Scan(&payload); err != nil {
		return nil, fmt.Errorf("select snapshot: %w", err)
	}
	var employees []models.Employee
	if err := json.Unmarshal(payload, &employees); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return employees, nil
}

func (m *PostgresMirror) Save(ctx context.Context, employees []models.Employee) error {
	if employees == nil {
		employees = []models.Employee{}
	}
	data, err := json.Marshal(employees)
	if err != nil {
		return fmt.Errorf("encode employees: %w", err)
	}
	if _, err := m.db.Exec(ctx, `
		INSERT INTO employee_snapshots (id, payload, updated_at) VALUES ($1, $2::jsonb, NOW())
		ON CONFLICT (id) DO UPDATE SET payload=excluded.payload, updated_at=excluded.updated_at`,
		snapshotRow, string(data)); err != nil {
		return fmt.Errorf("upsert snapshot: %w", err)
	}
	return nil
}
