package store

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDB emulates the single employee_snapshots row.
type fakeDB struct {
	execs   []string
	payload []byte
	execErr error
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, sql)
	if f.execErr != nil {
		return pgconn.CommandTag{}, f.execErr
	}
	switch {
	case strings.Contains(sql, "DO NOTHING"):
		if f.payload == nil {
			f.payload = []byte("[]")
		}
	case strings.Contains(sql, "DO UPDATE"):
		f.payload = []byte(args[1].(string))
	}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (f *fakeDB) QueryRow(_ context.Context, _ string, _ ...any) pgx.Row {
	return fakeRow{payload: f.payload}
}

type fakeRow struct {
	payload []byte
}

func (r fakeRow) Scan(dest ...any) error {
	if r.payload == nil {
		return pgx.ErrNoRows
	}
	*(dest[0].(*[]byte)) = append([]byte(nil), r.payload...)
	return nil
}

func TestPostgresMirror_RoundTrip(t *testing.T) {
	ctx := context.Background()
	db := &fakeDB{}

	s := New(ctx, NewPostgresMirror(db))
	require.False(t, s.Degraded())
	assert.True(t, strings.Contains(db.execs[0], "CREATE TABLE IF NOT EXISTS employee_snapshots"))

	_, persisted := s.Create(ctx, employee("Ada", "Lovelace", floatPtr(90000)))
	require.True(t, persisted)
	s.Create(ctx, employee("Alan", "Turing", nil))

	reloaded := New(ctx, NewPostgresMirror(db))
	assert.Equal(t, s.List(Filter{}), reloaded.List(Filter{}))
}

func TestPostgresMirror_ExecFailureDegrades(t *testing.T) {
	ctx := context.Background()
	db := &fakeDB{execErr: errors.New("connection refused")}

	s := New(ctx, NewPostgresMirror(db))
	assert.True(t, s.Degraded())
	assert.Equal(t, 0, s.Len())

	e, persisted := s.Create(ctx, employee("Ada", "Lovelace", nil))
	assert.False(t, persisted)
	assert.Equal(t, 1, e.ID)
}

func TestPostgresMirror_BadPayload(t *testing.T) {
	db := &fakeDB{payload: []byte(`{"oops":true}`)}
	_, err := NewPostgresMirror(db).Load(context.Background())
	assert.Error(t, err)
}
