package entity_repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parkly/internal/core/apperror"
	"parkly/internal/core/entity"
	"parkly/internal/infrastructure/storage/postgres"
)

// gadget is a minimal entity for exercising the generic repository.
type gadget struct {
	entity.Record
	Name  string `db:"name"`
	Price int64  `db:"price"`
}

var gadgetFields = []Field[*gadget]{
	{Column: "name", Value: func(g *gadget) any { return g.Name }},
	{Column: "price", Value: func(g *gadget) any { return g.Price }},
}

func newGadgetRepo() *BaseRepo[*gadget] {
	return NewBaseRepo(postgres.NewDB(nil), "gadgets", gadgetFields,
		func() *gadget { return &gadget{} })
}

// --- Fakes routed through the transaction context ---

type fakeRow struct {
	id  int64
	err error
}

func (r *fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) > 0 {
		if ptr, ok := dest[0].(*int64); ok {
			*ptr = r.id
		}
	}
	return nil
}

// fakeTx satisfies pgx.Tx through embedding; only the methods the
// repository calls are implemented.
type fakeTx struct {
	pgx.Tx
	execSQL  string
	execArgs []any
	execTag  pgconn.CommandTag
	execErr  error
	queryErr error
	row      pgx.Row
}

func (f *fakeTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.execSQL = sql
	f.execArgs = args
	return f.execTag, f.execErr
}

func (f *fakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.execSQL = sql
	f.execArgs = args
	return nil, f.queryErr
}

func (f *fakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	f.execSQL = sql
	f.execArgs = args
	return f.row
}

func txContext(tx *fakeTx) context.Context {
	return postgres.WithTx(context.Background(), tx)
}

// --- Query shapes ---

func TestBaseSelect(t *testing.T) {
	repo := newGadgetRepo()

	sql, args, err := repo.baseSelect().ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, name, price FROM gadgets", sql)
	assert.Empty(t, args)
}

func TestInsertBuilder(t *testing.T) {
	repo := newGadgetRepo()
	g := &gadget{Name: "wristband", Price: 25}

	sql, args, err := repo.insertBuilder(g).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO gadgets (name,price) VALUES ($1,$2) RETURNING id", sql)
	assert.Equal(t, []any{"wristband", int64(25)}, args)
}

func TestUpdateBuilder(t *testing.T) {
	repo := newGadgetRepo()
	g := &gadget{Name: "wristband", Price: 30}
	g.SetID(7)

	sql, args, err := repo.updateBuilder(g).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "UPDATE gadgets SET name = $1, price = $2 WHERE id = $3", sql)
	assert.Equal(t, []any{"wristband", int64(30), int64(7)}, args)
}

func TestPagedBuilder_OffsetMath(t *testing.T) {
	repo := newGadgetRepo()

	tests := []struct {
		name       string
		page       int
		size       int
		wantLimit  string
		wantOffset string
	}{
		{name: "first page", page: 1, size: 20, wantLimit: "LIMIT 20", wantOffset: "OFFSET 0"},
		{name: "third page", page: 3, size: 20, wantLimit: "LIMIT 20", wantOffset: "OFFSET 40"},
		{name: "small pages", page: 5, size: 3, wantLimit: "LIMIT 3", wantOffset: "OFFSET 12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, _, err := repo.pagedBuilder(tt.page, tt.size).ToSql()
			require.NoError(t, err)
			assert.Contains(t, sql, "ORDER BY id ASC")
			assert.Contains(t, sql, tt.wantLimit)
			assert.Contains(t, sql, tt.wantOffset)
		})
	}
}

func TestApplyRange(t *testing.T) {
	repo := newGadgetRepo()
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		start    *time.Time
		end      *time.Time
		wantSQL  string
		wantArgs int
	}{
		{
			name:     "both bounds",
			start:    &start,
			end:      &end,
			wantSQL:  "SELECT id, name, price FROM gadgets WHERE created_at >= $1 AND created_at <= $2",
			wantArgs: 2,
		},
		{
			name:     "start only",
			start:    &start,
			wantSQL:  "SELECT id, name, price FROM gadgets WHERE created_at >= $1",
			wantArgs: 1,
		},
		{
			name:     "end only",
			end:      &end,
			wantSQL:  "SELECT id, name, price FROM gadgets WHERE created_at <= $1",
			wantArgs: 1,
		},
		{
			name:     "unbounded",
			wantSQL:  "SELECT id, name, price FROM gadgets",
			wantArgs: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := applyRange(repo.baseSelect(), "created_at", tt.start, tt.end)
			sql, args, err := q.ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, sql)
			assert.Len(t, args, tt.wantArgs)
		})
	}
}

// --- Write semantics ---

func TestCreate_AssignsID(t *testing.T) {
	repo := newGadgetRepo()
	tx := &fakeTx{row: &fakeRow{id: 42}}

	g := &gadget{Name: "wristband", Price: 25}
	err := repo.Create(txContext(tx), g)
	require.NoError(t, err)
	assert.Equal(t, int64(42), g.GetID())
	assert.Contains(t, tx.execSQL, "RETURNING id")
}

func TestCreate_ScanError(t *testing.T) {
	repo := newGadgetRepo()
	tx := &fakeTx{row: &fakeRow{err: errors.New("boom")}}

	err := repo.Create(txContext(tx), &gadget{Name: "x"})
	require.Error(t, err)
	assert.True(t, apperror.IsDatabase(err))
}

func TestUpdate_RowsAffected(t *testing.T) {
	repo := newGadgetRepo()

	tests := []struct {
		name      string
		tag       pgconn.CommandTag
		wantFound bool
	}{
		{name: "existing row", tag: pgconn.NewCommandTag("UPDATE 1"), wantFound: true},
		{name: "missing row", tag: pgconn.NewCommandTag("UPDATE 0"), wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := &fakeTx{execTag: tt.tag}
			g := &gadget{Name: "wristband"}
			g.SetID(7)

			found, err := repo.Update(txContext(tx), g)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFound, found)
		})
	}
}

func TestUpdate_ExecError(t *testing.T) {
	repo := newGadgetRepo()
	tx := &fakeTx{execErr: errors.New("connection reset")}
	g := &gadget{}
	g.SetID(7)

	found, err := repo.Update(txContext(tx), g)
	require.Error(t, err)
	assert.False(t, found)
	assert.True(t, apperror.IsDatabase(err))
}

func TestDelete_RowsAffected(t *testing.T) {
	repo := newGadgetRepo()

	tx := &fakeTx{execTag: pgconn.NewCommandTag("DELETE 1")}
	found, err := repo.Delete(txContext(tx), 7)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []any{int64(7)}, tx.execArgs)

	tx = &fakeTx{execTag: pgconn.NewCommandTag("DELETE 0")}
	found, err = repo.Delete(txContext(tx), 9999)
	require.NoError(t, err)
	assert.False(t, found)
}

// --- Pagination validation ---

func TestGetPaged_RejectsBadInput(t *testing.T) {
	repo := newGadgetRepo()
	ctx := context.Background()

	tests := []struct {
		name string
		page int
		size int
	}{
		{name: "zero page", page: 0, size: 10},
		{name: "negative page", page: -1, size: 10},
		{name: "zero size", page: 1, size: 0},
		{name: "negative size", page: 1, size: -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No querier is available, so reaching the database would panic:
			// rejection must happen first.
			_, err := repo.GetPaged(ctx, tt.page, tt.size)
			require.Error(t, err)
			assert.True(t, apperror.IsValidation(err))
		})
	}
}
