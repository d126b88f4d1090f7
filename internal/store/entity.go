package store

import (
	"context"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"heritage-api/internal/apperr"
	"heritage-api/internal/database"
	"heritage-api/internal/model"
)

// Table maps one owned content type onto its table. Columns and the pointers
// returned by Fields must line up one to one; id, owner_id and the
// timestamps are handled through Meta and never appear in Columns.
type Table[T any] struct {
	Name     string
	Columns  []string
	Fields   func(*T) []any
	Meta     func(*T) *model.Owned
	Defaults func(*T)
}

func (t Table[T]) selectList() string {
	return "id, owner_id, created_at, updated_at, " + strings.Join(t.Columns, ", ")
}

func (t Table[T]) scan(row pgx.Row) (*T, error) {
	v := new(T)
	m := t.Meta(v)
	dest := append([]any{&m.ID, &m.OwnerID, &m.CreatedAt, &m.UpdatedAt}, t.Fields(v)...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return v, nil
}

// values dereferences the Fields pointers into query arguments.
func (t Table[T]) values(v *T) []any {
	ptrs := t.Fields(v)
	out := make([]any, len(ptrs))
	for i, p := range ptrs {
		out[i] = reflect.ValueOf(p).Elem().Interface()
	}
	return out
}

func (t Table[T]) Get(ctx context.Context, db database.DB, id uuid.UUID) (*T, error) {
	v, err := t.scan(db.QueryRow(ctx,
		`SELECT `+t.selectList()+` FROM `+t.Name+` WHERE id = $1`,
		id,
	))
	if err != nil {
		return nil, wrap("Get "+t.Name, err)
	}
	return v, nil
}

// List returns one page and the total row count. A nil owner lists every
// row; otherwise only rows owned by *owner, which excludes unowned rows.
func (t Table[T]) List(ctx context.Context, db database.DB, owner *uuid.UUID, limit, skip int) ([]T, int, error) {
	where, args := "", []any{}
	if owner != nil {
		where = ` WHERE owner_id = $1`
		args = append(args, *owner)
	}

	var total int
	if err := db.QueryRow(ctx, `SELECT count(*) FROM `+t.Name+where, args...).Scan(&total); err != nil {
		return nil, 0, wrap("List "+t.Name, err)
	}

	n := len(args)
	query := `SELECT ` + t.selectList() + ` FROM ` + t.Name + where +
		` ORDER BY created_at, id LIMIT $` + strconv.Itoa(n+1) + ` OFFSET $` + strconv.Itoa(n+2)
	rows, err := db.Query(ctx, query, append(args, limit, skip)...)
	if err != nil {
		return nil, 0, wrap("List "+t.Name, err)
	}
	defer rows.Close()

	items := make([]T, 0, limit)
	for rows.Next() {
		v, err := t.scan(rows)
		if err != nil {
			return nil, 0, wrap("List "+t.Name, err)
		}
		items = append(items, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, wrap("List "+t.Name, err)
	}
	return items, total, nil
}

// Create inserts v with the id and owner already set in its Meta. A nil id
// is replaced with a fresh one.
func (t Table[T]) Create(ctx context.Context, db database.DB, v *T) error {
	m := t.Meta(v)
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	cols := append([]string{"id", "owner_id"}, t.Columns...)
	args := append([]any{m.ID, m.OwnerID}, t.values(v)...)
	query := `INSERT INTO ` + t.Name + ` (` + strings.Join(cols, ", ") + `)
		 VALUES (` + placeholders(1, len(cols)) + `)
		 RETURNING created_at, updated_at`
	if err := db.QueryRow(ctx, query, args...).Scan(&m.CreatedAt, &m.UpdatedAt); err != nil {
		return wrap("Create "+t.Name, err)
	}
	return nil
}

// Replace overwrites every content column of the row with v's id. The owner
// and created_at are read back from the row, never written.
func (t Table[T]) Replace(ctx context.Context, db database.DB, v *T) error {
	m := t.Meta(v)
	sets := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		sets[i] = c + " = $" + strconv.Itoa(i+2)
	}
	query := `UPDATE ` + t.Name + ` SET ` + strings.Join(sets, ", ") + `, updated_at = now()
		 WHERE id = $1
		 RETURNING owner_id, created_at, updated_at`
	args := append([]any{m.ID}, t.values(v)...)
	if err := db.QueryRow(ctx, query, args...).Scan(&m.OwnerID, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return wrap("Replace "+t.Name, err)
	}
	return nil
}

func (t Table[T]) Delete(ctx context.Context, db database.DB, id uuid.UUID) error {
	tag, err := db.Exec(ctx, `DELETE FROM `+t.Name+` WHERE id = $1`, id)
	if err != nil {
		return wrap("Delete "+t.Name, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("Delete %s: %w", t.Name, apperr.ErrNotFound)
	}
	return nil
}

func placeholders(from, n int) string {
	ps := make([]string, n)
	for i := range ps {
		ps[i] = "$" + strconv.Itoa(from+i)
	}
	return strings.Join(ps, ", ")
}
