package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"taskpad/internal/task"

	_ "github.com/go-sql-driver/mysql"
)

// DB implements Store on top of a MySQL tasks table.
type DB struct {
	db *sql.DB
}

var _ Store = (*DB)(nil)

func New(dsn string) (*DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	s := &DB{db: db}
	if err := s.migrate(context.Background()); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *DB) Close() error { return s.db.Close() }

func (s *DB) migrate(ctx context.Context) error {
	createTasks := `CREATE TABLE IF NOT EXISTS tasks (
    id CHAR(36) PRIMARY KEY,
    title VARCHAR(500) NOT NULL,
    is_complete BOOLEAN NOT NULL DEFAULT FALSE,
    owner VARCHAR(200) NOT NULL,
    created_at TIMESTAMP(6) DEFAULT CURRENT_TIMESTAMP(6),
    INDEX idx_owner_created (owner, created_at)
)`
	if _, err := s.db.ExecContext(ctx, createTasks); err != nil {
		return err
	}
	return nil
}

const taskColumns = `id, title, is_complete, created_at, owner`

func (s *DB) ListByOwner(ctx context.Context, owner string) ([]task.Task, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+taskColumns+`
    FROM tasks WHERE owner=? ORDER BY created_at DESC`, owner)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var out []task.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return out, nil
}

func (s *DB) Insert(ctx context.Context, owner, title string) (task.Task, error) {
	// id is assigned here, created_at by the table default; the full row is
	// read back so callers always see what the database persisted.
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx, `INSERT INTO tasks (id, title, is_complete, owner)
    VALUES (?,?,FALSE,?)`, id, title, owner)
	if err != nil {
		return task.Task{}, fmt.Errorf("insert task: %w", err)
	}
	return s.get(ctx, id)
}

func (s *DB) SetComplete(ctx context.Context, id string, complete bool) (task.Task, error) {
	// A no-op update also reports 0 affected rows on MySQL, so not-found
	// detection is left to the read-back.
	_, err := s.db.ExecContext(ctx, `UPDATE tasks SET is_complete=? WHERE id=?`, complete, id)
	if err != nil {
		return task.Task{}, fmt.Errorf("update task: %w", err)
	}
	return s.get(ctx, id)
}

func (s *DB) SetTitle(ctx context.Context, id, title string) (task.Task, error) {
	_, err := s.db.ExecContext(ctx, `UPDATE tasks SET title=? WHERE id=?`, title, id)
	if err != nil {
		return task.Task{}, fmt.Errorf("update task: %w", err)
	}
	return s.get(ctx, id)
}

func (s *DB) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *DB) get(ctx context.Context, id string) (task.Task, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id=?`, id)
	t, err := scanTask(row)
	if err == sql.ErrNoRows {
		return task.Task{}, ErrNotFound
	}
	if err != nil {
		return task.Task{}, fmt.Errorf("get task: %w", err)
	}
	return t, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (task.Task, error) {
	var t task.Task
	var created sql.NullTime
	if err := row.Scan(&t.ID, &t.Title, &t.IsComplete, &created, &t.Owner); err != nil {
		return task.Task{}, err
	}
	if created.Valid {
		t.CreatedAt = created.Time
	}
	return t, nil
}
