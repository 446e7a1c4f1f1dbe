// Package postgres implements domain.Store on PostgreSQL via lib/pq.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"fitfuel/internal/adapter/broker"
	"fitfuel/internal/domain"

	_ "github.com/lib/pq"
)

// DB wraps a *sql.DB and implements domain repository interfaces.
type DB struct {
	*broker.Broker
	sql *sql.DB
}

var _ domain.Store = (*DB)(nil)

// Open connects to PostgreSQL, pings, and runs migrations.
func Open(connStr string) (*DB, error) {
	s, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	s.SetMaxOpenConns(10)
	s.SetMaxIdleConns(5)
	s.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.PingContext(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}

	d := &DB{Broker: broker.New(), sql: s}
	if err := d.migrate(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return d, nil
}

// Close releases subscribers and closes the underlying database connection.
func (d *DB) Close() error {
	d.Broker.Close()
	return d.sql.Close()
}

func (d *DB) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS meals (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			type TEXT NOT NULL CHECK(type IN ('BREAKFAST','LUNCH','DINNER','SNACK')),
			calories INTEGER NOT NULL,
			protein DOUBLE PRECISION NOT NULL,
			carbs DOUBLE PRECISION NOT NULL,
			fat DOUBLE PRECISION NOT NULL,
			ts TIMESTAMPTZ NOT NULL,
			notes TEXT NOT NULL DEFAULT ''
		);`,
		"CREATE INDEX IF NOT EXISTS idx_meals_ts ON meals(ts);",
		`CREATE TABLE IF NOT EXISTS training_sessions (
			id BIGSERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			type TEXT NOT NULL,
			intensity TEXT NOT NULL,
			duration INTEGER NOT NULL,
			ts TIMESTAMPTZ NOT NULL,
			completed BOOLEAN NOT NULL DEFAULT FALSE,
			notes TEXT NOT NULL DEFAULT ''
		);`,
		"CREATE INDEX IF NOT EXISTS idx_training_sessions_ts ON training_sessions(ts);",
		`CREATE TABLE IF NOT EXISTS grocery_items (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			quantity TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL,
			purchased BOOLEAN NOT NULL DEFAULT FALSE,
			notes TEXT NOT NULL DEFAULT ''
		);`,
		"CREATE INDEX IF NOT EXISTS idx_grocery_items_category ON grocery_items(category);",
		`CREATE TABLE IF NOT EXISTS user_profile (
			id BIGINT PRIMARY KEY CHECK(id = 1),
			name TEXT NOT NULL,
			goal TEXT NOT NULL,
			training_frequency TEXT NOT NULL,
			dietary_preference TEXT NOT NULL,
			daily_calorie_target INTEGER NOT NULL,
			daily_protein_target DOUBLE PRECISION NOT NULL,
			daily_carb_target DOUBLE PRECISION NOT NULL,
			daily_fat_target DOUBLE PRECISION NOT NULL,
			onboarding_completed BOOLEAN NOT NULL DEFAULT FALSE
		);`,
	}

	for _, stmt := range stmts {
		if _, err := d.sql.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// exec runs a single-row write and maps zero affected rows to ErrNotFound.
func (d *DB) exec(ctx context.Context, q string, args ...any) error {
	res, err := d.sql.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

// SetFlag updates only the flag column so a concurrent full update of the
// other columns is never overwritten.
func (d *DB) SetFlag(ctx context.Context, kind domain.Kind, id int64, flag domain.Flag, value bool) error {
	if err := domain.CheckFlag(kind, flag); err != nil {
		return err
	}

	var q string
	switch kind {
	case domain.KindGrocery:
		q = "UPDATE grocery_items SET purchased=$1 WHERE id=$2;"
	case domain.KindTraining:
		q = "UPDATE training_sessions SET completed=$1 WHERE id=$2;"
	case domain.KindProfile:
		q = "UPDATE user_profile SET onboarding_completed=$1 WHERE id=$2;"
	}
	if err := d.exec(ctx, q, value, id); err != nil {
		return err
	}
	d.Publish(kind)
	return nil
}
