package postgres

import (
	"context"
	"database/sql"
	"time"

	"fitfuel/internal/domain"
)

const mealColumns = "id, name, type, calories, protein, carbs, fat, ts, notes"

type scanner interface {
	Scan(dest ...any) error
}

func scanMeal(s scanner) (domain.Meal, error) {
	var m domain.Meal
	err := s.Scan(&m.ID, &m.Name, &m.Type, &m.Calories, &m.Protein, &m.Carbs, &m.Fat, &m.Timestamp, &m.Notes)
	m.Timestamp = m.Timestamp.UTC()
	return m, err
}

func collectMeals(rows *sql.Rows, err error) ([]domain.Meal, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := []domain.Meal{}
	for rows.Next() {
		m, err := scanMeal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// ListMeals returns every meal, newest first.
func (d *DB) ListMeals(ctx context.Context) ([]domain.Meal, error) {
	return collectMeals(d.sql.QueryContext(ctx,
		"SELECT "+mealColumns+" FROM meals ORDER BY ts DESC, id DESC;"))
}

// ListMealsBetween returns meals with start <= ts < end, newest first.
func (d *DB) ListMealsBetween(ctx context.Context, start, end time.Time) ([]domain.Meal, error) {
	return collectMeals(d.sql.QueryContext(ctx,
		"SELECT "+mealColumns+" FROM meals WHERE ts >= $1 AND ts < $2 ORDER BY ts DESC, id DESC;",
		start.UTC(), end.UTC()))
}

// GetMeal retrieves a meal by ID.
func (d *DB) GetMeal(ctx context.Context, id int64) (*domain.Meal, error) {
	m, err := scanMeal(d.sql.QueryRowContext(ctx, "SELECT "+mealColumns+" FROM meals WHERE id=$1;", id))
	if err != nil {
		return nil, notFound(err)
	}
	return &m, nil
}

// InsertMeal stores a meal and returns its new ID.
func (d *DB) InsertMeal(ctx context.Context, m domain.Meal) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO meals(name, type, calories, protein, carbs, fat, ts, notes) VALUES($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id;",
		m.Name, m.Type, m.Calories, m.Protein, m.Carbs, m.Fat, m.Timestamp.UTC(), m.Notes,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	d.Publish(domain.KindMeal)
	return id, nil
}

// UpdateMeal replaces a stored meal.
func (d *DB) UpdateMeal(ctx context.Context, m domain.Meal) error {
	err := d.exec(ctx,
		"UPDATE meals SET name=$1, type=$2, calories=$3, protein=$4, carbs=$5, fat=$6, ts=$7, notes=$8 WHERE id=$9;",
		m.Name, m.Type, m.Calories, m.Protein, m.Carbs, m.Fat, m.Timestamp.UTC(), m.Notes, m.ID)
	if err != nil {
		return err
	}
	d.Publish(domain.KindMeal)
	return nil
}

// DeleteMeal removes a meal by ID.
func (d *DB) DeleteMeal(ctx context.Context, id int64) error {
	if err := d.exec(ctx, "DELETE FROM meals WHERE id=$1;", id); err != nil {
		return err
	}
	d.Publish(domain.KindMeal)
	return nil
}
