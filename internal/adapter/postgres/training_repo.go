package postgres

import (
	"context"
	"database/sql"
	"time"

	"fitfuel/internal/domain"
)

const sessionColumns = "id, title, type, intensity, duration, ts, completed, notes"

func scanSession(s scanner) (domain.TrainingSession, error) {
	var t domain.TrainingSession
	err := s.Scan(&t.ID, &t.Title, &t.Type, &t.Intensity, &t.Duration, &t.Timestamp, &t.Completed, &t.Notes)
	t.Timestamp = t.Timestamp.UTC()
	return t, err
}

func collectSessions(rows *sql.Rows, err error) ([]domain.TrainingSession, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := []domain.TrainingSession{}
	for rows.Next() {
		t, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// ListSessions returns every training session, newest first.
func (d *DB) ListSessions(ctx context.Context) ([]domain.TrainingSession, error) {
	return collectSessions(d.sql.QueryContext(ctx,
		"SELECT "+sessionColumns+" FROM training_sessions ORDER BY ts DESC, id DESC;"))
}

// ListSessionsBetween returns sessions with start <= ts < end, newest first.
func (d *DB) ListSessionsBetween(ctx context.Context, start, end time.Time) ([]domain.TrainingSession, error) {
	return collectSessions(d.sql.QueryContext(ctx,
		"SELECT "+sessionColumns+" FROM training_sessions WHERE ts >= $1 AND ts < $2 ORDER BY ts DESC, id DESC;",
		start.UTC(), end.UTC()))
}

// GetSession retrieves a training session by ID.
func (d *DB) GetSession(ctx context.Context, id int64) (*domain.TrainingSession, error) {
	t, err := scanSession(d.sql.QueryRowContext(ctx, "SELECT "+sessionColumns+" FROM training_sessions WHERE id=$1;", id))
	if err != nil {
		return nil, notFound(err)
	}
	return &t, nil
}

// InsertSession stores a training session and returns its new ID.
func (d *DB) InsertSession(ctx context.Context, t domain.TrainingSession) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO training_sessions(title, type, intensity, duration, ts, completed, notes) VALUES($1, $2, $3, $4, $5, $6, $7) RETURNING id;",
		t.Title, t.Type, t.Intensity, t.Duration, t.Timestamp.UTC(), t.Completed, t.Notes,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	d.Publish(domain.KindTraining)
	return id, nil
}

// UpdateSession replaces a stored training session.
func (d *DB) UpdateSession(ctx context.Context, t domain.TrainingSession) error {
	err := d.exec(ctx,
		"UPDATE training_sessions SET title=$1, type=$2, intensity=$3, duration=$4, ts=$5, completed=$6, notes=$7 WHERE id=$8;",
		t.Title, t.Type, t.Intensity, t.Duration, t.Timestamp.UTC(), t.Completed, t.Notes, t.ID)
	if err != nil {
		return err
	}
	d.Publish(domain.KindTraining)
	return nil
}

// DeleteSession removes a training session by ID.
func (d *DB) DeleteSession(ctx context.Context, id int64) error {
	if err := d.exec(ctx, "DELETE FROM training_sessions WHERE id=$1;", id); err != nil {
		return err
	}
	d.Publish(domain.KindTraining)
	return nil
}
