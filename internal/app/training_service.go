package app

import (
	"context"
	"time"

	"fitfuel/internal/domain"
)

// TrainingService encapsulates training session planning and completion.
type TrainingService struct {
	repo   domain.TrainingRepository
	flags  domain.FlagSetter
	events domain.Notifier
}

// NewTrainingService creates a TrainingService backed by the given repository.
func NewTrainingService(repo domain.TrainingRepository, flags domain.FlagSetter, events domain.Notifier) *TrainingService {
	return &TrainingService{repo: repo, flags: flags, events: events}
}

// TrainingDay is the training schedule for one local day.
type TrainingDay struct {
	Date      string                   `json:"date"`
	Sessions  []domain.TrainingSession `json:"sessions"`
	Completed int                      `json:"completed"`
	Total     int                      `json:"total"`
	Stats     domain.TrainingStats     `json:"stats"`
}

func validateSession(t domain.TrainingSession) error {
	switch {
	case blank(t.Title):
		return invalid("session title is required")
	case !t.Type.Valid():
		return invalid("unknown training type %q", t.Type)
	case !t.Intensity.Valid():
		return invalid("unknown intensity %q", t.Intensity)
	case t.Duration < 0:
		return invalid("duration must not be negative")
	}
	return nil
}

// Add validates and stores a training session. A zero timestamp means now.
func (s *TrainingService) Add(ctx context.Context, t domain.TrainingSession) (int64, error) {
	if err := validateSession(t); err != nil {
		return 0, err
	}
	if t.Timestamp.IsZero() {
		t.Timestamp = time.Now()
	}
	t.ID = 0
	return s.repo.InsertSession(ctx, t)
}

// Update validates and replaces a stored training session.
func (s *TrainingService) Update(ctx context.Context, t domain.TrainingSession) error {
	if t.ID <= 0 {
		return invalid("session id is required")
	}
	if err := validateSession(t); err != nil {
		return err
	}
	if t.Timestamp.IsZero() {
		return invalid("session timestamp is required")
	}
	return s.repo.UpdateSession(ctx, t)
}

// Delete removes a training session.
func (s *TrainingService) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteSession(ctx, id)
}

// Get returns a training session by ID.
func (s *TrainingService) Get(ctx context.Context, id int64) (*domain.TrainingSession, error) {
	return s.repo.GetSession(ctx, id)
}

// SetCompleted marks a session done or not done without touching its other fields.
func (s *TrainingService) SetCompleted(ctx context.Context, id int64, completed bool) error {
	return s.flags.SetFlag(ctx, domain.KindTraining, id, domain.FlagCompleted, completed)
}

// ForDate returns the sessions of date's local day with completion counts.
func (s *TrainingService) ForDate(ctx context.Context, date time.Time) (TrainingDay, error) {
	start, end := domain.DayBounds(date)
	sessions, err := s.repo.ListSessionsBetween(ctx, start, end)
	if err != nil {
		return TrainingDay{}, err
	}
	sessions = domain.FilterByDate(sessions, date)
	stats := domain.SummarizeTraining(sessions, start, end)
	return TrainingDay{
		Date:      start.Format(time.DateOnly),
		Sessions:  sessions,
		Completed: stats.CompletedCount,
		Total:     len(sessions),
		Stats:     stats,
	}, nil
}

// List returns every session matching f, newest first.
func (s *TrainingService) List(ctx context.Context, f domain.SessionFilter) ([]domain.TrainingSession, error) {
	if f.Type != nil && !f.Type.Valid() {
		return nil, invalid("unknown training type %q", *f.Type)
	}
	sessions, err := s.repo.ListSessions(ctx)
	if err != nil {
		return nil, err
	}
	return domain.FilterSessions(sessions, f), nil
}

// ObserveAll streams the full session list on every training change.
func (s *TrainingService) ObserveAll(ctx context.Context) <-chan Snapshot[[]domain.TrainingSession] {
	return Watch(ctx, s.events, s.repo.ListSessions, domain.KindTraining)
}

// ObserveBetween streams sessions with start <= timestamp < end on every training change.
func (s *TrainingService) ObserveBetween(ctx context.Context, start, end time.Time) <-chan Snapshot[[]domain.TrainingSession] {
	return Watch(ctx, s.events, func(ctx context.Context) ([]domain.TrainingSession, error) {
		return s.repo.ListSessionsBetween(ctx, start, end)
	}, domain.KindTraining)
}
