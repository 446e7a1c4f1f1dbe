// Package sqlite implements domain.Store on an embedded SQLite file via GORM.
package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fitfuel/internal/adapter/broker"
	"fitfuel/internal/domain"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB wraps a *gorm.DB and implements domain repository interfaces.
type DB struct {
	*broker.Broker
	gorm *gorm.DB
}

var _ domain.Store = (*DB)(nil)

// LogLevel maps a LOG_LEVEL setting to a GORM log level. Unknown values are silent.
func LogLevel(s string) logger.LogLevel {
	switch s {
	case "error":
		return logger.Error
	case "warn":
		return logger.Warn
	case "info":
		return logger.Info
	}
	return logger.Silent
}

// Open opens (creating if needed) the database at path and migrates it.
// Use ":memory:" for a throwaway database.
func Open(path string, level logger.LogLevel) (*DB, error) {
	g, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
	if err != nil {
		return nil, err
	}

	s, err := g.DB()
	if err != nil {
		return nil, err
	}
	// SQLite serialises writers; a single connection also keeps ":memory:"
	// databases from being per-connection.
	s.SetMaxOpenConns(1)

	d := &DB{Broker: broker.New(), gorm: g}
	if err := d.migrate(); err != nil {
		_ = s.Close()
		return nil, err
	}
	return d, nil
}

// Close releases subscribers and closes the underlying database connection.
func (d *DB) Close() error {
	d.Broker.Close()
	s, err := d.gorm.DB()
	if err != nil {
		return err
	}
	return s.Close()
}

func (d *DB) migrate() error {
	if err := d.gorm.AutoMigrate(&mealRow{}, &sessionRow{}, &groceryRow{}, &profileRow{}); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

type mealRow struct {
	ID        int64     `gorm:"primaryKey"`
	Name      string    `gorm:"not null"`
	Type      string    `gorm:"not null"`
	Calories  int       `gorm:"not null"`
	Protein   float64   `gorm:"not null"`
	Carbs     float64   `gorm:"not null"`
	Fat       float64   `gorm:"not null"`
	Timestamp time.Time `gorm:"not null;index"`
	Notes     string    `gorm:"not null"`
}

func (mealRow) TableName() string { return "meals" }

type sessionRow struct {
	ID        int64     `gorm:"primaryKey"`
	Title     string    `gorm:"not null"`
	Type      string    `gorm:"not null"`
	Intensity string    `gorm:"not null"`
	Duration  int       `gorm:"not null"`
	Timestamp time.Time `gorm:"not null;index"`
	Completed bool      `gorm:"not null"`
	Notes     string    `gorm:"not null"`
}

func (sessionRow) TableName() string { return "training_sessions" }

type groceryRow struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Quantity  string `gorm:"not null"`
	Category  string `gorm:"not null;index"`
	Purchased bool   `gorm:"not null"`
	Notes     string `gorm:"not null"`
}

func (groceryRow) TableName() string { return "grocery_items" }

type profileRow struct {
	ID                  int64  `gorm:"primaryKey;autoIncrement:false"`
	Name                string `gorm:"not null"`
	Goal                string `gorm:"not null"`
	TrainingFrequency   string `gorm:"not null"`
	DietaryPreference   string `gorm:"not null"`
	DailyCalorieTarget  int
	DailyProteinTarget  float64
	DailyCarbTarget     float64
	DailyFatTarget      float64
	OnboardingCompleted bool `gorm:"not null"`
}

func (profileRow) TableName() string { return "user_profile" }

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

// affected maps a write that touched no rows to ErrNotFound.
func affected(tx *gorm.DB) error {
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetFlag updates only the flag column so a concurrent full update of the
// other columns is never overwritten.
func (d *DB) SetFlag(ctx context.Context, kind domain.Kind, id int64, flag domain.Flag, value bool) error {
	if err := domain.CheckFlag(kind, flag); err != nil {
		return err
	}

	var model any
	switch kind {
	case domain.KindGrocery:
		model = &groceryRow{}
	case domain.KindTraining:
		model = &sessionRow{}
	case domain.KindProfile:
		model = &profileRow{}
	}
	tx := d.gorm.WithContext(ctx).Model(model).Where("id = ?", id).Update(string(flag), value)
	if err := affected(tx); err != nil {
		return err
	}
	d.Publish(kind)
	return nil
}
