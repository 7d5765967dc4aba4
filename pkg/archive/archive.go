// Package archive records submitted dialogs in a local SQLite database.
package archive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/mitchellh/go-homedir"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/goliatone/go-datefield/pkg/model"
)

var ErrNoCallbackID = errors.New("archive: callback id is required")

// Submission is one archived dialog submission.
type Submission struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	CallbackID  string       `gorm:"not null;index:idx_callback_submitted" json:"callback_id"`
	Title       string       `gorm:"not null;default:''" json:"title"`
	State       string       `json:"state,omitempty"`
	Values      model.Values `gorm:"serializer:json" json:"values"`
	SubmittedAt time.Time    `gorm:"not null;index:idx_callback_submitted" json:"submitted_at"`
	CreatedAt   time.Time    `json:"-"`
}

type options struct {
	logOutput io.Writer
	logLevel  gormlogger.LogLevel
}

// Option configures Open.
type Option func(*options)

// WithLogOutput sends gorm's log lines to w.
func WithLogOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.logOutput = w
		}
	}
}

// WithSilentLog disables gorm logging.
func WithSilentLog() Option {
	return func(o *options) {
		o.logLevel = gormlogger.Silent
	}
}

// Archive stores submissions.
type Archive struct {
	database *gorm.DB
}

// Open opens (creating if needed) the SQLite database at path. A leading "~"
// is expanded.
func Open(path string, opts ...Option) (*Archive, error) {
	cfg := options{logOutput: os.Stderr, logLevel: gormlogger.Warn}
	for _, opt := range opts {
		opt(&cfg)
	}

	dbPath, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("archive: expand %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("archive: create db directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_busy_timeout=5000", dbPath)
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.New(
			log.New(cfg.logOutput, "\r\n", log.LstdFlags),
			gormlogger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  cfg.logLevel,
				IgnoreRecordNotFoundError: true,
			},
		),
	})
	if err != nil {
		return nil, fmt.Errorf("archive: open sqlite: %w", err)
	}
	if err := database.AutoMigrate(&Submission{}); err != nil {
		return nil, fmt.Errorf("archive: migrate: %w", err)
	}
	return &Archive{database: database}, nil
}

// Close releases the database handle.
func (a *Archive) Close() error {
	sqlDB, err := a.database.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Record stores values as a submission of d at the given time.
func (a *Archive) Record(ctx context.Context, d model.Dialog, values model.Values, at time.Time) (Submission, error) {
	if d.CallbackID == "" {
		return Submission{}, ErrNoCallbackID
	}
	entry := Submission{
		CallbackID:  d.CallbackID,
		Title:       d.Title,
		State:       d.State,
		Values:      values,
		SubmittedAt: at.UTC(),
	}
	if err := a.database.WithContext(ctx).Create(&entry).Error; err != nil {
		return Submission{}, fmt.Errorf("archive: record %s: %w", d.CallbackID, err)
	}
	return entry, nil
}

// List returns submissions newest first. An empty callbackID lists every
// dialog; limit <= 0 means no limit.
func (a *Archive) List(ctx context.Context, callbackID string, limit int) ([]Submission, error) {
	query := a.database.WithContext(ctx).Model(&Submission{})
	if callbackID != "" {
		query = query.Where("callback_id = ?", callbackID)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	entries := make([]Submission, 0)
	if err := query.Order("submitted_at DESC, id DESC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("archive: list: %w", err)
	}
	return entries, nil
}

// Latest returns the newest submission of callbackID.
func (a *Archive) Latest(ctx context.Context, callbackID string) (Submission, bool, error) {
	entries, err := a.List(ctx, callbackID, 1)
	if err != nil {
		return Submission{}, false, err
	}
	if len(entries) == 0 {
		return Submission{}, false, nil
	}
	return entries[0], true, nil
}

// Between returns submissions with from <= submitted_at < to, oldest first.
func (a *Archive) Between(ctx context.Context, from, to time.Time) ([]Submission, error) {
	entries := make([]Submission, 0)
	if err := a.database.WithContext(ctx).
		Where("submitted_at >= ? AND submitted_at < ?", from.UTC(), to.UTC()).
		Order("submitted_at ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("archive: between: %w", err)
	}
	return entries, nil
}
