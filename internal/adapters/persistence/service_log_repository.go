package persistence

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/andrescamacho/sushibar-go/internal/domain/shared"
)

// ServiceLogRepository manages service log persistence
type ServiceLogRepository interface {
	// Log writes a log entry to the database with deduplication
	Log(ctx context.Context, runID, message, level string, metadata map[string]interface{}) error

	// GetLogs retrieves logs for a run with optional filtering, newest first
	GetLogs(ctx context.Context, runID string, limit, offset int, level *string, since *time.Time) ([]ServiceLogEntry, error)
}

// ServiceLogEntry represents a log entry
type ServiceLogEntry struct {
	ID        int
	RunID     string
	Timestamp time.Time
	Level     string
	Message   string
	Metadata  map[string]interface{}
}

// GormServiceLogRepository is a GORM-based implementation
type GormServiceLogRepository struct {
	db    *gorm.DB
	clock shared.Clock

	dedupCache   map[string]time.Time // key: runID+message, value: last logged time
	dedupMu      sync.Mutex
	dedupWindow  time.Duration
	dedupMaxSize int
}

// NewGormServiceLogRepository creates a new service log repository.
// If clock is nil, uses RealClock. A zero window disables deduplication.
func NewGormServiceLogRepository(db *gorm.DB, clock shared.Clock, dedupWindow time.Duration) *GormServiceLogRepository {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &GormServiceLogRepository{
		db:           db,
		clock:        clock,
		dedupCache:   make(map[string]time.Time),
		dedupWindow:  dedupWindow,
		dedupMaxSize: 10000,
	}
}

// Log writes a log entry with time-windowed deduplication
func (r *GormServiceLogRepository) Log(ctx context.Context, runID, message, level string, metadata map[string]interface{}) error {
	now := r.clock.Now()

	if r.dedupWindow > 0 {
		cacheKey := runID + "|" + message

		r.dedupMu.Lock()
		if lastLogged, exists := r.dedupCache[cacheKey]; exists && now.Sub(lastLogged) < r.dedupWindow {
			r.dedupMu.Unlock()
			return nil
		}
		if len(r.dedupCache) >= r.dedupMaxSize {
			r.cleanupDedupCache(now)
		}
		r.dedupCache[cacheKey] = now
		r.dedupMu.Unlock()
	}

	// Metadata is optional; a value that cannot be marshalled is dropped
	var metadataJSON string
	if len(metadata) > 0 {
		if jsonBytes, err := json.Marshal(metadata); err == nil {
			metadataJSON = string(jsonBytes)
		}
	}

	entry := &ServiceLogModel{
		RunID:     runID,
		Timestamp: now,
		Level:     level,
		Message:   message,
		Metadata:  metadataJSON,
	}
	return r.db.WithContext(ctx).Create(entry).Error
}

// cleanupDedupCache removes old entries from the deduplication cache
// Must be called while holding dedupMu lock
func (r *GormServiceLogRepository) cleanupDedupCache(now time.Time) {
	cutoff := now.Add(-r.dedupWindow)
	for key, timestamp := range r.dedupCache {
		if timestamp.Before(cutoff) {
			delete(r.dedupCache, key)
		}
	}
}

// GetLogs retrieves logs for a run with pagination and optional filtering
func (r *GormServiceLogRepository) GetLogs(ctx context.Context, runID string, limit, offset int, level *string, since *time.Time) ([]ServiceLogEntry, error) {
	var models []ServiceLogModel

	query := r.db.WithContext(ctx).Where("run_id = ?", runID)
	if level != nil {
		query = query.Where("level = ?", *level)
	}
	if since != nil {
		query = query.Where("timestamp > ?", *since)
	}
	query = query.Order("timestamp DESC").Order("id DESC").Limit(limit).Offset(offset)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	entries := make([]ServiceLogEntry, len(models))
	for i, model := range models {
		var metadata map[string]interface{}
		if model.Metadata != "" {
			if err := json.Unmarshal([]byte(model.Metadata), &metadata); err != nil {
				metadata = nil
			}
		}
		entries[i] = ServiceLogEntry{
			ID:        model.ID,
			RunID:     model.RunID,
			Timestamp: model.Timestamp,
			Level:     model.Level,
			Message:   model.Message,
			Metadata:  metadata,
		}
	}
	return entries, nil
}

// RunLogger adapts the repository to logging.ServiceLogger for one run.
// Write failures are dropped; logging never stops the tick loop.
type RunLogger struct {
	repo  ServiceLogRepository
	runID string
}

func NewRunLogger(repo ServiceLogRepository, runID string) *RunLogger {
	return &RunLogger{repo: repo, runID: runID}
}

func (l *RunLogger) Log(level, message string, metadata map[string]interface{}) {
	_ = l.repo.Log(context.Background(), l.runID, message, level, metadata)
}
