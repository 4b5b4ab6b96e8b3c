package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/andrescamacho/sushibar-go/internal/domain/shared"
)

// RunSummary is the stored result of a service run
type RunSummary struct {
	ID             string
	StartedAt      time.Time
	EndedAt        *time.Time
	Seed           uint64
	Day            int
	Score          int
	Completed      int
	Failed         int
	AverageQuality float64
	Spawned        int
}

// GormRunRepository records service runs
type GormRunRepository struct {
	db *gorm.DB
}

func NewGormRunRepository(db *gorm.DB) *GormRunRepository {
	return &GormRunRepository{db: db}
}

// Start records a new run
func (r *GormRunRepository) Start(ctx context.Context, id string, seed uint64, day int, startedAt time.Time) error {
	model := &ServiceRunModel{ID: id, Seed: seed, Day: day, StartedAt: startedAt}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to record run start: %w", err)
	}
	return nil
}

// Finish stores the final score of a run
func (r *GormRunRepository) Finish(ctx context.Context, summary RunSummary) error {
	result := r.db.WithContext(ctx).Model(&ServiceRunModel{}).
		Where("id = ?", summary.ID).
		Updates(map[string]interface{}{
			"ended_at":        summary.EndedAt,
			"score":           summary.Score,
			"completed":       summary.Completed,
			"failed":          summary.Failed,
			"average_quality": summary.AverageQuality,
			"spawned":         summary.Spawned,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to record run result: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("run", summary.ID)
	}
	return nil
}

// FindByID retrieves one run
func (r *GormRunRepository) FindByID(ctx context.Context, id string) (*RunSummary, error) {
	var model ServiceRunModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("run", id)
		}
		return nil, fmt.Errorf("failed to find run: %w", err)
	}
	summary := modelToRun(model)
	return &summary, nil
}

// ListRecent returns the latest runs, newest first
func (r *GormRunRepository) ListRecent(ctx context.Context, limit int) ([]RunSummary, error) {
	var models []ServiceRunModel
	if err := r.db.WithContext(ctx).Order("started_at DESC").Limit(limit).Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	out := make([]RunSummary, len(models))
	for i, m := range models {
		out[i] = modelToRun(m)
	}
	return out, nil
}

func modelToRun(m ServiceRunModel) RunSummary {
	return RunSummary{
		ID:             m.ID,
		StartedAt:      m.StartedAt,
		EndedAt:        m.EndedAt,
		Seed:           m.Seed,
		Day:            m.Day,
		Score:          m.Score,
		Completed:      m.Completed,
		Failed:         m.Failed,
		AverageQuality: m.AverageQuality,
		Spawned:        m.Spawned,
	}
}
