package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/andrescamacho/sushibar-go/internal/domain/customer"
	"github.com/andrescamacho/sushibar-go/internal/domain/shared"
	"github.com/andrescamacho/sushibar-go/internal/domain/sushi"
)

// presetRecord is the stored form of an order preset
type presetRecord struct {
	OrderID      string             `json:"order_id"`
	RecipeName   string             `json:"recipe"`
	RequestLabel string             `json:"request_label,omitempty"`
	Offsets      map[string]float64 `json:"offsets,omitempty"`
	Weight       float64            `json:"weight"`
}

// GormProfileRepository implements customer.ProfileRepository using GORM
type GormProfileRepository struct {
	db *gorm.DB
}

// NewGormProfileRepository creates a new GORM profile repository
func NewGormProfileRepository(db *gorm.DB) *GormProfileRepository {
	return &GormProfileRepository{db: db}
}

// Save inserts or replaces a profile by id
func (r *GormProfileRepository) Save(ctx context.Context, profile *customer.Profile) error {
	if err := profile.Validate(); err != nil {
		return err
	}
	model, err := profileToModel(profile)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(model)
	if result.Error != nil {
		return fmt.Errorf("failed to save profile %s: %w", profile.ID, result.Error)
	}
	return nil
}

// FindByID retrieves a profile by id
func (r *GormProfileRepository) FindByID(ctx context.Context, id string) (*customer.Profile, error) {
	var model ProfileModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("profile", id)
		}
		return nil, fmt.Errorf("failed to find profile: %w", result.Error)
	}
	return modelToProfile(&model)
}

// FindAll retrieves every profile ordered by id
func (r *GormProfileRepository) FindAll(ctx context.Context) ([]*customer.Profile, error) {
	var models []ProfileModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	profiles := make([]*customer.Profile, 0, len(models))
	for i := range models {
		p, err := modelToProfile(&models[i])
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

func profileToModel(p *customer.Profile) (*ProfileModel, error) {
	presets := make([]presetRecord, 0, len(p.OrderPresets))
	for _, preset := range p.OrderPresets {
		rec := presetRecord{OrderID: preset.OrderID, RecipeName: preset.RecipeName, Weight: preset.Weight}
		if preset.Request.HasAny() {
			rec.RequestLabel = preset.Request.Label()
			rec.Offsets = make(map[string]float64)
			for _, d := range sushi.AllDimensions() {
				if preset.Request.Has(d) {
					rec.Offsets[d.String()] = preset.Request.Offset(d)
				}
			}
		}
		presets = append(presets, rec)
	}

	presetsJSON, err := json.Marshal(presets)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order presets: %w", err)
	}
	conversationsJSON, err := json.Marshal(p.Conversations)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal conversations: %w", err)
	}

	return &ProfileModel{
		ID:                     p.ID,
		DisplayName:            p.DisplayName,
		Type:                   string(p.Type),
		MinDay:                 p.MinDay,
		MaxDay:                 p.MaxDay,
		SpawnWeight:            p.SpawnWeight,
		UniquePerDay:           p.UniquePerDay,
		PartySize:              p.PartySize,
		PatienceMillis:         p.Patience.Milliseconds(),
		CanMakeCustomOrders:    p.CanMakeCustomOrders,
		CustomOrderProbability: p.CustomOrderProbability,
		CanMakeMultipleOrders:  p.CanMakeMultipleOrders,
		MaxOrders:              p.MaxOrders,
		OrderPresets:           string(presetsJSON),
		Conversations:          string(conversationsJSON),
	}, nil
}

func modelToProfile(model *ProfileModel) (*customer.Profile, error) {
	profileType, err := customer.ParseType(model.Type)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", model.ID, err)
	}

	p := customer.NewProfile(model.ID, model.DisplayName)
	p.Type = profileType
	p.MinDay = model.MinDay
	p.MaxDay = model.MaxDay
	p.SpawnWeight = model.SpawnWeight
	p.UniquePerDay = model.UniquePerDay
	p.PartySize = model.PartySize
	p.Patience = time.Duration(model.PatienceMillis) * time.Millisecond
	p.CanMakeCustomOrders = model.CanMakeCustomOrders
	p.CustomOrderProbability = model.CustomOrderProbability
	p.CanMakeMultipleOrders = model.CanMakeMultipleOrders
	p.MaxOrders = model.MaxOrders

	if model.OrderPresets != "" {
		var presets []presetRecord
		if err := json.Unmarshal([]byte(model.OrderPresets), &presets); err != nil {
			return nil, fmt.Errorf("profile %s: failed to unmarshal order presets: %w", model.ID, err)
		}
		for _, rec := range presets {
			preset := customer.OrderPreset{OrderID: rec.OrderID, RecipeName: rec.RecipeName, Weight: rec.Weight}
			if len(rec.Offsets) > 0 {
				offsets := make(map[sushi.Dimension]float64, len(rec.Offsets))
				for name, offset := range rec.Offsets {
					d, err := sushi.ParseDimension(name)
					if err != nil {
						return nil, fmt.Errorf("profile %s: %w", model.ID, err)
					}
					offsets[d] = offset
				}
				preset.Request = sushi.NewCustomRequest(rec.RequestLabel, offsets)
			}
			p.OrderPresets = append(p.OrderPresets, preset)
		}
	}

	if model.Conversations != "" {
		if err := json.Unmarshal([]byte(model.Conversations), &p.Conversations); err != nil {
			return nil, fmt.Errorf("profile %s: failed to unmarshal conversations: %w", model.ID, err)
		}
	}
	return p, nil
}
