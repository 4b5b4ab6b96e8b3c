package persistence

import (
	"time"
)

// RecipeModel represents the recipes table
type RecipeModel struct {
	Name      string `gorm:"column:name;primaryKey"`
	SushiType string `gorm:"column:sushi_type;not null"`
	BaseScore int    `gorm:"column:base_score;not null"`

	IdealFish   float64 `gorm:"column:ideal_fish_thickness;not null"`
	IdealRice   float64 `gorm:"column:ideal_rice_amount;not null"`
	IdealPress  float64 `gorm:"column:ideal_press_duration;not null"`
	IdealWasabi float64 `gorm:"column:ideal_wasabi_amount;not null"`

	ToleranceFish   float64 `gorm:"column:tolerance_fish_thickness;not null"`
	ToleranceRice   float64 `gorm:"column:tolerance_rice_amount;not null"`
	TolerancePress  float64 `gorm:"column:tolerance_press_duration;not null"`
	ToleranceWasabi float64 `gorm:"column:tolerance_wasabi_amount;not null"`

	WeightFish   float64 `gorm:"column:weight_fish_thickness;not null;default:1"`
	WeightRice   float64 `gorm:"column:weight_rice_amount;not null;default:1"`
	WeightPress  float64 `gorm:"column:weight_press_duration;not null;default:1"`
	WeightWasabi float64 `gorm:"column:weight_wasabi_amount;not null;default:1"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (RecipeModel) TableName() string {
	return "recipes"
}

// ProfileModel represents the customer_profiles table
type ProfileModel struct {
	ID                     string  `gorm:"column:id;primaryKey"`
	DisplayName            string  `gorm:"column:display_name;not null"`
	Type                   string  `gorm:"column:type;not null"`
	MinDay                 int     `gorm:"column:min_day;not null"`
	MaxDay                 int     `gorm:"column:max_day;not null"`
	SpawnWeight            float64 `gorm:"column:spawn_weight;not null"`
	UniquePerDay           bool    `gorm:"column:unique_per_day;not null;default:false"`
	PartySize              int     `gorm:"column:party_size;not null;default:1"`
	PatienceMillis         int64   `gorm:"column:patience_ms;not null;default:0"`
	CanMakeCustomOrders    bool    `gorm:"column:can_make_custom_orders;not null"`
	CustomOrderProbability float64 `gorm:"column:custom_order_probability;not null;default:0"`
	CanMakeMultipleOrders  bool    `gorm:"column:can_make_multiple_orders;not null;default:false"`
	MaxOrders              int     `gorm:"column:max_orders;not null;default:1"`
	OrderPresets           string  `gorm:"column:order_presets;type:text"`  // JSON array as text
	Conversations          string  `gorm:"column:conversations;type:text"` // JSON object as text

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (ProfileModel) TableName() string {
	return "customer_profiles"
}

// ServiceRunModel represents the service_runs table
type ServiceRunModel struct {
	ID             string     `gorm:"column:id;primaryKey"`
	StartedAt      time.Time  `gorm:"column:started_at;not null"`
	EndedAt        *time.Time `gorm:"column:ended_at"`
	Seed           uint64     `gorm:"column:seed"`
	Day            int        `gorm:"column:day;not null;default:1"`
	Score          int        `gorm:"column:score;not null;default:0"`
	Completed      int        `gorm:"column:completed;not null;default:0"`
	Failed         int        `gorm:"column:failed;not null;default:0"`
	AverageQuality float64    `gorm:"column:average_quality;not null;default:0"`
	Spawned        int        `gorm:"column:spawned;not null;default:0"`
}

func (ServiceRunModel) TableName() string {
	return "service_runs"
}

// ServiceLogModel represents the service_logs table
type ServiceLogModel struct {
	ID        int       `gorm:"column:id;primaryKey;autoIncrement"`
	RunID     string    `gorm:"column:run_id;not null;index:idx_service_logs_run_time,priority:1"`
	Timestamp time.Time `gorm:"column:timestamp;not null;index:idx_service_logs_run_time,priority:2"`
	Level     string    `gorm:"column:level;not null"`
	Message   string    `gorm:"column:message;type:text;not null"`
	Metadata  string    `gorm:"column:metadata;type:text"` // JSON as text
}

func (ServiceLogModel) TableName() string {
	return "service_logs"
}

// OrderOutcomeModel represents the order_outcomes table
type OrderOutcomeModel struct {
	ID         int       `gorm:"column:id;primaryKey;autoIncrement"`
	RunID      string    `gorm:"column:run_id;not null;index"`
	OrderID    string    `gorm:"column:order_id;not null"`
	CustomerID string    `gorm:"column:customer_id;not null"`
	Recipe     string    `gorm:"column:recipe;not null"`
	Result     string    `gorm:"column:result;not null"`
	Quality    float64   `gorm:"column:quality;not null"`
	Delta      int       `gorm:"column:delta;not null"`
	Reaction   string    `gorm:"column:reaction"`
	Total      int       `gorm:"column:total;not null"`
	TimedOut   bool      `gorm:"column:timed_out;not null;default:false"`
	ResolvedAt time.Time `gorm:"column:resolved_at;not null"`
}

func (OrderOutcomeModel) TableName() string {
	return "order_outcomes"
}

// AllModels lists every table for migration
func AllModels() []interface{} {
	return []interface{}{
		&RecipeModel{},
		&ProfileModel{},
		&ServiceRunModel{},
		&ServiceLogModel{},
		&OrderOutcomeModel{},
	}
}
