package models

import "time"

// WeightEntry is a point-in-time weight record for a user.
type WeightEntry struct {
	ID         int64     `gorm:"column:entry_id;primaryKey;autoIncrement" json:"entry_id"`
	UserID     int64     `gorm:"column:user_id;not null;index" json:"user_id"`
	Weight     float64   `gorm:"column:weight;not null" json:"weight"`
	RecordedAt time.Time `gorm:"column:recorded_at;not null" json:"recorded_at"`
}

func (WeightEntry) TableName() string { return "weight_history" }
