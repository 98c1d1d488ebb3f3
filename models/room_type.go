package models

import (
	"time"

	"gorm.io/gorm"
)

// RoomType is a pricing tier: a base charge plus an overstay rule.
// HourThreshold is the number of hours included before the per-hour
// overcharge starts to apply.
type RoomType struct {
	ID uint `gorm:"primaryKey" json:"roomTypeID"`

	TypeName          string  `gorm:"size:100;not null" json:"typeName"`
	BasePrice         float64 `gorm:"column:base_price" json:"basePrice"`
	HourThreshold     int     `gorm:"column:hour_threshold" json:"hourThreshold"`
	OverchargePerHour float64 `gorm:"column:overcharge_per_hour" json:"overchargePerHour"`

	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
