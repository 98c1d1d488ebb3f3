package models

import (
	"time"

	"gorm.io/gorm"
)

// Room statuses drive the session state machine. "Under Maintenance" and
// "Reserved" are administrative side-states entered only by direct edits.
const (
	RoomStatusAvailable        = "Available"
	RoomStatusInUse            = "In Use"
	RoomStatusBeingCleaned     = "Being Cleaned"
	RoomStatusUnderMaintenance = "Under Maintenance"
	RoomStatusReserved         = "Reserved"
)

func ValidRoomStatus(status string) bool {
	switch status {
	case RoomStatusAvailable, RoomStatusInUse, RoomStatusBeingCleaned,
		RoomStatusUnderMaintenance, RoomStatusReserved:
		return true
	}
	return false
}

type Room struct {
	ID uint `gorm:"primaryKey" json:"roomID"`

	RoomName     string  `gorm:"column:room_name;uniqueIndex;size:50;not null" json:"roomName"`
	BaseRoomType string  `gorm:"column:base_room_type;size:20" json:"baseRoomType"` // Single / Double
	Price        float64 `gorm:"not null" json:"price"`
	Status       string  `gorm:"size:32;default:Available" json:"status"`
	Description  string  `gorm:"type:text" json:"description"`

	// Nullable so an unassigned pricing tier never inserts FK=0.
	RoomTypeID *uint     `gorm:"column:room_type_id;index" json:"roomTypeID"`
	RoomType   *RoomType `gorm:"foreignKey:RoomTypeID" json:"roomType,omitempty"`

	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
