package models

import "time"

// RoomService is a quantity-accumulating ledger line joining a session to a
// catalog service. Repeat adds of the same service within one session merge
// into a single line; the unique (history_id, service_id) index backs that
// invariant. Lines are deleted hard so a removed pair can be re-added.
type RoomService struct {
	ID uint `gorm:"primaryKey" json:"roomServiceID"`

	HistoryID uint `gorm:"column:history_id;index:idx_history_service,unique;not null" json:"historyID"`
	RoomID    uint `gorm:"column:room_id;index;not null" json:"roomID"`

	ServiceID uint     `gorm:"column:service_id;index:idx_history_service,unique;not null" json:"serviceID"`
	Service   *Service `gorm:"foreignKey:ServiceID" json:"service,omitempty"`

	Quantity int `gorm:"default:1" json:"quantity"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
