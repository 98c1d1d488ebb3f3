package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ServiceTypeFood          = "Food"
	ServiceTypeDrink         = "Drink"
	ServiceTypeRoomHourly    = "Room_Hourly"
	ServiceTypeRoomOvernight = "Room_Overnight"
)

func ValidServiceType(t string) bool {
	switch t {
	case ServiceTypeFood, ServiceTypeDrink, ServiceTypeRoomHourly, ServiceTypeRoomOvernight:
		return true
	}
	return false
}

type Service struct {
	ID uint `gorm:"primaryKey" json:"serviceID"`

	ServiceName string  `gorm:"column:service_name;size:100;not null" json:"serviceName"`
	Price       float64 `gorm:"not null" json:"price"`
	ServiceType string  `gorm:"column:service_type;size:32" json:"serviceType"`

	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
