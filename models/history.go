package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// History is one occupancy of a room by a guest, owned by the staff user on
// duty. At most one History per room may be open (EndTime null) at a time.
//
// TypeName, HourThreshold, OverchargePerHour and BasePrice are a snapshot of
// the room's pricing tier captured at check-out so that later RoomType edits
// never retroactively alter past bills. PriceBreakdown records how the stored
// total was composed, also frozen at check-out.
type History struct {
	ID uint `gorm:"primaryKey" json:"historyID"`

	RoomID uint  `gorm:"column:room_id;index;not null" json:"roomID"`
	Room   *Room `gorm:"foreignKey:RoomID" json:"room,omitempty"`

	UserID uint  `gorm:"column:user_id;index;not null" json:"userID"`
	User   *User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	NameCustomer        string `gorm:"column:name_customer;size:150" json:"nameCustomer"`
	NumberPhoneCustomer string `gorm:"column:number_phone_customer;size:30" json:"numberPhoneCustomer"`
	IDCustomer          string `gorm:"column:id_customer;size:50" json:"idCustomer"`

	StartTime  time.Time  `gorm:"column:start_time;not null" json:"startTime"`
	EndTime    *time.Time `gorm:"column:end_time" json:"endTime"`
	IsCheckOut bool       `gorm:"column:is_check_out;default:false" json:"isCheckOut"`
	TotalPrice float64    `gorm:"column:total_price" json:"totalPrice"`

	TypeName          *string  `gorm:"column:type_name;size:100" json:"typeName"`
	HourThreshold     *int     `gorm:"column:hour_threshold" json:"hourThreshold"`
	OverchargePerHour *float64 `gorm:"column:overcharge_per_hour" json:"overchargePerHour"`
	BasePrice         *float64 `gorm:"column:base_price" json:"basePrice"`

	PriceBreakdown datatypes.JSON `gorm:"column:price_breakdown" json:"priceBreakdown,omitempty"`

	RoomServices []RoomService `gorm:"foreignKey:HistoryID" json:"roomServices"`

	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Open reports whether the session is still running.
func (h *History) Open() bool {
	return h.EndTime == nil && !h.IsCheckOut
}
