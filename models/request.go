package models

import "time"

// Request ticket statuses. Any status may move to any other; only the
// admin-facing endpoint mutates it.
const (
	RequestStatusPending = "Pending"
	RequestStatusAccept  = "Accept"
	RequestStatusReject  = "Reject"
)

func ValidRequestStatus(status string) bool {
	switch status {
	case RequestStatusPending, RequestStatusAccept, RequestStatusReject:
		return true
	}
	return false
}

// Request is a staff-submitted ticket reviewed by admins.
type Request struct {
	ID uint `gorm:"primaryKey" json:"requestID"`

	UserID uint  `gorm:"column:user_id;index;not null" json:"userID"`
	User   *User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	Title   string `gorm:"size:200;not null" json:"title"`
	Content string `gorm:"type:text" json:"content"`
	Status  string `gorm:"size:20;default:Pending" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}
