package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleAdmin = "Admin"
	RoleStaff = "Staff"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"userID"`

	Username string `gorm:"uniqueIndex;size:150;not null" json:"username"`
	Password string `gorm:"size:255" json:"-"` // bcrypt hash, never serialized
	FullName string `gorm:"column:full_name;size:150" json:"fullName"`
	Email    string `gorm:"size:150" json:"email"`
	Role     string `gorm:"size:20;default:Staff" json:"role"`

	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// UserDTO is the reduced view handed to the check-in staff picker.
type UserDTO struct {
	UserID   uint   `json:"userID"`
	FullName string `json:"fullName"`
}
