package models

import "time"

const (
	RoleAdmin = "admin"
	RoleOJT   = "ojt"
)

const (
	ActionTimeIn  = "time_in"
	ActionTimeOut = "time_out"
)

// ValidAction reports whether s is one of the two clock actions.
func ValidAction(s string) bool {
	return s == ActionTimeIn || s == ActionTimeOut
}

type User struct {
	ID           string `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         string `gorm:"not null" json:"role"`
	Approved     bool   `gorm:"not null;default:false" json:"approved"`

	// OJT schedule, empty for admins.
	OJTStartTime          string `gorm:"size:8" json:"ojtStartTime,omitempty"`
	OJTEndTime            string `gorm:"size:8" json:"ojtEndTime,omitempty"`
	OJTHoursPerDay        int    `json:"ojtHoursPerDay,omitempty"`
	OJTTotalHoursRequired int    `json:"ojtTotalHoursRequired,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Entry struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"type:uuid;index;not null" json:"user_id"`
	Name      string    `gorm:"not null" json:"name"`
	Action    string    `gorm:"not null" json:"action"`
	EntryDate string    `gorm:"size:10;not null" json:"entry_date"`
	EntryTime string    `gorm:"size:8;not null" json:"entry_time"`
	CreatedAt time.Time `json:"created_at"`
}
