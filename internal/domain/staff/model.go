package staff

import (
	"time"
)

const (
	RoleAdmin = "admin" // edits content, sees the dashboard
	RoleDoor  = "door"  // scans tickets at the venue
)

// Staff are the people running the event. There is no self-serve signup;
// accounts are provisioned by hand or bootstrapped from the environment.
type Staff struct {
	ID           uint    `gorm:"primaryKey"`
	Name         string
	Email        string  `gorm:"not null;uniqueIndex:idx_staff_email"`
	Password     *string `gorm:""`
	AuthProvider string  `gorm:"type:varchar(20);not null;default:'local'"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_staff_google_sub"`
	Role         string  `gorm:"not null;default:'door'"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
