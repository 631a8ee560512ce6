package models

import "time"

// User is someone who can be assigned to a plan procedure.
type User struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"user_id"`
	Name      string     `gorm:"not null" json:"name" form:"name"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
