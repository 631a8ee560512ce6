package models

import "time"

// Plan groups procedures through PlanProcedure links.
type Plan struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"plan_id"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
