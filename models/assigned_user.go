package models

import "time"

// AssignedUser attaches a user to a plan procedure. The unique index keeps at
// most one row per (user, plan, procedure).
type AssignedUser struct {
	ID          int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	UserID      int64      `gorm:"not null;index;unique_index:ux_assigned_user" json:"user_id"`
	PlanID      int64      `gorm:"not null;index:ix_assigned_plan_procedure;unique_index:ux_assigned_user" json:"plan_id"`
	ProcedureID int64      `gorm:"not null;index:ix_assigned_plan_procedure;unique_index:ux_assigned_user" json:"procedure_id"`
	CreatedAt   *time.Time `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}
