package models

import "time"

// PlanProcedure links procedures to plans (N:N). Users are assigned to the
// link, not to the plan or the procedure alone.
type PlanProcedure struct {
	ID          int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	PlanID      int64      `gorm:"not null;index;unique_index:ux_plan_procedure" json:"plan_id"`
	ProcedureID int64      `gorm:"not null;index;unique_index:ux_plan_procedure" json:"procedure_id"`
	CreatedAt   *time.Time `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}
