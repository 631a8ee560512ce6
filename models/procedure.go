package models

import "time"

type Procedure struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"procedure_id"`
	Title     string     `gorm:"column:procedure_title;not null" json:"procedure_title" form:"procedure_title"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
