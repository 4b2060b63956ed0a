package entity

import "time"

// Role represents a user role in the system. "Deleted" roles are modeled by
// flipping IsActive off, rows are never hard-deleted.
type Role struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	Description *string   `gorm:"type:varchar(255)" json:"description"`
	CreatedBy   *int      `json:"created_by"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedBy   *int      `json:"updated_by"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
	IsActive    *bool     `gorm:"not null;default:true" json:"is_active"`
}

func (Role) TableName() string {
	return "roles"
}
