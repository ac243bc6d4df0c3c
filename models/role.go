package models

import (
	"time"

	"gorm.io/gorm"
)

// Marketplace roles. Artists book experts, experts offer services, sponsors
// browse both.
const (
	RoleArtist  = "artist"
	RoleExpert  = "expert"
	RoleSponsor = "sponsor"
	RoleAdmin   = "admin"
)

type Role struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"unique"`
	Description string         `json:"description"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}
