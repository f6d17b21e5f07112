package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Email       string    `gorm:"type:varchar(100);unique" json:"email"`
	Password    string    `json:"-"`
	Name        string    `json:"name"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	IsStaff     bool      `gorm:"default:false" json:"is_staff"`
	IsSuperuser bool      `gorm:"default:false" json:"is_superuser"`
	IsVerified  bool      `gorm:"default:false" json:"is_verified"`

	Timestamp
}
