package models

import (
	"time"

	"gorm.io/gorm"
)

// Role identifiers stored on users.role_id
const (
	RoleAdmin   uint = 1
	RoleStudent uint = 2
)

type User struct {
	gorm.Model
	Name      string    `json:"name" gorm:"not null"`
	Lastname  string    `json:"lastname" gorm:"not null"`
	Email     string    `json:"email" gorm:"unique;not null"`
	Phone     string    `json:"phone" gorm:"default:''"`
	Dni       string    `json:"dni" gorm:"default:''"`
	Address   string    `json:"address" gorm:"default:''"`
	Password  string    `json:"-" gorm:"not null"`
	RoleID    uint      `json:"role_id" gorm:"default:2"` // 1=admin, 2=student
	LastLogin time.Time `json:"last_login" gorm:"default:NULL"`
	IsDeleted bool      `json:"-" gorm:"default:false"`
}

// PublicUser is the sanitized shape returned by auth and profile endpoints
type PublicUser struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Dni      string `json:"dni"`
	Address  string `json:"address"`
	RoleID   uint   `json:"role_id"`
}

// Public returns the user without sensitive fields
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Name:     u.Name,
		Lastname: u.Lastname,
		Email:    u.Email,
		Phone:    u.Phone,
		Dni:      u.Dni,
		Address:  u.Address,
		RoleID:   u.RoleID,
	}
}
