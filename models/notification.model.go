package models

import "gorm.io/gorm"

type Notification struct {
	gorm.Model
	UserID     uint   `json:"user_id" gorm:"index;not null"`
	Message    string `json:"message" gorm:"not null"`
	ReadStatus bool   `json:"read_status" gorm:"default:false"`
}
