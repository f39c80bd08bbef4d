package models

import "gorm.io/gorm"

// Course represents a sellable course
type Course struct {
	gorm.Model
	Title       string  `json:"title" gorm:"not null"`
	Description string  `json:"description"`
	Price       float64 `json:"price" gorm:"default:0"`
	Duration    int64   `json:"duration" gorm:"default:0"` // duration in hours
	Category    string  `json:"category"`
	Type        string  `json:"type"` // presencial, online, mixto
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	CreatedBy   uint    `json:"created_by" gorm:"index"`
	IsDeleted   bool    `json:"-" gorm:"default:false"`
}
