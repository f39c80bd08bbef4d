package models

import "gorm.io/gorm"

// Content is a multimedia resource attached to a course
type Content struct {
	gorm.Model
	CourseID  uint   `json:"course_id" gorm:"index;not null"`
	Title     string `json:"title" gorm:"not null"`
	Type      string `json:"type"` // video, pdf, audio, link
	URL       string `json:"url" gorm:"not null"`
	IsDeleted bool   `json:"-" gorm:"default:false"`
}
