package models

import "gorm.io/gorm"

// Schedule is a weekly time slot for a course. Overlapping slots for the same
// instructor are not rejected.
type Schedule struct {
	gorm.Model
	CourseID     uint   `json:"course_id" gorm:"index;not null"`
	DayOfWeek    string `json:"day_of_week" gorm:"not null"`
	StartTime    string `json:"start_time" gorm:"not null"` // HH:MM
	EndTime      string `json:"end_time" gorm:"not null"`   // HH:MM
	InstructorID uint   `json:"instructor_id" gorm:"index"`
	IsDeleted    bool   `json:"-" gorm:"default:false"`
}
