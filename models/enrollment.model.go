package models

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment statuses are free text in the database; these are the known values
const (
	EnrollmentInscrito   = "inscrito"
	EnrollmentCompletado = "completado"
	EnrollmentAbandonado = "abandonado"
)

// Enrollment links a user to a course. There is no uniqueness check on
// (user_id, course_id): repeated enrollments create additional rows.
type Enrollment struct {
	gorm.Model
	UserID     uint      `json:"user_id" gorm:"index;not null"`
	CourseID   uint      `json:"course_id" gorm:"index;not null"`
	Status     string    `json:"status" gorm:"default:'inscrito'"`
	EnrolledAt time.Time `json:"enrolled_at"`
	Course     Course    `json:"course,omitempty" gorm:"foreignKey:CourseID"`
}
