package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Report is a stored snapshot of an aggregate report, written by the daily
// scheduler so historical figures survive later row mutations.
type Report struct {
	gorm.Model
	Kind        string         `json:"kind" gorm:"default:'financial'"`
	Period      string         `json:"period"` // YYYY-MM-DD of the snapshot day
	Data        datatypes.JSON `json:"data"`
	GeneratedAt time.Time      `json:"generated_at"`
}
