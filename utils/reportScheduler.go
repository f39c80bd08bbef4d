package utils

import (
	"encoding/json"
	"log"
	"time"

	"holistica/database"
	"holistica/models"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
	"gorm.io/datatypes"
)

// DailyRevenueRow is one bucket of the revenue-over-time report
type DailyRevenueRow struct {
	Day      string  `json:"day"`
	Payments int64   `json:"payments"`
	Revenue  float64 `json:"revenue"`
}

// QueryDailyRevenue buckets payments by day over the trailing window
func QueryDailyRevenue(days int) ([]DailyRevenueRow, error) {
	since := now.With(time.Now().AddDate(0, 0, -days)).BeginningOfDay()

	var rows []DailyRevenueRow
	err := database.Database.Db.Model(&models.Payment{}).
		Select("DATE(payment_date) as day, COUNT(*) as payments, COALESCE(SUM(amount), 0) as revenue").
		Where("payment_date >= ?", since).
		Group("DATE(payment_date)").
		Order("day asc").
		Scan(&rows).Error

	return rows, err
}

// StartReportScheduler registers the nightly financial snapshot job
func StartReportScheduler() {
	c := cron.New()

	if _, err := c.AddFunc("0 2 * * *", snapshotFinancialReport); err != nil {
		log.Printf("Failed to register report scheduler: %v", err)
		return
	}

	c.Start()
	log.Println("Report scheduler started")
}

// snapshotFinancialReport stores the trailing 30 day revenue report in the
// reports table so historical figures are kept even if payment rows change.
func snapshotFinancialReport() {
	rows, err := QueryDailyRevenue(30)
	if err != nil {
		log.Printf("[REPORT-SCHEDULER] Error building financial snapshot: %v", err)
		return
	}

	data, err := json.Marshal(rows)
	if err != nil {
		log.Printf("[REPORT-SCHEDULER] Error encoding financial snapshot: %v", err)
		return
	}

	report := models.Report{
		Kind:        "financial",
		Period:      time.Now().Format("2006-01-02"),
		Data:        datatypes.JSON(data),
		GeneratedAt: time.Now(),
	}
	if err := database.Database.Db.Create(&report).Error; err != nil {
		log.Printf("[REPORT-SCHEDULER] Error saving financial snapshot: %v", err)
		return
	}

	log.Printf("[REPORT-SCHEDULER] Financial snapshot saved for %s (%d buckets)", report.Period, len(rows))
}
