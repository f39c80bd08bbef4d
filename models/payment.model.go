package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PaymentMethods is the fixed allow-list accepted by the payments endpoint
var PaymentMethods = []string{"transferencia", "online", "stripe", "efectivo", "paypal", "tarjeta"}

// IsValidPaymentMethod reports whether method is in the allow-list
func IsValidPaymentMethod(method string) bool {
	for _, m := range PaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}

// Payment records a course purchase. Rows are never updated or voided; there
// is no refund path.
type Payment struct {
	gorm.Model
	UserID          uint           `json:"user_id" gorm:"index;not null"`
	CourseID        uint           `json:"course_id" gorm:"index;not null"`
	Amount          float64        `json:"amount" gorm:"not null"`
	Method          string         `json:"method" gorm:"not null"`
	Reference       string         `json:"reference"`
	GatewayResponse datatypes.JSON `json:"gateway_response,omitempty"`
	PaymentDate     time.Time      `json:"payment_date"`
}
