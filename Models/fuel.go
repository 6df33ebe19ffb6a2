package Models

import (
	"gorm.io/gorm"
)

// Fuel request lifecycle statuses
const (
	StatusPending   = "PENDING"
	StatusApproved  = "APPROVED"
	StatusRejected  = "REJECTED"
	StatusCompleted = "COMPLETED"
)

type FuelRequest struct {
	gorm.Model
	DriverID        uint    `json:"driver_id" gorm:"index" validate:"required"`
	VehicleID       uint    `json:"vehicle_id" gorm:"index" validate:"required"`
	CurrentOdometer float64 `json:"current_odometer"`
	RequestDate     string  `json:"request_date"`
	Status          string  `json:"status" gorm:"default:PENDING"`
	Notes           string  `json:"notes"`
	IsTemporary     bool    `json:"is_temporary"`

	// Requested estimate
	AmountLitres float64 `json:"amount_litres"`

	// Approval data
	GasStation     string  `json:"gas_station"`
	IsFullTank     bool    `json:"is_full_tank"`
	ApprovedCost   float64 `json:"approved_cost"`
	ApprovedLitres float64 `json:"approved_litres"`
	ApprovedDate   string  `json:"approved_date"`

	// Actuals recorded on completion
	ActualCost    float64 `json:"actual_cost"`
	ActualLitres  float64 `json:"actual_litres"`
	CompletedDate string  `json:"completed_date"`
}

type FuelPrice struct {
	gorm.Model
	Price         float64 `json:"price" validate:"required,gt=0"`
	EffectiveDate string  `json:"effective_date"` // ISO timestamp
	Notes         string  `json:"notes"`
}

type GasStation struct {
	gorm.Model
	Name      string `json:"name" validate:"required"`
	Address   string `json:"address"`
	Status    string `json:"status" gorm:"default:active"`
	IsDefault bool   `json:"is_default"`
}

// PriceAtTime returns the fuel price in effect at the given ISO timestamp:
// the entry with the greatest effective date not after it. When every
// recorded price starts later than the timestamp, the most recent price is
// used instead so requests dated before any price still resolve. Returns 0
// only when no prices exist at all.
func PriceAtTime(db *gorm.DB, timestamp string) float64 {
	var prices []FuelPrice
	if err := db.Order("effective_date desc").Find(&prices).Error; err != nil {
		return 0
	}
	for _, p := range prices {
		if p.EffectiveDate <= timestamp {
			return p.Price
		}
	}
	if len(prices) > 0 {
		return prices[0].Price
	}
	return 0
}
