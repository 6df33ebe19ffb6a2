package Models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type MoneyAdvance struct {
	gorm.Model
	DriverID     uint    `json:"driver_id" gorm:"index" validate:"required"`
	Amount       float64 `json:"amount" validate:"required,gt=0"`
	Date         string  `json:"date"`
	Category     string  `json:"category"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status" gorm:"default:PENDING"`
	ApprovedDate string  `json:"approved_date"`
}

// TireRepairDetails is stored as JSON on an expense when the expense is a
// tire repair: the numbered wheel positions worked on for the tractor and
// trailer axles.
type TireRepairDetails struct {
	TractorPositions []int   `json:"tractor_positions"`
	TrailerPositions []int   `json:"trailer_positions"`
	Description      string  `json:"description,omitempty"`
	OdometerAtRepair float64 `json:"odometer_at_repair,omitempty"`
}

type DriverExpense struct {
	gorm.Model
	DriverID     uint    `json:"driver_id" gorm:"index" validate:"required"`
	Amount       float64 `json:"amount" validate:"required,gt=0"`
	Date         string  `json:"date"`
	Category     string  `json:"category"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status" gorm:"default:PENDING"`
	ApprovedDate string  `json:"approved_date"`

	VehicleID uint `json:"vehicle_id"`
	TrailerID uint `json:"trailer_id"`

	TireDetails datatypes.JSON `json:"tire_details"`
}

// Usage scopes for expense categories
const (
	UsageAdvance = "ADVANCE"
	UsageExpense = "EXPENSE"
	UsageBoth    = "BOTH"
)

type ExpenseCategory struct {
	gorm.Model
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Usage       string `json:"usage" gorm:"default:BOTH"`
}
