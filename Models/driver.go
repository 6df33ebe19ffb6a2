package Models

import (
	"gorm.io/gorm"
)

// Driver employment statuses
const (
	DriverOfficial  = "official"
	DriverProbation = "probation"
	DriverQuit      = "quit"
)

type Driver struct {
	gorm.Model
	Name          string `json:"name" validate:"required"`
	Phone         string `json:"phone"`
	LicenseNumber string `json:"license_number"`
	LicenseExpiry string `json:"license_expiry"` // YYYY-MM-DD
	Status        string `json:"status" gorm:"default:official"`
}
