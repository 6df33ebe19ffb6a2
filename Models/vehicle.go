package Models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Vehicle categories
const (
	CategoryTruck   = "TRUCK"
	CategoryTractor = "TRACTOR"
	CategoryTrailer = "TRAILER"
)

type Vehicle struct {
	gorm.Model
	PlateNumber        string  `json:"plate_number" validate:"required"`
	Type               string  `json:"type"`
	Category           string  `json:"category" gorm:"default:TRUCK"`
	Status             string  `json:"status" gorm:"default:active"` // active or maintenance
	OperationStartDate string  `json:"operation_start_date"`
	RegistrationNumber string  `json:"registration_number"`
	RegistrationExpiry string  `json:"registration_expiry"`
	InitialOdometer    float64 `json:"initial_odometer"`
}

type DailyOdometer struct {
	gorm.Model
	VehicleID uint    `json:"vehicle_id" gorm:"index"`
	Date      string  `json:"date"`
	Distance  float64 `json:"distance"`
}

// TireReplacement records a tire change on a vehicle. Positions is a JSON
// array of numbered wheel positions.
type TireReplacement struct {
	gorm.Model
	VehicleID         uint           `json:"vehicle_id" gorm:"index"`
	Date              string         `json:"date"`
	Positions         datatypes.JSON `json:"positions"`
	Brand             string         `json:"brand"`
	Size              string         `json:"size"`
	PatternCode       string         `json:"pattern_code"`
	SerialNumber      string         `json:"serial_number"`
	Cost              float64        `json:"cost"`
	Provider          string         `json:"provider"`
	Notes             string         `json:"notes"`
	OdometerAtInstall float64        `json:"odometer_at_install"`
}

// VehicleOdometer returns the current odometer reading for a vehicle: its
// initial baseline plus every daily distance logged against it. Unknown
// vehicles read as 0.
func VehicleOdometer(db *gorm.DB, vehicleID uint) float64 {
	var vehicle Vehicle
	if err := db.First(&vehicle, vehicleID).Error; err != nil {
		return 0
	}
	var travelled float64
	db.Model(&DailyOdometer{}).Where("vehicle_id = ?", vehicleID).
		Select("COALESCE(SUM(distance), 0)").Scan(&travelled)
	return vehicle.InitialOdometer + travelled
}
