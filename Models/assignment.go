package Models

import (
	"gorm.io/gorm"
)

// Assignment pairs a driver with a vehicle (and optionally a trailer) over a
// half-open date interval. EndDate empty means the assignment is still open.
// Overlapping assignments for the same vehicle are allowed; lookups resolve
// them by the most recent StartDate.
type Assignment struct {
	gorm.Model
	DriverID  uint   `json:"driver_id" gorm:"index"`
	VehicleID uint   `json:"vehicle_id" gorm:"index"`
	TrailerID uint   `json:"trailer_id"` // 0 = no trailer
	StartDate string `json:"start_date"` // YYYY-MM-DD
	EndDate   string `json:"end_date"`   // empty = open
}

// covers reports whether the assignment interval contains the given date.
// Dates are YYYY-MM-DD strings so plain string comparison orders correctly.
func (a *Assignment) covers(date string) bool {
	return a.StartDate <= date && (a.EndDate == "" || a.EndDate >= date)
}

func latestCovering(assignments []Assignment, date string) *Assignment {
	var best *Assignment
	for i := range assignments {
		a := &assignments[i]
		if !a.covers(date) {
			continue
		}
		if best == nil || a.StartDate > best.StartDate {
			best = a
		}
	}
	return best
}

// ActiveAssignmentForVehicle returns the assignment covering the given date
// for a vehicle, resolving overlaps by the latest start date. Returns nil
// when no assignment covers the date.
func ActiveAssignmentForVehicle(db *gorm.DB, vehicleID uint, date string) *Assignment {
	var assignments []Assignment
	if err := db.Where("vehicle_id = ?", vehicleID).Find(&assignments).Error; err != nil {
		return nil
	}
	return latestCovering(assignments, date)
}

// ActiveAssignmentForDriver is the driver-side counterpart of
// ActiveAssignmentForVehicle.
func ActiveAssignmentForDriver(db *gorm.DB, driverID uint, date string) *Assignment {
	var assignments []Assignment
	if err := db.Where("driver_id = ?", driverID).Find(&assignments).Error; err != nil {
		return nil
	}
	return latestCovering(assignments, date)
}

// OverlappingAssignments returns existing assignments for the same vehicle
// whose interval intersects [startDate, endDate]. Used only to warn on
// creation; overlap never blocks a write.
func OverlappingAssignments(db *gorm.DB, vehicleID uint, startDate, endDate string, excludeID uint) []Assignment {
	var assignments []Assignment
	db.Where("vehicle_id = ? AND id <> ?", vehicleID, excludeID).Find(&assignments)
	var overlapping []Assignment
	for _, a := range assignments {
		startsAfterOther := a.EndDate != "" && a.EndDate < startDate
		endsBeforeOther := endDate != "" && endDate < a.StartDate
		if !startsAfterOther && !endsBeforeOther {
			overlapping = append(overlapping, a)
		}
	}
	return overlapping
}
