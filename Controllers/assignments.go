package Controllers

import (
	"strconv"
	"time"

	"FleetOffice/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AssignmentController manages driver/vehicle pairings and the time-scoped
// lookups the rest of the app uses to answer "who drove what on day D".
type AssignmentController struct {
	DB *gorm.DB
}

func NewAssignmentController(db *gorm.DB) *AssignmentController {
	return &AssignmentController{DB: db}
}

// AssignmentDisplay carries the assignment plus names resolved at read time.
// Dangling references show as "Unknown" rather than failing the listing.
type AssignmentDisplay struct {
	Models.Assignment
	DriverName   string `json:"driver_name"`
	VehiclePlate string `json:"vehicle_plate"`
	TrailerPlate string `json:"trailer_plate,omitempty"`
	IsActive     bool   `json:"is_active"`
}

func (ctl *AssignmentController) enrich(assignments []Models.Assignment) []AssignmentDisplay {
	var drivers []Models.Driver
	var vehicles []Models.Vehicle
	ctl.DB.Find(&drivers)
	ctl.DB.Find(&vehicles)

	driverNames := make(map[uint]string, len(drivers))
	for _, d := range drivers {
		driverNames[d.ID] = d.Name
	}
	plates := make(map[uint]string, len(vehicles))
	for _, v := range vehicles {
		plates[v.ID] = v.PlateNumber
	}

	today := time.Now().Format("2006-01-02")
	displays := make([]AssignmentDisplay, 0, len(assignments))
	for _, a := range assignments {
		display := AssignmentDisplay{
			Assignment: a,
			IsActive:   a.StartDate <= today && (a.EndDate == "" || a.EndDate >= today),
		}
		if name, ok := driverNames[a.DriverID]; ok {
			display.DriverName = name
		} else {
			display.DriverName = "Unknown"
		}
		if plate, ok := plates[a.VehicleID]; ok {
			display.VehiclePlate = plate
		} else {
			display.VehiclePlate = "Unknown"
		}
		if a.TrailerID != 0 {
			if plate, ok := plates[a.TrailerID]; ok {
				display.TrailerPlate = plate
			} else {
				display.TrailerPlate = "Unknown"
			}
		}
		displays = append(displays, display)
	}
	return displays
}

func (ctl *AssignmentController) GetAssignments(c *fiber.Ctx) error {
	var assignments []Models.Assignment
	if err := ctl.DB.Order("start_date desc").Find(&assignments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(ctl.enrich(assignments))
}

// CreateAssignment persists the pairing. Overlapping assignments for the
// same vehicle are legal (lookups resolve them by most recent start date),
// but the response carries a warning listing them so data entry mistakes are
// visible.
func (ctl *AssignmentController) CreateAssignment(c *fiber.Ctx) error {
	var assignment Models.Assignment
	if err := c.BodyParser(&assignment); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if assignment.DriverID == 0 || assignment.VehicleID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Driver and vehicle are required"})
	}
	if assignment.StartDate == "" {
		assignment.StartDate = time.Now().Format("2006-01-02")
	}

	assignment.ID = 0
	overlapping := Models.OverlappingAssignments(ctl.DB, assignment.VehicleID, assignment.StartDate, assignment.EndDate, 0)

	if err := ctl.DB.Create(&assignment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	response := fiber.Map{"assignment": assignment}
	if len(overlapping) > 0 {
		response["warning"] = "Vehicle already has an assignment overlapping this period"
		response["overlapping"] = overlapping
	}
	return c.Status(fiber.StatusCreated).JSON(response)
}

func (ctl *AssignmentController) UpdateAssignment(c *fiber.Ctx) error {
	id, err := requestID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid assignment ID"})
	}
	var assignment Models.Assignment
	if err := ctl.DB.First(&assignment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Assignment not found"})
	}
	var input Models.Assignment
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	ctl.DB.Model(&assignment).Updates(input)

	// EndDate can legitimately be cleared to reopen an assignment; Updates
	// skips zero values, so handle that case explicitly.
	if input.EndDate == "" && assignment.EndDate != "" {
		ctl.DB.Model(&assignment).Update("end_date", "")
		assignment.EndDate = ""
	}
	// Same for dropping the trailer: 0 means "no trailer", not "unchanged".
	if input.TrailerID == 0 && assignment.TrailerID != 0 {
		ctl.DB.Model(&assignment).Update("trailer_id", 0)
		assignment.TrailerID = 0
	}
	return c.JSON(assignment)
}

func (ctl *AssignmentController) DeleteAssignment(c *fiber.Ctx) error {
	id, err := requestID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid assignment ID"})
	}
	var assignment Models.Assignment
	if err := ctl.DB.First(&assignment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Assignment not found"})
	}
	ctl.DB.Delete(&assignment)
	return c.JSON(fiber.Map{"message": "Assignment deleted successfully"})
}

// GetActiveForVehicle answers which assignment covers a vehicle on a date
// (?vehicle_id=&date=, date defaulting to today).
func (ctl *AssignmentController) GetActiveForVehicle(c *fiber.Ctx) error {
	vehicleID, err := strconv.Atoi(c.Query("vehicle_id"))
	if err != nil || vehicleID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "vehicle_id is required"})
	}
	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	assignment := Models.ActiveAssignmentForVehicle(ctl.DB, uint(vehicleID), date)
	if assignment == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No active assignment"})
	}
	return c.JSON(assignment)
}

// GetActiveForDriver answers which vehicle (and trailer) a driver is on for
// a date (?driver_id=&date=).
func (ctl *AssignmentController) GetActiveForDriver(c *fiber.Ctx) error {
	driverID, err := strconv.Atoi(c.Query("driver_id"))
	if err != nil || driverID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "driver_id is required"})
	}
	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	assignment := Models.ActiveAssignmentForDriver(ctl.DB, uint(driverID), date)
	if assignment == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No active assignment"})
	}
	return c.JSON(fiber.Map{
		"assignment": assignment,
		"vehicle_id": assignment.VehicleID,
		"trailer_id": assignment.TrailerID,
	})
}
