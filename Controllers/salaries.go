package Controllers

import (
	"FleetOffice/Importer"
	"FleetOffice/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SalaryController manages driver salary sheets imported from
// tab-separated spreadsheets.
type SalaryController struct {
	DB *gorm.DB
}

func NewSalaryController(db *gorm.DB) *SalaryController {
	return &SalaryController{DB: db}
}

type salaryImportInput struct {
	Text string `json:"text"`
}

// PreviewImport parses the pasted sheet without persisting anything.
func (ctl *SalaryController) PreviewImport(c *fiber.Ctx) error {
	var input salaryImportInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(Importer.ParseDriverSalaries(input.Text))
}

// SaveImport persists all parsed rows. Rows that failed to parse were
// already excluded by the parser; errors are returned alongside the count
// so the caller can surface them.
func (ctl *SalaryController) SaveImport(c *fiber.Ctx) error {
	var input salaryImportInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	result := Importer.ParseDriverSalaries(input.Text)
	if len(result.Rows) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "No valid rows to import",
			"errors": result.Errors,
		})
	}
	records := make([]Models.DriverSalary, 0, len(result.Rows))
	for _, row := range result.Rows {
		records = append(records, row.Record)
	}
	if err := ctl.DB.Create(&records).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{
		"message":  "Salaries imported",
		"imported": len(records),
		"errors":   result.Errors,
	})
}

type driverSalaryTotal struct {
	DriverName  string  `json:"driver_name"`
	TotalSalary float64 `json:"total_salary"`
	Entries     int     `json:"entries"`
}

// GetSalaries lists salary rows in a date range with per-driver totals.
func (ctl *SalaryController) GetSalaries(c *fiber.Ctx) error {
	query := ctl.DB.Model(&Models.DriverSalary{})
	if from := c.Query("from"); from != "" {
		query = query.Where("date >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		query = query.Where("date <= ?", to)
	}
	if driver := c.Query("driver"); driver != "" {
		query = query.Where("driver_name LIKE ?", "%"+driver+"%")
	}

	var salaries []Models.DriverSalary
	if err := query.Order("date desc").Find(&salaries).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	totalsByDriver := make(map[string]*driverSalaryTotal)
	order := []string{}
	for _, s := range salaries {
		total, ok := totalsByDriver[s.DriverName]
		if !ok {
			total = &driverSalaryTotal{DriverName: s.DriverName}
			totalsByDriver[s.DriverName] = total
			order = append(order, s.DriverName)
		}
		total.TotalSalary += s.TripSalary + s.HandlingFee
		total.Entries++
	}
	totals := make([]driverSalaryTotal, 0, len(order))
	for _, name := range order {
		totals = append(totals, *totalsByDriver[name])
	}

	return c.JSON(fiber.Map{"salaries": salaries, "totals": totals})
}

func (ctl *SalaryController) DeleteSalary(c *fiber.Ctx) error {
	id, err := requestID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}
	result := ctl.DB.Delete(&Models.DriverSalary{}, id)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": result.Error.Error()})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Salary entry not found"})
	}
	return c.JSON(fiber.Map{"message": "Salary entry deleted"})
}
