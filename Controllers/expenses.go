package Controllers

import (
	"encoding/json"
	"time"

	"FleetOffice/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ExpenseController manages driver expenses. Same status shape as money
// advances plus optional vehicle/trailer references and structured
// tire-repair details.
type ExpenseController struct {
	DB *gorm.DB
}

func NewExpenseController(db *gorm.DB) *ExpenseController {
	return &ExpenseController{DB: db}
}

func (ctl *ExpenseController) GetExpenses(c *fiber.Ctx) error {
	query := ctl.DB
	if driverID := c.Query("driver_id"); driverID != "" {
		query = query.Where("driver_id = ?", driverID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if from := c.Query("from"); from != "" {
		query = query.Where("date >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		query = query.Where("date <= ?", to)
	}

	var expenses []Models.DriverExpense
	if err := query.Order("date desc").Find(&expenses).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(expenses)
}

func (ctl *ExpenseController) CreateExpense(c *fiber.Ctx) error {
	var expense Models.DriverExpense
	if err := c.BodyParser(&expense); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(expense); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// A tire repair with no positions selected is a guard failure, not a
	// silently-empty record.
	if len(expense.TireDetails) > 0 {
		var details Models.TireRepairDetails
		if err := json.Unmarshal(expense.TireDetails, &details); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid tire details"})
		}
		if len(details.TractorPositions) == 0 && len(details.TrailerPositions) == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "At least one tire position is required"})
		}
	}

	expense.ID = 0
	if expense.Date == "" {
		expense.Date = time.Now().Format("2006-01-02")
	}
	if expense.Status == Models.StatusApproved && requesterPermission(c) >= Models.PermissionManager {
		expense.ApprovedDate = time.Now().Format(time.RFC3339)
	} else {
		expense.Status = Models.StatusPending
		expense.ApprovedDate = ""
	}

	if err := ctl.DB.Create(&expense).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(expense)
}

func (ctl *ExpenseController) ApproveExpense(c *fiber.Ctx) error {
	id, err := requestID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid expense ID"})
	}
	var expense Models.DriverExpense
	if err := ctl.DB.First(&expense, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Expense not found"})
	}
	if expense.Status != Models.StatusPending {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Only pending expenses can be approved"})
	}
	expense.Status = Models.StatusApproved
	expense.ApprovedDate = time.Now().Format(time.RFC3339)
	ctl.DB.Save(&expense)
	return c.JSON(expense)
}

func (ctl *ExpenseController) RejectExpense(c *fiber.Ctx) error {
	id, err := requestID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid expense ID"})
	}
	var expense Models.DriverExpense
	if err := ctl.DB.First(&expense, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Expense not found"})
	}
	if expense.Status != Models.StatusPending {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Only pending expenses can be rejected"})
	}
	expense.Status = Models.StatusRejected
	ctl.DB.Save(&expense)
	return c.JSON(expense)
}

func (ctl *ExpenseController) UpdateExpense(c *fiber.Ctx) error {
	id, err := requestID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid expense ID"})
	}
	var expense Models.DriverExpense
	if err := ctl.DB.First(&expense, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Expense not found"})
	}
	var input Models.DriverExpense
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	ctl.DB.Model(&expense).Updates(input)
	return c.JSON(expense)
}

func (ctl *ExpenseController) DeleteExpense(c *fiber.Ctx) error {
	id, err := requestID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid expense ID"})
	}
	var expense Models.DriverExpense
	if err := ctl.DB.First(&expense, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Expense not found"})
	}
	ctl.DB.Delete(&expense)
	return c.JSON(fiber.Map{"message": "Expense deleted successfully"})
}
