package Controllers

import (
	"time"

	"FleetOffice/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AdvanceController manages money advances: PENDING -> APPROVED | REJECTED,
// no revert. Managers may create an advance directly in the APPROVED state.
type AdvanceController struct {
	DB *gorm.DB
}

func NewAdvanceController(db *gorm.DB) *AdvanceController {
	return &AdvanceController{DB: db}
}

// requesterPermission reads the permission level stashed by the auth
// middleware; absent (e.g. in tests) counts as the lowest level.
func requesterPermission(c *fiber.Ctx) int {
	if user, ok := c.Locals("user").(Models.User); ok {
		return user.Permission
	}
	return Models.PermissionDriver
}

func (ctl *AdvanceController) GetAdvances(c *fiber.Ctx) error {
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

	var advances []Models.MoneyAdvance
	if err := query.Order("date desc").Find(&advances).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(advances)
}

// CreateAdvance registers a new advance. A requested APPROVED initial status
// is honored only for managers and admins; everyone else starts at PENDING.
func (ctl *AdvanceController) CreateAdvance(c *fiber.Ctx) error {
	var advance Models.MoneyAdvance
	if err := c.BodyParser(&advance); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(advance); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	advance.ID = 0
	if advance.Date == "" {
		advance.Date = time.Now().Format("2006-01-02")
	}
	if advance.Status == Models.StatusApproved && requesterPermission(c) >= Models.PermissionManager {
		advance.ApprovedDate = time.Now().Format(time.RFC3339)
	} else {
		advance.Status = Models.StatusPending
		advance.ApprovedDate = ""
	}

	if err := ctl.DB.Create(&advance).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(advance)
}

func (ctl *AdvanceController) ApproveAdvance(c *fiber.Ctx) error {
	id, err := requestID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid advance ID"})
	}
	var advance Models.MoneyAdvance
	if err := ctl.DB.First(&advance, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Advance not found"})
	}
	if advance.Status != Models.StatusPending {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Only pending advances can be approved"})
	}
	advance.Status = Models.StatusApproved
	advance.ApprovedDate = time.Now().Format(time.RFC3339)
	ctl.DB.Save(&advance)
	return c.JSON(advance)
}

func (ctl *AdvanceController) RejectAdvance(c *fiber.Ctx) error {
	id, err := requestID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid advance ID"})
	}
	var advance Models.MoneyAdvance
	if err := ctl.DB.First(&advance, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Advance not found"})
	}
	if advance.Status != Models.StatusPending {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Only pending advances can be rejected"})
	}
	advance.Status = Models.StatusRejected
	ctl.DB.Save(&advance)
	return c.JSON(advance)
}

func (ctl *AdvanceController) UpdateAdvance(c *fiber.Ctx) error {
	id, err := requestID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid advance ID"})
	}
	var advance Models.MoneyAdvance
	if err := ctl.DB.First(&advance, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Advance not found"})
	}
	var input Models.MoneyAdvance
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	ctl.DB.Model(&advance).Updates(input)
	return c.JSON(advance)
}

func (ctl *AdvanceController) DeleteAdvance(c *fiber.Ctx) error {
	id, err := requestID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid advance ID"})
	}
	var advance Models.MoneyAdvance
	if err := ctl.DB.First(&advance, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Advance not found"})
	}
	ctl.DB.Delete(&advance)
	return c.JSON(fiber.Map{"message": "Advance deleted successfully"})
}
