package Controllers

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"FleetOffice/Models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var validate = validator.New()

// ErrInvalidTransition is returned when a workflow operation is applied to a
// record whose current status does not allow it.
var ErrInvalidTransition = errors.New("invalid status transition")

// FuelRequestController drives the fuel request lifecycle:
// PENDING -> APPROVED -> COMPLETED, PENDING -> REJECTED, and the single
// backward transition COMPLETED -> APPROVED (revert).
type FuelRequestController struct {
	DB *gorm.DB
}

func NewFuelRequestController(db *gorm.DB) *FuelRequestController {
	return &FuelRequestController{DB: db}
}

type fuelApprovalInput struct {
	GasStation   string  `json:"gas_station"`
	IsFullTank   *bool   `json:"is_full_tank"`
	ApprovedCost float64 `json:"approved_cost"`
}

type fuelCompletionInput struct {
	ActualCost   float64 `json:"actual_cost"`
	ActualLitres float64 `json:"actual_litres"`
}

func roundLitres(v float64) float64 {
	return math.Round(v*100) / 100
}

// display format for reasons generated from request dates
func formatDateVN(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("02/01/2006")
}

// approveFuelRequest transitions a pending request to APPROVED, derives the
// approved litres from the fuel price in effect at approval time, and for
// temporary fuel requests creates the matching pre-approved money advance.
// Both writes commit in one transaction.
func approveFuelRequest(db *gorm.DB, id uint, input fuelApprovalInput) (*Models.FuelRequest, error) {
	var req Models.FuelRequest
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&req, id).Error; err != nil {
			return err
		}
		if req.Status != Models.StatusPending {
			return fmt.Errorf("%w: cannot approve a %s request", ErrInvalidTransition, req.Status)
		}

		now := time.Now().Format(time.RFC3339)
		req.Status = Models.StatusApproved
		req.ApprovedDate = now
		if input.GasStation != "" {
			req.GasStation = input.GasStation
		}
		if input.IsFullTank != nil {
			req.IsFullTank = *input.IsFullTank
		}
		if input.ApprovedCost > 0 {
			req.ApprovedCost = input.ApprovedCost
		}

		if req.ApprovedCost > 0 {
			if price := Models.PriceAtTime(tx, req.ApprovedDate); price > 0 {
				req.ApprovedLitres = roundLitres(req.ApprovedCost / price)
			}
		}

		if err := tx.Save(&req).Error; err != nil {
			return err
		}

		if req.IsTemporary && req.ApprovedCost > 0 {
			advance := Models.MoneyAdvance{
				DriverID:     req.DriverID,
				Amount:       req.ApprovedCost,
				Category:     "Dầu tạm",
				Reason:       fmt.Sprintf("Phiếu dầu tạm ngày %s (%d)", formatDateVN(req.RequestDate), req.ID),
				Date:         req.RequestDate,
				Status:       Models.StatusApproved,
				ApprovedDate: now,
			}
			if err := tx.Create(&advance).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func completeFuelRequest(db *gorm.DB, id uint, input *fuelCompletionInput) (*Models.FuelRequest, error) {
	var req Models.FuelRequest
	if err := db.First(&req, id).Error; err != nil {
		return nil, err
	}
	if req.Status != Models.StatusApproved {
		return nil, fmt.Errorf("%w: cannot complete a %s request", ErrInvalidTransition, req.Status)
	}

	req.Status = Models.StatusCompleted
	req.CompletedDate = time.Now().Format(time.RFC3339)
	if input != nil {
		req.ActualCost = input.ActualCost
		req.ActualLitres = input.ActualLitres
	} else {
		// No actuals supplied, fall back to the approved figures.
		req.ActualCost = req.ApprovedCost
		req.ActualLitres = req.ApprovedLitres
	}
	if err := db.Save(&req).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// revertFuelRequest is the only backward transition: a completed request goes
// back to APPROVED with its actuals cleared.
func revertFuelRequest(db *gorm.DB, id uint) (*Models.FuelRequest, error) {
	var req Models.FuelRequest
	if err := db.First(&req, id).Error; err != nil {
		return nil, err
	}
	if req.Status != Models.StatusCompleted {
		return nil, fmt.Errorf("%w: cannot revert a %s request", ErrInvalidTransition, req.Status)
	}
	req.Status = Models.StatusApproved
	req.CompletedDate = ""
	req.ActualCost = 0
	req.ActualLitres = 0
	if err := db.Save(&req).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (ctl *FuelRequestController) GetFuelRequests(c *fiber.Ctx) error {
	query := ctl.DB
	if driverID := c.Query("driver_id"); driverID != "" {
		query = query.Where("driver_id = ?", driverID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if from := c.Query("from"); from != "" {
		query = query.Where("request_date >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		query = query.Where("request_date <= ?", to)
	}

	var requests []Models.FuelRequest
	if err := query.Order("request_date desc").Find(&requests).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(requests)
}

func (ctl *FuelRequestController) CreateFuelRequest(c *fiber.Ctx) error {
	var req Models.FuelRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	req.ID = 0
	req.Status = Models.StatusPending
	if req.RequestDate == "" {
		req.RequestDate = time.Now().Format("2006-01-02")
	}
	if err := ctl.DB.Create(&req).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(req)
}

func requestID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}

func workflowError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Record not found"})
	case errors.Is(err, ErrInvalidTransition):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}

func (ctl *FuelRequestController) ApproveFuelRequest(c *fiber.Ctx) error {
	id, err := requestID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request ID"})
	}
	var input fuelApprovalInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	req, err := approveFuelRequest(ctl.DB, id, input)
	if err != nil {
		return workflowError(c, err)
	}
	return c.JSON(req)
}

func (ctl *FuelRequestController) RejectFuelRequest(c *fiber.Ctx) error {
	id, err := requestID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request ID"})
	}
	var req Models.FuelRequest
	if err := ctl.DB.First(&req, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Fuel request not found"})
	}
	if req.Status != Models.StatusPending {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Only pending requests can be rejected"})
	}
	req.Status = Models.StatusRejected
	ctl.DB.Save(&req)
	return c.JSON(req)
}

func (ctl *FuelRequestController) CompleteFuelRequest(c *fiber.Ctx) error {
	id, err := requestID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request ID"})
	}
	var input *fuelCompletionInput
	if len(c.Body()) > 0 {
		input = &fuelCompletionInput{}
		if err := c.BodyParser(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
	}
	req, err := completeFuelRequest(ctl.DB, id, input)
	if err != nil {
		return workflowError(c, err)
	}
	return c.JSON(req)
}

func (ctl *FuelRequestController) RevertFuelRequest(c *fiber.Ctx) error {
	id, err := requestID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request ID"})
	}
	req, err := revertFuelRequest(ctl.DB, id)
	if err != nil {
		return workflowError(c, err)
	}
	return c.JSON(req)
}

// UpdateFuelRequest edits request fields outside the lifecycle endpoints.
// Changing the approved cost re-derives the approved litres from the price
// in effect at the original approval time.
func (ctl *FuelRequestController) UpdateFuelRequest(c *fiber.Ctx) error {
	id, err := requestID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request ID"})
	}
	var req Models.FuelRequest
	if err := ctl.DB.First(&req, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Fuel request not found"})
	}

	var input Models.FuelRequest
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	costChanged := input.ApprovedCost > 0 && input.ApprovedCost != req.ApprovedCost
	ctl.DB.Model(&req).Updates(input)
	if costChanged {
		at := req.ApprovedDate
		if at == "" {
			at = time.Now().Format(time.RFC3339)
		}
		if price := Models.PriceAtTime(ctl.DB, at); price > 0 {
			req.ApprovedLitres = roundLitres(req.ApprovedCost / price)
			ctl.DB.Save(&req)
		}
	}
	return c.JSON(req)
}

func (ctl *FuelRequestController) DeleteFuelRequest(c *fiber.Ctx) error {
	id, err := requestID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request ID"})
	}
	var req Models.FuelRequest
	if err := ctl.DB.First(&req, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Fuel request not found"})
	}
	ctl.DB.Delete(&req)
	return c.JSON(fiber.Map{"message": "Fuel request deleted successfully"})
}
