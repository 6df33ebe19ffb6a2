package Controllers

import (
	"fmt"
	"strings"
	"time"

	"FleetOffice/Importer"
	"FleetOffice/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// PayOnBehalfController manages the imported disbursement ledger and the
// slips derived from it.
type PayOnBehalfController struct {
	DB *gorm.DB
}

func NewPayOnBehalfController(db *gorm.DB) *PayOnBehalfController {
	return &PayOnBehalfController{DB: db}
}

func (ctl *PayOnBehalfController) existingContainers() map[string]bool {
	var containers []string
	ctl.DB.Model(&Models.PayOnBehalf{}).Where("container_no <> ''").Pluck("container_no", &containers)
	set := make(map[string]bool, len(containers))
	for _, c := range containers {
		set[c] = true
	}
	return set
}

func (ctl *PayOnBehalfController) GetPayOnBehalf(c *fiber.Ctx) error {
	query := ctl.DB
	if from := c.Query("from"); from != "" {
		query = query.Where("date >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		query = query.Where("date <= ?", to)
	}
	if container := c.Query("container"); container != "" {
		query = query.Where("container_no LIKE ?", "%"+container+"%")
	}

	var items []Models.PayOnBehalf
	if err := query.Order("date desc").Find(&items).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(items)
}

func (ctl *PayOnBehalfController) UpdatePayOnBehalf(c *fiber.Ctx) error {
	id, err := requestID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}
	var item Models.PayOnBehalf
	if err := ctl.DB.First(&item, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Record not found"})
	}
	var input Models.PayOnBehalf
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	ctl.DB.Model(&item).Updates(input)
	return c.JSON(item)
}

func (ctl *PayOnBehalfController) DeletePayOnBehalf(c *fiber.Ctx) error {
	id, err := requestID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}
	var item Models.PayOnBehalf
	if err := ctl.DB.First(&item, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Record not found"})
	}
	ctl.DB.Delete(&item)
	return c.JSON(fiber.Map{"message": "Record deleted successfully"})
}

type importInput struct {
	Text            string `json:"text"`
	AllowDuplicates bool   `json:"allow_duplicates"`
}

// PreviewImport parses pasted ledger text without persisting anything, so
// the caller can show valid rows, per-line errors and duplicate container
// warnings before committing.
func (ctl *PayOnBehalfController) PreviewImport(c *fiber.Ctx) error {
	var input importInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if strings.TrimSpace(input.Text) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No import text provided"})
	}
	return c.JSON(Importer.ParsePayOnBehalf(input.Text, ctl.existingContainers()))
}

// SaveImport persists all valid rows from the paste. When the paste carries
// container numbers already in the store, the caller must set
// allow_duplicates; duplicates are a warning, never a rejection.
func (ctl *PayOnBehalfController) SaveImport(c *fiber.Ctx) error {
	var input importInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if strings.TrimSpace(input.Text) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No import text provided"})
	}

	result := Importer.ParsePayOnBehalf(input.Text, ctl.existingContainers())
	if len(result.Duplicates) > 0 && !input.AllowDuplicates {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error":      "Duplicate container numbers require confirmation",
			"duplicates": result.Duplicates,
		})
	}
	if len(result.Rows) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "No valid rows to import",
			"errors": result.Errors,
		})
	}

	records := make([]Models.PayOnBehalf, 0, len(result.Rows))
	for _, row := range result.Rows {
		record := row.Record
		record.HasSlipGenerated = false
		records = append(records, record)
	}
	if err := ctl.DB.Create(&records).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"imported":   len(records),
		"errors":     result.Errors,
		"duplicates": result.Duplicates,
	})
}

// SlipPlan is a slip derived from one original, shown to the operator for
// adjustment before anything is persisted.
type SlipPlan struct {
	RefID         uint    `json:"ref_id"`
	Date          string  `json:"date"`
	Amount        float64 `json:"amount"`
	Recipient     string  `json:"recipient"`
	Reason        string  `json:"reason"`
	ContainerNo   string  `json:"container_no"`
	ContainerType string  `json:"container_type"`
	VehiclePlate  string  `json:"vehicle_plate"`
}

// operationTypeCode maps the ledger's operation text to the short code used
// in slip reasons: HR for inbound ("nhập"), LR for outbound ("xuất"),
// anything else passes through.
func operationTypeCode(operation string) string {
	op := strings.ToLower(operation)
	switch {
	case strings.Contains(op, "nhập"):
		return "HR"
	case strings.Contains(op, "xuất"):
		return "LR"
	default:
		return operation
	}
}

// planRecipient guesses who gets paid from the movement direction: inbound
// pays the drop/return point, outbound the depot, otherwise the first
// non-empty of depot, drop/return and warehouse.
func planRecipient(item Models.PayOnBehalf) string {
	op := strings.ToLower(item.Operation)
	switch {
	case strings.Contains(op, "nhập"):
		return item.DropReturn
	case strings.Contains(op, "xuất"):
		return item.Depot
	case item.Depot != "":
		return item.Depot
	case item.DropReturn != "":
		return item.DropReturn
	default:
		return item.Warehouse
	}
}

func slipReason(item Models.PayOnBehalf, reasonName string) string {
	base := fmt.Sprintf("%s %s %s %s",
		operationTypeCode(item.Operation), item.ContainerNo, item.VehiclePlate, formatDateVN(item.Date))
	full := strings.TrimSpace(base + " " + item.CustomerReconciliation)
	if reasonName != "" {
		return reasonName + ": " + full
	}
	return full
}

func buildSlipPlan(item Models.PayOnBehalf, date string) SlipPlan {
	containerType := ""
	if item.Count20 > 0 {
		containerType = "20'"
	} else if item.Count40 > 0 {
		containerType = "40'"
	}
	containerNo := item.ContainerNo
	if containerNo == "" {
		containerNo = "N/A"
	}
	return SlipPlan{
		RefID:         item.ID,
		Date:          date,
		Amount:        Importer.ParseAmount(item.CustomerReconciliation),
		Recipient:     planRecipient(item),
		Reason:        slipReason(item, ""),
		ContainerNo:   containerNo,
		ContainerType: containerType,
		VehiclePlate:  item.VehiclePlate,
	}
}

// PlanSlips derives one editable slip per selected original.
func (ctl *PayOnBehalfController) PlanSlips(c *fiber.Ctx) error {
	var input struct {
		IDs []uint `json:"ids"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if len(input.IDs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No originals selected"})
	}

	var items []Models.PayOnBehalf
	if err := ctl.DB.Where("id IN ?", input.IDs).Find(&items).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	today := time.Now().Format("2006-01-02")
	plans := make([]SlipPlan, 0, len(items))
	for _, item := range items {
		plans = append(plans, buildSlipPlan(item, today))
	}
	return c.JSON(plans)
}

// createSlips persists the planned slips, marks every referenced original as
// generated, and auto-creates an approved money advance for each slip whose
// recipient matches a driver name (case-insensitive) with a positive amount.
// All writes commit in one transaction. Returns the stored slips and the
// number of advances created.
func createSlips(db *gorm.DB, plans []SlipPlan) ([]Models.PayOnBehalfSlip, int, error) {
	var slips []Models.PayOnBehalfSlip
	advanceCount := 0

	err := db.Transaction(func(tx *gorm.DB) error {
		var drivers []Models.Driver
		if err := tx.Find(&drivers).Error; err != nil {
			return err
		}
		driversByName := make(map[string]Models.Driver, len(drivers))
		for _, d := range drivers {
			driversByName[strings.ToLower(d.Name)] = d
		}

		now := time.Now().Format(time.RFC3339)
		refIDs := make(map[uint]bool)

		for _, plan := range plans {
			slip := Models.PayOnBehalfSlip{
				RefID:        plan.RefID,
				Date:         plan.Date,
				Amount:       plan.Amount,
				Recipient:    plan.Recipient,
				Reason:       plan.Reason,
				ContainerNo:  plan.ContainerNo,
				VehiclePlate: plan.VehiclePlate,
			}

			// Snapshot container/plate from the original when it still
			// exists; the submitted values only stand in for gone originals.
			var original Models.PayOnBehalf
			if err := tx.First(&original, plan.RefID).Error; err == nil {
				if original.ContainerNo != "" {
					slip.ContainerNo = original.ContainerNo
				}
				slip.VehiclePlate = original.VehiclePlate
				refIDs[original.ID] = true
			}

			if err := tx.Create(&slip).Error; err != nil {
				return err
			}
			slips = append(slips, slip)

			if driver, ok := driversByName[strings.ToLower(strings.TrimSpace(plan.Recipient))]; ok && plan.Amount > 0 {
				advance := Models.MoneyAdvance{
					DriverID:     driver.ID,
					Amount:       plan.Amount,
					Date:         plan.Date,
					Category:     "Chi hộ",
					Reason:       "Chi hộ: " + plan.Reason,
					Status:       Models.StatusApproved,
					ApprovedDate: now,
				}
				if err := tx.Create(&advance).Error; err != nil {
					return err
				}
				advanceCount++
			}
		}

		for refID := range refIDs {
			if err := tx.Model(&Models.PayOnBehalf{}).Where("id = ?", refID).
				Update("has_slip_generated", true).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return slips, advanceCount, nil
}

// CreateSlips persists operator-confirmed slip plans.
func (ctl *PayOnBehalfController) CreateSlips(c *fiber.Ctx) error {
	var input struct {
		Slips []SlipPlan `json:"slips"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if len(input.Slips) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No slips provided"})
	}

	slips, advanceCount, err := createSlips(ctl.DB, input.Slips)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"slips":            slips,
		"advances_created": advanceCount,
	})
}

// SlipDisplay joins a slip with the live state of its original. A dangling
// reference leaves Original nil; the slip itself still lists fine off its
// snapshotted fields.
type SlipDisplay struct {
	Models.PayOnBehalfSlip
	Original *Models.PayOnBehalf `json:"original,omitempty"`
}

func (ctl *PayOnBehalfController) GetSlips(c *fiber.Ctx) error {
	query := ctl.DB
	if from := c.Query("from"); from != "" {
		query = query.Where("date >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		query = query.Where("date <= ?", to)
	}

	var slips []Models.PayOnBehalfSlip
	if err := query.Order("date desc").Find(&slips).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var originals []Models.PayOnBehalf
	ctl.DB.Find(&originals)
	originalsByID := make(map[uint]*Models.PayOnBehalf, len(originals))
	for i := range originals {
		originalsByID[originals[i].ID] = &originals[i]
	}

	displays := make([]SlipDisplay, 0, len(slips))
	for _, slip := range slips {
		displays = append(displays, SlipDisplay{
			PayOnBehalfSlip: slip,
			Original:        originalsByID[slip.RefID],
		})
	}
	return c.JSON(displays)
}

// UpdateSlip edits the mutable slip fields. The container number and plate
// snapshots are deliberately not editable.
func (ctl *PayOnBehalfController) UpdateSlip(c *fiber.Ctx) error {
	id, err := requestID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid slip ID"})
	}
	var slip Models.PayOnBehalfSlip
	if err := ctl.DB.First(&slip, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Slip not found"})
	}
	var input Models.PayOnBehalfSlip
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	// Map form so zero values persist: an amount edited down to 0 is a
	// real edit, not an omission.
	ctl.DB.Model(&slip).Updates(map[string]interface{}{
		"date":      input.Date,
		"amount":    input.Amount,
		"recipient": input.Recipient,
		"reason":    input.Reason,
	})
	return c.JSON(slip)
}

func (ctl *PayOnBehalfController) DeleteSlip(c *fiber.Ctx) error {
	id, err := requestID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid slip ID"})
	}
	var slip Models.PayOnBehalfSlip
	if err := ctl.DB.First(&slip, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Slip not found"})
	}
	ctl.DB.Delete(&slip)
	return c.JSON(fiber.Map{"message": "Slip deleted successfully"})
}
