package Controllers

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"FleetOffice/Models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperationTypeCode(t *testing.T) {
	assert.Equal(t, "HR", operationTypeCode("Nhập hàng"))
	assert.Equal(t, "LR", operationTypeCode("Xuất hàng"))
	assert.Equal(t, "Chuyển kho", operationTypeCode("Chuyển kho"))
}

func TestBuildSlipPlan(t *testing.T) {
	item := Models.PayOnBehalf{
		VehiclePlate:           "51C-123.45",
		Date:                   "2025-03-15",
		Operation:              "Nhập hàng",
		Warehouse:              "Kho A",
		Depot:                  "Depot B",
		DropReturn:             "Bãi C",
		Count20:                1,
		ContainerNo:            "TCLU1234567",
		CustomerReconciliation: "1.500.000",
	}
	item.ID = 42

	plan := buildSlipPlan(item, "2025-03-20")
	assert.Equal(t, uint(42), plan.RefID)
	assert.Equal(t, "2025-03-20", plan.Date)
	assert.Equal(t, 1500000.0, plan.Amount)
	// Inbound movements pay the drop/return point.
	assert.Equal(t, "Bãi C", plan.Recipient)
	assert.Equal(t, "TCLU1234567", plan.ContainerNo)
	assert.Equal(t, "20'", plan.ContainerType)
	assert.Contains(t, plan.Reason, "HR TCLU1234567 51C-123.45 15/03/2025")
}

func TestBuildSlipPlanFallbacks(t *testing.T) {
	outbound := Models.PayOnBehalf{Operation: "Xuất hàng", Depot: "Depot B", Count40: 2}
	plan := buildSlipPlan(outbound, "2025-01-01")
	assert.Equal(t, "Depot B", plan.Recipient)
	assert.Equal(t, "40'", plan.ContainerType)
	assert.Equal(t, "N/A", plan.ContainerNo)

	bare := Models.PayOnBehalf{Operation: "Khác", Warehouse: "Kho X"}
	assert.Equal(t, "Kho X", buildSlipPlan(bare, "2025-01-01").Recipient)
}

func TestCreateSlips(t *testing.T) {
	db := testDB(t)

	original := Models.PayOnBehalf{
		VehiclePlate: "51C-123.45", Date: "2025-03-15", Operation: "Nhập",
		ContainerNo: "TCLU1234567",
	}
	require.NoError(t, db.Create(&original).Error)

	plans := []SlipPlan{{
		RefID: original.ID, Date: "2025-03-20", Amount: 150000,
		Recipient: "Depot B", Reason: "HR TCLU1234567",
		ContainerNo: "stale", VehiclePlate: "stale",
	}}
	slips, advances, err := createSlips(db, plans)
	require.NoError(t, err)
	require.Len(t, slips, 1)
	assert.Equal(t, 0, advances)

	// Snapshot comes from the live original, not the submitted plan.
	assert.Equal(t, "TCLU1234567", slips[0].ContainerNo)
	assert.Equal(t, "51C-123.45", slips[0].VehiclePlate)

	var reloaded Models.PayOnBehalf
	require.NoError(t, db.First(&reloaded, original.ID).Error)
	assert.True(t, reloaded.HasSlipGenerated)
}

func TestCreateSlipsDriverRecipientGetsAdvance(t *testing.T) {
	db := testDB(t)

	driver := Models.Driver{Name: "Nguyễn Văn A"}
	require.NoError(t, db.Create(&driver).Error)
	original := Models.PayOnBehalf{ContainerNo: "CONT1"}
	require.NoError(t, db.Create(&original).Error)

	plans := []SlipPlan{
		// Name matching ignores case and surrounding whitespace.
		{RefID: original.ID, Date: "2025-03-20", Amount: 200000, Recipient: " nguyễn văn a "},
		// Zero amount never creates an advance even on a name match.
		{RefID: original.ID, Date: "2025-03-20", Amount: 0, Recipient: "Nguyễn Văn A"},
	}
	slips, advances, err := createSlips(db, plans)
	require.NoError(t, err)
	assert.Len(t, slips, 2)
	assert.Equal(t, 1, advances)

	var advance Models.MoneyAdvance
	require.NoError(t, db.First(&advance).Error)
	assert.Equal(t, driver.ID, advance.DriverID)
	assert.Equal(t, 200000.0, advance.Amount)
	assert.Equal(t, "Chi hộ", advance.Category)
	assert.Equal(t, Models.StatusApproved, advance.Status)
}

func TestSlipSurvivesOriginalDeletion(t *testing.T) {
	db := testDB(t)

	original := Models.PayOnBehalf{ContainerNo: "CONT9", VehiclePlate: "51C-9"}
	require.NoError(t, db.Create(&original).Error)

	slips, _, err := createSlips(db, []SlipPlan{{
		RefID: original.ID, Date: "2025-03-20", Amount: 100000, Recipient: "Depot",
	}})
	require.NoError(t, err)

	require.NoError(t, db.Unscoped().Delete(&Models.PayOnBehalf{}, original.ID).Error)

	// The slip keeps its snapshotted identity after the original is gone.
	var slip Models.PayOnBehalfSlip
	require.NoError(t, db.First(&slip, slips[0].ID).Error)
	assert.Equal(t, "CONT9", slip.ContainerNo)
	assert.Equal(t, "51C-9", slip.VehiclePlate)
}

func TestUpdateSlipPersistsZeroAmount(t *testing.T) {
	db := testDB(t)
	ctl := NewPayOnBehalfController(db)

	original := Models.PayOnBehalf{ContainerNo: "CONT5", VehiclePlate: "51C-5"}
	require.NoError(t, db.Create(&original).Error)
	slips, _, err := createSlips(db, []SlipPlan{{
		RefID: original.ID, Date: "2025-03-20", Amount: 150000, Recipient: "Depot",
	}})
	require.NoError(t, err)

	app := fiber.New()
	app.Put("/slips/:id", ctl.UpdateSlip)

	body := `{"date":"2025-03-21","amount":0,"recipient":"Depot","reason":"Hoàn lại"}`
	req := httptest.NewRequest("PUT", fmt.Sprintf("/slips/%d", slips[0].ID), strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var reloaded Models.PayOnBehalfSlip
	require.NoError(t, db.First(&reloaded, slips[0].ID).Error)
	// Editing an amount down to 0 is a real edit and must stick.
	assert.Zero(t, reloaded.Amount)
	assert.Equal(t, "2025-03-21", reloaded.Date)
	// The snapshot stays frozen through edits.
	assert.Equal(t, "CONT5", reloaded.ContainerNo)
}

func TestCreateSlipsRollsBackOnAdvanceFailure(t *testing.T) {
	db := testDB(t)

	driver := Models.Driver{Name: "Trần Văn B"}
	require.NoError(t, db.Create(&driver).Error)
	original := Models.PayOnBehalf{ContainerNo: "CONT2"}
	require.NoError(t, db.Create(&original).Error)

	// With the advances table gone the driver-matched insert fails,
	// and nothing from the batch may survive.
	require.NoError(t, db.Migrator().DropTable(&Models.MoneyAdvance{}))

	_, _, err := createSlips(db, []SlipPlan{{
		RefID: original.ID, Date: "2025-03-20", Amount: 50000, Recipient: "Trần Văn B",
	}})
	require.Error(t, err)

	var count int64
	db.Model(&Models.PayOnBehalfSlip{}).Count(&count)
	assert.Zero(t, count)

	var reloaded Models.PayOnBehalf
	require.NoError(t, db.First(&reloaded, original.ID).Error)
	assert.False(t, reloaded.HasSlipGenerated)
}
