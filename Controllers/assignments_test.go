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

func TestEnrichResolvesNamesAtReadTime(t *testing.T) {
	db := testDB(t)
	ctl := NewAssignmentController(db)

	driver := Models.Driver{Name: "Trần Văn B"}
	vehicle := Models.Vehicle{PlateNumber: "51C-111.11"}
	trailer := Models.Vehicle{PlateNumber: "51R-222.22"}
	require.NoError(t, db.Create(&driver).Error)
	require.NoError(t, db.Create(&vehicle).Error)
	require.NoError(t, db.Create(&trailer).Error)

	assignments := []Models.Assignment{
		{DriverID: driver.ID, VehicleID: vehicle.ID, TrailerID: trailer.ID, StartDate: "2025-01-01"},
		// Dangling references: the driver row was never created.
		{DriverID: 9999, VehicleID: vehicle.ID, StartDate: "2020-01-01", EndDate: "2020-06-30"},
	}

	displays := ctl.enrich(assignments)
	require.Len(t, displays, 2)

	assert.Equal(t, "Trần Văn B", displays[0].DriverName)
	assert.Equal(t, "51C-111.11", displays[0].VehiclePlate)
	assert.Equal(t, "51R-222.22", displays[0].TrailerPlate)
	assert.True(t, displays[0].IsActive)

	assert.Equal(t, "Unknown", displays[1].DriverName)
	assert.Empty(t, displays[1].TrailerPlate)
	assert.False(t, displays[1].IsActive)
}

func TestGetActiveForVehicleQuery(t *testing.T) {
	db := testDB(t)
	ctl := NewAssignmentController(db)

	require.NoError(t, db.Create(&Models.Assignment{
		DriverID: 4, VehicleID: 7, StartDate: "2025-01-01",
	}).Error)

	app := fiber.New()
	app.Get("/assignments/active/vehicle", ctl.GetActiveForVehicle)

	resp, err := app.Test(httptest.NewRequest("GET", "/assignments/active/vehicle?vehicle_id=7&date=2025-02-01", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/assignments/active/vehicle?vehicle_id=7&date=2024-01-01", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// Missing or malformed ids are rejected rather than treated as 0.
	resp, err = app.Test(httptest.NewRequest("GET", "/assignments/active/vehicle?date=2025-02-01", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/assignments/active/vehicle?vehicle_id=abc", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpdateAssignmentRemovesTrailer(t *testing.T) {
	db := testDB(t)
	ctl := NewAssignmentController(db)

	assignment := Models.Assignment{DriverID: 1, VehicleID: 2, TrailerID: 3, StartDate: "2025-01-01"}
	require.NoError(t, db.Create(&assignment).Error)

	app := fiber.New()
	app.Put("/assignments/:id", ctl.UpdateAssignment)

	body := strings.NewReader(`{"driver_id":1,"vehicle_id":2,"trailer_id":0,"start_date":"2025-01-01"}`)
	req := httptest.NewRequest("PUT", fmt.Sprintf("/assignments/%d", assignment.ID), body)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var reloaded Models.Assignment
	require.NoError(t, db.First(&reloaded, assignment.ID).Error)
	assert.Zero(t, reloaded.TrailerID)
	assert.Equal(t, uint(1), reloaded.DriverID)
}

func TestDeletingDriverKeepsAssignments(t *testing.T) {
	db := testDB(t)

	driver := Models.Driver{Name: "Lê Văn C"}
	require.NoError(t, db.Create(&driver).Error)
	require.NoError(t, db.Create(&Models.Assignment{
		DriverID: driver.ID, VehicleID: 1, StartDate: "2025-01-01",
	}).Error)

	require.NoError(t, db.Unscoped().Delete(&Models.Driver{}, driver.ID).Error)

	// Referential integrity is not enforced; the assignment stays and the
	// listing shows the gap instead of erroring.
	var count int64
	db.Model(&Models.Assignment{}).Count(&count)
	assert.Equal(t, int64(1), count)

	ctl := NewAssignmentController(db)
	var assignments []Models.Assignment
	require.NoError(t, db.Find(&assignments).Error)
	displays := ctl.enrich(assignments)
	require.Len(t, displays, 1)
	assert.Equal(t, "Unknown", displays[0].DriverName)
}
