package Controllers

import (
	"testing"

	"FleetOffice/Models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApproveFuelRequestDerivesLitres(t *testing.T) {
	db := testDB(t)

	require.NoError(t, db.Create(&Models.FuelPrice{Price: 20000, EffectiveDate: "2025-01-01T00:00:00Z"}).Error)
	req := Models.FuelRequest{DriverID: 1, VehicleID: 1, RequestDate: "2025-02-01", Status: Models.StatusPending}
	require.NoError(t, db.Create(&req).Error)

	approved, err := approveFuelRequest(db, req.ID, fuelApprovalInput{
		GasStation:   "Petrolimex 12",
		ApprovedCost: 1000000,
	})
	require.NoError(t, err)

	assert.Equal(t, Models.StatusApproved, approved.Status)
	assert.Equal(t, "Petrolimex 12", approved.GasStation)
	assert.Equal(t, 50.0, approved.ApprovedLitres)
	assert.NotEmpty(t, approved.ApprovedDate)

	// Non-temporary approval creates no advance.
	var advances int64
	db.Model(&Models.MoneyAdvance{}).Count(&advances)
	assert.Equal(t, int64(0), advances)
}

func TestApproveTemporaryFuelRequestCreatesAdvance(t *testing.T) {
	db := testDB(t)

	require.NoError(t, db.Create(&Models.FuelPrice{Price: 25000, EffectiveDate: "2025-01-01T00:00:00Z"}).Error)
	req := Models.FuelRequest{
		DriverID: 3, VehicleID: 1, RequestDate: "2025-03-15",
		Status: Models.StatusPending, IsTemporary: true,
	}
	require.NoError(t, db.Create(&req).Error)

	_, err := approveFuelRequest(db, req.ID, fuelApprovalInput{ApprovedCost: 500000})
	require.NoError(t, err)

	var advance Models.MoneyAdvance
	require.NoError(t, db.First(&advance).Error)
	assert.Equal(t, uint(3), advance.DriverID)
	assert.Equal(t, 500000.0, advance.Amount)
	assert.Equal(t, "Dầu tạm", advance.Category)
	assert.Equal(t, Models.StatusApproved, advance.Status)
	assert.Contains(t, advance.Reason, "Phiếu dầu tạm ngày 15/03/2025")
}

func TestApproveFuelRequestRejectsWrongStatus(t *testing.T) {
	db := testDB(t)

	req := Models.FuelRequest{DriverID: 1, VehicleID: 1, Status: Models.StatusRejected}
	require.NoError(t, db.Create(&req).Error)

	_, err := approveFuelRequest(db, req.ID, fuelApprovalInput{})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestApproveTemporaryFuelRequestRollsBackOnAdvanceFailure(t *testing.T) {
	db := testDB(t)

	require.NoError(t, db.Create(&Models.FuelPrice{Price: 25000, EffectiveDate: "2025-01-01T00:00:00Z"}).Error)
	req := Models.FuelRequest{
		DriverID: 3, VehicleID: 1, RequestDate: "2025-03-15",
		Status: Models.StatusPending, IsTemporary: true,
	}
	require.NoError(t, db.Create(&req).Error)

	// The advance insert runs in the same transaction as the approval;
	// when it fails the approval may not land either.
	require.NoError(t, db.Migrator().DropTable(&Models.MoneyAdvance{}))

	_, err := approveFuelRequest(db, req.ID, fuelApprovalInput{ApprovedCost: 500000})
	require.Error(t, err)

	var reloaded Models.FuelRequest
	require.NoError(t, db.First(&reloaded, req.ID).Error)
	assert.Equal(t, Models.StatusPending, reloaded.Status)
	assert.Empty(t, reloaded.ApprovedDate)
	assert.Zero(t, reloaded.ApprovedCost)
}

func TestCompleteFuelRequestFallsBackToApproved(t *testing.T) {
	db := testDB(t)

	req := Models.FuelRequest{
		DriverID: 1, VehicleID: 1, Status: Models.StatusApproved,
		ApprovedCost: 800000, ApprovedLitres: 40,
	}
	require.NoError(t, db.Create(&req).Error)

	completed, err := completeFuelRequest(db, req.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, Models.StatusCompleted, completed.Status)
	assert.Equal(t, 800000.0, completed.ActualCost)
	assert.Equal(t, 40.0, completed.ActualLitres)

	// Completing twice is invalid.
	_, err = completeFuelRequest(db, req.ID, nil)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCompleteFuelRequestWithActuals(t *testing.T) {
	db := testDB(t)

	req := Models.FuelRequest{DriverID: 1, VehicleID: 1, Status: Models.StatusApproved, ApprovedCost: 800000}
	require.NoError(t, db.Create(&req).Error)

	completed, err := completeFuelRequest(db, req.ID, &fuelCompletionInput{ActualCost: 795000, ActualLitres: 39.5})
	require.NoError(t, err)
	assert.Equal(t, 795000.0, completed.ActualCost)
	assert.Equal(t, 39.5, completed.ActualLitres)
}

func TestRevertFuelRequestClearsActuals(t *testing.T) {
	db := testDB(t)

	req := Models.FuelRequest{
		DriverID: 1, VehicleID: 1, Status: Models.StatusCompleted,
		ApprovedCost: 800000, ActualCost: 790000, ActualLitres: 39, CompletedDate: "2025-01-10T00:00:00Z",
	}
	require.NoError(t, db.Create(&req).Error)

	reverted, err := revertFuelRequest(db, req.ID)
	require.NoError(t, err)
	assert.Equal(t, Models.StatusApproved, reverted.Status)
	assert.Zero(t, reverted.ActualCost)
	assert.Zero(t, reverted.ActualLitres)
	assert.Empty(t, reverted.CompletedDate)

	// Approved data survives the revert.
	assert.Equal(t, 800000.0, reverted.ApprovedCost)

	// Only COMPLETED can revert.
	_, err = revertFuelRequest(db, req.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}
