package Models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignmentCovers(t *testing.T) {
	closed := Assignment{StartDate: "2025-01-01", EndDate: "2025-01-31"}
	assert.True(t, closed.covers("2025-01-01"))
	assert.True(t, closed.covers("2025-01-15"))
	assert.True(t, closed.covers("2025-01-31"))
	assert.False(t, closed.covers("2024-12-31"))
	assert.False(t, closed.covers("2025-02-01"))

	open := Assignment{StartDate: "2025-01-01"}
	assert.True(t, open.covers("2030-06-01"))
	assert.False(t, open.covers("2024-12-31"))
}

func TestActiveAssignmentForVehicleLatestStartWins(t *testing.T) {
	db := testDB(t)

	older := Assignment{DriverID: 1, VehicleID: 10, StartDate: "2025-01-01"}
	newer := Assignment{DriverID: 2, VehicleID: 10, StartDate: "2025-02-01"}
	require.NoError(t, db.Create(&older).Error)
	require.NoError(t, db.Create(&newer).Error)

	// Both are open and cover the date; the later start wins.
	active := ActiveAssignmentForVehicle(db, 10, "2025-03-01")
	require.NotNil(t, active)
	assert.Equal(t, uint(2), active.DriverID)

	// Before the newer one started, the older assignment is active.
	active = ActiveAssignmentForVehicle(db, 10, "2025-01-15")
	require.NotNil(t, active)
	assert.Equal(t, uint(1), active.DriverID)

	assert.Nil(t, ActiveAssignmentForVehicle(db, 10, "2024-06-01"))
	assert.Nil(t, ActiveAssignmentForVehicle(db, 99, "2025-03-01"))
}

func TestActiveAssignmentForDriver(t *testing.T) {
	db := testDB(t)

	require.NoError(t, db.Create(&Assignment{
		DriverID: 7, VehicleID: 1, StartDate: "2025-01-01", EndDate: "2025-06-30",
	}).Error)
	require.NoError(t, db.Create(&Assignment{
		DriverID: 7, VehicleID: 2, StartDate: "2025-05-01",
	}).Error)

	// During the overlap both cover; the later start resolves to vehicle 2.
	active := ActiveAssignmentForDriver(db, 7, "2025-06-01")
	require.NotNil(t, active)
	assert.Equal(t, uint(2), active.VehicleID)

	active = ActiveAssignmentForDriver(db, 7, "2025-03-01")
	require.NotNil(t, active)
	assert.Equal(t, uint(1), active.VehicleID)
}

func TestOverlappingAssignments(t *testing.T) {
	db := testDB(t)

	existing := Assignment{DriverID: 1, VehicleID: 5, StartDate: "2025-01-01", EndDate: "2025-03-31"}
	require.NoError(t, db.Create(&existing).Error)

	overlapping := OverlappingAssignments(db, 5, "2025-03-01", "2025-04-30", 0)
	require.Len(t, overlapping, 1)

	// Disjoint interval, no overlap.
	assert.Empty(t, OverlappingAssignments(db, 5, "2025-04-01", "2025-05-31", 0))

	// Open-ended new interval overlaps anything not ended before it starts.
	assert.Len(t, OverlappingAssignments(db, 5, "2025-02-01", "", 0), 1)
	assert.Empty(t, OverlappingAssignments(db, 5, "2025-04-01", "", 0))

	// The assignment being edited is excluded from its own overlap check.
	assert.Empty(t, OverlappingAssignments(db, 5, "2025-03-01", "2025-04-30", existing.ID))

	// Other vehicles never conflict.
	assert.Empty(t, OverlappingAssignments(db, 6, "2025-01-01", "", 0))
}
