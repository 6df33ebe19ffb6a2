package Models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveRefundEntryUpserts(t *testing.T) {
	db := testDB(t)

	require.NoError(t, SaveRefundEntry(db, RefundEntry{
		ContainerNo: "TCLU1234567", RefundDate: "2025-01-10", RefundAmount: 150000,
	}))
	require.NoError(t, SaveRefundEntry(db, RefundEntry{
		ContainerNo: "TCLU1234567", RefundDate: "2025-01-20", RefundAmount: 200000,
	}))

	var entries []RefundEntry
	require.NoError(t, db.Find(&entries).Error)
	require.Len(t, entries, 1)
	assert.Equal(t, 200000.0, entries[0].RefundAmount)
	assert.Equal(t, "2025-01-20", entries[0].RefundDate)
}

func TestMarkAnnouncementReadIdempotent(t *testing.T) {
	db := testDB(t)

	announcement := Announcement{Title: "Thông báo"}
	require.NoError(t, db.Create(&announcement).Error)

	require.NoError(t, MarkAnnouncementRead(db, announcement.ID, 1, "2025-01-01 08:00:00"))
	require.NoError(t, MarkAnnouncementRead(db, announcement.ID, 1, "2025-01-02 09:00:00"))

	var count int64
	db.Model(&ReadReceipt{}).Count(&count)
	assert.Equal(t, int64(1), count)

	var receipt ReadReceipt
	require.NoError(t, db.First(&receipt).Error)
	assert.Equal(t, "2025-01-01 08:00:00", receipt.ReadAt)
}

func TestVehicleOdometer(t *testing.T) {
	db := testDB(t)

	vehicle := Vehicle{PlateNumber: "51C-123.45", InitialOdometer: 100000}
	require.NoError(t, db.Create(&vehicle).Error)
	require.NoError(t, db.Create(&DailyOdometer{VehicleID: vehicle.ID, Date: "2025-01-01", Distance: 250}).Error)
	require.NoError(t, db.Create(&DailyOdometer{VehicleID: vehicle.ID, Date: "2025-01-02", Distance: 180}).Error)

	assert.Equal(t, 100430.0, VehicleOdometer(db, vehicle.ID))

	// No readings yet: just the initial value.
	other := Vehicle{PlateNumber: "51C-678.90", InitialOdometer: 500}
	require.NoError(t, db.Create(&other).Error)
	assert.Equal(t, 500.0, VehicleOdometer(db, other.ID))
}
