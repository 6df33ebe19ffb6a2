package Controllers

import (
	"testing"

	"FleetOffice/Models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReconciliationVariance(t *testing.T) {
	db := testDB(t)

	original := Models.PayOnBehalf{ContainerNo: "CONT1", CustomerReconciliation: "ĐC-2025-01"}
	require.NoError(t, db.Create(&original).Error)

	require.NoError(t, db.Create(&Models.PayOnBehalfSlip{
		RefID: original.ID, Date: "2025-01-10", Amount: 150, ContainerNo: "CONT1",
	}).Error)
	require.NoError(t, db.Create(&Models.PayOnBehalfSlip{
		RefID: original.ID, Date: "2025-01-12", Amount: 50, ContainerNo: "CONT1",
	}).Error)
	require.NoError(t, Models.SaveRefundEntry(db, Models.RefundEntry{
		ContainerNo: "CONT1", RefundDate: "2025-01-20", RefundAmount: 150,
	}))

	buckets := buildReconciliation(db, ReconFilter{})
	require.Len(t, buckets, 1)
	assert.Equal(t, "ĐC-2025-01", buckets[0].Key)

	require.Len(t, buckets[0].Items, 1)
	group := buckets[0].Items[0]
	assert.Equal(t, 200.0, group.TotalPobAmount)
	assert.Equal(t, 2, group.SlipCount)
	assert.Equal(t, "2025-01-12", group.LastSlipDate)
	assert.Equal(t, 150.0, group.RefundAmount)
	// Refund minus disbursed: 50 under-refunded.
	assert.Equal(t, -50.0, group.DiffAmount)

	// Slips within a group come back oldest first.
	assert.Equal(t, "2025-01-10", group.Slips[0].Date)

	assert.Equal(t, 200.0, buckets[0].TotalPob)
	assert.Equal(t, -50.0, buckets[0].TotalDiff)
}

func TestBuildReconciliationUnreconciledLast(t *testing.T) {
	db := testDB(t)

	reconciled := Models.PayOnBehalf{ContainerNo: "CONT1", CustomerReconciliation: "ĐC-01"}
	bare := Models.PayOnBehalf{ContainerNo: "CONT2"}
	require.NoError(t, db.Create(&reconciled).Error)
	require.NoError(t, db.Create(&bare).Error)

	require.NoError(t, db.Create(&Models.PayOnBehalfSlip{
		RefID: reconciled.ID, Date: "2025-01-05", Amount: 100, ContainerNo: "CONT1",
	}).Error)
	require.NoError(t, db.Create(&Models.PayOnBehalfSlip{
		RefID: bare.ID, Date: "2025-01-06", Amount: 100, ContainerNo: "CONT2",
	}).Error)

	buckets := buildReconciliation(db, ReconFilter{})
	require.Len(t, buckets, 2)
	assert.Equal(t, "ĐC-01", buckets[0].Key)
	assert.Equal(t, "Chưa đối chiếu", buckets[1].Key)
	assert.Equal(t, "Chưa đối chiếu", buckets[1].Items[0].CustomerReconciliation)
}

func TestBuildReconciliationOrphanSlips(t *testing.T) {
	db := testDB(t)

	// Slip whose original was deleted still groups by its own container.
	require.NoError(t, db.Create(&Models.PayOnBehalfSlip{
		RefID: 999, Date: "2025-01-05", Amount: 75, ContainerNo: "CONT9",
	}).Error)
	// Slips without a container number are dropped from the view.
	require.NoError(t, db.Create(&Models.PayOnBehalfSlip{
		RefID: 999, Date: "2025-01-06", Amount: 10,
	}).Error)

	buckets := buildReconciliation(db, ReconFilter{})
	require.Len(t, buckets, 1)
	assert.Equal(t, "Chưa đối chiếu", buckets[0].Key)
	require.Len(t, buckets[0].Items, 1)
	assert.Equal(t, "CONT9", buckets[0].Items[0].ContainerNo)
	assert.Equal(t, 75.0, buckets[0].Items[0].TotalPobAmount)
}

func TestBuildReconciliationFilters(t *testing.T) {
	db := testDB(t)

	a := Models.PayOnBehalf{ContainerNo: "AAAU1111111", Warehouse: "Kho Bình Dương", CustomerReconciliation: "ĐC-01"}
	b := Models.PayOnBehalf{ContainerNo: "BBBU2222222", Warehouse: "Kho Long An", CustomerReconciliation: "ĐC-02"}
	require.NoError(t, db.Create(&a).Error)
	require.NoError(t, db.Create(&b).Error)
	require.NoError(t, db.Create(&Models.PayOnBehalfSlip{RefID: a.ID, Date: "2025-01-05", Amount: 1, ContainerNo: a.ContainerNo}).Error)
	require.NoError(t, db.Create(&Models.PayOnBehalfSlip{RefID: b.ID, Date: "2025-02-05", Amount: 1, ContainerNo: b.ContainerNo}).Error)

	// Date range
	buckets := buildReconciliation(db, ReconFilter{From: "2025-02-01"})
	require.Len(t, buckets, 1)
	assert.Equal(t, "ĐC-02", buckets[0].Key)

	// Case-insensitive container substring
	buckets = buildReconciliation(db, ReconFilter{Container: "aaau"})
	require.Len(t, buckets, 1)
	assert.Equal(t, "ĐC-01", buckets[0].Key)

	// Warehouse substring, matched on the original
	buckets = buildReconciliation(db, ReconFilter{Warehouse: "long an"})
	require.Len(t, buckets, 1)
	assert.Equal(t, "ĐC-02", buckets[0].Key)

	// Filters AND together
	buckets = buildReconciliation(db, ReconFilter{Warehouse: "long an", Container: "AAAU"})
	assert.Empty(t, buckets)
}

func TestBuildReconciliationContainerOrderWithinBucket(t *testing.T) {
	db := testDB(t)

	for _, fixture := range []struct {
		container string
		date      string
	}{
		{"CONT1", "2025-01-01"},
		{"CONT2", "2025-01-15"},
	} {
		original := Models.PayOnBehalf{ContainerNo: fixture.container, CustomerReconciliation: "ĐC-01"}
		require.NoError(t, db.Create(&original).Error)
		require.NoError(t, db.Create(&Models.PayOnBehalfSlip{
			RefID: original.ID, Date: fixture.date, Amount: 1, ContainerNo: fixture.container,
		}).Error)
	}

	buckets := buildReconciliation(db, ReconFilter{})
	require.Len(t, buckets, 1)
	require.Len(t, buckets[0].Items, 2)
	// Most recent activity first.
	assert.Equal(t, "CONT2", buckets[0].Items[0].ContainerNo)
	assert.Equal(t, "CONT1", buckets[0].Items[1].ContainerNo)
}
