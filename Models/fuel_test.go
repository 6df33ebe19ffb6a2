package Models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceAtTime(t *testing.T) {
	db := testDB(t)

	require.NoError(t, db.Create(&FuelPrice{Price: 20000, EffectiveDate: "2025-01-01T00:00:00Z"}).Error)
	require.NoError(t, db.Create(&FuelPrice{Price: 21500, EffectiveDate: "2025-02-01T00:00:00Z"}).Error)
	require.NoError(t, db.Create(&FuelPrice{Price: 23000, EffectiveDate: "2025-03-01T00:00:00Z"}).Error)

	// Most recent entry at or before the timestamp wins.
	assert.Equal(t, 21500.0, PriceAtTime(db, "2025-02-15T12:00:00Z"))
	assert.Equal(t, 23000.0, PriceAtTime(db, "2025-03-01T00:00:00Z"))
	assert.Equal(t, 23000.0, PriceAtTime(db, "2026-01-01T00:00:00Z"))
	assert.Equal(t, 20000.0, PriceAtTime(db, "2025-01-31T23:59:59Z"))

	// Timestamp before every entry falls back to the newest price.
	assert.Equal(t, 23000.0, PriceAtTime(db, "2024-06-01T00:00:00Z"))
}

func TestPriceAtTimeEmpty(t *testing.T) {
	db := testDB(t)
	assert.Equal(t, 0.0, PriceAtTime(db, "2025-01-01T00:00:00Z"))
}
