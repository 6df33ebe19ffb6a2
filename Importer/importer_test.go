package Importer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	assert.Equal(t, 1500000.0, ParseAmount("1.500.000"))
	assert.Equal(t, 1500000.0, ParseAmount("1,500,000 đ"))
	assert.Equal(t, 250000.0, ParseAmount("CK 250.000"))
	assert.Equal(t, 0.0, ParseAmount(""))
	assert.Equal(t, 0.0, ParseAmount("chưa thu"))
}

func TestParseNumber(t *testing.T) {
	n, ok := parseNumber("1.234")
	assert.True(t, ok)
	assert.Equal(t, 1234.0, n)

	// Empty is a legitimate zero.
	n, ok = parseNumber("")
	assert.True(t, ok)
	assert.Equal(t, 0.0, n)

	// Non-empty with no digits is flagged as unparseable.
	n, ok = parseNumber("abc")
	assert.False(t, ok)
	assert.Equal(t, 0.0, n)
}

func TestParseDate(t *testing.T) {
	date, ok := parseDate("15/03/2025")
	assert.True(t, ok)
	assert.Equal(t, "2025-03-15", date)

	// ISO dates pass through.
	date, ok = parseDate("2025-03-15")
	assert.True(t, ok)
	assert.Equal(t, "2025-03-15", date)

	// Empty defaults to today but is flagged.
	date, ok = parseDate("")
	assert.False(t, ok)
	assert.Equal(t, time.Now().Format("2006-01-02"), date)

	// Malformed slash dates pass through flagged.
	date, ok = parseDate("15/03")
	assert.False(t, ok)
	assert.Equal(t, "15/03", date)
}
