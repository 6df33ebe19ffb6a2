package Importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pobLine(cols ...string) string {
	return strings.Join(cols, "\t")
}

func TestParsePayOnBehalf(t *testing.T) {
	text := pobLine(
		"51C-123.45", "15/03/2025", "Nhập hàng", "Kho A", "Depot B", "Cát Lái",
		"Hạ bãi", "1", "", "TCLU1234567", "BK-001", "1.500.000",
	)
	result := ParsePayOnBehalf(text, nil)

	require.Len(t, result.Rows, 1)
	assert.Empty(t, result.Errors)

	record := result.Rows[0].Record
	assert.Equal(t, "51C-123.45", record.VehiclePlate)
	assert.Equal(t, "2025-03-15", record.Date)
	assert.Equal(t, "Nhập hàng", record.Operation)
	assert.Equal(t, 1, record.Count20)
	assert.Equal(t, 0, record.Count40)
	assert.Equal(t, "TCLU1234567", record.ContainerNo)
	assert.Equal(t, "1.500.000", record.CustomerReconciliation)
	assert.Empty(t, result.Rows[0].Warnings)
}

func TestParsePayOnBehalfShortLine(t *testing.T) {
	result := ParsePayOnBehalf("51C-123.45\t15/03/2025\tNhập", nil)
	assert.Empty(t, result.Rows)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Dòng 1: Thiếu cột (Tìm thấy 3/12 cột)", result.Errors[0])
}

func TestParsePayOnBehalfPartialSuccess(t *testing.T) {
	good := pobLine("51C-1", "01/01/2025", "Xuất", "K", "D", "L", "H", "", "1", "CONT1", "BK", "100")
	bad := "too\tfew"
	result := ParsePayOnBehalf(good+"\n"+bad+"\n\n", nil)

	assert.Len(t, result.Rows, 1)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Dòng 2")
}

func TestParsePayOnBehalfCoercionWarnings(t *testing.T) {
	line := pobLine("51C-1", "sometime", "Xuất", "K", "D", "L", "H", "x", "1", "CONT1", "BK", "100")
	result := ParsePayOnBehalf(line, nil)

	// Unparseable fields keep the row but tag it.
	require.Len(t, result.Rows, 1)
	row := result.Rows[0]
	assert.Equal(t, 0, row.Record.Count20)
	assert.Len(t, row.Warnings, 1)
	assert.Contains(t, row.Warnings[0], "số cont 20'")
}

func TestParsePayOnBehalfDuplicates(t *testing.T) {
	existing := map[string]bool{"CONT1": true}
	line := pobLine("51C-1", "01/01/2025", "Xuất", "K", "D", "L", "H", "", "1", "CONT1", "BK", "100")
	result := ParsePayOnBehalf(line, existing)

	require.Len(t, result.Rows, 1)
	assert.True(t, result.Rows[0].IsDuplicate)
	assert.Equal(t, []string{"CONT1"}, result.Duplicates)
}

func TestParseRecipientLines(t *testing.T) {
	recipients := ParseRecipientLines("Depot Tân Cảng\n\n  Kho Sóng Thần  \n")
	require.Len(t, recipients, 2)
	assert.Equal(t, "Depot Tân Cảng", recipients[0].Name)
	assert.Equal(t, "Kho Sóng Thần", recipients[1].Name)
	assert.Equal(t, "DEPOT", recipients[0].Type)
}
