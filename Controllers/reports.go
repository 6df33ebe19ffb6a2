package Controllers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ReportController renders reconciliation data to Excel for hand-off to
// accounting.
type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

var reconciliationHeaders = []string{
	"Đối chiếu", "Số container", "Số phiếu", "Ngày chi cuối",
	"Tổng chi hộ", "Ngày hoàn", "Tiền hoàn", "Chênh lệch",
}

// ExportReconciliation streams the bucketed reconciliation view as an
// xlsx download, honoring the same query filters as GetReconciliation.
func (ctl *ReportController) ExportReconciliation(c *fiber.Ctx) error {
	buckets := buildReconciliation(ctl.DB, reconFilterFromQuery(c))

	file := excelize.NewFile()
	defer file.Close()
	sheet := "Reconciliation"
	file.SetSheetName("Sheet1", sheet)

	for col, header := range reconciliationHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		file.SetCellValue(sheet, cell, header)
	}

	row := 2
	for _, bucket := range buckets {
		for _, group := range bucket.Items {
			values := []interface{}{
				bucket.Key, group.ContainerNo, group.SlipCount, group.LastSlipDate,
				group.TotalPobAmount, group.RefundDate, group.RefundAmount, group.DiffAmount,
			}
			for col, value := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row)
				file.SetCellValue(sheet, cell, value)
			}
			row++
		}
		totalCell, _ := excelize.CoordinatesToCellName(1, row)
		file.SetCellValue(sheet, totalCell, fmt.Sprintf("Tổng %s", bucket.Key))
		for col, value := range map[int]float64{5: bucket.TotalPob, 7: bucket.TotalRefund, 8: bucket.TotalDiff} {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			file.SetCellValue(sheet, cell, value)
		}
		row++
	}

	buffer, err := file.WriteToBuffer()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	filename := fmt.Sprintf("doi-chieu-chi-ho-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Set("Content-Length", fmt.Sprintf("%d", buffer.Len()))
	return c.Send(buffer.Bytes())
}
