package Importer

import (
	"fmt"
	"strings"

	"FleetOffice/Models"
)

const salaryColumns = 13

type SalaryRow struct {
	Record   Models.DriverSalary `json:"record"`
	Line     int                 `json:"line"`
	Warnings []string            `json:"warnings,omitempty"`
}

type SalaryResult struct {
	Rows   []SalaryRow `json:"rows"`
	Errors []string    `json:"errors"`
}

// ParseDriverSalaries parses pasted tab-separated text in the 13-column
// trip-salary layout.
func ParseDriverSalaries(text string) SalaryResult {
	var result SalaryResult
	for i, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lineNo := i + 1
		cols := splitColumns(line)
		if len(cols) < salaryColumns {
			result.Errors = append(result.Errors, missingColumnsError(lineNo, len(cols), salaryColumns))
			continue
		}

		row := SalaryRow{Line: lineNo}
		warn := func(field, raw string) {
			row.Warnings = append(row.Warnings, fmt.Sprintf("Dòng %d: %s không đọc được (%q)", lineNo, field, raw))
		}

		date, ok := parseDate(cols[0])
		if !ok {
			warn("ngày", cols[0])
		}
		count20, ok := parseNumber(cols[9])
		if !ok {
			warn("số cont 20'", cols[9])
		}
		count40, ok := parseNumber(cols[10])
		if !ok {
			warn("số cont 40'", cols[10])
		}
		tripSalary, ok := parseNumber(cols[11])
		if !ok {
			warn("lương chuyến", cols[11])
		}
		handlingFee, ok := parseNumber(cols[12])
		if !ok {
			warn("phí bốc xếp", cols[12])
		}

		row.Record = Models.DriverSalary{
			Date:              date,
			DriverName:        cols[1],
			CargoType:         cols[2],
			Warehouse:         cols[3],
			WarehouseLocation: cols[4],
			Depot:             cols[5],
			DropReturn:        cols[6],
			ContainerNo:       cols[7],
			Quantity:          cols[8],
			Count20:           int(count20),
			Count40:           int(count40),
			TripSalary:        tripSalary,
			HandlingFee:       handlingFee,
		}
		result.Rows = append(result.Rows, row)
	}
	return result
}
