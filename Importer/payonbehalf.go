package Importer

import (
	"fmt"
	"strings"

	"FleetOffice/Models"
)

const payOnBehalfColumns = 12

// PayOnBehalfRow is one successfully parsed ledger line plus any coercion
// warnings collected while parsing it.
type PayOnBehalfRow struct {
	Record      Models.PayOnBehalf `json:"record"`
	Line        int                `json:"line"`
	IsDuplicate bool               `json:"is_duplicate"`
	Warnings    []string           `json:"warnings,omitempty"`
}

// PayOnBehalfResult is the outcome of a bulk paste: valid rows ready for
// preview/save alongside per-line errors for the rest. Partial success is
// the normal case, not a failure.
type PayOnBehalfResult struct {
	Rows       []PayOnBehalfRow `json:"rows"`
	Errors     []string         `json:"errors"`
	Duplicates []string         `json:"duplicates"`
}

// ParsePayOnBehalf parses pasted tab-separated text in the 12-column
// pay-on-behalf layout. existingContainers holds container numbers already
// in the store; matching rows are flagged as duplicates but still parsed.
func ParsePayOnBehalf(text string, existingContainers map[string]bool) PayOnBehalfResult {
	var result PayOnBehalfResult
	for i, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lineNo := i + 1
		cols := splitColumns(line)
		if len(cols) < payOnBehalfColumns {
			result.Errors = append(result.Errors, missingColumnsError(lineNo, len(cols), payOnBehalfColumns))
			continue
		}

		row := PayOnBehalfRow{Line: lineNo}
		warn := func(field, raw string) {
			row.Warnings = append(row.Warnings, fmt.Sprintf("Dòng %d: %s không đọc được (%q)", lineNo, field, raw))
		}

		date, ok := parseDate(cols[1])
		if !ok {
			warn("ngày", cols[1])
		}
		count20, ok := parseNumber(cols[7])
		if !ok {
			warn("số cont 20'", cols[7])
		}
		count40, ok := parseNumber(cols[8])
		if !ok {
			warn("số cont 40'", cols[8])
		}

		containerNo := cols[9]
		if containerNo != "" && existingContainers[containerNo] {
			row.IsDuplicate = true
			result.Duplicates = append(result.Duplicates, containerNo)
		}

		row.Record = Models.PayOnBehalf{
			VehiclePlate:           cols[0],
			Date:                   date,
			Operation:              cols[2],
			Warehouse:              cols[3],
			Depot:                  cols[4],
			Location:               cols[5],
			DropReturn:             cols[6],
			Count20:                int(count20),
			Count40:                int(count40),
			ContainerNo:            containerNo,
			BookingDo:              cols[10],
			CustomerReconciliation: cols[11],
		}
		result.Rows = append(result.Rows, row)
	}
	return result
}

// ParseRecipientLines parses a line-delimited recipient list, one name per
// line, defaulting every entry to the DEPOT type.
func ParseRecipientLines(text string) []Models.PaymentRecipient {
	var recipients []Models.PaymentRecipient
	for _, line := range strings.Split(text, "\n") {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		recipients = append(recipients, Models.PaymentRecipient{
			Name: name,
			Type: Models.RecipientDepot,
		})
	}
	return recipients
}
