// Package Importer turns tab-separated text pasted from external ledgers
// into typed records. Parsing is tolerant: lines with too few columns are
// reported and skipped, everything else goes through, and fields that fail
// numeric or date coercion default to zero/passthrough but are tagged on the
// row so callers can tell "zero" from "unparseable".
package Importer

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseAmount reads a loosely formatted money amount: thousands separators
// and any other non-digit characters are stripped before parsing. A string
// with no digits yields 0.
func ParseAmount(raw string) float64 {
	n, _ := parseNumber(raw)
	return n
}

// parseNumber strips thousands separators and any other non-digit characters
// before parsing. The second return is false when a non-empty field carried
// no digits at all.
func parseNumber(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, true
	}
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, false
	}
	n, err := strconv.ParseFloat(digits.String(), 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseDate accepts dd/mm/yyyy and converts to yyyy-mm-dd. Anything without
// a slash passes through unchanged; empty defaults to today.
func parseDate(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Now().Format("2006-01-02"), false
	}
	if strings.Contains(raw, "/") {
		parts := strings.Split(raw, "/")
		if len(parts) == 3 {
			return fmt.Sprintf("%s-%s-%s", parts[2], parts[1], parts[0]), true
		}
		return raw, false
	}
	return raw, true
}

func missingColumnsError(lineNo, found, want int) string {
	return fmt.Sprintf("Dòng %d: Thiếu cột (Tìm thấy %d/%d cột)", lineNo, found, want)
}

func splitColumns(line string) []string {
	cols := strings.Split(line, "\t")
	for i := range cols {
		cols[i] = strings.TrimSpace(cols[i])
	}
	return cols
}
