// Package view derives presentation values from raw domain data: grade
// and cost formatting, location simplification, long-form dates, image
// sizing, and map regions. Everything here is pure; screens call these
// instead of formatting inline.
package view

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatGrade renders a rating with exactly one decimal place. Zero and
// unset grades both render as "0.0".
func FormatGrade(grade float64) string {
	if grade <= 0 {
		return "0.0"
	}
	return fmt.Sprintf("%.1f", grade)
}

// SimplifyLocation shortens a full geocoder address to its two leading
// components. " - " separators are normalized to commas first, so
// "Praia do Rosa - Imbituba, SC, Brasil" becomes "Praia do Rosa, Imbituba".
// Strings with fewer than two components pass through unchanged.
func SimplifyLocation(full string) string {
	if full == "" {
		return ""
	}

	normalized := strings.ReplaceAll(full, " - ", ", ")
	parts := strings.Split(normalized, ",")
	if len(parts) < 2 {
		return full
	}
	return strings.TrimSpace(parts[0]) + ", " + strings.TrimSpace(parts[1])
}

// Brazilian Portuguese month names, indexed by time.Month.
var monthsPTBR = [...]string{
	time.January:   "janeiro",
	time.February:  "fevereiro",
	time.March:     "março",
	time.April:     "abril",
	time.May:       "maio",
	time.June:      "junho",
	time.July:      "julho",
	time.August:    "agosto",
	time.September: "setembro",
	time.October:   "outubro",
	time.November:  "novembro",
	time.December:  "dezembro",
}

// FormatDate renders a timestamp in the long Brazilian form,
// e.g. "05 de março de 2024". The zero time renders as "".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return fmt.Sprintf("%02d de %s de %d", t.Day(), monthsPTBR[t.Month()], t.Year())
}

var costPrinter = message.NewPrinter(language.BrazilianPortuguese)

// FormatCost renders a trip cost for display. Numeric values get reais
// formatting with locale grouping ("1250.5" -> "R$ 1.250,50"); free-text
// costs pass through; empty renders as "N/A".
func FormatCost(cost string) string {
	cost = strings.TrimSpace(cost)
	if cost == "" {
		return "N/A"
	}
	if v, err := strconv.ParseFloat(cost, 64); err == nil {
		return costPrinter.Sprintf("R$ %.2f", v)
	}
	return cost
}
