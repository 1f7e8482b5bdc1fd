// Package dateutils provides date parsing and the Spanish-locale calendar
// helpers used by the KPI breakdowns.
package dateutils

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Date layout constants for the formats the sources emit.
const (
	LayoutSlashDayFirst  = "02/01/2006"
	LayoutISO            = "2006-01-02"
	LayoutDashDayFirst   = "02-01-2006"
	LayoutSlashYearFirst = "2006/01/02"
)

// SourceFormats is the ordered list of formats to try when parsing source
// dates. The first successful parse wins, so the order is part of the
// contract: day-first slash format is checked before the ISO form.
var SourceFormats = []string{
	LayoutSlashDayFirst,
	LayoutISO,
	LayoutDashDayFirst,
	LayoutSlashYearFirst,
}

// spanishMonths maps time.Month to lowercase Spanish month names.
var spanishMonths = [...]string{
	time.January:   "enero",
	time.February:  "febrero",
	time.March:     "marzo",
	time.April:     "abril",
	time.May:       "mayo",
	time.June:      "junio",
	time.July:      "julio",
	time.August:    "agosto",
	time.September: "septiembre",
	time.October:   "octubre",
	time.November:  "noviembre",
	time.December:  "diciembre",
}

var spanishTitle = cases.Title(language.Spanish)

// ParseDate parses a source date string trying each format in SourceFormats.
// The result is a timezone-naive date (UTC midnight) so values survive the
// spreadsheet export path. Some sources append a time component, which is
// cut before parsing.
func ParseDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if i := strings.IndexAny(dateStr, " T"); i > 0 {
		dateStr = dateStr[:i]
	}

	for _, format := range SourceFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// ToISODate formats a time as YYYY-MM-DD.
func ToISODate(date time.Time) string {
	return date.Format(LayoutISO)
}

// mondayWeekday returns the weekday with Monday as 0 and Sunday as 6,
// matching the legacy BI model's week arithmetic.
func mondayWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// WeekOfMonth returns the week number of t within its month:
// ceil((day + weekday_of_first_day)/7). Zero dates return 1, never an error.
func WeekOfMonth(t time.Time) int {
	if t.IsZero() {
		return 1
	}
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return (t.Day() + mondayWeekday(first) + 6) / 7
}

// SpanishMonth returns the lowercase Spanish name of t's month.
func SpanishMonth(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return spanishMonths[t.Month()]
}

// MesSemana builds the "Mes - Semana N" label used by the KPI reports,
// e.g. "Enero - Semana 3".
func MesSemana(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s - Semana %d", spanishTitle.String(SpanishMonth(t)), WeekOfMonth(t))
}

// MonthKey returns the sortable month bucket for t, e.g. "2024-05".
func MonthKey(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01")
}

// TitleCaseSpanish title-cases a name using Spanish casing rules.
func TitleCaseSpanish(s string) string {
	return spanishTitle.String(strings.ToLower(strings.TrimSpace(s)))
}

// StartOfMonth returns the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the whole-day difference b - a.
func DaysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
