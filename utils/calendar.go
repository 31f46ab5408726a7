package utils

import (
	"fmt"
	"strings"
	"time"
)

// MonthCalendar renders the month containing t as a plain-text calendar,
// Monday-first, in the classic fixed-width layout:
//
//	   February 2021
//	Mo Tu We Th Fr Sa Su
//	 1  2  3  4  5  6  7
//	 ...
//
// Every line is right-trimmed and newline-terminated.
func MonthCalendar(t time.Time) string {
	year, month, _ := t.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
	daysInMonth := first.AddDate(0, 1, -1).Day()

	var b strings.Builder

	title := fmt.Sprintf("%s %d", month.String(), year)
	pad := (20 - len(title)) / 2
	if pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString("Mo Tu We Th Fr Sa Su\n")

	// Monday-first column of the 1st of the month.
	col := (int(first.Weekday()) + 6) % 7

	cells := make([]string, 0, 7)
	for i := 0; i < col; i++ {
		cells = append(cells, "  ")
	}
	for day := 1; day <= daysInMonth; day++ {
		cells = append(cells, fmt.Sprintf("%2d", day))
		if len(cells) == 7 {
			b.WriteString(strings.TrimRight(strings.Join(cells, " "), " "))
			b.WriteString("\n")
			cells = cells[:0]
		}
	}
	if len(cells) > 0 {
		b.WriteString(strings.TrimRight(strings.Join(cells, " "), " "))
		b.WriteString("\n")
	}

	return b.String()
}

// LoadLocationOrDefault resolves an IANA zone name, falling back to the
// DEFAULT_TIME_ZONE env zone and finally to Europe/Minsk.
func LoadLocationOrDefault(name, fallback string) *time.Location {
	if name != "" {
		if loc, err := time.LoadLocation(name); err == nil {
			return loc
		}
	}
	if fallback != "" {
		if loc, err := time.LoadLocation(fallback); err == nil {
			return loc
		}
	}
	if loc, err := time.LoadLocation("Europe/Minsk"); err == nil {
		return loc
	}
	return time.UTC
}
