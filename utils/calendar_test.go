package utils

import (
	"strings"
	"testing"
	"time"
)

func TestMonthCalendarFebruary2021(t *testing.T) {
	// February 2021 starts on a Monday and has exactly four full weeks.
	got := MonthCalendar(time.Date(2021, time.February, 15, 12, 0, 0, 0, time.UTC))
	want := "   February 2021\n" +
		"Mo Tu We Th Fr Sa Su\n" +
		" 1  2  3  4  5  6  7\n" +
		" 8  9 10 11 12 13 14\n" +
		"15 16 17 18 19 20 21\n" +
		"22 23 24 25 26 27 28\n"
	if got != want {
		t.Fatalf("calendar mismatch:\ngot:\n%q\nwant:\n%q", got, want)
	}
}

func TestMonthCalendarMay2025(t *testing.T) {
	// May 1st 2025 is a Thursday, so the first week is indented.
	got := MonthCalendar(time.Date(2025, time.May, 3, 0, 0, 0, 0, time.UTC))
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")

	if lines[0] != "      May 2025" {
		t.Errorf("title = %q", lines[0])
	}
	if lines[1] != "Mo Tu We Th Fr Sa Su" {
		t.Errorf("header = %q", lines[1])
	}
	if lines[2] != "          1  2  3  4" {
		t.Errorf("first week = %q", lines[2])
	}
	if last := lines[len(lines)-1]; last != "26 27 28 29 30 31" {
		t.Errorf("last week = %q", last)
	}
}

func TestMonthCalendarTrailingWhitespace(t *testing.T) {
	got := MonthCalendar(time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC))
	for _, line := range strings.Split(got, "\n") {
		if line != strings.TrimRight(line, " ") {
			t.Errorf("line has trailing spaces: %q", line)
		}
	}
	if !strings.HasSuffix(got, "\n") {
		t.Error("calendar must end with a newline")
	}
}

func TestLoadLocationOrDefault(t *testing.T) {
	if loc := LoadLocationOrDefault("Europe/Berlin", ""); loc.String() != "Europe/Berlin" {
		t.Errorf("valid name ignored, got %s", loc)
	}
	if loc := LoadLocationOrDefault("Not/AZone", "Europe/Warsaw"); loc.String() != "Europe/Warsaw" {
		t.Errorf("fallback not used, got %s", loc)
	}
	if loc := LoadLocationOrDefault("", ""); loc.String() != "Europe/Minsk" {
		t.Errorf("default zone expected, got %s", loc)
	}
}
