package models

import (
	"testing"
	"time"
)

func TestValidPhoneNumber(t *testing.T) {
	valid := []string{
		"+375 (29) 123-45-67",
		"+375 (33) 000-00-00",
	}
	for _, p := range valid {
		if !ValidPhoneNumber(p) {
			t.Errorf("ValidPhoneNumber(%q) = false, want true", p)
		}
	}

	invalid := []string{
		"",
		"+375 29 123-45-67",     // missing parentheses
		"+375 (29) 1234567",     // missing dashes
		"375 (29) 123-45-67",    // missing plus
		"+375 (299) 123-45-67",  // operator code too long
		"+7 (29) 123-45-67",     // wrong country code
		" +375 (29) 123-45-67",  // leading space
		"+375 (29) 123-45-67 x", // trailing garbage
	}
	for _, p := range invalid {
		if ValidPhoneNumber(p) {
			t.Errorf("ValidPhoneNumber(%q) = true, want false", p)
		}
	}
}

func TestIsAdult(t *testing.T) {
	today := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		birth time.Time
		want  bool
	}{
		{"turned 18 today", time.Date(2007, time.June, 15, 0, 0, 0, 0, time.UTC), true},
		{"18 tomorrow", time.Date(2007, time.June, 16, 0, 0, 0, 0, time.UTC), false},
		{"clearly adult", time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC), true},
		{"clearly underage", time.Date(2015, time.March, 1, 0, 0, 0, 0, time.UTC), false},
		{"birthday later this year", time.Date(2007, time.December, 1, 0, 0, 0, 0, time.UTC), false},
		{"birthday earlier this year", time.Date(2007, time.February, 1, 0, 0, 0, 0, time.UTC), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsAdult(tc.birth, today); got != tc.want {
				t.Errorf("IsAdult(%s) = %v, want %v", tc.birth.Format("2006-01-02"), got, tc.want)
			}
		})
	}
}

func TestTourPackageEndDateDerivation(t *testing.T) {
	start := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)

	tp := TourPackage{DurationWeeks: 2, StartDate: &start}
	if err := tp.BeforeSave(nil); err != nil {
		t.Fatalf("BeforeSave: %v", err)
	}
	if tp.EndDate == nil {
		t.Fatal("end date not derived")
	}
	if want := start.AddDate(0, 0, 14); !tp.EndDate.Equal(want) {
		t.Errorf("end date = %s, want %s", tp.EndDate, want)
	}

	// An explicit end date is left alone.
	explicit := time.Date(2025, time.July, 5, 0, 0, 0, 0, time.UTC)
	tp2 := TourPackage{DurationWeeks: 2, StartDate: &start, EndDate: &explicit}
	if err := tp2.BeforeSave(nil); err != nil {
		t.Fatalf("BeforeSave: %v", err)
	}
	if !tp2.EndDate.Equal(explicit) {
		t.Errorf("explicit end date was overwritten: %s", tp2.EndDate)
	}

	// No start date: nothing to derive.
	tp3 := TourPackage{DurationWeeks: 1}
	if err := tp3.BeforeSave(nil); err != nil {
		t.Fatalf("BeforeSave: %v", err)
	}
	if tp3.EndDate != nil {
		t.Error("end date derived without a start date")
	}
}
