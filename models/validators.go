package models

import (
	"regexp"
	"time"
)

// phonePattern matches the Belarusian mask +375 (XX) XXX-XX-XX.
var phonePattern = regexp.MustCompile(`^\+375 \(\d{2}\) \d{3}-\d{2}-\d{2}$`)

func ValidPhoneNumber(phone string) bool {
	return phonePattern.MatchString(phone)
}

// IsAdult reports whether the birth date yields age >= 18 as of today,
// accounting for whether the birthday has happened this year.
func IsAdult(birthDate, today time.Time) bool {
	age := today.Year() - birthDate.Year()
	if today.Month() < birthDate.Month() ||
		(today.Month() == birthDate.Month() && today.Day() < birthDate.Day()) {
		age--
	}
	return age >= 18
}

// validateProfileFields is shared by client and employee profile hooks.
func validateProfileFields(phone string, birthDate *time.Time) error {
	if !ValidPhoneNumber(phone) {
		return ErrInvalidPhone
	}
	if birthDate != nil && !IsAdult(*birthDate, time.Now()) {
		return ErrUnderage
	}
	return nil
}
