// Package util holds small helpers shared across layers.
package util

import (
	"strings"
	"time"
)

// NormalizeEmail lowercases and trims an email address so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CalculateAge returns the number of full years between birth and now.
// A birthday later in the year than now has not been reached yet.
func CalculateAge(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}

	return max(age, 0)
}
