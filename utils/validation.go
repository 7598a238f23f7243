// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var (
	phoneRegex = regexp.MustCompile(`^\d{10}$`)
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// CleanPhone strips spaces, dashes and brackets from a phone number.
func CleanPhone(phone string) string {
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")
	return cleaned
}

// ValidatePhone checks for a 10 digit local number once separators are removed.
func ValidatePhone(phone string) bool {
	return phoneRegex.MatchString(CleanPhone(phone))
}

func ValidateEmail(email string) bool {
	return emailRegex.MatchString(strings.TrimSpace(email))
}

// SplitName splits a full name at the first space into first and last name.
func SplitName(full string) (string, string) {
	full = strings.Join(strings.Fields(full), " ")
	first, last, _ := strings.Cut(full, " ")
	return first, last
}
