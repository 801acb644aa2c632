package utils

import "regexp"

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// IsValidEmail reports whether the given string looks like an email address
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// MinPasswordLength is the minimum accepted password length
const MinPasswordLength = 6
