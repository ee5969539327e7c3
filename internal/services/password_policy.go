package services

import (
	"errors"
	"regexp"
)

var passwordLengthPattern = regexp.MustCompile(`^.{8,}$`)
var passwordUpperPattern = regexp.MustCompile(`\p{Lu}`)
var passwordLowerPattern = regexp.MustCompile(`\p{Ll}`)
var passwordDigitPattern = regexp.MustCompile(`\d`)

var ErrWeakPassword = errors.New("password must be at least 8 characters with upper, lower and digit")

func ValidatePassword(password string) error {
	if !passwordLengthPattern.MatchString(password) ||
		!passwordUpperPattern.MatchString(password) ||
		!passwordLowerPattern.MatchString(password) ||
		!passwordDigitPattern.MatchString(password) {
		return ErrWeakPassword
	}
	return nil
}
