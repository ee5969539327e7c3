package services

import (
	"errors"

	"github.com/terraincognita07/cyra/internal/models"
)

var (
	ErrCycleLengthOutOfRange  = errors.New("cycle length must be between 20 and 45 days")
	ErrPeriodLengthOutOfRange = errors.New("period length must be between 1 and 10 days")
)

func ValidateCycleSettings(cycleLength int, periodLength int) error {
	if !models.IsValidCycleLength(cycleLength) {
		return ErrCycleLengthOutOfRange
	}
	if !models.IsValidPeriodLength(periodLength) {
		return ErrPeriodLengthOutOfRange
	}
	return nil
}
