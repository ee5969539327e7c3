package models

import "time"

const (
	DefaultCycleLength  = 28
	DefaultPeriodLength = 5

	MinCycleLength  = 20
	MaxCycleLength  = 45
	MinPeriodLength = 1
	MaxPeriodLength = 10
)

// User carries the account credentials together with the cycle profile.
// LastPeriodStart is advanced implicitly whenever a newer period is logged.
type User struct {
	ID              uint       `gorm:"primaryKey"`
	Email           string     `gorm:"uniqueIndex;not null"`
	PasswordHash    string     `gorm:"not null"`
	CycleLength     int        `gorm:"not null;default:28"`
	PeriodLength    int        `gorm:"not null;default:5"`
	LastPeriodStart *time.Time `gorm:"type:date"`
	CreatedAt       time.Time  `gorm:"not null"`
}

func IsValidCycleLength(value int) bool {
	return value >= MinCycleLength && value <= MaxCycleLength
}

func IsValidPeriodLength(value int) bool {
	return value >= MinPeriodLength && value <= MaxPeriodLength
}
