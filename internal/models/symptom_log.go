package models

import (
	"strings"
	"time"
)

const (
	IntensityMild     = "mild"
	IntensityModerate = "moderate"
	IntensitySevere   = "severe"
)

// SymptomLog records the symptoms observed on one calendar day. At most one
// row exists per user per day; a second write merges into the existing row.
type SymptomLog struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;uniqueIndex:uidx_user_symptom_date"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uidx_user_symptom_date"`
	Symptoms  []string  `gorm:"serializer:json"`
	Intensity string    `gorm:"not null;default:mild"`
	PainLevel int       `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func IsValidIntensity(intensity string) bool {
	switch intensity {
	case IntensityMild, IntensityModerate, IntensitySevere:
		return true
	}
	return false
}

func BuiltinSymptoms() []string {
	return []string{
		"Cramps",
		"Headache",
		"Mood swings",
		"Bloating",
		"Fatigue",
		"Breast tenderness",
		"Acne",
		"Back pain",
		"Nausea",
		"Spotting",
		"Irritability",
		"Insomnia",
		"Food cravings",
		"Diarrhea",
		"Constipation",
	}
}

func IsKnownSymptom(name string) bool {
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, symptom := range BuiltinSymptoms() {
		if strings.ToLower(symptom) == needle {
			return true
		}
	}
	return false
}
