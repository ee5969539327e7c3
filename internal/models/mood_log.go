package models

import "time"

// Mood is a closed set. The wellness scorer switches exhaustively over these
// constants, so adding a mood here forces a weighting decision there.
type Mood string

const (
	MoodHappy     Mood = "happy"
	MoodCalm      Mood = "calm"
	MoodEnergetic Mood = "energetic"
	MoodContent   Mood = "content"
	MoodMotivated Mood = "motivated"
	MoodTired     Mood = "tired"
	MoodFoggy     Mood = "foggy"
	MoodEmotional Mood = "emotional"
	MoodSensitive Mood = "sensitive"
	MoodStressed  Mood = "stressed"
	MoodSad       Mood = "sad"
	MoodAngry     Mood = "angry"
	MoodAnxious   Mood = "anxious"
	MoodIrritable Mood = "irritable"
	MoodDepressed Mood = "depressed"
)

func KnownMoods() []Mood {
	return []Mood{
		MoodHappy, MoodCalm, MoodEnergetic, MoodContent, MoodMotivated,
		MoodTired, MoodFoggy, MoodEmotional, MoodSensitive, MoodStressed,
		MoodSad, MoodAngry, MoodAnxious, MoodIrritable, MoodDepressed,
	}
}

func IsKnownMood(mood Mood) bool {
	for _, known := range KnownMoods() {
		if mood == known {
			return true
		}
	}
	return false
}

// MoodLog records mood and wellbeing levels for one calendar day. Same
// one-row-per-user-per-day upsert semantics as SymptomLog.
type MoodLog struct {
	ID           uint      `gorm:"primaryKey"`
	UserID       uint      `gorm:"not null;uniqueIndex:uidx_user_mood_date"`
	Date         time.Time `gorm:"type:date;not null;uniqueIndex:uidx_user_mood_date"`
	Mood         Mood      `gorm:"not null"`
	Intensity    int       `gorm:"not null;default:3"`
	EnergyLevel  int       `gorm:"not null;default:3"`
	SleepQuality *int
	SleepHours   float64
	StressLevel  *int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
