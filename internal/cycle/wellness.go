package cycle

import "github.com/terraincognita07/cyra/internal/models"

type WellnessLevel string

const (
	LevelExcellent      WellnessLevel = "Excellent"
	LevelGood           WellnessLevel = "Good"
	LevelFair           WellnessLevel = "Fair"
	LevelNeedsAttention WellnessLevel = "Needs Attention"
	LevelConcerning     WellnessLevel = "Concerning"
)

// InsufficientDataScore is the fixed score returned when the reporting
// window holds fewer than two period logs. It signals "not enough data", not
// a health judgment.
const InsufficientDataScore = 50

// SymptomSummary aggregates the symptom logs of the reporting window.
type SymptomSummary struct {
	LogCount         int `json:"log_count"`
	TotalOccurrences int `json:"total_occurrences"`
	DistinctTypes    int `json:"distinct_types"`
}

// MoodSummary aggregates the mood logs of the reporting window.
type MoodSummary struct {
	LogCount int                 `json:"log_count"`
	Counts   map[models.Mood]int `json:"counts"`
}

type WellnessDeductions struct {
	Regularity   int `json:"regularity"`
	CycleLength  int `json:"cycle_length"`
	PeriodLength int `json:"period_length"`
	Symptoms     int `json:"symptoms"`
	Mood         int `json:"mood"`
}

type WellnessScore struct {
	Score            int                `json:"score"`
	Level            WellnessLevel      `json:"level"`
	Color            string             `json:"color"`
	Description      string             `json:"description"`
	InsufficientData bool               `json:"insufficient_data"`
	Deductions       WellnessDeductions `json:"deductions"`
}

// ScoreWellness computes the composite 0-100 score by additive deductions
// from 100. Symptom and mood deductions are skipped entirely when the window
// holds no logs of that kind.
func ScoreWellness(statistics Statistics, symptoms SymptomSummary, moods MoodSummary, periodLogCount int) WellnessScore {
	if periodLogCount < 2 {
		score := WellnessScore{Score: InsufficientDataScore, InsufficientData: true}
		score.Level, score.Color, score.Description = levelFor(score.Score)
		return score
	}

	deductions := WellnessDeductions{
		Regularity:   regularityDeduction(statistics.Regularity),
		CycleLength:  cycleLengthDeduction(statistics.AvgCycleLength),
		PeriodLength: periodLengthDeduction(statistics.AvgPeriodLength),
	}
	if symptoms.LogCount > 0 {
		deductions.Symptoms = symptomBurdenDeduction(symptoms)
	}
	if moods.LogCount > 0 {
		deductions.Mood = moodDeduction(moods)
	}

	total := 100 + deductions.Regularity + deductions.CycleLength +
		deductions.PeriodLength + deductions.Symptoms + deductions.Mood
	if total < 0 {
		total = 0
	}
	if total > 100 {
		total = 100
	}

	score := WellnessScore{Score: total, Deductions: deductions}
	score.Level, score.Color, score.Description = levelFor(total)
	return score
}

func regularityDeduction(regularity Regularity) int {
	switch regularity {
	case RegularityRegular:
		return 0
	case RegularitySlightlyIrregular:
		return -8
	case RegularitySomewhatIrregular:
		return -18
	case RegularityHighlyIrregular:
		return -30
	case RegularityUnknown:
		return 0
	}
	return 0
}

func cycleLengthDeduction(avgCycleLength int) int {
	switch {
	case avgCycleLength >= 26 && avgCycleLength <= 32:
		return 0
	case avgCycleLength >= 21 && avgCycleLength <= 35:
		return -5
	case avgCycleLength < 21:
		return -15
	default:
		return -12
	}
}

func periodLengthDeduction(avgPeriodLength int) int {
	switch {
	case avgPeriodLength >= 4 && avgPeriodLength <= 5:
		return 0
	case avgPeriodLength >= 3 && avgPeriodLength <= 7:
		return -3
	case avgPeriodLength < 3:
		return -8
	default:
		return -10
	}
}

func symptomBurdenDeduction(symptoms SymptomSummary) int {
	perLog := float64(symptoms.TotalOccurrences) / float64(symptoms.LogCount)
	types := symptoms.DistinctTypes
	switch {
	case perLog >= 6 || types >= 8:
		return -25
	case perLog >= 4 || types >= 6:
		return -18
	case perLog >= 2 || types >= 4:
		return -10
	case perLog >= 1 || types >= 2:
		return -5
	default:
		return 0
	}
}

func moodDeduction(moods MoodSummary) int {
	totalWeight := 0
	totalCount := 0
	for mood, count := range moods.Counts {
		if count <= 0 {
			continue
		}
		totalWeight += moodWeight(mood) * count
		totalCount += count
	}
	if totalCount == 0 {
		return 0
	}

	averageImpact := float64(totalWeight) / float64(totalCount)
	switch {
	case averageImpact < -10:
		return -20
	case averageImpact < -7:
		return -15
	case averageImpact < -4:
		return -10
	case averageImpact < -2:
		return -5
	default:
		return 0
	}
}

// moodWeight is exhaustive over the closed mood set; adding a constant in
// models without a case here scores it like an unrecognized legacy value.
func moodWeight(mood models.Mood) int {
	switch mood {
	case models.MoodHappy, models.MoodCalm, models.MoodEnergetic,
		models.MoodContent, models.MoodMotivated:
		return 0
	case models.MoodTired, models.MoodFoggy:
		return -5
	case models.MoodEmotional, models.MoodSensitive:
		return -8
	case models.MoodStressed:
		return -8
	case models.MoodSad:
		return -12
	case models.MoodAngry, models.MoodAnxious:
		return -10
	case models.MoodIrritable:
		return -12
	case models.MoodDepressed:
		return -15
	}
	return -5
}

func levelFor(score int) (WellnessLevel, string, string) {
	switch {
	case score >= 85:
		return LevelExcellent, "#4CAF50", "Your cycle and wellbeing look great."
	case score >= 70:
		return LevelGood, "#8BC34A", "Mostly steady, with a few things worth watching."
	case score >= 55:
		return LevelFair, "#FFC107", "Some patterns here deserve attention."
	case score >= 40:
		return LevelNeedsAttention, "#FF9800", "Several signals suggest your cycle needs care."
	default:
		return LevelConcerning, "#F44336", "Consider discussing these patterns with a clinician."
	}
}
