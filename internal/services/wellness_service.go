package services

import (
	"time"

	"github.com/terraincognita07/cyra/internal/cycle"
	"github.com/terraincognita07/cyra/internal/models"
)

const DefaultReportingWindowDays = 90

var reportingWindows = []int{30, 90, 180, 365}

// NormalizeReportingWindow snaps an arbitrary request value onto the
// supported windows, defaulting to 90 days.
func NormalizeReportingWindow(days int) int {
	for _, window := range reportingWindows {
		if days == window {
			return window
		}
	}
	return DefaultReportingWindowDays
}

type WellnessPeriodReader interface {
	ListByUser(userID uint) ([]models.Period, error)
	ListByUserRange(userID uint, fromStart *time.Time, toEnd *time.Time) ([]models.Period, error)
}

type WellnessSymptomReader interface {
	ListByUserRange(userID uint, fromStart *time.Time, toEnd *time.Time) ([]models.SymptomLog, error)
}

type WellnessMoodReader interface {
	ListByUserRange(userID uint, fromStart *time.Time, toEnd *time.Time) ([]models.MoodLog, error)
}

type WellnessService struct {
	periods  WellnessPeriodReader
	symptoms WellnessSymptomReader
	moods    WellnessMoodReader
}

func NewWellnessService(periods WellnessPeriodReader, symptoms WellnessSymptomReader, moods WellnessMoodReader) *WellnessService {
	return &WellnessService{
		periods:  periods,
		symptoms: symptoms,
		moods:    moods,
	}
}

type WellnessReport struct {
	WindowDays     int                  `json:"window_days"`
	PeriodLogCount int                  `json:"period_log_count"`
	Symptoms       cycle.SymptomSummary `json:"symptoms"`
	Moods          cycle.MoodSummary    `json:"moods"`
	Statistics     cycle.Statistics     `json:"statistics"`
	Score          cycle.WellnessScore  `json:"score"`
}

// BuildReport scores the reporting window ending today. Statistics come from
// the full history; symptom/mood/period counts from the window only.
func (service *WellnessService) BuildReport(user *models.User, windowDays int, today time.Time) (WellnessReport, error) {
	windowDays = NormalizeReportingWindow(windowDays)
	from := cycle.AddDays(today, -windowDays)
	to := cycle.AddDays(today, 1)

	allPeriods, err := service.periods.ListByUser(user.ID)
	if err != nil {
		return WellnessReport{}, err
	}
	windowPeriods, err := service.periods.ListByUserRange(user.ID, &from, &to)
	if err != nil {
		return WellnessReport{}, err
	}
	symptomLogs, err := service.symptoms.ListByUserRange(user.ID, &from, &to)
	if err != nil {
		return WellnessReport{}, err
	}
	moodLogs, err := service.moods.ListByUserRange(user.ID, &from, &to)
	if err != nil {
		return WellnessReport{}, err
	}

	report := WellnessReport{
		WindowDays:     windowDays,
		PeriodLogCount: len(windowPeriods),
		Symptoms:       SummarizeSymptomLogs(symptomLogs),
		Moods:          SummarizeMoodLogs(moodLogs),
		Statistics:     cycle.ComputeStatistics(allPeriods, cycle.DefaultLookback),
	}
	report.Score = cycle.ScoreWellness(report.Statistics, report.Symptoms, report.Moods, report.PeriodLogCount)
	return report, nil
}

func SummarizeSymptomLogs(logs []models.SymptomLog) cycle.SymptomSummary {
	summary := cycle.SymptomSummary{LogCount: len(logs)}
	distinct := make(map[string]struct{})
	for _, logEntry := range logs {
		summary.TotalOccurrences += len(logEntry.Symptoms)
		for _, symptom := range logEntry.Symptoms {
			distinct[symptom] = struct{}{}
		}
	}
	summary.DistinctTypes = len(distinct)
	return summary
}

func SummarizeMoodLogs(logs []models.MoodLog) cycle.MoodSummary {
	summary := cycle.MoodSummary{
		LogCount: len(logs),
		Counts:   make(map[models.Mood]int),
	}
	for _, logEntry := range logs {
		summary.Counts[logEntry.Mood]++
	}
	return summary
}
