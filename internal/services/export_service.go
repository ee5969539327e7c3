package services

import (
	"strings"
	"time"

	"github.com/terraincognita07/cyra/internal/models"
)

const exportDateLayout = "2006-01-02"

var ExportCSVHeaders = []string{
	"Date",
	"Period",
	"Flow",
	"Pain",
	"Symptoms",
	"Symptom intensity",
	"Mood",
	"Energy",
	"Sleep hours",
	"Stress",
	"Notes",
}

type ExportPeriodReader interface {
	ListByUserRange(userID uint, fromStart *time.Time, toEnd *time.Time) ([]models.Period, error)
}

type ExportSymptomReader interface {
	ListByUserRange(userID uint, fromStart *time.Time, toEnd *time.Time) ([]models.SymptomLog, error)
}

type ExportMoodReader interface {
	ListByUserRange(userID uint, fromStart *time.Time, toEnd *time.Time) ([]models.MoodLog, error)
}

type ExportService struct {
	periods  ExportPeriodReader
	symptoms ExportSymptomReader
	moods    ExportMoodReader
	location *time.Location
}

func NewExportService(periods ExportPeriodReader, symptoms ExportSymptomReader, moods ExportMoodReader, location *time.Location) *ExportService {
	if location == nil {
		location = time.UTC
	}
	return &ExportService{
		periods:  periods,
		symptoms: symptoms,
		moods:    moods,
		location: location,
	}
}

type ExportSummary struct {
	TotalDays    int    `json:"total_days"`
	PeriodCount  int    `json:"period_count"`
	SymptomCount int    `json:"symptom_log_count"`
	MoodCount    int    `json:"mood_log_count"`
	HasData      bool   `json:"has_data"`
	DateFrom     string `json:"date_from"`
	DateTo       string `json:"date_to"`
}

type ExportDayRecord struct {
	Date             string      `json:"date"`
	Period           bool        `json:"period"`
	Flow             string      `json:"flow,omitempty"`
	PainLevel        *int        `json:"pain_level,omitempty"`
	Symptoms         []string    `json:"symptoms,omitempty"`
	SymptomIntensity string      `json:"symptom_intensity,omitempty"`
	Mood             models.Mood `json:"mood,omitempty"`
	EnergyLevel      int         `json:"energy_level,omitempty"`
	SleepHours       float64     `json:"sleep_hours,omitempty"`
	StressLevel      *int        `json:"stress_level,omitempty"`
	Notes            string      `json:"notes,omitempty"`
}

// BuildDayRecords flattens periods and per-day logs into one record per
// calendar day, ordered by date.
func (service *ExportService) BuildDayRecords(userID uint, from *time.Time, to *time.Time) ([]ExportDayRecord, error) {
	periods, err := service.periods.ListByUserRange(userID, from, to)
	if err != nil {
		return nil, err
	}
	symptomLogs, err := service.symptoms.ListByUserRange(userID, from, to)
	if err != nil {
		return nil, err
	}
	moodLogs, err := service.moods.ListByUserRange(userID, from, to)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]*ExportDayRecord)
	ordered := make([]string, 0)
	record := func(day time.Time) *ExportDayRecord {
		key := DateAtLocation(day, service.location).Format(exportDateLayout)
		if existing, ok := byDate[key]; ok {
			return existing
		}
		entry := &ExportDayRecord{Date: key}
		byDate[key] = entry
		ordered = append(ordered, key)
		return entry
	}

	for _, period := range periods {
		start := DateAtLocation(period.StartDate, service.location)
		end := start
		if period.EndDate != nil {
			end = DateAtLocation(*period.EndDate, service.location)
		}
		for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
			entry := record(day)
			entry.Period = true
			entry.Flow = period.Flow
			entry.PainLevel = period.PainLevel
			entry.Notes = period.Notes
		}
	}
	for _, logEntry := range symptomLogs {
		entry := record(logEntry.Date)
		entry.Symptoms = logEntry.Symptoms
		entry.SymptomIntensity = logEntry.Intensity
	}
	for _, logEntry := range moodLogs {
		entry := record(logEntry.Date)
		entry.Mood = logEntry.Mood
		entry.EnergyLevel = logEntry.EnergyLevel
		entry.SleepHours = logEntry.SleepHours
		entry.StressLevel = logEntry.StressLevel
	}

	records := make([]ExportDayRecord, 0, len(ordered))
	for _, key := range sortedDateKeys(ordered) {
		records = append(records, *byDate[key])
	}
	return records, nil
}

func (service *ExportService) BuildSummary(userID uint, from *time.Time, to *time.Time) (ExportSummary, error) {
	records, err := service.BuildDayRecords(userID, from, to)
	if err != nil {
		return ExportSummary{}, err
	}
	if len(records) == 0 {
		return ExportSummary{}, nil
	}

	summary := ExportSummary{
		TotalDays: len(records),
		HasData:   true,
		DateFrom:  records[0].Date,
		DateTo:    records[len(records)-1].Date,
	}
	for _, entry := range records {
		if entry.Period {
			summary.PeriodCount++
		}
		if len(entry.Symptoms) > 0 {
			summary.SymptomCount++
		}
		if entry.Mood != "" {
			summary.MoodCount++
		}
	}
	return summary, nil
}

func (record ExportDayRecord) Columns() []string {
	return []string{
		record.Date,
		csvYesNo(record.Period),
		record.Flow,
		csvOptionalInt(record.PainLevel),
		strings.Join(record.Symptoms, "; "),
		record.SymptomIntensity,
		string(record.Mood),
		csvInt(record.EnergyLevel),
		csvFloat(record.SleepHours),
		csvOptionalInt(record.StressLevel),
		record.Notes,
	}
}
