package services

import (
	"errors"
	"time"

	"github.com/terraincognita07/cyra/internal/cycle"
	"github.com/terraincognita07/cyra/internal/models"
)

var (
	ErrInvalidPeriodRange = errors.New("period end date must not precede start date")
	ErrInvalidFlow        = errors.New("unknown flow intensity")
	ErrInvalidIntensity   = errors.New("unknown symptom intensity")
	ErrUnknownSymptom     = errors.New("unknown symptom")
	ErrInvalidMood        = errors.New("unknown mood")
	ErrPeriodNotFound     = errors.New("period not found")
)

type PeriodStore interface {
	FindByID(userID uint, periodID uint) (models.Period, bool, error)
	FindByUserAndStartRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.Period, bool, error)
	Create(period *models.Period) error
	Save(period *models.Period) error
	Delete(userID uint, periodID uint) error
}

type SymptomLogStore interface {
	FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.SymptomLog, bool, error)
	Create(entry *models.SymptomLog) error
	Save(entry *models.SymptomLog) error
	DeleteByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) error
}

type MoodLogStore interface {
	FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.MoodLog, bool, error)
	Create(entry *models.MoodLog) error
	Save(entry *models.MoodLog) error
	DeleteByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) error
}

type LogUserStore interface {
	Save(user *models.User) error
}

// LogService owns every write path for periods and per-day logs, including
// the one-row-per-day upsert semantics and the implicit profile advance.
type LogService struct {
	periods  PeriodStore
	symptoms SymptomLogStore
	moods    MoodLogStore
	users    LogUserStore
	location *time.Location
}

func NewLogService(periods PeriodStore, symptoms SymptomLogStore, moods MoodLogStore, users LogUserStore, location *time.Location) *LogService {
	if location == nil {
		location = time.UTC
	}
	return &LogService{
		periods:  periods,
		symptoms: symptoms,
		moods:    moods,
		users:    users,
		location: location,
	}
}

type PeriodInput struct {
	StartDate time.Time
	EndDate   *time.Time
	Flow      string
	PainLevel *int
	Notes     string
}

// LogPeriod creates a period, or updates the existing one when a record for
// the same start day already exists. A start newer than the profile's
// last_period_start advances it.
func (service *LogService) LogPeriod(user *models.User, input PeriodInput) (models.Period, error) {
	if err := validatePeriodInput(&input, service.location); err != nil {
		return models.Period{}, err
	}

	dayStart, dayEnd := DayRange(input.StartDate, service.location)
	existing, found, err := service.periods.FindByUserAndStartRange(user.ID, dayStart, dayEnd)
	if err != nil {
		return models.Period{}, err
	}

	if found {
		applyPeriodInput(&existing, input)
		if err := service.periods.Save(&existing); err != nil {
			return models.Period{}, err
		}
		return existing, service.advanceLastPeriodStart(user, existing.StartDate)
	}

	period := models.Period{UserID: user.ID}
	applyPeriodInput(&period, input)
	if err := service.periods.Create(&period); err != nil {
		return models.Period{}, err
	}
	return period, service.advanceLastPeriodStart(user, period.StartDate)
}

func (service *LogService) UpdatePeriod(user *models.User, periodID uint, input PeriodInput) (models.Period, error) {
	if err := validatePeriodInput(&input, service.location); err != nil {
		return models.Period{}, err
	}

	period, found, err := service.periods.FindByID(user.ID, periodID)
	if err != nil {
		return models.Period{}, err
	}
	if !found {
		return models.Period{}, ErrPeriodNotFound
	}

	applyPeriodInput(&period, input)
	if err := service.periods.Save(&period); err != nil {
		return models.Period{}, err
	}
	return period, service.advanceLastPeriodStart(user, period.StartDate)
}

func (service *LogService) DeletePeriod(userID uint, periodID uint) error {
	return service.periods.Delete(userID, periodID)
}

func validatePeriodInput(input *PeriodInput, location *time.Location) error {
	input.StartDate = DateAtLocation(input.StartDate, location)
	if input.EndDate != nil {
		normalized := DateAtLocation(*input.EndDate, location)
		if normalized.Before(input.StartDate) {
			return ErrInvalidPeriodRange
		}
		input.EndDate = &normalized
	}
	if input.Flow == "" {
		input.Flow = models.FlowMedium
	}
	if !models.IsValidFlow(input.Flow) {
		return ErrInvalidFlow
	}
	return nil
}

func applyPeriodInput(period *models.Period, input PeriodInput) {
	period.StartDate = input.StartDate
	period.EndDate = input.EndDate
	period.Flow = input.Flow
	period.PainLevel = input.PainLevel
	period.Notes = input.Notes
}

func (service *LogService) advanceLastPeriodStart(user *models.User, start time.Time) error {
	start = cycle.DateOnly(start)
	if user.LastPeriodStart != nil && !start.After(*user.LastPeriodStart) {
		return nil
	}
	user.LastPeriodStart = &start
	return service.users.Save(user)
}

type SymptomLogInput struct {
	Symptoms  []string
	Intensity string
	PainLevel int
}

// UpsertSymptomLog merges a second write for the same day into the existing
// row: symptoms are unioned, intensity and pain level take the new value.
func (service *LogService) UpsertSymptomLog(userID uint, date time.Time, input SymptomLogInput) (models.SymptomLog, error) {
	if input.Intensity == "" {
		input.Intensity = models.IntensityMild
	}
	if !models.IsValidIntensity(input.Intensity) {
		return models.SymptomLog{}, ErrInvalidIntensity
	}
	for _, symptom := range input.Symptoms {
		if !models.IsKnownSymptom(symptom) {
			return models.SymptomLog{}, ErrUnknownSymptom
		}
	}

	dayStart, dayEnd := DayRange(date, service.location)
	existing, found, err := service.symptoms.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return models.SymptomLog{}, err
	}

	if found {
		existing.Symptoms = mergeSymptoms(existing.Symptoms, input.Symptoms)
		existing.Intensity = input.Intensity
		existing.PainLevel = input.PainLevel
		if err := service.symptoms.Save(&existing); err != nil {
			return models.SymptomLog{}, err
		}
		return existing, nil
	}

	entry := models.SymptomLog{
		UserID:    userID,
		Date:      dayStart,
		Symptoms:  mergeSymptoms(nil, input.Symptoms),
		Intensity: input.Intensity,
		PainLevel: input.PainLevel,
	}
	if err := service.symptoms.Create(&entry); err != nil {
		return models.SymptomLog{}, err
	}
	return entry, nil
}

func (service *LogService) DeleteSymptomLog(userID uint, date time.Time) error {
	dayStart, dayEnd := DayRange(date, service.location)
	return service.symptoms.DeleteByUserAndDayRange(userID, dayStart, dayEnd)
}

func mergeSymptoms(existing []string, incoming []string) []string {
	seen := make(map[string]struct{}, len(existing)+len(incoming))
	merged := make([]string, 0, len(existing)+len(incoming))
	for _, symptom := range existing {
		if _, dup := seen[symptom]; dup {
			continue
		}
		seen[symptom] = struct{}{}
		merged = append(merged, symptom)
	}
	for _, symptom := range incoming {
		if _, dup := seen[symptom]; dup {
			continue
		}
		seen[symptom] = struct{}{}
		merged = append(merged, symptom)
	}
	return merged
}

type MoodLogInput struct {
	Mood         models.Mood
	Intensity    int
	EnergyLevel  int
	SleepQuality *int
	SleepHours   float64
	StressLevel  *int
}

// UpsertMoodLog replaces the existing row for the day when one exists.
func (service *LogService) UpsertMoodLog(userID uint, date time.Time, input MoodLogInput) (models.MoodLog, error) {
	if !models.IsKnownMood(input.Mood) {
		return models.MoodLog{}, ErrInvalidMood
	}
	if input.Intensity <= 0 {
		input.Intensity = 3
	}
	if input.EnergyLevel <= 0 {
		input.EnergyLevel = 3
	}

	dayStart, dayEnd := DayRange(date, service.location)
	existing, found, err := service.moods.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return models.MoodLog{}, err
	}

	if found {
		existing.Mood = input.Mood
		existing.Intensity = input.Intensity
		existing.EnergyLevel = input.EnergyLevel
		existing.SleepQuality = input.SleepQuality
		existing.SleepHours = input.SleepHours
		existing.StressLevel = input.StressLevel
		if err := service.moods.Save(&existing); err != nil {
			return models.MoodLog{}, err
		}
		return existing, nil
	}

	entry := models.MoodLog{
		UserID:       userID,
		Date:         dayStart,
		Mood:         input.Mood,
		Intensity:    input.Intensity,
		EnergyLevel:  input.EnergyLevel,
		SleepQuality: input.SleepQuality,
		SleepHours:   input.SleepHours,
		StressLevel:  input.StressLevel,
	}
	if err := service.moods.Create(&entry); err != nil {
		return models.MoodLog{}, err
	}
	return entry, nil
}

func (service *LogService) DeleteMoodLog(userID uint, date time.Time) error {
	dayStart, dayEnd := DayRange(date, service.location)
	return service.moods.DeleteByUserAndDayRange(userID, dayStart, dayEnd)
}
