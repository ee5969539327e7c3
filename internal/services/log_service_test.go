package services

import (
	"errors"
	"testing"
	"time"

	"github.com/terraincognita07/cyra/internal/models"
)

type fakePeriodStore struct {
	nextID  uint
	records []models.Period
}

func (store *fakePeriodStore) FindByID(userID uint, periodID uint) (models.Period, bool, error) {
	for _, record := range store.records {
		if record.UserID == userID && record.ID == periodID {
			return record, true, nil
		}
	}
	return models.Period{}, false, nil
}

func (store *fakePeriodStore) FindByUserAndStartRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.Period, bool, error) {
	for _, record := range store.records {
		if record.UserID == userID && !record.StartDate.Before(dayStart) && record.StartDate.Before(dayEnd) {
			return record, true, nil
		}
	}
	return models.Period{}, false, nil
}

func (store *fakePeriodStore) Create(period *models.Period) error {
	store.nextID++
	period.ID = store.nextID
	store.records = append(store.records, *period)
	return nil
}

func (store *fakePeriodStore) Save(period *models.Period) error {
	for i, record := range store.records {
		if record.ID == period.ID {
			store.records[i] = *period
			return nil
		}
	}
	return errors.New("period not in store")
}

func (store *fakePeriodStore) Delete(userID uint, periodID uint) error {
	for i, record := range store.records {
		if record.UserID == userID && record.ID == periodID {
			store.records = append(store.records[:i], store.records[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeSymptomLogStore struct {
	nextID  uint
	records []models.SymptomLog
}

func (store *fakeSymptomLogStore) FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.SymptomLog, bool, error) {
	for _, record := range store.records {
		if record.UserID == userID && !record.Date.Before(dayStart) && record.Date.Before(dayEnd) {
			return record, true, nil
		}
	}
	return models.SymptomLog{}, false, nil
}

func (store *fakeSymptomLogStore) Create(entry *models.SymptomLog) error {
	store.nextID++
	entry.ID = store.nextID
	store.records = append(store.records, *entry)
	return nil
}

func (store *fakeSymptomLogStore) Save(entry *models.SymptomLog) error {
	for i, record := range store.records {
		if record.ID == entry.ID {
			store.records[i] = *entry
			return nil
		}
	}
	return errors.New("symptom log not in store")
}

func (store *fakeSymptomLogStore) DeleteByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) error {
	kept := store.records[:0]
	for _, record := range store.records {
		if record.UserID == userID && !record.Date.Before(dayStart) && record.Date.Before(dayEnd) {
			continue
		}
		kept = append(kept, record)
	}
	store.records = kept
	return nil
}

type fakeMoodLogStore struct {
	nextID  uint
	records []models.MoodLog
}

func (store *fakeMoodLogStore) FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.MoodLog, bool, error) {
	for _, record := range store.records {
		if record.UserID == userID && !record.Date.Before(dayStart) && record.Date.Before(dayEnd) {
			return record, true, nil
		}
	}
	return models.MoodLog{}, false, nil
}

func (store *fakeMoodLogStore) Create(entry *models.MoodLog) error {
	store.nextID++
	entry.ID = store.nextID
	store.records = append(store.records, *entry)
	return nil
}

func (store *fakeMoodLogStore) Save(entry *models.MoodLog) error {
	for i, record := range store.records {
		if record.ID == entry.ID {
			store.records[i] = *entry
			return nil
		}
	}
	return errors.New("mood log not in store")
}

func (store *fakeMoodLogStore) DeleteByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) error {
	kept := store.records[:0]
	for _, record := range store.records {
		if record.UserID == userID && !record.Date.Before(dayStart) && record.Date.Before(dayEnd) {
			continue
		}
		kept = append(kept, record)
	}
	store.records = kept
	return nil
}

type fakeUserStore struct {
	saveCount int
}

func (store *fakeUserStore) Save(user *models.User) error {
	store.saveCount++
	return nil
}

func newTestLogService() (*LogService, *fakePeriodStore, *fakeSymptomLogStore, *fakeMoodLogStore, *fakeUserStore) {
	periods := &fakePeriodStore{}
	symptoms := &fakeSymptomLogStore{}
	moods := &fakeMoodLogStore{}
	users := &fakeUserStore{}
	return NewLogService(periods, symptoms, moods, users, time.UTC), periods, symptoms, moods, users
}

func TestLogPeriodCreatesAndAdvancesProfile(t *testing.T) {
	service, periods, _, _, users := newTestLogService()
	user := &models.User{ID: 1}

	created, err := service.LogPeriod(user, PeriodInput{StartDate: mustParseDay("2025-02-01"), Flow: models.FlowHeavy})
	if err != nil {
		t.Fatalf("LogPeriod failed: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected an assigned ID")
	}
	if len(periods.records) != 1 {
		t.Fatalf("expected 1 stored period, got %d", len(periods.records))
	}
	if user.LastPeriodStart == nil || !user.LastPeriodStart.Equal(mustParseDay("2025-02-01")) {
		t.Fatalf("expected profile advanced to 2025-02-01, got %v", user.LastPeriodStart)
	}
	if users.saveCount != 1 {
		t.Fatalf("expected 1 user save, got %d", users.saveCount)
	}
}

func TestLogPeriodUpsertsSameStartDay(t *testing.T) {
	service, periods, _, _, _ := newTestLogService()
	user := &models.User{ID: 1}

	if _, err := service.LogPeriod(user, PeriodInput{StartDate: mustParseDay("2025-02-01"), Flow: models.FlowLight}); err != nil {
		t.Fatalf("first LogPeriod failed: %v", err)
	}
	updated, err := service.LogPeriod(user, PeriodInput{
		StartDate: mustParseDay("2025-02-01"),
		EndDate:   dayPointer("2025-02-05"),
		Flow:      models.FlowHeavy,
	})
	if err != nil {
		t.Fatalf("second LogPeriod failed: %v", err)
	}

	if len(periods.records) != 1 {
		t.Fatalf("same start day must not create a second row, got %d rows", len(periods.records))
	}
	if updated.Flow != models.FlowHeavy {
		t.Fatalf("expected updated flow, got %q", updated.Flow)
	}
	if updated.EndDate == nil || !updated.EndDate.Equal(mustParseDay("2025-02-05")) {
		t.Fatalf("expected end date applied, got %v", updated.EndDate)
	}
}

func TestLogPeriodRejectsInvalidInput(t *testing.T) {
	service, _, _, _, _ := newTestLogService()
	user := &models.User{ID: 1}

	_, err := service.LogPeriod(user, PeriodInput{
		StartDate: mustParseDay("2025-02-10"),
		EndDate:   dayPointer("2025-02-08"),
	})
	if !errors.Is(err, ErrInvalidPeriodRange) {
		t.Fatalf("expected ErrInvalidPeriodRange, got %v", err)
	}

	_, err = service.LogPeriod(user, PeriodInput{StartDate: mustParseDay("2025-02-10"), Flow: "torrential"})
	if !errors.Is(err, ErrInvalidFlow) {
		t.Fatalf("expected ErrInvalidFlow, got %v", err)
	}
}

func TestLogPeriodDefaultsFlowToMedium(t *testing.T) {
	service, _, _, _, _ := newTestLogService()
	user := &models.User{ID: 1}

	created, err := service.LogPeriod(user, PeriodInput{StartDate: mustParseDay("2025-02-01")})
	if err != nil {
		t.Fatalf("LogPeriod failed: %v", err)
	}
	if created.Flow != models.FlowMedium {
		t.Fatalf("expected default flow medium, got %q", created.Flow)
	}
}

func TestLogPeriodDoesNotRewindProfile(t *testing.T) {
	service, _, _, _, users := newTestLogService()
	user := &models.User{ID: 1, LastPeriodStart: dayPointer("2025-03-01")}

	if _, err := service.LogPeriod(user, PeriodInput{StartDate: mustParseDay("2025-01-10")}); err != nil {
		t.Fatalf("LogPeriod failed: %v", err)
	}

	if !user.LastPeriodStart.Equal(mustParseDay("2025-03-01")) {
		t.Fatalf("backfilled period must not rewind the profile, got %v", user.LastPeriodStart)
	}
	if users.saveCount != 0 {
		t.Fatalf("expected no user save for a backfill, got %d", users.saveCount)
	}
}

func TestUpdatePeriodNotFound(t *testing.T) {
	service, _, _, _, _ := newTestLogService()
	user := &models.User{ID: 1}

	_, err := service.UpdatePeriod(user, 42, PeriodInput{StartDate: mustParseDay("2025-02-01")})
	if !errors.Is(err, ErrPeriodNotFound) {
		t.Fatalf("expected ErrPeriodNotFound, got %v", err)
	}
}

func TestUpsertSymptomLogMergesSameDay(t *testing.T) {
	service, _, symptoms, _, _ := newTestLogService()
	day := mustParseDay("2025-02-14")

	if _, err := service.UpsertSymptomLog(1, day, SymptomLogInput{
		Symptoms:  []string{"Cramps", "Headache"},
		Intensity: models.IntensityMild,
	}); err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}

	merged, err := service.UpsertSymptomLog(1, day, SymptomLogInput{
		Symptoms:  []string{"Headache", "Bloating"},
		Intensity: models.IntensitySevere,
		PainLevel: 7,
	})
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	if len(symptoms.records) != 1 {
		t.Fatalf("same day must stay one row, got %d", len(symptoms.records))
	}
	if len(merged.Symptoms) != 3 {
		t.Fatalf("expected union of 3 symptoms, got %v", merged.Symptoms)
	}
	if merged.Intensity != models.IntensitySevere {
		t.Fatalf("expected intensity replaced, got %q", merged.Intensity)
	}
	if merged.PainLevel != 7 {
		t.Fatalf("expected pain level replaced, got %d", merged.PainLevel)
	}
}

func TestUpsertSymptomLogRejectsUnknownIntensity(t *testing.T) {
	service, _, _, _, _ := newTestLogService()

	_, err := service.UpsertSymptomLog(1, mustParseDay("2025-02-14"), SymptomLogInput{
		Symptoms:  []string{"Cramps"},
		Intensity: "unbearable",
	})
	if !errors.Is(err, ErrInvalidIntensity) {
		t.Fatalf("expected ErrInvalidIntensity, got %v", err)
	}
}

func TestUpsertSymptomLogRejectsUnknownSymptom(t *testing.T) {
	service, _, symptoms, _, _ := newTestLogService()

	_, err := service.UpsertSymptomLog(1, mustParseDay("2025-02-14"), SymptomLogInput{
		Symptoms: []string{"Cramps", "Ennui"},
	})
	if !errors.Is(err, ErrUnknownSymptom) {
		t.Fatalf("expected ErrUnknownSymptom, got %v", err)
	}
	if len(symptoms.records) != 0 {
		t.Fatalf("rejected log must not be stored, got %d rows", len(symptoms.records))
	}
}

func TestUpsertSymptomLogAcceptsCatalogNamesCaseInsensitively(t *testing.T) {
	service, _, _, _, _ := newTestLogService()

	entry, err := service.UpsertSymptomLog(1, mustParseDay("2025-02-14"), SymptomLogInput{
		Symptoms: []string{"cramps", "Back pain"},
	})
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if len(entry.Symptoms) != 2 {
		t.Fatalf("expected 2 symptoms stored, got %v", entry.Symptoms)
	}
}

func TestUpsertMoodLogReplacesSameDay(t *testing.T) {
	service, _, _, moods, _ := newTestLogService()
	day := mustParseDay("2025-02-14")

	if _, err := service.UpsertMoodLog(1, day, MoodLogInput{Mood: models.MoodHappy, Intensity: 4, EnergyLevel: 4}); err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}

	replaced, err := service.UpsertMoodLog(1, day, MoodLogInput{Mood: models.MoodTired, Intensity: 2, EnergyLevel: 1})
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	if len(moods.records) != 1 {
		t.Fatalf("same day must stay one row, got %d", len(moods.records))
	}
	if replaced.Mood != models.MoodTired {
		t.Fatalf("expected mood replaced, got %q", replaced.Mood)
	}
	if replaced.EnergyLevel != 1 {
		t.Fatalf("expected energy replaced, got %d", replaced.EnergyLevel)
	}
}

func TestUpsertMoodLogValidation(t *testing.T) {
	service, _, _, _, _ := newTestLogService()

	_, err := service.UpsertMoodLog(1, mustParseDay("2025-02-14"), MoodLogInput{Mood: "ecstatic"})
	if !errors.Is(err, ErrInvalidMood) {
		t.Fatalf("expected ErrInvalidMood, got %v", err)
	}

	created, err := service.UpsertMoodLog(1, mustParseDay("2025-02-14"), MoodLogInput{Mood: models.MoodCalm})
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if created.Intensity != 3 || created.EnergyLevel != 3 {
		t.Fatalf("expected defaults 3/3, got %d/%d", created.Intensity, created.EnergyLevel)
	}
}

func TestDeleteLogsByDay(t *testing.T) {
	service, _, symptoms, moods, _ := newTestLogService()
	day := mustParseDay("2025-02-14")

	if _, err := service.UpsertSymptomLog(1, day, SymptomLogInput{Symptoms: []string{"Cramps"}}); err != nil {
		t.Fatalf("symptom upsert failed: %v", err)
	}
	if _, err := service.UpsertMoodLog(1, day, MoodLogInput{Mood: models.MoodCalm}); err != nil {
		t.Fatalf("mood upsert failed: %v", err)
	}

	if err := service.DeleteSymptomLog(1, day); err != nil {
		t.Fatalf("symptom delete failed: %v", err)
	}
	if err := service.DeleteMoodLog(1, day); err != nil {
		t.Fatalf("mood delete failed: %v", err)
	}

	if len(symptoms.records) != 0 || len(moods.records) != 0 {
		t.Fatalf("expected empty stores, got %d/%d", len(symptoms.records), len(moods.records))
	}
}
