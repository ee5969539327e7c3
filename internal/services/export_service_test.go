package services

import (
	"testing"
	"time"

	"github.com/terraincognita07/cyra/internal/models"
)

func newTestExportService(store *fakeWellnessStore) *ExportService {
	return NewExportService(store, fakeWellnessSymptomReader{store}, fakeWellnessMoodReader{store}, time.UTC)
}

func TestBuildDayRecordsFlattensByDay(t *testing.T) {
	end := mustParseDay("2025-02-03")
	pain := 4
	store := &fakeWellnessStore{
		periods: []models.Period{
			{UserID: 1, StartDate: mustParseDay("2025-02-01"), EndDate: &end, Flow: models.FlowHeavy, PainLevel: &pain, Notes: "rough start"},
		},
		symptoms: []models.SymptomLog{
			{UserID: 1, Date: mustParseDay("2025-02-01"), Symptoms: []string{"Cramps", "Headache"}, Intensity: models.IntensitySevere},
			{UserID: 1, Date: mustParseDay("2025-02-10"), Symptoms: []string{"Bloating"}, Intensity: models.IntensityMild},
		},
		moods: []models.MoodLog{
			{UserID: 1, Date: mustParseDay("2025-02-02"), Mood: models.MoodTired, EnergyLevel: 2, SleepHours: 6.5},
		},
	}
	service := newTestExportService(store)

	records, err := service.BuildDayRecords(1, nil, nil)
	if err != nil {
		t.Fatalf("BuildDayRecords failed: %v", err)
	}

	// Feb 1-3 from the period span plus the standalone Feb 10 log.
	if len(records) != 4 {
		t.Fatalf("expected 4 day records, got %d", len(records))
	}
	for i := 1; i < len(records); i++ {
		if records[i].Date <= records[i-1].Date {
			t.Fatalf("records out of order: %s after %s", records[i].Date, records[i-1].Date)
		}
	}

	first := records[0]
	if first.Date != "2025-02-01" || !first.Period || first.Flow != models.FlowHeavy {
		t.Fatalf("unexpected first record: %+v", first)
	}
	if len(first.Symptoms) != 2 || first.SymptomIntensity != models.IntensitySevere {
		t.Fatalf("expected symptoms merged into the period day, got %+v", first)
	}

	second := records[1]
	if second.Date != "2025-02-02" || !second.Period || second.Mood != models.MoodTired {
		t.Fatalf("expected mood merged into the period day, got %+v", second)
	}

	last := records[3]
	if last.Date != "2025-02-10" || last.Period {
		t.Fatalf("unexpected standalone log record: %+v", last)
	}
}

func TestBuildSummaryCounts(t *testing.T) {
	end := mustParseDay("2025-02-03")
	store := &fakeWellnessStore{
		periods: []models.Period{
			{UserID: 1, StartDate: mustParseDay("2025-02-01"), EndDate: &end, Flow: models.FlowMedium},
		},
		symptoms: []models.SymptomLog{
			{UserID: 1, Date: mustParseDay("2025-02-10"), Symptoms: []string{"Bloating"}},
		},
		moods: []models.MoodLog{
			{UserID: 1, Date: mustParseDay("2025-02-02"), Mood: models.MoodCalm},
		},
	}
	service := newTestExportService(store)

	summary, err := service.BuildSummary(1, nil, nil)
	if err != nil {
		t.Fatalf("BuildSummary failed: %v", err)
	}

	if summary.TotalDays != 4 || !summary.HasData {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if summary.PeriodCount != 3 || summary.SymptomCount != 1 || summary.MoodCount != 1 {
		t.Fatalf("unexpected counts: %+v", summary)
	}
	if summary.DateFrom != "2025-02-01" || summary.DateTo != "2025-02-10" {
		t.Fatalf("unexpected range: %s..%s", summary.DateFrom, summary.DateTo)
	}
}

func TestBuildSummaryEmpty(t *testing.T) {
	service := newTestExportService(&fakeWellnessStore{})

	summary, err := service.BuildSummary(1, nil, nil)
	if err != nil {
		t.Fatalf("BuildSummary failed: %v", err)
	}
	if summary.HasData || summary.TotalDays != 0 {
		t.Fatalf("expected empty summary, got %+v", summary)
	}
}

func TestExportDayRecordColumns(t *testing.T) {
	pain := 6
	record := ExportDayRecord{
		Date:             "2025-02-01",
		Period:           true,
		Flow:             models.FlowHeavy,
		PainLevel:        &pain,
		Symptoms:         []string{"Cramps", "Headache"},
		SymptomIntensity: models.IntensitySevere,
		Mood:             models.MoodTired,
		EnergyLevel:      2,
		SleepHours:       6.5,
		Notes:            "rough start",
	}

	columns := record.Columns()
	if len(columns) != len(ExportCSVHeaders) {
		t.Fatalf("expected %d columns, got %d", len(ExportCSVHeaders), len(columns))
	}
	if columns[0] != "2025-02-01" || columns[1] != "Yes" {
		t.Fatalf("unexpected leading columns: %v", columns[:2])
	}
	if columns[4] != "Cramps; Headache" {
		t.Fatalf("unexpected symptoms column: %q", columns[4])
	}
}
