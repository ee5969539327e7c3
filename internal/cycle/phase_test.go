package cycle

import (
	"testing"

	"github.com/terraincognita07/cyra/internal/models"
)

func TestClassifyPhaseMenstrualWithinDefaultLength(t *testing.T) {
	lastStart := mustParseDay("2025-01-01")
	result := ClassifyPhase(mustParseDay("2025-01-03"), lastStart, 28, 5, nil)

	if result.Phase != PhaseMenstrual {
		t.Fatalf("expected menstrual, got %q", result.Phase)
	}
	if result.CycleDay != 3 {
		t.Fatalf("expected cycle day 3, got %d", result.CycleDay)
	}
}

func TestClassifyPhaseHonorsLoggedEndDate(t *testing.T) {
	// The logged record runs 8 days, past the 5-day average. Day 7 still
	// classifies menstrual because the explicit range wins.
	lastStart := mustParseDay("2025-01-01")
	end := mustParseDay("2025-01-08")
	periods := []models.Period{{StartDate: lastStart, EndDate: &end}}

	result := ClassifyPhase(mustParseDay("2025-01-07"), lastStart, 28, 5, periods)
	if result.Phase != PhaseMenstrual {
		t.Fatalf("expected menstrual inside the logged range, got %q", result.Phase)
	}
}

func TestClassifyPhaseAcrossOneCycle(t *testing.T) {
	lastStart := mustParseDay("2025-01-01")

	cases := []struct {
		day      string
		expected Phase
	}{
		{"2025-01-06", PhaseFollicular}, // day 6, period over
		{"2025-01-10", PhaseOvulation},  // fertile window start
		{"2025-01-15", PhaseOvulation},  // ovulation day
		{"2025-01-16", PhaseOvulation},  // fertile window end
		{"2025-01-17", PhaseFollicular}, // past window, 12 days to next start
		{"2025-01-22", PhaseLuteal},     // 7 days to next start
		{"2025-01-28", PhaseLuteal},     // eve of the next period
	}

	for _, testCase := range cases {
		result := ClassifyPhase(mustParseDay(testCase.day), lastStart, 28, 5, nil)
		if result.Phase != testCase.expected {
			t.Fatalf("%s: expected %q, got %q", testCase.day, testCase.expected, result.Phase)
		}
	}
}

func TestClassifyPhaseProjectsOverdueCycle(t *testing.T) {
	// 35 days after the last logged start the classifier must reason from
	// the projected current cycle, not from the stale one.
	lastStart := mustParseDay("2025-01-01")
	result := ClassifyPhase(mustParseDay("2025-02-05"), lastStart, 28, 5, nil)

	if result.Phase != PhaseFollicular {
		t.Fatalf("expected follicular in the projected cycle, got %q", result.Phase)
	}
	if result.CycleDay != 8 {
		t.Fatalf("expected cycle day 8, got %d", result.CycleDay)
	}
}

func TestClassifyPhaseWithoutData(t *testing.T) {
	result := ClassifyPhase(mustParseDay("2025-02-05"), zeroTime(), 28, 5, nil)

	if result.Phase != PhaseUnknown {
		t.Fatalf("expected unknown, got %q", result.Phase)
	}
	if result.CycleDay != 0 {
		t.Fatalf("expected cycle day 0, got %d", result.CycleDay)
	}
	if result.Descriptor.Name != "Unknown" {
		t.Fatalf("unexpected descriptor %q", result.Descriptor.Name)
	}
}

func TestDescriptorForCoversEveryPhase(t *testing.T) {
	for _, phase := range []Phase{PhaseMenstrual, PhaseFollicular, PhaseOvulation, PhaseLuteal, PhaseUnknown} {
		descriptor := DescriptorFor(phase)
		if descriptor.Phase != phase {
			t.Fatalf("descriptor for %q reports phase %q", phase, descriptor.Phase)
		}
		if descriptor.Name == "" || descriptor.Description == "" || len(descriptor.CareTips) == 0 {
			t.Fatalf("descriptor for %q is missing content", phase)
		}
	}
}
