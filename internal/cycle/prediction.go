package cycle

import (
	"time"

	"github.com/terraincognita07/cyra/internal/models"
)

const DefaultForecastCycles = 3

type PredictedCycle struct {
	PeriodStart   time.Time     `json:"period_start"`
	PeriodEnd     time.Time     `json:"period_end"`
	OvulationDate time.Time     `json:"ovulation_date"`
	FertileWindow FertileWindow `json:"fertile_window"`
}

// Forecast projects the next count period starts from the last known start.
// The first projection is re-anchored forward while it falls strictly before
// today: a period that should already have started but was never logged must
// not surface as an upcoming prediction. Later projections are each a full
// cycle after the first emitted one, so they are never past-dated.
func Forecast(lastPeriodStart time.Time, cycleLength int, periodLength int, count int, today time.Time) []PredictedCycle {
	if lastPeriodStart.IsZero() || cycleLength <= 0 {
		return nil
	}
	if count <= 0 {
		count = DefaultForecastCycles
	}
	if periodLength <= 0 {
		periodLength = models.DefaultPeriodLength
	}

	today = DateOnly(today)
	start := AddDays(lastPeriodStart, cycleLength)
	for start.Before(today) {
		start = AddDays(start, cycleLength)
	}

	cycles := make([]PredictedCycle, 0, count)
	for len(cycles) < count {
		cycles = append(cycles, PredictedCycle{
			PeriodStart:   start,
			PeriodEnd:     AddDays(start, periodLength-1),
			OvulationDate: OvulationFor(start),
			FertileWindow: FertileWindowFor(start),
		})
		start = AddDays(start, cycleLength)
	}
	return cycles
}

// CycleDay reports the 1-based day of the current cycle, always within
// [1, cycleLength] regardless of how today relates to the last start.
func CycleDay(lastPeriodStart time.Time, cycleLength int, today time.Time) int {
	if lastPeriodStart.IsZero() || cycleLength <= 0 {
		return 0
	}

	elapsed := DaysBetween(lastPeriodStart, today)
	day := elapsed%cycleLength + 1
	if day < 1 {
		day += cycleLength
	}
	return day
}
