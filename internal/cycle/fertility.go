package cycle

import "time"

const (
	// The luteal phase is treated as a fixed 14 days, so ovulation is
	// computed backward from the period that follows it.
	lutealPhaseDays = 14

	// Sperm viability: 5 days before ovulation through 1 day after.
	fertileDaysBeforeOvulation = 5
	fertileDaysAfterOvulation  = 1
)

type FertileWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (window FertileWindow) Contains(day time.Time) bool {
	return betweenInclusive(DateOnly(day), window.Start, window.End)
}

// OvulationFor returns the ovulation date of the cycle ending in
// nextPeriodStart.
func OvulationFor(nextPeriodStart time.Time) time.Time {
	return AddDays(nextPeriodStart, -lutealPhaseDays)
}

func FertileWindowFor(nextPeriodStart time.Time) FertileWindow {
	ovulation := OvulationFor(nextPeriodStart)
	return FertileWindow{
		Start: AddDays(ovulation, -fertileDaysBeforeOvulation),
		End:   AddDays(ovulation, fertileDaysAfterOvulation),
	}
}

// DayFlags is the raw set of markers a calendar day can pick up before
// precedence is applied.
type DayFlags struct {
	Period    bool
	Predicted bool
	Fertile   bool
	Ovulation bool
	PMS       bool
}

// ResolveDayFlags applies the rendering precedence contract: ovulation wins
// over the fertile window, and a period day (logged or predicted) wins over
// every fertility marker.
func ResolveDayFlags(flags DayFlags) DayFlags {
	if flags.Ovulation {
		flags.Fertile = false
	}
	if flags.Period || flags.Predicted {
		flags.Fertile = false
		flags.Ovulation = false
		flags.PMS = false
	}
	return flags
}
