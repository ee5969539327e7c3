package cycle

import (
	"math"
	"sort"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/terraincognita07/cyra/internal/models"
)

type Regularity string

const (
	RegularityRegular           Regularity = "Regular"
	RegularitySlightlyIrregular Regularity = "Slightly Irregular"
	RegularitySomewhatIrregular Regularity = "Somewhat Irregular"
	RegularityHighlyIrregular   Regularity = "Highly Irregular"
	RegularityUnknown           Regularity = "Not enough data"
)

type LengthPoint struct {
	Date   time.Time `json:"date"`
	Length int       `json:"length"`
}

type Statistics struct {
	AvgCycleLength  int           `json:"average_cycle_length"`
	MinCycleLength  int           `json:"min_cycle_length"`
	MaxCycleLength  int           `json:"max_cycle_length"`
	AvgPeriodLength int           `json:"average_period_length"`
	Regularity      Regularity    `json:"cycle_regularity"`
	CycleLengths    []LengthPoint `json:"cycle_lengths"`
	PeriodLengths   []LengthPoint `json:"period_lengths"`
}

const (
	DefaultLookback = 6

	// Gaps outside this range are treated as data-entry noise (a missed
	// log or a duplicate entry) and excluded from every aggregate.
	minPlausibleGapDays = 15
	maxPlausibleGapDays = 60

	maxPlausiblePeriodDays = 15
)

// ComputeStatistics derives cycle statistics from real logged periods.
// Sparse history never errors: an empty or single-record history returns the
// 28/5 defaults with RegularityUnknown.
func ComputeStatistics(periods []models.Period, lookback int) Statistics {
	if lookback <= 0 {
		lookback = DefaultLookback
	}

	result := Statistics{
		AvgCycleLength:  models.DefaultCycleLength,
		AvgPeriodLength: models.DefaultPeriodLength,
		Regularity:      RegularityUnknown,
		CycleLengths:    []LengthPoint{},
		PeriodLengths:   []LengthPoint{},
	}
	if len(periods) == 0 {
		return result
	}

	recent := make([]models.Period, 0, len(periods))
	recent = append(recent, periods...)
	sort.Slice(recent, func(i, j int) bool {
		return recent[i].StartDate.After(recent[j].StartDate)
	})
	if len(recent) > lookback {
		recent = recent[:lookback]
	}

	gaps := make([]float64, 0, len(recent))
	for i := 0; i+1 < len(recent); i++ {
		gap := DaysBetween(recent[i+1].StartDate, recent[i].StartDate)
		if gap < minPlausibleGapDays || gap > maxPlausibleGapDays {
			continue
		}
		gaps = append(gaps, float64(gap))
		result.CycleLengths = append(result.CycleLengths, LengthPoint{
			Date:   DateOnly(recent[i].StartDate),
			Length: gap,
		})
	}

	periodDays := make([]float64, 0, len(recent))
	for _, period := range recent {
		length := period.PeriodLength()
		if length < 1 || length > maxPlausiblePeriodDays {
			continue
		}
		periodDays = append(periodDays, float64(length))
		result.PeriodLengths = append(result.PeriodLengths, LengthPoint{
			Date:   DateOnly(period.StartDate),
			Length: length,
		})
	}
	if len(periodDays) > 0 {
		mean, _ := stats.Mean(periodDays)
		result.AvgPeriodLength = int(math.Round(mean))
	}

	if len(gaps) == 0 {
		result.MinCycleLength = result.AvgCycleLength
		result.MaxCycleLength = result.AvgCycleLength
		return result
	}

	mean, _ := stats.Mean(gaps)
	result.AvgCycleLength = int(math.Round(mean))

	shortest, _ := stats.Min(gaps)
	longest, _ := stats.Max(gaps)
	result.MinCycleLength = int(shortest)
	result.MaxCycleLength = int(longest)

	deviation, _ := stats.StandardDeviation(gaps)
	result.Regularity = classifyRegularity(deviation)

	return result
}

// classifyRegularity maps the population standard deviation of the usable
// gap set onto the regularity scale.
func classifyRegularity(deviation float64) Regularity {
	switch {
	case deviation <= 5:
		return RegularityRegular
	case deviation <= 10:
		return RegularitySlightlyIrregular
	case deviation <= 20:
		return RegularitySomewhatIrregular
	default:
		return RegularityHighlyIrregular
	}
}
