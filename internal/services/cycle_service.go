package services

import (
	"time"

	"github.com/terraincognita07/cyra/internal/cycle"
	"github.com/terraincognita07/cyra/internal/models"
)

const (
	OverviewStatusOK           = "ok"
	OverviewStatusNoPeriodData = "no_period_data"
)

type CyclePeriodReader interface {
	ListByUser(userID uint) ([]models.Period, error)
}

// CycleService wires the period store to the cycle engine. It owns the
// resolution of "effective" inputs: which last start, cycle length, and
// period length the engine should be fed for a given user.
type CycleService struct {
	periods CyclePeriodReader
}

func NewCycleService(periods CyclePeriodReader) *CycleService {
	return &CycleService{periods: periods}
}

type CycleOverview struct {
	Status          string
	LastPeriodStart time.Time
	CycleLength     int
	PeriodLength    int
	CurrentCycleDay int
	Statistics      cycle.Statistics
	Predictions     []cycle.PredictedCycle
	Periods         []models.Period
}

func (service *CycleService) BuildOverview(user *models.User, today time.Time) (CycleOverview, error) {
	periods, err := service.periods.ListByUser(user.ID)
	if err != nil {
		return CycleOverview{}, err
	}
	return ResolveOverview(user, periods, today), nil
}

// ResolveOverview is the pure half of BuildOverview, separated so it can be
// exercised without a store.
func ResolveOverview(user *models.User, periods []models.Period, today time.Time) CycleOverview {
	statistics := cycle.ComputeStatistics(periods, cycle.DefaultLookback)

	overview := CycleOverview{
		Status:          OverviewStatusOK,
		LastPeriodStart: effectiveLastPeriodStart(user, periods),
		CycleLength:     effectiveCycleLength(user, statistics),
		PeriodLength:    effectivePeriodLength(user, statistics),
		Statistics:      statistics,
		Periods:         periods,
	}

	if overview.LastPeriodStart.IsZero() {
		overview.Status = OverviewStatusNoPeriodData
		overview.Predictions = []cycle.PredictedCycle{}
		return overview
	}

	overview.CurrentCycleDay = cycle.CycleDay(overview.LastPeriodStart, overview.CycleLength, today)
	overview.Predictions = cycle.Forecast(
		overview.LastPeriodStart,
		overview.CycleLength,
		overview.PeriodLength,
		cycle.DefaultForecastCycles,
		today,
	)
	return overview
}

func (service *CycleService) PhaseFor(user *models.User, date time.Time) (cycle.PhaseResult, error) {
	overview, err := service.BuildOverview(user, date)
	if err != nil {
		return cycle.PhaseResult{}, err
	}
	return cycle.ClassifyPhase(
		date,
		overview.LastPeriodStart,
		overview.CycleLength,
		overview.PeriodLength,
		overview.Periods,
	), nil
}

// effectiveLastPeriodStart is the max of the profile-stored date and the
// most recent logged start.
func effectiveLastPeriodStart(user *models.User, periods []models.Period) time.Time {
	last := time.Time{}
	if user != nil && user.LastPeriodStart != nil {
		last = cycle.DateOnly(*user.LastPeriodStart)
	}
	for _, period := range periods {
		start := cycle.DateOnly(period.StartDate)
		if start.After(last) {
			last = start
		}
	}
	return last
}

func effectiveCycleLength(user *models.User, statistics cycle.Statistics) int {
	if len(statistics.CycleLengths) > 0 {
		return statistics.AvgCycleLength
	}
	if user != nil && models.IsValidCycleLength(user.CycleLength) {
		return user.CycleLength
	}
	return models.DefaultCycleLength
}

func effectivePeriodLength(user *models.User, statistics cycle.Statistics) int {
	if len(statistics.PeriodLengths) > 0 {
		return statistics.AvgPeriodLength
	}
	if user != nil && models.IsValidPeriodLength(user.PeriodLength) {
		return user.PeriodLength
	}
	return models.DefaultPeriodLength
}
