package cycle

import (
	"time"

	"github.com/terraincognita07/cyra/internal/models"
)

type Phase string

const (
	PhaseMenstrual  Phase = "menstrual"
	PhaseFollicular Phase = "follicular"
	PhaseOvulation  Phase = "ovulation"
	PhaseLuteal     Phase = "luteal"
	PhaseUnknown    Phase = "unknown"
)

// Days before the next predicted start that classify as the luteal/PMS
// stretch.
const pmsLeadDays = 7

type PhaseDescriptor struct {
	Phase       Phase    `json:"phase"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	CareTips    []string `json:"care_tips"`
}

type PhaseResult struct {
	Phase      Phase           `json:"phase"`
	CycleDay   int             `json:"cycle_day"`
	Descriptor PhaseDescriptor `json:"descriptor"`
}

// ClassifyPhase places today inside the current cycle. The classification
// works from the projected start of the cycle containing today, so it stays
// meaningful when the user is overdue. A day inside a logged period's
// explicit start/end range always classifies menstrual, even past the
// average period length.
func ClassifyPhase(today time.Time, lastPeriodStart time.Time, cycleLength int, periodLength int, periods []models.Period) PhaseResult {
	result := PhaseResult{Phase: PhaseUnknown, Descriptor: DescriptorFor(PhaseUnknown)}
	if lastPeriodStart.IsZero() || cycleLength <= 0 {
		return result
	}
	if periodLength <= 0 {
		periodLength = models.DefaultPeriodLength
	}

	today = DateOnly(today)
	result.CycleDay = CycleDay(lastPeriodStart, cycleLength, today)
	result.Phase = classify(today, lastPeriodStart, cycleLength, periodLength, periods)
	result.Descriptor = DescriptorFor(result.Phase)
	return result
}

func classify(today time.Time, lastPeriodStart time.Time, cycleLength int, periodLength int, periods []models.Period) Phase {
	for _, period := range periods {
		start := DateOnly(period.StartDate)
		end := start
		if period.EndDate != nil {
			end = DateOnly(*period.EndDate)
		}
		if betweenInclusive(today, start, end) {
			return PhaseMenstrual
		}
	}

	cycleStart := currentCycleStart(lastPeriodStart, cycleLength, today)
	if betweenInclusive(today, cycleStart, AddDays(cycleStart, periodLength-1)) {
		return PhaseMenstrual
	}

	nextStart := AddDays(cycleStart, cycleLength)
	window := FertileWindowFor(nextStart)
	if window.Contains(today) {
		return PhaseOvulation
	}

	if today.After(window.End) && DaysBetween(today, nextStart) <= pmsLeadDays {
		return PhaseLuteal
	}

	return PhaseFollicular
}

// currentCycleStart projects the last known start forward by whole cycles to
// the cycle containing today.
func currentCycleStart(lastPeriodStart time.Time, cycleLength int, today time.Time) time.Time {
	start := DateOnly(lastPeriodStart)
	if today.Before(start) {
		return start
	}
	elapsed := DaysBetween(start, today)
	return AddDays(start, (elapsed/cycleLength)*cycleLength)
}

// DescriptorFor returns the static display content for a phase. Content
// only; the classification above is the contract.
func DescriptorFor(phase Phase) PhaseDescriptor {
	switch phase {
	case PhaseMenstrual:
		return PhaseDescriptor{
			Phase:       PhaseMenstrual,
			Name:        "Menstrual",
			Description: "Your period is here. Hormone levels are at their lowest and energy often dips.",
			CareTips: []string{
				"Rest when your body asks for it",
				"Warmth helps with cramps",
				"Keep iron-rich foods on the menu",
			},
		}
	case PhaseFollicular:
		return PhaseDescriptor{
			Phase:       PhaseFollicular,
			Name:        "Follicular",
			Description: "Estrogen is rising and with it energy, focus, and mood.",
			CareTips: []string{
				"Good window for demanding workouts",
				"Plan projects that need fresh energy",
			},
		}
	case PhaseOvulation:
		return PhaseDescriptor{
			Phase:       PhaseOvulation,
			Name:        "Ovulation",
			Description: "The fertile window. Conception is most likely in these days.",
			CareTips: []string{
				"Track cervical changes if you chart fertility",
				"Stay hydrated",
			},
		}
	case PhaseLuteal:
		return PhaseDescriptor{
			Phase:       PhaseLuteal,
			Name:        "Luteal",
			Description: "Progesterone dominates. PMS symptoms can appear in the last days before the next period.",
			CareTips: []string{
				"Prioritize sleep",
				"Gentle movement over intensity",
				"Cut back on caffeine if breasts feel tender",
			},
		}
	default:
		return PhaseDescriptor{
			Phase:       PhaseUnknown,
			Name:        "Unknown",
			Description: "Not enough data to place this day in a cycle. Log a period start to begin.",
			CareTips:    []string{"Log your next period to unlock phase tracking"},
		}
	}
}
