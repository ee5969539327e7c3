package models

import (
	"math"
	"time"
)

const (
	FlowSpotting = "spotting"
	FlowLight    = "light"
	FlowMedium   = "medium"
	FlowHeavy    = "heavy"
)

// Period is one logged bleed. Predicted periods are never persisted; they
// exist only as cycle.PredictedCycle values computed on demand.
type Period struct {
	ID        uint       `gorm:"primaryKey"`
	UserID    uint       `gorm:"not null;uniqueIndex:uidx_user_period_start"`
	StartDate time.Time  `gorm:"type:date;not null;uniqueIndex:uidx_user_period_start"`
	EndDate   *time.Time `gorm:"type:date"`
	Flow      string     `gorm:"not null;default:medium"`
	PainLevel *int
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PeriodLength derives (end - start) + 1 in whole days, or 0 while the
// period is still open. Rounding absorbs the 23h/25h midnight distances
// around DST transitions.
func (period Period) PeriodLength() int {
	if period.EndDate == nil {
		return 0
	}
	return int(math.Round(period.EndDate.Sub(period.StartDate).Hours()/24)) + 1
}

func IsValidFlow(flow string) bool {
	switch flow {
	case FlowSpotting, FlowLight, FlowMedium, FlowHeavy:
		return true
	}
	return false
}
