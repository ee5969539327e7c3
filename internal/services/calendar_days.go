package services

import (
	"time"

	"github.com/terraincognita07/cyra/internal/cycle"
	"github.com/terraincognita07/cyra/internal/models"
)

type CalendarDayState struct {
	Date        time.Time `json:"date"`
	DateString  string    `json:"date_string"`
	Day         int       `json:"day"`
	InMonth     bool      `json:"in_month"`
	IsToday     bool      `json:"is_today"`
	IsPeriod    bool      `json:"is_period"`
	IsPredicted bool      `json:"is_predicted"`
	IsFertile   bool      `json:"is_fertile"`
	IsOvulation bool      `json:"is_ovulation"`
	IsPMS       bool      `json:"is_pms"`
	HasData     bool      `json:"has_data"`
}

const calendarPMSLeadDays = 7

// BuildCalendarDayStates paints one month grid (padded to whole weeks) with
// logged periods, the forecast's predicted periods, fertile windows,
// ovulation days, and the PMS stretch before each predicted start. Marker
// precedence follows cycle.ResolveDayFlags.
func BuildCalendarDayStates(monthStart time.Time, overview CycleOverview, symptomLogs []models.SymptomLog, moodLogs []models.MoodLog, now time.Time, location *time.Location) []CalendarDayState {
	monthStart = DateAtLocation(monthStart, location)
	monthEnd := monthStart.AddDate(0, 1, -1)
	gridStart := monthStart.AddDate(0, 0, -int(monthStart.Weekday()))
	gridEnd := monthEnd.AddDate(0, 0, 6-int(monthEnd.Weekday()))

	periodMap := make(map[string]bool)
	for _, period := range overview.Periods {
		start := DateAtLocation(period.StartDate, location)
		end := start
		if period.EndDate != nil {
			end = DateAtLocation(*period.EndDate, location)
		}
		for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
			periodMap[day.Format("2006-01-02")] = true
		}
	}

	predictedMap := make(map[string]bool)
	fertileMap := make(map[string]bool)
	ovulationMap := make(map[string]bool)
	pmsMap := make(map[string]bool)
	for _, predicted := range overview.Predictions {
		for day := predicted.PeriodStart; !day.After(predicted.PeriodEnd); day = day.AddDate(0, 0, 1) {
			predictedMap[day.Format("2006-01-02")] = true
		}
		ovulationMap[predicted.OvulationDate.Format("2006-01-02")] = true
		for day := predicted.FertileWindow.Start; !day.After(predicted.FertileWindow.End); day = day.AddDate(0, 0, 1) {
			fertileMap[day.Format("2006-01-02")] = true
		}
		for offset := 1; offset <= calendarPMSLeadDays; offset++ {
			day := cycle.AddDays(predicted.PeriodStart, -offset)
			pmsMap[day.Format("2006-01-02")] = true
		}
	}

	hasDataMap := make(map[string]bool)
	for _, logEntry := range symptomLogs {
		hasDataMap[DateAtLocation(logEntry.Date, location).Format("2006-01-02")] = true
	}
	for _, logEntry := range moodLogs {
		hasDataMap[DateAtLocation(logEntry.Date, location).Format("2006-01-02")] = true
	}

	today := DateAtLocation(now, location)

	days := make([]CalendarDayState, 0, 42)
	for day := gridStart; !day.After(gridEnd); day = day.AddDate(0, 0, 1) {
		key := day.Format("2006-01-02")

		flags := cycle.ResolveDayFlags(cycle.DayFlags{
			Period:    periodMap[key],
			Predicted: predictedMap[key],
			Fertile:   fertileMap[key],
			Ovulation: ovulationMap[key],
			PMS:       pmsMap[key],
		})

		days = append(days, CalendarDayState{
			Date:        day,
			DateString:  key,
			Day:         day.Day(),
			InMonth:     day.Month() == monthStart.Month(),
			IsToday:     cycle.SameDay(day, today),
			IsPeriod:    flags.Period,
			IsPredicted: flags.Predicted,
			IsFertile:   flags.Fertile,
			IsOvulation: flags.Ovulation,
			IsPMS:       flags.PMS,
			HasData:     hasDataMap[key],
		})
	}

	return days
}
