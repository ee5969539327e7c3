package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyra/internal/services"
)

const monthLayout = "2006-01"

func (handler *Handler) GetCalendar(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	now := handler.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, handler.location)
	if raw := c.Query("month"); raw != "" {
		parsed, err := time.ParseInLocation(monthLayout, raw, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid month, expected YYYY-MM")
		}
		monthStart = parsed
	}

	overview, err := handler.cycles.BuildOverview(user, handler.today())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build calendar")
	}

	// Pad the log fetch a week either side so grid cells from neighboring
	// months still show their data dots.
	gridFrom := monthStart.AddDate(0, 0, -7)
	gridTo := monthStart.AddDate(0, 1, 7)
	symptomLogs, err := handler.repos.SymptomLogs.ListByUserRange(user.ID, &gridFrom, &gridTo)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build calendar")
	}
	moodLogs, err := handler.repos.MoodLogs.ListByUserRange(user.ID, &gridFrom, &gridTo)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build calendar")
	}

	days := services.BuildCalendarDayStates(monthStart, overview, symptomLogs, moodLogs, now, handler.location)
	return c.JSON(fiber.Map{
		"month": monthStart.Format(monthLayout),
		"days":  days,
	})
}
