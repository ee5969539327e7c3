package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyra/internal/services"
)

type cycleSettingsInput struct {
	CycleLength     int    `json:"cycle_length" form:"cycle_length"`
	PeriodLength    int    `json:"period_length" form:"period_length"`
	LastPeriodStart string `json:"last_period_start" form:"last_period_start"`
}

func (handler *Handler) UpdateCycleSettings(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := cycleSettingsInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	if err := services.ValidateCycleSettings(input.CycleLength, input.PeriodLength); err != nil {
		if errors.Is(err, services.ErrCycleLengthOutOfRange) || errors.Is(err, services.ErrPeriodLengthOutOfRange) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to update settings")
	}

	user.CycleLength = input.CycleLength
	user.PeriodLength = input.PeriodLength
	if input.LastPeriodStart != "" {
		parsed, err := time.ParseInLocation(dayLayout, input.LastPeriodStart, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid last_period_start")
		}
		user.LastPeriodStart = &parsed
	}

	if err := handler.repos.Users.Save(user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update settings")
	}

	return c.JSON(fiber.Map{
		"cycle_length":      user.CycleLength,
		"period_length":     user.PeriodLength,
		"last_period_start": formatOptionalDay(user.LastPeriodStart),
	})
}
