package api

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyra/internal/models"
	"github.com/terraincognita07/cyra/internal/services"
)

type periodPayload struct {
	StartDate string `json:"start_date" form:"start_date"`
	EndDate   string `json:"end_date" form:"end_date"`
	Flow      string `json:"flow" form:"flow"`
	PainLevel *int   `json:"pain_level" form:"pain_level"`
	Notes     string `json:"notes" form:"notes"`
}

type periodResponse struct {
	ID        uint   `json:"id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date,omitempty"`
	Flow      string `json:"flow"`
	PainLevel *int   `json:"pain_level,omitempty"`
	Notes     string `json:"notes,omitempty"`
	Length    int    `json:"length,omitempty"`
}

func buildPeriodResponse(period models.Period) periodResponse {
	return periodResponse{
		ID:        period.ID,
		StartDate: formatDay(period.StartDate),
		EndDate:   formatOptionalDay(period.EndDate),
		Flow:      period.Flow,
		PainLevel: period.PainLevel,
		Notes:     period.Notes,
		Length:    period.PeriodLength(),
	}
}

func (handler *Handler) ListPeriods(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	periods, err := handler.repos.Periods.ListByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch periods")
	}

	response := make([]periodResponse, 0, len(periods))
	for _, period := range periods {
		response = append(response, buildPeriodResponse(period))
	}
	return c.JSON(response)
}

func (handler *Handler) parsePeriodPayload(c *fiber.Ctx) (services.PeriodInput, error) {
	payload := periodPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return services.PeriodInput{}, errors.New("invalid input")
	}

	start, err := time.ParseInLocation(dayLayout, payload.StartDate, handler.location)
	if err != nil {
		return services.PeriodInput{}, errors.New("invalid start_date")
	}

	input := services.PeriodInput{
		StartDate: start,
		Flow:      payload.Flow,
		PainLevel: payload.PainLevel,
		Notes:     payload.Notes,
	}
	if payload.EndDate != "" {
		end, err := time.ParseInLocation(dayLayout, payload.EndDate, handler.location)
		if err != nil {
			return services.PeriodInput{}, errors.New("invalid end_date")
		}
		input.EndDate = &end
	}
	return input, nil
}

func (handler *Handler) CreatePeriod(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input, err := handler.parsePeriodPayload(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	period, err := handler.logs.LogPeriod(user, input)
	switch {
	case errors.Is(err, services.ErrInvalidPeriodRange), errors.Is(err, services.ErrInvalidFlow):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "failed to save period")
	}
	return c.Status(fiber.StatusCreated).JSON(buildPeriodResponse(period))
}

func (handler *Handler) UpdatePeriod(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	periodID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid period id")
	}

	input, err := handler.parsePeriodPayload(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	period, err := handler.logs.UpdatePeriod(user, uint(periodID), input)
	switch {
	case errors.Is(err, services.ErrPeriodNotFound):
		return apiError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrInvalidPeriodRange), errors.Is(err, services.ErrInvalidFlow):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "failed to save period")
	}
	return c.JSON(buildPeriodResponse(period))
}

func (handler *Handler) DeletePeriod(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	periodID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid period id")
	}

	if err := handler.logs.DeletePeriod(user.ID, uint(periodID)); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete period")
	}
	return c.JSON(fiber.Map{"ok": true})
}
