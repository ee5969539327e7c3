package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyra/internal/models"
	"github.com/terraincognita07/cyra/internal/services"
)

type symptomLogPayload struct {
	Symptoms  []string `json:"symptoms" form:"symptoms"`
	Intensity string   `json:"intensity" form:"intensity"`
	PainLevel int      `json:"pain_level" form:"pain_level"`
}

type moodLogPayload struct {
	Mood         string  `json:"mood" form:"mood"`
	Intensity    int     `json:"intensity" form:"intensity"`
	EnergyLevel  int     `json:"energy_level" form:"energy_level"`
	SleepQuality *int    `json:"sleep_quality" form:"sleep_quality"`
	SleepHours   float64 `json:"sleep_hours" form:"sleep_hours"`
	StressLevel  *int    `json:"stress_level" form:"stress_level"`
}

func (handler *Handler) GetSymptomLogs(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	from, err := handler.parseDayQuery(c, "from")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid from date")
	}
	to, err := handler.parseDayQuery(c, "to")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid to date")
	}

	logs, err := handler.repos.SymptomLogs.ListByUserRange(user.ID, from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch symptom logs")
	}
	return c.JSON(logs)
}

func (handler *Handler) UpsertSymptomLog(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	date, err := handler.parseDayParam(c, "date")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	payload := symptomLogPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	entry, err := handler.logs.UpsertSymptomLog(user.ID, date, services.SymptomLogInput{
		Symptoms:  payload.Symptoms,
		Intensity: payload.Intensity,
		PainLevel: payload.PainLevel,
	})
	if errors.Is(err, services.ErrInvalidIntensity) || errors.Is(err, services.ErrUnknownSymptom) {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save symptom log")
	}
	return c.JSON(entry)
}

func (handler *Handler) DeleteSymptomLog(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	date, err := handler.parseDayParam(c, "date")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	if err := handler.logs.DeleteSymptomLog(user.ID, date); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete symptom log")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) GetMoodLogs(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	from, err := handler.parseDayQuery(c, "from")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid from date")
	}
	to, err := handler.parseDayQuery(c, "to")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid to date")
	}

	logs, err := handler.repos.MoodLogs.ListByUserRange(user.ID, from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch mood logs")
	}
	return c.JSON(logs)
}

func (handler *Handler) UpsertMoodLog(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	date, err := handler.parseDayParam(c, "date")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	payload := moodLogPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	entry, err := handler.logs.UpsertMoodLog(user.ID, date, services.MoodLogInput{
		Mood:         models.Mood(payload.Mood),
		Intensity:    payload.Intensity,
		EnergyLevel:  payload.EnergyLevel,
		SleepQuality: payload.SleepQuality,
		SleepHours:   payload.SleepHours,
		StressLevel:  payload.StressLevel,
	})
	if errors.Is(err, services.ErrInvalidMood) {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save mood log")
	}
	return c.JSON(entry)
}

func (handler *Handler) DeleteMoodLog(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	date, err := handler.parseDayParam(c, "date")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	if err := handler.logs.DeleteMoodLog(user.ID, date); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete mood log")
	}
	return c.JSON(fiber.Map{"ok": true})
}
