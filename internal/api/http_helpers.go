package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyra/internal/models"
)

const dayLayout = "2006-01-02"

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals("currentUser").(*models.User)
	return user, ok && user != nil
}

func (handler *Handler) parseDayParam(c *fiber.Ctx, name string) (time.Time, error) {
	return time.ParseInLocation(dayLayout, c.Params(name), handler.location)
}

func (handler *Handler) parseDayQuery(c *fiber.Ctx, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.ParseInLocation(dayLayout, raw, handler.location)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func formatDay(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.Format(dayLayout)
}

func formatOptionalDay(value *time.Time) string {
	if value == nil {
		return ""
	}
	return formatDay(*value)
}
