package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	periods := api.Group("/periods", handler.AuthRequired)
	periods.Get("", handler.ListPeriods)
	periods.Post("", handler.CreatePeriod)
	periods.Put("/:id", handler.UpdatePeriod)
	periods.Delete("/:id", handler.DeletePeriod)

	logs := api.Group("/logs", handler.AuthRequired)
	logs.Get("/symptoms", handler.GetSymptomLogs)
	logs.Post("/symptoms/:date", handler.UpsertSymptomLog)
	logs.Delete("/symptoms/:date", handler.DeleteSymptomLog)
	logs.Get("/moods", handler.GetMoodLogs)
	logs.Post("/moods/:date", handler.UpsertMoodLog)
	logs.Delete("/moods/:date", handler.DeleteMoodLog)

	api.Get("/predictions", handler.AuthRequired, handler.GetPredictions)
	api.Get("/stats", handler.AuthRequired, handler.GetStats)
	api.Get("/phase", handler.AuthRequired, handler.GetPhase)
	api.Get("/wellness", handler.AuthRequired, handler.GetWellness)
	api.Get("/calendar", handler.AuthRequired, handler.GetCalendar)

	export := api.Group("/export", handler.AuthRequired)
	export.Get("/summary", handler.ExportSummary)
	export.Get("/json", handler.ExportJSON)
	export.Get("/csv", handler.ExportCSV)

	settings := api.Group("/settings", handler.AuthRequired)
	settings.Put("/cycle", handler.UpdateCycleSettings)
}
