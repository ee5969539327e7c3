package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyra/internal/services"
)

type fertileWindowResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type predictionResponse struct {
	PeriodStart   string                `json:"periodStart"`
	PeriodEnd     string                `json:"periodEnd"`
	OvulationDate string                `json:"ovulationDate"`
	FertileWindow fertileWindowResponse `json:"fertileWindow"`
}

type predictionsResponse struct {
	Status              string               `json:"status"`
	LastPeriodDate      string               `json:"lastPeriodDate,omitempty"`
	AverageCycleLength  int                  `json:"averageCycleLength"`
	AveragePeriodLength int                  `json:"averagePeriodLength"`
	CurrentCycleDay     int                  `json:"currentCycleDay"`
	Predictions         []predictionResponse `json:"predictions"`
}

func buildPredictionsResponse(overview services.CycleOverview) predictionsResponse {
	response := predictionsResponse{
		Status:              overview.Status,
		LastPeriodDate:      formatDay(overview.LastPeriodStart),
		AverageCycleLength:  overview.CycleLength,
		AveragePeriodLength: overview.PeriodLength,
		CurrentCycleDay:     overview.CurrentCycleDay,
		Predictions:         make([]predictionResponse, 0, len(overview.Predictions)),
	}
	for _, predicted := range overview.Predictions {
		response.Predictions = append(response.Predictions, predictionResponse{
			PeriodStart:   formatDay(predicted.PeriodStart),
			PeriodEnd:     formatDay(predicted.PeriodEnd),
			OvulationDate: formatDay(predicted.OvulationDate),
			FertileWindow: fertileWindowResponse{
				Start: formatDay(predicted.FertileWindow.Start),
				End:   formatDay(predicted.FertileWindow.End),
			},
		})
	}
	return response
}

func (handler *Handler) GetPredictions(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	overview, err := handler.cycles.BuildOverview(user, handler.today())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build predictions")
	}
	return c.JSON(buildPredictionsResponse(overview))
}

func (handler *Handler) GetStats(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	overview, err := handler.cycles.BuildOverview(user, handler.today())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build stats")
	}
	return c.JSON(overview.Statistics)
}

func (handler *Handler) GetPhase(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	date := handler.today()
	if requested, err := handler.parseDayQuery(c, "date"); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	} else if requested != nil {
		date = services.DateAtLocation(*requested, handler.location)
	}

	phase, err := handler.cycles.PhaseFor(user, date)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to classify phase")
	}
	return c.JSON(fiber.Map{
		"date":       formatDay(date),
		"phase":      phase.Phase,
		"cycle_day":  phase.CycleDay,
		"descriptor": phase.Descriptor,
	})
}

func (handler *Handler) GetWellness(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	windowDays := services.NormalizeReportingWindow(c.QueryInt("window", services.DefaultReportingWindowDays))
	report, err := handler.wellness.BuildReport(user, windowDays, handler.today())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build wellness report")
	}
	return c.JSON(report)
}
