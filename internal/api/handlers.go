package api

import (
	"time"

	"github.com/terraincognita07/cyra/internal/db"
	"github.com/terraincognita07/cyra/internal/services"
	"gorm.io/gorm"
)

const (
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour

	authCookieName = "cyra_session"
)

type Handler struct {
	secretKey    []byte
	location     *time.Location
	cookieSecure bool

	repos    *db.Repositories
	auth     *services.AuthService
	cycles   *services.CycleService
	wellness *services.WellnessService
	logs     *services.LogService
	export   *services.ExportService
}

func NewHandler(database *gorm.DB, secret string, location *time.Location, cookieSecure bool) *Handler {
	if location == nil {
		location = time.UTC
	}

	repos := db.NewRepositories(database)
	return &Handler{
		secretKey:    []byte(secret),
		location:     location,
		cookieSecure: cookieSecure,
		repos:        repos,
		auth:         services.NewAuthService(repos.Users),
		cycles:       services.NewCycleService(repos.Periods),
		wellness:     services.NewWellnessService(repos.Periods, repos.SymptomLogs, repos.MoodLogs),
		logs:         services.NewLogService(repos.Periods, repos.SymptomLogs, repos.MoodLogs, repos.Users, location),
		export:       services.NewExportService(repos.Periods, repos.SymptomLogs, repos.MoodLogs, location),
	}
}

func (handler *Handler) now() time.Time {
	return time.Now().In(handler.location)
}

func (handler *Handler) today() time.Time {
	return services.DateAtLocation(handler.now(), handler.location)
}
