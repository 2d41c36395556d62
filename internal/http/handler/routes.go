package handler

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"founderhub/internal/auth"
	"founderhub/internal/http/middleware"
	"founderhub/internal/model"
	"founderhub/internal/service"
	"founderhub/internal/storage"
)

// Services bundles everything the routes need.
type Services struct {
	DB       *sql.DB
	Store    storage.Storage
	Verifier auth.TokenVerifier
	// Gatherer backs /metrics; nil leaves the endpoint out.
	Gatherer prometheus.Gatherer
	// Location is the default time zone for date parameters and the calendar.
	Location *time.Location

	Founders     service.FounderService
	Startups     service.StartupService
	Skills       service.SkillService
	Hobbies      service.HobbyService
	HelpRequests service.HelpRequestService
	Events       service.EventService
	Images       service.ImageService
	Imports      service.ImportService
	Dashboard    service.DashboardService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Everything under /api/v1 requires a bearer token; writes to shared
// resources additionally require the admin role.
func RegisterRoutes(app *fiber.App, s Services) {
	loc := s.Location
	if loc == nil {
		loc = time.UTC
	}

	app.Get("/health", HealthCheck(s.DB, s.Store))
	app.Get("/healthz", LivenessProbe())
	if s.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{})))
	}

	api := app.Group("/api/v1", middleware.Authenticate(s.Verifier))
	admin := middleware.RequireAdmin()

	api.Get("/me", Me(s.Founders))

	founders := api.Group("/founders")
	founders.Get("/", ListFounders(s.Founders, loc))
	founders.Get("/:id", GetFounder(s.Founders))
	founders.Post("/", admin, CreateFounder(s.Founders))
	// Admin or the founder themself; the service decides.
	founders.Put("/:id", UpdateFounder(s.Founders))
	founders.Patch("/:id/visibility", admin, SetFounderVisibility(s.Founders))
	founders.Delete("/:id", admin, DeleteFounder(s.Founders))

	startups := api.Group("/startups")
	startups.Get("/", ListStartups(s.Startups, loc))
	startups.Get("/:id", GetStartup(s.Startups))
	startups.Post("/", admin, CreateStartup(s.Startups))
	startups.Put("/:id", admin, UpdateStartup(s.Startups))
	startups.Patch("/:id/visibility", admin, SetStartupVisibility(s.Startups))
	startups.Delete("/:id", admin, DeleteStartup(s.Startups))

	registerCatalogue[model.Skill, model.SkillInput](api.Group("/skills"), s.Skills, loc, admin)
	registerCatalogue[model.Hobby, model.HobbyInput](api.Group("/hobbies"), s.Hobbies, loc, admin)

	help := api.Group("/help-requests")
	help.Get("/", ListHelpRequests(s.HelpRequests, loc))
	help.Post("/", CreateHelpRequest(s.HelpRequests))
	help.Get("/:id", GetHelpRequest(s.HelpRequests))
	help.Put("/:id", UpdateHelpRequest(s.HelpRequests))
	help.Patch("/:id/status", SetHelpRequestStatus(s.HelpRequests))
	help.Delete("/:id", admin, DeleteHelpRequest(s.HelpRequests))

	events := api.Group("/events")
	events.Get("/", ListEvents(s.Events, loc))
	// Registered before /:id so the literal paths win.
	events.Get("/calendar", EventCalendar(s.Events, loc))
	events.Get("/agenda", EventAgenda(s.Events, loc))
	events.Get("/:id", GetEvent(s.Events))
	events.Post("/", admin, CreateEvent(s.Events))
	events.Put("/:id", admin, UpdateEvent(s.Events))
	events.Delete("/:id", admin, DeleteEvent(s.Events))

	api.Post("/images", UploadImage(s.Images))

	adm := api.Group("/admin", admin)
	adm.Post("/import/:kind", ImportCSV(s.Imports))
	adm.Get("/dashboard", AdminDashboard(s.Dashboard))
}
