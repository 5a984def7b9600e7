package http

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/spec-kit/talent-bridge/internal/api/http/handlers"
	"github.com/spec-kit/talent-bridge/internal/auth"
	"github.com/spec-kit/talent-bridge/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Pool           *handlers.PoolHandler
	Pipeline       *handlers.PipelineHandler
	Consents       *handlers.ConsentsHandler
	Quotes         *handlers.QuotesHandler
	Interviews     *handlers.InterviewsHandler
	Staff          *handlers.StaffHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/password/change", cfg.AuthMiddleware.Handle, auth.RequireAnyRole(), cfg.Auth.ChangePassword)

	pool := app.Group("/pool", cfg.AuthMiddleware.Handle)
	pool.Get("/candidates", auth.RequireAnyRole(), cfg.Pool.ListCandidates)
	pool.Get("/candidates/:id", auth.RequireAnyRole(), cfg.Pool.GetCandidate)
	pool.Put("/me/profile", auth.RequireRole(domain.RoleCandidate), cfg.Pool.UpdateProfile)
	pool.Get("/me/exposure", auth.RequireRole(domain.RoleCandidate), cfg.Pool.GetExposure)
	pool.Post("/me/documents", auth.RequireRole(domain.RoleCandidate), cfg.Pool.AddDocument)
	pool.Get("/me/documents", auth.RequireRole(domain.RoleCandidate), cfg.Pool.ListDocuments)

	pipeline := app.Group("/pipeline", cfg.AuthMiddleware.Handle)
	pipeline.Get("/all", auth.RequireStaff(), cfg.Pipeline.ListAll)
	pipeline.Put("/", auth.RequireRole(domain.RoleEmployer), cfg.Pipeline.UpsertStatus)
	pipeline.Get("/", auth.RequireRole(domain.RoleEmployer), cfg.Pipeline.ListMine)

	consents := app.Group("/consents", cfg.AuthMiddleware.Handle)
	consents.Post("/", auth.RequireRole(domain.RoleEmployer), cfg.Consents.Create)
	consents.Get("/outgoing", auth.RequireRole(domain.RoleEmployer), cfg.Consents.ListOutgoing)
	consents.Get("/incoming", auth.RequireRole(domain.RoleCandidate), cfg.Consents.ListIncoming)
	consents.Post("/:id/respond", auth.RequireRole(domain.RoleCandidate), cfg.Consents.Respond)

	quotes := app.Group("/quotes", cfg.AuthMiddleware.Handle)
	quotes.Get("/all", auth.RequireStaff(), cfg.Quotes.ListAll)
	quotes.Post("/", auth.RequireRole(domain.RoleEmployer), cfg.Quotes.Create)
	quotes.Get("/", auth.RequireRole(domain.RoleEmployer), cfg.Quotes.ListMine)
	quotes.Post("/:id/resolve", auth.RequireStaff(), cfg.Quotes.Resolve)
	quotes.Post("/:id/select", auth.RequireRole(domain.RoleEmployer), cfg.Quotes.SelectOption)

	interviews := app.Group("/interviews", cfg.AuthMiddleware.Handle)
	interviews.Get("/all", auth.RequireStaff(), cfg.Interviews.ListAll)
	interviews.Post("/", auth.RequireRole(domain.RoleEmployer, domain.RoleStaff, domain.RoleAdmin), cfg.Interviews.Schedule)
	interviews.Get("/", auth.RequireAnyRole(), cfg.Interviews.ListMine)
	interviews.Get("/:id", auth.RequireAnyRole(), cfg.Interviews.GetOne)
	interviews.Post("/:id/slots/:slotID/respond", auth.RequireAnyRole(), cfg.Interviews.RespondToSlot)
	interviews.Post("/:id/cancel", auth.RequireAnyRole(), cfg.Interviews.Cancel)
	interviews.Post("/:id/complete", auth.RequireAnyRole(), cfg.Interviews.Complete)

	staff := app.Group("/staff", cfg.AuthMiddleware.Handle, auth.RequireStaff())
	staff.Post("/accounts/:id/verification", cfg.Staff.SetVerification)
	staff.Post("/documents/:id/verify", cfg.Staff.VerifyDocument)
	staff.Get("/candidates/:id/documents", cfg.Staff.ListCandidateDocuments)
}
