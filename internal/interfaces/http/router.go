package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Empleos-api/internal/application/analytics"
	"github.com/jhoicas/Empleos-api/internal/application/applications"
	"github.com/jhoicas/Empleos-api/internal/application/auth"
	"github.com/jhoicas/Empleos-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	SearchUC       *usecase.SearchUseCase
	JobUC          *usecase.JobUseCase
	UserUC         *usecase.UserUseCase
	CompanyUC      *usecase.CompanyUseCase
	ApplicationsUC *applications.UseCase
	StatsUC        *appanalytics.StatsUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	searchHandler := NewSearchHandler(deps.SearchUC)
	jobHandler := NewJobHandler(deps.JobUC)
	appHandler := NewApplicationHandler(deps.ApplicationsUC)
	requireAuth := AuthMiddleware(deps.JWTSecret)

	// Público
	app.Get("/", searchHandler.Search)
	app.Get("/feed.xml", jobHandler.Feed)
	app.Get("/job/:slug", OptionalAuth(deps.JWTSecret), jobHandler.Detail)
	app.Post("/job/:slug/apply", requireAuth, appHandler.Apply)

	api := app.Group("/api")
	api.Get("/autocomplete", searchHandler.Autocomplete)
	api.Get("/categories", jobHandler.Categories)

	companyHandler := NewCompanyHandler(deps.CompanyUC)
	api.Get("/companies", companyHandler.List)
	api.Get("/companies/:id", companyHandler.Detail)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Perfil y postulaciones propias (requieren Bearer Token)
	profileHandler := NewProfileHandler(deps.UserUC)
	api.Get("/profile", requireAuth, profileHandler.Get)
	api.Put("/profile", requireAuth, profileHandler.Update)
	api.Get("/my-applications", requireAuth, RequireSeeker(), appHandler.Mine)

	// Empleador
	employer := app.Group("/employer", requireAuth, RequireEmployer())
	employer.Get("/dashboard", jobHandler.Dashboard)
	employer.Post("/jobs", jobHandler.Create)
	employer.Put("/job/:slug", jobHandler.Update)
	employer.Get("/job/:slug/applications", appHandler.ListForJob)
	employer.Get("/job/:slug/applications.pdf", appHandler.Report)
	employer.Get("/stats", NewStatsHandler(deps.StatsUC).GetStats)
}
