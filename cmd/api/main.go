package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/jhoicas/Empleos-api/internal/application/analytics"
	"github.com/jhoicas/Empleos-api/internal/application/applications"
	"github.com/jhoicas/Empleos-api/internal/application/auth"
	"github.com/jhoicas/Empleos-api/internal/application/ports"
	"github.com/jhoicas/Empleos-api/internal/application/usecase"
	"github.com/jhoicas/Empleos-api/internal/domain/repository"
	"github.com/jhoicas/Empleos-api/internal/infrastructure/feed"
	"github.com/jhoicas/Empleos-api/internal/infrastructure/memory"
	"github.com/jhoicas/Empleos-api/internal/infrastructure/migrations"
	"github.com/jhoicas/Empleos-api/internal/infrastructure/notify"
	infrapdf "github.com/jhoicas/Empleos-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Empleos-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Empleos-api/internal/infrastructure/resume"
	"github.com/jhoicas/Empleos-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/Empleos-api/internal/interfaces/http"
	"github.com/jhoicas/Empleos-api/pkg/config"
	"github.com/jhoicas/Empleos-api/pkg/logger"
)

// mediaPrefix ruta pública de las hojas de vida cuando el storage es local.
const mediaPrefix = "/media"

type repos struct {
	users        repository.UserRepository
	categories   repository.CategoryRepository
	jobs         repository.JobRepository
	applications repository.ApplicationRepository
	analytics    repository.AnalyticsRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio")
	}

	ctx := context.Background()
	var r repos
	switch cfg.DB.Driver {
	case "memory":
		log.Warn().Msg("usando repositorios en memoria: los datos se pierden al reiniciar")
		store := memory.NewStore()
		r = repos{store.Users(), store.Categories(), store.Jobs(), store.Applications(), store.Analytics()}
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if cfg.DB.AutoMigrate {
			if err := migrations.UpFromPool(ctx, pool); err != nil {
				log.Fatal().Err(err).Msg("migraciones")
			}
			log.Info().Msg("migraciones aplicadas")
		}
		pg := postgres.NewRepositories(pool)
		r = repos{pg.Users, pg.Categories, pg.Jobs, pg.Applications, pg.Analytics}
	}

	var files ports.FileStorage
	localDir := ""
	switch cfg.Storage.Driver {
	case "s3":
		s3Storage, err := storage.NewS3Storage(ctx, cfg.Storage)
		if err != nil {
			log.Fatal().Err(err).Msg("storage S3")
		}
		files = s3Storage
	default:
		local, err := storage.NewLocalStorage(cfg.Storage.LocalDir, mediaPrefix)
		if err != nil {
			log.Fatal().Err(err).Msg("storage local")
		}
		files, localDir = local, local.Root()
	}

	var notifier ports.Notifier = notify.NewLogNotifier(log)
	if cfg.Mail.SMTPHost != "" {
		notifier = notify.NewSMTPNotifier(cfg.Mail)
	}

	authUC := auth.NewAuthUseCase(r.users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	searchUC := usecase.NewSearchUseCase(r.jobs, r.categories)
	jobUC := usecase.NewJobUseCase(r.jobs, r.categories, r.applications, r.users,
		feed.NewRSSRenderer(cfg.App.Name, cfg.App.BaseURL))
	userUC := usecase.NewUserUseCase(r.users)
	companyUC := usecase.NewCompanyUseCase(r.users, r.jobs)
	applicationsUC := applications.NewUseCase(applications.Deps{
		Jobs:         r.jobs,
		Applications: r.applications,
		Users:        r.users,
		Storage:      files,
		Extractor:    resume.NewPDFExtractor(log),
		Notifier:     notifier,
		Reports:      infrapdf.NewMarotoReportGenerator(),
		Log:          log,
	})
	statsUC := appanalytics.NewStatsUseCase(r.analytics)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.HTTP.BodyLimit(),
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Empleos API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	if localDir != "" {
		app.Static(mediaPrefix, localDir)
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		SearchUC:       searchUC,
		JobUC:          jobUC,
		UserUC:         userUC,
		CompanyUC:      companyUC,
		ApplicationsUC: applicationsUC,
		StatsUC:        statsUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
