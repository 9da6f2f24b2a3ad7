// seed carga datos de demostración: categorías, un empleador y ofertas de ejemplo.
// Es idempotente: lo que ya existe (por slug, username o título) no se vuelve a crear.
//
// Uso: go run ./cmd/seed
// Lee la misma configuración que cmd/api (DATABASE_URL, DB_*, DB_AUTO_MIGRATE).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Empleos-api/internal/application/auth"
	"github.com/jhoicas/Empleos-api/internal/application/dto"
	"github.com/jhoicas/Empleos-api/internal/application/usecase"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
	"github.com/jhoicas/Empleos-api/internal/domain/jobs"
	"github.com/jhoicas/Empleos-api/internal/infrastructure/migrations"
	"github.com/jhoicas/Empleos-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Empleos-api/pkg/config"
	"github.com/jhoicas/Empleos-api/pkg/logger"
)

const (
	demoUsername = "demo-empleador"
	demoEmail    = "empleos@demo.local"
	demoPassword = "demo-password"
)

var categories = []struct{ name, description string }{
	{"Development", "Desarrollo de software"},
	{"Design", "Diseño de producto y UX"},
	{"Marketing", "Marketing y crecimiento"},
	{"Sales", "Ventas y desarrollo de negocio"},
	{"Data", "Datos y analítica"},
	{"Operations", "Operaciones y soporte"},
}

type sampleJob struct {
	title, category, location, jobType string
	min, max                           int64
}

var sampleJobs = []sampleJob{
	{"Backend Engineer", "development", "Berlin", "full-time", 60000, 80000},
	{"Frontend Developer", "development", "Remote", "full-time", 50000, 70000},
	{"Product Designer", "design", "Madrid", "contract", 40000, 55000},
	{"Growth Marketer", "marketing", "Barcelona", "part-time", 0, 0},
	{"Data Analyst", "data", "Berlin", "internship", 0, 0},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})
	if err := run(context.Background(), cfg, log); err != nil {
		log.Fatal().Err(err).Msg("seed")
	}
	log.Info().Msg("seed completado")
}

func run(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	defer pool.Close()
	if cfg.DB.AutoMigrate {
		if err := migrations.UpFromPool(ctx, pool); err != nil {
			return err
		}
	}
	r := postgres.NewRepositories(pool)

	for _, c := range categories {
		slug := jobs.Slugify(c.name)
		existing, err := r.Categories.GetBySlug(ctx, slug)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		if err := r.Categories.Create(ctx, &entity.Category{
			ID: uuid.New().String(), Name: c.name, Slug: slug, Description: c.description, CreatedAt: time.Now(),
		}); err != nil {
			return fmt.Errorf("categoría %s: %w", slug, err)
		}
		log.Info().Str("slug", slug).Msg("categoría creada")
	}

	employer, err := r.Users.GetByUsername(ctx, demoUsername)
	if err != nil {
		return err
	}
	employerID := ""
	if employer != nil {
		employerID = employer.ID
	} else {
		authUC := auth.NewAuthUseCase(r.Users, auth.JWTConfig{Secret: cfg.JWT.Secret, Issuer: cfg.JWT.Issuer})
		u, err := authUC.Register(ctx, dto.RegisterRequest{
			Username: demoUsername, Email: demoEmail, Password: demoPassword,
			IsEmployer: true, CompanyName: "Demo Company",
		})
		if err != nil {
			return fmt.Errorf("empleador demo: %w", err)
		}
		employerID = u.ID
		log.Info().Str("username", demoUsername).Msg("empleador demo creado")
	}

	own, err := r.Jobs.ListByEmployer(ctx, employerID)
	if err != nil {
		return err
	}
	titles := make(map[string]bool, len(own))
	for _, j := range own {
		titles[j.Title] = true
	}

	jobUC := usecase.NewJobUseCase(r.Jobs, r.Categories, r.Applications, r.Users, nil)
	for _, s := range sampleJobs {
		if titles[s.title] {
			continue
		}
		in := dto.CreateJobRequest{
			Title:        s.title,
			Description:  fmt.Sprintf("Buscamos %s para unirse al equipo en %s.", s.title, s.location),
			CategorySlug: s.category,
			Location:     s.location,
			JobType:      s.jobType,
		}
		if s.max > 0 {
			min, max := decimal.NewFromInt(s.min), decimal.NewFromInt(s.max)
			in.SalaryMin, in.SalaryMax = &min, &max
		}
		out, err := jobUC.Post(ctx, employerID, in)
		if err != nil {
			return fmt.Errorf("oferta %q: %w", s.title, err)
		}
		log.Info().Str("slug", out.Slug).Msg("oferta creada")
	}
	return nil
}
