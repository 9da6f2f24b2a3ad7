package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Empleos-api/internal/application/dto"
	"github.com/jhoicas/Empleos-api/internal/application/ports"
	"github.com/jhoicas/Empleos-api/internal/domain"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
	"github.com/jhoicas/Empleos-api/internal/domain/jobs"
	"github.com/jhoicas/Empleos-api/internal/domain/repository"
)

// slugAttempts reintentos de inserción cuando otro request toma el mismo slug entre la consulta y el INSERT.
const slugAttempts = 3

// feedSize ofertas incluidas en el feed RSS.
const feedSize = 20

// JobUseCase publicación y gestión de ofertas por parte del empleador, más el detalle público.
type JobUseCase struct {
	jobRepo      repository.JobRepository
	categoryRepo repository.CategoryRepository
	appRepo      repository.ApplicationRepository
	userRepo     repository.UserRepository
	feed         ports.FeedRenderer
	now          func() time.Time
}

// NewJobUseCase construye el caso de uso. feed puede ser nil si no se expone el RSS.
func NewJobUseCase(
	jobRepo repository.JobRepository,
	categoryRepo repository.CategoryRepository,
	appRepo repository.ApplicationRepository,
	userRepo repository.UserRepository,
	feed ports.FeedRenderer,
) *JobUseCase {
	return &JobUseCase{
		jobRepo:      jobRepo,
		categoryRepo: categoryRepo,
		appRepo:      appRepo,
		userRepo:     userRepo,
		feed:         feed,
		now:          time.Now,
	}
}

// Post publica una oferta activa con slug único derivado del título.
func (uc *JobUseCase) Post(ctx context.Context, employerID string, in dto.CreateJobRequest) (*dto.JobResponse, error) {
	employer, err := uc.requireEmployer(ctx, employerID)
	if err != nil {
		return nil, err
	}
	job := &entity.Job{
		ID:         uuid.New().String(),
		EmployerID: employer.ID,
		IsActive:   true,
	}
	if err := uc.apply(ctx, job, in); err != nil {
		return nil, err
	}
	now := uc.now()
	job.CreatedAt, job.UpdatedAt = now, now

	for attempt := 1; ; attempt++ {
		slug, err := jobs.UniqueSlug(ctx, job.Title, uc.jobRepo.SlugExists)
		if err != nil {
			return nil, err
		}
		job.Slug = slug
		err = uc.jobRepo.Create(ctx, job)
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrDuplicate) || attempt == slugAttempts {
			return nil, err
		}
	}

	saved, err := uc.jobRepo.GetBySlug(ctx, job.Slug)
	if err != nil {
		return nil, err
	}
	if saved == nil {
		saved = job
	}
	out := ToJobResponse(saved)
	return &out, nil
}

// Update edita una oferta propia. Una oferta ajena se reporta como inexistente.
func (uc *JobUseCase) Update(ctx context.Context, employerID, slug string, in dto.UpdateJobRequest) (*dto.JobResponse, error) {
	job, err := uc.jobRepo.GetByEmployerAndSlug(ctx, employerID, slug)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, domain.ErrJobNotFound
	}
	if err := uc.apply(ctx, job, in.CreateJobRequest); err != nil {
		return nil, err
	}
	if in.IsActive != nil {
		job.IsActive = *in.IsActive
	}
	job.UpdatedAt = uc.now()
	if err := uc.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}
	updated, err := uc.jobRepo.GetBySlug(ctx, job.Slug)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrJobNotFound
	}
	out := ToJobResponse(updated)
	return &out, nil
}

// Dashboard ofertas del empleador (activas e inactivas) con conteo de postulaciones.
func (uc *JobUseCase) Dashboard(ctx context.Context, employerID string) (*dto.EmployerDashboardResponse, error) {
	list, err := uc.jobRepo.ListByEmployer(ctx, employerID)
	if err != nil {
		return nil, err
	}
	out := &dto.EmployerDashboardResponse{Jobs: make([]dto.EmployerJobResponse, 0, len(list))}
	for _, j := range list {
		out.Jobs = append(out.Jobs, dto.EmployerJobResponse{JobResponse: ToJobResponse(j), ApplicationCount: j.ApplicationCount})
		out.TotalApplications += j.ApplicationCount
		if j.IsActive {
			out.ActiveJobs++
		}
	}
	out.TotalJobs = len(list)
	return out, nil
}

// Detail oferta por slug (también inactivas). viewerID vacío = visitante anónimo.
func (uc *JobUseCase) Detail(ctx context.Context, slug, viewerID string) (*dto.JobDetailResponse, error) {
	job, err := uc.jobRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, domain.ErrJobNotFound
	}
	out := &dto.JobDetailResponse{JobResponse: ToJobResponse(job)}
	if viewerID != "" {
		applied, err := uc.appRepo.Exists(ctx, job.ID, viewerID)
		if err != nil {
			return nil, err
		}
		out.HasApplied = applied
	}
	return out, nil
}

// Categories todas las categorías por nombre.
func (uc *JobUseCase) Categories(ctx context.Context) ([]dto.CategoryResponse, error) {
	cats, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, toCategoryResponse(c))
	}
	return out, nil
}

// Feed RSS de las ofertas activas más recientes.
func (uc *JobUseCase) Feed(ctx context.Context) ([]byte, error) {
	if uc.feed == nil {
		return nil, fmt.Errorf("feed: sin renderer configurado")
	}
	list, _, err := uc.jobRepo.Search(ctx, jobs.Filter{}, feedSize, 0)
	if err != nil {
		return nil, fmt.Errorf("feed: %w", err)
	}
	return uc.feed.RenderJobs(list)
}

func (uc *JobUseCase) requireEmployer(ctx context.Context, userID string) (*entity.User, error) {
	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	if !u.IsEmployer {
		return nil, domain.ErrForbidden
	}
	return u, nil
}

// apply valida la entrada y la vuelca sobre job (sin tocar slug ni dueño).
func (uc *JobUseCase) apply(ctx context.Context, job *entity.Job, in dto.CreateJobRequest) error {
	title := strings.TrimSpace(in.Title)
	location := strings.TrimSpace(in.Location)
	description := strings.TrimSpace(in.Description)
	switch {
	case title == "" || utf8.RuneCountInString(title) > 200:
		return fmt.Errorf("%w: el título es obligatorio (máx. 200 caracteres)", domain.ErrInvalidInput)
	case description == "":
		return fmt.Errorf("%w: la descripción es obligatoria", domain.ErrInvalidInput)
	case location == "" || utf8.RuneCountInString(location) > 100:
		return fmt.Errorf("%w: la ubicación es obligatoria (máx. 100 caracteres)", domain.ErrInvalidInput)
	}

	jobType := entity.JobType(strings.TrimSpace(in.JobType))
	if jobType == "" {
		jobType = entity.JobTypeFullTime
	}
	if !jobType.Valid() {
		return fmt.Errorf("%w: tipo de contrato %q no admitido", domain.ErrInvalidInput, in.JobType)
	}

	salaryMin, salaryMax := nullDecimal(in.SalaryMin), nullDecimal(in.SalaryMax)
	if !jobs.ValidSalaryRange(salaryMin, salaryMax) {
		return fmt.Errorf("%w: rango salarial inválido", domain.ErrInvalidInput)
	}

	categoryID := ""
	if slug := strings.TrimSpace(in.CategorySlug); slug != "" {
		cat, err := uc.categoryRepo.GetBySlug(ctx, slug)
		if err != nil {
			return err
		}
		if cat == nil {
			return fmt.Errorf("%w: categoría %q no existe", domain.ErrInvalidInput, slug)
		}
		categoryID = cat.ID
	}

	job.Title = title
	job.Description = description
	job.Location = location
	job.JobType = jobType
	job.SalaryMin, job.SalaryMax = salaryMin, salaryMax
	job.CategoryID = categoryID
	return nil
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}
