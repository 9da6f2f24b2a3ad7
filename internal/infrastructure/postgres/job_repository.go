package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Empleos-api/internal/domain"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
	"github.com/jhoicas/Empleos-api/internal/domain/jobs"
	"github.com/jhoicas/Empleos-api/internal/domain/repository"
)

var _ repository.JobRepository = (*JobRepo)(nil)

// jobSelect columnas de la oferta más empresa, categoría y conteo de postulaciones.
const jobSelect = `
	SELECT j.id, j.employer_id, j.title, j.slug, j.description, COALESCE(j.category_id::text, ''),
	       j.location, j.salary_min, j.salary_max, j.job_type, j.is_active, j.created_at, j.updated_at,
	       u.company_name, u.username, COALESCE(c.name, ''), COALESCE(c.slug, ''),
	       (SELECT COUNT(*) FROM applications a WHERE a.job_id = j.id)
	FROM jobs j
	JOIN users u ON u.id = j.employer_id
	LEFT JOIN categories c ON c.id = j.category_id`

// JobRepo implementación del puerto JobRepository sobre PostgreSQL.
type JobRepo struct {
	q Querier
}

// NewJobRepository construye el adaptador de persistencia para ofertas.
func NewJobRepository(q Querier) *JobRepo {
	return &JobRepo{q: q}
}

// Create persiste una oferta. Slug duplicado -> domain.ErrDuplicate (el caso de uso reintenta).
func (r *JobRepo) Create(ctx context.Context, job *entity.Job) error {
	query := `
		INSERT INTO jobs (id, employer_id, title, slug, description, category_id, location,
			salary_min, salary_max, job_type, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		job.ID, job.EmployerID, job.Title, job.Slug, job.Description, nullIfEmpty(job.CategoryID), job.Location,
		job.SalaryMin, job.SalaryMax, string(job.JobType), job.IsActive, job.CreatedAt, job.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert job: %w", err)
	}
	return nil
}

// GetBySlug obtiene una oferta (activa o no) por slug.
func (r *JobRepo) GetBySlug(ctx context.Context, slug string) (*entity.Job, error) {
	return r.findOne(ctx, "get job by slug", jobSelect+` WHERE j.slug = $1`, slug)
}

// GetByEmployerAndSlug obtiene la oferta solo si pertenece al empleador.
func (r *JobRepo) GetByEmployerAndSlug(ctx context.Context, employerID, slug string) (*entity.Job, error) {
	return r.findOne(ctx, "get job by employer and slug", jobSelect+` WHERE j.slug = $1 AND j.employer_id = $2`, slug, employerID)
}

// SlugExists indica si el slug ya está tomado.
func (r *JobRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	if err := r.q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM jobs WHERE slug = $1)`, slug).Scan(&exists); err != nil {
		return false, fmt.Errorf("job slug exists: %w", err)
	}
	return exists, nil
}

// Update actualiza los campos editables. Slug, empleador y created_at no cambian.
func (r *JobRepo) Update(ctx context.Context, job *entity.Job) error {
	query := `
		UPDATE jobs SET title = $2, description = $3, category_id = $4, location = $5,
			salary_min = $6, salary_max = $7, job_type = $8, is_active = $9, updated_at = $10
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		job.ID, job.Title, job.Description, nullIfEmpty(job.CategoryID), job.Location,
		job.SalaryMin, job.SalaryMax, string(job.JobType), job.IsActive, job.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}

// ListByEmployer ofertas del empleador, más recientes primero.
func (r *JobRepo) ListByEmployer(ctx context.Context, employerID string) ([]*entity.Job, error) {
	return r.list(ctx, "list jobs by employer", jobSelect+` WHERE j.employer_id = $1 ORDER BY j.created_at DESC, j.id`, employerID)
}

// ListActiveByEmployer ofertas activas del empleador, más recientes primero.
func (r *JobRepo) ListActiveByEmployer(ctx context.Context, employerID string) ([]*entity.Job, error) {
	return r.list(ctx, "list active jobs by employer", jobSelect+` WHERE j.employer_id = $1 AND j.is_active ORDER BY j.created_at DESC, j.id`, employerID)
}

// Search ejecuta el conteo y la página con los mismos criterios.
func (r *JobRepo) Search(ctx context.Context, f jobs.Filter, limit, offset int) ([]*entity.Job, int, error) {
	where, args := searchWhere(f)

	var total int
	countQuery := `SELECT COUNT(*) FROM jobs j JOIN users u ON u.id = j.employer_id LEFT JOIN categories c ON c.id = j.category_id` + where
	if err := r.q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count jobs: %w", err)
	}
	if total == 0 || offset >= total {
		return []*entity.Job{}, total, nil
	}

	n := len(args)
	pageQuery := jobSelect + where + fmt.Sprintf(` ORDER BY j.created_at DESC, j.id LIMIT $%d OFFSET $%d`, n+1, n+2)
	list, err := r.list(ctx, "search jobs", pageQuery, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// searchWhere traduce jobs.Filter a SQL. Replica Filter.Matches: activas y criterios en AND.
func searchWhere(f jobs.Filter) (string, []any) {
	conds := []string{"j.is_active"}
	args := make([]any, 0, 3)
	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if f.Query != "" {
		p := next(containsPattern(f.Query))
		conds = append(conds, fmt.Sprintf("(j.title ILIKE %[1]s OR j.description ILIKE %[1]s OR u.company_name ILIKE %[1]s)", p))
	}
	if f.Location != "" {
		conds = append(conds, "j.location ILIKE "+next(containsPattern(f.Location)))
	}
	if f.Category != "" {
		conds = append(conds, "c.slug = "+next(f.Category))
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// SuggestTitles títulos distintos que contienen term, en todas las ofertas.
func (r *JobRepo) SuggestTitles(ctx context.Context, term string, limit int) ([]string, error) {
	return r.distinct(ctx, "title", term, limit)
}

// SuggestLocations ubicaciones distintas que contienen term, en todas las ofertas.
func (r *JobRepo) SuggestLocations(ctx context.Context, term string, limit int) ([]string, error) {
	return r.distinct(ctx, "location", term, limit)
}

// distinct column es una constante interna (title o location), nunca entrada del usuario.
func (r *JobRepo) distinct(ctx context.Context, column, term string, limit int) ([]string, error) {
	query := fmt.Sprintf(`SELECT DISTINCT %[1]s FROM jobs WHERE %[1]s ILIKE $1 ORDER BY %[1]s LIMIT $2`, column)
	rows, err := r.q.Query(ctx, query, containsPattern(term), limit)
	if err != nil {
		return nil, fmt.Errorf("suggest %s: %w", column, err)
	}
	defer rows.Close()
	out := make([]string, 0, limit)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan %s: %w", column, err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *JobRepo) findOne(ctx context.Context, op, query string, args ...any) (*entity.Job, error) {
	j, err := scanJob(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return j, nil
}

func (r *JobRepo) list(ctx context.Context, op, query string, args ...any) ([]*entity.Job, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	list := make([]*entity.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		list = append(list, j)
	}
	return list, rows.Err()
}

func scanJob(row pgx.Row) (*entity.Job, error) {
	var j entity.Job
	var jobType string
	err := row.Scan(
		&j.ID, &j.EmployerID, &j.Title, &j.Slug, &j.Description, &j.CategoryID,
		&j.Location, &j.SalaryMin, &j.SalaryMax, &jobType, &j.IsActive, &j.CreatedAt, &j.UpdatedAt,
		&j.CompanyName, &j.EmployerUsername, &j.CategoryName, &j.CategorySlug, &j.ApplicationCount,
	)
	if err != nil {
		return nil, err
	}
	j.JobType = entity.JobType(jobType)
	return &j, nil
}
