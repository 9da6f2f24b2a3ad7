package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Empleos-api/internal/domain"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
	"github.com/jhoicas/Empleos-api/internal/domain/repository"
)

var _ repository.ApplicationRepository = (*ApplicationRepo)(nil)

const applicationSelect = `
	SELECT a.id, a.job_id, a.applicant_id, a.resume, a.cover_letter, a.parsed_text, a.status, a.applied_at,
	       j.title, j.slug, e.company_name, COALESCE(c.name, ''), u.username, u.email
	FROM applications a
	JOIN jobs j ON j.id = a.job_id
	JOIN users e ON e.id = j.employer_id
	JOIN users u ON u.id = a.applicant_id
	LEFT JOIN categories c ON c.id = j.category_id`

// ApplicationRepo implementación del puerto ApplicationRepository sobre PostgreSQL.
type ApplicationRepo struct {
	q Querier
}

// NewApplicationRepository construye el adaptador de persistencia para postulaciones.
func NewApplicationRepository(q Querier) *ApplicationRepo {
	return &ApplicationRepo{q: q}
}

// Create persiste la postulación. El UNIQUE (job_id, applicant_id) resuelve las carreras:
// el segundo insert concurrente recibe domain.ErrDuplicate.
func (r *ApplicationRepo) Create(ctx context.Context, app *entity.Application) error {
	query := `
		INSERT INTO applications (id, job_id, applicant_id, resume, cover_letter, parsed_text, status, applied_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		app.ID, app.JobID, app.ApplicantID, app.Resume, app.CoverLetter, app.ParsedText,
		string(app.Status), app.AppliedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert application: %w", err)
	}
	return nil
}

// Exists indica si el usuario ya se postuló a la oferta.
func (r *ApplicationRepo) Exists(ctx context.Context, jobID, applicantID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM applications WHERE job_id = $1 AND applicant_id = $2)`, jobID, applicantID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("application exists: %w", err)
	}
	return exists, nil
}

// ListByJob postulaciones de la oferta, más recientes primero.
func (r *ApplicationRepo) ListByJob(ctx context.Context, jobID string) ([]*entity.Application, error) {
	return r.list(ctx, "list applications by job", applicationSelect+` WHERE a.job_id = $1 ORDER BY a.applied_at DESC`, jobID)
}

// ListByApplicant postulaciones del usuario, más recientes primero.
func (r *ApplicationRepo) ListByApplicant(ctx context.Context, applicantID string) ([]*entity.Application, error) {
	return r.list(ctx, "list applications by applicant", applicationSelect+` WHERE a.applicant_id = $1 ORDER BY a.applied_at DESC`, applicantID)
}

func (r *ApplicationRepo) list(ctx context.Context, op, query string, args ...any) ([]*entity.Application, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	list := make([]*entity.Application, 0)
	for rows.Next() {
		var a entity.Application
		var status string
		if err := rows.Scan(
			&a.ID, &a.JobID, &a.ApplicantID, &a.Resume, &a.CoverLetter, &a.ParsedText, &status, &a.AppliedAt,
			&a.JobTitle, &a.JobSlug, &a.CompanyName, &a.CategoryName, &a.ApplicantUsername, &a.ApplicantEmail,
		); err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		a.Status = entity.ApplicationStatus(status)
		list = append(list, &a)
	}
	return list, rows.Err()
}
