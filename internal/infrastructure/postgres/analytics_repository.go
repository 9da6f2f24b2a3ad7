package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Empleos-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el panel de estadísticas.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetTotals conteos globales en una sola ida a la base.
func (r *AnalyticsRepo) GetTotals(ctx context.Context) (repository.SiteTotals, error) {
	const query = `
	SELECT
	    (SELECT COUNT(*) FROM jobs WHERE is_active)         AS active_jobs,
	    (SELECT COUNT(*) FROM applications)                 AS total_applications,
	    (SELECT COUNT(*) FROM users WHERE is_employer)      AS employers,
	    (SELECT COUNT(*) FROM users WHERE is_seeker)        AS seekers`

	var t repository.SiteTotals
	if err := r.q.QueryRow(ctx, query).Scan(&t.ActiveJobs, &t.TotalApplications, &t.Employers, &t.Seekers); err != nil {
		return repository.SiteTotals{}, fmt.Errorf("analytics.GetTotals: %w", err)
	}
	return t, nil
}

// GetJobsByCategory las `limit` categorías con más ofertas activas.
func (r *AnalyticsRepo) GetJobsByCategory(ctx context.Context, limit int) ([]repository.CategoryCount, error) {
	const query = `
	SELECT c.name, COUNT(j.id) AS total
	FROM categories c
	JOIN jobs j ON j.category_id = c.id AND j.is_active
	GROUP BY c.name
	ORDER BY total DESC, c.name
	LIMIT $1`

	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetJobsByCategory: %w", err)
	}
	defer rows.Close()

	results := make([]repository.CategoryCount, 0, limit)
	for rows.Next() {
		var row repository.CategoryCount
		if err := rows.Scan(&row.Name, &row.Count); err != nil {
			return nil, fmt.Errorf("analytics.GetJobsByCategory scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetApplicationsTrend postulaciones por día UTC desde `since`, en orden cronológico.
// Los días sin postulaciones no aparecen; el caso de uso completa los huecos.
func (r *AnalyticsRepo) GetApplicationsTrend(ctx context.Context, since time.Time) ([]repository.DailyCount, error) {
	const query = `
	SELECT to_char(date_trunc('day', applied_at AT TIME ZONE 'UTC'), 'YYYY-MM-DD') AS day, COUNT(*)
	FROM applications
	WHERE applied_at >= $1
	GROUP BY day
	ORDER BY day`

	rows, err := r.q.Query(ctx, query, since.UTC())
	if err != nil {
		return nil, fmt.Errorf("analytics.GetApplicationsTrend: %w", err)
	}
	defer rows.Close()

	results := make([]repository.DailyCount, 0)
	for rows.Next() {
		var row repository.DailyCount
		if err := rows.Scan(&row.Date, &row.Count); err != nil {
			return nil, fmt.Errorf("analytics.GetApplicationsTrend scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetRecentApplications últimas postulaciones con candidato y oferta.
func (r *AnalyticsRepo) GetRecentApplications(ctx context.Context, limit int) ([]repository.RecentApplication, error) {
	const query = `
	SELECT a.id, u.username, j.title, j.slug, a.applied_at
	FROM applications a
	JOIN users u ON u.id = a.applicant_id
	JOIN jobs j ON j.id = a.job_id
	ORDER BY a.applied_at DESC, a.id
	LIMIT $1`

	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetRecentApplications: %w", err)
	}
	defer rows.Close()

	results := make([]repository.RecentApplication, 0, limit)
	for rows.Next() {
		var row repository.RecentApplication
		if err := rows.Scan(&row.ID, &row.Applicant, &row.JobTitle, &row.JobSlug, &row.AppliedAt); err != nil {
			return nil, fmt.Errorf("analytics.GetRecentApplications scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
