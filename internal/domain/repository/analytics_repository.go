package repository

import (
	"context"
	"time"
)

// SiteTotals conteos globales del portal.
type SiteTotals struct {
	ActiveJobs        int
	TotalApplications int
	Employers         int
	Seekers           int
}

// CategoryCount ofertas activas por categoría.
type CategoryCount struct {
	Name  string
	Count int
}

// DailyCount postulaciones de un día (YYYY-MM-DD).
type DailyCount struct {
	Date  string
	Count int
}

// RecentApplication postulación reciente para el feed de actividad.
type RecentApplication struct {
	ID        string
	Applicant string
	JobTitle  string
	JobSlug   string
	AppliedAt time.Time
}

// AnalyticsRepository consultas de solo lectura para el panel de estadísticas.
type AnalyticsRepository interface {
	GetTotals(ctx context.Context) (SiteTotals, error)
	GetJobsByCategory(ctx context.Context, limit int) ([]CategoryCount, error)
	// GetApplicationsTrend agrupa por día calendario UTC.
	GetApplicationsTrend(ctx context.Context, since time.Time) ([]DailyCount, error)
	// GetRecentApplications las últimas `limit` postulaciones, más recientes primero.
	GetRecentApplications(ctx context.Context, limit int) ([]RecentApplication, error)
}
