package dto

import "time"

// SiteTotalsDTO conteos globales del portal.
type SiteTotalsDTO struct {
	ActiveJobs        int `json:"active_jobs"`
	TotalApplications int `json:"total_applications"`
	Employers         int `json:"employers"`
	Seekers           int `json:"seekers"`
}

// CategoryCountDTO ofertas activas de una categoría.
type CategoryCountDTO struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// DailyCountDTO postulaciones de un día (YYYY-MM-DD).
type DailyCountDTO struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// ActivityDTO postulación reciente.
type ActivityDTO struct {
	Type    string    `json:"type"`
	ID      string    `json:"id"`
	User    string    `json:"user"`
	Target  string    `json:"target"`
	JobSlug string    `json:"job_slug"`
	Time    time.Time `json:"time"`
}

// StatsResponse panel de estadísticas: totales, top categorías, tendencia de 30 días
// (días UTC) y últimas postulaciones.
type StatsResponse struct {
	Totals            SiteTotalsDTO      `json:"totals"`
	TopCategories     []CategoryCountDTO `json:"top_categories"`
	ApplicationsTrend []DailyCountDTO    `json:"applications_trend"`
	RecentActivity    []ActivityDTO      `json:"recent_activity"`
}
