// Package analytics contiene el panel de estadísticas del portal.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Empleos-api/internal/application/dto"
	"github.com/jhoicas/Empleos-api/internal/domain/repository"
)

const (
	topCategories  = 5  // categorías en el ranking
	trendDays      = 30 // días de la serie de postulaciones
	recentActivity = 10 // postulaciones en el feed de actividad
)

// StatsUseCase arma el panel de estadísticas.
//
// Fuente de datos: AnalyticsRepository (consultas read-only).
type StatsUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	now           func() time.Time
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(analyticsRepo repository.AnalyticsRepository) *StatsUseCase {
	return &StatsUseCase{analyticsRepo: analyticsRepo, now: time.Now}
}

// GetStats construye el StatsResponse.
//
// Cuatro llamadas en paralelo:
//  1. GetTotals                         → Totals
//  2. GetJobsByCategory(top 5)          → TopCategories
//  3. GetApplicationsTrend(últimos 30)  → ApplicationsTrend, con ceros en los días vacíos
//  4. GetRecentApplications(últimas 10) → RecentActivity
//
// Los días de la tendencia son días calendario UTC, igual que el agrupado del repositorio.
func (uc *StatsUseCase) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	now := uc.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	since := today.AddDate(0, 0, -(trendDays - 1))

	type totalsResult struct {
		totals repository.SiteTotals
		err    error
	}
	type categoriesResult struct {
		rows []repository.CategoryCount
		err  error
	}
	type trendResult struct {
		rows []repository.DailyCount
		err  error
	}
	type recentResult struct {
		rows []repository.RecentApplication
		err  error
	}

	totalsCh := make(chan totalsResult, 1)
	catsCh := make(chan categoriesResult, 1)
	trendCh := make(chan trendResult, 1)
	recentCh := make(chan recentResult, 1)

	go func() {
		t, err := uc.analyticsRepo.GetTotals(ctx)
		totalsCh <- totalsResult{t, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.GetJobsByCategory(ctx, topCategories)
		catsCh <- categoriesResult{rows, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.GetApplicationsTrend(ctx, since)
		trendCh <- trendResult{rows, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.GetRecentApplications(ctx, recentActivity)
		recentCh <- recentResult{rows, err}
	}()

	totals := <-totalsCh
	cats := <-catsCh
	trend := <-trendCh
	recent := <-recentCh

	if totals.err != nil {
		return nil, fmt.Errorf("stats: totales: %w", totals.err)
	}
	if cats.err != nil {
		return nil, fmt.Errorf("stats: categorías: %w", cats.err)
	}
	if trend.err != nil {
		return nil, fmt.Errorf("stats: tendencia: %w", trend.err)
	}
	if recent.err != nil {
		return nil, fmt.Errorf("stats: actividad reciente: %w", recent.err)
	}

	out := &dto.StatsResponse{
		Totals: dto.SiteTotalsDTO{
			ActiveJobs:        totals.totals.ActiveJobs,
			TotalApplications: totals.totals.TotalApplications,
			Employers:         totals.totals.Employers,
			Seekers:           totals.totals.Seekers,
		},
		TopCategories:     make([]dto.CategoryCountDTO, 0, len(cats.rows)),
		ApplicationsTrend: fillTrend(since, trendDays, trend.rows),
		RecentActivity:    make([]dto.ActivityDTO, 0, len(recent.rows)),
	}
	for _, c := range cats.rows {
		out.TopCategories = append(out.TopCategories, dto.CategoryCountDTO{Name: c.Name, Count: c.Count})
	}
	for _, a := range recent.rows {
		out.RecentActivity = append(out.RecentActivity, dto.ActivityDTO{
			Type:    "application",
			ID:      a.ID,
			User:    a.Applicant,
			Target:  a.JobTitle,
			JobSlug: a.JobSlug,
			Time:    a.AppliedAt,
		})
	}
	return out, nil
}

// fillTrend una entrada por día desde since, con 0 donde no hubo postulaciones.
func fillTrend(since time.Time, days int, rows []repository.DailyCount) []dto.DailyCountDTO {
	byDay := make(map[string]int, len(rows))
	for _, r := range rows {
		byDay[r.Date] = r.Count
	}
	out := make([]dto.DailyCountDTO, 0, days)
	for i := 0; i < days; i++ {
		d := since.AddDate(0, 0, i).Format("2006-01-02")
		out = append(out, dto.DailyCountDTO{Date: d, Count: byDay[d]})
	}
	return out
}
