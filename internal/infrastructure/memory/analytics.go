package memory

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/Empleos-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo agregados calculados sobre el store.
type AnalyticsRepo struct{ s *Store }

func (r *AnalyticsRepo) GetTotals(_ context.Context) (repository.SiteTotals, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var t repository.SiteTotals
	for _, j := range r.s.jobs {
		if j.IsActive {
			t.ActiveJobs++
		}
	}
	t.TotalApplications = len(r.s.apps)
	for _, u := range r.s.users {
		if u.IsEmployer {
			t.Employers++
		}
		if u.IsSeeker {
			t.Seekers++
		}
	}
	return t, nil
}

func (r *AnalyticsRepo) GetJobsByCategory(_ context.Context, limit int) ([]repository.CategoryCount, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	counts := make(map[string]int)
	for _, j := range r.s.jobs {
		c, ok := r.s.categories[j.CategoryID]
		if !ok || !j.IsActive {
			continue
		}
		counts[c.Name]++
	}
	out := make([]repository.CategoryCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, repository.CategoryCount{Name: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *AnalyticsRepo) GetApplicationsTrend(_ context.Context, since time.Time) ([]repository.DailyCount, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	counts := make(map[string]int)
	for _, a := range r.s.apps {
		if a.AppliedAt.Before(since) {
			continue
		}
		counts[a.AppliedAt.UTC().Format("2006-01-02")]++
	}
	out := make([]repository.DailyCount, 0, len(counts))
	for d, n := range counts {
		out = append(out, repository.DailyCount{Date: d, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (r *AnalyticsRepo) GetRecentApplications(_ context.Context, limit int) ([]repository.RecentApplication, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]repository.RecentApplication, 0, len(r.s.apps))
	for _, a := range r.s.apps {
		fa := r.s.fillApplication(a)
		out = append(out, repository.RecentApplication{
			ID:        fa.ID,
			Applicant: fa.ApplicantUsername,
			JobTitle:  fa.JobTitle,
			JobSlug:   fa.JobSlug,
			AppliedAt: fa.AppliedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].AppliedAt.Equal(out[j].AppliedAt) {
			return out[i].AppliedAt.After(out[j].AppliedAt)
		}
		return out[i].ID < out[j].ID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
