package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/Empleos-api/internal/domain"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
	"github.com/jhoicas/Empleos-api/internal/domain/jobs"
	"github.com/jhoicas/Empleos-api/internal/domain/repository"
)

var _ repository.JobRepository = (*JobRepo)(nil)

// JobRepo ofertas en memoria.
type JobRepo struct{ s *Store }

func (r *JobRepo) Create(_ context.Context, job *entity.Job) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, j := range r.s.jobs {
		if j.Slug == job.Slug {
			return domain.ErrDuplicate
		}
	}
	cp := *job
	r.s.seq++
	r.s.jobs[job.ID] = &cp
	r.s.jobSeq[job.ID] = r.s.seq
	return nil
}

func (r *JobRepo) GetBySlug(_ context.Context, slug string) (*entity.Job, error) {
	return r.find(func(j *entity.Job) bool { return j.Slug == slug })
}

func (r *JobRepo) GetByEmployerAndSlug(_ context.Context, employerID, slug string) (*entity.Job, error) {
	return r.find(func(j *entity.Job) bool { return j.Slug == slug && j.EmployerID == employerID })
}

func (r *JobRepo) SlugExists(_ context.Context, slug string) (bool, error) {
	j, err := r.find(func(j *entity.Job) bool { return j.Slug == slug })
	return j != nil, err
}

func (r *JobRepo) Update(_ context.Context, job *entity.Job) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	current, ok := r.s.jobs[job.ID]
	if !ok {
		return domain.ErrJobNotFound
	}
	cp := *job
	cp.Slug = current.Slug
	cp.EmployerID = current.EmployerID
	cp.CreatedAt = current.CreatedAt
	r.s.jobs[job.ID] = &cp
	return nil
}

func (r *JobRepo) ListByEmployer(_ context.Context, employerID string) ([]*entity.Job, error) {
	return r.collect(func(j *entity.Job) bool { return j.EmployerID == employerID }), nil
}

func (r *JobRepo) ListActiveByEmployer(_ context.Context, employerID string) ([]*entity.Job, error) {
	return r.collect(func(j *entity.Job) bool { return j.EmployerID == employerID && j.IsActive }), nil
}

func (r *JobRepo) Search(_ context.Context, f jobs.Filter, limit, offset int) ([]*entity.Job, int, error) {
	all := r.collect(f.Matches)
	total := len(all)
	if offset >= total {
		return []*entity.Job{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (r *JobRepo) SuggestTitles(_ context.Context, term string, limit int) ([]string, error) {
	return r.distinct(term, limit, func(j *entity.Job) string { return j.Title }), nil
}

func (r *JobRepo) SuggestLocations(_ context.Context, term string, limit int) ([]string, error) {
	return r.distinct(term, limit, func(j *entity.Job) string { return j.Location }), nil
}

func (r *JobRepo) find(match func(*entity.Job) bool) (*entity.Job, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, j := range r.s.jobs {
		if match(j) {
			return r.s.fillJob(j), nil
		}
	}
	return nil, nil
}

// collect ofertas (ya rellenadas) que cumplen match, más recientes primero.
func (r *JobRepo) collect(match func(*entity.Job) bool) []*entity.Job {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.Job, 0)
	for _, j := range r.s.jobs {
		filled := r.s.fillJob(j)
		if match(filled) {
			list = append(list, filled)
		}
	}
	sort.SliceStable(list, func(a, b int) bool {
		if !list[a].CreatedAt.Equal(list[b].CreatedAt) {
			return list[a].CreatedAt.After(list[b].CreatedAt)
		}
		return r.s.jobSeq[list[a].ID] > r.s.jobSeq[list[b].ID]
	})
	return list
}

// distinct valores distintos de field que contienen term, en orden de inserción.
func (r *JobRepo) distinct(term string, limit int, field func(*entity.Job) string) []string {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	ordered := make([]*entity.Job, 0, len(r.s.jobs))
	for _, j := range r.s.jobs {
		ordered = append(ordered, j)
	}
	sort.Slice(ordered, func(a, b int) bool { return r.s.jobSeq[ordered[a].ID] < r.s.jobSeq[ordered[b].ID] })

	seen := make(map[string]bool)
	out := make([]string, 0, limit)
	for _, j := range ordered {
		v := field(j)
		if seen[v] || !jobs.ContainsFold(v, term) {
			continue
		}
		seen[v] = true
		out = append(out, v)
		if len(out) == limit {
			break
		}
	}
	return out
}
