package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/Empleos-api/internal/domain"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
	"github.com/jhoicas/Empleos-api/internal/domain/repository"
)

var _ repository.ApplicationRepository = (*ApplicationRepo)(nil)

// ApplicationRepo postulaciones en memoria con la restricción UNIQUE (job, applicant).
type ApplicationRepo struct{ s *Store }

func (r *ApplicationRepo) Create(_ context.Context, app *entity.Application) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, a := range r.s.apps {
		if a.JobID == app.JobID && a.ApplicantID == app.ApplicantID {
			return domain.ErrDuplicate
		}
	}
	cp := *app
	r.s.apps[app.ID] = &cp
	return nil
}

func (r *ApplicationRepo) Exists(_ context.Context, jobID, applicantID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, a := range r.s.apps {
		if a.JobID == jobID && a.ApplicantID == applicantID {
			return true, nil
		}
	}
	return false, nil
}

func (r *ApplicationRepo) ListByJob(_ context.Context, jobID string) ([]*entity.Application, error) {
	return r.collect(func(a *entity.Application) bool { return a.JobID == jobID }), nil
}

func (r *ApplicationRepo) ListByApplicant(_ context.Context, applicantID string) ([]*entity.Application, error) {
	return r.collect(func(a *entity.Application) bool { return a.ApplicantID == applicantID }), nil
}

// Count postulaciones existentes para (job, applicant).
func (r *ApplicationRepo) Count(jobID, applicantID string) int {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n := 0
	for _, a := range r.s.apps {
		if a.JobID == jobID && a.ApplicantID == applicantID {
			n++
		}
	}
	return n
}

func (r *ApplicationRepo) collect(match func(*entity.Application) bool) []*entity.Application {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.Application, 0)
	for _, a := range r.s.apps {
		if match(a) {
			list = append(list, r.s.fillApplication(a))
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].AppliedAt.After(list[j].AppliedAt) })
	return list
}
