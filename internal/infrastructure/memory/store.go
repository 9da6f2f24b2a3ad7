// Package memory implementa los repositorios en memoria. Respeta las mismas
// restricciones de unicidad que el esquema SQL; se usa con DB_DRIVER=memory y en tests.
package memory

import (
	"sync"

	"github.com/jhoicas/Empleos-api/internal/domain/entity"
	"github.com/jhoicas/Empleos-api/internal/domain/repository"
)

// Store estado compartido por todos los repositorios en memoria.
type Store struct {
	mu sync.RWMutex

	users      map[string]*entity.User
	categories map[string]*entity.Category
	jobs       map[string]*entity.Job
	jobSeq     map[string]int64 // orden de inserción, desempate en created_at
	apps       map[string]*entity.Application
	seq        int64
}

// NewStore crea un almacenamiento vacío.
func NewStore() *Store {
	return &Store{
		users:      make(map[string]*entity.User),
		categories: make(map[string]*entity.Category),
		jobs:       make(map[string]*entity.Job),
		jobSeq:     make(map[string]int64),
		apps:       make(map[string]*entity.Application),
	}
}

// Users repositorio de usuarios sobre el store.
func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }

// Categories repositorio de categorías sobre el store.
func (s *Store) Categories() *CategoryRepo { return &CategoryRepo{s: s} }

// Jobs repositorio de ofertas sobre el store.
func (s *Store) Jobs() *JobRepo { return &JobRepo{s: s} }

// Applications repositorio de postulaciones sobre el store.
func (s *Store) Applications() *ApplicationRepo { return &ApplicationRepo{s: s} }

// Analytics consultas agregadas sobre el store.
func (s *Store) Analytics() *AnalyticsRepo { return &AnalyticsRepo{s: s} }

// fillJob copia la oferta y completa los campos de solo lectura. Requiere s.mu tomado.
func (s *Store) fillJob(j *entity.Job) *entity.Job {
	out := *j
	out.CompanyName, out.EmployerUsername = "", ""
	out.CategoryName, out.CategorySlug = "", ""
	if u, ok := s.users[j.EmployerID]; ok {
		out.CompanyName = u.CompanyName
		out.EmployerUsername = u.Username
	}
	if c, ok := s.categories[j.CategoryID]; ok && j.CategoryID != "" {
		out.CategoryName = c.Name
		out.CategorySlug = c.Slug
	}
	out.ApplicationCount = 0
	for _, a := range s.apps {
		if a.JobID == j.ID {
			out.ApplicationCount++
		}
	}
	return &out
}

// fillApplication copia la postulación y completa los datos de oferta y candidato. Requiere s.mu tomado.
func (s *Store) fillApplication(a *entity.Application) *entity.Application {
	out := *a
	if j, ok := s.jobs[a.JobID]; ok {
		fj := s.fillJob(j)
		out.JobTitle = fj.Title
		out.JobSlug = fj.Slug
		out.CompanyName = fj.CompanyName
		out.CategoryName = fj.CategoryName
	}
	if u, ok := s.users[a.ApplicantID]; ok {
		out.ApplicantUsername = u.Username
		out.ApplicantEmail = u.Email
	}
	return &out
}

// employerSummary cuenta las ofertas del empleador. Requiere s.mu tomado.
func (s *Store) employerSummary(u *entity.User) repository.EmployerSummary {
	e := repository.EmployerSummary{ID: u.ID, Username: u.Username, CompanyName: u.CompanyName}
	for _, j := range s.jobs {
		if j.EmployerID != u.ID {
			continue
		}
		e.TotalJobs++
		if j.IsActive {
			e.OpenJobs++
		}
	}
	return e
}
