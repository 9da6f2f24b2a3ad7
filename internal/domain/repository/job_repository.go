package repository

import (
	"context"

	"github.com/jhoicas/Empleos-api/internal/domain/entity"
	"github.com/jhoicas/Empleos-api/internal/domain/jobs"
)

// JobRepository define el puerto de persistencia para Job (DIP).
// Las lecturas rellenan los campos de solo lectura (empresa, categoría).
type JobRepository interface {
	// Create persiste la oferta; domain.ErrDuplicate si el slug ya existe.
	Create(ctx context.Context, job *entity.Job) error
	GetBySlug(ctx context.Context, slug string) (*entity.Job, error)
	// GetByEmployerAndSlug solo devuelve la oferta si pertenece al empleador.
	GetByEmployerAndSlug(ctx context.Context, employerID, slug string) (*entity.Job, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Update(ctx context.Context, job *entity.Job) error
	// ListByEmployer ofertas del empleador (activas o no), más recientes primero, con conteo de postulaciones.
	ListByEmployer(ctx context.Context, employerID string) ([]*entity.Job, error)
	// ListActiveByEmployer solo las activas, para la ficha pública de la empresa.
	ListActiveByEmployer(ctx context.Context, employerID string) ([]*entity.Job, error)
	// Search aplica jobs.Filter sobre ofertas activas, ordena por created_at DESC
	// y devuelve la página pedida junto al total sin paginar.
	Search(ctx context.Context, f jobs.Filter, limit, offset int) ([]*entity.Job, int, error)
	SuggestTitles(ctx context.Context, term string, limit int) ([]string, error)
	SuggestLocations(ctx context.Context, term string, limit int) ([]string, error)
}
