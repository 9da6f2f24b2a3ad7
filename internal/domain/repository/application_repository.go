package repository

import (
	"context"

	"github.com/jhoicas/Empleos-api/internal/domain/entity"
)

// ApplicationRepository define el puerto de persistencia para Application (DIP).
type ApplicationRepository interface {
	// Create persiste la postulación; domain.ErrDuplicate si (job, applicant) ya existe.
	Create(ctx context.Context, app *entity.Application) error
	Exists(ctx context.Context, jobID, applicantID string) (bool, error)
	// ListByJob postulaciones de una oferta, más recientes primero, con datos del candidato.
	ListByJob(ctx context.Context, jobID string) ([]*entity.Application, error)
	// ListByApplicant postulaciones del usuario con título, empresa y categoría de la oferta.
	ListByApplicant(ctx context.Context, applicantID string) ([]*entity.Application, error)
}
