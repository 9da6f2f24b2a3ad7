package ports

import (
	"context"

	"github.com/jhoicas/Empleos-api/internal/domain/entity"
)

// ApplicantsReportGenerator genera el PDF con los candidatos de una oferta.
type ApplicantsReportGenerator interface {
	GenerateApplicantsReport(ctx context.Context, job *entity.Job, apps []*entity.Application) ([]byte, error)
}
