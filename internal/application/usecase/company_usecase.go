package usecase

import (
	"context"

	"github.com/jhoicas/Empleos-api/internal/application/dto"
	"github.com/jhoicas/Empleos-api/internal/domain"
	"github.com/jhoicas/Empleos-api/internal/domain/repository"
)

// CompanyUseCase directorio público de empresas.
type CompanyUseCase struct {
	userRepo repository.UserRepository
	jobRepo  repository.JobRepository
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(userRepo repository.UserRepository, jobRepo repository.JobRepository) *CompanyUseCase {
	return &CompanyUseCase{userRepo: userRepo, jobRepo: jobRepo}
}

// List todos los empleadores con sus conteos de ofertas.
func (uc *CompanyUseCase) List(ctx context.Context) ([]dto.CompanyResponse, error) {
	list, err := uc.userRepo.ListEmployers(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CompanyResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toCompanyResponse(e))
	}
	return out, nil
}

// Detail ficha de la empresa. ErrNotFound si el id no es de un empleador.
func (uc *CompanyUseCase) Detail(ctx context.Context, id string) (*dto.CompanyDetailResponse, error) {
	e, err := uc.userRepo.GetEmployer(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.jobRepo.ListActiveByEmployer(ctx, e.ID)
	if err != nil {
		return nil, err
	}
	out := &dto.CompanyDetailResponse{
		CompanyResponse: toCompanyResponse(*e),
		Jobs:            make([]dto.JobResponse, 0, len(list)),
	}
	for _, j := range list {
		out.Jobs = append(out.Jobs, ToJobResponse(j))
	}
	return out, nil
}

func toCompanyResponse(e repository.EmployerSummary) dto.CompanyResponse {
	return dto.CompanyResponse{
		ID:          e.ID,
		Username:    e.Username,
		CompanyName: e.CompanyName,
		OpenJobs:    e.OpenJobs,
		TotalJobs:   e.TotalJobs,
	}
}
