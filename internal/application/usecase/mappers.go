package usecase

import (
	"github.com/jhoicas/Empleos-api/internal/application/dto"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
)

// ToJobResponse convierte la entidad a la salida pública.
func ToJobResponse(j *entity.Job) dto.JobResponse {
	out := dto.JobResponse{
		ID:           j.ID,
		Title:        j.Title,
		Slug:         j.Slug,
		Description:  j.Description,
		Location:     j.Location,
		JobType:      string(j.JobType),
		JobTypeLabel: j.JobType.Label(),
		IsActive:     j.IsActive,
		CompanyName:  j.CompanyName,
		CategoryName: j.CategoryName,
		CategorySlug: j.CategorySlug,
		CreatedAt:    j.CreatedAt,
	}
	if j.SalaryMin.Valid {
		v := j.SalaryMin.Decimal
		out.SalaryMin = &v
	}
	if j.SalaryMax.Valid {
		v := j.SalaryMax.Decimal
		out.SalaryMax = &v
	}
	return out
}

// ToUserResponse convierte el usuario a la salida sin hash de password.
func ToUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		IsEmployer:  u.IsEmployer,
		IsSeeker:    u.IsSeeker,
		CompanyName: u.CompanyName,
		Phone:       u.Phone,
		CreatedAt:   u.CreatedAt,
	}
}

func toCategoryResponse(c *entity.Category) dto.CategoryResponse {
	return dto.CategoryResponse{ID: c.ID, Name: c.Name, Slug: c.Slug, Description: c.Description}
}
