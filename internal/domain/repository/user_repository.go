package repository

import (
	"context"

	"github.com/jhoicas/Empleos-api/internal/domain/entity"
)

// EmployerSummary empleador del directorio público con sus conteos de ofertas.
type EmployerSummary struct {
	ID          string
	Username    string
	CompanyName string
	OpenJobs    int
	TotalJobs   int
}

// UserRepository define el puerto de persistencia para User (DIP).
// Los Get* devuelven (nil, nil) si no existe.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	// ListEmployers todos los empleadores ordenados por empresa y luego username.
	ListEmployers(ctx context.Context) ([]EmployerSummary, error)
	// GetEmployer (nil, nil) si el id no existe o no es empleador.
	GetEmployer(ctx context.Context, id string) (*EmployerSummary, error)
}
