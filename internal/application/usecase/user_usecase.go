package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jhoicas/Empleos-api/internal/application/dto"
	"github.com/jhoicas/Empleos-api/internal/domain"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
	"github.com/jhoicas/Empleos-api/internal/domain/repository"
)

// MaxCompanyNameLength tope de company_name (VARCHAR(200)).
const MaxCompanyNameLength = 200

// UserUseCase perfil del usuario autenticado.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Profile datos del usuario.
func (uc *UserUseCase) Profile(ctx context.Context, userID string) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	out := ToUserResponse(u)
	return &out, nil
}

// UpdateProfile cambia email, empresa o teléfono. Los campos nil no se tocan.
func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID string, in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Email != nil {
		email := strings.TrimSpace(*in.Email)
		if !entity.ValidEmail(email) {
			return nil, fmt.Errorf("%w: email inválido", domain.ErrInvalidInput)
		}
		if other, err := uc.repo.GetByEmail(ctx, email); err != nil {
			return nil, err
		} else if other != nil && other.ID != u.ID {
			return nil, domain.ErrEmailAlreadyExists
		}
		u.Email = email
	}
	if in.CompanyName != nil {
		company := strings.TrimSpace(*in.CompanyName)
		if err := ValidateCompanyName(company); err != nil {
			return nil, err
		}
		u.CompanyName = company
	}
	if in.Phone != nil {
		phone := strings.TrimSpace(*in.Phone)
		if len(phone) > 20 {
			return nil, fmt.Errorf("%w: teléfono demasiado largo", domain.ErrInvalidInput)
		}
		u.Phone = phone
	}
	u.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	out := ToUserResponse(u)
	return &out, nil
}

// ValidateCompanyName rechaza nombres de empresa por encima de MaxCompanyNameLength caracteres.
func ValidateCompanyName(s string) error {
	if utf8.RuneCountInString(s) > MaxCompanyNameLength {
		return fmt.Errorf("%w: el nombre de empresa admite hasta %d caracteres", domain.ErrInvalidInput, MaxCompanyNameLength)
	}
	return nil
}
