package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Empleos-api/internal/domain"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
	"github.com/jhoicas/Empleos-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, username, email, password_hash, is_employer, is_seeker, company_name, phone, created_at, updated_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios. Pasar pool o tx.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario. Distingue username y email duplicados por el constraint violado.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		user.ID, user.Username, user.Email, user.PasswordHash, user.IsEmployer, user.IsSeeker,
		user.CompanyName, user.Phone, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return userUniqueError(err)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.findOne(ctx, "get user by id", `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByUsername obtiene un usuario por username (sensible a mayúsculas).
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.findOne(ctx, "get user by username", `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

// GetByEmail obtiene un usuario por email sin distinguir mayúsculas.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, "get user by email", `SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1) LIMIT 1`, email)
}

// Update actualiza email, perfil y flags. El username no cambia.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users SET email = $2, password_hash = $3, is_employer = $4, is_seeker = $5,
			company_name = $6, phone = $7, updated_at = $8
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.IsEmployer, user.IsSeeker,
		user.CompanyName, user.Phone, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return userUniqueError(err)
		}
		return fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// employerSelect empleadores con ofertas abiertas y totales.
const employerSelect = `
	SELECT u.id, u.username, u.company_name,
	       COUNT(j.id) FILTER (WHERE j.is_active) AS open_jobs,
	       COUNT(j.id) AS total_jobs
	FROM users u
	LEFT JOIN jobs j ON j.employer_id = u.id`

// ListEmployers directorio de empresas.
func (r *UserRepo) ListEmployers(ctx context.Context) ([]repository.EmployerSummary, error) {
	query := employerSelect + `
	WHERE u.is_employer
	GROUP BY u.id, u.username, u.company_name
	ORDER BY u.company_name, u.username`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list employers: %w", err)
	}
	defer rows.Close()
	out := make([]repository.EmployerSummary, 0)
	for rows.Next() {
		var e repository.EmployerSummary
		if err := rows.Scan(&e.ID, &e.Username, &e.CompanyName, &e.OpenJobs, &e.TotalJobs); err != nil {
			return nil, fmt.Errorf("scan employer: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// GetEmployer ficha de un empleador. Un id que no es UUID se trata como inexistente.
func (r *UserRepo) GetEmployer(ctx context.Context, id string) (*repository.EmployerSummary, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}
	query := employerSelect + `
	WHERE u.id = $1 AND u.is_employer
	GROUP BY u.id, u.username, u.company_name`
	var e repository.EmployerSummary
	err := r.q.QueryRow(ctx, query, id).Scan(&e.ID, &e.Username, &e.CompanyName, &e.OpenJobs, &e.TotalJobs)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employer: %w", err)
	}
	return &e, nil
}

func (r *UserRepo) findOne(ctx context.Context, op, query string, arg any) (*entity.User, error) {
	var u entity.User
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.IsEmployer, &u.IsSeeker,
		&u.CompanyName, &u.Phone, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}

// userUniqueError traduce el constraint violado al error de dominio correspondiente.
func userUniqueError(err error) error {
	switch violatedConstraint(err) {
	case "users_username_key":
		return domain.ErrUsernameTaken
	case "users_email_key", "users_email_lower_idx":
		return domain.ErrEmailAlreadyExists
	default:
		return domain.ErrDuplicate
	}
}
