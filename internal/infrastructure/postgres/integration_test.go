//go:build integration

package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Empleos-api/internal/domain"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
	"github.com/jhoicas/Empleos-api/internal/domain/jobs"
	"github.com/jhoicas/Empleos-api/internal/infrastructure/migrations"
	"github.com/jhoicas/Empleos-api/pkg/config"
)

// Ejecutar con: TEST_DATABASE_URL=postgres://... go test -tags integration ./internal/infrastructure/postgres/
func newIntegrationRepos(t *testing.T) (Repositories, *pgxpool.Pool) {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := NewPool(ctx, config.DBConfig{DatabaseURL: url, MaxConns: 4})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, migrations.UpFromPool(ctx, pool))
	return NewRepositories(pool), pool
}

// createUser crea un usuario propio del test; al borrarlo caen sus ofertas y postulaciones.
func createUser(t *testing.T, repos Repositories, pool *pgxpool.Pool, employer bool) *entity.User {
	t.Helper()
	id := uuid.NewString()
	now := time.Now().UTC()
	u := &entity.User{
		ID: id, Username: "it-" + id[:8], Email: "it-" + id[:8] + "@empleos.test", PasswordHash: "x",
		IsEmployer: employer, IsSeeker: !employer, CompanyName: "Integración " + id[:8],
		CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, repos.Users.Create(context.Background(), u))
	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	})
	return u
}

func createJob(t *testing.T, repos Repositories, employerID, title string) *entity.Job {
	t.Helper()
	now := time.Now().UTC()
	j := &entity.Job{
		ID: uuid.NewString(), EmployerID: employerID, Title: title, Slug: "it-" + uuid.NewString(),
		Description: "prueba", Location: "Remote", JobType: entity.JobTypeFullTime, IsActive: true,
		CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, repos.Jobs.Create(context.Background(), j))
	return j
}

func TestIntegration_SearchEscapaComodines(t *testing.T) {
	repos, pool := newIntegrationRepos(t)
	ctx := context.Background()
	emp := createUser(t, repos, pool, true)
	tag := uuid.NewString()[:8]

	literal := createJob(t, repos, emp.ID, tag+" descuento 50% remoto")
	createJob(t, repos, emp.ID, tag+" descuento 500 remoto")
	underscore := createJob(t, repos, emp.ID, tag+" data_eng")
	createJob(t, repos, emp.ID, tag+" dataxeng")

	list, total, err := repos.Jobs.Search(ctx, jobs.NewFilter(tag+" descuento 50%", "", ""), 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, list, 1)
	assert.Equal(t, literal.Slug, list[0].Slug)

	list, total, err = repos.Jobs.Search(ctx, jobs.NewFilter(tag+" data_eng", "", ""), 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, list, 1)
	assert.Equal(t, underscore.Slug, list[0].Slug)
}

func TestIntegration_DuplicadosMapeanAErroresDeDominio(t *testing.T) {
	repos, pool := newIntegrationRepos(t)
	ctx := context.Background()
	emp := createUser(t, repos, pool, true)
	seeker := createUser(t, repos, pool, false)
	job := createJob(t, repos, emp.ID, "Backend Engineer")

	dupJob := *job
	dupJob.ID = uuid.NewString()
	assert.ErrorIs(t, repos.Jobs.Create(ctx, &dupJob), domain.ErrDuplicate)

	app := &entity.Application{
		ID: uuid.NewString(), JobID: job.ID, ApplicantID: seeker.ID, Resume: "resumes/cv.pdf",
		Status: entity.ApplicationPending, AppliedAt: time.Now().UTC(),
	}
	require.NoError(t, repos.Applications.Create(ctx, app))
	again := *app
	again.ID = uuid.NewString()
	assert.ErrorIs(t, repos.Applications.Create(ctx, &again), domain.ErrDuplicate)

	id := uuid.NewString()
	clash := &entity.User{
		ID: id, Username: "it-" + id[:8], Email: "IT-" + seeker.Username[3:] + "@EMPLEOS.TEST", PasswordHash: "x",
		IsSeeker: true, CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC(),
	}
	assert.ErrorIs(t, repos.Users.Create(ctx, clash), domain.ErrEmailAlreadyExists)

	sameName := *clash
	sameName.ID = uuid.NewString()
	sameName.Username = seeker.Username
	sameName.Email = "otro-" + id[:8] + "@empleos.test"
	assert.ErrorIs(t, repos.Users.Create(ctx, &sameName), domain.ErrUsernameTaken)
}

func TestIntegration_DirectorioDeEmpresas(t *testing.T) {
	repos, pool := newIntegrationRepos(t)
	ctx := context.Background()
	emp := createUser(t, repos, pool, true)
	seeker := createUser(t, repos, pool, false)
	createJob(t, repos, emp.ID, "Backend Engineer")
	closed := createJob(t, repos, emp.ID, "Data Engineer")
	closed.IsActive = false
	closed.UpdatedAt = time.Now().UTC()
	require.NoError(t, repos.Jobs.Update(ctx, closed))

	e, err := repos.Users.GetEmployer(ctx, emp.ID)
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Equal(t, 1, e.OpenJobs)
	assert.Equal(t, 2, e.TotalJobs)

	e, err = repos.Users.GetEmployer(ctx, seeker.ID)
	require.NoError(t, err)
	assert.Nil(t, e)

	e, err = repos.Users.GetEmployer(ctx, "no-es-uuid")
	require.NoError(t, err)
	assert.Nil(t, e)

	active, err := repos.Jobs.ListActiveByEmployer(ctx, emp.ID)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, emp.CompanyName, active[0].CompanyName)
}
