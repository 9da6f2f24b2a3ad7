package migrations

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_ContieneEsquemaInicial(t *testing.T) {
	files, err := fs.Glob(FS, "*.sql")
	require.NoError(t, err)
	assert.Contains(t, files, "00001_init.sql")

	body, err := fs.ReadFile(FS, "00001_init.sql")
	require.NoError(t, err)
	assert.Contains(t, string(body), "-- +goose Up")
	assert.Contains(t, string(body), "UNIQUE (job_id, applicant_id)")
	assert.Contains(t, string(body), "users_username_key")
}

func TestFS_EmailUnicoSinMayusculas(t *testing.T) {
	body, err := fs.ReadFile(FS, "00002_users_email_ci.sql")
	require.NoError(t, err)
	assert.Contains(t, string(body), "DROP CONSTRAINT IF EXISTS users_email_key")
	assert.Contains(t, string(body), "CREATE UNIQUE INDEX IF NOT EXISTS users_email_lower_idx ON users (lower(email))")
}

func TestUp_UsaDirectorioRaiz(t *testing.T) {
	orig := upContext
	defer func() { upContext = orig }()

	var gotDir string
	upContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		gotDir = dir
		return nil
	}
	require.NoError(t, Up(context.Background(), nil))
	assert.Equal(t, ".", gotDir)
}

func TestUp_PropagaError(t *testing.T) {
	orig := upContext
	defer func() { upContext = orig }()

	boom := errors.New("boom")
	upContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return boom
	}
	err := Up(context.Background(), nil)
	assert.ErrorIs(t, err, boom)
}
