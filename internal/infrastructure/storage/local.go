package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jhoicas/Empleos-api/internal/application/ports"
)

var _ ports.FileStorage = (*LocalStorage)(nil)

// LocalStorage guarda archivos bajo un directorio raíz; se sirven en publicPrefix.
type LocalStorage struct {
	root         string
	publicPrefix string
}

// NewLocalStorage crea el directorio raíz si no existe.
func NewLocalStorage(root, publicPrefix string) (*LocalStorage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("storage: crear %s: %w", root, err)
	}
	return &LocalStorage{root: root, publicPrefix: strings.TrimSuffix(publicPrefix, "/")}, nil
}

// Root directorio donde se guardan los archivos.
func (s *LocalStorage) Root() string { return s.root }

func (s *LocalStorage) Save(_ context.Context, originalName string, data []byte, _ string) (string, error) {
	key := resumeKey(originalName, time.Now())
	path := filepath.Join(s.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("storage: crear directorio: %w", err)
	}
	if err := os.WriteFile(path, data, 0o640); err != nil {
		return "", fmt.Errorf("storage: escribir archivo: %w", err)
	}
	return key, nil
}

// Delete borra el archivo; una clave inexistente no es error.
func (s *LocalStorage) Delete(_ context.Context, key string) error {
	path, err := s.pathFor(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("storage: borrar %s: %w", key, err)
	}
	return nil
}

func (s *LocalStorage) URL(_ context.Context, key string) (string, error) {
	if _, err := s.pathFor(key); err != nil {
		return "", err
	}
	return s.publicPrefix + "/" + key, nil
}

// pathFor rechaza claves que escapan del directorio raíz.
func (s *LocalStorage) pathFor(key string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(key))
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("storage: clave inválida %q", key)
	}
	return filepath.Join(s.root, clean), nil
}
