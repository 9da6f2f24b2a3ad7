package ports

import "context"

// FileStorage guarda archivos subidos (hojas de vida) y devuelve una clave opaca.
type FileStorage interface {
	// Save persiste data y devuelve la clave con la que se referencia el archivo.
	// originalName solo se usa para conservar la extensión.
	Save(ctx context.Context, originalName string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
	// URL dirección de descarga para la clave (pública o prefirmada).
	URL(ctx context.Context, key string) (string, error)
}
