// Package jobs reúne las reglas puras sobre ofertas: slug, filtro de búsqueda y rango salarial.
package jobs

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jhoicas/Empleos-api/internal/domain"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	// maxSlugBase deja margen para el sufijo numérico dentro de VARCHAR(250).
	maxSlugBase     = 240
	fallbackSlug    = "oferta"
	maxSlugAttempts = 1000
)

// SlugExists consulta si un slug ya está tomado en el almacenamiento.
type SlugExists func(ctx context.Context, slug string) (bool, error)

// Slugify convierte un título en slug ASCII: quita tildes, pasa a minúsculas,
// descarta puntuación y une palabras con "-". Puede devolver "".
func Slugify(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	ascii, _, err := transform.String(t, s)
	if err != nil {
		ascii = s
	}
	ascii = strings.ToLower(ascii)

	var b strings.Builder
	pendingDash := false
	for _, r := range ascii {
		switch {
		case r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'):
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-':
			pendingDash = true
		}
	}

	out := strings.Trim(b.String(), "-_")
	if len(out) > maxSlugBase {
		out = strings.TrimRight(out[:maxSlugBase], "-_")
	}
	return out
}

// BaseSlug slug del título o "oferta" si el título no deja caracteres válidos.
func BaseSlug(title string) string {
	if s := Slugify(title); s != "" {
		return s
	}
	return fallbackSlug
}

// UniqueSlug devuelve el primer slug libre entre base, base-1, base-2, ...
// La restricción UNIQUE de la tabla sigue siendo la garantía final.
func UniqueSlug(ctx context.Context, title string, exists SlugExists) (string, error) {
	base := BaseSlug(title)
	slug := base
	for n := 1; n <= maxSlugAttempts; n++ {
		taken, err := exists(ctx, slug)
		if err != nil {
			return "", fmt.Errorf("verificar slug: %w", err)
		}
		if !taken {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, n)
	}
	return "", fmt.Errorf("%w: sin slug libre para %q", domain.ErrDuplicate, base)
}
