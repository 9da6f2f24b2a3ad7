// Package storage guarda las hojas de vida en disco local o en S3 (o compatible).
package storage

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// resumeKey clave única por archivo: resumes/AAAA/MM/DD/<uuid><ext>.
func resumeKey(originalName string, now time.Time) string {
	return fmt.Sprintf("resumes/%04d/%02d/%02d/%s%s", now.Year(), now.Month(), now.Day(), uuid.New(), safeExt(originalName))
}

// safeExt extensión en minúsculas, solo alfanumérica y corta; "" si no cumple.
func safeExt(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if len(ext) < 2 || len(ext) > 8 {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
