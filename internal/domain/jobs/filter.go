package jobs

import (
	"strings"

	"github.com/jhoicas/Empleos-api/internal/domain/entity"
)

const (
	// SearchPageSize ofertas por página en el listado público.
	SearchPageSize = 10
	// SuggestionLimit máximo de títulos y de ubicaciones en el autocompletado.
	SuggestionLimit = 5
)

// Filter criterios del buscador público. Campos vacíos no filtran.
type Filter struct {
	Query    string // título, descripción o empresa (contiene, sin mayúsculas)
	Location string // ubicación (contiene, sin mayúsculas)
	Category string // slug exacto
}

// NewFilter normaliza la entrada: espacios alrededor se ignoran y un campo
// con solo espacios equivale a no filtrar.
func NewFilter(query, location, category string) Filter {
	return Filter{
		Query:    strings.TrimSpace(query),
		Location: strings.TrimSpace(location),
		Category: strings.TrimSpace(category),
	}
}

// Matches define la semántica del buscador: solo ofertas activas y todos los
// criterios presentes deben cumplirse (AND). Los adaptadores SQL la replican.
func (f Filter) Matches(j *entity.Job) bool {
	if !j.IsActive {
		return false
	}
	if f.Query != "" &&
		!ContainsFold(j.Title, f.Query) &&
		!ContainsFold(j.Description, f.Query) &&
		!ContainsFold(j.CompanyName, f.Query) {
		return false
	}
	if f.Location != "" && !ContainsFold(j.Location, f.Location) {
		return false
	}
	if f.Category != "" && j.CategorySlug != f.Category {
		return false
	}
	return true
}

// ContainsFold substring sin distinguir mayúsculas.
func ContainsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
