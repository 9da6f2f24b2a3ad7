package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SearchRequest parámetros del buscador público (GET /).
type SearchRequest struct {
	Query    string `query:"query"`
	Location string `query:"location"`
	Category string `query:"category"`
	Page     int    `query:"page"`
}

// JobResponse oferta en listados y detalle.
type JobResponse struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	Slug         string           `json:"slug"`
	Description  string           `json:"description"`
	Location     string           `json:"location"`
	JobType      string           `json:"job_type"`
	JobTypeLabel string           `json:"job_type_label"`
	SalaryMin    *decimal.Decimal `json:"salary_min,omitempty"`
	SalaryMax    *decimal.Decimal `json:"salary_max,omitempty"`
	IsActive     bool             `json:"is_active"`
	CompanyName  string           `json:"company_name"`
	CategoryName string           `json:"category_name,omitempty"`
	CategorySlug string           `json:"category_slug,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
}

// SearchResponse página de resultados más los filtros aplicados.
type SearchResponse struct {
	Jobs       []JobResponse      `json:"jobs"`
	Pagination PageResponse       `json:"pagination"`
	Filters    SearchRequest      `json:"filters"`
	Categories []CategoryResponse `json:"categories"`
}

// JobDetailResponse detalle; HasApplied solo es true para un visitante autenticado que ya se postuló.
type JobDetailResponse struct {
	JobResponse
	HasApplied bool `json:"has_applied"`
}

// AutocompleteResponse sugerencias; ambas listas siempre presentes (vacías si no hay término).
type AutocompleteResponse struct {
	Titles    []string `json:"titles"`
	Locations []string `json:"locations"`
}

// CreateJobRequest entrada para publicar una oferta. CategorySlug vacío = sin categoría.
type CreateJobRequest struct {
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	CategorySlug string           `json:"category"`
	Location     string           `json:"location"`
	SalaryMin    *decimal.Decimal `json:"salary_min"`
	SalaryMax    *decimal.Decimal `json:"salary_max"`
	JobType      string           `json:"job_type"`
}

// UpdateJobRequest edición completa de una oferta propia; el slug no cambia.
type UpdateJobRequest struct {
	CreateJobRequest
	IsActive *bool `json:"is_active"`
}
