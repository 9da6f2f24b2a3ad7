package dto

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Page        int  `json:"page"`
	PageSize    int  `json:"page_size"`
	Total       int  `json:"total"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// NewPageResponse calcula los metadatos a partir del total sin paginar.
func NewPageResponse(page, size, total int) PageResponse {
	pages := (total + size - 1) / size
	if pages == 0 {
		pages = 1
	}
	return PageResponse{
		Page:        page,
		PageSize:    size,
		Total:       total,
		TotalPages:  pages,
		HasNext:     page < pages,
		HasPrevious: page > 1,
	}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse cuerpo de respuestas informativas (ej. avisos no fatales).
type MessageResponse struct {
	Message string `json:"message"`
}
