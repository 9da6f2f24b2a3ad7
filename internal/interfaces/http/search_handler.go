package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Empleos-api/internal/application/dto"
	"github.com/jhoicas/Empleos-api/internal/application/usecase"
)

// SearchHandler buscador público y autocompletado.
type SearchHandler struct {
	uc *usecase.SearchUseCase
}

// NewSearchHandler construye el handler.
func NewSearchHandler(uc *usecase.SearchUseCase) *SearchHandler {
	return &SearchHandler{uc: uc}
}

// Search godoc
// @Summary      Buscar ofertas activas
// @Description  Filtros combinados con AND. 10 resultados por página, más recientes primero.
// @Tags         jobs
// @Produce      json
// @Param        query     query  string  false  "Texto en título, descripción o empresa"
// @Param        location  query  string  false  "Ubicación (contiene)"
// @Param        category  query  string  false  "Slug de categoría"
// @Param        page      query  int     false  "Página (default 1)"
// @Success      200  {object}  dto.SearchResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       / [get]
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	in := dto.SearchRequest{
		Query:    c.Query("query"),
		Location: c.Query("location"),
		Category: c.Query("category"),
		// Un valor no numérico cae a la página 1.
		Page: c.QueryInt("page", 1),
	}
	out, err := h.uc.Search(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Autocomplete godoc
// @Summary      Sugerencias de títulos y ubicaciones
// @Tags         jobs
// @Produce      json
// @Param        term  query  string  false  "Texto a completar"
// @Success      200  {object}  dto.AutocompleteResponse
// @Router       /api/autocomplete [get]
func (h *SearchHandler) Autocomplete(c *fiber.Ctx) error {
	out, err := h.uc.Autocomplete(c.Context(), c.Query("term"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
