package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Empleos-api/internal/application/analytics"
)

// StatsHandler estadísticas del portal para empleadores.
type StatsHandler struct {
	uc *appanalytics.StatsUseCase
}

// NewStatsHandler construye el handler.
func NewStatsHandler(uc *appanalytics.StatsUseCase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// GetStats godoc
// @Summary      Estadísticas del portal
// @Description  Totales, top 5 categorías, postulaciones por día UTC (30 días) y últimas 10 postulaciones.
// @Tags         employer
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StatsResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /employer/stats [get]
func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.uc.GetStats(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(stats)
}
