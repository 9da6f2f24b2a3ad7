package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Empleos-api/internal/application/dto"
	"github.com/jhoicas/Empleos-api/internal/application/usecase"
)

// JobHandler detalle público, categorías, feed y gestión de ofertas del empleador.
type JobHandler struct {
	uc *usecase.JobUseCase
}

// NewJobHandler construye el handler.
func NewJobHandler(uc *usecase.JobUseCase) *JobHandler {
	return &JobHandler{uc: uc}
}

// Detail godoc
// @Summary      Detalle de una oferta
// @Description  has_applied solo se calcula si llega un token válido.
// @Tags         jobs
// @Produce      json
// @Param        slug  path  string  true  "Slug de la oferta"
// @Success      200  {object}  dto.JobDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /job/{slug} [get]
func (h *JobHandler) Detail(c *fiber.Ctx) error {
	out, err := h.uc.Detail(c.Context(), c.Params("slug"), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Categories godoc
// @Summary      Listar categorías
// @Tags         jobs
// @Produce      json
// @Success      200  {array}  dto.CategoryResponse
// @Router       /api/categories [get]
func (h *JobHandler) Categories(c *fiber.Ctx) error {
	out, err := h.uc.Categories(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Feed godoc
// @Summary      Feed RSS de las ofertas más recientes
// @Tags         jobs
// @Produce      xml
// @Success      200
// @Router       /feed.xml [get]
func (h *JobHandler) Feed(c *fiber.Ctx) error {
	body, err := h.uc.Feed(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/rss+xml; charset=utf-8")
	return c.Send(body)
}

// Dashboard godoc
// @Summary      Panel del empleador
// @Tags         employer
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.EmployerDashboardResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /employer/dashboard [get]
func (h *JobHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.Context(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Publicar oferta
// @Tags         employer
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateJobRequest  true  "Datos de la oferta"
// @Success      201  {object}  dto.JobResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /employer/jobs [post]
func (h *JobHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateJobRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Post(c.Context(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar oferta propia
// @Tags         employer
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        slug  path  string                true  "Slug de la oferta"
// @Param        body  body  dto.UpdateJobRequest  true  "Datos de la oferta"
// @Success      200  {object}  dto.JobResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /employer/job/{slug} [put]
func (h *JobHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateJobRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), GetUserID(c), c.Params("slug"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
