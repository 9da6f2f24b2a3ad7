package http

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Empleos-api/internal/application/applications"
	"github.com/jhoicas/Empleos-api/internal/application/dto"
)

// ApplicationHandler postulaciones: envío, listados y reporte PDF.
type ApplicationHandler struct {
	uc *applications.UseCase
}

// NewApplicationHandler construye el handler.
func NewApplicationHandler(uc *applications.UseCase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

// Apply godoc
// @Summary      Postularse a una oferta
// @Description  Multipart con la hoja de vida (resume) y carta opcional. Los PDF se indexan.
// @Tags         applications
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Param        slug          path      string  true   "Slug de la oferta"
// @Param        resume        formData  file    true   "Hoja de vida"
// @Param        cover_letter  formData  string  false  "Carta de presentación"
// @Success      201  {object}  dto.ApplicationResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /job/{slug}/apply [post]
func (h *ApplicationHandler) Apply(c *fiber.Ctx) error {
	in := dto.ApplyRequest{CoverLetter: c.FormValue("cover_letter")}

	// Sin archivo (o sin multipart) el caso de uso responde con el error de validación.
	if fh, err := c.FormFile("resume"); err == nil {
		f, err := fh.Open()
		if err != nil {
			return badBody(c)
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return badBody(c)
		}
		in.ResumeName = fh.Filename
		in.ResumeType = fh.Header.Get(fiber.HeaderContentType)
		in.Resume = data
	}

	out, err := h.uc.Submit(c.Context(), GetUserID(c), c.Params("slug"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Mine godoc
// @Summary      Mis postulaciones
// @Tags         applications
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MyApplicationResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/my-applications [get]
func (h *ApplicationHandler) Mine(c *fiber.Ctx) error {
	out, err := h.uc.ListMine(c.Context(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListForJob godoc
// @Summary      Postulaciones de una oferta propia
// @Tags         employer
// @Security     Bearer
// @Produce      json
// @Param        slug  path  string  true  "Slug de la oferta"
// @Success      200  {object}  dto.JobApplicationsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /employer/job/{slug}/applications [get]
func (h *ApplicationHandler) ListForJob(c *fiber.Ctx) error {
	out, err := h.uc.ListForJob(c.Context(), GetUserID(c), c.Params("slug"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Reporte PDF de candidatos de una oferta propia
// @Tags         employer
// @Security     Bearer
// @Produce      application/pdf
// @Param        slug  path  string  true  "Slug de la oferta"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /employer/job/{slug}/applications.pdf [get]
func (h *ApplicationHandler) Report(c *fiber.Ctx) error {
	body, filename, err := h.uc.ApplicantsReport(c.Context(), GetUserID(c), c.Params("slug"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Attachment(filename)
	return c.Send(body)
}
