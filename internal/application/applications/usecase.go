// Package applications contiene el flujo de postulación y sus consultas.
package applications

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Empleos-api/internal/application/dto"
	"github.com/jhoicas/Empleos-api/internal/application/ports"
	"github.com/jhoicas/Empleos-api/internal/application/usecase"
	"github.com/jhoicas/Empleos-api/internal/domain"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
	"github.com/jhoicas/Empleos-api/internal/domain/repository"
	"github.com/jhoicas/Empleos-api/pkg/logger"
)

// Deps dependencias del caso de uso.
type Deps struct {
	Jobs         repository.JobRepository
	Applications repository.ApplicationRepository
	Users        repository.UserRepository
	Storage      ports.FileStorage
	Extractor    ports.ResumeTextExtractor
	Notifier     ports.Notifier
	Reports      ports.ApplicantsReportGenerator
	Log          *logger.Logger
}

// UseCase postulaciones: envío, listado del empleador, reporte PDF y listado del candidato.
type UseCase struct {
	jobs      repository.JobRepository
	apps      repository.ApplicationRepository
	users     repository.UserRepository
	storage   ports.FileStorage
	extractor ports.ResumeTextExtractor
	notifier  ports.Notifier
	reports   ports.ApplicantsReportGenerator
	log       *logger.Logger
	now       func() time.Time
}

// NewUseCase construye el caso de uso. Log nil usa un logger mudo.
func NewUseCase(d Deps) *UseCase {
	log := d.Log
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{
		jobs:      d.Jobs,
		apps:      d.Applications,
		users:     d.Users,
		storage:   d.Storage,
		extractor: d.Extractor,
		notifier:  d.Notifier,
		reports:   d.Reports,
		log:       log,
		now:       time.Now,
	}
}

// Submit registra la postulación de applicantID a la oferta slug.
//
//  1. Oferta inexistente -> domain.ErrJobNotFound.
//  2. Ya existe postulación -> domain.ErrAlreadyApplied, sin efectos.
//  3. Hoja de vida .pdf -> texto extraído (puede quedar vacío); otros formatos no se procesan.
//  4. Persistencia; si una carrera concurrente gana el UNIQUE -> domain.ErrAlreadyApplied
//     y el archivo subido se borra.
//  5. Correos al candidato y al empleador; sus fallos solo se registran en el log.
func (uc *UseCase) Submit(ctx context.Context, applicantID, slug string, in dto.ApplyRequest) (*dto.ApplicationResponse, error) {
	job, err := uc.jobs.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, domain.ErrJobNotFound
	}
	if len(in.Resume) == 0 || strings.TrimSpace(in.ResumeName) == "" {
		return nil, fmt.Errorf("%w: la hoja de vida es obligatoria", domain.ErrInvalidInput)
	}

	exists, err := uc.apps.Exists(ctx, job.ID, applicantID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrAlreadyApplied
	}

	parsed := ""
	if isPDF(in.ResumeName) {
		parsed = uc.extractor.ExtractText(in.Resume)
	}

	key, err := uc.storage.Save(ctx, in.ResumeName, in.Resume, in.ResumeType)
	if err != nil {
		return nil, fmt.Errorf("guardar hoja de vida: %w", err)
	}

	app := &entity.Application{
		ID:          uuid.New().String(),
		JobID:       job.ID,
		ApplicantID: applicantID,
		Resume:      key,
		CoverLetter: strings.TrimSpace(in.CoverLetter),
		ParsedText:  parsed,
		Status:      entity.ApplicationPending,
		AppliedAt:   uc.now(),
	}
	if err := uc.apps.Create(ctx, app); err != nil {
		if delErr := uc.storage.Delete(ctx, key); delErr != nil {
			uc.log.Warn().Err(delErr).Str("key", key).Msg("applications: no se pudo borrar la hoja de vida huérfana")
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.ErrAlreadyApplied
		}
		return nil, err
	}

	uc.notify(ctx, job, app)

	return &dto.ApplicationResponse{
		ID:            app.ID,
		JobSlug:       job.Slug,
		JobTitle:      job.Title,
		Status:        string(app.Status),
		AppliedAt:     app.AppliedAt,
		ResumeIndexed: parsed != "",
	}, nil
}

// notify avisa al candidato y al empleador. Nunca falla.
func (uc *UseCase) notify(ctx context.Context, job *entity.Job, app *entity.Application) {
	if uc.notifier == nil {
		return
	}
	applicant, err := uc.users.GetByID(ctx, app.ApplicantID)
	if err != nil || applicant == nil {
		uc.log.Warn().Err(err).Str("applicant_id", app.ApplicantID).Msg("applications: candidato no encontrado para notificar")
	} else {
		uc.send(ctx, ports.Message{
			To:      []string{applicant.Email},
			Subject: "Postulación recibida: " + job.Title,
			Body: fmt.Sprintf("Hola %s,\n\nRecibimos tu postulación a %s en %s.\n",
				applicant.Username, job.Title, companyOf(job)),
		})
	}

	employer, err := uc.users.GetByID(ctx, job.EmployerID)
	if err != nil || employer == nil {
		uc.log.Warn().Err(err).Str("employer_id", job.EmployerID).Msg("applications: empleador no encontrado para notificar")
		return
	}
	name := app.ApplicantID
	if applicant != nil {
		name = applicant.Username
	}
	uc.send(ctx, ports.Message{
		To:      []string{employer.Email},
		Subject: "Nuevo candidato para " + job.Title,
		Body:    fmt.Sprintf("%s se postuló a tu oferta %s.\n", name, job.Title),
	})
}

func (uc *UseCase) send(ctx context.Context, msg ports.Message) {
	if err := uc.notifier.Send(ctx, msg); err != nil {
		uc.log.Error().Err(err).Strs("to", msg.To).Str("subject", msg.Subject).Msg("applications: fallo al enviar correo")
	}
}

// ListForJob postulaciones de una oferta del empleador. Oferta ajena o inexistente -> ErrJobNotFound.
func (uc *UseCase) ListForJob(ctx context.Context, employerID, slug string) (*dto.JobApplicationsResponse, error) {
	job, list, err := uc.ownedJobApplications(ctx, employerID, slug)
	if err != nil {
		return nil, err
	}
	out := &dto.JobApplicationsResponse{
		Job:          usecase.ToJobResponse(job),
		Applications: make([]dto.JobApplicationResponse, 0, len(list)),
	}
	for _, a := range list {
		url, err := uc.storage.URL(ctx, a.Resume)
		if err != nil {
			uc.log.Warn().Err(err).Str("application_id", a.ID).Msg("applications: sin URL para la hoja de vida")
		}
		out.Applications = append(out.Applications, dto.JobApplicationResponse{
			ID:                a.ID,
			ApplicantUsername: a.ApplicantUsername,
			ApplicantEmail:    a.ApplicantEmail,
			CoverLetter:       a.CoverLetter,
			ResumeURL:         url,
			ParsedText:        a.ParsedText,
			Status:            string(a.Status),
			AppliedAt:         a.AppliedAt,
		})
	}
	return out, nil
}

// ApplicantsReport PDF con los candidatos de la oferta y el nombre de archivo sugerido.
func (uc *UseCase) ApplicantsReport(ctx context.Context, employerID, slug string) ([]byte, string, error) {
	job, list, err := uc.ownedJobApplications(ctx, employerID, slug)
	if err != nil {
		return nil, "", err
	}
	doc, err := uc.reports.GenerateApplicantsReport(ctx, job, list)
	if err != nil {
		return nil, "", err
	}
	return doc, "candidatos-" + job.Slug + ".pdf", nil
}

// ListMine postulaciones del candidato, más recientes primero.
func (uc *UseCase) ListMine(ctx context.Context, applicantID string) ([]dto.MyApplicationResponse, error) {
	list, err := uc.apps.ListByApplicant(ctx, applicantID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MyApplicationResponse, 0, len(list))
	for _, a := range list {
		out = append(out, dto.MyApplicationResponse{
			ID:           a.ID,
			JobTitle:     a.JobTitle,
			JobSlug:      a.JobSlug,
			CompanyName:  a.CompanyName,
			CategoryName: a.CategoryName,
			Status:       string(a.Status),
			AppliedAt:    a.AppliedAt,
		})
	}
	return out, nil
}

// ownedJobApplications la propiedad se decide por jobs.employer_id.
func (uc *UseCase) ownedJobApplications(ctx context.Context, employerID, slug string) (*entity.Job, []*entity.Application, error) {
	job, err := uc.jobs.GetByEmployerAndSlug(ctx, employerID, slug)
	if err != nil {
		return nil, nil, err
	}
	if job == nil {
		return nil, nil, domain.ErrJobNotFound
	}
	list, err := uc.apps.ListByJob(ctx, job.ID)
	if err != nil {
		return nil, nil, err
	}
	return job, list, nil
}

// isPDF extensión .pdf sin distinguir mayúsculas.
func isPDF(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".pdf")
}

func companyOf(job *entity.Job) string {
	if job.CompanyName != "" {
		return job.CompanyName
	}
	return job.EmployerUsername
}
