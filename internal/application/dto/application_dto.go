package dto

import "time"

// ApplyRequest entrada del formulario de postulación (multipart ya leído).
type ApplyRequest struct {
	CoverLetter string
	ResumeName  string
	ResumeType  string
	Resume      []byte
}

// ApplicationResponse resultado de una postulación enviada.
type ApplicationResponse struct {
	ID            string    `json:"id"`
	JobSlug       string    `json:"job_slug"`
	JobTitle      string    `json:"job_title"`
	Status        string    `json:"status"`
	AppliedAt     time.Time `json:"applied_at"`
	ResumeIndexed bool      `json:"resume_indexed"`
}

// JobApplicationResponse postulación vista por el empleador dueño de la oferta.
type JobApplicationResponse struct {
	ID                string    `json:"id"`
	ApplicantUsername string    `json:"applicant_username"`
	ApplicantEmail    string    `json:"applicant_email"`
	CoverLetter       string    `json:"cover_letter"`
	ResumeURL         string    `json:"resume_url,omitempty"`
	ParsedText        string    `json:"parsed_text,omitempty"`
	Status            string    `json:"status"`
	AppliedAt         time.Time `json:"applied_at"`
}

// JobApplicationsResponse postulaciones de una oferta.
type JobApplicationsResponse struct {
	Job          JobResponse              `json:"job"`
	Applications []JobApplicationResponse `json:"applications"`
}

// MyApplicationResponse postulación vista por el candidato.
type MyApplicationResponse struct {
	ID           string    `json:"id"`
	JobTitle     string    `json:"job_title"`
	JobSlug      string    `json:"job_slug"`
	CompanyName  string    `json:"company_name"`
	CategoryName string    `json:"category_name,omitempty"`
	Status       string    `json:"status"`
	AppliedAt    time.Time `json:"applied_at"`
}
