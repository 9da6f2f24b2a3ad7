package entity

import "time"

// ApplicationStatus estado de revisión de una postulación.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationReviewed ApplicationStatus = "reviewed"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

// Application postulación de un usuario a una oferta. (JobID, ApplicantID) es único.
type Application struct {
	ID          string
	JobID       string
	ApplicantID string
	Resume      string // referencia opaca en el storage
	CoverLetter string
	ParsedText  string // solo para hojas de vida PDF
	Status      ApplicationStatus
	AppliedAt   time.Time

	// Solo lectura: se rellenan en las consultas con JOIN.
	JobTitle          string
	JobSlug           string
	CompanyName       string
	CategoryName      string
	ApplicantUsername string
	ApplicantEmail    string
}
