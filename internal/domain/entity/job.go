package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// JobType tipo de contratación de una oferta.
type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeFreelance  JobType = "freelance"
	JobTypeInternship JobType = "internship"
)

// JobTypes lista en el orden en que se muestran.
var JobTypes = []JobType{JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeFreelance, JobTypeInternship}

// Valid indica si t es uno de los tipos admitidos.
func (t JobType) Valid() bool {
	for _, jt := range JobTypes {
		if t == jt {
			return true
		}
	}
	return false
}

// Label nombre legible para reportes y feed.
func (t JobType) Label() string {
	switch t {
	case JobTypeFullTime:
		return "Tiempo completo"
	case JobTypePartTime:
		return "Medio tiempo"
	case JobTypeContract:
		return "Contrato"
	case JobTypeFreelance:
		return "Freelance"
	case JobTypeInternship:
		return "Práctica"
	default:
		return string(t)
	}
}

// Job representa una oferta publicada por un empleador.
// Slug se asigna al crear y no cambia después.
type Job struct {
	ID          string
	EmployerID  string
	Title       string
	Slug        string
	Description string
	CategoryID  string // vacío = sin categoría (NULL)
	Location    string
	SalaryMin   decimal.NullDecimal
	SalaryMax   decimal.NullDecimal
	JobType     JobType
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Solo lectura: se rellenan en las consultas con JOIN.
	CompanyName      string
	EmployerUsername string
	CategoryName     string
	CategorySlug     string
	ApplicationCount int
}
