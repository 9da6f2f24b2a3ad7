package jobs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Empleos-api/internal/domain/entity"
	"github.com/jhoicas/Empleos-api/internal/domain/jobs"
)

func backendBerlin() *entity.Job {
	return &entity.Job{
		Title:        "Backend Engineer",
		Description:  "Servicios en Go y PostgreSQL",
		Location:     "Berlin, Germany",
		CompanyName:  "Acme GmbH",
		CategorySlug: "development",
		IsActive:     true,
	}
}

func TestFilter_Matches(t *testing.T) {
	j := backendBerlin()

	cases := []struct {
		name string
		f    jobs.Filter
		want bool
	}{
		{"sin filtros", jobs.NewFilter("", "", ""), true},
		{"query en título", jobs.NewFilter("backend", "", ""), true},
		{"query en descripción", jobs.NewFilter("POSTGRES", "", ""), true},
		{"query en empresa", jobs.NewFilter("acme", "", ""), true},
		{"query sin coincidencia", jobs.NewFilter("frontend", "", ""), false},
		{"ubicación parcial", jobs.NewFilter("", "berl", ""), true},
		{"ubicación distinta", jobs.NewFilter("", "Paris", ""), false},
		{"categoría exacta", jobs.NewFilter("", "", "development"), true},
		{"categoría no es substring", jobs.NewFilter("", "", "dev"), false},
		{"AND completo", jobs.NewFilter("Backend", "Berlin", "development"), true},
		{"AND con un fallo", jobs.NewFilter("Backend", "Berlin", "design"), false},
		{"solo espacios no filtra", jobs.NewFilter("   ", " ", ""), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.f.Matches(j))
		})
	}
}

func TestFilter_InactivaNuncaCoincide(t *testing.T) {
	j := backendBerlin()
	j.IsActive = false
	for _, f := range []jobs.Filter{
		jobs.NewFilter("", "", ""),
		jobs.NewFilter("Backend", "", ""),
		jobs.NewFilter("", "Berlin", "development"),
	} {
		assert.False(t, f.Matches(j))
	}
}
