package pdf

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Empleos-api/internal/domain/entity"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "500", formatMoney("500"))
	assert.Equal(t, "25.000", formatMoney("25000"))
	assert.Equal(t, "1.000.000", formatMoney("1000000"))
}

func TestSalaryRange(t *testing.T) {
	job := &entity.Job{
		SalaryMin: decimal.NewNullDecimal(decimal.NewFromInt(40000)),
		SalaryMax: decimal.NewNullDecimal(decimal.NewFromInt(60000)),
	}
	assert.Equal(t, "$40.000 - $60.000", salaryRange(job))
	job.SalaryMax = decimal.NullDecimal{}
	assert.Equal(t, "desde $40.000", salaryRange(job))
	assert.Equal(t, "No especificado", salaryRange(&entity.Job{}))
}

func TestGenerateApplicantsReport_DevuelvePDF(t *testing.T) {
	g := NewMarotoReportGenerator()
	g.now = func() time.Time { return time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC) }

	job := &entity.Job{Title: "Backend Engineer", CompanyName: "Acme", Location: "Berlin", JobType: entity.JobTypeFullTime}
	apps := []*entity.Application{
		{ApplicantUsername: "ana", ApplicantEmail: "ana@mail.io", Status: entity.ApplicationPending, AppliedAt: time.Now()},
	}
	out, err := g.GenerateApplicantsReport(context.Background(), job, apps)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))

	empty, err := g.GenerateApplicantsReport(context.Background(), job, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, empty)
}
