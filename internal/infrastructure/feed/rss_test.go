package feed

import (
	"fmt"
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Empleos-api/internal/domain/entity"
)

func TestRenderJobs_EstructuraRSS(t *testing.T) {
	r := NewRSSRenderer("Empleos", "https://empleos.example/")
	r.now = func() time.Time { return time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC) }

	out, err := r.RenderJobs([]*entity.Job{{
		Title: "Backend Engineer", Slug: "backend-engineer", CompanyName: "Acme", Location: "Berlin",
		Description: "Go & <Postgres>", CategoryName: "Development",
		CreatedAt: time.Date(2026, 1, 30, 8, 0, 0, 0, time.UTC),
	}})
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	assert.Equal(t, "2.0", doc.Root().SelectAttrValue("version", ""))

	items := doc.FindElements("//channel/item")
	require.Len(t, items, 1)
	assert.Equal(t, "Backend Engineer @ Acme (Berlin)", items[0].SelectElement("title").Text())
	assert.Equal(t, "https://empleos.example/job/backend-engineer", items[0].SelectElement("link").Text())
	assert.Equal(t, "Go & <Postgres>", items[0].SelectElement("description").Text(), "el texto se escapa y vuelve intacto")
	assert.Equal(t, "Development", items[0].SelectElement("category").Text())
}

func TestRenderJobs_LimitaItems(t *testing.T) {
	r := NewRSSRenderer("Empleos", "http://localhost:8080")
	jobs := make([]*entity.Job, 0, MaxItems+5)
	for i := 0; i < MaxItems+5; i++ {
		jobs = append(jobs, &entity.Job{Title: fmt.Sprintf("Oferta %d", i), Slug: fmt.Sprintf("oferta-%d", i)})
	}
	out, err := r.RenderJobs(jobs)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	assert.Len(t, doc.FindElements("//item"), MaxItems)
	assert.Nil(t, doc.FindElement("//item/category"), "sin categoría no hay elemento")
}
