// Package feed publica las ofertas activas más recientes como RSS 2.0.
package feed

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/beevik/etree"

	"github.com/jhoicas/Empleos-api/internal/application/ports"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
)

var _ ports.FeedRenderer = (*RSSRenderer)(nil)

// MaxItems ofertas incluidas en el feed.
const MaxItems = 20

// RSSRenderer arma el documento con etree; los enlaces se resuelven contra baseURL.
type RSSRenderer struct {
	title   string
	baseURL string
	now     func() time.Time
}

// NewRSSRenderer construye el renderer. baseURL sin barra final.
func NewRSSRenderer(title, baseURL string) *RSSRenderer {
	return &RSSRenderer{title: title, baseURL: strings.TrimSuffix(baseURL, "/"), now: time.Now}
}

// RenderJobs serializa hasta MaxItems ofertas en el orden recibido.
func (r *RSSRenderer) RenderJobs(jobs []*entity.Job) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	rss := doc.CreateElement("rss")
	rss.CreateAttr("version", "2.0")
	ch := rss.CreateElement("channel")
	ch.CreateElement("title").SetText(r.title)
	ch.CreateElement("link").SetText(r.baseURL + "/")
	ch.CreateElement("description").SetText("Ofertas de empleo más recientes")
	ch.CreateElement("lastBuildDate").SetText(r.now().UTC().Format(time.RFC1123Z))

	if len(jobs) > MaxItems {
		jobs = jobs[:MaxItems]
	}
	for _, j := range jobs {
		link := r.baseURL + "/job/" + j.Slug
		item := ch.CreateElement("item")
		item.CreateElement("title").SetText(itemTitle(j))
		item.CreateElement("link").SetText(link)
		guid := item.CreateElement("guid")
		guid.CreateAttr("isPermaLink", "true")
		guid.SetText(link)
		item.CreateElement("description").SetText(j.Description)
		if j.CategoryName != "" {
			item.CreateElement("category").SetText(j.CategoryName)
		}
		item.CreateElement("pubDate").SetText(j.CreatedAt.UTC().Format(time.RFC1123Z))
	}

	doc.Indent(2)
	var out bytes.Buffer
	if _, err := doc.WriteTo(&out); err != nil {
		return nil, fmt.Errorf("feed: serializar: %w", err)
	}
	return out.Bytes(), nil
}

// itemTitle "Título @ Empresa (Ubicación)".
func itemTitle(j *entity.Job) string {
	t := j.Title
	if j.CompanyName != "" {
		t += " @ " + j.CompanyName
	}
	if j.Location != "" {
		t += " (" + j.Location + ")"
	}
	return t
}
