package ports

import "github.com/jhoicas/Empleos-api/internal/domain/entity"

// FeedRenderer serializa las ofertas recientes como feed (RSS).
type FeedRenderer interface {
	RenderJobs(jobs []*entity.Job) ([]byte, error)
}
