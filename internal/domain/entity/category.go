package entity

import "time"

// Category agrupa ofertas (Desarrollo, Diseño, ...). Slug único global.
type Category struct {
	ID          string
	Name        string
	Slug        string
	Description string
	CreatedAt   time.Time
}
