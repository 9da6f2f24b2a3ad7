package postgres

import "github.com/jackc/pgx/v5/pgxpool"

// Repositories adaptadores PostgreSQL construidos sobre un mismo pool.
type Repositories struct {
	Users        *UserRepo
	Categories   *CategoryRepo
	Jobs         *JobRepo
	Applications *ApplicationRepo
	Analytics    *AnalyticsRepo
}

// NewRepositories arma todos los repositorios sobre el pool.
func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Users:        NewUserRepository(pool),
		Categories:   NewCategoryRepository(pool),
		Jobs:         NewJobRepository(pool),
		Applications: NewApplicationRepository(pool),
		Analytics:    NewAnalyticsRepository(pool),
	}
}
