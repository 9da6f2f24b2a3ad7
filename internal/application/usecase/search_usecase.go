package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Empleos-api/internal/application/dto"
	"github.com/jhoicas/Empleos-api/internal/domain"
	"github.com/jhoicas/Empleos-api/internal/domain/jobs"
	"github.com/jhoicas/Empleos-api/internal/domain/repository"
)

// SearchUseCase buscador público y autocompletado.
type SearchUseCase struct {
	jobRepo      repository.JobRepository
	categoryRepo repository.CategoryRepository
}

// NewSearchUseCase construye el caso de uso.
func NewSearchUseCase(jobRepo repository.JobRepository, categoryRepo repository.CategoryRepository) *SearchUseCase {
	return &SearchUseCase{jobRepo: jobRepo, categoryRepo: categoryRepo}
}

// Search devuelve la página pedida de ofertas activas que cumplen todos los filtros.
// Página < 1 se trata como 1. Una página posterior a la última es domain.ErrNotFound;
// la página 1 sin resultados es una respuesta válida.
func (uc *SearchUseCase) Search(ctx context.Context, in dto.SearchRequest) (*dto.SearchResponse, error) {
	f := jobs.NewFilter(in.Query, in.Location, in.Category)
	page := in.Page
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * jobs.SearchPageSize

	list, total, err := uc.jobRepo.Search(ctx, f, jobs.SearchPageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	if page > 1 && offset >= total {
		return nil, fmt.Errorf("%w: página %d fuera de rango", domain.ErrNotFound, page)
	}

	cats, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("search: categorías: %w", err)
	}

	out := &dto.SearchResponse{
		Jobs:       make([]dto.JobResponse, 0, len(list)),
		Pagination: dto.NewPageResponse(page, jobs.SearchPageSize, total),
		Filters:    dto.SearchRequest{Query: f.Query, Location: f.Location, Category: f.Category, Page: page},
		Categories: make([]dto.CategoryResponse, 0, len(cats)),
	}
	for _, j := range list {
		out.Jobs = append(out.Jobs, ToJobResponse(j))
	}
	for _, c := range cats {
		out.Categories = append(out.Categories, toCategoryResponse(c))
	}
	return out, nil
}

// Autocomplete hasta jobs.SuggestionLimit títulos y ubicaciones distintos que contienen term.
// Término vacío: listas vacías sin consultar el repositorio.
func (uc *SearchUseCase) Autocomplete(ctx context.Context, term string) (*dto.AutocompleteResponse, error) {
	out := &dto.AutocompleteResponse{Titles: []string{}, Locations: []string{}}
	term = strings.TrimSpace(term)
	if term == "" {
		return out, nil
	}
	titles, err := uc.jobRepo.SuggestTitles(ctx, term, jobs.SuggestionLimit)
	if err != nil {
		return nil, fmt.Errorf("autocomplete títulos: %w", err)
	}
	locations, err := uc.jobRepo.SuggestLocations(ctx, term, jobs.SuggestionLimit)
	if err != nil {
		return nil, fmt.Errorf("autocomplete ubicaciones: %w", err)
	}
	out.Titles = append(out.Titles, titles...)
	out.Locations = append(out.Locations, locations...)
	return out, nil
}
