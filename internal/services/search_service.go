package services

import (
	"context"

	"github.com/AxelVC22/Inmuebles-api/internal/models"
	"github.com/AxelVC22/Inmuebles-api/internal/repositories"
	"github.com/AxelVC22/Inmuebles-api/internal/utils"
)

// SearchResult pairs a page of listing cards with its metadata.
type SearchResult struct {
	Properties []models.ListingCard  `json:"inmuebles"`
	Pagination models.PaginationMeta `json:"paginacion"`
}

type SearchService interface {
	Search(ctx context.Context, filter repositories.ListingFilter) (*SearchResult, error)
	// Recommended lists published properties matching the user's saved
	// preferences: budget range across both operation types plus the
	// preferred category.
	Recommended(ctx context.Context, userID int64, page, pageSize int) (*SearchResult, error)
}

type searchService struct {
	properties  repositories.PropertyRepository
	preferences repositories.PreferenceRepository
}

func NewSearchService(properties repositories.PropertyRepository, preferences repositories.PreferenceRepository) SearchService {
	return &searchService{properties: properties, preferences: preferences}
}

func (s *searchService) Search(ctx context.Context, filter repositories.ListingFilter) (*SearchResult, error) {
	filter.Normalize()
	cards, total, err := s.properties.SearchCards(ctx, &filter)
	if err != nil {
		return nil, err
	}
	return &SearchResult{
		Properties: cards,
		Pagination: models.NewPaginationMeta(filter.Page, filter.PageSize, total),
	}, nil
}

func (s *searchService) Recommended(ctx context.Context, userID int64, page, pageSize int) (*SearchResult, error) {
	pref, err := s.preferences.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if pref == nil {
		return nil, utils.NewValidationError("Configura tus preferencias para recibir recomendaciones")
	}

	filter := repositories.ListingFilter{
		CategoryID: pref.CategoryID,
		BudgetMin:  pref.BudgetMin,
		BudgetMax:  pref.BudgetMax,
		Page:       page,
		PageSize:   pageSize,
	}
	return s.Search(ctx, filter)
}
