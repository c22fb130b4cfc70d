package services

import (
	"context"

	"github.com/AxelVC22/Inmuebles-api/internal/models"
	"github.com/AxelVC22/Inmuebles-api/internal/repositories"
	"github.com/AxelVC22/Inmuebles-api/internal/utils"
)

type PreferenceService interface {
	Save(ctx context.Context, userID int64, pref *models.Preference) (*models.Preference, error)
	Get(ctx context.Context, userID int64) (*models.Preference, error)
}

type preferenceService struct {
	preferences repositories.PreferenceRepository
	catalogs    repositories.CatalogRepository
}

func NewPreferenceService(preferences repositories.PreferenceRepository, catalogs repositories.CatalogRepository) PreferenceService {
	return &preferenceService{preferences: preferences, catalogs: catalogs}
}

func (s *preferenceService) Save(ctx context.Context, userID int64, pref *models.Preference) (*models.Preference, error) {
	if pref.BudgetMin != nil && *pref.BudgetMin < 0 {
		return nil, utils.NewValidationError("El presupuesto mínimo no puede ser negativo")
	}
	if pref.BudgetMax != nil && *pref.BudgetMax < 0 {
		return nil, utils.NewValidationError("El presupuesto máximo no puede ser negativo")
	}
	if pref.BudgetMin != nil && pref.BudgetMax != nil && *pref.BudgetMin > *pref.BudgetMax {
		return nil, utils.NewValidationError("El presupuesto mínimo no puede exceder al máximo")
	}
	if pref.CategoryID != nil {
		ok, err := s.catalogs.CategoryExists(ctx, *pref.CategoryID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, utils.NewValidationError("La categoría no existe")
		}
	}

	pref.UserID = userID
	if err := s.preferences.Upsert(ctx, pref); err != nil {
		return nil, err
	}
	return s.preferences.GetByUserID(ctx, userID)
}

// Get returns the stored preferences, or nil without error when the
// user has not configured any yet.
func (s *preferenceService) Get(ctx context.Context, userID int64) (*models.Preference, error) {
	return s.preferences.GetByUserID(ctx, userID)
}
