package dtos

import "github.com/AxelVC22/Inmuebles-api/internal/models"

type SavePreferencesRequest struct {
	BudgetMin  *float64 `json:"presupuestoMin,omitempty" validate:"omitempty,gte=0"`
	BudgetMax  *float64 `json:"presupuestoMax,omitempty" validate:"omitempty,gte=0"`
	CategoryID *int64   `json:"idCategoria,omitempty" validate:"omitempty,gt=0"`
}

func (r *SavePreferencesRequest) ToModel() *models.Preference {
	return &models.Preference{
		BudgetMin:  r.BudgetMin,
		BudgetMax:  r.BudgetMax,
		CategoryID: r.CategoryID,
	}
}
