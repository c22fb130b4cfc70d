package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/AxelVC22/Inmuebles-api/internal/models"
)

type PreferenceRepository interface {
	// Upsert saves the user's single preference row, replacing any
	// previous values.
	Upsert(ctx context.Context, pref *models.Preference) error
	GetByUserID(ctx context.Context, userID int64) (*models.Preference, error)
}

type preferenceRepository struct {
	db DB
}

func NewPreferenceRepository(db DB) PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (r *preferenceRepository) Upsert(ctx context.Context, pref *models.Preference) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO Preferencias (idUsuario, presupuestoMin, presupuestoMax, idCategoria)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (idUsuario) DO UPDATE SET
			presupuestoMin = EXCLUDED.presupuestoMin,
			presupuestoMax = EXCLUDED.presupuestoMax,
			idCategoria = EXCLUDED.idCategoria
		RETURNING idPreferencias`,
		pref.UserID, pref.BudgetMin, pref.BudgetMax, pref.CategoryID,
	).Scan(&pref.ID)
}

func (r *preferenceRepository) GetByUserID(ctx context.Context, userID int64) (*models.Preference, error) {
	var pref models.Preference
	var catName *string
	err := r.db.QueryRow(ctx, `
		SELECT p.idPreferencias, p.idUsuario, p.presupuestoMin, p.presupuestoMax,
			p.idCategoria, c.nombre
		FROM Preferencias p
		LEFT JOIN Categoria c ON c.idCategoria = p.idCategoria
		WHERE p.idUsuario = $1`, userID,
	).Scan(&pref.ID, &pref.UserID, &pref.BudgetMin, &pref.BudgetMax, &pref.CategoryID, &catName)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if pref.CategoryID != nil && catName != nil {
		pref.Category = &models.Category{ID: *pref.CategoryID, Name: *catName}
	}
	return &pref, nil
}
