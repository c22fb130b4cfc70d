package repositories

import (
	"context"

	"github.com/AxelVC22/Inmuebles-api/internal/models"
)

type CatalogRepository interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	CategoryExists(ctx context.Context, id int64) (bool, error)
	SubtypeExists(ctx context.Context, id int64) (bool, error)
}

type catalogRepository struct {
	db DB
}

func NewCatalogRepository(db DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := r.db.Query(ctx, `
		SELECT c.idCategoria, c.nombre, s.idSubtipo, s.nombre
		FROM Categoria c
		JOIN Subtipo s ON s.idCategoria = c.idCategoria
		ORDER BY c.idCategoria, s.idSubtipo`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Category
	index := map[int64]int{}
	for rows.Next() {
		var catID int64
		var catName string
		var sub models.Subtype
		if err := rows.Scan(&catID, &catName, &sub.ID, &sub.Name); err != nil {
			return nil, err
		}
		sub.CategoryID = catID
		i, ok := index[catID]
		if !ok {
			out = append(out, models.Category{ID: catID, Name: catName})
			i = len(out) - 1
			index[catID] = i
		}
		out[i].Subtypes = append(out[i].Subtypes, sub)
	}
	return out, rows.Err()
}

func (r *catalogRepository) CategoryExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM Categoria WHERE idCategoria = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *catalogRepository) SubtypeExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM Subtipo WHERE idSubtipo = $1)`, id).Scan(&exists)
	return exists, err
}
