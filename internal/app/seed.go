package app

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/AxelVC22/Inmuebles-api/internal/utils"
)

var defaultCatalog = map[string][]string{
	"Residencial": {"Casa", "Departamento", "Condominio", "Dúplex"},
	"Comercial":   {"Local", "Oficina", "Bodega comercial"},
	"Industrial":  {"Nave industrial", "Terreno industrial"},
	"Terreno":     {"Terreno urbano", "Terreno rústico"},
}

// SeedCatalog inserts the category/subtype catalog on first boot.
// Existing catalogs are left alone.
func SeedCatalog(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM Categoria`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for category, subtypes := range defaultCatalog {
		var catID int64
		err := pool.QueryRow(ctx,
			`INSERT INTO Categoria (nombre) VALUES ($1) RETURNING idCategoria`,
			category).Scan(&catID)
		if err != nil {
			return err
		}
		for _, subtype := range subtypes {
			_, err := pool.Exec(ctx,
				`INSERT INTO Subtipo (idCategoria, nombre) VALUES ($1, $2)`,
				catID, subtype)
			if err != nil {
				return err
			}
		}
	}
	utils.Logger.Info("seeded property catalog")
	return nil
}
