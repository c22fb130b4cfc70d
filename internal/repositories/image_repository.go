package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/AxelVC22/Inmuebles-api/internal/models"
	"github.com/AxelVC22/Inmuebles-api/internal/utils"
)

type ImageRepository interface {
	Create(ctx context.Context, img *models.PropertyImage) error
	ListByProperty(ctx context.Context, propertyID int64) ([]models.PropertyImage, error)
	Get(ctx context.Context, imageID int64) (*models.PropertyImage, error)
	SetVisibility(ctx context.Context, imageID int64, visible bool) error
	Delete(ctx context.Context, imageID int64) error
}

type imageRepository struct {
	db DB
}

func NewImageRepository(db DB) ImageRepository {
	return &imageRepository{db: db}
}

func (r *imageRepository) Create(ctx context.Context, img *models.PropertyImage) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO Archivo (idInmueble, nombre, extension, tipoMime, contenido,
			esPortada, visible)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING idArchivo, fechaSubida`,
		img.PropertyID, img.Name, img.Extension, img.MimeType, img.Data,
		img.IsCover, img.Visible,
	).Scan(&img.ID, &img.UploadedAt)
}

func (r *imageRepository) ListByProperty(ctx context.Context, propertyID int64) ([]models.PropertyImage, error) {
	rows, err := r.db.Query(ctx, `
		SELECT idArchivo, idInmueble, nombre, extension, tipoMime, contenido,
			esPortada, visible, fechaSubida
		FROM Archivo WHERE idInmueble = $1
		ORDER BY esPortada DESC, idArchivo`, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.PropertyImage{}
	for rows.Next() {
		var img models.PropertyImage
		err := rows.Scan(&img.ID, &img.PropertyID, &img.Name, &img.Extension,
			&img.MimeType, &img.Data, &img.IsCover, &img.Visible, &img.UploadedAt)
		if err != nil {
			return nil, err
		}
		out = append(out, img)
	}
	return out, rows.Err()
}

func (r *imageRepository) Get(ctx context.Context, imageID int64) (*models.PropertyImage, error) {
	var img models.PropertyImage
	err := r.db.QueryRow(ctx, `
		SELECT idArchivo, idInmueble, nombre, extension, tipoMime, contenido,
			esPortada, visible, fechaSubida
		FROM Archivo WHERE idArchivo = $1`, imageID,
	).Scan(&img.ID, &img.PropertyID, &img.Name, &img.Extension, &img.MimeType,
		&img.Data, &img.IsCover, &img.Visible, &img.UploadedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *imageRepository) SetVisibility(ctx context.Context, imageID int64, visible bool) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE Archivo SET visible = $1 WHERE idArchivo = $2`, visible, imageID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return utils.ErrNoRowsUpdated
	}
	return nil
}

func (r *imageRepository) Delete(ctx context.Context, imageID int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM Archivo WHERE idArchivo = $1`, imageID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return utils.ErrNoRowsUpdated
	}
	return nil
}
