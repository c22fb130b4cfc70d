package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/AxelVC22/Inmuebles-api/internal/models"
	"github.com/AxelVC22/Inmuebles-api/internal/utils"
)

type PublicationRepository interface {
	GetByPropertyID(ctx context.Context, propertyID int64) (*models.Publication, error)
	// UpdateStatusWithHistory writes the new status and appends the
	// history row in one transaction so the audit trail can never miss
	// a transition.
	UpdateStatusWithHistory(ctx context.Context, publicationID int64, status models.PublicationStatusType, reason string) error
}

type publicationRepository struct {
	db DB
}

func NewPublicationRepository(db DB) PublicationRepository {
	return &publicationRepository{db: db}
}

func (r *publicationRepository) GetByPropertyID(ctx context.Context, propertyID int64) (*models.Publication, error) {
	var p models.Publication
	err := r.db.QueryRow(ctx, `
		SELECT idPublicacion, idInmueble, estado, tipoOperacion, precioVenta,
			precioRentaMensual, divisa, depositoRequerido, montoDeposito,
			plazoMinimoMeses, plazoMaximoMeses, fechaPublicacion
		FROM Publicacion WHERE idInmueble = $1`, propertyID,
	).Scan(&p.ID, &p.PropertyID, &p.Status, &p.OperationType, &p.SalePrice,
		&p.MonthlyRentPrice, &p.Currency, &p.DepositRequired, &p.DepositAmount,
		&p.MinTermMonths, &p.MaxTermMonths, &p.PublishedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *publicationRepository) UpdateStatusWithHistory(ctx context.Context, publicationID int64, status models.PublicationStatusType, reason string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	var tag pgconn.CommandTag
	tag, err = tx.Exec(ctx,
		`UPDATE Publicacion SET estado = $1 WHERE idPublicacion = $2`,
		status, publicationID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		err = utils.ErrNoRowsUpdated
		return err
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO HistorialEstado (idPublicacion, estado, motivoCambio) VALUES ($1, $2, $3)`,
		publicationID, status, reason)
	return err
}
