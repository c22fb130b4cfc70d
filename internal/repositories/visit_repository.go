package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/AxelVC22/Inmuebles-api/internal/models"
	"github.com/AxelVC22/Inmuebles-api/internal/utils"
)

type VisitRepository interface {
	// CreateWithInteraction inserts the Visita interaction row and the
	// visit itself in one transaction.
	CreateWithInteraction(ctx context.Context, clientID, propertyID int64, visit *models.Visit) error
	// GetWithContext loads the visit joined to its client and the
	// property's landlord, which is what every transition check needs.
	GetWithContext(ctx context.Context, visitID int64) (*models.VisitDetail, error)
	UpdateStatus(ctx context.Context, visitID int64, status models.VisitStatusType) error
	ListForClient(ctx context.Context, clientID int64) ([]models.VisitListRow, error)
	ListForLandlord(ctx context.Context, landlordID int64) ([]models.VisitListRow, error)
}

type visitRepository struct {
	db DB
}

func NewVisitRepository(db DB) VisitRepository {
	return &visitRepository{db: db}
}

func (r *visitRepository) CreateWithInteraction(ctx context.Context, clientID, propertyID int64, visit *models.Visit) error {
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

	err = tx.QueryRow(ctx, `
		INSERT INTO Interaccion (idCliente, idInmueble, tipo)
		VALUES ($1, $2, $3)
		RETURNING idInteraccion`,
		clientID, propertyID, models.InteractionVisit,
	).Scan(&visit.InteractionID)
	if err != nil {
		return err
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO Visita (idInteraccion, fechaVisita, horario, estado)
		VALUES ($1, $2, $3, $4)
		RETURNING idVisita`,
		visit.InteractionID, visit.ScheduledDate, visit.TimeSlot, visit.Status,
	).Scan(&visit.ID)
	return err
}

func (r *visitRepository) GetWithContext(ctx context.Context, visitID int64) (*models.VisitDetail, error) {
	var d models.VisitDetail
	err := r.db.QueryRow(ctx, `
		SELECT v.idVisita, v.idInteraccion, v.fechaVisita, v.horario, v.estado,
			it.idCliente, it.idInmueble, i.idArrendador
		FROM Visita v
		JOIN Interaccion it ON it.idInteraccion = v.idInteraccion
		JOIN Inmueble i ON i.idInmueble = it.idInmueble
		WHERE v.idVisita = $1`, visitID,
	).Scan(&d.ID, &d.InteractionID, &d.ScheduledDate, &d.TimeSlot, &d.Status,
		&d.ClientID, &d.PropertyID, &d.LandlordID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *visitRepository) UpdateStatus(ctx context.Context, visitID int64, status models.VisitStatusType) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE Visita SET estado = $1 WHERE idVisita = $2`, status, visitID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return utils.ErrNoRowsUpdated
	}
	return nil
}

const visitListSelect = `
	SELECT v.idVisita, v.idInteraccion, v.fechaVisita, v.horario, v.estado,
		it.idCliente, it.idInmueble, i.idArrendador,
		i.titulo, d.ciudad,
		uc.nombre || ' ' || uc.apellidos,
		ul.nombre || ' ' || ul.apellidos
	FROM Visita v
	JOIN Interaccion it ON it.idInteraccion = v.idInteraccion
	JOIN Inmueble i ON i.idInmueble = it.idInmueble
	JOIN Direccion d ON d.idDireccion = i.idDireccion
	JOIN Cliente c ON c.idCliente = it.idCliente
	JOIN Usuario uc ON uc.idUsuario = c.idUsuario
	JOIN Arrendador a ON a.idArrendador = i.idArrendador
	JOIN Usuario ul ON ul.idUsuario = a.idUsuario`

func (r *visitRepository) ListForClient(ctx context.Context, clientID int64) ([]models.VisitListRow, error) {
	rows, err := r.db.Query(ctx,
		visitListSelect+` WHERE it.idCliente = $1 ORDER BY v.fechaVisita DESC`, clientID)
	if err != nil {
		return nil, err
	}
	return scanVisitRows(rows)
}

func (r *visitRepository) ListForLandlord(ctx context.Context, landlordID int64) ([]models.VisitListRow, error) {
	rows, err := r.db.Query(ctx,
		visitListSelect+` WHERE i.idArrendador = $1 ORDER BY v.fechaVisita DESC`, landlordID)
	if err != nil {
		return nil, err
	}
	return scanVisitRows(rows)
}

func scanVisitRows(rows pgx.Rows) ([]models.VisitListRow, error) {
	defer rows.Close()
	out := []models.VisitListRow{}
	for rows.Next() {
		var row models.VisitListRow
		err := rows.Scan(&row.ID, &row.InteractionID, &row.ScheduledDate,
			&row.TimeSlot, &row.Status, &row.ClientID, &row.PropertyID,
			&row.LandlordID, &row.PropertyTitle, &row.City,
			&row.ClientName, &row.LandlordName)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
