package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/AxelVC22/Inmuebles-api/internal/models"
)

// PropertyInput bundles the rows a property insert spans. Every piece
// lands in the same transaction; a partial property never becomes
// visible.
type PropertyInput struct {
	Property    models.Property
	Address     models.Address
	Amenities   models.Amenities
	Services    models.Services
	Geolocation models.Geolocation
	Publication models.Publication
}

// PropertyPatch is a partial edit of a property and its publication.
// Nil fields keep their stored value.
type PropertyPatch struct {
	Title            *string
	Description      *string
	Bedrooms         *int
	Bathrooms        *int
	HalfBathrooms    *int
	TotalArea        *float64
	BuiltArea        *float64
	PetsAllowed      *bool
	Floors           *int
	AgeYears         *int
	FloorLocation    *int
	References       *string
	SalePrice        *float64
	MonthlyRentPrice *float64
	Amenities        *models.Amenities
	Services         *models.Services
	Geolocation      *models.Geolocation
	Address          *models.Address
}

// LandlordPropertyRow is the owner dashboard projection: the listing
// summary plus how many visits are pending on it.
type LandlordPropertyRow struct {
	ID            int64                        `json:"idInmueble"`
	Title         string                       `json:"titulo"`
	City          string                       `json:"ciudad"`
	Status        models.PublicationStatusType `json:"estado"`
	OperationType models.OperationType         `json:"tipoOperacion"`
	Price         float64                      `json:"precio"`
	PendingVisits int                          `json:"visitasPendientes"`
}

type PropertyRepository interface {
	CreateAtomic(ctx context.Context, in *PropertyInput) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.PropertyDetail, error)
	UpdateAtomic(ctx context.Context, propertyID int64, patch PropertyPatch) error
	ListByLandlord(ctx context.Context, landlordID int64) ([]LandlordPropertyRow, error)
	SearchCards(ctx context.Context, filter *ListingFilter) ([]models.ListingCard, int, error)
	GetOwnerUserID(ctx context.Context, propertyID int64) (int64, error)
}

type propertyRepository struct {
	db DB
}

func NewPropertyRepository(db DB) PropertyRepository {
	return &propertyRepository{db: db}
}

func (r *propertyRepository) CreateAtomic(ctx context.Context, in *PropertyInput) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	a := in.Address
	err = tx.QueryRow(ctx, `
		INSERT INTO Direccion (calle, noCalle, colonia, ciudad, estado, codigoPostal)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING idDireccion`,
		a.Street, a.StreetNumber, a.Neighborhood, a.City, a.State, a.PostalCode,
	).Scan(&in.Address.ID)
	if err != nil {
		return 0, err
	}

	p := in.Property
	err = tx.QueryRow(ctx, `
		INSERT INTO Inmueble (idArrendador, idSubtipo, idDireccion, titulo, descripcion,
			numRecamaras, numBanos, numMediosBanos, superficieTotal, superficieConstruida,
			mascotasPermitidas, numPisos, antiguedad, pisoUbicacion, referencias)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING idInmueble`,
		p.LandlordID, p.SubtypeID, in.Address.ID, p.Title, p.Description,
		p.Bedrooms, p.Bathrooms, p.HalfBathrooms, p.TotalArea, p.BuiltArea,
		p.PetsAllowed, p.Floors, p.AgeYears, p.FloorLocation, p.References,
	).Scan(&in.Property.ID)
	if err != nil {
		return 0, err
	}
	propertyID := in.Property.ID

	am := in.Amenities
	_, err = tx.Exec(ctx, `
		INSERT INTO Amenidades (idInmueble, balconTerraza, bodega, chimenea,
			estacionamiento, jacuzzi, jardin, alberca)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		propertyID, am.Balcony, am.Storage, am.Fireplace, am.Parking,
		am.Jacuzzi, am.Garden, am.Pool)
	if err != nil {
		return 0, err
	}

	sv := in.Services
	_, err = tx.Exec(ctx, `
		INSERT INTO Servicios (idInmueble, aguaPotable, cable, drenaje, electricidad,
			gasEstacionario, internet, telefono, transportePublico)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		propertyID, sv.Water, sv.CableTV, sv.Drainage, sv.Electricity,
		sv.StationaryGas, sv.Internet, sv.Landline, sv.PublicTransport)
	if err != nil {
		return 0, err
	}

	geo := in.Geolocation
	_, err = tx.Exec(ctx, `
		INSERT INTO Geolocalizacion (idInmueble, latitud, longitud)
		VALUES ($1, $2, $3)`,
		propertyID, geo.Latitude, geo.Longitude)
	if err != nil {
		return 0, err
	}

	pub := in.Publication
	err = tx.QueryRow(ctx, `
		INSERT INTO Publicacion (idInmueble, estado, tipoOperacion, precioVenta,
			precioRentaMensual, divisa, depositoRequerido, montoDeposito,
			plazoMinimoMeses, plazoMaximoMeses)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING idPublicacion, fechaPublicacion`,
		propertyID, pub.Status, pub.OperationType, pub.SalePrice,
		pub.MonthlyRentPrice, pub.Currency, pub.DepositRequired,
		pub.DepositAmount, pub.MinTermMonths, pub.MaxTermMonths,
	).Scan(&in.Publication.ID, &in.Publication.PublishedAt)
	if err != nil {
		return 0, err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO HistorialEstado (idPublicacion, estado, motivoCambio)
		VALUES ($1, $2, 'Publicación inicial')`,
		in.Publication.ID, pub.Status)
	if err != nil {
		return 0, err
	}

	return propertyID, nil
}

func (r *propertyRepository) GetByID(ctx context.Context, id int64) (*models.PropertyDetail, error) {
	var d models.PropertyDetail
	err := r.db.QueryRow(ctx, `
		SELECT i.idInmueble, i.idArrendador, i.idSubtipo, i.idDireccion, i.titulo,
			i.descripcion, i.numRecamaras, i.numBanos, i.numMediosBanos,
			i.superficieTotal, i.superficieConstruida, i.mascotasPermitidas,
			i.numPisos, i.antiguedad, i.pisoUbicacion, i.referencias, i.fechaRegistro,
			d.idDireccion, d.calle, d.noCalle, d.colonia, d.ciudad, d.estado, d.codigoPostal,
			am.balconTerraza, am.bodega, am.chimenea, am.estacionamiento,
			am.jacuzzi, am.jardin, am.alberca,
			sv.aguaPotable, sv.cable, sv.drenaje, sv.electricidad,
			sv.gasEstacionario, sv.internet, sv.telefono, sv.transportePublico,
			g.latitud, g.longitud,
			pub.idPublicacion, pub.estado, pub.tipoOperacion, pub.precioVenta,
			pub.precioRentaMensual, pub.divisa, pub.depositoRequerido,
			pub.montoDeposito, pub.plazoMinimoMeses, pub.plazoMaximoMeses,
			pub.fechaPublicacion,
			s.idSubtipo, s.idCategoria, s.nombre,
			c.idCategoria, c.nombre
		FROM Inmueble i
		JOIN Direccion d ON d.idDireccion = i.idDireccion
		JOIN Amenidades am ON am.idInmueble = i.idInmueble
		JOIN Servicios sv ON sv.idInmueble = i.idInmueble
		JOIN Geolocalizacion g ON g.idInmueble = i.idInmueble
		JOIN Publicacion pub ON pub.idInmueble = i.idInmueble
		JOIN Subtipo s ON s.idSubtipo = i.idSubtipo
		JOIN Categoria c ON c.idCategoria = s.idCategoria
		WHERE i.idInmueble = $1`, id,
	).Scan(
		&d.ID, &d.LandlordID, &d.SubtypeID, &d.AddressID, &d.Title,
		&d.Description, &d.Bedrooms, &d.Bathrooms, &d.HalfBathrooms,
		&d.TotalArea, &d.BuiltArea, &d.PetsAllowed,
		&d.Floors, &d.AgeYears, &d.FloorLocation, &d.References, &d.CreatedAt,
		&d.Address.ID, &d.Address.Street, &d.Address.StreetNumber, &d.Address.Neighborhood,
		&d.Address.City, &d.Address.State, &d.Address.PostalCode,
		&d.Amenities.Balcony, &d.Amenities.Storage, &d.Amenities.Fireplace,
		&d.Amenities.Parking, &d.Amenities.Jacuzzi, &d.Amenities.Garden, &d.Amenities.Pool,
		&d.Services.Water, &d.Services.CableTV, &d.Services.Drainage, &d.Services.Electricity,
		&d.Services.StationaryGas, &d.Services.Internet, &d.Services.Landline,
		&d.Services.PublicTransport,
		&d.Geolocation.Latitude, &d.Geolocation.Longitude,
		&d.Publication.ID, &d.Publication.Status, &d.Publication.OperationType,
		&d.Publication.SalePrice, &d.Publication.MonthlyRentPrice,
		&d.Publication.Currency, &d.Publication.DepositRequired,
		&d.Publication.DepositAmount, &d.Publication.MinTermMonths,
		&d.Publication.MaxTermMonths, &d.Publication.PublishedAt,
		&d.Subtype.ID, &d.Subtype.CategoryID, &d.Subtype.Name,
		&d.Category.ID, &d.Category.Name,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	d.Amenities.PropertyID = d.ID
	d.Services.PropertyID = d.ID
	d.Geolocation.PropertyID = d.ID
	d.Publication.PropertyID = d.ID

	rows, err := r.db.Query(ctx, `
		SELECT idHistorial, idPublicacion, estado, motivoCambio, fechaCambio
		FROM HistorialEstado WHERE idPublicacion = $1
		ORDER BY fechaCambio`, d.Publication.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var h models.StatusHistory
		if err := rows.Scan(&h.ID, &h.PublicationID, &h.Status, &h.Reason, &h.ChangedAt); err != nil {
			return nil, err
		}
		d.StatusHistory = append(d.StatusHistory, h)
	}
	return &d, rows.Err()
}

func (r *propertyRepository) UpdateAtomic(ctx context.Context, propertyID int64, patch PropertyPatch) error {
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

	_, err = tx.Exec(ctx, `
		UPDATE Inmueble SET
			titulo = COALESCE($1, titulo),
			descripcion = COALESCE($2, descripcion),
			numRecamaras = COALESCE($3, numRecamaras),
			numBanos = COALESCE($4, numBanos),
			numMediosBanos = COALESCE($5, numMediosBanos),
			superficieTotal = COALESCE($6, superficieTotal),
			superficieConstruida = COALESCE($7, superficieConstruida),
			mascotasPermitidas = COALESCE($8, mascotasPermitidas),
			numPisos = COALESCE($9, numPisos),
			antiguedad = COALESCE($10, antiguedad),
			pisoUbicacion = COALESCE($11, pisoUbicacion),
			referencias = COALESCE($12, referencias)
		WHERE idInmueble = $13`,
		patch.Title, patch.Description, patch.Bedrooms, patch.Bathrooms,
		patch.HalfBathrooms, patch.TotalArea, patch.BuiltArea, patch.PetsAllowed,
		patch.Floors, patch.AgeYears, patch.FloorLocation, patch.References,
		propertyID)
	if err != nil {
		return err
	}

	// Only one price column may be set at a time; writing one clears
	// the other so a listing never carries both a sale and a rent
	// price.
	if patch.SalePrice != nil {
		_, err = tx.Exec(ctx, `
			UPDATE Publicacion SET precioVenta = $1, precioRentaMensual = NULL
			WHERE idInmueble = $2`,
			patch.SalePrice, propertyID)
		if err != nil {
			return err
		}
	} else if patch.MonthlyRentPrice != nil {
		_, err = tx.Exec(ctx, `
			UPDATE Publicacion SET precioRentaMensual = $1, precioVenta = NULL
			WHERE idInmueble = $2`,
			patch.MonthlyRentPrice, propertyID)
		if err != nil {
			return err
		}
	}

	if patch.Amenities != nil {
		am := patch.Amenities
		_, err = tx.Exec(ctx, `
			UPDATE Amenidades SET balconTerraza = $1, bodega = $2, chimenea = $3,
				estacionamiento = $4, jacuzzi = $5, jardin = $6, alberca = $7
			WHERE idInmueble = $8`,
			am.Balcony, am.Storage, am.Fireplace, am.Parking, am.Jacuzzi,
			am.Garden, am.Pool, propertyID)
		if err != nil {
			return err
		}
	}

	if patch.Services != nil {
		sv := patch.Services
		_, err = tx.Exec(ctx, `
			UPDATE Servicios SET aguaPotable = $1, cable = $2, drenaje = $3,
				electricidad = $4, gasEstacionario = $5, internet = $6,
				telefono = $7, transportePublico = $8
			WHERE idInmueble = $9`,
			sv.Water, sv.CableTV, sv.Drainage, sv.Electricity, sv.StationaryGas,
			sv.Internet, sv.Landline, sv.PublicTransport, propertyID)
		if err != nil {
			return err
		}
	}

	if patch.Geolocation != nil {
		_, err = tx.Exec(ctx, `
			UPDATE Geolocalizacion SET latitud = $1, longitud = $2
			WHERE idInmueble = $3`,
			patch.Geolocation.Latitude, patch.Geolocation.Longitude, propertyID)
		if err != nil {
			return err
		}
	}

	if patch.Address != nil {
		a := patch.Address
		_, err = tx.Exec(ctx, `
			UPDATE Direccion SET calle = $1, noCalle = $2, colonia = $3,
				ciudad = $4, estado = $5, codigoPostal = $6
			WHERE idDireccion = (SELECT idDireccion FROM Inmueble WHERE idInmueble = $7)`,
			a.Street, a.StreetNumber, a.Neighborhood, a.City, a.State,
			a.PostalCode, propertyID)
		if err != nil {
			return err
		}
	}

	return nil
}

func (r *propertyRepository) ListByLandlord(ctx context.Context, landlordID int64) ([]LandlordPropertyRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT i.idInmueble, i.titulo, d.ciudad, pub.estado, pub.tipoOperacion,
			COALESCE(pub.precioVenta, pub.precioRentaMensual, 0),
			(SELECT COUNT(*)
				FROM Visita v
				JOIN Interaccion it ON it.idInteraccion = v.idInteraccion
				WHERE it.idInmueble = i.idInmueble
					AND v.estado IN ('Programada', 'Confirmada'))
		FROM Inmueble i
		JOIN Direccion d ON d.idDireccion = i.idDireccion
		JOIN Publicacion pub ON pub.idInmueble = i.idInmueble
		WHERE i.idArrendador = $1
		ORDER BY i.idInmueble DESC`, landlordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []LandlordPropertyRow{}
	for rows.Next() {
		var row LandlordPropertyRow
		err := rows.Scan(&row.ID, &row.Title, &row.City, &row.Status,
			&row.OperationType, &row.Price, &row.PendingVisits)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// SearchCards runs the public listing query. The first visible image is
// picked with a LATERAL join so the card payload comes back in a single
// round trip, and the total count shares the same WHERE clause so the
// page metadata always matches the rows.
func (r *propertyRepository) SearchCards(ctx context.Context, filter *ListingFilter) ([]models.ListingCard, int, error) {
	filter.Normalize()
	where, args := filter.BuildWhere(1)

	const fromClause = `
		FROM Inmueble i
		JOIN Publicacion pub ON pub.idInmueble = i.idInmueble
		JOIN Subtipo s ON s.idSubtipo = i.idSubtipo
		JOIN Direccion d ON d.idDireccion = i.idDireccion`

	var total int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*)`+fromClause+` `+where, args...,
	).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	query := `
		SELECT i.idInmueble, i.titulo, d.ciudad,
			COALESCE(pub.precioVenta, pub.precioRentaMensual, 0),
			pub.divisa, pub.tipoOperacion,
			img.contenido, img.tipoMime` +
		fromClause + `
		LEFT JOIN LATERAL (
			SELECT a.contenido, a.tipoMime
			FROM Archivo a
			WHERE a.idInmueble = i.idInmueble AND a.visible
			ORDER BY a.esPortada DESC, a.idArchivo
			LIMIT 1
		) img ON true
		` + where + `
		ORDER BY i.idInmueble DESC
		LIMIT ` + placeholder(len(args)+1) + ` OFFSET ` + placeholder(len(args)+2)

	args = append(args, filter.PageSize, filter.Offset())
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	cards := []models.ListingCard{}
	for rows.Next() {
		var c models.ListingCard
		var data []byte
		var mime *string
		err := rows.Scan(&c.ID, &c.Title, &c.City, &c.Price, &c.Currency,
			&c.OperationType, &data, &mime)
		if err != nil {
			return nil, 0, err
		}
		if len(data) > 0 && mime != nil {
			c.Image = dataURI(*mime, data)
		}
		cards = append(cards, c)
	}
	return cards, total, rows.Err()
}

func (r *propertyRepository) GetOwnerUserID(ctx context.Context, propertyID int64) (int64, error) {
	var userID int64
	err := r.db.QueryRow(ctx, `
		SELECT a.idUsuario
		FROM Inmueble i
		JOIN Arrendador a ON a.idArrendador = i.idArrendador
		WHERE i.idInmueble = $1`, propertyID,
	).Scan(&userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	return userID, err
}
