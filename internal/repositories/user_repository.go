package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/AxelVC22/Inmuebles-api/internal/models"
	"github.com/AxelVC22/Inmuebles-api/internal/utils"
)

type UserRepository interface {
	// CreateWithProfiles inserts the account and its sub-profiles in one
	// transaction. Landlords get both a Landlord and a Client row; plain
	// clients get only the Client row. rfc must be non-nil for landlords.
	CreateWithProfiles(ctx context.Context, user *models.User, address *models.Address, rfc *string) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetProfileByID(ctx context.Context, userID int64) (*models.Profile, error)
	UpdateProfileAtomic(ctx context.Context, userID int64, upd ProfileUpdate) error
	UpdatePassword(ctx context.Context, email, passwordHash string) error
	EmailInUse(ctx context.Context, email string) (bool, error)
	GetClientID(ctx context.Context, userID int64) (int64, error)
	GetLandlordID(ctx context.Context, userID int64) (int64, error)
}

// ProfileUpdate is a partial profile edit. Nil fields are left untouched.
type ProfileUpdate struct {
	Name          *string
	Surname       *string
	Phone         *string
	LandlinePhone *string
	Nationality   *string
	RFC           *string
	Address       *models.Address
}

type userRepository struct {
	db DB
}

func NewUserRepository(db DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `idUsuario, nombre, apellidos, correoElectronico, contrasena,
	rol, telefono, telefonoFijo, fechaNacimiento, nacionalidad, estadoCuenta,
	idDireccion, fechaRegistro`

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Surname, &u.Email, &u.PasswordHash,
		&u.Role, &u.Phone, &u.LandlinePhone, &u.BirthDate, &u.Nationality,
		&u.AccountStatus, &u.AddressID, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) CreateWithProfiles(ctx context.Context, user *models.User, address *models.Address, rfc *string) error {
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

	if address != nil {
		err = tx.QueryRow(ctx, `
			INSERT INTO Direccion (calle, noCalle, colonia, ciudad, estado, codigoPostal)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING idDireccion`,
			address.Street, address.StreetNumber, address.Neighborhood,
			address.City, address.State, address.PostalCode,
		).Scan(&address.ID)
		if err != nil {
			return err
		}
		user.AddressID = &address.ID
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO Usuario (nombre, apellidos, correoElectronico, contrasena, rol,
			telefono, telefonoFijo, fechaNacimiento, nacionalidad, estadoCuenta, idDireccion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING idUsuario, fechaRegistro`,
		user.Name, user.Surname, user.Email, user.PasswordHash, user.Role,
		user.Phone, user.LandlinePhone, user.BirthDate, user.Nationality,
		user.AccountStatus, user.AddressID,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return err
	}

	// Every account can act as a client; landlords additionally own
	// properties, so they carry both sub-profiles.
	_, err = tx.Exec(ctx,
		`INSERT INTO Cliente (idUsuario) VALUES ($1)`, user.ID)
	if err != nil {
		return err
	}

	if user.Role == models.RoleLandlord {
		if rfc == nil {
			err = errors.New("landlord registration requires rfc")
			return err
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO Arrendador (idUsuario, rfc) VALUES ($1, $2)`, user.ID, *rfc)
		if err != nil {
			return err
		}
	}

	return nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM Usuario WHERE correoElectronico = $1`, email)
	u, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) GetProfileByID(ctx context.Context, userID int64) (*models.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM Usuario WHERE idUsuario = $1`, userID)
	u, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	p := &models.Profile{User: *u}

	if u.AddressID != nil {
		var a models.Address
		err = r.db.QueryRow(ctx, `
			SELECT idDireccion, calle, noCalle, colonia, ciudad, estado, codigoPostal
			FROM Direccion WHERE idDireccion = $1`, *u.AddressID,
		).Scan(&a.ID, &a.Street, &a.StreetNumber, &a.Neighborhood, &a.City, &a.State, &a.PostalCode)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		if err == nil {
			p.Address = &a
		}
	}

	var l models.Landlord
	err = r.db.QueryRow(ctx,
		`SELECT idArrendador, idUsuario, rfc FROM Arrendador WHERE idUsuario = $1`, userID,
	).Scan(&l.ID, &l.UserID, &l.RFC)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if err == nil {
		p.Landlord = &l
	}

	var c models.Client
	err = r.db.QueryRow(ctx,
		`SELECT idCliente, idUsuario FROM Cliente WHERE idUsuario = $1`, userID,
	).Scan(&c.ID, &c.UserID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if err == nil {
		p.Client = &c
	}

	var pref models.Preference
	err = r.db.QueryRow(ctx, `
		SELECT idPreferencias, idUsuario, presupuestoMin, presupuestoMax, idCategoria
		FROM Preferencias WHERE idUsuario = $1`, userID,
	).Scan(&pref.ID, &pref.UserID, &pref.BudgetMin, &pref.BudgetMax, &pref.CategoryID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if err == nil {
		p.Preferences = &pref
	}

	return p, nil
}

func (r *userRepository) UpdateProfileAtomic(ctx context.Context, userID int64, upd ProfileUpdate) error {
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
		UPDATE Usuario SET
			nombre = COALESCE($1, nombre),
			apellidos = COALESCE($2, apellidos),
			telefono = COALESCE($3, telefono),
			telefonoFijo = COALESCE($4, telefonoFijo),
			nacionalidad = COALESCE($5, nacionalidad)
		WHERE idUsuario = $6`,
		upd.Name, upd.Surname, upd.Phone, upd.LandlinePhone, upd.Nationality, userID)
	if err != nil {
		return err
	}

	if upd.RFC != nil {
		_, err = tx.Exec(ctx,
			`UPDATE Arrendador SET rfc = $1 WHERE idUsuario = $2`, *upd.RFC, userID)
		if err != nil {
			return err
		}
	}

	if upd.Address != nil {
		var addressID *int64
		err = tx.QueryRow(ctx,
			`SELECT idDireccion FROM Usuario WHERE idUsuario = $1`, userID,
		).Scan(&addressID)
		if err != nil {
			return err
		}
		a := upd.Address
		if addressID != nil {
			_, err = tx.Exec(ctx, `
				UPDATE Direccion SET calle = $1, noCalle = $2, colonia = $3,
					ciudad = $4, estado = $5, codigoPostal = $6
				WHERE idDireccion = $7`,
				a.Street, a.StreetNumber, a.Neighborhood, a.City, a.State, a.PostalCode, *addressID)
			if err != nil {
				return err
			}
		} else {
			var newID int64
			err = tx.QueryRow(ctx, `
				INSERT INTO Direccion (calle, noCalle, colonia, ciudad, estado, codigoPostal)
				VALUES ($1, $2, $3, $4, $5, $6)
				RETURNING idDireccion`,
				a.Street, a.StreetNumber, a.Neighborhood, a.City, a.State, a.PostalCode,
			).Scan(&newID)
			if err != nil {
				return err
			}
			_, err = tx.Exec(ctx,
				`UPDATE Usuario SET idDireccion = $1 WHERE idUsuario = $2`, newID, userID)
			if err != nil {
				return err
			}
		}
	}

	return nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE Usuario SET contrasena = $1 WHERE correoElectronico = $2`,
		passwordHash, email)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return utils.ErrNoRowsUpdated
	}
	return nil
}

func (r *userRepository) EmailInUse(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM Usuario WHERE correoElectronico = $1)`, email,
	).Scan(&exists)
	return exists, err
}

func (r *userRepository) GetClientID(ctx context.Context, userID int64) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`SELECT idCliente FROM Cliente WHERE idUsuario = $1`, userID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	return id, err
}

func (r *userRepository) GetLandlordID(ctx context.Context, userID int64) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`SELECT idArrendador FROM Arrendador WHERE idUsuario = $1`, userID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	return id, err
}
