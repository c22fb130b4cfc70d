package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v4"

	"github.com/AxelVC22/Inmuebles-api/internal/models"
)

type ResetCodeRepository interface {
	Create(ctx context.Context, code *models.ResetCode) error
	GetLatestByEmail(ctx context.Context, email, purpose string) (*models.ResetCode, error)
	Delete(ctx context.Context, id int64) error
	// CleanupExpired purges codes past their expiry. Runs on a schedule.
	CleanupExpired(ctx context.Context, now time.Time) (int64, error)
}

type resetCodeRepository struct {
	db DB
}

func NewResetCodeRepository(db DB) ResetCodeRepository {
	return &resetCodeRepository{db: db}
}

func (r *resetCodeRepository) Create(ctx context.Context, code *models.ResetCode) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO CodigoVerificacion (correo, codigo, proposito, expira)
		VALUES ($1, $2, $3, $4)
		RETURNING idCodigo, creado`,
		code.Email, code.Code, code.Purpose, code.ExpiresAt,
	).Scan(&code.ID, &code.CreatedAt)
}

func (r *resetCodeRepository) GetLatestByEmail(ctx context.Context, email, purpose string) (*models.ResetCode, error) {
	var c models.ResetCode
	err := r.db.QueryRow(ctx, `
		SELECT idCodigo, correo, codigo, proposito, expira, creado
		FROM CodigoVerificacion
		WHERE correo = $1 AND proposito = $2
		ORDER BY creado DESC
		LIMIT 1`, email, purpose,
	).Scan(&c.ID, &c.Email, &c.Code, &c.Purpose, &c.ExpiresAt, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *resetCodeRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM CodigoVerificacion WHERE idCodigo = $1`, id)
	return err
}

func (r *resetCodeRepository) CleanupExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM CodigoVerificacion WHERE expira < $1`, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
