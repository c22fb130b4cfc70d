package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/AxelVC22/Inmuebles-api/internal/models"
)

type PaymentRepository interface {
	// CreateMethodAtomic inserts the method and, when it is marked as
	// default, clears the flag on the user's other methods in the same
	// transaction so at most one default survives.
	CreateMethodAtomic(ctx context.Context, method *models.PaymentMethod) error
	ListMethods(ctx context.Context, userID int64) ([]models.PaymentMethod, error)
	GetMethod(ctx context.Context, methodID int64) (*models.PaymentMethod, error)
	CreatePayment(ctx context.Context, payment *models.Payment) error
	ListPayments(ctx context.Context, userID int64) ([]models.Payment, error)
}

type paymentRepository struct {
	db DB
}

func NewPaymentRepository(db DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) CreateMethodAtomic(ctx context.Context, method *models.PaymentMethod) error {
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

	if method.IsDefault {
		_, err = tx.Exec(ctx,
			`UPDATE MetodoPago SET predeterminado = false WHERE idUsuario = $1`,
			method.UserID)
		if err != nil {
			return err
		}
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO MetodoPago (idUsuario, tipo, alias, numeroEnmascarado, predeterminado)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING idMetodoPago`,
		method.UserID, method.Type, method.Alias, method.Masked, method.IsDefault,
	).Scan(&method.ID)
	return err
}

func (r *paymentRepository) ListMethods(ctx context.Context, userID int64) ([]models.PaymentMethod, error) {
	rows, err := r.db.Query(ctx, `
		SELECT idMetodoPago, idUsuario, tipo, alias, numeroEnmascarado, predeterminado
		FROM MetodoPago WHERE idUsuario = $1
		ORDER BY predeterminado DESC, idMetodoPago`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.PaymentMethod{}
	for rows.Next() {
		var m models.PaymentMethod
		err := rows.Scan(&m.ID, &m.UserID, &m.Type, &m.Alias, &m.Masked, &m.IsDefault)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *paymentRepository) GetMethod(ctx context.Context, methodID int64) (*models.PaymentMethod, error) {
	var m models.PaymentMethod
	err := r.db.QueryRow(ctx, `
		SELECT idMetodoPago, idUsuario, tipo, alias, numeroEnmascarado, predeterminado
		FROM MetodoPago WHERE idMetodoPago = $1`, methodID,
	).Scan(&m.ID, &m.UserID, &m.Type, &m.Alias, &m.Masked, &m.IsDefault)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *paymentRepository) CreatePayment(ctx context.Context, payment *models.Payment) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO Pago (idUsuario, idMetodoPago, concepto, monto, divisa, referencia, estado)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING idPago, fechaPago`,
		payment.UserID, payment.PaymentMethodID, payment.Concept, payment.Amount,
		payment.Currency, payment.Reference, payment.Status,
	).Scan(&payment.ID, &payment.PaidAt)
}

func (r *paymentRepository) ListPayments(ctx context.Context, userID int64) ([]models.Payment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT idPago, idUsuario, idMetodoPago, concepto, monto, divisa,
			referencia, estado, fechaPago
		FROM Pago WHERE idUsuario = $1
		ORDER BY fechaPago DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Payment{}
	for rows.Next() {
		var p models.Payment
		err := rows.Scan(&p.ID, &p.UserID, &p.PaymentMethodID, &p.Concept,
			&p.Amount, &p.Currency, &p.Reference, &p.Status, &p.PaidAt)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
