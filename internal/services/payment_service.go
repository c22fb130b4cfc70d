package services

import (
	"context"
	"strings"

	"github.com/AxelVC22/Inmuebles-api/internal/models"
	"github.com/AxelVC22/Inmuebles-api/internal/repositories"
	"github.com/AxelVC22/Inmuebles-api/internal/utils"
)

const (
	MethodCard         = "Tarjeta"
	MethodTransfer     = "Transferencia"
	MethodPayPal       = "PayPal"
	MethodMercadoPago  = "MercadoPago"
	maskedDigitsLength = 4
)

type AddMethodInput struct {
	Type      string
	Alias     string
	Number    string
	IsDefault bool
}

type PayInput struct {
	MethodID int64
	Concept  string
	Amount   float64
}

type PaymentService interface {
	AddMethod(ctx context.Context, userID int64, in AddMethodInput) (*models.PaymentMethod, error)
	ListMethods(ctx context.Context, userID int64) ([]models.PaymentMethod, error)
	// Pay simulates a charge: no processor is contacted, a reference is
	// fabricated per method type and the payment lands as Pagado.
	Pay(ctx context.Context, userID int64, in PayInput) (*models.Payment, error)
	ListPayments(ctx context.Context, userID int64) ([]models.Payment, error)
}

type paymentService struct {
	payments repositories.PaymentRepository
}

func NewPaymentService(payments repositories.PaymentRepository) PaymentService {
	return &paymentService{payments: payments}
}

// maskNumber keeps only the last four digits of card and account
// numbers. Wallet methods have no number to mask.
func maskNumber(methodType, number string) string {
	switch methodType {
	case MethodCard, MethodTransfer:
		digits := strings.TrimSpace(number)
		if len(digits) < maskedDigitsLength {
			return "**** " + digits
		}
		return "**** " + digits[len(digits)-maskedDigitsLength:]
	default:
		return ""
	}
}

// fakeReference fabricates a payment reference in the shape the real
// processor for each method would return.
func fakeReference(methodType string) string {
	suffix := strings.ToUpper(utils.RandomString(10))
	switch methodType {
	case MethodTransfer:
		return "SPEI-" + suffix
	case MethodCard:
		return "AUTH-VISA-" + suffix
	case MethodPayPal:
		return "PAYID-" + suffix
	case MethodMercadoPago:
		return "MP-" + suffix
	default:
		return "GEN-" + suffix
	}
}

func validMethodType(t string) bool {
	switch t {
	case MethodCard, MethodTransfer, MethodPayPal, MethodMercadoPago:
		return true
	}
	return false
}

func (s *paymentService) AddMethod(ctx context.Context, userID int64, in AddMethodInput) (*models.PaymentMethod, error) {
	if !validMethodType(in.Type) {
		return nil, utils.NewValidationError("Tipo de método de pago inválido")
	}
	if (in.Type == MethodCard || in.Type == MethodTransfer) && strings.TrimSpace(in.Number) == "" {
		return nil, utils.NewValidationError("El número es obligatorio para tarjetas y transferencias")
	}

	method := &models.PaymentMethod{
		UserID:    userID,
		Type:      in.Type,
		Alias:     in.Alias,
		Masked:    maskNumber(in.Type, in.Number),
		IsDefault: in.IsDefault,
	}
	if err := s.payments.CreateMethodAtomic(ctx, method); err != nil {
		return nil, err
	}
	return method, nil
}

func (s *paymentService) ListMethods(ctx context.Context, userID int64) ([]models.PaymentMethod, error) {
	return s.payments.ListMethods(ctx, userID)
}

func (s *paymentService) Pay(ctx context.Context, userID int64, in PayInput) (*models.Payment, error) {
	if in.Amount <= 0 {
		return nil, utils.NewValidationError("El monto debe ser mayor a 0")
	}

	method, err := s.payments.GetMethod(ctx, in.MethodID)
	if err != nil {
		return nil, err
	}
	if method == nil {
		return nil, utils.NewNotFoundError("Método de pago no encontrado")
	}
	if method.UserID != userID {
		return nil, utils.NewForbiddenError("El método de pago pertenece a otro usuario")
	}

	payment := &models.Payment{
		UserID:          userID,
		PaymentMethodID: method.ID,
		Concept:         in.Concept,
		Amount:          in.Amount,
		Currency:        defaultCurrency,
		Reference:       fakeReference(method.Type),
		Status:          models.PaymentPaid,
	}
	if err := s.payments.CreatePayment(ctx, payment); err != nil {
		return nil, err
	}
	utils.Logger.WithFields(map[string]interface{}{
		"paymentId": payment.ID,
		"reference": payment.Reference,
	}).Info("payment recorded")
	return payment, nil
}

func (s *paymentService) ListPayments(ctx context.Context, userID int64) ([]models.Payment, error) {
	return s.payments.ListPayments(ctx, userID)
}
