package models

import "fmt"

// RoleType is the closed set of account roles. Authorization checkpoints
// must match exhaustively on it instead of comparing raw strings.
type RoleType string

const (
	RoleClient   RoleType = "Cliente"
	RoleLandlord RoleType = "Arrendador"
)

// ParseRole converts the wire value to the enum.
func ParseRole(s string) (RoleType, error) {
	switch RoleType(s) {
	case RoleClient:
		return RoleClient, nil
	case RoleLandlord:
		return RoleLandlord, nil
	default:
		return "", fmt.Errorf("invalid role: %q", s)
	}
}

type AccountStatusType string

const (
	AccountStatusActive   AccountStatusType = "Activo"
	AccountStatusInactive AccountStatusType = "Inactivo"
)

// OperationType tags a publication as a sale or a rental. The tag decides
// which of the two mutually-exclusive price columns carries the price.
type OperationType string

const (
	OperationSale OperationType = "Venta"
	OperationRent OperationType = "Renta"
)

func ParseOperation(s string) (OperationType, error) {
	switch OperationType(s) {
	case OperationSale:
		return OperationSale, nil
	case OperationRent:
		return OperationRent, nil
	default:
		return "", fmt.Errorf("invalid operation type: %q", s)
	}
}

type PublicationStatusType string

const (
	PublicationPublished PublicationStatusType = "Publicada"
	PublicationPaused    PublicationStatusType = "Pausada"
	PublicationSold      PublicationStatusType = "Vendida"
	PublicationRented    PublicationStatusType = "Rentada"
)

// Terminal reports whether the publication reached a completed transaction.
func (s PublicationStatusType) Terminal() bool {
	return s == PublicationSold || s == PublicationRented
}

type VisitStatusType string

const (
	VisitScheduled VisitStatusType = "Programada"
	VisitConfirmed VisitStatusType = "Confirmada"
	VisitCancelled VisitStatusType = "Cancelada"
	VisitCompleted VisitStatusType = "Realizada"
)

func ParseVisitStatus(s string) (VisitStatusType, error) {
	switch VisitStatusType(s) {
	case VisitScheduled, VisitConfirmed, VisitCancelled, VisitCompleted:
		return VisitStatusType(s), nil
	default:
		return "", fmt.Errorf("invalid visit status: %q", s)
	}
}

// Terminal visits can no longer be cancelled or completed.
func (s VisitStatusType) Terminal() bool {
	return s == VisitCancelled || s == VisitCompleted
}

type InteractionType string

const (
	InteractionContact InteractionType = "Contacto"
	InteractionVisit   InteractionType = "Visita"
)

type PaymentStatusType string

const (
	PaymentPaid PaymentStatusType = "Pagado"
)
