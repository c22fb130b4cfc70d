package models

import "time"

type PaymentMethod struct {
	ID        int64  `json:"idMetodoPago"`
	UserID    int64  `json:"idUsuario"`
	Type      string `json:"tipo"`
	Alias     string `json:"alias"`
	Masked    string `json:"numeroEnmascarado"`
	IsDefault bool   `json:"predeterminado"`
}

type Payment struct {
	ID              int64             `json:"idPago"`
	UserID          int64             `json:"idUsuario"`
	PaymentMethodID int64             `json:"idMetodoPago"`
	Concept         string            `json:"concepto"`
	Amount          float64           `json:"monto"`
	Currency        string            `json:"divisa"`
	Reference       string            `json:"referencia"`
	Status          PaymentStatusType `json:"estado"`
	PaidAt          time.Time         `json:"fechaPago"`
}
