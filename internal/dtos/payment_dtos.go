package dtos

type AddPaymentMethodRequest struct {
	Type      string `json:"tipo" validate:"required,oneof=Tarjeta Transferencia PayPal MercadoPago"`
	Alias     string `json:"alias" validate:"required,max=50"`
	Number    string `json:"numero,omitempty" validate:"omitempty,min=10,max=18,numeric"`
	IsDefault bool   `json:"predeterminado"`
}

type PayRequest struct {
	MethodID int64   `json:"idMetodoPago" validate:"required,gt=0"`
	Concept  string  `json:"concepto" validate:"required,max=150"`
	Amount   float64 `json:"monto" validate:"required,gt=0"`
}
