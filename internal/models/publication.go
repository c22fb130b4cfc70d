package models

import "time"

type Publication struct {
	ID               int64                 `json:"idPublicacion"`
	PropertyID       int64                 `json:"idInmueble"`
	Status           PublicationStatusType `json:"estado"`
	OperationType    OperationType         `json:"tipoOperacion"`
	SalePrice        *float64              `json:"precioVenta,omitempty"`
	MonthlyRentPrice *float64              `json:"precioRentaMensual,omitempty"`
	Currency         string                `json:"divisa"`
	DepositRequired  bool                  `json:"depositoRequerido"`
	DepositAmount    *float64              `json:"montoDeposito,omitempty"`
	MinTermMonths    *int                  `json:"plazoMinimoMeses,omitempty"`
	MaxTermMonths    *int                  `json:"plazoMaximoMeses,omitempty"`
	PublishedAt      time.Time             `json:"fechaPublicacion"`
}

type StatusHistory struct {
	ID            int64                 `json:"idHistorial"`
	PublicationID int64                 `json:"idPublicacion"`
	Status        PublicationStatusType `json:"estado"`
	Reason        string                `json:"motivoCambio"`
	ChangedAt     time.Time             `json:"fechaCambio"`
}
