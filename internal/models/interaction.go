package models

import "time"

type Interaction struct {
	ID         int64           `json:"idInteraccion"`
	ClientID   int64           `json:"idCliente"`
	PropertyID int64           `json:"idInmueble"`
	Type       InteractionType `json:"tipo"`
	CreatedAt  time.Time       `json:"fecha"`
}
