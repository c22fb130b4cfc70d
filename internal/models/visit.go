package models

import "time"

type Visit struct {
	ID            int64           `json:"idVisita"`
	InteractionID int64           `json:"idInteraccion"`
	ScheduledDate time.Time       `json:"fechaVisita"`
	TimeSlot      string          `json:"horario"`
	Status        VisitStatusType `json:"estado"`
}

// VisitDetail carries the joined context a status transition needs:
// who scheduled it and who owns the property.
type VisitDetail struct {
	Visit
	ClientID   int64 `json:"idCliente"`
	PropertyID int64 `json:"idInmueble"`
	LandlordID int64 `json:"idArrendador"`
}

// VisitListRow is the enriched row returned by the visit listings,
// shaped for both the client ("my visits") and landlord agenda views.
type VisitListRow struct {
	VisitDetail
	PropertyTitle string  `json:"tituloInmueble"`
	City          string  `json:"ciudad"`
	ClientName    *string `json:"nombreCliente,omitempty"`
	LandlordName  *string `json:"nombreArrendador,omitempty"`
}
