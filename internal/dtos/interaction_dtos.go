package dtos

type ScheduleVisitRequest struct {
	PropertyID int64  `json:"idInmueble" validate:"required,gt=0"`
	Date       string `json:"fechaVisita" validate:"required,datetime=2006-01-02"`
	TimeSlot   string `json:"horario" validate:"required,max=50"`
}

type UpdateVisitStatusRequest struct {
	Status string `json:"estado" validate:"required,oneof=Confirmada Cancelada Realizada"`
}

type ContactRequest struct {
	PropertyID int64 `json:"idInmueble" validate:"required,gt=0"`
}
