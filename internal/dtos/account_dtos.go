package dtos

import "github.com/AxelVC22/Inmuebles-api/internal/repositories"

type UpdateProfileRequest struct {
	Name          *string         `json:"nombre,omitempty" validate:"omitempty,max=100"`
	Surname       *string         `json:"apellidos,omitempty" validate:"omitempty,max=100"`
	Phone         *string         `json:"telefono,omitempty" validate:"omitempty,min=10,max=15"`
	LandlinePhone *string         `json:"telefonoFijo,omitempty" validate:"omitempty,min=10,max=15"`
	Nationality   *string         `json:"nacionalidad,omitempty" validate:"omitempty,max=50"`
	RFC           *string         `json:"rfc,omitempty" validate:"omitempty,len=13"`
	Address       *AddressRequest `json:"direccion,omitempty"`
}

func (r *UpdateProfileRequest) ToUpdate() repositories.ProfileUpdate {
	upd := repositories.ProfileUpdate{
		Name:          r.Name,
		Surname:       r.Surname,
		Phone:         r.Phone,
		LandlinePhone: r.LandlinePhone,
		Nationality:   r.Nationality,
		RFC:           r.RFC,
	}
	if r.Address != nil {
		upd.Address = r.Address.ToModel()
	}
	return upd
}
