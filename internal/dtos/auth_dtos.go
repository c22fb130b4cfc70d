package dtos

import (
	"time"

	"github.com/AxelVC22/Inmuebles-api/internal/models"
)

type AddressRequest struct {
	Street       string `json:"calle" validate:"required"`
	StreetNumber int    `json:"noCalle" validate:"required"`
	Neighborhood string `json:"colonia" validate:"required"`
	City         string `json:"ciudad" validate:"required"`
	State        string `json:"estado" validate:"required"`
	PostalCode   int    `json:"codigoPostal" validate:"required"`
}

func (r *AddressRequest) ToModel() *models.Address {
	return &models.Address{
		Street:       r.Street,
		StreetNumber: r.StreetNumber,
		Neighborhood: r.Neighborhood,
		City:         r.City,
		State:        r.State,
		PostalCode:   r.PostalCode,
	}
}

type RegisterRequest struct {
	Name          string                  `json:"nombre" validate:"required,max=100"`
	Surname       string                  `json:"apellidos" validate:"required,max=100"`
	Email         string                  `json:"correoElectronico" validate:"required,email"`
	Password      string                  `json:"contrasena" validate:"required,min=8,max=72"`
	Role          string                  `json:"rol" validate:"required,oneof=Cliente Arrendador"`
	Phone         string                  `json:"telefono" validate:"required,min=10,max=15"`
	LandlinePhone *string                 `json:"telefonoFijo,omitempty" validate:"omitempty,min=10,max=15"`
	BirthDate     string                  `json:"fechaNacimiento" validate:"required,datetime=2006-01-02"`
	Nationality   string                  `json:"nacionalidad" validate:"required,max=50"`
	RFC           *string                 `json:"rfc,omitempty" validate:"omitempty,len=13"`
	Address       *AddressRequest         `json:"direccion,omitempty"`
	Preferences   *SavePreferencesRequest `json:"preferencias,omitempty"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"contrasenaActual" validate:"required"`
	NewPassword     string `json:"nuevaContrasena" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	Email    string `json:"correoElectronico" validate:"required,email"`
	Password string `json:"contrasena" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"correoElectronico" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Email       string `json:"correoElectronico" validate:"required,email"`
	Code        string `json:"codigo" validate:"required,len=6"`
	NewPassword string `json:"nuevaContrasena" validate:"required,min=8,max=72"`
}

type UserResponse struct {
	ID        int64     `json:"idUsuario"`
	Name      string    `json:"nombre"`
	Surname   string    `json:"apellidos"`
	Email     string    `json:"correoElectronico"`
	Role      string    `json:"rol"`
	CreatedAt time.Time `json:"fechaRegistro"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Surname:   u.Surname,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"usuario"`
}
