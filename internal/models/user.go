package models

import "time"

type User struct {
	ID            int64             `json:"idUsuario"`
	Name          string            `json:"nombre"`
	Surname       string            `json:"apellidos"`
	Email         string            `json:"correoElectronico"`
	PasswordHash  string            `json:"-"`
	Role          RoleType          `json:"rol"`
	Phone         string            `json:"telefono"`
	LandlinePhone *string           `json:"telefonoFijo,omitempty"`
	BirthDate     time.Time         `json:"fechaNacimiento"`
	Nationality   string            `json:"nacionalidad"`
	AccountStatus AccountStatusType `json:"estadoCuenta"`
	AddressID     *int64            `json:"idDireccion,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
}

// Landlord is the 1:1 sub-profile that allows a user to own properties.
type Landlord struct {
	ID     int64  `json:"idArrendador"`
	UserID int64  `json:"idUsuario"`
	RFC    string `json:"rfc"`
}

// Client is the 1:1 sub-profile that allows a user to schedule visits and
// hold preferences. Landlords get one too (dual capability).
type Client struct {
	ID     int64 `json:"idCliente"`
	UserID int64 `json:"idUsuario"`
}

type Address struct {
	ID           int64  `json:"idDireccion"`
	Street       string `json:"calle"`
	StreetNumber int    `json:"noCalle"`
	Neighborhood string `json:"colonia"`
	City         string `json:"ciudad"`
	State        string `json:"estado"`
	PostalCode   int    `json:"codigoPostal"`
}

// Profile is the aggregate returned by the accounts surface.
type Profile struct {
	User
	Address     *Address    `json:"direccion,omitempty"`
	Landlord    *Landlord   `json:"arrendador,omitempty"`
	Client      *Client     `json:"cliente,omitempty"`
	Preferences *Preference `json:"preferencias,omitempty"`
}
