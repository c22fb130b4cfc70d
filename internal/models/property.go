package models

import "time"

type Property struct {
	ID            int64     `json:"idInmueble"`
	LandlordID    int64     `json:"idArrendador"`
	SubtypeID     int64     `json:"idSubtipo"`
	AddressID     int64     `json:"idDireccion"`
	Title         string    `json:"titulo"`
	Description   string    `json:"descripcion"`
	Bedrooms      int       `json:"numRecamaras"`
	Bathrooms     int       `json:"numBanos"`
	HalfBathrooms int       `json:"numMediosBanos"`
	TotalArea     float64   `json:"superficieTotal"`
	BuiltArea     float64   `json:"superficieConstruida"`
	PetsAllowed   bool      `json:"mascotasPermitidas"`
	Floors        int       `json:"numPisos"`
	AgeYears      int       `json:"antiguedad"`
	FloorLocation *int      `json:"pisoUbicacion,omitempty"`
	References    *string   `json:"referencias,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

type Amenities struct {
	PropertyID int64 `json:"idInmueble"`
	Balcony    bool  `json:"balconTerraza"`
	Storage    bool  `json:"bodega"`
	Fireplace  bool  `json:"chimenea"`
	Parking    bool  `json:"estacionamiento"`
	Jacuzzi    bool  `json:"jacuzzi"`
	Garden     bool  `json:"jardin"`
	Pool       bool  `json:"alberca"`
}

type Services struct {
	PropertyID      int64 `json:"idInmueble"`
	Water           bool  `json:"aguaPotable"`
	CableTV         bool  `json:"cable"`
	Drainage        bool  `json:"drenaje"`
	Electricity     bool  `json:"electricidad"`
	StationaryGas   bool  `json:"gasEstacionario"`
	Internet        bool  `json:"internet"`
	Landline        bool  `json:"telefono"`
	PublicTransport bool  `json:"transportePublico"`
}

type Geolocation struct {
	PropertyID int64   `json:"idInmueble"`
	Latitude   float64 `json:"latitud"`
	Longitude  float64 `json:"longitud"`
}

// PropertyDetail is the full aggregate served by GET /properties/:id.
type PropertyDetail struct {
	Property
	Address       Address         `json:"direccion"`
	Amenities     Amenities       `json:"amenidades"`
	Services      Services        `json:"servicios"`
	Geolocation   Geolocation     `json:"geolocalizacion"`
	Publication   Publication     `json:"publicacion"`
	Subtype       Subtype         `json:"subtipo"`
	Category      Category        `json:"categoria"`
	StatusHistory []StatusHistory `json:"historialEstado,omitempty"`
}
