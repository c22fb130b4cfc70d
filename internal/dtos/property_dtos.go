package dtos

import (
	"github.com/AxelVC22/Inmuebles-api/internal/models"
	"github.com/AxelVC22/Inmuebles-api/internal/repositories"
)

type AmenitiesRequest struct {
	Balcony   bool `json:"balconTerraza"`
	Storage   bool `json:"bodega"`
	Fireplace bool `json:"chimenea"`
	Parking   bool `json:"estacionamiento"`
	Jacuzzi   bool `json:"jacuzzi"`
	Garden    bool `json:"jardin"`
	Pool      bool `json:"alberca"`
}

func (r *AmenitiesRequest) ToModel() models.Amenities {
	return models.Amenities{
		Balcony:   r.Balcony,
		Storage:   r.Storage,
		Fireplace: r.Fireplace,
		Parking:   r.Parking,
		Jacuzzi:   r.Jacuzzi,
		Garden:    r.Garden,
		Pool:      r.Pool,
	}
}

type ServicesRequest struct {
	Water           bool `json:"aguaPotable"`
	CableTV         bool `json:"cable"`
	Drainage        bool `json:"drenaje"`
	Electricity     bool `json:"electricidad"`
	StationaryGas   bool `json:"gasEstacionario"`
	Internet        bool `json:"internet"`
	Landline        bool `json:"telefono"`
	PublicTransport bool `json:"transportePublico"`
}

func (r *ServicesRequest) ToModel() models.Services {
	return models.Services{
		Water:           r.Water,
		CableTV:         r.CableTV,
		Drainage:        r.Drainage,
		Electricity:     r.Electricity,
		StationaryGas:   r.StationaryGas,
		Internet:        r.Internet,
		Landline:        r.Landline,
		PublicTransport: r.PublicTransport,
	}
}

type GeolocationRequest struct {
	Latitude  float64 `json:"latitud" validate:"required,latitude"`
	Longitude float64 `json:"longitud" validate:"required,longitude"`
}

type CreatePropertyRequest struct {
	SubtypeID        int64              `json:"idSubtipo" validate:"required,gt=0"`
	Title            string             `json:"titulo" validate:"required,min=5,max=150"`
	Description      string             `json:"descripcion" validate:"required,max=2000"`
	Bedrooms         int                `json:"numRecamaras" validate:"gte=0"`
	Bathrooms        int                `json:"numBanos" validate:"gte=0"`
	HalfBathrooms    int                `json:"numMediosBanos" validate:"gte=0"`
	TotalArea        float64            `json:"superficieTotal" validate:"required,gt=0"`
	BuiltArea        float64            `json:"superficieConstruida" validate:"gte=0"`
	PetsAllowed      bool               `json:"mascotasPermitidas"`
	Floors           int                `json:"numPisos" validate:"gte=0"`
	AgeYears         int                `json:"antiguedad" validate:"gte=0"`
	FloorLocation    *int               `json:"pisoUbicacion,omitempty"`
	References       *string            `json:"referencias,omitempty"`
	OperationType    string             `json:"tipoOperacion" validate:"required,oneof=Venta Renta"`
	SalePrice        *float64           `json:"precioVenta,omitempty" validate:"omitempty,gt=0"`
	MonthlyRentPrice *float64           `json:"precioRentaMensual,omitempty" validate:"omitempty,gt=0"`
	DepositRequired  bool               `json:"depositoRequerido"`
	DepositAmount    *float64           `json:"montoDeposito,omitempty" validate:"omitempty,gt=0"`
	MinTermMonths    *int               `json:"plazoMinimoMeses,omitempty" validate:"omitempty,gt=0"`
	MaxTermMonths    *int               `json:"plazoMaximoMeses,omitempty" validate:"omitempty,gt=0"`
	Address          AddressRequest     `json:"direccion" validate:"required"`
	Amenities        AmenitiesRequest   `json:"amenidades"`
	Services         ServicesRequest    `json:"servicios"`
	Geolocation      GeolocationRequest `json:"geolocalizacion" validate:"required"`
}

func (r *CreatePropertyRequest) ToInput() *repositories.PropertyInput {
	return &repositories.PropertyInput{
		Property: models.Property{
			SubtypeID:     r.SubtypeID,
			Title:         r.Title,
			Description:   r.Description,
			Bedrooms:      r.Bedrooms,
			Bathrooms:     r.Bathrooms,
			HalfBathrooms: r.HalfBathrooms,
			TotalArea:     r.TotalArea,
			BuiltArea:     r.BuiltArea,
			PetsAllowed:   r.PetsAllowed,
			Floors:        r.Floors,
			AgeYears:      r.AgeYears,
			FloorLocation: r.FloorLocation,
			References:    r.References,
		},
		Address:   *r.Address.ToModel(),
		Amenities: r.Amenities.ToModel(),
		Services:  r.Services.ToModel(),
		Geolocation: models.Geolocation{
			Latitude:  r.Geolocation.Latitude,
			Longitude: r.Geolocation.Longitude,
		},
		Publication: models.Publication{
			OperationType:    models.OperationType(r.OperationType),
			SalePrice:        r.SalePrice,
			MonthlyRentPrice: r.MonthlyRentPrice,
			DepositRequired:  r.DepositRequired,
			DepositAmount:    r.DepositAmount,
			MinTermMonths:    r.MinTermMonths,
			MaxTermMonths:    r.MaxTermMonths,
		},
	}
}

type UpdatePropertyRequest struct {
	Title            *string             `json:"titulo,omitempty" validate:"omitempty,min=5,max=150"`
	Description      *string             `json:"descripcion,omitempty" validate:"omitempty,max=2000"`
	Bedrooms         *int                `json:"numRecamaras,omitempty" validate:"omitempty,gte=0"`
	Bathrooms        *int                `json:"numBanos,omitempty" validate:"omitempty,gte=0"`
	HalfBathrooms    *int                `json:"numMediosBanos,omitempty" validate:"omitempty,gte=0"`
	TotalArea        *float64            `json:"superficieTotal,omitempty" validate:"omitempty,gt=0"`
	BuiltArea        *float64            `json:"superficieConstruida,omitempty" validate:"omitempty,gte=0"`
	PetsAllowed      *bool               `json:"mascotasPermitidas,omitempty"`
	Floors           *int                `json:"numPisos,omitempty" validate:"omitempty,gte=0"`
	AgeYears         *int                `json:"antiguedad,omitempty" validate:"omitempty,gte=0"`
	FloorLocation    *int                `json:"pisoUbicacion,omitempty"`
	References       *string             `json:"referencias,omitempty"`
	SalePrice        *float64            `json:"precioVenta,omitempty" validate:"omitempty,gt=0"`
	MonthlyRentPrice *float64            `json:"precioRentaMensual,omitempty" validate:"omitempty,gt=0"`
	Address          *AddressRequest     `json:"direccion,omitempty"`
	Amenities        *AmenitiesRequest   `json:"amenidades,omitempty"`
	Services         *ServicesRequest    `json:"servicios,omitempty"`
	Geolocation      *GeolocationRequest `json:"geolocalizacion,omitempty"`
}

func (r *UpdatePropertyRequest) ToPatch() repositories.PropertyPatch {
	patch := repositories.PropertyPatch{
		Title:            r.Title,
		Description:      r.Description,
		Bedrooms:         r.Bedrooms,
		Bathrooms:        r.Bathrooms,
		HalfBathrooms:    r.HalfBathrooms,
		TotalArea:        r.TotalArea,
		BuiltArea:        r.BuiltArea,
		PetsAllowed:      r.PetsAllowed,
		Floors:           r.Floors,
		AgeYears:         r.AgeYears,
		FloorLocation:    r.FloorLocation,
		References:       r.References,
		SalePrice:        r.SalePrice,
		MonthlyRentPrice: r.MonthlyRentPrice,
	}
	if r.Address != nil {
		patch.Address = r.Address.ToModel()
	}
	if r.Amenities != nil {
		am := r.Amenities.ToModel()
		patch.Amenities = &am
	}
	if r.Services != nil {
		sv := r.Services.ToModel()
		patch.Services = &sv
	}
	if r.Geolocation != nil {
		patch.Geolocation = &models.Geolocation{
			Latitude:  r.Geolocation.Latitude,
			Longitude: r.Geolocation.Longitude,
		}
	}
	return patch
}

type ChangeStatusRequest struct {
	Status string `json:"estado" validate:"required,oneof=Publicada Pausada"`
	Reason string `json:"motivo" validate:"omitempty,max=200"`
}

type ImageResponse struct {
	ID        int64  `json:"idArchivo"`
	Name      string `json:"nombre"`
	Extension string `json:"extension"`
	MimeType  string `json:"tipoMime"`
	IsCover   bool   `json:"esPortada"`
	Visible   bool   `json:"visible"`
	Image     string `json:"imagen"`
}

func NewImageResponse(img *models.PropertyImage) ImageResponse {
	return ImageResponse{
		ID:        img.ID,
		Name:      img.Name,
		Extension: img.Extension,
		MimeType:  img.MimeType,
		IsCover:   img.IsCover,
		Visible:   img.Visible,
		Image:     imageDataURI(img),
	}
}

type ImageVisibilityRequest struct {
	Visible *bool `json:"visible" validate:"required"`
}
