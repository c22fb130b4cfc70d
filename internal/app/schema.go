package app

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/AxelVC22/Inmuebles-api/internal/utils"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS Direccion (
		idDireccion BIGSERIAL PRIMARY KEY,
		calle VARCHAR(150) NOT NULL,
		noCalle INT NOT NULL,
		colonia VARCHAR(100) NOT NULL,
		ciudad VARCHAR(100) NOT NULL,
		estado VARCHAR(100) NOT NULL,
		codigoPostal INT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS Usuario (
		idUsuario BIGSERIAL PRIMARY KEY,
		nombre VARCHAR(100) NOT NULL,
		apellidos VARCHAR(100) NOT NULL,
		correoElectronico VARCHAR(150) NOT NULL UNIQUE,
		contrasena VARCHAR(100) NOT NULL,
		rol VARCHAR(20) NOT NULL,
		telefono VARCHAR(15) NOT NULL,
		telefonoFijo VARCHAR(15),
		fechaNacimiento DATE NOT NULL,
		nacionalidad VARCHAR(50) NOT NULL,
		estadoCuenta VARCHAR(20) NOT NULL DEFAULT 'Activo',
		idDireccion BIGINT REFERENCES Direccion(idDireccion),
		fechaRegistro TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS Arrendador (
		idArrendador BIGSERIAL PRIMARY KEY,
		idUsuario BIGINT NOT NULL UNIQUE REFERENCES Usuario(idUsuario),
		rfc VARCHAR(13) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS Cliente (
		idCliente BIGSERIAL PRIMARY KEY,
		idUsuario BIGINT NOT NULL UNIQUE REFERENCES Usuario(idUsuario)
	)`,
	`CREATE TABLE IF NOT EXISTS Categoria (
		idCategoria BIGSERIAL PRIMARY KEY,
		nombre VARCHAR(50) NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS Subtipo (
		idSubtipo BIGSERIAL PRIMARY KEY,
		idCategoria BIGINT NOT NULL REFERENCES Categoria(idCategoria),
		nombre VARCHAR(50) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS Preferencias (
		idPreferencias BIGSERIAL PRIMARY KEY,
		idUsuario BIGINT NOT NULL UNIQUE REFERENCES Usuario(idUsuario),
		presupuestoMin NUMERIC(14,2),
		presupuestoMax NUMERIC(14,2),
		idCategoria BIGINT REFERENCES Categoria(idCategoria)
	)`,
	`CREATE TABLE IF NOT EXISTS Inmueble (
		idInmueble BIGSERIAL PRIMARY KEY,
		idArrendador BIGINT NOT NULL REFERENCES Arrendador(idArrendador),
		idSubtipo BIGINT NOT NULL REFERENCES Subtipo(idSubtipo),
		idDireccion BIGINT NOT NULL REFERENCES Direccion(idDireccion),
		titulo VARCHAR(150) NOT NULL,
		descripcion TEXT NOT NULL,
		numRecamaras INT NOT NULL DEFAULT 0,
		numBanos INT NOT NULL DEFAULT 0,
		numMediosBanos INT NOT NULL DEFAULT 0,
		superficieTotal NUMERIC(10,2) NOT NULL,
		superficieConstruida NUMERIC(10,2) NOT NULL DEFAULT 0,
		mascotasPermitidas BOOLEAN NOT NULL DEFAULT false,
		numPisos INT NOT NULL DEFAULT 1,
		antiguedad INT NOT NULL DEFAULT 0,
		pisoUbicacion INT,
		referencias TEXT,
		fechaRegistro TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS Amenidades (
		idInmueble BIGINT PRIMARY KEY REFERENCES Inmueble(idInmueble),
		balconTerraza BOOLEAN NOT NULL DEFAULT false,
		bodega BOOLEAN NOT NULL DEFAULT false,
		chimenea BOOLEAN NOT NULL DEFAULT false,
		estacionamiento BOOLEAN NOT NULL DEFAULT false,
		jacuzzi BOOLEAN NOT NULL DEFAULT false,
		jardin BOOLEAN NOT NULL DEFAULT false,
		alberca BOOLEAN NOT NULL DEFAULT false
	)`,
	`CREATE TABLE IF NOT EXISTS Servicios (
		idInmueble BIGINT PRIMARY KEY REFERENCES Inmueble(idInmueble),
		aguaPotable BOOLEAN NOT NULL DEFAULT false,
		cable BOOLEAN NOT NULL DEFAULT false,
		drenaje BOOLEAN NOT NULL DEFAULT false,
		electricidad BOOLEAN NOT NULL DEFAULT false,
		gasEstacionario BOOLEAN NOT NULL DEFAULT false,
		internet BOOLEAN NOT NULL DEFAULT false,
		telefono BOOLEAN NOT NULL DEFAULT false,
		transportePublico BOOLEAN NOT NULL DEFAULT false
	)`,
	`CREATE TABLE IF NOT EXISTS Geolocalizacion (
		idInmueble BIGINT PRIMARY KEY REFERENCES Inmueble(idInmueble),
		latitud DOUBLE PRECISION NOT NULL,
		longitud DOUBLE PRECISION NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS Publicacion (
		idPublicacion BIGSERIAL PRIMARY KEY,
		idInmueble BIGINT NOT NULL UNIQUE REFERENCES Inmueble(idInmueble),
		estado VARCHAR(20) NOT NULL DEFAULT 'Publicada',
		tipoOperacion VARCHAR(10) NOT NULL,
		precioVenta NUMERIC(14,2),
		precioRentaMensual NUMERIC(14,2),
		divisa VARCHAR(3) NOT NULL DEFAULT 'MXN',
		depositoRequerido BOOLEAN NOT NULL DEFAULT false,
		montoDeposito NUMERIC(14,2),
		plazoMinimoMeses INT,
		plazoMaximoMeses INT,
		fechaPublicacion TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS HistorialEstado (
		idHistorial BIGSERIAL PRIMARY KEY,
		idPublicacion BIGINT NOT NULL REFERENCES Publicacion(idPublicacion),
		estado VARCHAR(20) NOT NULL,
		motivoCambio VARCHAR(200) NOT NULL DEFAULT '',
		fechaCambio TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS Archivo (
		idArchivo BIGSERIAL PRIMARY KEY,
		idInmueble BIGINT NOT NULL REFERENCES Inmueble(idInmueble),
		nombre VARCHAR(150) NOT NULL,
		extension VARCHAR(10) NOT NULL,
		tipoMime VARCHAR(50) NOT NULL,
		contenido BYTEA NOT NULL,
		esPortada BOOLEAN NOT NULL DEFAULT false,
		visible BOOLEAN NOT NULL DEFAULT true,
		fechaSubida TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS Interaccion (
		idInteraccion BIGSERIAL PRIMARY KEY,
		idCliente BIGINT NOT NULL REFERENCES Cliente(idCliente),
		idInmueble BIGINT NOT NULL REFERENCES Inmueble(idInmueble),
		tipo VARCHAR(20) NOT NULL,
		fecha TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS Visita (
		idVisita BIGSERIAL PRIMARY KEY,
		idInteraccion BIGINT NOT NULL UNIQUE REFERENCES Interaccion(idInteraccion),
		fechaVisita TIMESTAMPTZ NOT NULL,
		horario VARCHAR(50) NOT NULL,
		estado VARCHAR(20) NOT NULL DEFAULT 'Programada'
	)`,
	`CREATE TABLE IF NOT EXISTS MetodoPago (
		idMetodoPago BIGSERIAL PRIMARY KEY,
		idUsuario BIGINT NOT NULL REFERENCES Usuario(idUsuario),
		tipo VARCHAR(20) NOT NULL,
		alias VARCHAR(50) NOT NULL,
		numeroEnmascarado VARCHAR(20),
		predeterminado BOOLEAN NOT NULL DEFAULT false
	)`,
	`CREATE TABLE IF NOT EXISTS Pago (
		idPago BIGSERIAL PRIMARY KEY,
		idUsuario BIGINT NOT NULL REFERENCES Usuario(idUsuario),
		idMetodoPago BIGINT NOT NULL REFERENCES MetodoPago(idMetodoPago),
		concepto VARCHAR(150) NOT NULL,
		monto NUMERIC(14,2) NOT NULL,
		divisa VARCHAR(3) NOT NULL DEFAULT 'MXN',
		referencia VARCHAR(50) NOT NULL,
		estado VARCHAR(20) NOT NULL DEFAULT 'Pagado',
		fechaPago TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS CodigoVerificacion (
		idCodigo BIGSERIAL PRIMARY KEY,
		correo VARCHAR(150) NOT NULL,
		codigo VARCHAR(10) NOT NULL,
		proposito VARCHAR(20) NOT NULL,
		expira TIMESTAMPTZ NOT NULL,
		creado TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_publicacion_estado ON Publicacion(estado)`,
	`CREATE INDEX IF NOT EXISTS idx_interaccion_inmueble ON Interaccion(idInmueble)`,
	`CREATE INDEX IF NOT EXISTS idx_archivo_inmueble ON Archivo(idInmueble)`,
}

// EnsureSchema creates any missing tables. Statements are idempotent so
// the service can bootstrap an empty database.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	utils.Logger.Info("database schema ensured")
	return nil
}
