package models

import "time"

type PropertyImage struct {
	ID         int64     `json:"idArchivo"`
	PropertyID int64     `json:"idInmueble"`
	Name       string    `json:"nombre"`
	Extension  string    `json:"extension"`
	MimeType   string    `json:"tipoMime"`
	Data       []byte    `json:"-"`
	IsCover    bool      `json:"esPortada"`
	Visible    bool      `json:"visible"`
	UploadedAt time.Time `json:"fechaSubida"`
}
