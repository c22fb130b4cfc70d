package dtos

import (
	"encoding/base64"

	"github.com/AxelVC22/Inmuebles-api/internal/models"
)

func imageDataURI(img *models.PropertyImage) string {
	return "data:" + img.MimeType + ";base64," + base64.StdEncoding.EncodeToString(img.Data)
}
