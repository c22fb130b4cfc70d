package models

import "time"

type ResetCode struct {
	ID        int64     `json:"idCodigo"`
	Email     string    `json:"correo"`
	Code      string    `json:"codigo"`
	Purpose   string    `json:"proposito"`
	ExpiresAt time.Time `json:"expira"`
	CreatedAt time.Time `json:"creado"`
}

func (c ResetCode) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}
