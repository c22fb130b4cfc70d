package models

type Category struct {
	ID       int64     `json:"idCategoria"`
	Name     string    `json:"nombre"`
	Subtypes []Subtype `json:"subtipos,omitempty"`
}

type Subtype struct {
	ID         int64  `json:"idSubtipo"`
	CategoryID int64  `json:"idCategoria"`
	Name       string `json:"nombre"`
}
