package models

// Preference stores a client's budget range and preferred category.
// At most one row per user; saved with upsert semantics.
type Preference struct {
	ID         int64     `json:"idPreferencias"`
	UserID     int64     `json:"idUsuario"`
	BudgetMin  *float64  `json:"presupuestoMin,omitempty"`
	BudgetMax  *float64  `json:"presupuestoMax,omitempty"`
	CategoryID *int64    `json:"idCategoria,omitempty"`
	Category   *Category `json:"categoria,omitempty"`
}
