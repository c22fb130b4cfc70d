package repositories

import (
	"context"

	"github.com/AxelVC22/Inmuebles-api/internal/models"
)

type InteractionRepository interface {
	Create(ctx context.Context, interaction *models.Interaction) error
}

type interactionRepository struct {
	db DB
}

func NewInteractionRepository(db DB) InteractionRepository {
	return &interactionRepository{db: db}
}

func (r *interactionRepository) Create(ctx context.Context, interaction *models.Interaction) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO Interaccion (idCliente, idInmueble, tipo)
		VALUES ($1, $2, $3)
		RETURNING idInteraccion, fecha`,
		interaction.ClientID, interaction.PropertyID, interaction.Type,
	).Scan(&interaction.ID, &interaction.CreatedAt)
}
