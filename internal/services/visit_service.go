package services

import (
	"context"
	"time"

	"github.com/AxelVC22/Inmuebles-api/internal/models"
	"github.com/AxelVC22/Inmuebles-api/internal/repositories"
	"github.com/AxelVC22/Inmuebles-api/internal/utils"
)

// visitTransitions encodes the visit state machine. Cancelada and
// Realizada are absorbing.
var visitTransitions = map[models.VisitStatusType][]models.VisitStatusType{
	models.VisitScheduled: {models.VisitConfirmed, models.VisitCancelled},
	models.VisitConfirmed: {models.VisitCancelled, models.VisitCompleted},
}

func transitionAllowed(from, to models.VisitStatusType) bool {
	for _, t := range visitTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

type VisitService interface {
	Schedule(ctx context.Context, userID, propertyID int64, date time.Time, timeSlot string) (*models.Visit, error)
	UpdateStatus(ctx context.Context, userID, visitID int64, status models.VisitStatusType) (*models.VisitDetail, error)
	ListMine(ctx context.Context, userID int64) ([]models.VisitListRow, error)
	ListAgenda(ctx context.Context, userID int64) ([]models.VisitListRow, error)
	RegisterContact(ctx context.Context, userID, propertyID int64) (*models.Interaction, error)
}

type visitService struct {
	visits       repositories.VisitRepository
	interactions repositories.InteractionRepository
	publications repositories.PublicationRepository
	properties   repositories.PropertyRepository
	users        repositories.UserRepository
}

func NewVisitService(
	visits repositories.VisitRepository,
	interactions repositories.InteractionRepository,
	publications repositories.PublicationRepository,
	properties repositories.PropertyRepository,
	users repositories.UserRepository,
) VisitService {
	return &visitService{
		visits:       visits,
		interactions: interactions,
		publications: publications,
		properties:   properties,
		users:        users,
	}
}

// checkInteractable verifies the property exists, is published and does
// not belong to the caller. Shared by visit scheduling and contacts.
func (s *visitService) checkInteractable(ctx context.Context, userID, propertyID int64) error {
	owner, err := s.properties.GetOwnerUserID(ctx, propertyID)
	if err != nil {
		return err
	}
	if owner == 0 {
		return utils.NewNotFoundError("Inmueble no encontrado")
	}
	if owner == userID {
		return utils.NewForbiddenError("No puedes interactuar con tu propio inmueble")
	}

	pub, err := s.publications.GetByPropertyID(ctx, propertyID)
	if err != nil {
		return err
	}
	if pub == nil || pub.Status != models.PublicationPublished {
		return utils.NewValidationError("El inmueble no está publicado")
	}
	return nil
}

func (s *visitService) Schedule(ctx context.Context, userID, propertyID int64, date time.Time, timeSlot string) (*models.Visit, error) {
	if err := s.checkInteractable(ctx, userID, propertyID); err != nil {
		return nil, err
	}
	// Date-only input: anything from today onward is schedulable.
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, date.Location())
	if date.Before(today) {
		return nil, utils.NewValidationError("La fecha de visita debe ser futura")
	}

	clientID, err := s.users.GetClientID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if clientID == 0 {
		return nil, utils.NewForbiddenError("La cuenta no tiene perfil de cliente")
	}

	visit := &models.Visit{
		ScheduledDate: date,
		TimeSlot:      timeSlot,
		Status:        models.VisitScheduled,
	}
	if err := s.visits.CreateWithInteraction(ctx, clientID, propertyID, visit); err != nil {
		return nil, err
	}
	utils.Logger.WithFields(map[string]interface{}{
		"visitId":    visit.ID,
		"propertyId": propertyID,
	}).Info("visit scheduled")
	return visit, nil
}

func (s *visitService) UpdateStatus(ctx context.Context, userID, visitID int64, status models.VisitStatusType) (*models.VisitDetail, error) {
	detail, err := s.visits.GetWithContext(ctx, visitID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, utils.NewNotFoundError("Visita no encontrada")
	}

	if detail.Status.Terminal() {
		return nil, utils.NewValidationError("La visita ya está " + string(detail.Status))
	}
	if !transitionAllowed(detail.Status, status) {
		return nil, utils.NewValidationError(
			"Transición inválida de " + string(detail.Status) + " a " + string(status))
	}

	callerClientID, err := s.users.GetClientID(ctx, userID)
	if err != nil {
		return nil, err
	}
	callerLandlordID, err := s.users.GetLandlordID(ctx, userID)
	if err != nil {
		return nil, err
	}
	isClient := callerClientID != 0 && callerClientID == detail.ClientID
	isLandlord := callerLandlordID != 0 && callerLandlordID == detail.LandlordID

	switch status {
	case models.VisitCancelled:
		// Either party can call the visit off.
		if !isClient && !isLandlord {
			return nil, utils.NewForbiddenError("Solo el cliente o el arrendador pueden cancelar la visita")
		}
	case models.VisitConfirmed:
		if !isLandlord {
			return nil, utils.NewForbiddenError("Solo el arrendador puede confirmar la visita")
		}
	case models.VisitCompleted:
		if !isLandlord {
			return nil, utils.NewForbiddenError("Solo el arrendador puede marcar la visita como realizada")
		}
		if detail.ScheduledDate.After(time.Now()) {
			return nil, utils.NewValidationError("No se puede completar una visita que aún no ocurre")
		}
	}

	if err := s.visits.UpdateStatus(ctx, visitID, status); err != nil {
		return nil, err
	}
	detail.Status = status
	return detail, nil
}

func (s *visitService) ListMine(ctx context.Context, userID int64) ([]models.VisitListRow, error) {
	clientID, err := s.users.GetClientID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if clientID == 0 {
		return []models.VisitListRow{}, nil
	}
	return s.visits.ListForClient(ctx, clientID)
}

func (s *visitService) ListAgenda(ctx context.Context, userID int64) ([]models.VisitListRow, error) {
	landlordID, err := s.users.GetLandlordID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if landlordID == 0 {
		return nil, utils.NewForbiddenError("Solo los arrendadores tienen agenda de visitas")
	}
	return s.visits.ListForLandlord(ctx, landlordID)
}

func (s *visitService) RegisterContact(ctx context.Context, userID, propertyID int64) (*models.Interaction, error) {
	if err := s.checkInteractable(ctx, userID, propertyID); err != nil {
		return nil, err
	}

	clientID, err := s.users.GetClientID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if clientID == 0 {
		return nil, utils.NewForbiddenError("La cuenta no tiene perfil de cliente")
	}

	interaction := &models.Interaction{
		ClientID:   clientID,
		PropertyID: propertyID,
		Type:       models.InteractionContact,
	}
	if err := s.interactions.Create(ctx, interaction); err != nil {
		return nil, err
	}
	return interaction, nil
}
