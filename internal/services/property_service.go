package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/AxelVC22/Inmuebles-api/internal/models"
	"github.com/AxelVC22/Inmuebles-api/internal/repositories"
	"github.com/AxelVC22/Inmuebles-api/internal/utils"
)

const defaultCurrency = "MXN"

// PropertyView is the detail payload: the stored aggregate plus the
// derived price per square meter. The derived value only exists for
// sale listings with a positive total area; rentals carry null.
type PropertyView struct {
	models.PropertyDetail
	PricePerM2 *float64 `json:"precioPorM2"`
}

type PropertyService interface {
	Create(ctx context.Context, userID int64, in *repositories.PropertyInput) (*PropertyView, error)
	Get(ctx context.Context, propertyID int64) (*PropertyView, error)
	Update(ctx context.Context, userID, propertyID int64, patch repositories.PropertyPatch) (*PropertyView, error)
	ListMine(ctx context.Context, userID int64) ([]repositories.LandlordPropertyRow, error)
	ChangeStatus(ctx context.Context, userID, propertyID int64, status models.PublicationStatusType, reason string) (*models.Publication, error)
	UploadImage(ctx context.Context, userID, propertyID int64, filename string, data []byte, isCover bool) (*models.PropertyImage, error)
	ListImages(ctx context.Context, propertyID int64) ([]models.PropertyImage, error)
	SetImageVisibility(ctx context.Context, userID, propertyID, imageID int64, visible bool) error
	DeleteImage(ctx context.Context, userID, propertyID, imageID int64) error
}

type propertyService struct {
	properties   repositories.PropertyRepository
	publications repositories.PublicationRepository
	images       repositories.ImageRepository
	catalogs     repositories.CatalogRepository
	users        repositories.UserRepository
}

func NewPropertyService(
	properties repositories.PropertyRepository,
	publications repositories.PublicationRepository,
	images repositories.ImageRepository,
	catalogs repositories.CatalogRepository,
	users repositories.UserRepository,
) PropertyService {
	return &propertyService{
		properties:   properties,
		publications: publications,
		images:       images,
		catalogs:     catalogs,
		users:        users,
	}
}

// validateRentTerms checks the rental conditions of a publication: a
// required deposit needs a positive amount, and the stay bounds must be
// positive months with minimum not above maximum.
func validateRentTerms(pub *models.Publication) error {
	if pub.DepositRequired {
		if pub.DepositAmount == nil || *pub.DepositAmount <= 0 {
			return utils.NewValidationError("El monto del depósito debe ser mayor a 0")
		}
	} else {
		pub.DepositAmount = nil
	}
	if pub.MinTermMonths != nil && *pub.MinTermMonths <= 0 {
		return utils.NewValidationError("El plazo mínimo debe ser mayor a 0 meses")
	}
	if pub.MaxTermMonths != nil && *pub.MaxTermMonths <= 0 {
		return utils.NewValidationError("El plazo máximo debe ser mayor a 0 meses")
	}
	if pub.MinTermMonths != nil && pub.MaxTermMonths != nil &&
		*pub.MinTermMonths > *pub.MaxTermMonths {
		return utils.NewValidationError("El plazo mínimo no puede exceder el plazo máximo")
	}
	return nil
}

// pricePerM2 derives the sale price per square meter. Rentals and
// degenerate areas yield nil.
func pricePerM2(pub models.Publication, totalArea float64) *float64 {
	if pub.OperationType != models.OperationSale || pub.SalePrice == nil || totalArea <= 0 {
		return nil
	}
	v := *pub.SalePrice / totalArea
	return &v
}

func (s *propertyService) view(d *models.PropertyDetail) *PropertyView {
	return &PropertyView{
		PropertyDetail: *d,
		PricePerM2:     pricePerM2(d.Publication, d.TotalArea),
	}
}

func (s *propertyService) Create(ctx context.Context, userID int64, in *repositories.PropertyInput) (*PropertyView, error) {
	landlordID, err := s.users.GetLandlordID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if landlordID == 0 {
		return nil, utils.NewForbiddenError("Solo los arrendadores pueden publicar inmuebles")
	}

	ok, err := s.catalogs.SubtypeExists(ctx, in.Property.SubtypeID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, utils.NewValidationError("El subtipo de inmueble no existe")
	}

	switch in.Publication.OperationType {
	case models.OperationSale:
		if in.Publication.SalePrice == nil || *in.Publication.SalePrice <= 0 {
			return nil, utils.NewValidationError("El precio de venta debe ser mayor a 0")
		}
		in.Publication.MonthlyRentPrice = nil
		in.Publication.DepositRequired = false
		in.Publication.DepositAmount = nil
		in.Publication.MinTermMonths = nil
		in.Publication.MaxTermMonths = nil
	case models.OperationRent:
		if in.Publication.MonthlyRentPrice == nil || *in.Publication.MonthlyRentPrice <= 0 {
			return nil, utils.NewValidationError("El precio de renta mensual debe ser mayor a 0")
		}
		in.Publication.SalePrice = nil
		if err := validateRentTerms(&in.Publication); err != nil {
			return nil, err
		}
	default:
		return nil, utils.NewValidationError("Tipo de operación inválido")
	}

	in.Property.LandlordID = landlordID
	in.Publication.Status = models.PublicationPublished
	in.Publication.Currency = defaultCurrency

	propertyID, err := s.properties.CreateAtomic(ctx, in)
	if err != nil {
		return nil, err
	}
	utils.Logger.WithField("propertyId", propertyID).Info("property published")
	return s.Get(ctx, propertyID)
}

func (s *propertyService) Get(ctx context.Context, propertyID int64) (*PropertyView, error) {
	d, err := s.properties.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, utils.NewNotFoundError("Inmueble no encontrado")
	}
	return s.view(d), nil
}

func (s *propertyService) Update(ctx context.Context, userID, propertyID int64, patch repositories.PropertyPatch) (*PropertyView, error) {
	if err := s.requireOwner(ctx, userID, propertyID); err != nil {
		return nil, err
	}
	if patch.SalePrice != nil && *patch.SalePrice <= 0 {
		return nil, utils.NewValidationError("El precio de venta debe ser mayor a 0")
	}
	if patch.MonthlyRentPrice != nil && *patch.MonthlyRentPrice <= 0 {
		return nil, utils.NewValidationError("El precio de renta mensual debe ser mayor a 0")
	}
	// Which price column a listing carries is fixed by its operation
	// type; a patch may only touch the matching one.
	if patch.SalePrice != nil || patch.MonthlyRentPrice != nil {
		pub, err := s.publications.GetByPropertyID(ctx, propertyID)
		if err != nil {
			return nil, err
		}
		if pub == nil {
			return nil, utils.NewNotFoundError("Publicación no encontrada")
		}
		switch pub.OperationType {
		case models.OperationSale:
			if patch.MonthlyRentPrice != nil {
				return nil, utils.NewValidationError("El inmueble está en venta; solo admite precioVenta")
			}
		case models.OperationRent:
			if patch.SalePrice != nil {
				return nil, utils.NewValidationError("El inmueble está en renta; solo admite precioRentaMensual")
			}
		}
	}
	if err := s.properties.UpdateAtomic(ctx, propertyID, patch); err != nil {
		return nil, err
	}
	return s.Get(ctx, propertyID)
}

func (s *propertyService) ListMine(ctx context.Context, userID int64) ([]repositories.LandlordPropertyRow, error) {
	landlordID, err := s.users.GetLandlordID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if landlordID == 0 {
		return nil, utils.NewForbiddenError("Solo los arrendadores tienen inmuebles propios")
	}
	return s.properties.ListByLandlord(ctx, landlordID)
}

// ChangeStatus toggles a publication between Publicada and Pausada.
// Vendida and Rentada are absorbing and are never reachable through
// this operation.
func (s *propertyService) ChangeStatus(ctx context.Context, userID, propertyID int64, status models.PublicationStatusType, reason string) (*models.Publication, error) {
	if err := s.requireOwner(ctx, userID, propertyID); err != nil {
		return nil, err
	}
	if status != models.PublicationPublished && status != models.PublicationPaused {
		return nil, utils.NewValidationError(
			fmt.Sprintf("El estado %s no puede asignarse manualmente", status))
	}

	pub, err := s.publications.GetByPropertyID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if pub == nil {
		return nil, utils.NewNotFoundError("Publicación no encontrada")
	}
	if pub.Status.Terminal() {
		return nil, utils.NewValidationError(
			fmt.Sprintf("La publicación ya está %s y no admite cambios", pub.Status))
	}
	if status == pub.Status {
		return pub, nil
	}

	if reason == "" {
		reason = "Cambio solicitado por el arrendador"
	}
	if err := s.publications.UpdateStatusWithHistory(ctx, pub.ID, status, reason); err != nil {
		return nil, err
	}
	pub.Status = status
	utils.Logger.WithFields(map[string]interface{}{
		"publicationId": pub.ID,
		"status":        status,
	}).Info("publication status changed")
	return pub, nil
}

func (s *propertyService) UploadImage(ctx context.Context, userID, propertyID int64, filename string, data []byte, isCover bool) (*models.PropertyImage, error) {
	if err := s.requireOwner(ctx, userID, propertyID); err != nil {
		return nil, err
	}

	processed, err := utils.ProcessImage(data)
	if err != nil {
		return nil, utils.NewValidationError(err.Error())
	}

	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	if name == "" {
		name = "imagen"
	}
	img := &models.PropertyImage{
		PropertyID: propertyID,
		Name:       name,
		Extension:  utils.ProcessedExt,
		MimeType:   utils.ProcessedMime,
		Data:       processed,
		IsCover:    isCover,
		Visible:    true,
	}
	if err := s.images.Create(ctx, img); err != nil {
		return nil, err
	}
	return img, nil
}

func (s *propertyService) ListImages(ctx context.Context, propertyID int64) ([]models.PropertyImage, error) {
	owner, err := s.properties.GetOwnerUserID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if owner == 0 {
		return nil, utils.NewNotFoundError("Inmueble no encontrado")
	}
	return s.images.ListByProperty(ctx, propertyID)
}

func (s *propertyService) SetImageVisibility(ctx context.Context, userID, propertyID, imageID int64, visible bool) error {
	if err := s.ownImage(ctx, userID, propertyID, imageID); err != nil {
		return err
	}
	return s.images.SetVisibility(ctx, imageID, visible)
}

func (s *propertyService) DeleteImage(ctx context.Context, userID, propertyID, imageID int64) error {
	if err := s.ownImage(ctx, userID, propertyID, imageID); err != nil {
		return err
	}
	return s.images.Delete(ctx, imageID)
}

// ownImage resolves an image under a given property and checks that the
// caller owns that property. An image hanging off a different property
// is treated as absent.
func (s *propertyService) ownImage(ctx context.Context, userID, propertyID, imageID int64) error {
	img, err := s.images.Get(ctx, imageID)
	if err != nil {
		return err
	}
	if img == nil || img.PropertyID != propertyID {
		return utils.NewNotFoundError("Imagen no encontrada")
	}
	return s.requireOwner(ctx, userID, propertyID)
}

func (s *propertyService) requireOwner(ctx context.Context, userID, propertyID int64) error {
	owner, err := s.properties.GetOwnerUserID(ctx, propertyID)
	if err != nil {
		return err
	}
	if owner == 0 {
		return utils.NewNotFoundError("Inmueble no encontrado")
	}
	if owner != userID {
		return utils.NewForbiddenError("El inmueble pertenece a otro arrendador")
	}
	return nil
}
