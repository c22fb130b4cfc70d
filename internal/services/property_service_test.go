package services

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AxelVC22/Inmuebles-api/internal/models"
	"github.com/AxelVC22/Inmuebles-api/internal/repositories"
	"github.com/AxelVC22/Inmuebles-api/internal/utils"
)

type propertyFixture struct {
	svc          PropertyService
	users        *fakeUserRepo
	properties   *fakePropertyRepo
	publications *fakePublicationRepo
	images       *fakeImageRepo
	catalogs     *fakeCatalogRepo
}

// newPropertyFixture gives user 1 a landlord profile and registers
// subtype 5 in the catalog.
func newPropertyFixture() *propertyFixture {
	users := newFakeUserRepo()
	users.landlordIDs[1] = 10
	users.clientIDs[1] = 11
	users.clientIDs[2] = 20

	catalogs := newFakeCatalogRepo()
	catalogs.subtypes[5] = true

	properties := newFakePropertyRepo()
	publications := newFakePublicationRepo()
	images := newFakeImageRepo()

	return &propertyFixture{
		svc:          NewPropertyService(properties, publications, images, catalogs, users),
		users:        users,
		properties:   properties,
		publications: publications,
		images:       images,
		catalogs:     catalogs,
	}
}

func saleInput(price float64, area float64) *repositories.PropertyInput {
	return &repositories.PropertyInput{
		Property: models.Property{
			SubtypeID: 5,
			Title:     "Casa en venta centro",
			TotalArea: area,
		},
		Publication: models.Publication{
			OperationType: models.OperationSale,
			SalePrice:     utils.Ptr(price),
		},
	}
}

func TestCreateProperty_RequiresLandlord(t *testing.T) {
	f := newPropertyFixture()

	_, err := f.svc.Create(context.Background(), 2, saleInput(1000000, 100))

	assertAppErrorStatus(t, err, 403)
}

func TestCreateProperty_UnknownSubtype(t *testing.T) {
	f := newPropertyFixture()
	in := saleInput(1000000, 100)
	in.Property.SubtypeID = 99

	_, err := f.svc.Create(context.Background(), 1, in)

	assertAppErrorStatus(t, err, 400)
}

func TestCreateProperty_SaleWithoutPrice(t *testing.T) {
	f := newPropertyFixture()
	in := saleInput(0, 100)
	in.Publication.SalePrice = nil

	_, err := f.svc.Create(context.Background(), 1, in)

	assertAppErrorStatus(t, err, 400)
}

func TestCreateProperty_RentWithoutPrice(t *testing.T) {
	f := newPropertyFixture()
	in := saleInput(0, 100)
	in.Publication.OperationType = models.OperationRent
	in.Publication.SalePrice = nil

	_, err := f.svc.Create(context.Background(), 1, in)

	assertAppErrorStatus(t, err, 400)
}

func TestCreateProperty_Defaults(t *testing.T) {
	f := newPropertyFixture()
	in := saleInput(1000000, 100)
	in.Publication.MonthlyRentPrice = utils.Ptr(5000.0) // contradictory, must be dropped

	view, err := f.svc.Create(context.Background(), 1, in)

	require.NoError(t, err)
	assert.Equal(t, models.PublicationPublished, view.Publication.Status)
	assert.Equal(t, "MXN", view.Publication.Currency)
	assert.Nil(t, view.Publication.MonthlyRentPrice)
	assert.Equal(t, int64(10), view.LandlordID)
}

func TestPricePerM2_Sale(t *testing.T) {
	f := newPropertyFixture()

	view, err := f.svc.Create(context.Background(), 1, saleInput(1000000, 100))

	require.NoError(t, err)
	require.NotNil(t, view.PricePerM2)
	assert.InDelta(t, 10000.0, *view.PricePerM2, 0.001)
}

func TestPricePerM2_RentIsNil(t *testing.T) {
	f := newPropertyFixture()
	in := saleInput(0, 100)
	in.Publication.OperationType = models.OperationRent
	in.Publication.SalePrice = nil
	in.Publication.MonthlyRentPrice = utils.Ptr(8000.0)

	view, err := f.svc.Create(context.Background(), 1, in)

	require.NoError(t, err)
	assert.Nil(t, view.PricePerM2)
}

func TestPricePerM2_ZeroAreaIsNil(t *testing.T) {
	f := newPropertyFixture()

	view, err := f.svc.Create(context.Background(), 1, saleInput(1000000, 0))

	require.NoError(t, err)
	assert.Nil(t, view.PricePerM2)
}

func TestChangeStatus_NotOwner(t *testing.T) {
	f := newPropertyFixture()
	view, err := f.svc.Create(context.Background(), 1, saleInput(1000000, 100))
	require.NoError(t, err)
	f.properties.owners[view.ID] = 1
	f.publications.byProperty[view.ID] = &view.Publication

	_, err = f.svc.ChangeStatus(context.Background(), 2, view.ID, models.PublicationPaused, "")

	assertAppErrorStatus(t, err, 403)
}

func TestChangeStatus_PauseAndResume(t *testing.T) {
	f := newPropertyFixture()
	view, err := f.svc.Create(context.Background(), 1, saleInput(1000000, 100))
	require.NoError(t, err)
	f.properties.owners[view.ID] = 1
	f.publications.byProperty[view.ID] = &models.Publication{
		ID:         77,
		PropertyID: view.ID,
		Status:     models.PublicationPublished,
	}

	pub, err := f.svc.ChangeStatus(context.Background(), 1, view.ID, models.PublicationPaused, "")
	require.NoError(t, err)
	assert.Equal(t, models.PublicationPaused, pub.Status)

	pub, err = f.svc.ChangeStatus(context.Background(), 1, view.ID, models.PublicationPublished, "")
	require.NoError(t, err)
	assert.Equal(t, models.PublicationPublished, pub.Status)

	assert.Equal(t, []models.PublicationStatusType{
		models.PublicationPaused, models.PublicationPublished,
	}, f.publications.updates)
}

func TestChangeStatus_RecordsReason(t *testing.T) {
	f := newPropertyFixture()
	view, err := f.svc.Create(context.Background(), 1, saleInput(1000000, 100))
	require.NoError(t, err)
	f.properties.owners[view.ID] = 1
	f.publications.byProperty[view.ID] = &models.Publication{
		ID:         77,
		PropertyID: view.ID,
		Status:     models.PublicationPublished,
	}

	_, err = f.svc.ChangeStatus(context.Background(), 1, view.ID,
		models.PublicationPaused, "Remodelación en curso")
	require.NoError(t, err)

	_, err = f.svc.ChangeStatus(context.Background(), 1, view.ID,
		models.PublicationPublished, "")
	require.NoError(t, err)

	require.Len(t, f.publications.reasons, 2)
	assert.Equal(t, "Remodelación en curso", f.publications.reasons[0])
	assert.NotEmpty(t, f.publications.reasons[1], "a blank reason gets a default")
}

func TestChangeStatus_TerminalTargetRejected(t *testing.T) {
	f := newPropertyFixture()
	view, err := f.svc.Create(context.Background(), 1, saleInput(1000000, 100))
	require.NoError(t, err)
	f.properties.owners[view.ID] = 1
	f.publications.byProperty[view.ID] = &models.Publication{
		ID:         77,
		PropertyID: view.ID,
		Status:     models.PublicationPublished,
	}

	for _, target := range []models.PublicationStatusType{models.PublicationSold, models.PublicationRented} {
		_, err := f.svc.ChangeStatus(context.Background(), 1, view.ID, target, "")

		assertAppErrorStatus(t, err, 400)
	}
	assert.Empty(t, f.publications.updates, "no transition may be written")
}

func TestChangeStatus_TerminalRejected(t *testing.T) {
	f := newPropertyFixture()
	view, err := f.svc.Create(context.Background(), 1, saleInput(1000000, 100))
	require.NoError(t, err)
	f.properties.owners[view.ID] = 1

	for _, terminal := range []models.PublicationStatusType{models.PublicationSold, models.PublicationRented} {
		f.publications.byProperty[view.ID] = &models.Publication{
			ID:         77,
			PropertyID: view.ID,
			Status:     terminal,
		}

		_, err := f.svc.ChangeStatus(context.Background(), 1, view.ID, models.PublicationPublished, "")

		assertAppErrorStatus(t, err, 400)
	}
}

func TestUpdateProperty_RentPriceOnSaleListing(t *testing.T) {
	f := newPropertyFixture()
	view, err := f.svc.Create(context.Background(), 1, saleInput(1000000, 100))
	require.NoError(t, err)
	f.properties.owners[view.ID] = 1
	f.publications.byProperty[view.ID] = &view.Publication

	_, err = f.svc.Update(context.Background(), 1, view.ID, repositories.PropertyPatch{
		MonthlyRentPrice: utils.Ptr(9000.0),
	})

	assertAppErrorStatus(t, err, 400)
	assert.Empty(t, f.properties.patches, "nothing may be written")
}

func TestUpdateProperty_SalePriceOnRentListing(t *testing.T) {
	f := newPropertyFixture()
	in := saleInput(0, 100)
	in.Publication.OperationType = models.OperationRent
	in.Publication.SalePrice = nil
	in.Publication.MonthlyRentPrice = utils.Ptr(8000.0)
	view, err := f.svc.Create(context.Background(), 1, in)
	require.NoError(t, err)
	f.properties.owners[view.ID] = 1
	f.publications.byProperty[view.ID] = &view.Publication

	_, err = f.svc.Update(context.Background(), 1, view.ID, repositories.PropertyPatch{
		SalePrice: utils.Ptr(2000000.0),
	})

	assertAppErrorStatus(t, err, 400)
}

func TestUpdateProperty_MatchingPriceAccepted(t *testing.T) {
	f := newPropertyFixture()
	view, err := f.svc.Create(context.Background(), 1, saleInput(1000000, 100))
	require.NoError(t, err)
	f.properties.owners[view.ID] = 1
	f.publications.byProperty[view.ID] = &view.Publication

	_, err = f.svc.Update(context.Background(), 1, view.ID, repositories.PropertyPatch{
		SalePrice: utils.Ptr(1200000.0),
	})

	require.NoError(t, err)
	patch := f.properties.patches[view.ID]
	require.NotNil(t, patch.SalePrice)
	assert.Equal(t, 1200000.0, *patch.SalePrice)
	assert.Nil(t, patch.MonthlyRentPrice)
}

func rentInputWithTerms() *repositories.PropertyInput {
	in := saleInput(0, 100)
	in.Publication.OperationType = models.OperationRent
	in.Publication.SalePrice = nil
	in.Publication.MonthlyRentPrice = utils.Ptr(8000.0)
	return in
}

func TestCreateProperty_DepositRequiresAmount(t *testing.T) {
	f := newPropertyFixture()
	in := rentInputWithTerms()
	in.Publication.DepositRequired = true

	_, err := f.svc.Create(context.Background(), 1, in)

	assertAppErrorStatus(t, err, 400)
}

func TestCreateProperty_InvertedTermBounds(t *testing.T) {
	f := newPropertyFixture()
	in := rentInputWithTerms()
	in.Publication.MinTermMonths = utils.Ptr(24)
	in.Publication.MaxTermMonths = utils.Ptr(6)

	_, err := f.svc.Create(context.Background(), 1, in)

	assertAppErrorStatus(t, err, 400)
}

func TestCreateProperty_RentTermsStored(t *testing.T) {
	f := newPropertyFixture()
	in := rentInputWithTerms()
	in.Publication.DepositRequired = true
	in.Publication.DepositAmount = utils.Ptr(8000.0)
	in.Publication.MinTermMonths = utils.Ptr(6)
	in.Publication.MaxTermMonths = utils.Ptr(24)

	view, err := f.svc.Create(context.Background(), 1, in)

	require.NoError(t, err)
	assert.True(t, view.Publication.DepositRequired)
	assert.Equal(t, 8000.0, *view.Publication.DepositAmount)
	assert.Equal(t, 6, *view.Publication.MinTermMonths)
	assert.Equal(t, 24, *view.Publication.MaxTermMonths)
}

func TestCreateProperty_SaleDropsRentTerms(t *testing.T) {
	f := newPropertyFixture()
	in := saleInput(1000000, 100)
	in.Publication.DepositRequired = true
	in.Publication.DepositAmount = utils.Ptr(8000.0)
	in.Publication.MinTermMonths = utils.Ptr(6)

	view, err := f.svc.Create(context.Background(), 1, in)

	require.NoError(t, err)
	assert.False(t, view.Publication.DepositRequired)
	assert.Nil(t, view.Publication.DepositAmount)
	assert.Nil(t, view.Publication.MinTermMonths)
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 30), G: uint8(y * 30), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestUploadImage_ReencodesAsJPEG(t *testing.T) {
	f := newPropertyFixture()
	view, err := f.svc.Create(context.Background(), 1, saleInput(1000000, 100))
	require.NoError(t, err)
	f.properties.owners[view.ID] = 1

	img, err := f.svc.UploadImage(context.Background(), 1, view.ID, "fachada.png", pngBytes(t), true)

	require.NoError(t, err)
	assert.Equal(t, "jpeg", img.Extension)
	assert.Equal(t, "image/jpeg", img.MimeType)
	assert.Equal(t, "fachada", img.Name)
	assert.True(t, img.Visible)
	assert.True(t, img.IsCover)
	assert.NotEmpty(t, img.Data)
}

func TestUploadImage_RejectsNonImage(t *testing.T) {
	f := newPropertyFixture()
	view, err := f.svc.Create(context.Background(), 1, saleInput(1000000, 100))
	require.NoError(t, err)
	f.properties.owners[view.ID] = 1

	_, err = f.svc.UploadImage(context.Background(), 1, view.ID, "nota.txt",
		[]byte("definitely not an image"), false)

	assertAppErrorStatus(t, err, 400)
}

func TestUploadImage_NotOwner(t *testing.T) {
	f := newPropertyFixture()
	view, err := f.svc.Create(context.Background(), 1, saleInput(1000000, 100))
	require.NoError(t, err)
	f.properties.owners[view.ID] = 1

	_, err = f.svc.UploadImage(context.Background(), 2, view.ID, "fachada.png", pngBytes(t), false)

	assertAppErrorStatus(t, err, 403)
}

func TestDeleteImage_WrongProperty(t *testing.T) {
	f := newPropertyFixture()
	view, err := f.svc.Create(context.Background(), 1, saleInput(1000000, 100))
	require.NoError(t, err)
	f.properties.owners[view.ID] = 1

	img, err := f.svc.UploadImage(context.Background(), 1, view.ID, "fachada.png", pngBytes(t), false)
	require.NoError(t, err)

	// The image hangs off view.ID; addressing it under another property
	// must not resolve it.
	err = f.svc.DeleteImage(context.Background(), 1, view.ID+1, img.ID)

	assertAppErrorStatus(t, err, 404)
	assert.Contains(t, f.images.images, img.ID, "the image must survive")
}

func TestSetImageVisibility_OwnerScoped(t *testing.T) {
	f := newPropertyFixture()
	view, err := f.svc.Create(context.Background(), 1, saleInput(1000000, 100))
	require.NoError(t, err)
	f.properties.owners[view.ID] = 1

	img, err := f.svc.UploadImage(context.Background(), 1, view.ID, "fachada.png", pngBytes(t), false)
	require.NoError(t, err)

	err = f.svc.SetImageVisibility(context.Background(), 2, view.ID, img.ID, false)
	assertAppErrorStatus(t, err, 403)

	require.NoError(t, f.svc.SetImageVisibility(context.Background(), 1, view.ID, img.ID, false))
	assert.False(t, f.images.images[img.ID].Visible)
}

func TestGetProperty_NotFound(t *testing.T) {
	f := newPropertyFixture()

	_, err := f.svc.Get(context.Background(), 999)

	assertAppErrorStatus(t, err, 404)
}
