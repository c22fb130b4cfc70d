package services

import (
	"context"
	"time"

	"github.com/AxelVC22/Inmuebles-api/internal/models"
	"github.com/AxelVC22/Inmuebles-api/internal/repositories"
)

// In-memory repository fakes. Each test sets up only the state it needs.

type fakeUserRepo struct {
	usersByEmail map[string]*models.User
	clientIDs    map[int64]int64
	landlordIDs  map[int64]int64
	created      []*models.User
	nextID       int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		usersByEmail: map[string]*models.User{},
		clientIDs:    map[int64]int64{},
		landlordIDs:  map[int64]int64{},
		nextID:       1,
	}
}

func (f *fakeUserRepo) CreateWithProfiles(ctx context.Context, user *models.User, address *models.Address, rfc *string) error {
	user.ID = f.nextID
	f.nextID++
	user.CreatedAt = time.Now()
	f.usersByEmail[user.Email] = user
	f.created = append(f.created, user)
	f.clientIDs[user.ID] = user.ID * 100
	if user.Role == models.RoleLandlord {
		f.landlordIDs[user.ID] = user.ID * 200
	}
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return f.usersByEmail[email], nil
}

func (f *fakeUserRepo) GetProfileByID(ctx context.Context, userID int64) (*models.Profile, error) {
	for _, u := range f.usersByEmail {
		if u.ID == userID {
			return &models.Profile{User: *u}, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) UpdateProfileAtomic(ctx context.Context, userID int64, upd repositories.ProfileUpdate) error {
	return nil
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	if u, ok := f.usersByEmail[email]; ok {
		u.PasswordHash = passwordHash
	}
	return nil
}

func (f *fakeUserRepo) EmailInUse(ctx context.Context, email string) (bool, error) {
	_, ok := f.usersByEmail[email]
	return ok, nil
}

func (f *fakeUserRepo) GetClientID(ctx context.Context, userID int64) (int64, error) {
	return f.clientIDs[userID], nil
}

func (f *fakeUserRepo) GetLandlordID(ctx context.Context, userID int64) (int64, error) {
	return f.landlordIDs[userID], nil
}

type fakeResetCodeRepo struct {
	codes   map[string]*models.ResetCode
	deleted []int64
	nextID  int64
}

func newFakeResetCodeRepo() *fakeResetCodeRepo {
	return &fakeResetCodeRepo{codes: map[string]*models.ResetCode{}, nextID: 1}
}

func (f *fakeResetCodeRepo) Create(ctx context.Context, code *models.ResetCode) error {
	code.ID = f.nextID
	f.nextID++
	code.CreatedAt = time.Now()
	f.codes[code.Email] = code
	return nil
}

func (f *fakeResetCodeRepo) GetLatestByEmail(ctx context.Context, email, purpose string) (*models.ResetCode, error) {
	c, ok := f.codes[email]
	if !ok || c.Purpose != purpose {
		return nil, nil
	}
	return c, nil
}

func (f *fakeResetCodeRepo) Delete(ctx context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeResetCodeRepo) CleanupExpired(ctx context.Context, now time.Time) (int64, error) {
	return 0, nil
}

type fakeMailer struct {
	sent []string
}

func (f *fakeMailer) SendResetCode(toEmail, toName, code string, expiryMinutes int) error {
	f.sent = append(f.sent, code)
	return nil
}

type fakePropertyRepo struct {
	owners  map[int64]int64 // propertyID -> owner userID
	details map[int64]*models.PropertyDetail
	created []*repositories.PropertyInput
	patches map[int64]repositories.PropertyPatch
	cards   []models.ListingCard
	total   int
	lastF   *repositories.ListingFilter
	nextID  int64
}

func newFakePropertyRepo() *fakePropertyRepo {
	return &fakePropertyRepo{
		owners:  map[int64]int64{},
		details: map[int64]*models.PropertyDetail{},
		patches: map[int64]repositories.PropertyPatch{},
		nextID:  1,
	}
}

func (f *fakePropertyRepo) CreateAtomic(ctx context.Context, in *repositories.PropertyInput) (int64, error) {
	id := f.nextID
	f.nextID++
	in.Property.ID = id
	f.created = append(f.created, in)
	f.details[id] = &models.PropertyDetail{
		Property:    in.Property,
		Address:     in.Address,
		Amenities:   in.Amenities,
		Services:    in.Services,
		Geolocation: in.Geolocation,
		Publication: in.Publication,
	}
	return id, nil
}

func (f *fakePropertyRepo) GetByID(ctx context.Context, id int64) (*models.PropertyDetail, error) {
	return f.details[id], nil
}

func (f *fakePropertyRepo) UpdateAtomic(ctx context.Context, propertyID int64, patch repositories.PropertyPatch) error {
	f.patches[propertyID] = patch
	return nil
}

func (f *fakePropertyRepo) ListByLandlord(ctx context.Context, landlordID int64) ([]repositories.LandlordPropertyRow, error) {
	return []repositories.LandlordPropertyRow{}, nil
}

func (f *fakePropertyRepo) SearchCards(ctx context.Context, filter *repositories.ListingFilter) ([]models.ListingCard, int, error) {
	f.lastF = filter
	return f.cards, f.total, nil
}

func (f *fakePropertyRepo) GetOwnerUserID(ctx context.Context, propertyID int64) (int64, error) {
	return f.owners[propertyID], nil
}

type fakePublicationRepo struct {
	byProperty map[int64]*models.Publication
	updates    []models.PublicationStatusType
	reasons    []string
}

func newFakePublicationRepo() *fakePublicationRepo {
	return &fakePublicationRepo{byProperty: map[int64]*models.Publication{}}
}

func (f *fakePublicationRepo) GetByPropertyID(ctx context.Context, propertyID int64) (*models.Publication, error) {
	return f.byProperty[propertyID], nil
}

func (f *fakePublicationRepo) UpdateStatusWithHistory(ctx context.Context, publicationID int64, status models.PublicationStatusType, reason string) error {
	f.updates = append(f.updates, status)
	f.reasons = append(f.reasons, reason)
	for _, p := range f.byProperty {
		if p.ID == publicationID {
			p.Status = status
		}
	}
	return nil
}

type fakeVisitRepo struct {
	visits  map[int64]*models.VisitDetail
	updates map[int64]models.VisitStatusType
	nextID  int64
}

func newFakeVisitRepo() *fakeVisitRepo {
	return &fakeVisitRepo{
		visits:  map[int64]*models.VisitDetail{},
		updates: map[int64]models.VisitStatusType{},
		nextID:  1,
	}
}

func (f *fakeVisitRepo) CreateWithInteraction(ctx context.Context, clientID, propertyID int64, visit *models.Visit) error {
	visit.ID = f.nextID
	visit.InteractionID = f.nextID
	f.nextID++
	f.visits[visit.ID] = &models.VisitDetail{
		Visit:      *visit,
		ClientID:   clientID,
		PropertyID: propertyID,
	}
	return nil
}

func (f *fakeVisitRepo) GetWithContext(ctx context.Context, visitID int64) (*models.VisitDetail, error) {
	return f.visits[visitID], nil
}

func (f *fakeVisitRepo) UpdateStatus(ctx context.Context, visitID int64, status models.VisitStatusType) error {
	f.updates[visitID] = status
	if v, ok := f.visits[visitID]; ok {
		v.Status = status
	}
	return nil
}

func (f *fakeVisitRepo) ListForClient(ctx context.Context, clientID int64) ([]models.VisitListRow, error) {
	return []models.VisitListRow{}, nil
}

func (f *fakeVisitRepo) ListForLandlord(ctx context.Context, landlordID int64) ([]models.VisitListRow, error) {
	return []models.VisitListRow{}, nil
}

type fakeInteractionRepo struct {
	created []*models.Interaction
	nextID  int64
}

func newFakeInteractionRepo() *fakeInteractionRepo {
	return &fakeInteractionRepo{nextID: 1}
}

func (f *fakeInteractionRepo) Create(ctx context.Context, interaction *models.Interaction) error {
	interaction.ID = f.nextID
	f.nextID++
	interaction.CreatedAt = time.Now()
	f.created = append(f.created, interaction)
	return nil
}

type fakePaymentRepo struct {
	methods  map[int64]*models.PaymentMethod
	payments []*models.Payment
	nextID   int64
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{methods: map[int64]*models.PaymentMethod{}, nextID: 1}
}

func (f *fakePaymentRepo) CreateMethodAtomic(ctx context.Context, method *models.PaymentMethod) error {
	if method.IsDefault {
		for _, m := range f.methods {
			if m.UserID == method.UserID {
				m.IsDefault = false
			}
		}
	}
	method.ID = f.nextID
	f.nextID++
	f.methods[method.ID] = method
	return nil
}

func (f *fakePaymentRepo) ListMethods(ctx context.Context, userID int64) ([]models.PaymentMethod, error) {
	out := []models.PaymentMethod{}
	for _, m := range f.methods {
		if m.UserID == userID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) GetMethod(ctx context.Context, methodID int64) (*models.PaymentMethod, error) {
	return f.methods[methodID], nil
}

func (f *fakePaymentRepo) CreatePayment(ctx context.Context, payment *models.Payment) error {
	payment.ID = f.nextID
	f.nextID++
	payment.PaidAt = time.Now()
	f.payments = append(f.payments, payment)
	return nil
}

func (f *fakePaymentRepo) ListPayments(ctx context.Context, userID int64) ([]models.Payment, error) {
	out := []models.Payment{}
	for _, p := range f.payments {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

type fakePreferenceRepo struct {
	byUser map[int64]*models.Preference
	nextID int64
}

func newFakePreferenceRepo() *fakePreferenceRepo {
	return &fakePreferenceRepo{byUser: map[int64]*models.Preference{}, nextID: 1}
}

func (f *fakePreferenceRepo) Upsert(ctx context.Context, pref *models.Preference) error {
	if existing, ok := f.byUser[pref.UserID]; ok {
		pref.ID = existing.ID
	} else {
		pref.ID = f.nextID
		f.nextID++
	}
	f.byUser[pref.UserID] = pref
	return nil
}

func (f *fakePreferenceRepo) GetByUserID(ctx context.Context, userID int64) (*models.Preference, error) {
	return f.byUser[userID], nil
}

type fakeCatalogRepo struct {
	categories map[int64]bool
	subtypes   map[int64]bool
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{categories: map[int64]bool{}, subtypes: map[int64]bool{}}
}

func (f *fakeCatalogRepo) ListCategories(ctx context.Context) ([]models.Category, error) {
	return []models.Category{}, nil
}

func (f *fakeCatalogRepo) CategoryExists(ctx context.Context, id int64) (bool, error) {
	return f.categories[id], nil
}

func (f *fakeCatalogRepo) SubtypeExists(ctx context.Context, id int64) (bool, error) {
	return f.subtypes[id], nil
}

type fakeImageRepo struct {
	images map[int64]*models.PropertyImage
	nextID int64
}

func newFakeImageRepo() *fakeImageRepo {
	return &fakeImageRepo{images: map[int64]*models.PropertyImage{}, nextID: 1}
}

func (f *fakeImageRepo) Create(ctx context.Context, img *models.PropertyImage) error {
	img.ID = f.nextID
	f.nextID++
	img.UploadedAt = time.Now()
	f.images[img.ID] = img
	return nil
}

func (f *fakeImageRepo) ListByProperty(ctx context.Context, propertyID int64) ([]models.PropertyImage, error) {
	out := []models.PropertyImage{}
	for _, img := range f.images {
		if img.PropertyID == propertyID {
			out = append(out, *img)
		}
	}
	return out, nil
}

func (f *fakeImageRepo) Get(ctx context.Context, imageID int64) (*models.PropertyImage, error) {
	return f.images[imageID], nil
}

func (f *fakeImageRepo) SetVisibility(ctx context.Context, imageID int64, visible bool) error {
	if img, ok := f.images[imageID]; ok {
		img.Visible = visible
	}
	return nil
}

func (f *fakeImageRepo) Delete(ctx context.Context, imageID int64) error {
	delete(f.images, imageID)
	return nil
}
