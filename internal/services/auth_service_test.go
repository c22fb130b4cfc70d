package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AxelVC22/Inmuebles-api/internal/models"
	"github.com/AxelVC22/Inmuebles-api/internal/utils"
)

type authFixture struct {
	svc    AuthService
	users  *fakeUserRepo
	codes  *fakeResetCodeRepo
	prefs  *fakePreferenceRepo
	mailer *fakeMailer
}

func newAuthFixture() *authFixture {
	users := newFakeUserRepo()
	codes := newFakeResetCodeRepo()
	prefs := newFakePreferenceRepo()
	catalogs := newFakeCatalogRepo()
	catalogs.categories[1] = true
	mailer := &fakeMailer{}
	jwtSvc := NewJWTService("test-secret", time.Hour)
	prefSvc := NewPreferenceService(prefs, catalogs)
	return &authFixture{
		svc:    NewAuthService(users, codes, prefSvc, jwtSvc, mailer, 15*time.Minute),
		users:  users,
		codes:  codes,
		prefs:  prefs,
		mailer: mailer,
	}
}

func clientInput(email string) RegisterInput {
	return RegisterInput{
		Name:        "Ana",
		Surname:     "García",
		Email:       email,
		Password:    "super-secreta-1",
		Role:        models.RoleClient,
		Phone:       "2281234567",
		BirthDate:   time.Date(1995, 4, 12, 0, 0, 0, 0, time.UTC),
		Nationality: "Mexicana",
	}
}

func TestRegister_Client(t *testing.T) {
	f := newAuthFixture()

	user, err := f.svc.Register(context.Background(), clientInput("ana@example.com"))

	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, models.AccountStatusActive, user.AccountStatus)
	assert.NotEqual(t, "super-secreta-1", user.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("super-secreta-1", user.PasswordHash))
}

func TestRegister_LandlordWithoutRFC(t *testing.T) {
	f := newAuthFixture()
	in := clientInput("dueno@example.com")
	in.Role = models.RoleLandlord

	_, err := f.svc.Register(context.Background(), in)

	assertAppErrorStatus(t, err, 400)
	assert.Empty(t, f.users.created, "nothing should be persisted")
}

func TestRegister_LandlordWithRFC(t *testing.T) {
	f := newAuthFixture()
	in := clientInput("dueno@example.com")
	in.Role = models.RoleLandlord
	in.RFC = utils.Ptr("GAGA950412AB1")

	user, err := f.svc.Register(context.Background(), in)

	require.NoError(t, err)
	landlordID, _ := f.users.GetLandlordID(context.Background(), user.ID)
	clientID, _ := f.users.GetClientID(context.Background(), user.ID)
	assert.NotZero(t, landlordID, "landlords own properties")
	assert.NotZero(t, clientID, "landlords can also act as clients")
}

func TestRegister_WithInitialPreferences(t *testing.T) {
	f := newAuthFixture()
	in := clientInput("ana@example.com")
	in.Preferences = &models.Preference{
		BudgetMax:  utils.Ptr(15000.0),
		CategoryID: utils.Ptr(int64(1)),
	}

	user, err := f.svc.Register(context.Background(), in)

	require.NoError(t, err)
	stored := f.prefs.byUser[user.ID]
	require.NotNil(t, stored, "preferences from the registration body are persisted")
	assert.Equal(t, 15000.0, *stored.BudgetMax)
	assert.Equal(t, int64(1), *stored.CategoryID)
}

func TestRegister_WithInvalidPreferences(t *testing.T) {
	f := newAuthFixture()
	in := clientInput("ana@example.com")
	in.Preferences = &models.Preference{
		BudgetMin: utils.Ptr(20000.0),
		BudgetMax: utils.Ptr(5000.0),
	}

	_, err := f.svc.Register(context.Background(), in)

	assertAppErrorStatus(t, err, 400)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	f := newAuthFixture()
	_, err := f.svc.Register(context.Background(), clientInput("ana@example.com"))
	require.NoError(t, err)

	_, err = f.svc.Register(context.Background(), clientInput("ana@example.com"))

	assertAppErrorStatus(t, err, 400)
	assert.ErrorIs(t, err, utils.ErrEmailExists)
}

func TestLogin_Success(t *testing.T) {
	f := newAuthFixture()
	_, err := f.svc.Register(context.Background(), clientInput("ana@example.com"))
	require.NoError(t, err)

	token, user, err := f.svc.Login(context.Background(), "ana@example.com", "super-secreta-1")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "ana@example.com", user.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	f := newAuthFixture()
	_, err := f.svc.Register(context.Background(), clientInput("ana@example.com"))
	require.NoError(t, err)

	_, _, err = f.svc.Login(context.Background(), "ana@example.com", "incorrecta")

	assertAppErrorStatus(t, err, 401)
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	f := newAuthFixture()

	_, _, err := f.svc.Login(context.Background(), "nadie@example.com", "lo-que-sea")

	assertAppErrorStatus(t, err, 401)
}

func TestPasswordReset_FullFlow(t *testing.T) {
	f := newAuthFixture()
	_, err := f.svc.Register(context.Background(), clientInput("ana@example.com"))
	require.NoError(t, err)

	require.NoError(t, f.svc.RequestPasswordReset(context.Background(), "ana@example.com"))
	require.Len(t, f.mailer.sent, 1)
	code := f.mailer.sent[0]
	assert.Len(t, code, 6)

	require.NoError(t, f.svc.ResetPassword(context.Background(), "ana@example.com", code, "nueva-clave-99"))

	_, _, err = f.svc.Login(context.Background(), "ana@example.com", "nueva-clave-99")
	require.NoError(t, err)

	// The code is single use.
	assert.NotEmpty(t, f.codes.deleted)
}

func TestPasswordReset_WrongCode(t *testing.T) {
	f := newAuthFixture()
	_, err := f.svc.Register(context.Background(), clientInput("ana@example.com"))
	require.NoError(t, err)
	require.NoError(t, f.svc.RequestPasswordReset(context.Background(), "ana@example.com"))

	err = f.svc.ResetPassword(context.Background(), "ana@example.com", "000000", "nueva-clave-99")

	assertAppErrorStatus(t, err, 400)
}

func TestPasswordReset_ExpiredCode(t *testing.T) {
	f := newAuthFixture()
	_, err := f.svc.Register(context.Background(), clientInput("ana@example.com"))
	require.NoError(t, err)
	require.NoError(t, f.svc.RequestPasswordReset(context.Background(), "ana@example.com"))
	f.codes.codes["ana@example.com"].ExpiresAt = time.Now().Add(-time.Minute)

	err = f.svc.ResetPassword(context.Background(), "ana@example.com",
		f.mailer.sent[0], "nueva-clave-99")

	assertAppErrorStatus(t, err, 400)
}

func TestPasswordReset_UnknownEmail(t *testing.T) {
	f := newAuthFixture()

	err := f.svc.RequestPasswordReset(context.Background(), "nadie@example.com")

	assertAppErrorStatus(t, err, 404)
}
