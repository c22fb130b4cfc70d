package services

import (
	"context"
	"fmt"
	"time"

	"github.com/AxelVC22/Inmuebles-api/internal/models"
	"github.com/AxelVC22/Inmuebles-api/internal/repositories"
	"github.com/AxelVC22/Inmuebles-api/internal/utils"
)

const resetPurpose = "reset"

type RegisterInput struct {
	Name          string
	Surname       string
	Email         string
	Password      string
	Role          models.RoleType
	Phone         string
	LandlinePhone *string
	BirthDate     time.Time
	Nationality   string
	RFC           *string
	Address       *models.Address
	Preferences   *models.Preference
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, code, newPassword string) error
}

type authService struct {
	users       repositories.UserRepository
	resetCodes  repositories.ResetCodeRepository
	preferences PreferenceService
	jwt         JWTService
	mailer      Mailer
	resetExpiry time.Duration
}

func NewAuthService(users repositories.UserRepository, resetCodes repositories.ResetCodeRepository, preferences PreferenceService, jwtSvc JWTService, mailer Mailer, resetExpiry time.Duration) AuthService {
	return &authService{
		users:       users,
		resetCodes:  resetCodes,
		preferences: preferences,
		jwt:         jwtSvc,
		mailer:      mailer,
		resetExpiry: resetExpiry,
	}
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	// Role-conditional requirement: landlords must provide their tax id
	// before anything is persisted.
	if in.Role == models.RoleLandlord && (in.RFC == nil || *in.RFC == "") {
		return nil, utils.NewValidationError("El RFC es obligatorio para arrendadores")
	}

	inUse, err := s.users.EmailInUse(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if inUse {
		return nil, utils.NewConflictError("El correo electrónico ya está registrado").
			WithCause(utils.ErrEmailExists)
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:          in.Name,
		Surname:       in.Surname,
		Email:         in.Email,
		PasswordHash:  hash,
		Role:          in.Role,
		Phone:         in.Phone,
		LandlinePhone: in.LandlinePhone,
		BirthDate:     in.BirthDate,
		Nationality:   in.Nationality,
		AccountStatus: models.AccountStatusActive,
	}
	if err := s.users.CreateWithProfiles(ctx, user, in.Address, in.RFC); err != nil {
		return nil, err
	}

	// The registration body may carry initial search preferences; they
	// go through the same validation as the preferences endpoint.
	if in.Preferences != nil {
		if _, err := s.preferences.Save(ctx, user.ID, in.Preferences); err != nil {
			return nil, err
		}
	}

	utils.Logger.WithField("userId", user.ID).Info("account registered")
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	// Same failure for unknown email and bad password.
	if user == nil || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return "", nil, utils.NewUnauthorizedError("Credenciales inválidas").
			WithCause(utils.ErrInvalidCredentials)
	}
	if user.AccountStatus != models.AccountStatusActive {
		return "", nil, utils.NewForbiddenError("La cuenta está inactiva")
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Role)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *authService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return utils.NewNotFoundError("No existe una cuenta con ese correo")
	}

	code := &models.ResetCode{
		Email:     email,
		Code:      utils.RandomNumericString(6),
		Purpose:   resetPurpose,
		ExpiresAt: time.Now().Add(s.resetExpiry),
	}
	if err := s.resetCodes.Create(ctx, code); err != nil {
		return err
	}

	minutes := int(s.resetExpiry.Minutes())
	if err := s.mailer.SendResetCode(email, user.Name, code.Code, minutes); err != nil {
		return fmt.Errorf("sending reset code: %w", err)
	}
	return nil
}

func (s *authService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	stored, err := s.resetCodes.GetLatestByEmail(ctx, email, resetPurpose)
	if err != nil {
		return err
	}
	if stored == nil || stored.Code != code {
		return utils.NewValidationError("Código inválido")
	}
	if stored.Expired(time.Now()) {
		return utils.NewValidationError("El código ha expirado")
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, email, hash); err != nil {
		return err
	}

	// Single use: redeeming the code removes it.
	if err := s.resetCodes.Delete(ctx, stored.ID); err != nil {
		utils.Logger.WithError(err).Warn("could not delete redeemed reset code")
	}
	return nil
}
