package services

import (
	"context"

	"github.com/AxelVC22/Inmuebles-api/internal/models"
	"github.com/AxelVC22/Inmuebles-api/internal/repositories"
	"github.com/AxelVC22/Inmuebles-api/internal/utils"
)

type AccountService interface {
	GetProfile(ctx context.Context, userID int64) (*models.Profile, error)
	UpdateProfile(ctx context.Context, userID int64, upd repositories.ProfileUpdate) (*models.Profile, error)
	ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error
}

type accountService struct {
	users repositories.UserRepository
}

func NewAccountService(users repositories.UserRepository) AccountService {
	return &accountService{users: users}
}

func (s *accountService) GetProfile(ctx context.Context, userID int64) (*models.Profile, error) {
	profile, err := s.users.GetProfileByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, utils.NewNotFoundError("Usuario no encontrado")
	}
	return profile, nil
}

func (s *accountService) UpdateProfile(ctx context.Context, userID int64, upd repositories.ProfileUpdate) (*models.Profile, error) {
	profile, err := s.users.GetProfileByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, utils.NewNotFoundError("Usuario no encontrado")
	}
	if upd.RFC != nil && profile.Landlord == nil {
		return nil, utils.NewValidationError("Solo los arrendadores tienen RFC")
	}

	if err := s.users.UpdateProfileAtomic(ctx, userID, upd); err != nil {
		return nil, err
	}
	return s.users.GetProfileByID(ctx, userID)
}

func (s *accountService) ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	profile, err := s.users.GetProfileByID(ctx, userID)
	if err != nil {
		return err
	}
	if profile == nil {
		return utils.NewNotFoundError("Usuario no encontrado")
	}
	if !utils.CheckPasswordHash(currentPassword, profile.User.PasswordHash) {
		return utils.NewUnauthorizedError("La contraseña actual es incorrecta").
			WithCause(utils.ErrInvalidCredentials)
	}
	if currentPassword == newPassword {
		return utils.NewValidationError("La nueva contraseña debe ser distinta a la actual")
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, profile.User.Email, hash); err != nil {
		return err
	}
	utils.Logger.WithField("userId", userID).Info("password changed")
	return nil
}
