package controllers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/AxelVC22/Inmuebles-api/internal/dtos"
	"github.com/AxelVC22/Inmuebles-api/internal/services"
	"github.com/AxelVC22/Inmuebles-api/internal/utils"
)

type AccountController struct {
	accounts services.AccountService
	validate *validator.Validate
}

func NewAccountController(accounts services.AccountService, validate *validator.Validate) *AccountController {
	return &AccountController{accounts: accounts, validate: validate}
}

func (c *AccountController) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}

	profile, err := c.accounts.GetProfile(r.Context(), userID)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, "", profile)
}

func (c *AccountController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}

	var req dtos.UpdateProfileRequest
	if !decodeAndValidate(w, r, c.validate, &req) {
		return
	}

	profile, err := c.accounts.UpdateProfile(r.Context(), userID, req.ToUpdate())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, "Perfil actualizado", profile)
}

func (c *AccountController) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}

	var req dtos.ChangePasswordRequest
	if !decodeAndValidate(w, r, c.validate, &req) {
		return
	}

	if err := c.accounts.ChangePassword(r.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, "Contraseña actualizada", nil)
}
