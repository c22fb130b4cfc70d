package controllers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/AxelVC22/Inmuebles-api/internal/dtos"
	"github.com/AxelVC22/Inmuebles-api/internal/services"
	"github.com/AxelVC22/Inmuebles-api/internal/utils"
)

type PreferenceController struct {
	preferences services.PreferenceService
	validate    *validator.Validate
}

func NewPreferenceController(preferences services.PreferenceService, validate *validator.Validate) *PreferenceController {
	return &PreferenceController{preferences: preferences, validate: validate}
}

func (c *PreferenceController) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}

	var req dtos.SavePreferencesRequest
	if !decodeAndValidate(w, r, c.validate, &req) {
		return
	}

	pref, err := c.preferences.Save(r.Context(), userID, req.ToModel())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, "Preferencias guardadas", pref)
}

func (c *PreferenceController) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}

	pref, err := c.preferences.Get(r.Context(), userID)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	if pref == nil {
		utils.RespondSuccess(w, http.StatusOK, "Aún no has configurado tus preferencias", nil)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, "", pref)
}
