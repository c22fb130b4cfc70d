package controllers

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/AxelVC22/Inmuebles-api/internal/dtos"
	"github.com/AxelVC22/Inmuebles-api/internal/models"
	"github.com/AxelVC22/Inmuebles-api/internal/services"
	"github.com/AxelVC22/Inmuebles-api/internal/utils"
)

const visitDateLayout = "2006-01-02"

type InteractionController struct {
	visits   services.VisitService
	validate *validator.Validate
}

func NewInteractionController(visits services.VisitService, validate *validator.Validate) *InteractionController {
	return &InteractionController{visits: visits, validate: validate}
}

func (c *InteractionController) ScheduleVisit(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}

	var req dtos.ScheduleVisitRequest
	if !decodeAndValidate(w, r, c.validate, &req) {
		return
	}

	date, err := time.Parse(visitDateLayout, req.Date)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest,
			utils.ErrCodeValidation, "Invalid visit date", nil, err)
		return
	}

	visit, err := c.visits.Schedule(r.Context(), userID, req.PropertyID, date, req.TimeSlot)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusCreated, "Visita agendada", visit)
}

func (c *InteractionController) UpdateVisitStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}
	visitID, err := pathID(r, "id")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest,
			utils.ErrCodeValidation, "Invalid visit id", nil, err)
		return
	}

	var req dtos.UpdateVisitStatusRequest
	if !decodeAndValidate(w, r, c.validate, &req) {
		return
	}
	status, err := models.ParseVisitStatus(req.Status)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest,
			utils.ErrCodeValidation, "Invalid visit status", nil, err)
		return
	}

	detail, err := c.visits.UpdateStatus(r.Context(), userID, visitID, status)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, "Visita actualizada", detail)
}

func (c *InteractionController) ListMyVisits(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}

	rows, err := c.visits.ListMine(r.Context(), userID)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, "", rows)
}

func (c *InteractionController) ListAgenda(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}

	rows, err := c.visits.ListAgenda(r.Context(), userID)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, "", rows)
}

func (c *InteractionController) RegisterContact(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}

	var req dtos.ContactRequest
	if !decodeAndValidate(w, r, c.validate, &req) {
		return
	}

	interaction, err := c.visits.RegisterContact(r.Context(), userID, req.PropertyID)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusCreated, "Contacto registrado", interaction)
}
