package controllers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/AxelVC22/Inmuebles-api/internal/dtos"
	"github.com/AxelVC22/Inmuebles-api/internal/services"
	"github.com/AxelVC22/Inmuebles-api/internal/utils"
)

type PaymentController struct {
	payments services.PaymentService
	validate *validator.Validate
}

func NewPaymentController(payments services.PaymentService, validate *validator.Validate) *PaymentController {
	return &PaymentController{payments: payments, validate: validate}
}

func (c *PaymentController) AddMethod(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}

	var req dtos.AddPaymentMethodRequest
	if !decodeAndValidate(w, r, c.validate, &req) {
		return
	}

	method, err := c.payments.AddMethod(r.Context(), userID, services.AddMethodInput{
		Type:      req.Type,
		Alias:     req.Alias,
		Number:    req.Number,
		IsDefault: req.IsDefault,
	})
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusCreated, "Método de pago agregado", method)
}

func (c *PaymentController) ListMethods(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}

	methods, err := c.payments.ListMethods(r.Context(), userID)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, "", methods)
}

func (c *PaymentController) Pay(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}

	var req dtos.PayRequest
	if !decodeAndValidate(w, r, c.validate, &req) {
		return
	}

	payment, err := c.payments.Pay(r.Context(), userID, services.PayInput{
		MethodID: req.MethodID,
		Concept:  req.Concept,
		Amount:   req.Amount,
	})
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusCreated, "Pago realizado", payment)
}

func (c *PaymentController) ListPayments(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}

	payments, err := c.payments.ListPayments(r.Context(), userID)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, "", payments)
}
