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

const birthDateLayout = "2006-01-02"

type AuthController struct {
	auth     services.AuthService
	validate *validator.Validate
}

func NewAuthController(auth services.AuthService, validate *validator.Validate) *AuthController {
	return &AuthController{auth: auth, validate: validate}
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req dtos.RegisterRequest
	if !decodeAndValidate(w, r, c.validate, &req) {
		return
	}

	birthDate, err := time.Parse(birthDateLayout, req.BirthDate)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest,
			utils.ErrCodeValidation, "Invalid birth date", nil, err)
		return
	}
	role, err := models.ParseRole(req.Role)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest,
			utils.ErrCodeValidation, "Invalid role", nil, err)
		return
	}

	in := services.RegisterInput{
		Name:          req.Name,
		Surname:       req.Surname,
		Email:         req.Email,
		Password:      req.Password,
		Role:          role,
		Phone:         req.Phone,
		LandlinePhone: req.LandlinePhone,
		BirthDate:     birthDate,
		Nationality:   req.Nationality,
		RFC:           req.RFC,
	}
	if req.Address != nil {
		in.Address = req.Address.ToModel()
	}
	if req.Preferences != nil {
		in.Preferences = req.Preferences.ToModel()
	}

	user, err := c.auth.Register(r.Context(), in)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusCreated, "Cuenta registrada", dtos.NewUserResponse(user))
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dtos.LoginRequest
	if !decodeAndValidate(w, r, c.validate, &req) {
		return
	}

	token, user, err := c.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, "", dtos.LoginResponse{
		Token: token,
		User:  dtos.NewUserResponse(user),
	})
}

func (c *AuthController) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req dtos.ForgotPasswordRequest
	if !decodeAndValidate(w, r, c.validate, &req) {
		return
	}

	if err := c.auth.RequestPasswordReset(r.Context(), req.Email); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, "Código enviado al correo", nil)
}

func (c *AuthController) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req dtos.ResetPasswordRequest
	if !decodeAndValidate(w, r, c.validate, &req) {
		return
	}

	if err := c.auth.ResetPassword(r.Context(), req.Email, req.Code, req.NewPassword); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, "Contraseña actualizada", nil)
}
