package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/AxelVC22/Inmuebles-api/internal/controllers"
	"github.com/AxelVC22/Inmuebles-api/internal/middleware"
	"github.com/AxelVC22/Inmuebles-api/internal/models"
	"github.com/AxelVC22/Inmuebles-api/internal/services"
)

const (
	apiPrefix = "/api"

	pathHealth = "/health"

	pathRegister       = "/auth/register"
	pathLogin          = "/auth/login"
	pathForgotPassword = "/auth/forgot-password"
	pathResetPassword  = "/auth/reset-password"

	pathCategories = "/catalogs/categories"

	pathProperties      = "/properties"
	pathRecommended     = "/properties/recommended"
	pathMyProperties    = "/properties/mine"
	pathProperty        = "/properties/{id:[0-9]+}"
	pathPropertyStatus  = "/properties/{id:[0-9]+}/status"
	pathPropertyImages  = "/properties/{id:[0-9]+}/images"
	pathPropertyImage   = "/properties/{id:[0-9]+}/images/{imageId:[0-9]+}"
	pathImageVisibility = "/properties/{id:[0-9]+}/images/{imageId:[0-9]+}/visibility"

	pathVisits      = "/interactions/visits"
	pathVisit       = "/interactions/visits/{id:[0-9]+}"
	pathVisitAgenda = "/interactions/visits/agenda"
	pathContacts    = "/interactions/contacts"

	pathPaymentMethods = "/payments/methods"
	pathPayments       = "/payments"

	pathPreferences = "/users/preferences"

	pathProfile  = "/accounts/profile"
	pathPassword = "/accounts/password"
)

type Controllers struct {
	Auth        *controllers.AuthController
	Account     *controllers.AccountController
	Catalog     *controllers.CatalogController
	Property    *controllers.PropertyController
	Interaction *controllers.InteractionController
	Payment     *controllers.PaymentController
	Preference  *controllers.PreferenceController
}

// Register wires every endpoint onto the router. Public routes go on
// the bare subrouter; everything else sits behind the auth middleware,
// with landlord-only surfaces additionally role-gated.
func Register(r *mux.Router, c Controllers, jwtSvc services.JWTService) {
	api := r.PathPrefix(apiPrefix).Subrouter()
	api.Use(middleware.RequestID)

	api.HandleFunc(pathHealth, controllers.HealthCheck).Methods(http.MethodGet)

	api.HandleFunc(pathRegister, c.Auth.Register).Methods(http.MethodPost)
	api.HandleFunc(pathLogin, c.Auth.Login).Methods(http.MethodPost)
	api.HandleFunc(pathForgotPassword, c.Auth.ForgotPassword).Methods(http.MethodPost)
	api.HandleFunc(pathResetPassword, c.Auth.ResetPassword).Methods(http.MethodPost)

	api.HandleFunc(pathCategories, c.Catalog.ListCategories).Methods(http.MethodGet)

	api.HandleFunc(pathProperties, c.Property.Search).Methods(http.MethodGet)
	api.HandleFunc(pathProperty, c.Property.Get).Methods(http.MethodGet)
	api.HandleFunc(pathPropertyImages, c.Property.ListImages).Methods(http.MethodGet)

	authed := api.NewRoute().Subrouter()
	authed.Use(middleware.Authenticate(jwtSvc))

	authed.HandleFunc(pathRecommended, c.Property.Recommended).Methods(http.MethodGet)

	authed.HandleFunc(pathVisits, c.Interaction.ScheduleVisit).Methods(http.MethodPost)
	authed.HandleFunc(pathVisits, c.Interaction.ListMyVisits).Methods(http.MethodGet)
	authed.HandleFunc(pathVisitAgenda, c.Interaction.ListAgenda).Methods(http.MethodGet)
	authed.HandleFunc(pathVisit, c.Interaction.UpdateVisitStatus).Methods(http.MethodPut)
	authed.HandleFunc(pathContacts, c.Interaction.RegisterContact).Methods(http.MethodPost)

	authed.HandleFunc(pathPaymentMethods, c.Payment.AddMethod).Methods(http.MethodPost)
	authed.HandleFunc(pathPaymentMethods, c.Payment.ListMethods).Methods(http.MethodGet)
	authed.HandleFunc(pathPayments, c.Payment.Pay).Methods(http.MethodPost)
	authed.HandleFunc(pathPayments, c.Payment.ListPayments).Methods(http.MethodGet)

	authed.HandleFunc(pathPreferences, c.Preference.Save).Methods(http.MethodPut)
	authed.HandleFunc(pathPreferences, c.Preference.Get).Methods(http.MethodGet)

	authed.HandleFunc(pathProfile, c.Account.GetProfile).Methods(http.MethodGet)
	authed.HandleFunc(pathProfile, c.Account.UpdateProfile).Methods(http.MethodPut)
	authed.HandleFunc(pathPassword, c.Account.ChangePassword).Methods(http.MethodPut)

	landlord := authed.NewRoute().Subrouter()
	landlord.Use(middleware.RequireRole(models.RoleLandlord))

	landlord.HandleFunc(pathProperties, c.Property.Create).Methods(http.MethodPost)
	landlord.HandleFunc(pathMyProperties, c.Property.ListMine).Methods(http.MethodGet)
	landlord.HandleFunc(pathProperty, c.Property.Update).Methods(http.MethodPut)
	landlord.HandleFunc(pathPropertyStatus, c.Property.ChangeStatus).Methods(http.MethodPatch)
	landlord.HandleFunc(pathPropertyImages, c.Property.UploadImage).Methods(http.MethodPost)
	landlord.HandleFunc(pathImageVisibility, c.Property.SetImageVisibility).Methods(http.MethodPatch)
	landlord.HandleFunc(pathPropertyImage, c.Property.DeleteImage).Methods(http.MethodDelete)
}
