package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/robfig/cron/v3"
	"github.com/rs/cors"

	"github.com/AxelVC22/Inmuebles-api/internal/app"
	"github.com/AxelVC22/Inmuebles-api/internal/config"
	"github.com/AxelVC22/Inmuebles-api/internal/controllers"
	"github.com/AxelVC22/Inmuebles-api/internal/repositories"
	"github.com/AxelVC22/Inmuebles-api/internal/routes"
	"github.com/AxelVC22/Inmuebles-api/internal/services"
	"github.com/AxelVC22/Inmuebles-api/internal/utils"
)

const appName = "inmuebles-api"

func main() {
	utils.InitLogger(appName)
	cfg := config.Load()

	ctx := context.Background()
	pool := app.ConnectDB(ctx, cfg)
	defer pool.Close()

	if err := app.EnsureSchema(ctx, pool); err != nil {
		utils.Logger.WithError(err).Fatal("schema bootstrap failed")
	}
	if err := app.SeedCatalog(ctx, pool); err != nil {
		utils.Logger.WithError(err).Fatal("catalog seed failed")
	}

	userRepo := repositories.NewUserRepository(pool)
	catalogRepo := repositories.NewCatalogRepository(pool)
	preferenceRepo := repositories.NewPreferenceRepository(pool)
	propertyRepo := repositories.NewPropertyRepository(pool)
	publicationRepo := repositories.NewPublicationRepository(pool)
	visitRepo := repositories.NewVisitRepository(pool)
	interactionRepo := repositories.NewInteractionRepository(pool)
	paymentRepo := repositories.NewPaymentRepository(pool)
	imageRepo := repositories.NewImageRepository(pool)
	resetCodeRepo := repositories.NewResetCodeRepository(pool)

	jwtSvc := services.NewJWTService(cfg.JWTSecret, cfg.TokenExpiry)
	mailer := services.NewSendGridMailer(cfg.SendGridAPIKey, cfg.FromEmail, cfg.FromName)
	preferenceSvc := services.NewPreferenceService(preferenceRepo, catalogRepo)
	authSvc := services.NewAuthService(userRepo, resetCodeRepo, preferenceSvc, jwtSvc, mailer, cfg.ResetCodeExpiry)
	accountSvc := services.NewAccountService(userRepo)
	catalogSvc := services.NewCatalogService(catalogRepo)
	propertySvc := services.NewPropertyService(propertyRepo, publicationRepo, imageRepo, catalogRepo, userRepo)
	searchSvc := services.NewSearchService(propertyRepo, preferenceRepo)
	visitSvc := services.NewVisitService(visitRepo, interactionRepo, publicationRepo, propertyRepo, userRepo)
	paymentSvc := services.NewPaymentService(paymentRepo)

	validate := validator.New()

	router := mux.NewRouter()
	routes.Register(router, routes.Controllers{
		Auth:        controllers.NewAuthController(authSvc, validate),
		Account:     controllers.NewAccountController(accountSvc, validate),
		Catalog:     controllers.NewCatalogController(catalogSvc),
		Property:    controllers.NewPropertyController(propertySvc, searchSvc, validate),
		Interaction: controllers.NewInteractionController(visitSvc, validate),
		Payment:     controllers.NewPaymentController(paymentSvc, validate),
		Preference:  controllers.NewPreferenceController(preferenceSvc, validate),
	}, jwtSvc)

	scheduler := cron.New()
	// Expired reset codes are purged nightly.
	_, err := scheduler.AddFunc("0 3 * * *", func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		removed, err := resetCodeRepo.CleanupExpired(jobCtx, time.Now())
		if err != nil {
			utils.Logger.WithError(err).Error("reset code cleanup failed")
			return
		}
		utils.Logger.WithField("removed", removed).Info("expired reset codes purged")
	})
	if err != nil {
		utils.Logger.WithError(err).Fatal("could not schedule reset code cleanup")
	}
	scheduler.Start()
	defer scheduler.Stop()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{cfg.AllowedOrigin},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(router)

	addr := ":" + cfg.AppPort
	utils.Logger.Infof("listening on %s", addr)
	if err := http.ListenAndServe(addr, corsHandler); err != nil {
		utils.Logger.WithError(err).Fatal("server stopped")
	}
}
