package routers

import (
	"cancer-prediction-service/internal/app/delivery/http/controllers"
	"cancer-prediction-service/internal/app/delivery/http/middlewares"
	"cancer-prediction-service/internal/app/models"

	"github.com/go-chi/chi/v5"
)

func attachPredictionRoutes(router chi.Router, middlewares *middlewares.Middlewares, predictionController *controllers.PredictionController) {
	router.Use(middlewares.PredictionRateLimiter())

	router.Post("/estimate", predictionController.Estimate)
	router.With(
		middlewares.Authenticate,
		middlewares.RequireRole(models.RolePatient),
	).Get("/risk", predictionController.GenerateForSession)
}
