package routers

import (
	"cancer-prediction-service/internal/app/config"
	"cancer-prediction-service/internal/app/delivery/http/controllers"
	"cancer-prediction-service/internal/app/delivery/http/middlewares"
	"fmt"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

type Controllers struct {
	AuthController        *controllers.AuthController
	PredictionController  *controllers.PredictionController
	PatientCaseController *controllers.PatientCaseController
	DashboardController   *controllers.DashboardController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	controllers *Controllers,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   internalConfig.App.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.GlobalRateLimiter())
	router.Use(middlewares.BodyLimit)

	router.NotFound(middlewares.NotFound)
	router.MethodNotAllowed(middlewares.MethodNotAllowed)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/home", func(r chi.Router) {
				attachHomeRoutes(r, middlewares, controllers.DashboardController)
			})

			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, controllers.AuthController)
			})

			r.Route("/predictions", func(r chi.Router) {
				attachPredictionRoutes(r, middlewares, controllers.PredictionController)
			})

			r.Route("/dashboards", func(r chi.Router) {
				attachDashboardRoutes(r, middlewares, controllers.DashboardController)
			})

			r.Route("/cases", func(r chi.Router) {
				attachPatientCaseRoutes(r, middlewares, controllers.PatientCaseController)
			})
		})
	})
}
