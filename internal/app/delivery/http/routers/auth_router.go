package routers

import (
	"cancer-prediction-service/internal/app/delivery/http/controllers"
	"cancer-prediction-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	router.Post("/session", authController.CreateSession)
	router.With(middlewares.Authenticate).Get("/session", authController.GetSession)
	router.With(middlewares.Authenticate).Delete("/session", authController.ClearSession)
}
