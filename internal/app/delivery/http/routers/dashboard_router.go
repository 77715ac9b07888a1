package routers

import (
	"cancer-prediction-service/internal/app/delivery/http/controllers"
	"cancer-prediction-service/internal/app/delivery/http/middlewares"
	"cancer-prediction-service/internal/app/models"

	"github.com/go-chi/chi/v5"
)

func attachHomeRoutes(router chi.Router, middlewares *middlewares.Middlewares, dashboardController *controllers.DashboardController) {
	router.With(middlewares.OptionalAuthenticate).Get("/", dashboardController.Home)
}

func attachDashboardRoutes(router chi.Router, middlewares *middlewares.Middlewares, dashboardController *controllers.DashboardController) {
	router.Use(middlewares.Authenticate)

	router.With(middlewares.RequireRole(models.RolePatient)).Get("/patient", dashboardController.PatientDashboard)
	router.With(middlewares.RequireRole(models.RoleDoctor)).Get("/doctor", dashboardController.DoctorDashboard)
}
