package routers

import (
	"cancer-prediction-service/internal/app/delivery/http/controllers"
	"cancer-prediction-service/internal/app/delivery/http/middlewares"
	"cancer-prediction-service/internal/app/models"

	"github.com/go-chi/chi/v5"
)

func attachPatientCaseRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientCaseController *controllers.PatientCaseController) {
	router.Use(middlewares.Authenticate)
	router.Use(middlewares.RequireRole(models.RoleDoctor))

	router.Get("/", patientCaseController.FindAll)
	router.Post("/exports", patientCaseController.Export)
	router.Get("/{caseID}", patientCaseController.FindByID)
}
