package contracts

import (
	"cancer-prediction-service/internal/app/models"
	"cancer-prediction-service/internal/pkg/dto/responses"
	"context"
)

type DashboardUsecase interface {
	PatientDashboard(ctx context.Context, session *models.Session) (*responses.PatientDashboard, error)
	DoctorDashboard(ctx context.Context, session *models.Session) (*responses.DoctorDashboard, error)
	Home(ctx context.Context, session *models.Session) *responses.Home
}
