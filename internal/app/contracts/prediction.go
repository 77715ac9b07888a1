package contracts

import (
	"cancer-prediction-service/internal/app/models"
	"cancer-prediction-service/internal/pkg/dto/requests"
	"cancer-prediction-service/internal/pkg/dto/responses"
	"context"
)

type PredictionUsecase interface {
	Estimate(ctx context.Context, request *requests.EstimateRisk) (*responses.RiskEstimate, error)
	GenerateForSession(ctx context.Context, session *models.Session) (*responses.RiskEstimate, error)
}
