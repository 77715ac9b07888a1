package contracts

import (
	"cancer-prediction-service/internal/app/models"
	"cancer-prediction-service/internal/pkg/dto/requests"
	"cancer-prediction-service/internal/pkg/dto/responses"
	"context"
)

type AuthUsecase interface {
	CreateSession(ctx context.Context, request *requests.CreateSession) (*responses.CreateSession, error)
	ResolveSession(ctx context.Context, token string) (*models.Session, error)
	ClearSession(ctx context.Context, sessionID string) error
}
