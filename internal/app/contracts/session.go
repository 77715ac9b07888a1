package contracts

import (
	"cancer-prediction-service/internal/app/models"
	"context"
	"time"
)

// SessionRepository owns the sessions created from profile submissions.
// Get returns (nil, nil) when no session exists for the id.
type SessionRepository interface {
	Create(ctx context.Context, session *models.Session, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (*models.Session, error)
	Delete(ctx context.Context, sessionID string) error
}
