package utils

import (
	"cancer-prediction-service/internal/app/models"
	"cancer-prediction-service/internal/pkg/constvars"
	"context"
)

func SetSessionToContext(ctx context.Context, session *models.Session) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_SESSION_KEY, session)
}

// GetSessionFromContext returns the session attached by the authentication
// middleware, or nil for anonymous requests.
func GetSessionFromContext(ctx context.Context) *models.Session {
	session, _ := ctx.Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)
	return session
}
