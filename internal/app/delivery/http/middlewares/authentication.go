package middlewares

import (
	"cancer-prediction-service/internal/app/models"
	"cancer-prediction-service/internal/pkg/constvars"
	"cancer-prediction-service/internal/pkg/exceptions"
	"cancer-prediction-service/internal/pkg/utils"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// Authenticate resolves the bearer token into a session and rejects the
// request when there is none.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := utils.ParseBearerToken(r.Header.Get(constvars.HeaderAuthorization))
		if token == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(errors.New(constvars.ErrDevAuthTokenMissing)))
			return
		}

		session, err := m.AuthUsecase.ResolveSession(r.Context(), token)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := utils.SetSessionToContext(r.Context(), session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuthenticate attaches the session when a valid token is present and
// otherwise lets the request through anonymously.
func (m *Middlewares) OptionalAuthenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := utils.ParseBearerToken(r.Header.Get(constvars.HeaderAuthorization))
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		session, err := m.AuthUsecase.ResolveSession(r.Context(), token)
		if err != nil {
			requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			m.Log.Info("Middlewares.OptionalAuthenticate continuing without session",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			next.ServeHTTP(w, r)
			return
		}

		ctx := utils.SetSessionToContext(r.Context(), session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole must run after Authenticate.
func (m *Middlewares) RequireRole(role models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := utils.GetSessionFromContext(r.Context())
			if session == nil {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrSessionMissing(errors.New(constvars.ErrDevSessionMissingFromContext)))
				return
			}

			if session.User.Role != role {
				requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
				m.Log.Info("Middlewares.RequireRole rejected request",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingUserRoleKey, string(session.User.Role)),
				)
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotMatchRoleType(errors.New(constvars.ErrDevRoleTypeDoesntMatch)))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
