package middlewares

import (
	"cancer-prediction-service/internal/app/config"
	"cancer-prediction-service/internal/app/models"
	"cancer-prediction-service/internal/pkg/constvars"
	"cancer-prediction-service/internal/pkg/dto/requests"
	"cancer-prediction-service/internal/pkg/dto/responses"
	"cancer-prediction-service/internal/pkg/exceptions"
	"cancer-prediction-service/internal/pkg/utils"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockAuthUsecase struct {
	mock.Mock
}

func (m *mockAuthUsecase) CreateSession(ctx context.Context, request *requests.CreateSession) (*responses.CreateSession, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.CreateSession)
	return result, args.Error(1)
}

func (m *mockAuthUsecase) ResolveSession(ctx context.Context, token string) (*models.Session, error) {
	args := m.Called(ctx, token)
	result, _ := args.Get(0).(*models.Session)
	return result, args.Error(1)
}

func (m *mockAuthUsecase) ClearSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func newTestMiddlewares(authUsecase *mockAuthUsecase) *Middlewares {
	return NewMiddlewares(zap.NewNop(), authUsecase, &config.InternalConfig{
		App: config.App{
			MaxRequests:                 100,
			RequestBodyLimitInMegabyte:  1,
			PredictionRequestsPerMinute: 2,
			PredictionBlockTimeInSecond: 60,
		},
	})
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) exceptions.CustomError {
	t.Helper()
	var body exceptions.CustomError
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("success"))
})

func TestRequestIDMiddleware(t *testing.T) {
	middlewares := newTestMiddlewares(new(mockAuthUsecase))

	t.Run("Generates Request ID", func(t *testing.T) {
		var seen string
		handler := middlewares.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		}))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/home", nil))

		assert.True(t, strings.HasPrefix(seen, constvars.REQUEST_ID_PREFIX), "generated id should carry the prefix")
		assert.Equal(t, seen, rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("Keeps Client Request ID", func(t *testing.T) {
		var seen string
		var isClient bool
		handler := middlewares.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			isClient, _ = r.Context().Value(constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY).(bool)
		}))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/home", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-id-1")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, "client-id-1", seen)
		assert.True(t, isClient)
	})
}

func TestLoggingPassesThroughStatus(t *testing.T) {
	middlewares := newTestMiddlewares(new(mockAuthUsecase))
	handler := middlewares.Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rr.Code)
}

func TestErrorHandlerRecoversPanic(t *testing.T) {
	middlewares := newTestMiddlewares(new(mockAuthUsecase))
	handler := middlewares.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	body := decodeError(t, rr)
	assert.False(t, body.Success)
	assert.Equal(t, constvars.ErrClientCannotProcessRequest, body.ClientMessage)
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	middlewares := newTestMiddlewares(new(mockAuthUsecase))

	t.Run("Not Found", func(t *testing.T) {
		rr := httptest.NewRecorder()
		middlewares.NotFound(rr, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, constvars.ErrClientRouteNotFound, decodeError(t, rr).ClientMessage)
	})

	t.Run("Method Not Allowed", func(t *testing.T) {
		rr := httptest.NewRecorder()
		middlewares.MethodNotAllowed(rr, httptest.NewRequest(http.MethodPut, "/api/v1/home", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	})
}

func TestAuthenticate(t *testing.T) {
	patientSession := &models.Session{SessionID: "s-1", User: models.UserProfile{ID: "abc123xyz", Role: models.RolePatient}}

	t.Run("Missing Token", func(t *testing.T) {
		middlewares := newTestMiddlewares(new(mockAuthUsecase))

		rr := httptest.NewRecorder()
		middlewares.Authenticate(okHandler).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Invalid Token", func(t *testing.T) {
		authUsecase := new(mockAuthUsecase)
		authUsecase.On("ResolveSession", mock.Anything, "bad").Return(nil, exceptions.ErrTokenInvalidOrExpired(errors.New("bad token")))
		middlewares := newTestMiddlewares(authUsecase)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer bad")
		rr := httptest.NewRecorder()
		middlewares.Authenticate(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Valid Token Attaches Session", func(t *testing.T) {
		authUsecase := new(mockAuthUsecase)
		authUsecase.On("ResolveSession", mock.Anything, "good").Return(patientSession, nil)
		middlewares := newTestMiddlewares(authUsecase)

		var seen *models.Session
		handler := middlewares.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = utils.GetSessionFromContext(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer good")
		handler.ServeHTTP(httptest.NewRecorder(), req)

		require.NotNil(t, seen)
		assert.Equal(t, "s-1", seen.SessionID)
	})

	t.Run("Optional Ignores Invalid Token", func(t *testing.T) {
		authUsecase := new(mockAuthUsecase)
		authUsecase.On("ResolveSession", mock.Anything, "bad").Return(nil, exceptions.ErrSessionNotFound(errors.New("gone")))
		middlewares := newTestMiddlewares(authUsecase)

		called := false
		handler := middlewares.OptionalAuthenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			assert.Nil(t, utils.GetSessionFromContext(r.Context()))
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer bad")
		handler.ServeHTTP(httptest.NewRecorder(), req)

		assert.True(t, called)
	})
}

func TestRequireRole(t *testing.T) {
	middlewares := newTestMiddlewares(new(mockAuthUsecase))
	handler := middlewares.RequireRole(models.RoleDoctor)(okHandler)

	t.Run("No Session", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Wrong Role", func(t *testing.T) {
		session := &models.Session{User: models.UserProfile{Role: models.RolePatient}}
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(utils.SetSessionToContext(req.Context(), session))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("Matching Role", func(t *testing.T) {
		session := &models.Session{User: models.UserProfile{Role: models.RoleDoctor}}
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(utils.SetSessionToContext(req.Context(), session))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestRateLimiter(t *testing.T) {
	current := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(zap.NewNop(), 2, time.Minute, 30*time.Second)
	limiter.now = func() time.Time { return current }
	handler := limiter.Limit(okHandler)

	send := func(remoteAddr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = remoteAddr
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1:1234").Code)
	assert.Equal(t, http.StatusOK, send("10.0.0.1:1234").Code)

	blocked := send("10.0.0.1:1234")
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
	assert.Equal(t, "31", blocked.Header().Get(constvars.HeaderRetryAfter))

	assert.Equal(t, http.StatusOK, send("10.0.0.2:1234").Code, "other clients are unaffected")

	current = current.Add(10 * time.Second)
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1:1234").Code, "still blocked")

	current = current.Add(time.Minute)
	assert.Equal(t, http.StatusOK, send("10.0.0.1:1234").Code, "unblocked after block time")
}

func TestBodyLimit(t *testing.T) {
	middlewares := newTestMiddlewares(new(mockAuthUsecase))
	var readErr error
	handler := middlewares.BodyLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]interface{}
		readErr = json.NewDecoder(r.Body).Decode(&payload)
	}))

	oversized := `{"name":"` + strings.Repeat("a", 2<<20) + `"}`
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", strings.NewReader(oversized)))

	assert.Error(t, readErr)
}
