package routers

import (
	"cancer-prediction-service/internal/app/config"
	"cancer-prediction-service/internal/app/delivery/http/controllers"
	"cancer-prediction-service/internal/app/delivery/http/middlewares"
	"cancer-prediction-service/internal/app/services/core/auth"
	"cancer-prediction-service/internal/app/services/core/cases"
	"cancer-prediction-service/internal/app/services/core/dashboards"
	"cancer-prediction-service/internal/app/services/core/predictions"
	"cancer-prediction-service/internal/app/services/core/session"
	"cancer-prediction-service/internal/app/services/shared/messaging"
	"cancer-prediction-service/internal/pkg/constvars"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()
	logger := zap.NewNop()

	internalConfig := &config.InternalConfig{
		App: config.App{
			Version:                     "v1",
			EndpointPrefix:              "api",
			AllowedOrigins:              []string{"*"},
			MaxRequests:                 1000,
			RequestBodyLimitInMegabyte:  1,
			PredictionRequestsPerMinute: 1000,
			PredictionBlockTimeInSecond: 1,
		},
		JWT:     config.JWT{Secret: "router-test-secret"},
		Session: config.Session{ExpiredTimeInHours: 1},
	}

	authUsecase := auth.NewAuthUsecase(session.NewSessionMemoryRepository(), internalConfig, logger)
	predictionUsecase := predictions.NewPredictionUsecase(messaging.NewNopPublisher(), internalConfig, logger)
	patientCaseUsecase := cases.NewPatientCaseUsecase(cases.NewPatientCaseMemoryRepository(cases.DefaultPatientCases()), nil, internalConfig, logger)
	dashboardUsecase := dashboards.NewDashboardUsecase(patientCaseUsecase, logger)

	router := chi.NewRouter()
	SetupRoutes(router, internalConfig, middlewares.NewMiddlewares(logger, authUsecase, internalConfig), &Controllers{
		AuthController:        controllers.NewAuthController(logger, authUsecase),
		PredictionController:  controllers.NewPredictionController(logger, predictionUsecase),
		PatientCaseController: controllers.NewPatientCaseController(logger, patientCaseUsecase),
		DashboardController:   controllers.NewDashboardController(logger, dashboardUsecase),
	})
	return router
}

func doRequest(router http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder, data interface{}) envelope {
	t.Helper()
	var body envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), rr.Body.String())
	if data != nil {
		require.NoError(t, json.Unmarshal(body.Data, data))
	}
	return body
}

func createSession(t *testing.T, router http.Handler, body string) string {
	t.Helper()
	rr := doRequest(router, http.MethodPost, "/api/v1/auth/session", "", body)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var data struct {
		Token string `json:"token"`
	}
	decodeEnvelope(t, rr, &data)
	require.NotEmpty(t, data.Token)
	return data.Token
}

func TestHomeRoute(t *testing.T) {
	router := newTestRouter(t)

	t.Run("Anonymous Gets Hero", func(t *testing.T) {
		rr := doRequest(router, http.MethodGet, "/api/v1/home", "", "")
		require.Equal(t, http.StatusOK, rr.Code)

		var data struct {
			View  string `json:"view"`
			Badge string `json:"badge"`
		}
		decodeEnvelope(t, rr, &data)
		assert.Equal(t, constvars.ViewHero, data.View)
		assert.Equal(t, constvars.HeroBadge, data.Badge)
	})

	t.Run("Stale Token Still Gets Hero", func(t *testing.T) {
		rr := doRequest(router, http.MethodGet, "/api/v1/home", "garbage", "")
		require.Equal(t, http.StatusOK, rr.Code)

		var data struct {
			View string `json:"view"`
		}
		decodeEnvelope(t, rr, &data)
		assert.Equal(t, constvars.ViewHero, data.View)
	})

	t.Run("Doctor Gets Doctor Dashboard View", func(t *testing.T) {
		token := createSession(t, router, `{"name":"Chen","age":"50","role":"doctor"}`)

		rr := doRequest(router, http.MethodGet, "/api/v1/home", token, "")
		var data struct {
			View string `json:"view"`
		}
		decodeEnvelope(t, rr, &data)
		assert.Equal(t, constvars.ViewDoctorDashboard, data.View)
	})
}

func TestSessionLifecycle(t *testing.T) {
	router := newTestRouter(t)

	t.Run("Missing Information", func(t *testing.T) {
		rr := doRequest(router, http.MethodPost, "/api/v1/auth/session", "", `{"name":"","age":"45"}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), constvars.ErrClientMissingInformation)
	})

	t.Run("Invalid Enum", func(t *testing.T) {
		rr := doRequest(router, http.MethodPost, "/api/v1/auth/session", "", `{"name":"Sam","age":"45","role":"nurse"}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		rr := doRequest(router, http.MethodPost, "/api/v1/auth/session", "", `{"name":`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Create Get Clear", func(t *testing.T) {
		rr := doRequest(router, http.MethodPost, "/api/v1/auth/session", "", `{"mode":"signup","name":"Sarah","age":45,"gender":"female","cancer_type":"breast","stage":"ii"}`)
		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

		var created struct {
			Token       string `json:"token"`
			Title       string `json:"title"`
			Description string `json:"description"`
			User        struct {
				Stage string `json:"stage"`
				Age   int    `json:"age"`
			} `json:"user"`
		}
		body := decodeEnvelope(t, rr, &created)
		assert.Equal(t, constvars.AccountCreatedTitle, body.Message)
		assert.Equal(t, "Welcome Sarah", created.Description)
		assert.Equal(t, "II", created.User.Stage)
		assert.Equal(t, 45, created.User.Age)

		rr = doRequest(router, http.MethodGet, "/api/v1/auth/session", created.Token, "")
		assert.Equal(t, http.StatusOK, rr.Code)

		rr = doRequest(router, http.MethodDelete, "/api/v1/auth/session", created.Token, "")
		assert.Equal(t, http.StatusOK, rr.Code)

		rr = doRequest(router, http.MethodGet, "/api/v1/auth/session", created.Token, "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("No Token", func(t *testing.T) {
		rr := doRequest(router, http.MethodGet, "/api/v1/auth/session", "", "")

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestPredictionRoutes(t *testing.T) {
	router := newTestRouter(t)

	t.Run("Stateless Estimate", func(t *testing.T) {
		rr := doRequest(router, http.MethodPost, "/api/v1/predictions/estimate", "", `{"age":"70","gender":"male","cancer_type":"lung","stage":"IV"}`)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		var data struct {
			RiskPercent          int `json:"risk_percent"`
			SurvivabilityPercent int `json:"survivability_percent"`
		}
		decodeEnvelope(t, rr, &data)
		assert.Equal(t, 95, data.RiskPercent)
		assert.Equal(t, 15, data.SurvivabilityPercent)
	})

	t.Run("Session Risk For Patient", func(t *testing.T) {
		token := createSession(t, router, `{"name":"Sarah","age":"40","gender":"female","cancer_type":"breast","stage":"II"}`)

		rr := doRequest(router, http.MethodGet, "/api/v1/predictions/risk", token, "")
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		var data struct {
			RiskPercent          int    `json:"risk_percent"`
			SurvivabilityPercent int    `json:"survivability_percent"`
			RiskLabel            string `json:"risk_label"`
		}
		body := decodeEnvelope(t, rr, &data)
		assert.Equal(t, constvars.PredictionSuccessMessage, body.Message)
		assert.Equal(t, 40, data.RiskPercent)
		assert.Equal(t, 70, data.SurvivabilityPercent)
		assert.Equal(t, "Moderate Risk", data.RiskLabel)
	})

	t.Run("Session Risk Forbidden For Doctor", func(t *testing.T) {
		token := createSession(t, router, `{"name":"Chen","age":"50","role":"doctor"}`)

		rr := doRequest(router, http.MethodGet, "/api/v1/predictions/risk", token, "")
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestCaseRoutes(t *testing.T) {
	router := newTestRouter(t)
	doctorToken := createSession(t, router, `{"name":"Chen","age":"50","role":"doctor"}`)
	patientToken := createSession(t, router, `{"name":"Sarah","age":"45"}`)

	t.Run("Critical Filter", func(t *testing.T) {
		rr := doRequest(router, http.MethodGet, "/api/v1/cases?status=critical", doctorToken, "")
		require.Equal(t, http.StatusOK, rr.Code)

		var data []struct {
			ID string `json:"id"`
		}
		decodeEnvelope(t, rr, &data)
		require.Len(t, data, 1)
		assert.Equal(t, "P002", data[0].ID)
	})

	t.Run("Search All", func(t *testing.T) {
		rr := doRequest(router, http.MethodGet, "/api/v1/cases?search=p00&status=all", doctorToken, "")
		require.Equal(t, http.StatusOK, rr.Code)

		var data []struct {
			ID string `json:"id"`
		}
		decodeEnvelope(t, rr, &data)
		assert.Len(t, data, 5)
	})

	t.Run("Unknown Status", func(t *testing.T) {
		rr := doRequest(router, http.MethodGet, "/api/v1/cases?status=recovered", doctorToken, "")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Case Detail", func(t *testing.T) {
		rr := doRequest(router, http.MethodGet, "/api/v1/cases/P003", doctorToken, "")
		require.Equal(t, http.StatusOK, rr.Code)

		body := decodeEnvelope(t, rr, nil)
		assert.Equal(t, "Opening detailed view for patient Emma Davis...", body.Message)
	})

	t.Run("Unknown Case", func(t *testing.T) {
		rr := doRequest(router, http.MethodGet, "/api/v1/cases/P404", doctorToken, "")

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Export Unavailable Without Storage", func(t *testing.T) {
		rr := doRequest(router, http.MethodPost, "/api/v1/cases/exports", doctorToken, "")

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	})

	t.Run("Patient Forbidden", func(t *testing.T) {
		rr := doRequest(router, http.MethodGet, "/api/v1/cases", patientToken, "")

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestDashboardRoutes(t *testing.T) {
	router := newTestRouter(t)
	doctorToken := createSession(t, router, `{"name":"Chen","age":"50","role":"doctor"}`)
	patientToken := createSession(t, router, `{"name":"Sarah","age":"45","cancer_type":"lung","stage":"III"}`)

	t.Run("Doctor Dashboard", func(t *testing.T) {
		rr := doRequest(router, http.MethodGet, "/api/v1/dashboards/doctor", doctorToken, "")
		require.Equal(t, http.StatusOK, rr.Code)

		var data struct {
			Summary struct {
				TotalCases           int `json:"total_cases"`
				AverageSurvivability int `json:"average_survivability"`
			} `json:"summary"`
		}
		decodeEnvelope(t, rr, &data)
		assert.Equal(t, 5, data.Summary.TotalCases)
		assert.Equal(t, 74, data.Summary.AverageSurvivability)
	})

	t.Run("Patient Dashboard", func(t *testing.T) {
		rr := doRequest(router, http.MethodGet, "/api/v1/dashboards/patient", patientToken, "")
		require.Equal(t, http.StatusOK, rr.Code)

		var data struct {
			Prediction struct {
				RiskPercent int `json:"risk_percent"`
			} `json:"prediction"`
			SurvivabilityData []interface{} `json:"survivability_data"`
		}
		decodeEnvelope(t, rr, &data)
		assert.Equal(t, 65, data.Prediction.RiskPercent)
		assert.Len(t, data.SurvivabilityData, 8)
	})

	t.Run("Wrong Role", func(t *testing.T) {
		rr := doRequest(router, http.MethodGet, "/api/v1/dashboards/doctor", patientToken, "")

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestUnknownRoutes(t *testing.T) {
	router := newTestRouter(t)

	t.Run("Not Found", func(t *testing.T) {
		rr := doRequest(router, http.MethodGet, "/api/v1/nowhere", "", "")

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Header().Get(constvars.HeaderContentType), constvars.MIMEApplicationJSON)
		assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("Method Not Allowed", func(t *testing.T) {
		rr := doRequest(router, http.MethodPut, "/api/v1/auth/session", "", "")

		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	})
}
