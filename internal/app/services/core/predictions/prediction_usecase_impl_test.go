package predictions

import (
	"cancer-prediction-service/internal/app/config"
	"cancer-prediction-service/internal/app/models"
	"cancer-prediction-service/internal/pkg/constvars"
	"cancer-prediction-service/internal/pkg/dto/requests"
	"cancer-prediction-service/internal/pkg/exceptions"
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockEventPublisher struct {
	mock.Mock
}

func (m *mockEventPublisher) Publish(ctx context.Context, eventType string, payload interface{}) error {
	args := m.Called(ctx, eventType, payload)
	return args.Error(0)
}

func newPredictionConfig(delayInMilliseconds int) *config.InternalConfig {
	return &config.InternalConfig{
		Prediction: config.Prediction{DelayInMilliseconds: delayInMilliseconds},
	}
}

func newPatientSession() *models.Session {
	return &models.Session{
		SessionID: "session-1",
		User: models.UserProfile{
			ID:         "abc123xyz",
			Name:       "Sarah",
			Age:        40,
			Gender:     models.GenderFemale,
			Role:       models.RolePatient,
			CancerType: models.CancerTypeBreast,
			Stage:      models.CancerStageII,
		},
	}
}

func TestPredictionUsecaseEstimate(t *testing.T) {
	usecase := NewPredictionUsecase(new(mockEventPublisher), newPredictionConfig(0), zap.NewNop())

	t.Run("From Request Body", func(t *testing.T) {
		result, err := usecase.Estimate(context.Background(), &requests.EstimateRisk{
			Age:        "70",
			Gender:     "male",
			CancerType: "lung",
			Stage:      "IV",
		})

		require.NoError(t, err)
		assert.Equal(t, 95, result.RiskPercent)
		assert.Equal(t, 15, result.SurvivabilityPercent)
		assert.Equal(t, "high", result.RiskLevel)
		assert.Equal(t, "High Risk", result.RiskLabel)
	})

	t.Run("Stage Without Cancer Type Is Ignored", func(t *testing.T) {
		result, err := usecase.Estimate(context.Background(), &requests.EstimateRisk{Age: "30", Stage: "IV"})

		require.NoError(t, err)
		assert.Equal(t, 15, result.RiskPercent)
	})

	t.Run("Invalid Age Treated As Zero", func(t *testing.T) {
		result, err := usecase.Estimate(context.Background(), &requests.EstimateRisk{Age: "seventy"})

		require.NoError(t, err)
		assert.Equal(t, 15, result.RiskPercent)
		assert.Equal(t, 95, result.SurvivabilityPercent)
	})
}

func TestPredictionUsecaseGenerateForSession(t *testing.T) {
	t.Run("Publishes Event", func(t *testing.T) {
		publisher := new(mockEventPublisher)
		publisher.On("Publish", mock.Anything, constvars.PredictionEventType, mock.MatchedBy(func(event PredictionGenerated) bool {
			return event.SessionID == "session-1" && event.RiskPercent == 40 && event.SurvivabilityPercent == 70
		})).Return(nil)
		usecase := NewPredictionUsecase(publisher, newPredictionConfig(0), zap.NewNop())

		result, err := usecase.GenerateForSession(context.Background(), newPatientSession())

		require.NoError(t, err)
		assert.Equal(t, 40, result.RiskPercent)
		assert.Equal(t, 70, result.SurvivabilityPercent)
		assert.Equal(t, "moderate", result.RiskLevel)
		publisher.AssertExpectations(t)
	})

	t.Run("Publish Failure Still Returns Estimate", func(t *testing.T) {
		publisher := new(mockEventPublisher)
		publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("broker down"))
		usecase := NewPredictionUsecase(publisher, newPredictionConfig(0), zap.NewNop())

		result, err := usecase.GenerateForSession(context.Background(), newPatientSession())

		require.NoError(t, err)
		assert.Equal(t, 40, result.RiskPercent)
	})

	t.Run("Waits For Configured Delay", func(t *testing.T) {
		publisher := new(mockEventPublisher)
		publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		usecase := NewPredictionUsecase(publisher, newPredictionConfig(30), zap.NewNop())

		start := time.Now()
		_, err := usecase.GenerateForSession(context.Background(), newPatientSession())

		require.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
	})

	t.Run("Cancelled During Delay", func(t *testing.T) {
		publisher := new(mockEventPublisher)
		usecase := NewPredictionUsecase(publisher, newPredictionConfig(5000), zap.NewNop())

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		result, err := usecase.GenerateForSession(ctx, newPatientSession())

		assert.Nil(t, result)
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, http.StatusRequestTimeout, customErr.StatusCode)
		assert.True(t, errors.Is(err, context.DeadlineExceeded))
		publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
	})
}
