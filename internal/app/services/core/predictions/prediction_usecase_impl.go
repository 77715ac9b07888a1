package predictions

import (
	"cancer-prediction-service/internal/app/config"
	"cancer-prediction-service/internal/app/contracts"
	"cancer-prediction-service/internal/app/models"
	"cancer-prediction-service/internal/pkg/constvars"
	"cancer-prediction-service/internal/pkg/dto/requests"
	"cancer-prediction-service/internal/pkg/dto/responses"
	"cancer-prediction-service/internal/pkg/exceptions"
	"cancer-prediction-service/internal/pkg/utils"
	"context"
	"time"

	"go.uber.org/zap"
)

// PredictionGenerated is the payload published after every session prediction.
type PredictionGenerated struct {
	SessionID            string `json:"session_id"`
	UserID               string `json:"user_id"`
	CancerType           string `json:"cancer_type,omitempty"`
	Stage                string `json:"stage,omitempty"`
	RiskPercent          int    `json:"risk_percent"`
	SurvivabilityPercent int    `json:"survivability_percent"`
	RiskLevel            string `json:"risk_level"`
}

type predictionUsecase struct {
	EventPublisher contracts.EventPublisher
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewPredictionUsecase(
	eventPublisher contracts.EventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PredictionUsecase {
	return &predictionUsecase{
		EventPublisher: eventPublisher,
		InternalConfig: internalConfig,
		Log:            logger,
	}
}

func (uc *predictionUsecase) Estimate(ctx context.Context, request *requests.EstimateRisk) (*responses.RiskEstimate, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("predictionUsecase.Estimate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	profile := models.UserProfile{
		Age:        utils.ParseAge(request.Age.String()),
		Gender:     models.Gender(request.Gender),
		Role:       models.RolePatient,
		CancerType: models.CancerType(request.CancerType),
		Stage:      models.CancerStage(request.Stage),
	}
	profile.Normalize()

	estimate := EstimateRisk(profile)
	response := estimate.ConvertIntoResponse()

	uc.Log.Info("predictionUsecase.Estimate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingRiskPercentKey, estimate.RiskPercent),
		zap.Int(constvars.LoggingSurvivabilityKey, estimate.SurvivabilityPercent),
	)
	return &response, nil
}

func (uc *predictionUsecase) GenerateForSession(ctx context.Context, session *models.Session) (*responses.RiskEstimate, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("predictionUsecase.GenerateForSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)

	err := uc.simulateAnalysis(ctx)
	if err != nil {
		uc.Log.Error("predictionUsecase.GenerateForSession analysis cancelled",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPredictionCancelled(err)
	}

	estimate := EstimateRisk(session.User)

	event := PredictionGenerated{
		SessionID:            session.SessionID,
		UserID:               session.User.ID,
		CancerType:           string(session.User.CancerType),
		Stage:                string(session.User.Stage),
		RiskPercent:          estimate.RiskPercent,
		SurvivabilityPercent: estimate.SurvivabilityPercent,
		RiskLevel:            string(estimate.Level()),
	}
	err = uc.EventPublisher.Publish(ctx, constvars.PredictionEventType, event)
	if err != nil {
		// The estimate is still returned when the event cannot be delivered.
		uc.Log.Warn("predictionUsecase.GenerateForSession error publishing event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, session.SessionID),
			zap.Error(err),
		)
	}

	response := estimate.ConvertIntoResponse()

	uc.Log.Info("predictionUsecase.GenerateForSession succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
		zap.Int(constvars.LoggingRiskPercentKey, estimate.RiskPercent),
		zap.Int(constvars.LoggingSurvivabilityKey, estimate.SurvivabilityPercent),
	)
	return &response, nil
}

func (uc *predictionUsecase) simulateAnalysis(ctx context.Context) error {
	delay := time.Duration(uc.InternalConfig.Prediction.DelayInMilliseconds) * time.Millisecond
	if delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
