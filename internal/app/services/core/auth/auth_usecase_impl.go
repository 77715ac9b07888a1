package auth

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
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type authUsecase struct {
	SessionRepository contracts.SessionRepository
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
	now               func() time.Time
}

func NewAuthUsecase(
	sessionRepository contracts.SessionRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		SessionRepository: sessionRepository,
		InternalConfig:    internalConfig,
		Log:               logger,
		now:               time.Now,
	}
}

func (uc *authUsecase) CreateSession(ctx context.Context, request *requests.CreateSession) (*responses.CreateSession, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.CreateSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if request.Name == "" || request.Age.String() == "" {
		uc.Log.Error("authUsecase.CreateSession missing profile information",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrMissingProfileInformation(errors.New(constvars.ErrDevMissingProfileInformation))
	}

	userID, err := utils.GenerateUserID(constvars.UserIDLength)
	if err != nil {
		uc.Log.Error("authUsecase.CreateSession error generating user id",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrServerProcess(err)
	}

	now := uc.now()
	profile := buildUserProfile(request, userID, now)

	ttl := time.Duration(uc.InternalConfig.Session.ExpiredTimeInHours) * time.Hour
	session := &models.Session{
		SessionID: utils.GenerateSessionID(),
		User:      profile,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, session.ExpiresAt)
	if err != nil {
		uc.Log.Error("authUsecase.CreateSession error generating session token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrTokenGenerate(err)
	}

	err = uc.SessionRepository.Create(ctx, session, ttl)
	if err != nil {
		uc.Log.Error("authUsecase.CreateSession error storing session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, session.SessionID),
			zap.Error(err),
		)
		return nil, err
	}

	title := constvars.LoginSuccessTitle
	if request.Mode == constvars.AuthModeSignup {
		title = constvars.AccountCreatedTitle
	}

	uc.Log.Info("authUsecase.CreateSession succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
		zap.String(constvars.LoggingUserIDKey, profile.ID),
		zap.String(constvars.LoggingUserRoleKey, string(profile.Role)),
	)

	return &responses.CreateSession{
		Token:       token,
		ExpiresAt:   session.ExpiresAt.UTC().Format(time.RFC3339),
		Title:       title,
		Description: fmt.Sprintf(constvars.WelcomeMessageFormat, profile.DisplayName()),
		User:        profile.ConvertIntoResponse(),
	}, nil
}

func (uc *authUsecase) ResolveSession(ctx context.Context, token string) (*models.Session, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	sessionID, err := utils.ParseJWT(token, uc.InternalConfig.JWT.Secret)
	if err != nil {
		uc.Log.Error("authUsecase.ResolveSession error parsing token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrTokenInvalidOrExpired(err)
	}

	session, err := uc.SessionRepository.Get(ctx, sessionID)
	if err != nil {
		uc.Log.Error("authUsecase.ResolveSession error getting session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
		return nil, err
	}

	if session == nil {
		uc.Log.Info("authUsecase.ResolveSession session not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
		)
		return nil, exceptions.ErrSessionNotFound(errors.New(constvars.ErrDevSessionNotFound))
	}

	return session, nil
}

func (uc *authUsecase) ClearSession(ctx context.Context, sessionID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.ClearSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	err := uc.SessionRepository.Delete(ctx, sessionID)
	if err != nil {
		uc.Log.Error("authUsecase.ClearSession error deleting session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("authUsecase.ClearSession succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)
	return nil
}

func buildUserProfile(request *requests.CreateSession, userID string, now time.Time) models.UserProfile {
	profile := models.UserProfile{
		ID:          userID,
		Name:        request.Name,
		Age:         utils.ParseAge(request.Age.String()),
		Gender:      models.Gender(request.Gender),
		Role:        models.Role(request.Role),
		CancerType:  models.CancerType(request.CancerType),
		Stage:       models.CancerStage(request.Stage),
		Preferences: models.TreatmentPreference(request.Preferences),
		CreatedAt:   now,
	}

	if profile.Gender == "" {
		profile.Gender = models.GenderMale
	}
	if profile.Role == "" {
		profile.Role = models.RolePatient
	}

	profile.Normalize()
	return profile
}
