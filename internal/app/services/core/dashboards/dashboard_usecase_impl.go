package dashboards

import (
	"cancer-prediction-service/internal/app/contracts"
	"cancer-prediction-service/internal/app/models"
	"cancer-prediction-service/internal/app/services/core/predictions"
	"cancer-prediction-service/internal/pkg/constvars"
	"cancer-prediction-service/internal/pkg/dto/responses"
	"cancer-prediction-service/internal/pkg/exceptions"
	"context"
	"errors"

	"go.uber.org/zap"
)

type dashboardUsecase struct {
	PatientCaseUsecase contracts.PatientCaseUsecase
	Log                *zap.Logger
}

func NewDashboardUsecase(
	patientCaseUsecase contracts.PatientCaseUsecase,
	logger *zap.Logger,
) contracts.DashboardUsecase {
	return &dashboardUsecase{
		PatientCaseUsecase: patientCaseUsecase,
		Log:                logger,
	}
}

func (uc *dashboardUsecase) PatientDashboard(ctx context.Context, session *models.Session) (*responses.PatientDashboard, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("dashboardUsecase.PatientDashboard called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)

	if !session.User.IsPatient() {
		uc.Log.Error("dashboardUsecase.PatientDashboard role mismatch",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserRoleKey, string(session.User.Role)),
		)
		return nil, exceptions.ErrNotMatchRoleType(errors.New(constvars.ErrDevRoleTypeDoesntMatch))
	}

	estimate := predictions.EstimateRisk(session.User)

	curve := defaultSurvivabilityCurve()
	survivabilityData := make([]responses.SurvivabilityPoint, 0, len(curve))
	for _, point := range curve {
		survivabilityData = append(survivabilityData, point.ConvertIntoResponse())
	}

	suggestions := defaultTreatmentSuggestions()
	treatments := make([]responses.TreatmentSuggestion, 0, len(suggestions))
	for _, suggestion := range suggestions {
		treatments = append(treatments, suggestion.ConvertIntoResponse())
	}

	uc.Log.Info("dashboardUsecase.PatientDashboard succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingRiskPercentKey, estimate.RiskPercent),
	)

	return &responses.PatientDashboard{
		User:              session.User.ConvertIntoResponse(),
		Prediction:        estimate.ConvertIntoResponse(),
		SurvivabilityData: survivabilityData,
		Treatments:        treatments,
	}, nil
}

func (uc *dashboardUsecase) DoctorDashboard(ctx context.Context, session *models.Session) (*responses.DoctorDashboard, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("dashboardUsecase.DoctorDashboard called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)

	if !session.User.IsDoctor() {
		uc.Log.Error("dashboardUsecase.DoctorDashboard role mismatch",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserRoleKey, string(session.User.Role)),
		)
		return nil, exceptions.ErrNotMatchRoleType(errors.New(constvars.ErrDevRoleTypeDoesntMatch))
	}

	summary, err := uc.PatientCaseUsecase.Summarize(ctx)
	if err != nil {
		uc.Log.Error("dashboardUsecase.DoctorDashboard error summarizing cases",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	distribution := defaultCancerDistribution()
	cancerDistribution := make([]responses.CancerDistribution, 0, len(distribution))
	for _, each := range distribution {
		cancerDistribution = append(cancerDistribution, each.ConvertIntoResponse())
	}

	responseRates := defaultTreatmentResponse()
	treatmentResponse := make([]responses.TreatmentResponse, 0, len(responseRates))
	for _, each := range responseRates {
		treatmentResponse = append(treatmentResponse, each.ConvertIntoResponse())
	}

	regions := defaultRegionalIncidence()
	regionalData := make([]responses.RegionalIncidence, 0, len(regions))
	for _, each := range regions {
		regionalData = append(regionalData, each.ConvertIntoResponse())
	}

	uc.Log.Info("dashboardUsecase.DoctorDashboard succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCaseCountKey, summary.TotalCases),
	)

	return &responses.DoctorDashboard{
		User:               session.User.ConvertIntoResponse(),
		Summary:            summary.ConvertIntoResponse(),
		CancerDistribution: cancerDistribution,
		TreatmentResponse:  treatmentResponse,
		RegionalData:       regionalData,
	}, nil
}

// Home resolves which view the client shows. Without a session it is the
// landing hero.
func (uc *dashboardUsecase) Home(ctx context.Context, session *models.Session) *responses.Home {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	home := &responses.Home{View: constvars.ViewHero}
	switch {
	case session == nil:
		home.Badge = constvars.HeroBadge
		home.Title1 = constvars.HeroTitle1
		home.Title2 = constvars.HeroTitle2
		home.Subtitle = constvars.HeroSubtitle
	case session.User.IsDoctor():
		home.View = constvars.ViewDoctorDashboard
	default:
		home.View = constvars.ViewPatientDashboard
	}

	if session != nil {
		user := session.User.ConvertIntoResponse()
		home.User = &user
	}

	uc.Log.Info("dashboardUsecase.Home resolved view",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingViewKey, home.View),
	)
	return home
}
