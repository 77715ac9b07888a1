package cases

import (
	"bytes"
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

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CaseReport is the document written to object storage by an export.
type CaseReport struct {
	GeneratedAt  time.Time               `json:"generated_at"`
	RequestedBy  string                  `json:"requested_by"`
	SearchText   string                  `json:"search_text"`
	StatusFilter string                  `json:"status_filter"`
	Summary      responses.CaseSummary   `json:"summary"`
	Cases        []responses.PatientCase `json:"cases"`
}

type patientCaseUsecase struct {
	PatientCaseRepository contracts.PatientCaseRepository
	Storage               contracts.Storage
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
	now                   func() time.Time
}

// NewPatientCaseUsecase builds the case usecase. storage may be nil, in which
// case exports are rejected as unavailable.
func NewPatientCaseUsecase(
	patientCaseRepository contracts.PatientCaseRepository,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PatientCaseUsecase {
	return &patientCaseUsecase{
		PatientCaseRepository: patientCaseRepository,
		Storage:               storage,
		InternalConfig:        internalConfig,
		Log:                   logger,
		now:                   time.Now,
	}
}

func (uc *patientCaseUsecase) FindAll(ctx context.Context, request *requests.FindCases) ([]responses.PatientCase, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientCaseUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSearchTextKey, request.Search),
		zap.String(constvars.LoggingStatusFilterKey, request.Status),
	)

	filtered, err := uc.filter(ctx, requestID, request)
	if err != nil {
		return nil, err
	}

	response := make([]responses.PatientCase, 0, len(filtered))
	for _, patientCase := range filtered {
		response = append(response, patientCase.ConvertIntoResponse())
	}

	uc.Log.Info("patientCaseUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCaseCountKey, len(response)),
	)
	return response, nil
}

func (uc *patientCaseUsecase) FindByID(ctx context.Context, caseID string) (*responses.PatientCase, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientCaseUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCaseIDKey, caseID),
	)

	patientCase, err := uc.PatientCaseRepository.FindByID(ctx, caseID)
	if err != nil {
		uc.Log.Error("patientCaseUsecase.FindByID error fetching case from repository",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCaseIDKey, caseID),
			zap.Error(err),
		)
		return nil, err
	}
	if patientCase == nil {
		return nil, exceptions.ErrCaseNotFound(nil, caseID)
	}

	response := patientCase.ConvertIntoResponse()

	uc.Log.Info("patientCaseUsecase.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCaseIDKey, caseID),
	)
	return &response, nil
}

func (uc *patientCaseUsecase) Summarize(ctx context.Context) (*models.CaseSummary, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	patientCases, err := uc.PatientCaseRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("patientCaseUsecase.Summarize error fetching cases from repository",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	summary := SummarizeCases(patientCases)
	return &summary, nil
}

func (uc *patientCaseUsecase) Export(ctx context.Context, request *requests.FindCases, requestedBy string) (*responses.CaseExport, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientCaseUsecase.Export called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, requestedBy),
	)

	if uc.Storage == nil {
		return nil, exceptions.ErrExporterNotConfigured(errors.New(constvars.ErrDevExporterNotConfigured))
	}

	filtered, err := uc.filter(ctx, requestID, request)
	if err != nil {
		return nil, err
	}

	now := uc.now().UTC()
	report := CaseReport{
		GeneratedAt:  now,
		RequestedBy:  requestedBy,
		SearchText:   request.Search,
		StatusFilter: request.Status,
		Summary:      SummarizeCases(filtered).ConvertIntoResponse(),
		Cases:        make([]responses.PatientCase, 0, len(filtered)),
	}
	for _, patientCase := range filtered {
		report.Cases = append(report.Cases, patientCase.ConvertIntoResponse())
	}

	payload, err := json.Marshal(report)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	bucketName := uc.InternalConfig.Export.BucketName
	objectName := fmt.Sprintf(constvars.CaseExportObjectPath, now.Format("2006-01-02"), uuid.NewString())

	err = uc.Storage.UploadObject(ctx, bucketName, objectName, constvars.MIMEApplicationJSON, bytes.NewReader(payload), int64(len(payload)))
	if err != nil {
		uc.Log.Error("patientCaseUsecase.Export error uploading report",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketNameKey, bucketName),
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		return nil, err
	}

	expiry := time.Duration(uc.InternalConfig.Export.PresignedURLExpiryInMinutes) * time.Minute
	downloadURL, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, bucketName, objectName, expiry)
	if err != nil {
		uc.Log.Error("patientCaseUsecase.Export error presigning report",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketNameKey, bucketName),
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "patient_cases_exported", requestID,
		zap.String(constvars.LoggingObjectNameKey, objectName),
		zap.Int(constvars.LoggingCaseCountKey, len(filtered)),
	)

	return &responses.CaseExport{
		ObjectName:   objectName,
		Bucket:       bucketName,
		CaseCount:    len(filtered),
		DownloadURL:  downloadURL,
		URLExpiresAt: now.Add(expiry).Format(time.RFC3339),
	}, nil
}

func (uc *patientCaseUsecase) filter(ctx context.Context, requestID string, request *requests.FindCases) ([]models.PatientCase, error) {
	if request.Status != "" && !utils.IsValidStatusFilter(request.Status) {
		return nil, exceptions.ErrInvalidStatusFilter(nil, request.Status)
	}

	patientCases, err := uc.PatientCaseRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("patientCaseUsecase error fetching cases from repository",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return FilterCases(patientCases, request.Search, models.CaseStatus(request.Status)), nil
}
