package contracts

import (
	"cancer-prediction-service/internal/app/models"
	"cancer-prediction-service/internal/pkg/dto/requests"
	"cancer-prediction-service/internal/pkg/dto/responses"
	"context"
)

// PatientCaseRepository returns cases in their stored order.
type PatientCaseRepository interface {
	FindAll(ctx context.Context) ([]models.PatientCase, error)
	FindByID(ctx context.Context, caseID string) (*models.PatientCase, error)
}

type PatientCaseUsecase interface {
	FindAll(ctx context.Context, request *requests.FindCases) ([]responses.PatientCase, error)
	FindByID(ctx context.Context, caseID string) (*responses.PatientCase, error)
	Summarize(ctx context.Context) (*models.CaseSummary, error)
	Export(ctx context.Context, request *requests.FindCases, requestedBy string) (*responses.CaseExport, error)
}
