package cases

import (
	"cancer-prediction-service/internal/app/contracts"
	"cancer-prediction-service/internal/app/models"
	"context"
)

type patientCaseMemoryRepository struct {
	cases []models.PatientCase
}

func NewPatientCaseMemoryRepository(patientCases []models.PatientCase) contracts.PatientCaseRepository {
	return &patientCaseMemoryRepository{
		cases: patientCases,
	}
}

func (repo *patientCaseMemoryRepository) FindAll(ctx context.Context) ([]models.PatientCase, error) {
	result := make([]models.PatientCase, len(repo.cases))
	copy(result, repo.cases)
	return result, nil
}

func (repo *patientCaseMemoryRepository) FindByID(ctx context.Context, caseID string) (*models.PatientCase, error) {
	for _, patientCase := range repo.cases {
		if patientCase.ID == caseID {
			found := patientCase
			return &found, nil
		}
	}
	return nil, nil
}
