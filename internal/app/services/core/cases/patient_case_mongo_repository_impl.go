package cases

import (
	"cancer-prediction-service/internal/app/contracts"
	"cancer-prediction-service/internal/app/models"
	"cancer-prediction-service/internal/pkg/constvars"
	"cancer-prediction-service/internal/pkg/exceptions"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PatientCaseMongoRepository struct {
	Collection *mongo.Collection
}

func NewPatientCaseMongoRepository(db *mongo.Client, dbName string) *PatientCaseMongoRepository {
	return &PatientCaseMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPatientCases),
	}
}

var _ contracts.PatientCaseRepository = (*PatientCaseMongoRepository)(nil)

// Seed inserts the given cases when the collection is empty. It returns the
// number of inserted documents.
func (repo *PatientCaseMongoRepository) Seed(ctx context.Context, patientCases []models.PatientCase) (int, error) {
	count, err := repo.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	if count > 0 || len(patientCases) == 0 {
		return 0, nil
	}

	documents := make([]interface{}, 0, len(patientCases))
	for _, patientCase := range patientCases {
		documents = append(documents, patientCase)
	}

	result, err := repo.Collection.InsertMany(ctx, documents)
	if err != nil {
		return 0, exceptions.ErrMongoDBInsertDocument(err)
	}
	return len(result.InsertedIDs), nil
}

func (repo *PatientCaseMongoRepository) FindAll(ctx context.Context) ([]models.PatientCase, error) {
	var patientCases []models.PatientCase
	findOptions := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})
	cursor, err := repo.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &patientCases)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return patientCases, nil
}

func (repo *PatientCaseMongoRepository) FindByID(ctx context.Context, caseID string) (*models.PatientCase, error) {
	var patientCase models.PatientCase
	err := repo.Collection.FindOne(ctx, bson.M{"case_id": caseID}).Decode(&patientCase)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &patientCase, nil
}
