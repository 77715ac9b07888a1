package cases

import (
	"cancer-prediction-service/internal/app/config"
	"cancer-prediction-service/internal/pkg/constvars"
	"cancer-prediction-service/internal/pkg/dto/requests"
	"cancer-prediction-service/internal/pkg/exceptions"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockStorage struct {
	mock.Mock
	uploaded []byte
}

func (m *mockStorage) UploadObject(ctx context.Context, bucketName, objectName, contentType string, reader io.Reader, size int64) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	m.uploaded = data
	args := m.Called(ctx, bucketName, objectName, contentType, size)
	return args.Error(0)
}

func (m *mockStorage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error) {
	args := m.Called(ctx, bucketName, objectName, expiryTime)
	return args.String(0), args.Error(1)
}

func newCaseConfig() *config.InternalConfig {
	return &config.InternalConfig{
		Export: config.Export{
			BucketName:                  "case-exports",
			PresignedURLExpiryInMinutes: 15,
		},
	}
}

func assertStatusCode(t *testing.T, err error, statusCode int) {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "error should be a CustomError")
	assert.Equal(t, statusCode, customErr.StatusCode)
}

func TestPatientCaseUsecaseFindAll(t *testing.T) {
	ctx := context.Background()
	usecase := NewPatientCaseUsecase(NewPatientCaseMemoryRepository(DefaultPatientCases()), nil, newCaseConfig(), zap.NewNop())

	t.Run("Critical", func(t *testing.T) {
		result, err := usecase.FindAll(ctx, &requests.FindCases{Status: "critical"})

		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "P002", result[0].ID)
		assert.Equal(t, "critical", result[0].Status)
	})

	t.Run("Search", func(t *testing.T) {
		result, err := usecase.FindAll(ctx, &requests.FindCases{Search: "p00", Status: "all"})

		require.NoError(t, err)
		assert.Len(t, result, 5)
	})

	t.Run("Unknown Status", func(t *testing.T) {
		_, err := usecase.FindAll(ctx, &requests.FindCases{Status: "recovered"})

		assertStatusCode(t, err, http.StatusBadRequest)
	})
}

func TestPatientCaseUsecaseFindByID(t *testing.T) {
	ctx := context.Background()
	usecase := NewPatientCaseUsecase(NewPatientCaseMemoryRepository(DefaultPatientCases()), nil, newCaseConfig(), zap.NewNop())

	t.Run("Found", func(t *testing.T) {
		result, err := usecase.FindByID(ctx, "P004")

		require.NoError(t, err)
		assert.Equal(t, "Robert Wilson", result.Name)
		assert.Equal(t, 85, result.Survivability)
	})

	t.Run("Not Found", func(t *testing.T) {
		_, err := usecase.FindByID(ctx, "P999")

		assertStatusCode(t, err, http.StatusNotFound)
	})
}

func TestPatientCaseUsecaseSummarize(t *testing.T) {
	usecase := NewPatientCaseUsecase(NewPatientCaseMemoryRepository(DefaultPatientCases()), nil, newCaseConfig(), zap.NewNop())

	summary, err := usecase.Summarize(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 5, summary.TotalCases)
	assert.Equal(t, 74, summary.AverageSurvivability)
}

func TestPatientCaseUsecaseExport(t *testing.T) {
	ctx := context.Background()

	t.Run("Uploads Filtered Report", func(t *testing.T) {
		storage := new(mockStorage)
		storage.On("UploadObject", mock.Anything, "case-exports", mock.MatchedBy(func(objectName string) bool {
			return strings.HasPrefix(objectName, "case-exports/2024-01-15/") && strings.HasSuffix(objectName, ".json")
		}), constvars.MIMEApplicationJSON, mock.Anything).Return(nil)
		storage.On("GetObjectUrlWithExpiryTime", mock.Anything, "case-exports", mock.Anything, 15*time.Minute).
			Return("http://minio.local/case-exports/report.json?sig=abc", nil)

		usecase := NewPatientCaseUsecase(NewPatientCaseMemoryRepository(DefaultPatientCases()), storage, newCaseConfig(), zap.NewNop()).(*patientCaseUsecase)
		usecase.now = func() time.Time { return time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC) }

		result, err := usecase.Export(ctx, &requests.FindCases{Status: "active"}, "doc123456")

		require.NoError(t, err)
		assert.Equal(t, 2, result.CaseCount)
		assert.Equal(t, "case-exports", result.Bucket)
		assert.Equal(t, "http://minio.local/case-exports/report.json?sig=abc", result.DownloadURL)
		assert.Equal(t, "2024-01-15T09:15:00Z", result.URLExpiresAt)

		var report CaseReport
		require.NoError(t, json.Unmarshal(storage.uploaded, &report))
		assert.Equal(t, "doc123456", report.RequestedBy)
		require.Len(t, report.Cases, 2)
		assert.Equal(t, "P001", report.Cases[0].ID)
		assert.Equal(t, "P004", report.Cases[1].ID)
		storage.AssertExpectations(t)
	})

	t.Run("Storage Not Configured", func(t *testing.T) {
		usecase := NewPatientCaseUsecase(NewPatientCaseMemoryRepository(DefaultPatientCases()), nil, newCaseConfig(), zap.NewNop())

		_, err := usecase.Export(ctx, &requests.FindCases{}, "doc123456")

		assertStatusCode(t, err, http.StatusServiceUnavailable)
	})

	t.Run("Upload Failure", func(t *testing.T) {
		storage := new(mockStorage)
		storage.On("UploadObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(exceptions.ErrMinioCreateObject(errors.New("bucket gone"), "case-exports"))

		usecase := NewPatientCaseUsecase(NewPatientCaseMemoryRepository(DefaultPatientCases()), storage, newCaseConfig(), zap.NewNop())

		_, err := usecase.Export(ctx, &requests.FindCases{}, "doc123456")

		assertStatusCode(t, err, http.StatusInternalServerError)
		storage.AssertNotCalled(t, "GetObjectUrlWithExpiryTime", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
