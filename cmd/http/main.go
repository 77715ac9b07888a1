package main

import (
	"cancer-prediction-service/internal/app/config"
	"cancer-prediction-service/internal/app/contracts"
	"cancer-prediction-service/internal/app/delivery/http/controllers"
	"cancer-prediction-service/internal/app/delivery/http/middlewares"
	"cancer-prediction-service/internal/app/delivery/http/routers"
	"cancer-prediction-service/internal/app/drivers/database"
	"cancer-prediction-service/internal/app/drivers/logger"
	"cancer-prediction-service/internal/app/drivers/messaging"
	"cancer-prediction-service/internal/app/drivers/storage"
	"cancer-prediction-service/internal/app/services/core/auth"
	"cancer-prediction-service/internal/app/services/core/cases"
	"cancer-prediction-service/internal/app/services/core/dashboards"
	"cancer-prediction-service/internal/app/services/core/predictions"
	"cancer-prediction-service/internal/app/services/core/session"
	sharedMessaging "cancer-prediction-service/internal/app/services/shared/messaging"
	"cancer-prediction-service/internal/app/services/shared/redis"
	sharedStorage "cancer-prediction-service/internal/app/services/shared/storage"
	"cancer-prediction-service/internal/pkg/constvars"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	bootstrap, err := connectDrivers(driverConfig, internalConfig, log)
	if err != nil {
		logrus.Fatalf("Error connecting drivers: %v", err)
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		logrus.Fatalf("Error bootstrapping the app: %v", err)
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		logrus.Printf("Server listening on %s", internalConfig.App.Port)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Errorf("Error closing drivers: %v", err)
	}

	logrus.Println("Server exiting")
}

// connectDrivers opens only the drivers that are enabled in configuration.
func connectDrivers(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig, log *zap.Logger) (*config.Bootstrap, error) {
	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	var err error
	if driverConfig.Redis.Enabled {
		bootstrap.Redis, err = database.NewRedisClient(driverConfig, log)
		if err != nil {
			return nil, err
		}
	}

	if driverConfig.MongoDB.Enabled {
		bootstrap.MongoDB, err = database.NewMongoDB(driverConfig, log)
		if err != nil {
			return nil, err
		}
	}

	if driverConfig.RabbitMQ.Enabled {
		bootstrap.RabbitMQ, err = messaging.NewRabbitMQ(driverConfig, log)
		if err != nil {
			return nil, err
		}
	}

	if driverConfig.Minio.Enabled {
		bootstrap.Minio, err = storage.NewMinio(driverConfig, log)
		if err != nil {
			return nil, err
		}
	}

	return bootstrap, nil
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	log := bootstrap.Logger
	internalConfig := bootstrap.InternalConfig

	// Session
	var sessionRepository contracts.SessionRepository
	switch internalConfig.Session.Store {
	case constvars.SessionStoreRedis:
		if bootstrap.Redis == nil {
			return fmt.Errorf("session store %q requires REDIS_ENABLED", internalConfig.Session.Store)
		}
		sessionRepository = session.NewSessionRedisRepository(redis.NewRedisRepository(bootstrap.Redis))
	default:
		sessionRepository = session.NewSessionMemoryRepository()
	}

	// Patient cases
	var patientCaseRepository contracts.PatientCaseRepository
	switch internalConfig.Cases.Store {
	case constvars.CaseStoreMongo:
		if bootstrap.MongoDB == nil {
			return fmt.Errorf("case store %q requires MONGODB_ENABLED", internalConfig.Cases.Store)
		}
		mongoRepository := cases.NewPatientCaseMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		inserted, err := mongoRepository.Seed(ctx, cases.DefaultPatientCases())
		if err != nil {
			return err
		}
		log.Info("Patient cases collection ready", zap.Int(constvars.LoggingCaseCountKey, inserted))
		patientCaseRepository = mongoRepository
	default:
		patientCaseRepository = cases.NewPatientCaseMemoryRepository(cases.DefaultPatientCases())
	}

	// Object storage
	var caseStorage contracts.Storage
	if bootstrap.Minio != nil {
		caseStorage = sharedStorage.NewMinioStorage(bootstrap.Minio)
	}

	// Events
	eventPublisher := sharedMessaging.NewNopPublisher()
	if bootstrap.RabbitMQ != nil {
		publisher, err := sharedMessaging.NewRabbitMQPublisher(bootstrap.RabbitMQ, internalConfig.RabbitMQ.PredictionQueue)
		if err != nil {
			return err
		}
		eventPublisher = publisher
	}

	// Usecases
	authUsecase := auth.NewAuthUsecase(sessionRepository, internalConfig, log)
	predictionUsecase := predictions.NewPredictionUsecase(eventPublisher, internalConfig, log)
	patientCaseUsecase := cases.NewPatientCaseUsecase(patientCaseRepository, caseStorage, internalConfig, log)
	dashboardUsecase := dashboards.NewDashboardUsecase(patientCaseUsecase, log)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(log, authUsecase, internalConfig)

	routers.SetupRoutes(bootstrap.Router, internalConfig, middlewares, &routers.Controllers{
		AuthController:        controllers.NewAuthController(log, authUsecase),
		PredictionController:  controllers.NewPredictionController(log, predictionUsecase),
		PatientCaseController: controllers.NewPatientCaseController(log, patientCaseUsecase),
		DashboardController:   controllers.NewDashboardController(log, dashboardUsecase),
	})
	return nil
}
