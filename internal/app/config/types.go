package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
	}
	MongoDB struct {
		Enabled  bool
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Enabled  bool
		Host     string
		Port     string
		Password string
		DB       int
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Enabled  bool
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Enabled  bool
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}
)

type (
	InternalConfig struct {
		App        App
		JWT        JWT
		Session    Session
		Prediction Prediction
		Cases      Cases
		Export     Export
		RabbitMQ   AppRabbitMQ
	}

	App struct {
		Env                         string
		Port                        string
		Version                     string
		Address                     string
		Timezone                    string
		EndpointPrefix              string
		AllowedOrigins              []string
		MaxRequests                 int
		ShutdownTimeoutInSeconds    int
		RequestBodyLimitInMegabyte  int
		PredictionRequestsPerMinute int
		PredictionBlockTimeInSecond int
	}

	JWT struct {
		Secret string
	}

	Session struct {
		Store              string
		ExpiredTimeInHours int
	}

	// Prediction configures the session-bound risk prediction. DelayInMilliseconds
	// reproduces the artificial wait the dashboard shows before the estimate.
	Prediction struct {
		DelayInMilliseconds int
	}

	Cases struct {
		Store string
	}

	Export struct {
		BucketName                  string
		PresignedURLExpiryInMinutes int
	}

	AppRabbitMQ struct {
		PredictionQueue string
	}
)
