package main

import (
	"fmt"
	"os"
	"strconv"

	"delivery/cmd"
	"delivery/internal/adapters/out/postgres/assignmentrepo"
	"delivery/internal/adapters/out/postgres/parcelrepo"
	"delivery/internal/adapters/out/postgres/sessionrepo"
	"delivery/internal/adapters/out/postgres/shipperrepo"
	"delivery/internal/generated/servers"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDB(configs)
	mustMigrate(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                      goDotEnvVariable("HTTP_PORT"),
		DBHost:                        goDotEnvVariable("DB_HOST"),
		DBPort:                        goDotEnvVariable("DB_PORT"),
		DBUser:                        goDotEnvVariable("DB_USER"),
		DBPassword:                    goDotEnvVariable("DB_PASSWORD"),
		DBName:                        goDotEnvVariable("DB_NAME"),
		DBSslMode:                     goDotEnvVariable("DB_SSLMODE"),
		RoutingBaseURL:                goDotEnvVariable("ROUTING_BASE_URL"),
		RoutingTimeoutSeconds:         goDotEnvIntVariable("ROUTING_TIMEOUT_SECONDS", 10),
		KafkaHost:                     goDotEnvVariable("KAFKA_HOST"),
		KafkaSessionCompletedTopic:    goDotEnvVariable("KAFKA_SESSION_COMPLETED_TOPIC"),
		KafkaAssignmentCompletedTopic: goDotEnvVariable("KAFKA_ASSIGNMENT_COMPLETED_TOPIC"),
		KafkaParcelPostponedTopic:     goDotEnvVariable("KAFKA_PARCEL_POSTPONED_TOPIC"),
		ShiftStartHour:                goDotEnvIntVariable("SHIFT_START_HOUR", 8),
		ShiftEndHour:                  goDotEnvIntVariable("SHIFT_END_HOUR", 18),
		AutoCloseCronSpec:             goDotEnvVariableOrDefault("AUTO_CLOSE_CRON_SPEC", "0 0 20 * * *"),
		ServiceTimeMinutes:            goDotEnvIntVariable("SERVICE_TIME_MINUTES", 5),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvVariableOrDefault(key string, fallback string) string {
	value := goDotEnvVariable(key)
	if value == "" {
		return fallback
	}
	return value
}

func goDotEnvIntVariable(key string, fallback int) int {
	value := goDotEnvVariable(key)
	if value == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return parsed
}

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	// TranslateError maps driver duplicate-key errors to
	// gorm.ErrDuplicatedKey, which the session repository relies on.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return db
}

func mustMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&parcelrepo.ParcelDTO{},
		&assignmentrepo.AssignmentDTO{},
		&assignmentrepo.AssignmentParcelDTO{},
		&sessionrepo.SessionDTO{},
		&shipperrepo.ShipperDTO{},
		&shipperrepo.ShipperZoneDTO{},
	)
	if err != nil {
		log.Fatalf("Error running migrations: %v", err)
	}
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()

	servers.RegisterHandlers(e, app.CreateHTTPServer())

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
