package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"fleetadmin/cmd"
	fleethttp "fleetadmin/internal/adapters/in/http"
	"fleetadmin/internal/adapters/out/postgres/activityrepo"
	"fleetadmin/internal/adapters/out/postgres/applicationrepo"
	"fleetadmin/internal/adapters/out/postgres/driverrepo"
	"fleetadmin/internal/adapters/out/postgres/notificationrepo"
	"fleetadmin/internal/adapters/out/postgres/userrepo"
	"fleetadmin/internal/adapters/out/postgres/vacancyrepo"
	"fleetadmin/internal/adapters/out/postgres/vehiclerepo"
	"fleetadmin/internal/adapters/out/postgres/warehouserepo"
	"fleetadmin/internal/jobs"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := openDatabase(configs)

	app := cmd.NewCompositionRoot(configs, db)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreatePurgeReadNotificationsCommandHandler(),
		configs.NotificationRetentionDays,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                  goDotEnvVariable("HTTP_PORT"),
		DBHost:                    goDotEnvVariable("DB_HOST"),
		DBPort:                    goDotEnvVariable("DB_PORT"),
		DBUser:                    goDotEnvVariable("DB_USER"),
		DBPassword:                goDotEnvVariable("DB_PASSWORD"),
		DBName:                    goDotEnvVariable("DB_NAME"),
		DBSslMode:                 goDotEnvVariable("DB_SSLMODE"),
		NotificationRetentionDays: goDotEnvIntVariable("NOTIFICATION_RETENTION_DAYS"),
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

func goDotEnvIntVariable(key string) int {
	value, err := strconv.Atoi(goDotEnvVariable(key))
	if err != nil {
		log.Fatalf("Invalid integer value for %s: %v", key, err)
	}
	return value
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&userrepo.UserDTO{},
		&driverrepo.DriverDTO{},
		&vehiclerepo.VehicleDTO{},
		&warehouserepo.WarehouseDTO{},
		&vacancyrepo.VacancyDTO{},
		&applicationrepo.ApplicationDTO{},
		&notificationrepo.NotificationDTO{},
		&activityrepo.EntryDTO{},
	); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return db
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := fleethttp.NewServer(
		app.CreateAssignVehicleCommandHandler(),
		app.CreateUnassignVehicleCommandHandler(),
		app.CreateChangeApplicationStatusCommandHandler(),
		app.CreateRemoveUserCommandHandler(),
		app.CreateMarkNotificationsReadCommandHandler(),
		app.CreateGetDriverRosterQueryHandler(),
		app.CreateGetApplicationsQueryHandler(),
		app.CreateGetUnreadNotificationsQueryHandler(),
		app.CreateGetRecentActivityQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
