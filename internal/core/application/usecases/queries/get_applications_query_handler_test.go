package queries_test

import (
	"context"
	"testing"
	"time"

	"fleetadmin/internal/adapters/out/postgres/applicationrepo"
	"fleetadmin/internal/adapters/out/postgres/userrepo"
	"fleetadmin/internal/adapters/out/postgres/vacancyrepo"
	"fleetadmin/internal/adapters/out/postgres/warehouserepo"
	"fleetadmin/internal/core/application/usecases/queries"
	"fleetadmin/internal/core/domain/model/application"
	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/core/domain/model/user"
	"fleetadmin/internal/core/domain/model/vacancy"
	"fleetadmin/internal/core/domain/model/warehouse"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetApplicationsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetApplicationsQueryHandler
}

func (suite *GetApplicationsQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&userrepo.UserDTO{},
		&warehouserepo.WarehouseDTO{},
		&vacancyrepo.VacancyDTO{},
		&applicationrepo.ApplicationDTO{},
	)
	suite.Require().NoError(err)

	suite.handler = queries.NewGetApplicationsQueryHandler(db)
}

func (suite *GetApplicationsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetApplicationsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE applications, vacancies, warehouses, users").Error
	suite.Require().NoError(err)
}

func (suite *GetApplicationsQueryHandlerTestSuite) mustID(value int64) kernel.ID {
	id, err := kernel.NewID(value)
	suite.Require().NoError(err)
	return id
}

func (suite *GetApplicationsQueryHandlerTestSuite) seedVacancyBoard() {
	ctx := context.Background()

	wh, err := warehouse.NewWarehouse(suite.mustID(1), "North Depot", "1 Depot Road")
	suite.Require().NoError(err)
	suite.Require().NoError(warehouserepo.NewGormWarehouseRepository(suite.db).Add(ctx, wh))

	vac, err := vacancy.NewVacancy(suite.mustID(1), "Night Shift Driver", "Overnight routes", suite.mustID(1))
	suite.Require().NoError(err)
	suite.Require().NoError(vacancyrepo.NewGormVacancyRepository(suite.db).Add(ctx, vac))

	usr, err := user.NewUser(suite.mustID(1), "John", "Smith", "john@example.com", "secret", "", "")
	suite.Require().NoError(err)
	suite.Require().NoError(userrepo.NewGormUserRepository(suite.db).Add(ctx, usr))
}

func (suite *GetApplicationsQueryHandlerTestSuite) seedApplication(
	id int64,
	status application.Status,
	applicationDate time.Time,
) {
	app, err := application.RestoreApplication(
		suite.mustID(id),
		suite.mustID(1),
		suite.mustID(1),
		"DL-12345",
		nil,
		status,
		applicationDate,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(applicationrepo.NewGormApplicationRepository(suite.db).Add(context.Background(), app))
}

func (suite *GetApplicationsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetApplicationsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetApplicationsQueryHandlerTestSuite) TestHandle_WithApplications_ReturnsNewestFirst() {
	suite.seedVacancyBoard()
	suite.seedApplication(1, application.Pending, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	suite.seedApplication(2, application.Accepted, time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC))
	suite.seedApplication(3, application.Rejected, time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC))

	query := queries.NewGetApplicationsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)

	suite.Equal(suite.mustID(2), result[0].ID)
	suite.Equal(application.Accepted, result[0].Status)
	suite.Equal(suite.mustID(3), result[1].ID)
	suite.Equal(application.Rejected, result[1].Status)
	suite.Equal(suite.mustID(1), result[2].ID)
	suite.Equal(application.Pending, result[2].Status)

	suite.Equal("John Smith", result[0].ApplicantName)
	suite.Equal("Night Shift Driver", result[0].VacancyTitle)
	suite.Equal("DL-12345", result[0].LicenseNumber)
}

func (suite *GetApplicationsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetApplicationsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetApplicationsQuery constructor")
}

func TestGetApplicationsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetApplicationsQueryHandlerTestSuite))
}
