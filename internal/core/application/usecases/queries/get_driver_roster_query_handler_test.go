package queries_test

import (
	"context"
	"testing"
	"time"

	"fleetadmin/internal/adapters/out/postgres/driverrepo"
	"fleetadmin/internal/adapters/out/postgres/userrepo"
	"fleetadmin/internal/adapters/out/postgres/vehiclerepo"
	"fleetadmin/internal/adapters/out/postgres/warehouserepo"
	"fleetadmin/internal/core/application/usecases/queries"
	"fleetadmin/internal/core/domain/model/driver"
	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/core/domain/model/user"
	"fleetadmin/internal/core/domain/model/vehicle"
	"fleetadmin/internal/core/domain/model/warehouse"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetDriverRosterQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetDriverRosterQueryHandler
}

func (suite *GetDriverRosterQueryHandlerTestSuite) SetupSuite() {
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
		&driverrepo.DriverDTO{},
		&vehiclerepo.VehicleDTO{},
		&warehouserepo.WarehouseDTO{},
	)
	suite.Require().NoError(err)

	suite.handler = queries.NewGetDriverRosterQueryHandler(db)
}

func (suite *GetDriverRosterQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetDriverRosterQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE drivers, users, vehicles, warehouses").Error
	suite.Require().NoError(err)
}

func (suite *GetDriverRosterQueryHandlerTestSuite) mustID(value int64) kernel.ID {
	id, err := kernel.NewID(value)
	suite.Require().NoError(err)
	return id
}

func (suite *GetDriverRosterQueryHandlerTestSuite) seedUser(id int64, firstName, lastName, email string) {
	usr, err := user.NewUser(suite.mustID(id), firstName, lastName, email, "secret", "", "")
	suite.Require().NoError(err)
	suite.Require().NoError(userrepo.NewGormUserRepository(suite.db).Add(context.Background(), usr))
}

func (suite *GetDriverRosterQueryHandlerTestSuite) seedWarehouse(id int64, name string) {
	wh, err := warehouse.NewWarehouse(suite.mustID(id), name, "1 Depot Road")
	suite.Require().NoError(err)
	suite.Require().NoError(warehouserepo.NewGormWarehouseRepository(suite.db).Add(context.Background(), wh))
}

func (suite *GetDriverRosterQueryHandlerTestSuite) seedVehicle(id int64, make, model, plate string, warehouseID int64) {
	veh, err := vehicle.NewVehicle(suite.mustID(id), make, model, plate, suite.mustID(warehouseID))
	suite.Require().NoError(err)
	suite.Require().NoError(vehiclerepo.NewGormVehicleRepository(suite.db).Add(context.Background(), veh))
}

func (suite *GetDriverRosterQueryHandlerTestSuite) seedDriver(id, userID int64, license string, vehicleID *int64) {
	var assigned *kernel.ID
	if vehicleID != nil {
		value := suite.mustID(*vehicleID)
		assigned = &value
	}

	drv, err := driver.RestoreDriver(suite.mustID(id), suite.mustID(userID), license, assigned)
	suite.Require().NoError(err)
	suite.Require().NoError(driverrepo.NewGormDriverRepository(suite.db).Add(context.Background(), drv))
}

func (suite *GetDriverRosterQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetDriverRosterQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetDriverRosterQueryHandlerTestSuite) TestHandle_WithDrivers_ReturnsRosterOrderedByLastName() {
	suite.seedUser(1, "Charlie", "Adams", "charlie@example.com")
	suite.seedUser(2, "Alice", "Brown", "alice@example.com")
	suite.seedWarehouse(1, "North Depot")
	suite.seedVehicle(10, "Ford", "Transit", "AB-123-CD", 1)

	vehicleID := int64(10)
	suite.seedDriver(100, 1, "DL-11111", &vehicleID)
	suite.seedDriver(101, 2, "DL-22222", nil)

	query := queries.NewGetDriverRosterQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.Equal("Charlie Adams", result[0].FullName)
	suite.Equal(suite.mustID(100), result[0].ID)
	suite.Equal(suite.mustID(1), result[0].UserID)
	suite.Equal("DL-11111", result[0].LicenseNumber)
	suite.Require().NotNil(result[0].VehicleDetails)
	suite.Equal("Ford Transit (AB-123-CD)", *result[0].VehicleDetails)
	suite.Require().NotNil(result[0].WarehouseName)
	suite.Equal("North Depot", *result[0].WarehouseName)

	suite.Equal("Alice Brown", result[1].FullName)
	suite.Equal(suite.mustID(101), result[1].ID)
	suite.Equal("DL-22222", result[1].LicenseNumber)
	suite.Nil(result[1].VehicleDetails)
	suite.Nil(result[1].WarehouseName)
}

func (suite *GetDriverRosterQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetDriverRosterQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetDriverRosterQuery constructor")
}

func TestGetDriverRosterQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetDriverRosterQueryHandlerTestSuite))
}
