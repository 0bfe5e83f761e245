package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/anton-yakubau-innowise/VehicleService/internal/adapters/out/postgres/vehiclerepo"
	"github.com/anton-yakubau-innowise/VehicleService/internal/core/application/usecases/queries"
	"github.com/anton-yakubau-innowise/VehicleService/internal/core/domain/model/kernel"
	"github.com/anton-yakubau-innowise/VehicleService/internal/core/domain/model/vehicle"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker is a no-op tracker for tests that do not assert tracking.
type mockAggregateTracker struct{}

func (mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type GetAllVehiclesQueryHandlerTestSuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	handler     queries.GetAllVehiclesQueryHandler
	vehicleRepo *vehiclerepo.GormVehicleRepository
}

func (suite *GetAllVehiclesQueryHandlerTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&vehiclerepo.VehicleDTO{}))

	suite.handler = queries.NewGetAllVehiclesQueryHandler(db)
	suite.vehicleRepo = vehiclerepo.NewGormVehicleRepository(db, mockAggregateTracker{})
}

func (suite *GetAllVehiclesQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetAllVehiclesQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE vehicles").Error)
}

func (suite *GetAllVehiclesQueryHandlerTestSuite) TestHandle_EmptyInventory_ReturnsEmptySlice() {
	query := queries.NewGetAllVehiclesQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetAllVehiclesQueryHandlerTestSuite) TestHandle_ReturnsVehiclesSortedByVin() {
	vins := []string{"WVWZZZ1JZXW000001", "1HGBH41JXMN109186", "JTDKB20U197654321"}
	for _, vin := range vins {
		suite.addVehicle(vin)
	}

	query := queries.NewGetAllVehiclesQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal("1HGBH41JXMN109186", result[0].Vin)
	suite.Equal("JTDKB20U197654321", result[1].Vin)
	suite.Equal("WVWZZZ1JZXW000001", result[2].Vin)
}

func (suite *GetAllVehiclesQueryHandlerTestSuite) TestHandle_ProjectsAllAttributes() {
	aggregate := suite.addVehicle("1HGBH41JXMN109186")

	query := queries.NewGetAllVehiclesQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)

	response := result[0]
	suite.True(response.ID.IsEqual(aggregate.ID()))
	suite.Equal("1HGBH41JXMN109186", response.Vin)
	suite.Equal("Honda", response.Manufacturer)
	suite.Equal("Accord", response.Model)
	suite.Equal("Touring", response.Package)
	suite.Equal("Sedan", response.BodyType)
	suite.Equal(2021, response.Year)
	suite.Equal("Black", response.Color)
	suite.Equal("Gasoline", response.EngineType)
	suite.Equal("Automatic", response.TransmissionType)
	suite.Equal(12000, response.Mileage)
	suite.True(response.BasePriceAmount.Equal(decimal.NewFromInt(25000)))
	suite.Equal("USD", response.BasePriceCurrency)
	suite.Equal("Available", response.Status)
	suite.WithinDuration(aggregate.CreatedAt(), response.CreatedAt, time.Millisecond)
}

func (suite *GetAllVehiclesQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetAllVehiclesQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetAllVehiclesQuery constructor")
}

func (suite *GetAllVehiclesQueryHandlerTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	suite.addVehicle("1HGBH41JXMN109186")

	query := queries.NewGetAllVehiclesQuery()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().Error(err)
	suite.Nil(result)
}

func (suite *GetAllVehiclesQueryHandlerTestSuite) addVehicle(vin string) *vehicle.Vehicle {
	aggregate, err := vehicle.RegisterNewVehicle(kernel.NewUUID(), vin,
		"Honda", "Accord", "Touring", "Sedan", 2021, "Black",
		vehicle.EngineTypeGasoline, vehicle.TransmissionTypeAutomatic,
		12000, decimal.NewFromInt(25000), "USD")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.vehicleRepo.Add(context.Background(), aggregate))
	return aggregate
}

func TestGetAllVehiclesQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAllVehiclesQueryHandlerTestSuite))
}
