package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/anton-yakubau-innowise/VehicleService/internal/adapters/out/postgres"
	"github.com/anton-yakubau-innowise/VehicleService/internal/adapters/out/postgres/vehiclerepo"
	"github.com/anton-yakubau-innowise/VehicleService/internal/core/domain/model/kernel"
	"github.com/anton-yakubau-innowise/VehicleService/internal/core/domain/model/vehicle"
	"github.com/anton-yakubau-innowise/VehicleService/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction semantics of the GORM
// unit of work against a real PostgreSQL instance.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&vehiclerepo.VehicleDTO{}))
	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE vehicles").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_Create_ReturnsIsolatedInstances() {
	first := suite.factory.Create()
	second := suite.factory.Create()

	suite.NotNil(first)
	suite.NotNil(second)
	suite.NotSame(first, second)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle_CommitPersistsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	testVehicle := suite.newVehicle("1HGBH41JXMN109186")
	suite.Require().NoError(uow.VehicleRepository().Add(ctx, testVehicle))
	suite.Require().NoError(uow.Commit(ctx))

	restored, err := suite.factory.Create().VehicleRepository().GetByID(ctx, testVehicle.ID())
	suite.Require().NoError(err)
	suite.Equal(testVehicle.Vin(), restored.Vin())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle_RollbackDiscardsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	testVehicle := suite.newVehicle("1HGBH41JXMN109186")
	suite.Require().NoError(uow.VehicleRepository().Add(ctx, testVehicle))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().VehicleRepository().GetByID(ctx, testVehicle.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionErrors_WithoutBegin() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBegin_Twice_DoesNotNestTransactions() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRepository_WithoutTransaction_ExecutesImmediately() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testVehicle := suite.newVehicle("1HGBH41JXMN109186")
	suite.Require().NoError(uow.VehicleRepository().Add(ctx, testVehicle))

	restored, err := suite.factory.Create().VehicleRepository().GetByID(ctx, testVehicle.ID())
	suite.Require().NoError(err)
	suite.True(restored.ID().IsEqual(testVehicle.ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestReservationWorkflow_ReadAndWriteInOneTransaction() {
	ctx := context.Background()

	seed := suite.factory.Create()
	testVehicle := suite.newVehicle("1HGBH41JXMN109186")
	suite.Require().NoError(seed.VehicleRepository().Add(ctx, testVehicle))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	repo := uow.VehicleRepository()
	loaded, err := repo.GetByID(ctx, testVehicle.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.Reserve())
	suite.Require().NoError(repo.Update(ctx, loaded))
	suite.Require().NoError(uow.Commit(ctx))

	restored, err := suite.factory.Create().VehicleRepository().GetByID(ctx, testVehicle.ID())
	suite.Require().NoError(err)
	suite.Equal(vehicle.StatusReserved, restored.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) newVehicle(vin string) *vehicle.Vehicle {
	testVehicle, err := vehicle.RegisterNewVehicle(kernel.NewUUID(), vin,
		"Honda", "Accord", "Touring", "Sedan", 2021, "Black",
		vehicle.EngineTypeGasoline, vehicle.TransmissionTypeAutomatic,
		12000, decimal.NewFromInt(25000), "USD")
	suite.Require().NoError(err)
	return testVehicle
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
