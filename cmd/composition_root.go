package cmd

import (
	"github.com/anton-yakubau-innowise/VehicleService/internal/adapters/out/postgres"
	"github.com/anton-yakubau-innowise/VehicleService/internal/core/application/usecases/commands"
	"github.com/anton-yakubau-innowise/VehicleService/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) vehicleUoWFactory() commands.VehicleUoWFactory {
	return FuncVehicleUoWFactory(func() commands.VehicleUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateVehicleCommandHandler() commands.CreateVehicleCommandHandler {
	return commands.NewCreateVehicleCommandHandler(c.vehicleUoWFactory())
}

func (c *CompositionRoot) CreateChangeVehicleStatusCommandHandler() commands.ChangeVehicleStatusCommandHandler {
	return commands.NewChangeVehicleStatusCommandHandler(c.vehicleUoWFactory())
}

func (c *CompositionRoot) CreatePatchVehicleCommandHandler() commands.PatchVehicleCommandHandler {
	return commands.NewPatchVehicleCommandHandler(c.vehicleUoWFactory())
}

func (c *CompositionRoot) CreateDeleteVehicleCommandHandler() commands.DeleteVehicleCommandHandler {
	return commands.NewDeleteVehicleCommandHandler(c.vehicleUoWFactory())
}

func (c *CompositionRoot) CreateReleaseExpiredReservationsCommandHandler() commands.ReleaseExpiredReservationsCommandHandler {
	return commands.NewReleaseExpiredReservationsCommandHandler(c.vehicleUoWFactory())
}

func (c *CompositionRoot) CreateGetVehicleByIDQueryHandler() queries.GetVehicleByIDQueryHandler {
	return queries.NewGetVehicleByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetVehicleByVinQueryHandler() queries.GetVehicleByVinQueryHandler {
	return queries.NewGetVehicleByVinQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllVehiclesQueryHandler() queries.GetAllVehiclesQueryHandler {
	return queries.NewGetAllVehiclesQueryHandler(c.gormDB)
}

type FuncVehicleUoWFactory func() commands.VehicleUoW

func (f FuncVehicleUoWFactory) Create() commands.VehicleUoW {
	return f()
}
