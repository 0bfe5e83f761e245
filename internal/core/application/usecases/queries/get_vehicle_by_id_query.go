package queries

import (
	"errors"

	"github.com/anton-yakubau-innowise/VehicleService/internal/core/domain/model/kernel"
	"github.com/anton-yakubau-innowise/VehicleService/internal/pkg/guard"
)

var ErrGetVehicleByIDQueryIsNotConstructed = errors.New(
	"GetVehicleByIDQuery must be created via NewGetVehicleByIDQuery constructor",
)

// GetVehicleByIDQuery retrieves a single vehicle by its unique identifier.
//
// Example:
//
//	query, err := NewGetVehicleByIDQuery(vehicleID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetVehicleByIDQueryHandler(db)
//	response, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	if response == nil {
//	    // no such vehicle
//	}
type GetVehicleByIDQuery struct {
	vehicleID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetVehicleByIDQuery creates a query to retrieve a vehicle by ID.
// Validates that the vehicle ID is set.
func NewGetVehicleByIDQuery(vehicleID kernel.UUID) (GetVehicleByIDQuery, error) {
	if err := vehicleID.Validate(); err != nil {
		return GetVehicleByIDQuery{}, err
	}

	return GetVehicleByIDQuery{
		vehicleID: vehicleID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetVehicleByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetVehicleByIDQueryIsNotConstructed)
}

// VehicleID returns the identifier of the vehicle to look up.
func (q GetVehicleByIDQuery) VehicleID() kernel.UUID {
	return q.vehicleID
}
