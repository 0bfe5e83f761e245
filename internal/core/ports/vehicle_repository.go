package ports

import (
	"context"

	"github.com/anton-yakubau-innowise/VehicleService/internal/core/domain/model/kernel"
	"github.com/anton-yakubau-innowise/VehicleService/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the persistence contract for vehicle aggregates.
// Provides methods for storing, retrieving, and querying vehicles by identity
// or VIN.
type VehicleRepository interface {
	// Add persists a new vehicle aggregate to storage.
	// Fails with a ConstraintViolationError when the VIN is already taken.
	Add(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Update persists changes to an existing vehicle aggregate.
	// The vehicle must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Delete removes a vehicle aggregate from storage.
	// Fails with an ObjectNotFoundError when no such vehicle exists.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetByID retrieves a vehicle aggregate by its unique identifier.
	// Fails with an ObjectNotFoundError when no such vehicle exists.
	GetByID(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)

	// GetByVin retrieves a vehicle aggregate by its VIN.
	// The lookup is exact against the stored uppercase VIN.
	// Fails with an ObjectNotFoundError when no such vehicle exists.
	GetByVin(ctx context.Context, vin string) (*vehicle.Vehicle, error)

	// GetAll retrieves every vehicle in the inventory, ordered by VIN.
	GetAll(ctx context.Context) ([]*vehicle.Vehicle, error)

	// FindBy retrieves the vehicles matching the given domain predicate.
	// The predicate runs over rehydrated aggregates, so it can express any
	// domain condition at the cost of a full scan.
	FindBy(ctx context.Context, predicate func(*vehicle.Vehicle) bool) ([]*vehicle.Vehicle, error)
}
