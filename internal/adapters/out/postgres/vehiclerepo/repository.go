package vehiclerepo

import (
	"context"
	"errors"

	"github.com/anton-yakubau-innowise/VehicleService/internal/core/domain/model/kernel"
	"github.com/anton-yakubau-innowise/VehicleService/internal/core/domain/model/vehicle"
	"github.com/anton-yakubau-innowise/VehicleService/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormVehicleRepository implements VehicleRepository using GORM.
// Storage-level failures translate to the domain error taxonomy: a duplicate
// VIN surfaces as a ConstraintViolationError, a missing row as an
// ObjectNotFoundError. Error translation requires the connection to be opened
// with gorm.Config.TranslateError.
type GormVehicleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormVehicleRepository creates a new GORM vehicle repository.
func NewGormVehicleRepository(db *gorm.DB, tracker aggregateTracker) *GormVehicleRepository {
	return &GormVehicleRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new vehicle to the database.
func (r *GormVehicleRepository) Add(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConstraintViolationError("vin", err)
		}
		return errs.NewPersistenceError("add vehicle", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing vehicle to the database.
// All columns except the identifier and creation time are written, so fields
// reset to their zero value persist too.
func (r *GormVehicleRepository) Update(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&VehicleDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errs.NewConstraintViolationError("vin", result.Error)
		}
		return errs.NewPersistenceError("update vehicle", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("vehicle", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes a vehicle from the database.
func (r *GormVehicleRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&VehicleDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return errs.NewPersistenceError("delete vehicle", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("vehicle", id.String())
	}

	return nil
}

// GetByID retrieves a vehicle by its unique identifier.
func (r *GormVehicleRepository) GetByID(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VehicleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vehicle", id.String())
		}
		return nil, errs.NewPersistenceError("get vehicle by id", err)
	}

	return toDomain(dto)
}

// GetByVin retrieves a vehicle by its VIN.
// The lookup is exact against the stored uppercase VIN.
func (r *GormVehicleRepository) GetByVin(ctx context.Context, vin string) (*vehicle.Vehicle, error) {
	var dto VehicleDTO
	if err := r.db.WithContext(ctx).First(&dto, "vin = ?", vin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vehicle", vin)
		}
		return nil, errs.NewPersistenceError("get vehicle by vin", err)
	}

	return toDomain(dto)
}

// GetAll retrieves every vehicle in the inventory, ordered by VIN.
func (r *GormVehicleRepository) GetAll(ctx context.Context) ([]*vehicle.Vehicle, error) {
	var dtos []VehicleDTO
	if err := r.db.WithContext(ctx).Order("vin").Find(&dtos).Error; err != nil {
		return nil, errs.NewPersistenceError("get all vehicles", err)
	}

	vehicles := make([]*vehicle.Vehicle, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, aggregate)
	}

	return vehicles, nil
}

// FindBy retrieves the vehicles matching the given domain predicate.
// Rows are rehydrated into aggregates before filtering, so the predicate can
// express any domain condition at the cost of a full scan.
func (r *GormVehicleRepository) FindBy(
	ctx context.Context,
	predicate func(*vehicle.Vehicle) bool,
) ([]*vehicle.Vehicle, error) {
	var dtos []VehicleDTO
	if err := r.db.WithContext(ctx).Order("vin").Find(&dtos).Error; err != nil {
		return nil, errs.NewPersistenceError("find vehicles", err)
	}

	vehicles := make([]*vehicle.Vehicle, 0)
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}

		if predicate(aggregate) {
			vehicles = append(vehicles, aggregate)
		}
	}

	return vehicles, nil
}
