// Package vehiclerepo provides data transfer objects and mapping functions
// for vehicle persistence. This package implements the repository pattern for
// the vehicle domain aggregate, handling the conversion between domain
// entities and database representations.
package vehiclerepo

import (
	"time"

	"github.com/anton-yakubau-innowise/VehicleService/internal/core/domain/model/kernel"
	"github.com/anton-yakubau-innowise/VehicleService/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VehicleDTO represents the database structure for persisting vehicle
// aggregates. The VIN carries a unique index enforcing inventory-wide
// uniqueness at the storage level; status and the enumerated attributes are
// stored in their textual form to keep rows readable and resilient to enum
// reordering. Timestamps belong to the domain, so GORM's automatic time
// tracking is switched off.
type VehicleDTO struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	Vin          string `gorm:"type:varchar(17);uniqueIndex;not null"`
	Manufacturer string `gorm:"not null"`
	Model        string `gorm:"not null"`
	Package      string `gorm:"not null"`
	BodyType     string `gorm:"not null"`

	Year             int
	Color            string `gorm:"not null"`
	EngineType       string `gorm:"type:varchar(16);not null"`
	TransmissionType string `gorm:"type:varchar(16);not null"`
	Mileage          int

	BasePriceAmount   decimal.Decimal `gorm:"type:numeric(19,4)"`
	BasePriceCurrency string          `gorm:"type:varchar(3);not null"`
	Status            string          `gorm:"type:varchar(16);index;not null"`

	CreatedAt time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for vehicle entities.
// Overrides GORM's default naming convention to use "vehicles".
func (VehicleDTO) TableName() string {
	return "vehicles"
}

// fromDomain converts a vehicle domain aggregate to its database representation.
func fromDomain(aggregate *vehicle.Vehicle) VehicleDTO {
	return VehicleDTO{
		ID:                aggregate.ID().Bytes(),
		Vin:               aggregate.Vin(),
		Manufacturer:      aggregate.Manufacturer(),
		Model:             aggregate.Model(),
		Package:           aggregate.Package(),
		BodyType:          aggregate.BodyType(),
		Year:              aggregate.Year(),
		Color:             aggregate.Color(),
		EngineType:        aggregate.EngineType().String(),
		TransmissionType:  aggregate.TransmissionType().String(),
		Mileage:           aggregate.Mileage(),
		BasePriceAmount:   aggregate.BasePrice().Amount(),
		BasePriceCurrency: aggregate.BasePrice().Currency(),
		Status:            aggregate.Status().String(),
		CreatedAt:         aggregate.CreatedAt(),
		UpdatedAt:         aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a vehicle domain aggregate.
// Reconstructs the complete aggregate through RestoreVehicle, so corrupt rows
// fail validation instead of producing invalid aggregates.
func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	engineType, err := vehicle.EngineTypeFromString(dto.EngineType)
	if err != nil {
		return nil, err
	}

	transmissionType, err := vehicle.TransmissionTypeFromString(dto.TransmissionType)
	if err != nil {
		return nil, err
	}

	status, err := vehicle.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	basePrice, err := kernel.NewMoney(dto.BasePriceAmount, dto.BasePriceCurrency)
	if err != nil {
		return nil, err
	}

	return vehicle.RestoreVehicle(
		id,
		dto.Vin,
		dto.Manufacturer,
		dto.Model,
		dto.Package,
		dto.BodyType,
		dto.Year,
		dto.Color,
		engineType,
		transmissionType,
		dto.Mileage,
		basePrice,
		status,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
