// Package queries contains read-only operations over the vehicle inventory.
// Implements the Query side of the CQRS architecture: handlers read the
// storage directly through raw SQL, bypass the domain model, and return flat
// response projections.
package queries

import (
	"database/sql"
	"time"

	"github.com/anton-yakubau-innowise/VehicleService/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VehicleResponse is the read model shared by all vehicle queries.
// Enumerated attributes carry their textual form, ready for transport
// serialization without another mapping step.
type VehicleResponse struct {
	ID kernel.UUID

	Vin          string
	Manufacturer string
	Model        string
	Package      string
	BodyType     string

	Year             int
	Color            string
	EngineType       string
	TransmissionType string
	Mileage          int

	BasePriceAmount   decimal.Decimal
	BasePriceCurrency string
	Status            string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// vehicleColumns is the column list every vehicle query selects, in the
// order scanVehicleResponse expects.
const vehicleColumns = `
	id,
	vin,
	manufacturer,
	model,
	package,
	body_type,
	year,
	color,
	engine_type,
	transmission_type,
	mileage,
	base_price_amount,
	base_price_currency,
	status,
	created_at,
	updated_at`

// scanVehicleResponse reads one vehicle row into the shared read model.
func scanVehicleResponse(rows *sql.Rows) (VehicleResponse, error) {
	var response VehicleResponse
	var id uuid.UUID

	err := rows.Scan(
		&id,
		&response.Vin,
		&response.Manufacturer,
		&response.Model,
		&response.Package,
		&response.BodyType,
		&response.Year,
		&response.Color,
		&response.EngineType,
		&response.TransmissionType,
		&response.Mileage,
		&response.BasePriceAmount,
		&response.BasePriceCurrency,
		&response.Status,
		&response.CreatedAt,
		&response.UpdatedAt,
	)
	if err != nil {
		return VehicleResponse{}, err
	}

	vehicleID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return VehicleResponse{}, err
	}
	response.ID = vehicleID

	return response, nil
}
