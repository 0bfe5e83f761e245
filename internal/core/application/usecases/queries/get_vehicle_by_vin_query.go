package queries

import (
	"errors"
	"strings"

	"github.com/anton-yakubau-innowise/VehicleService/internal/pkg/guard"
)

var ErrGetVehicleByVinQueryIsNotConstructed = errors.New(
	"GetVehicleByVinQuery must be created via NewGetVehicleByVinQuery constructor",
)

// GetVehicleByVinQuery retrieves a single vehicle by its VIN.
// The VIN is uppercased on construction to match the stored form, so lookups
// are effectively case-insensitive.
type GetVehicleByVinQuery struct {
	vin string

	guard guard.ConstructorGuard
}

// NewGetVehicleByVinQuery creates a query to retrieve a vehicle by VIN.
// Validates that the VIN is non-blank.
func NewGetVehicleByVinQuery(vin string) (GetVehicleByVinQuery, error) {
	if err := guard.AgainstBlankString("vin", vin); err != nil {
		return GetVehicleByVinQuery{}, err
	}

	return GetVehicleByVinQuery{
		vin:   strings.ToUpper(vin),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetVehicleByVinQuery) Validate() error {
	return q.guard.Validate(ErrGetVehicleByVinQueryIsNotConstructed)
}

// Vin returns the uppercased VIN to look up.
func (q GetVehicleByVinQuery) Vin() string {
	return q.vin
}
