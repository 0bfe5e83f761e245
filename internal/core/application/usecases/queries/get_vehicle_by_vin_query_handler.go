package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetVehicleByVinQueryHandler reads a single vehicle projection by VIN.
// Like the by-ID lookup, a missing vehicle yields a nil response rather than
// an error.
type GetVehicleByVinQueryHandler struct {
	db *gorm.DB
}

// NewGetVehicleByVinQueryHandler creates a handler for vehicle-by-VIN lookups.
// Requires a GORM database connection for query execution.
func NewGetVehicleByVinQueryHandler(db *gorm.DB) GetVehicleByVinQueryHandler {
	return GetVehicleByVinQueryHandler{db: db}
}

// Handle executes the lookup. Returns nil without error when no vehicle
// matches the VIN.
func (h GetVehicleByVinQueryHandler) Handle(
	ctx context.Context,
	query GetVehicleByVinQuery,
) (*VehicleResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+vehicleColumns+`
		FROM vehicles
		WHERE vin = ?
	`, query.Vin()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}
		return nil, nil
	}

	response, err := scanVehicleResponse(rows)
	if err != nil {
		return nil, err
	}

	return &response, nil
}
