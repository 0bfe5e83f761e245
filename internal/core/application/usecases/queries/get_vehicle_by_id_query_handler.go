package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetVehicleByIDQueryHandler reads a single vehicle projection by identifier.
// Absence is not an error on the read path: a missing vehicle yields a nil
// response, and the transport layer decides how to present it.
type GetVehicleByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetVehicleByIDQueryHandler creates a handler for vehicle-by-ID lookups.
// Requires a GORM database connection for query execution.
func NewGetVehicleByIDQueryHandler(db *gorm.DB) GetVehicleByIDQueryHandler {
	return GetVehicleByIDQueryHandler{db: db}
}

// Handle executes the lookup. Returns nil without error when no vehicle
// matches the identifier.
func (h GetVehicleByIDQueryHandler) Handle(
	ctx context.Context,
	query GetVehicleByIDQuery,
) (*VehicleResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+vehicleColumns+`
		FROM vehicles
		WHERE id = ?
	`, query.VehicleID().Bytes()).Rows()
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
