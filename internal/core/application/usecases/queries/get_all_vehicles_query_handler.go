package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllVehiclesQueryHandler reads the full inventory projection.
// An empty inventory yields an empty slice, never nil.
type GetAllVehiclesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllVehiclesQueryHandler creates a handler for full inventory listings.
// Requires a GORM database connection for query execution.
func NewGetAllVehiclesQueryHandler(db *gorm.DB) GetAllVehiclesQueryHandler {
	return GetAllVehiclesQueryHandler{db: db}
}

// Handle executes the listing query.
// Results are sorted by VIN for consistent output.
func (h GetAllVehiclesQueryHandler) Handle(
	ctx context.Context,
	query GetAllVehiclesQuery,
) ([]VehicleResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	vehicles := make([]VehicleResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT ` + vehicleColumns + `
		FROM vehicles
		ORDER BY vin
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		response, scanErr := scanVehicleResponse(rows)
		if scanErr != nil {
			return nil, scanErr
		}

		vehicles = append(vehicles, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return vehicles, nil
}
