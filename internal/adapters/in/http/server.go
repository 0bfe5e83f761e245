// Package http provides the inbound HTTP adapter for the vehicle inventory.
// It translates HTTP requests into commands and queries, and domain errors
// into HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/anton-yakubau-innowise/VehicleService/internal/core/application/usecases/commands"
	"github.com/anton-yakubau-innowise/VehicleService/internal/core/application/usecases/queries"
	"github.com/anton-yakubau-innowise/VehicleService/internal/core/domain/model/kernel"
	"github.com/anton-yakubau-innowise/VehicleService/internal/core/domain/model/vehicle"
	"github.com/anton-yakubau-innowise/VehicleService/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createVehicleHandler commands.CreateVehicleCommandHandler
	changeStatusHandler  commands.ChangeVehicleStatusCommandHandler
	patchVehicleHandler  commands.PatchVehicleCommandHandler
	deleteVehicleHandler commands.DeleteVehicleCommandHandler

	// Query handlers
	getVehicleByIDHandler  queries.GetVehicleByIDQueryHandler
	getVehicleByVinHandler queries.GetVehicleByVinQueryHandler
	getAllVehiclesHandler  queries.GetAllVehiclesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createVehicleHandler commands.CreateVehicleCommandHandler,
	changeStatusHandler commands.ChangeVehicleStatusCommandHandler,
	patchVehicleHandler commands.PatchVehicleCommandHandler,
	deleteVehicleHandler commands.DeleteVehicleCommandHandler,
	getVehicleByIDHandler queries.GetVehicleByIDQueryHandler,
	getVehicleByVinHandler queries.GetVehicleByVinQueryHandler,
	getAllVehiclesHandler queries.GetAllVehiclesQueryHandler,
) *Server {
	return &Server{
		createVehicleHandler:   createVehicleHandler,
		changeStatusHandler:    changeStatusHandler,
		patchVehicleHandler:    patchVehicleHandler,
		deleteVehicleHandler:   deleteVehicleHandler,
		getVehicleByIDHandler:  getVehicleByIDHandler,
		getVehicleByVinHandler: getVehicleByVinHandler,
		getAllVehiclesHandler:  getAllVehiclesHandler,
	}
}

// RegisterRoutes attaches all vehicle endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	vehicles := e.Group("/api/v1/vehicles")
	vehicles.GET("", s.GetAllVehicles)
	vehicles.POST("", s.CreateVehicle)
	vehicles.GET("/:id", s.GetVehicleByID)
	vehicles.GET("/vin/:vin", s.GetVehicleByVin)
	vehicles.PATCH("/:id", s.PatchVehicle)
	vehicles.PUT("/:id/status", s.SetVehicleStatus)
	vehicles.DELETE("/:id", s.DeleteVehicle)
}

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// VehicleJSON is the wire representation of a vehicle.
type VehicleJSON struct {
	ID                string          `json:"id"`
	Vin               string          `json:"vin"`
	Manufacturer      string          `json:"manufacturer"`
	Model             string          `json:"model"`
	Package           string          `json:"package"`
	BodyType          string          `json:"bodyType"`
	Year              int             `json:"year"`
	Color             string          `json:"color"`
	EngineType        string          `json:"engineType"`
	TransmissionType  string          `json:"transmissionType"`
	Mileage           int             `json:"mileage"`
	BasePriceAmount   decimal.Decimal `json:"basePriceAmount"`
	BasePriceCurrency string          `json:"basePriceCurrency"`
	Status            string          `json:"status"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// CreateVehicleRequest is the body of POST /api/v1/vehicles.
type CreateVehicleRequest struct {
	Vin               string          `json:"vin"`
	Manufacturer      string          `json:"manufacturer"`
	Model             string          `json:"model"`
	Package           string          `json:"package"`
	BodyType          string          `json:"bodyType"`
	Year              int             `json:"year"`
	Color             string          `json:"color"`
	EngineType        string          `json:"engineType"`
	TransmissionType  string          `json:"transmissionType"`
	Mileage           int             `json:"mileage"`
	BasePriceAmount   decimal.Decimal `json:"basePriceAmount"`
	BasePriceCurrency string          `json:"basePriceCurrency"`
}

// PatchVehicleRequest is the body of PATCH /api/v1/vehicles/:id.
// Absent fields are left unchanged.
type PatchVehicleRequest struct {
	Manufacturer      *string          `json:"manufacturer"`
	Model             *string          `json:"model"`
	Package           *string          `json:"package"`
	BodyType          *string          `json:"bodyType"`
	Color             *string          `json:"color"`
	Year              *int             `json:"year"`
	Mileage           *int             `json:"mileage"`
	EngineType        *string          `json:"engineType"`
	TransmissionType  *string          `json:"transmissionType"`
	BasePriceAmount   *decimal.Decimal `json:"basePriceAmount"`
	BasePriceCurrency *string          `json:"basePriceCurrency"`
}

// SetVehicleStatusRequest is the body of PUT /api/v1/vehicles/:id/status.
type SetVehicleStatusRequest struct {
	NewStatus string `json:"newStatus"`
}

// GetAllVehicles handles GET /api/v1/vehicles.
func (s *Server) GetAllVehicles(ctx echo.Context) error {
	query := queries.NewGetAllVehiclesQuery()

	vehicles, err := s.getAllVehiclesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]VehicleJSON, len(vehicles))
	for i, v := range vehicles {
		response[i] = toVehicleJSON(v)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetVehicleByID handles GET /api/v1/vehicles/:id.
func (s *Server) GetVehicleByID(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	query, err := queries.NewGetVehicleByIDQuery(id)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response, err := s.getVehicleByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}
	if response == nil {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "Vehicle not found",
		})
	}

	return ctx.JSON(http.StatusOK, toVehicleJSON(*response))
}

// GetVehicleByVin handles GET /api/v1/vehicles/vin/:vin.
func (s *Server) GetVehicleByVin(ctx echo.Context) error {
	query, err := queries.NewGetVehicleByVinQuery(ctx.Param("vin"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	response, err := s.getVehicleByVinHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}
	if response == nil {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "Vehicle not found",
		})
	}

	return ctx.JSON(http.StatusOK, toVehicleJSON(*response))
}

// CreateVehicle handles POST /api/v1/vehicles.
// The new vehicle's identifier is generated here and returned in the
// response body and Location header.
func (s *Server) CreateVehicle(ctx echo.Context) error {
	var request CreateVehicleRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	vehicleID := kernel.NewUUID()
	cmd, err := commands.NewCreateVehicleCommand(
		vehicleID,
		request.Vin,
		request.Manufacturer,
		request.Model,
		request.Package,
		request.BodyType,
		request.Year,
		request.Color,
		request.EngineType,
		request.TransmissionType,
		request.Mileage,
		request.BasePriceAmount,
		request.BasePriceCurrency,
	)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.createVehicleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderLocation, "/api/v1/vehicles/"+vehicleID.String())
	return ctx.JSON(http.StatusCreated, map[string]string{"id": vehicleID.String()})
}

// PatchVehicle handles PATCH /api/v1/vehicles/:id.
func (s *Server) PatchVehicle(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	var request PatchVehicleRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewPatchVehicleCommand(id, commands.PatchVehicleFields{
		Manufacturer:      request.Manufacturer,
		Model:             request.Model,
		Package:           request.Package,
		BodyType:          request.BodyType,
		Color:             request.Color,
		Year:              request.Year,
		Mileage:           request.Mileage,
		EngineType:        request.EngineType,
		TransmissionType:  request.TransmissionType,
		BasePriceAmount:   request.BasePriceAmount,
		BasePriceCurrency: request.BasePriceCurrency,
	})
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.patchVehicleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetVehicleStatus handles PUT /api/v1/vehicles/:id/status.
func (s *Server) SetVehicleStatus(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	var request SetVehicleStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	targetStatus, err := vehicle.StatusFromString(request.NewStatus)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewChangeVehicleStatusCommand(id, targetStatus)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.changeStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteVehicle handles DELETE /api/v1/vehicles/:id.
func (s *Server) DeleteVehicle(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewDeleteVehicleCommand(id)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.deleteVehicleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// errorJSON maps a domain error to an HTTP response.
// Validation failures map to 400, missing objects to 404, VIN conflicts to
// 409, everything else to a generic 500.
func errorJSON(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	message := "An internal server error has occurred."

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrConstraintViolation):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrInvalidStateTransition),
		errors.Is(err, kernel.ErrUUIDIsNotConstructed):
		status = http.StatusBadRequest
		message = err.Error()
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: message,
	})
}

// toVehicleJSON converts the query read model to its wire representation.
func toVehicleJSON(v queries.VehicleResponse) VehicleJSON {
	return VehicleJSON{
		ID:                v.ID.String(),
		Vin:               v.Vin,
		Manufacturer:      v.Manufacturer,
		Model:             v.Model,
		Package:           v.Package,
		BodyType:          v.BodyType,
		Year:              v.Year,
		Color:             v.Color,
		EngineType:        v.EngineType,
		TransmissionType:  v.TransmissionType,
		Mileage:           v.Mileage,
		BasePriceAmount:   v.BasePriceAmount,
		BasePriceCurrency: v.BasePriceCurrency,
		Status:            v.Status,
		CreatedAt:         v.CreatedAt,
		UpdatedAt:         v.UpdatedAt,
	}
}
