// Package vehicle provides the aggregate root and supporting types for the
// vehicle inventory domain.
//
// The package includes:
//   - Vehicle: the aggregate root holding identity (VIN), descriptive
//     attributes, pricing, and lifecycle status
//   - Status: a state machine over {Available, Reserved, Sold}
//   - EngineType, TransmissionType: enumerated vehicle attributes
//   - VehiclePhoto: a child entity for vehicle imagery
//
// Key business rules:
//   - A vehicle carries a 17-character VIN, stored uppercase, unique storewide
//   - Year is bounded to [1886, current UTC year + 2]; mileage is non-negative
//   - Pricing is an immutable Money value replaced wholesale on update
//   - New vehicles start Available; Reserve requires Available; Sell requires
//     Available or Reserved; a Sold vehicle cannot return to Available through
//     the guarded transitions
//
// All consistency-relevant mutations flow through the aggregate's named
// operations, which validate before changing any state.
package vehicle
