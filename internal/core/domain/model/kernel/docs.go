// Package kernel provides core domain primitives shared across the vehicle
// inventory model.
//
// The package includes:
//   - UUID: a value object for aggregate identifiers with validation and comparison
//   - Money: an immutable monetary amount with a validated ISO-style currency code
//
// Both types are immutable, safe for concurrent use, and must be created via
// their constructor functions; zero values fail validation.
package kernel
