package vehicle

import (
	"fmt"

	"github.com/anton-yakubau-innowise/VehicleService/internal/pkg/errs"
)

// EngineType enumerates the supported engine configurations.
type EngineType int

const (
	// EngineTypeUnknown represents an invalid or undefined engine type.
	EngineTypeUnknown EngineType = iota
	EngineTypeGasoline
	EngineTypeDiesel
	EngineTypeHybrid
	EngineTypeElectric
)

func getEngineTypeStrings() map[EngineType]string {
	return map[EngineType]string{
		EngineTypeUnknown:  "Unknown",
		EngineTypeGasoline: "Gasoline",
		EngineTypeDiesel:   "Diesel",
		EngineTypeHybrid:   "Hybrid",
		EngineTypeElectric: "Electric",
	}
}

func getValidEngineTypeStrings() map[EngineType]string {
	//nolint:exhaustive // EngineTypeUnknown is intentionally excluded as it's invalid
	return map[EngineType]string{
		EngineTypeGasoline: "Gasoline",
		EngineTypeDiesel:   "Diesel",
		EngineTypeHybrid:   "Hybrid",
		EngineTypeElectric: "Electric",
	}
}

// Validate checks if the EngineType is one of the supported configurations.
func (e EngineType) Validate() error {
	if _, ok := getValidEngineTypeStrings()[e]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("engineType",
			fmt.Errorf("%d is not a valid engine type", e))
	}
	return nil
}

// String returns the human-readable name of the engine type.
func (e EngineType) String() string {
	if str, ok := getEngineTypeStrings()[e]; ok {
		return str
	}
	return "Unknown"
}

// EngineTypeFromString parses an engine type from its textual form.
func EngineTypeFromString(s string) (EngineType, error) {
	for engineType, str := range getValidEngineTypeStrings() {
		if str == s {
			return engineType, nil
		}
	}
	return EngineTypeUnknown, errs.NewValueIsInvalidErrorWithCause("engineType",
		fmt.Errorf("%q is not a valid engine type", s))
}
