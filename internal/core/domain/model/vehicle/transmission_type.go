package vehicle

import (
	"fmt"

	"github.com/anton-yakubau-innowise/VehicleService/internal/pkg/errs"
)

// TransmissionType enumerates the supported transmission configurations.
type TransmissionType int

const (
	// TransmissionTypeUnknown represents an invalid or undefined transmission type.
	TransmissionTypeUnknown TransmissionType = iota
	TransmissionTypeManual
	TransmissionTypeAutomatic
	TransmissionTypeCVT
	TransmissionTypeDualClutch
)

func getTransmissionTypeStrings() map[TransmissionType]string {
	return map[TransmissionType]string{
		TransmissionTypeUnknown:    "Unknown",
		TransmissionTypeManual:     "Manual",
		TransmissionTypeAutomatic:  "Automatic",
		TransmissionTypeCVT:        "CVT",
		TransmissionTypeDualClutch: "DualClutch",
	}
}

func getValidTransmissionTypeStrings() map[TransmissionType]string {
	//nolint:exhaustive // TransmissionTypeUnknown is intentionally excluded as it's invalid
	return map[TransmissionType]string{
		TransmissionTypeManual:     "Manual",
		TransmissionTypeAutomatic:  "Automatic",
		TransmissionTypeCVT:        "CVT",
		TransmissionTypeDualClutch: "DualClutch",
	}
}

// Validate checks if the TransmissionType is one of the supported configurations.
func (t TransmissionType) Validate() error {
	if _, ok := getValidTransmissionTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("transmissionType",
			fmt.Errorf("%d is not a valid transmission type", t))
	}
	return nil
}

// String returns the human-readable name of the transmission type.
func (t TransmissionType) String() string {
	if str, ok := getTransmissionTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// TransmissionTypeFromString parses a transmission type from its textual form.
func TransmissionTypeFromString(s string) (TransmissionType, error) {
	for transmissionType, str := range getValidTransmissionTypeStrings() {
		if str == s {
			return transmissionType, nil
		}
	}
	return TransmissionTypeUnknown, errs.NewValueIsInvalidErrorWithCause("transmissionType",
		fmt.Errorf("%q is not a valid transmission type", s))
}
