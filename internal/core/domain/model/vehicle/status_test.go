package vehicle

import (
	"errors"
	"testing"

	"github.com/anton-yakubau-innowise/VehicleService/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestStatusValidate(t *testing.T) {
	t.Run("should return nil for valid statuses", func(t *testing.T) {
		validStatuses := []Status{StatusAvailable, StatusReserved, StatusSold}

		for _, status := range validStatuses {
			assert.NoError(t, status.Validate())
		}
	})

	t.Run("should return error for invalid statuses", func(t *testing.T) {
		invalidStatuses := []Status{StatusUnknown, Status(-1), Status(42)}

		for _, status := range invalidStatuses {
			err := status.Validate()
			assert.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatusString(t *testing.T) {
	t.Run("should return human readable names", func(t *testing.T) {
		assert.Equal(t, "Available", StatusAvailable.String())
		assert.Equal(t, "Reserved", StatusReserved.String())
		assert.Equal(t, "Sold", StatusSold.String())
		assert.Equal(t, "Unknown", StatusUnknown.String())
	})

	t.Run("should return Unknown for out of range values", func(t *testing.T) {
		assert.Equal(t, "Unknown", Status(99).String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse valid status names", func(t *testing.T) {
		tests := map[string]Status{
			"Available": StatusAvailable,
			"Reserved":  StatusReserved,
			"Sold":      StatusSold,
		}

		for input, want := range tests {
			got, err := StatusFromString(input)
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("should reject unknown status names", func(t *testing.T) {
		for _, input := range []string{"", "Unknown", "available", "SOLD", "Pending"} {
			got, err := StatusFromString(input)
			assert.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Equal(t, StatusUnknown, got)
		}
	})
}

func TestStatusReserve(t *testing.T) {
	t.Run("should reserve an available vehicle", func(t *testing.T) {
		newStatus, err := StatusAvailable.Reserve()

		assert.NoError(t, err)
		assert.Equal(t, StatusReserved, newStatus)
	})

	t.Run("should fail for any other status", func(t *testing.T) {
		for _, status := range []Status{StatusReserved, StatusSold, StatusUnknown} {
			newStatus, err := status.Reserve()

			assert.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
			assert.Equal(t, StatusUnknown, newStatus)
		}
	})
}

func TestStatusSell(t *testing.T) {
	t.Run("should sell an available vehicle directly", func(t *testing.T) {
		newStatus, err := StatusAvailable.Sell()

		assert.NoError(t, err)
		assert.Equal(t, StatusSold, newStatus)
	})

	t.Run("should sell a reserved vehicle", func(t *testing.T) {
		newStatus, err := StatusReserved.Sell()

		assert.NoError(t, err)
		assert.Equal(t, StatusSold, newStatus)
	})

	t.Run("should fail for a sold vehicle", func(t *testing.T) {
		newStatus, err := StatusSold.Sell()

		assert.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		assert.Equal(t, StatusUnknown, newStatus)
	})

	t.Run("should fail for an unknown status", func(t *testing.T) {
		_, err := StatusUnknown.Sell()

		assert.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	})
}

func TestStatusMakeAvailable(t *testing.T) {
	t.Run("should release a reserved vehicle", func(t *testing.T) {
		newStatus, err := StatusReserved.MakeAvailable()

		assert.NoError(t, err)
		assert.Equal(t, StatusAvailable, newStatus)
	})

	t.Run("should be idempotent for an available vehicle", func(t *testing.T) {
		newStatus, err := StatusAvailable.MakeAvailable()

		assert.NoError(t, err)
		assert.Equal(t, StatusAvailable, newStatus)
	})

	t.Run("should fail for a sold vehicle", func(t *testing.T) {
		newStatus, err := StatusSold.MakeAvailable()

		assert.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		assert.Equal(t, StatusUnknown, newStatus)
	})

	t.Run("should fail for an unknown status", func(t *testing.T) {
		_, err := StatusUnknown.MakeAvailable()

		assert.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	})
}

func TestInvalidStateTransitionErrorDetails(t *testing.T) {
	t.Run("should name the operation and the current status", func(t *testing.T) {
		_, err := StatusSold.Reserve()

		var transitionErr *errs.InvalidStateTransitionError
		assert.True(t, errors.As(err, &transitionErr))
		assert.Equal(t, "reserve", transitionErr.Operation)
		assert.Equal(t, "Sold", transitionErr.CurrentStatus)
	})
}
