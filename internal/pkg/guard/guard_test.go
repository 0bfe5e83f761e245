package guard_test

import (
	"testing"

	"github.com/anton-yakubau-innowise/VehicleService/internal/pkg/errs"
	"github.com/anton-yakubau-innowise/VehicleService/internal/pkg/guard"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgainstEmptyID(t *testing.T) {
	t.Run("should pass for non-nil UUID", func(t *testing.T) {
		require.NoError(t, guard.AgainstEmptyID("vehicleId", uuid.New()))
	})

	t.Run("should fail for nil UUID", func(t *testing.T) {
		err := guard.AgainstEmptyID("vehicleId", uuid.Nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "vehicleId")
	})
}

func TestAgainstNil(t *testing.T) {
	t.Run("should pass for non-nil value", func(t *testing.T) {
		require.NoError(t, guard.AgainstNil("request", struct{}{}))
	})

	t.Run("should fail for nil interface", func(t *testing.T) {
		err := guard.AgainstNil("request", nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail for typed nil pointer", func(t *testing.T) {
		var p *int
		err := guard.AgainstNil("request", p)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestAgainstBlankString(t *testing.T) {
	t.Run("should pass for non-blank string", func(t *testing.T) {
		require.NoError(t, guard.AgainstBlankString("color", "Black"))
	})

	t.Run("should fail for empty string", func(t *testing.T) {
		err := guard.AgainstBlankString("color", "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "color")
	})

	t.Run("should fail for whitespace-only string", func(t *testing.T) {
		err := guard.AgainstBlankString("color", " \t\n ")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestAgainstWrongLength(t *testing.T) {
	t.Run("should pass for exact length", func(t *testing.T) {
		require.NoError(t, guard.AgainstWrongLength("vin", "1HGCM82633A004352", 17))
	})

	t.Run("should fail for too short value", func(t *testing.T) {
		err := guard.AgainstWrongLength("vin", "1HGCM", 17)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "exactly 17 characters")
	})

	t.Run("should fail for too long value", func(t *testing.T) {
		err := guard.AgainstWrongLength("vin", "1HGCM82633A004352XX", 17)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should apply blank check before length check", func(t *testing.T) {
		err := guard.AgainstWrongLength("vin", "   ", 3)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "empty or whitespace")
	})
}

func TestAgainstOutOfRange(t *testing.T) {
	t.Run("should pass inside bounds", func(t *testing.T) {
		require.NoError(t, guard.AgainstOutOfRange("year", 2020, 1886, 2028))
	})

	t.Run("should pass on inclusive boundaries", func(t *testing.T) {
		require.NoError(t, guard.AgainstOutOfRange("year", 1886, 1886, 2028))
		require.NoError(t, guard.AgainstOutOfRange("year", 2028, 1886, 2028))
	})

	t.Run("should fail below minimum", func(t *testing.T) {
		err := guard.AgainstOutOfRange("year", 1885, 1886, 2028)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should fail above maximum", func(t *testing.T) {
		err := guard.AgainstOutOfRange("year", 2029, 1886, 2028)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestAgainstNegative(t *testing.T) {
	t.Run("should pass for zero", func(t *testing.T) {
		require.NoError(t, guard.AgainstNegative("mileage", 0))
	})

	t.Run("should pass for positive value", func(t *testing.T) {
		require.NoError(t, guard.AgainstNegative("mileage", 42000))
	})

	t.Run("should fail for negative value", func(t *testing.T) {
		err := guard.AgainstNegative("mileage", -1)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestAgainstNegativeAmount(t *testing.T) {
	t.Run("should pass for zero amount", func(t *testing.T) {
		require.NoError(t, guard.AgainstNegativeAmount("amount", decimal.Zero))
	})

	t.Run("should pass for positive amount", func(t *testing.T) {
		require.NoError(t, guard.AgainstNegativeAmount("amount", decimal.NewFromFloat(25000.00)))
	})

	t.Run("should fail for negative amount", func(t *testing.T) {
		err := guard.AgainstNegativeAmount("amount", decimal.NewFromFloat(-0.01))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestAgainstInvalidCurrencyCode(t *testing.T) {
	t.Run("should pass for uppercase ISO code", func(t *testing.T) {
		require.NoError(t, guard.AgainstInvalidCurrencyCode("currency", "USD"))
	})

	t.Run("should accept lowercase input", func(t *testing.T) {
		require.NoError(t, guard.AgainstInvalidCurrencyCode("currency", "eur"))
	})

	t.Run("should fail for blank value", func(t *testing.T) {
		err := guard.AgainstInvalidCurrencyCode("currency", "  ")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail for wrong length", func(t *testing.T) {
		err := guard.AgainstInvalidCurrencyCode("currency", "USDT")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "3 letters")
	})

	t.Run("should fail for non-letter characters", func(t *testing.T) {
		err := guard.AgainstInvalidCurrencyCode("currency", "U5D")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
