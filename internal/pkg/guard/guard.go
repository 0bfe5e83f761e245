package guard

import (
	"cmp"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/anton-yakubau-innowise/VehicleService/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var currencyCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// AgainstEmptyID fails when id is the nil UUID.
func AgainstEmptyID(paramName string, id uuid.UUID) error {
	if id == uuid.Nil {
		return errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("identifier cannot be empty"))
	}
	return nil
}

// AgainstNil fails when value is absent. Typed nil pointers and nil
// interfaces both count as absent.
func AgainstNil(paramName string, value any) error {
	if value == nil {
		return errs.NewValueIsRequiredError(paramName)
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return errs.NewValueIsRequiredError(paramName)
		}
	default:
	}
	return nil
}

// AgainstBlankString fails when value is empty or whitespace-only.
func AgainstBlankString(paramName string, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsInvalidErrorWithCause(paramName,
			fmt.Errorf("string cannot be empty or whitespace"))
	}
	return nil
}

// AgainstWrongLength first applies the blank check, then fails when the value
// is not exactly exactLength characters long.
func AgainstWrongLength(paramName string, value string, exactLength int) error {
	if err := AgainstBlankString(paramName, value); err != nil {
		return err
	}
	if utf8.RuneCountInString(value) != exactLength {
		return errs.NewValueIsInvalidErrorWithCause(paramName,
			fmt.Errorf("must be exactly %d characters long", exactLength))
	}
	return nil
}

// AgainstOutOfRange fails when value lies outside the inclusive [minValue, maxValue] bounds.
func AgainstOutOfRange[T cmp.Ordered](paramName string, value, minValue, maxValue T) error {
	if value < minValue || value > maxValue {
		return errs.NewValueIsOutOfRangeError(paramName, value, minValue, maxValue)
	}
	return nil
}

// AgainstNegative fails when value is below zero.
func AgainstNegative(paramName string, value int) error {
	if value < 0 {
		return errs.NewValueIsOutOfRangeError(paramName, value, 0, math.MaxInt)
	}
	return nil
}

// AgainstNegativeAmount fails when the decimal amount is below zero.
func AgainstNegativeAmount(paramName string, value decimal.Decimal) error {
	if value.IsNegative() {
		return errs.NewValueIsOutOfRangeError(paramName, value.String(), "0", "unbounded")
	}
	return nil
}

// AgainstInvalidCurrencyCode first applies the blank check, then fails unless
// value is exactly three ASCII letters. Lowercase input is accepted; callers
// normalize to uppercase when storing.
func AgainstInvalidCurrencyCode(paramName string, value string) error {
	if err := AgainstBlankString(paramName, value); err != nil {
		return err
	}
	if !currencyCodePattern.MatchString(strings.ToUpper(value)) {
		return errs.NewValueIsInvalidErrorWithCause(paramName,
			fmt.Errorf("currency code must be 3 letters (e.g. USD, EUR)"))
	}
	return nil
}
