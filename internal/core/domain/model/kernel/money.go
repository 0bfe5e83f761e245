package kernel

import (
	"errors"
	"fmt"
	"strings"

	"github.com/anton-yakubau-innowise/VehicleService/internal/pkg/errs"
	"github.com/anton-yakubau-innowise/VehicleService/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly
// initialized Money. Money must be created via the NewMoney constructor.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney constructor")

// ErrCurrencyMismatch is returned by arithmetic on Money values carrying
// different currencies.
var ErrCurrencyMismatch = errors.New("cannot combine money with different currencies")

// Money is an immutable value object pairing a non-negative decimal amount
// with a 3-letter uppercase currency code. Equality is structural: two Money
// values are equal when both amount and currency match. Any "update" to a
// price produces a new Money instance; the value itself never mutates.
//
// The zero value is invalid and fails Validate; use NewMoney.
type Money struct { //nolint:recvcheck //using for validation
	amount   decimal.Decimal
	currency string
	guard    guard.ConstructorGuard
}

// NewMoney creates a Money from an amount and a currency code.
// The amount must be non-negative. The currency code must be exactly three
// letters; lowercase input is accepted and normalized to uppercase.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	money := Money{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(money.setAmount(amount), money.setCurrency(currency)); err != nil {
		return Money{}, err
	}

	return money, nil
}

// Validate checks that the Money was created via NewMoney.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the monetary amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the uppercase 3-letter currency code.
func (m Money) Currency() string {
	return m.currency
}

// IsEqual compares two Money values structurally.
func (m Money) IsEqual(other Money) (bool, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return m.amount.Equal(other.amount) && m.currency == other.currency, nil
}

// Add returns a new Money holding the sum of both amounts.
// Both operands must carry the same currency.
func (m Money) Add(other Money) (Money, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return Money{}, err
	}
	if m.currency != other.currency {
		return Money{}, ErrCurrencyMismatch
	}

	return NewMoney(m.amount.Add(other.amount), m.currency)
}

// String implements fmt.Stringer, e.g. "25000 USD".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount, m.currency)
}

// setAmount sets the amount with validation.
// Note: pointer receiver on a private setter enables self-encapsulated
// validation during construction, mirroring the constructor pattern used
// across the domain model.
func (m *Money) setAmount(amount decimal.Decimal) error {
	if err := guard.AgainstNegativeAmount("amount", amount); err != nil {
		return err
	}

	m.amount = amount
	return nil
}

// setCurrency sets the normalized currency code with validation.
func (m *Money) setCurrency(currency string) error {
	if err := guard.AgainstInvalidCurrencyCode("currency", currency); err != nil {
		return err
	}

	m.currency = strings.ToUpper(currency)
	return nil
}
