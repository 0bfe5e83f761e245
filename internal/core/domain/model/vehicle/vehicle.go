package vehicle

import (
	"errors"
	"strings"
	"time"

	"github.com/anton-yakubau-innowise/VehicleService/internal/core/domain/model/kernel"
	"github.com/anton-yakubau-innowise/VehicleService/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const (
	// vinLength is the mandated length of a Vehicle Identification Number.
	vinLength = 17
	// minYear is the model year of the first production automobile.
	minYear = 1886
	// maxYearAhead allows registering next-model-year vehicles ahead of time.
	maxYearAhead = 2
)

// ErrVehicleIsNotConstructed is returned when a Vehicle instance was not
// created through RegisterNewVehicle or RestoreVehicle.
var ErrVehicleIsNotConstructed = errors.New(
	"Vehicle must be created via RegisterNewVehicle or RestoreVehicle constructor")

// Vehicle is the aggregate root of the inventory domain. It manages vehicle
// identity (VIN), descriptive attributes, pricing, and the lifecycle status.
//
// Invariants:
//   - VIN is exactly 17 characters, stored uppercase
//   - all string attributes are non-blank
//   - year lies within [1886, current UTC year + 2]; mileage is non-negative
//   - basePrice is a valid Money; replaced wholesale, never mutated in place
//   - status changes only through the guarded transitions (plus the explicit
//     administrative override)
//
// All fields are private; state changes flow through intention-revealing
// methods that validate before mutating. Every successful mutation refreshes
// the updatedAt timestamp.
type Vehicle struct {
	id kernel.UUID

	vin          string
	manufacturer string
	model        string
	pkg          string
	bodyType     string

	year             int
	color            string
	engineType       EngineType
	transmissionType TransmissionType
	mileage          int

	basePrice kernel.Money
	status    Status

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// RegisterNewVehicle creates a Vehicle from raw registration data. This is
// the only way to introduce a new vehicle into the inventory.
//
// Every attribute is guarded; violations abort construction with the joined
// validation errors and no partial instance is ever returned. The price is
// built as a Money value, which independently re-validates amount and
// currency. On success the vehicle carries the given identifier, an
// uppercased VIN, status Available, and createdAt equal to updatedAt in UTC.
func RegisterNewVehicle(
	id kernel.UUID,
	vin string,
	manufacturer string,
	model string,
	pkg string,
	bodyType string,
	year int,
	color string,
	engineType EngineType,
	transmissionType TransmissionType,
	initialMileage int,
	basePriceAmount decimal.Decimal,
	basePriceCurrency string,
) (*Vehicle, error) {
	vehicle := &Vehicle{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		vehicle.setID(id),
		vehicle.setVin(vin),
		vehicle.setManufacturer(manufacturer),
		vehicle.setModel(model),
		vehicle.setPackage(pkg),
		vehicle.setBodyType(bodyType),
		vehicle.setYear(year),
		vehicle.setColor(color),
		vehicle.setEngineType(engineType),
		vehicle.setTransmissionType(transmissionType),
		vehicle.setMileage(initialMileage),
		vehicle.setBasePriceFromParts(basePriceAmount, basePriceCurrency),
	); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	vehicle.status = StatusAvailable
	vehicle.createdAt = now
	vehicle.updatedAt = now

	return vehicle, nil
}

// RestoreVehicle reconstructs a Vehicle from persistent storage.
// Unlike RegisterNewVehicle it preserves the stored identity, status, and
// timestamps instead of stamping fresh ones. All invariants are still
// enforced, so corrupt rows surface as validation errors rather than invalid
// aggregates.
func RestoreVehicle(
	id kernel.UUID,
	vin string,
	manufacturer string,
	model string,
	pkg string,
	bodyType string,
	year int,
	color string,
	engineType EngineType,
	transmissionType TransmissionType,
	mileage int,
	basePrice kernel.Money,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*Vehicle, error) {
	vehicle := &Vehicle{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		vehicle.setID(id),
		vehicle.setVin(vin),
		vehicle.setManufacturer(manufacturer),
		vehicle.setModel(model),
		vehicle.setPackage(pkg),
		vehicle.setBodyType(bodyType),
		vehicle.setYear(year),
		vehicle.setColor(color),
		vehicle.setEngineType(engineType),
		vehicle.setTransmissionType(transmissionType),
		vehicle.setMileage(mileage),
		vehicle.setBasePrice(basePrice),
		vehicle.setStatus(status),
	); err != nil {
		return nil, err
	}

	vehicle.createdAt = createdAt.UTC()
	vehicle.updatedAt = updatedAt.UTC()

	return vehicle, nil
}

// Validate ensures the Vehicle was created through one of its constructors.
func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

// IsEqual compares two vehicles by identity.
func (v *Vehicle) IsEqual(other *Vehicle) bool {
	return other != nil && v.id.IsEqual(other.id)
}

// ID returns the vehicle's unique identifier.
func (v *Vehicle) ID() kernel.UUID {
	return v.id
}

// Vin returns the uppercased Vehicle Identification Number.
func (v *Vehicle) Vin() string {
	return v.vin
}

// Manufacturer returns the vehicle's manufacturer name.
func (v *Vehicle) Manufacturer() string {
	return v.manufacturer
}

// Model returns the vehicle's model name.
func (v *Vehicle) Model() string {
	return v.model
}

// Package returns the trim/equipment package designation.
func (v *Vehicle) Package() string {
	return v.pkg
}

// BodyType returns the body style, e.g. "Sedan".
func (v *Vehicle) BodyType() string {
	return v.bodyType
}

// Year returns the model year.
func (v *Vehicle) Year() int {
	return v.year
}

// Color returns the exterior color.
func (v *Vehicle) Color() string {
	return v.color
}

// EngineType returns the engine configuration.
func (v *Vehicle) EngineType() EngineType {
	return v.engineType
}

// TransmissionType returns the transmission configuration.
func (v *Vehicle) TransmissionType() TransmissionType {
	return v.transmissionType
}

// Mileage returns the recorded mileage.
func (v *Vehicle) Mileage() int {
	return v.mileage
}

// BasePrice returns the current base price.
func (v *Vehicle) BasePrice() kernel.Money {
	return v.basePrice
}

// Status returns the current lifecycle status.
func (v *Vehicle) Status() Status {
	return v.status
}

// CreatedAt returns the UTC registration timestamp.
func (v *Vehicle) CreatedAt() time.Time {
	return v.createdAt
}

// UpdatedAt returns the UTC timestamp of the last successful mutation.
func (v *Vehicle) UpdatedAt() time.Time {
	return v.updatedAt
}

// Reserve places a hold on the vehicle for a prospective buyer.
// Only an Available vehicle can be reserved; any other status fails with an
// InvalidStateTransitionError and leaves the aggregate untouched.
func (v *Vehicle) Reserve() error {
	newStatus, err := v.status.Reserve()
	if err != nil {
		return err
	}

	v.status = newStatus
	v.touch()
	return nil
}

// Sell closes the sale of the vehicle. Allowed from Available (direct sale)
// or Reserved (reservation converted); selling a Sold vehicle fails with an
// InvalidStateTransitionError.
func (v *Vehicle) Sell() error {
	newStatus, err := v.status.Sell()
	if err != nil {
		return err
	}

	v.status = newStatus
	v.touch()
	return nil
}

// MakeAvailable releases a reservation and returns the vehicle to the sales
// floor. A Sold vehicle cannot be made available again through this path.
func (v *Vehicle) MakeAvailable() error {
	newStatus, err := v.status.MakeAvailable()
	if err != nil {
		return err
	}

	v.status = newStatus
	v.touch()
	return nil
}

// OverrideStatus sets the status unconditionally, bypassing the state
// machine. This is an administrative correction tool, deliberately kept
// separate from the guarded transitions and not reachable from the regular
// use cases. The target status must still be a valid status value.
func (v *Vehicle) OverrideStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	v.status = newStatus
	v.touch()
	return nil
}

// UpdateColor changes the exterior color. The new color must be non-blank.
func (v *Vehicle) UpdateColor(newColor string) error {
	if err := v.setColor(newColor); err != nil {
		return err
	}

	v.touch()
	return nil
}

// UpdateMileage records a new mileage reading. The value must be non-negative.
func (v *Vehicle) UpdateMileage(newMileage int) error {
	if err := v.setMileage(newMileage); err != nil {
		return err
	}

	v.touch()
	return nil
}

// UpdateYear corrects the model year within the allowed bounds.
func (v *Vehicle) UpdateYear(newYear int) error {
	if err := v.setYear(newYear); err != nil {
		return err
	}

	v.touch()
	return nil
}

// UpdateBasePrice replaces the price wholesale with a new Money value.
// The Money constructor has already validated amount and currency; only
// proper construction is re-checked here.
func (v *Vehicle) UpdateBasePrice(newPrice kernel.Money) error {
	if err := v.setBasePrice(newPrice); err != nil {
		return err
	}

	v.touch()
	return nil
}

// Details carries an optional value for every patchable vehicle attribute.
// A nil field means "leave unchanged"; present fields go through the same
// guarded setters as the dedicated update methods.
type Details struct {
	Manufacturer     *string
	Model            *string
	Package          *string
	BodyType         *string
	Color            *string
	Year             *int
	Mileage          *int
	EngineType       *EngineType
	TransmissionType *TransmissionType
	BasePrice        *kernel.Money
}

// IsEmpty reports whether the patch carries no fields at all.
func (d Details) IsEmpty() bool {
	return d.Manufacturer == nil &&
		d.Model == nil &&
		d.Package == nil &&
		d.BodyType == nil &&
		d.Color == nil &&
		d.Year == nil &&
		d.Mileage == nil &&
		d.EngineType == nil &&
		d.TransmissionType == nil &&
		d.BasePrice == nil
}

// UpdateDetails applies a partial update. Only present fields are touched;
// validation runs against a staged copy, so a failing field leaves the
// aggregate byte-for-byte unchanged. An empty patch is a no-op and does not
// refresh updatedAt.
func (v *Vehicle) UpdateDetails(details Details) error {
	if err := v.Validate(); err != nil {
		return err
	}
	if details.IsEmpty() {
		return nil
	}

	staged := *v

	var errList []error
	if details.Manufacturer != nil {
		errList = append(errList, staged.setManufacturer(*details.Manufacturer))
	}
	if details.Model != nil {
		errList = append(errList, staged.setModel(*details.Model))
	}
	if details.Package != nil {
		errList = append(errList, staged.setPackage(*details.Package))
	}
	if details.BodyType != nil {
		errList = append(errList, staged.setBodyType(*details.BodyType))
	}
	if details.Color != nil {
		errList = append(errList, staged.setColor(*details.Color))
	}
	if details.Year != nil {
		errList = append(errList, staged.setYear(*details.Year))
	}
	if details.Mileage != nil {
		errList = append(errList, staged.setMileage(*details.Mileage))
	}
	if details.EngineType != nil {
		errList = append(errList, staged.setEngineType(*details.EngineType))
	}
	if details.TransmissionType != nil {
		errList = append(errList, staged.setTransmissionType(*details.TransmissionType))
	}
	if details.BasePrice != nil {
		errList = append(errList, staged.setBasePrice(*details.BasePrice))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	*v = staged
	v.touch()
	return nil
}

// touch refreshes the last-modified timestamp.
func (v *Vehicle) touch() {
	v.updatedAt = time.Now().UTC()
}

// maxYear is the inclusive upper bound for the model year at call time.
func maxYear() int {
	return time.Now().UTC().Year() + maxYearAhead
}

func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Vehicle) setVin(vin string) error {
	if err := guard.AgainstWrongLength("vin", vin, vinLength); err != nil {
		return err
	}
	v.vin = strings.ToUpper(vin)
	return nil
}

func (v *Vehicle) setManufacturer(manufacturer string) error {
	if err := guard.AgainstBlankString("manufacturer", manufacturer); err != nil {
		return err
	}
	v.manufacturer = manufacturer
	return nil
}

func (v *Vehicle) setModel(model string) error {
	if err := guard.AgainstBlankString("model", model); err != nil {
		return err
	}
	v.model = model
	return nil
}

func (v *Vehicle) setPackage(pkg string) error {
	if err := guard.AgainstBlankString("package", pkg); err != nil {
		return err
	}
	v.pkg = pkg
	return nil
}

func (v *Vehicle) setBodyType(bodyType string) error {
	if err := guard.AgainstBlankString("bodyType", bodyType); err != nil {
		return err
	}
	v.bodyType = bodyType
	return nil
}

func (v *Vehicle) setYear(year int) error {
	if err := guard.AgainstOutOfRange("year", year, minYear, maxYear()); err != nil {
		return err
	}
	v.year = year
	return nil
}

func (v *Vehicle) setColor(color string) error {
	if err := guard.AgainstBlankString("color", color); err != nil {
		return err
	}
	v.color = color
	return nil
}

func (v *Vehicle) setEngineType(engineType EngineType) error {
	if err := engineType.Validate(); err != nil {
		return err
	}
	v.engineType = engineType
	return nil
}

func (v *Vehicle) setTransmissionType(transmissionType TransmissionType) error {
	if err := transmissionType.Validate(); err != nil {
		return err
	}
	v.transmissionType = transmissionType
	return nil
}

func (v *Vehicle) setMileage(mileage int) error {
	if err := guard.AgainstNegative("mileage", mileage); err != nil {
		return err
	}
	v.mileage = mileage
	return nil
}

func (v *Vehicle) setBasePrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	v.basePrice = price
	return nil
}

func (v *Vehicle) setBasePriceFromParts(amount decimal.Decimal, currency string) error {
	price, err := kernel.NewMoney(amount, currency)
	if err != nil {
		return err
	}
	v.basePrice = price
	return nil
}

func (v *Vehicle) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	v.status = status
	return nil
}
