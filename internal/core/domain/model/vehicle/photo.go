package vehicle

import (
	"errors"
	"time"

	"github.com/anton-yakubau-innowise/VehicleService/internal/core/domain/model/kernel"
	"github.com/anton-yakubau-innowise/VehicleService/internal/pkg/errs"
	"github.com/anton-yakubau-innowise/VehicleService/internal/pkg/guard"
)

// ErrVehiclePhotoIsNotConstructed is returned when a VehiclePhoto was not
// created through the AddPhoto constructor.
var ErrVehiclePhotoIsNotConstructed = errors.New(
	"VehiclePhoto must be created via AddPhoto constructor")

// VehiclePhoto is a child entity of the Vehicle aggregate holding one image
// reference. Photos are identified on their own but always belong to exactly
// one vehicle; the description is optional, display order controls gallery
// position, and at most one photo per vehicle should be primary.
type VehiclePhoto struct {
	id          kernel.UUID
	vehicleID   kernel.UUID
	photoURL    string
	description string
	isPrimary   bool

	displayOrder int
	uploadedAt   time.Time

	guard guard.ConstructorGuard
}

// AddPhoto creates a photo attached to the given vehicle. The URL must be
// non-blank and the display order non-negative; the description may be empty.
func AddPhoto(vehicleID kernel.UUID, photoURL string, description string,
	isPrimary bool, displayOrder int) (*VehiclePhoto, error) {
	photo := &VehiclePhoto{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		photo.setVehicleID(vehicleID),
		photo.setPhotoURL(photoURL),
		photo.setDisplayOrder(displayOrder),
	); err != nil {
		return nil, err
	}

	photo.id = kernel.NewUUID()
	photo.description = description
	photo.isPrimary = isPrimary
	photo.uploadedAt = time.Now().UTC()

	return photo, nil
}

// Validate ensures the VehiclePhoto was created through AddPhoto.
func (p *VehiclePhoto) Validate() error {
	if p == nil {
		return ErrVehiclePhotoIsNotConstructed
	}
	return p.guard.Validate(ErrVehiclePhotoIsNotConstructed)
}

// ID returns the photo's unique identifier.
func (p *VehiclePhoto) ID() kernel.UUID {
	return p.id
}

// VehicleID returns the identifier of the owning vehicle.
func (p *VehiclePhoto) VehicleID() kernel.UUID {
	return p.vehicleID
}

// PhotoURL returns the image location.
func (p *VehiclePhoto) PhotoURL() string {
	return p.photoURL
}

// Description returns the optional photo description.
func (p *VehiclePhoto) Description() string {
	return p.description
}

// IsPrimary reports whether this is the vehicle's primary photo.
func (p *VehiclePhoto) IsPrimary() bool {
	return p.isPrimary
}

// DisplayOrder returns the gallery position.
func (p *VehiclePhoto) DisplayOrder() int {
	return p.displayOrder
}

// UploadedAt returns the UTC upload timestamp.
func (p *VehiclePhoto) UploadedAt() time.Time {
	return p.uploadedAt
}

// SetAsPrimary marks or unmarks the photo as the vehicle's primary image.
func (p *VehiclePhoto) SetAsPrimary(isPrimary bool) {
	p.isPrimary = isPrimary
}

// UpdateDisplayOrder moves the photo to a new gallery position.
func (p *VehiclePhoto) UpdateDisplayOrder(newOrder int) error {
	return p.setDisplayOrder(newOrder)
}

// UpdateDescription replaces the photo description. An empty string clears it.
func (p *VehiclePhoto) UpdateDescription(newDescription string) {
	p.description = newDescription
}

func (p *VehiclePhoto) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("vehicleID", err)
	}
	p.vehicleID = vehicleID
	return nil
}

func (p *VehiclePhoto) setPhotoURL(photoURL string) error {
	if err := guard.AgainstBlankString("photoUrl", photoURL); err != nil {
		return err
	}
	p.photoURL = photoURL
	return nil
}

func (p *VehiclePhoto) setDisplayOrder(displayOrder int) error {
	if err := guard.AgainstNegative("displayOrder", displayOrder); err != nil {
		return err
	}
	p.displayOrder = displayOrder
	return nil
}
