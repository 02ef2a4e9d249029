package order

import (
	"errors"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrTrackingIsNotConstructed is returned when a Tracking was not created
// through the NewTracking factory function.
var ErrTrackingIsNotConstructed = errors.New("Tracking must be created via NewTracking constructor")

// Tracking identifies the parcel in the carrier's system. It is attached
// once the order ships.
type Tracking struct {
	provider string
	number   string

	guard guard.ConstructorGuard
}

// NewTracking creates tracking details. Both fields are required.
func NewTracking(provider string, number string) (Tracking, error) {
	if provider == "" {
		return Tracking{}, errs.NewValueIsRequiredError("provider")
	}
	if number == "" {
		return Tracking{}, errs.NewValueIsRequiredError("number")
	}

	return Tracking{
		provider: provider,
		number:   number,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the tracking was created through NewTracking.
func (t Tracking) Validate() error {
	return t.guard.Validate(ErrTrackingIsNotConstructed)
}

// Provider returns the carrier name.
func (t Tracking) Provider() string {
	return t.provider
}

// Number returns the carrier's parcel identifier.
func (t Tracking) Number() string {
	return t.number
}
