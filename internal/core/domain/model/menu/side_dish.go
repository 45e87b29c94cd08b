package menu

import (
	"errors"

	"burgercounter/internal/core/domain/model/kernel"
	"burgercounter/internal/pkg/errs"
)

// ErrSideDishIsNotConstructed is returned when a SideDish instance was not
// created through NewSideDish or RestoreSideDish.
var ErrSideDishIsNotConstructed = errors.New("SideDish must be created via NewSideDish or RestoreSideDish")

// SideDish is an accompaniment every order picks exactly one of.
// Same soft-deactivation rule as Item.
type SideDish struct {
	id     kernel.UUID
	name   string
	icon   string
	active bool

	isConstructed bool
}

// NewSideDish creates an active side dish with validation.
// Icon is an optional short emoji/glyph shown in the kitchen panel.
func NewSideDish(id kernel.UUID, name, icon string) (*SideDish, error) {
	dish := &SideDish{
		icon:          icon,
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		dish.setID(id),
		dish.setName(name),
	); err != nil {
		return nil, err
	}

	return dish, nil
}

// RestoreSideDish reconstructs a side dish from persistence.
func RestoreSideDish(id kernel.UUID, name, icon string, active bool) (*SideDish, error) {
	dish, err := NewSideDish(id, name, icon)
	if err != nil {
		return nil, err
	}

	dish.active = active
	return dish, nil
}

// Validate ensures the SideDish was created through a constructor.
func (d *SideDish) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrSideDishIsNotConstructed
	}
	return nil
}

// ID returns the side dish's unique identifier.
func (d *SideDish) ID() kernel.UUID {
	return d.id
}

// Name returns the side dish's display name.
func (d *SideDish) Name() string {
	return d.name
}

// Icon returns the display glyph, possibly empty.
func (d *SideDish) Icon() string {
	return d.icon
}

// IsActive reports whether the side dish can be ordered.
func (d *SideDish) IsActive() bool {
	return d.active
}

// Deactivate soft-deletes the side dish.
func (d *SideDish) Deactivate() {
	d.active = false
}

func (d *SideDish) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *SideDish) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}
