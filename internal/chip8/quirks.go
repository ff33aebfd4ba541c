package chip8

import (
	"fmt"
	"strings"
)

// Quirks selects between the behaviours that historical interpreters
// disagree on. The zero value is the default behaviour.
type Quirks struct {
	// ShiftUsesVY copies VY into VX before 8XY6 and 8XYE shift it.
	ShiftUsesVY bool
	// LogicResetsVF clears VF after 8XY1, 8XY2 and 8XY3.
	LogicResetsVF bool
	// IncrementIndex advances I past the registers stored or loaded by FX55 and FX65.
	IncrementIndex bool
	// ExclusiveRegisterRange makes FX55 and FX65 transfer V0 to V(X-1) instead of V0 to VX.
	ExclusiveRegisterRange bool
	// WrapSprites wraps sprite pixels around the display edges instead of clipping them.
	WrapSprites bool
	// KeyWaitOnRelease makes FX0A complete when a key is released rather than pressed.
	KeyWaitOnRelease bool
	// StrictStack faults on call stack overflow and underflow instead of wrapping.
	StrictStack bool
}

// DefaultQuirks returns the default behaviour.
func DefaultQuirks() Quirks {
	return Quirks{}
}

// CosmacQuirks returns the behaviour of the original COSMAC VIP interpreter.
func CosmacQuirks() Quirks {
	return Quirks{
		ShiftUsesVY:      true,
		LogicResetsVF:    true,
		IncrementIndex:   true,
		KeyWaitOnRelease: true,
	}
}

// QuirksByName returns a named preset.
func QuirksByName(name string) (Quirks, error) {
	switch strings.ToLower(name) {
	case "", "default", "modern":
		return DefaultQuirks(), nil
	case "cosmac", "vip":
		return CosmacQuirks(), nil
	}
	return Quirks{}, fmt.Errorf("unsupported quirks preset '%s'. Valid options: default, cosmac", name)
}
