package meshfx

import (
	"errors"
	"fmt"
)

// Sentinel errors for the meshfx package.
var (
	// ErrEmptyRamp is returned when a ramp description has no stops.
	ErrEmptyRamp = errors.New("meshfx: empty ramp")

	// ErrInvalidColor is returned when a color is neither a known name nor hex.
	ErrInvalidColor = errors.New("meshfx: invalid color")

	// ErrInvalidStop is returned when a stop position cannot be parsed or
	// lies outside [0, 1].
	ErrInvalidStop = errors.New("meshfx: invalid stop position")

	// ErrUnknownShape is returned by ParseShape for unrecognized names.
	ErrUnknownShape = errors.New("meshfx: unknown gradient shape")

	// ErrUnknownBlendMode is returned by ParseBlendMode for unrecognized names.
	ErrUnknownBlendMode = errors.New("meshfx: unknown blend mode")
)

// RampSyntaxError reports the stop that failed to parse in a ramp description.
type RampSyntaxError struct {
	Index int    // zero-based stop index
	Token string // the offending stop text
	Err   error  // ErrInvalidColor or ErrInvalidStop
}

func (e *RampSyntaxError) Error() string {
	return fmt.Sprintf("meshfx: ramp stop %d %q: %v", e.Index, e.Token, e.Err)
}

func (e *RampSyntaxError) Unwrap() error {
	return e.Err
}
