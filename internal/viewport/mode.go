package viewport

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidMode is returned when a display mode string is not recognised.
var ErrInvalidMode = errors.New("invalid display mode")

// Mode selects which set of page aspects drives the layout.
type Mode string

const (
	ModeImage Mode = "image"
	ModeText  Mode = "text"
)

// Modes lists every display mode in display order.
var Modes = []Mode{ModeImage, ModeText}

// Valid reports whether m is a known display mode.
func (m Mode) Valid() bool {
	return m == ModeImage || m == ModeText
}

// Other returns the opposite display mode.
func (m Mode) Other() Mode {
	m.mustBeValid()
	if m == ModeImage {
		return ModeText
	}
	return ModeImage
}

func (m Mode) String() string { return string(m) }

// mustBeValid panics on an unknown mode. Reaching it means a caller skipped
// ParseMode, which is a programming error rather than bad input.
func (m Mode) mustBeValid() {
	if !m.Valid() {
		panic(fmt.Sprintf("viewport: %v: %q", ErrInvalidMode, string(m)))
	}
}

// ParseMode converts user or config input into a Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
	return m, nil
}
