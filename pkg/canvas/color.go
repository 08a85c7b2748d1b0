package canvas

import "fmt"

// Color is a validated canvas color: either a palette preset ("1".."6")
// or a hex RGB value ("#RRGGBB"). The zero value means "no color set".
// A Color constructed through [ParseColor] preserves the original string
// exactly, so serialization is byte-identical to the input.
type Color string

// Palette presets. The numeric values match the canvas file format.
const (
	ColorRed    Color = "1"
	ColorOrange Color = "2"
	ColorYellow Color = "3"
	ColorGreen  Color = "4"
	ColorCyan   Color = "5"
	ColorPurple Color = "6"
)

// ParseColor validates raw as a canvas color and returns it unchanged.
// Valid forms are a single preset digit "1".."6" or "#" followed by
// exactly 6 hex digits. Anything else fails with [ErrInvalidColorValue].
func ParseColor(raw string) (Color, error) {
	if isPresetDigit(raw) || isHexColor(raw) {
		return Color(raw), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidColorValue, raw)
}

// IsPreset reports whether the color is a palette preset ("1".."6").
func (c Color) IsPreset() bool { return isPresetDigit(string(c)) }

// IsHex reports whether the color is a hex RGB value ("#RRGGBB").
func (c Color) IsHex() bool { return isHexColor(string(c)) }

// String returns the color exactly as it was parsed.
func (c Color) String() string { return string(c) }

// validate checks an already-constructed color, treating the zero value
// as valid ("no color"). Used by node and edge validation.
func (c Color) validate() error {
	if c == "" || c.IsPreset() || c.IsHex() {
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidColorValue, string(c))
}

func isPresetDigit(s string) bool {
	return len(s) == 1 && s[0] >= '1' && s[0] <= '6'
}

func isHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return false
		}
	}
	return true
}

func isHexDigit(b byte) bool {
	switch {
	case b >= '0' && b <= '9':
		return true
	case b >= 'a' && b <= 'f':
		return true
	case b >= 'A' && b <= 'F':
		return true
	}
	return false
}
