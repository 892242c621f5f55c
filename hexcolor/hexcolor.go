// Package hexcolor implements parsing, normalization, and perceptual color-space
// conversion for hexadecimal color literals.
//
// A literal is normalized to lowercase with a leading "#": six digits, or eight
// when an alpha channel is present. Three-digit shorthand is expanded on parse.
// Perceptual coordinates are CIE LAB under the D65 reference white, on the
// standard scale (lightness 0-100); the sRGB transfer curve, XYZ matrix, and
// LAB nonlinearity are delegated to go-colorful so the reference constants stay
// pinned to the published values.
package hexcolor

import (
	"errors"
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/samber/mo"
)

// ErrInvalidFormat indicates a string presented as a hex color does not parse.
var ErrInvalidFormat = errors.New("invalid hex color format")

// Hex is a normalized hexadecimal color literal.
type Hex string

// Parse validates and normalizes a raw hex literal.
// Accepted input forms are #rgb, #rrggbb, and #rrggbbaa in either case;
// shorthand digits are doubled so every normalized literal is 6 or 8 digits.
func Parse(raw string) (Hex, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if !strings.HasPrefix(s, "#") {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, raw)
	}

	digits := s[1:]
	for _, r := range digits {
		if !isHexDigit(r) {
			return "", fmt.Errorf("%w: %q", ErrInvalidFormat, raw)
		}
	}

	switch len(digits) {
	case 3:
		var b strings.Builder
		for _, r := range digits {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		digits = b.String()
	case 6, 8:
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, raw)
	}

	return Hex("#" + digits), nil
}

// FromRGB builds the canonical six-digit literal for an RGB triple.
// Display direction only: representatives are always chosen from observed
// input, never synthesized.
func FromRGB(r, g, b uint8) Hex {
	return Hex(fmt.Sprintf("#%02x%02x%02x", r, g, b))
}

// RGB returns the 8-bit channel values of the literal, alpha excluded.
func (h Hex) RGB() (r, g, b uint8, err error) {
	normalized, err := Parse(string(h))
	if err != nil {
		return 0, 0, 0, err
	}

	_, err = fmt.Sscanf(string(normalized[:7]), "#%02x%02x%02x", &r, &g, &b)
	return r, g, b, err
}

// Alpha returns the literal's alpha channel when one is present.
func (h Hex) Alpha() mo.Option[uint8] {
	if len(h) != 9 {
		return mo.None[uint8]()
	}

	var a uint8
	if _, err := fmt.Sscanf(string(h[7:]), "%02x", &a); err != nil {
		return mo.None[uint8]()
	}
	return mo.Some(a)
}

// Opaque strips the alpha channel, returning the six-digit form of the literal.
func (h Hex) Opaque() Hex {
	if len(h) == 9 {
		return h[:7]
	}
	return h
}

// Lab converts the literal to its CIE LAB coordinate.
// Alpha does not participate: distance judgments are made on the RGB channels
// only, while the alpha digits remain part of the literal's identity.
func (h Hex) Lab() (Lab, error) {
	normalized, err := Parse(string(h))
	if err != nil {
		return Lab{}, err
	}

	c, err := colorful.Hex(string(normalized.Opaque()))
	if err != nil {
		return Lab{}, fmt.Errorf("%w: %q", ErrInvalidFormat, string(h))
	}

	// go-colorful keeps lightness in [0,1] and shrinks a/b by the same factor;
	// scale up to the standard CIE range so Delta E thresholds read naturally.
	l, a, b := c.Lab()
	return Lab{L: l * 100, A: a * 100, B: b * 100}, nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f')
}
