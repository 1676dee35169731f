package board

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// Colour is an RGB colour of a leaf block.
type Colour struct {
	R, G, B uint8
}

// Blocky's standard colours.
var (
	PacificPoint    = Colour{1, 128, 181}
	RealRed         = Colour{199, 44, 58}
	OldOlive        = Colour{138, 151, 71}
	DaffodilDelight = Colour{255, 211, 92}
)

// DefaultPalette is the palette used when none is configured.
var DefaultPalette = Palette{PacificPoint, RealRed, OldOlive, DaffodilDelight}

// ParseColour parses a "#rrggbb" (or "rrggbb") hex string.
func ParseColour(s string) (Colour, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return Colour{}, fmt.Errorf("board: invalid colour %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Colour{}, fmt.Errorf("board: invalid colour %q: %w", s, err)
	}
	return Colour{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Hex returns the colour as "#rrggbb".
func (c Colour) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String returns the hex form of the colour.
func (c Colour) String() string {
	return c.Hex()
}

// Palette is the set of colours leaves may take.
type Palette []Colour

// ParsePalette parses a list of distinct hex colours.
func ParsePalette(hexes []string) (Palette, error) {
	p := make(Palette, 0, len(hexes))
	for _, h := range hexes {
		c, err := ParseColour(h)
		if err != nil {
			return nil, err
		}
		if p.Index(c) >= 0 {
			return nil, fmt.Errorf("board: colour %s appears twice in the palette", c)
		}
		p = append(p, c)
	}
	return p, nil
}

// Random returns a colour drawn uniformly from the palette.
// The palette must not be empty.
func (p Palette) Random(rng *rand.Rand) Colour {
	return p[rng.Intn(len(p))]
}

// Contains reports whether c is in the palette.
func (p Palette) Contains(c Colour) bool {
	return p.Index(c) >= 0
}

// Index returns the position of c in the palette, or -1.
func (p Palette) Index(c Colour) int {
	for i, pc := range p {
		if pc == c {
			return i
		}
	}
	return -1
}
