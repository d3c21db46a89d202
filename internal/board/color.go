package board

import "strings"

// Color is a palette token stored with a column.
type Color string

const (
	ColorPink    Color = "bg-pink-500"
	ColorBlue    Color = "bg-blue-500"
	ColorEmerald Color = "bg-emerald-500"
	ColorPurple  Color = "bg-purple-500"
	ColorOrange  Color = "bg-orange-500"
	ColorCyan    Color = "bg-cyan-500"
)

// DefaultColor is used for new columns when no valid color is given.
const DefaultColor = ColorPink

// Swatch describes one palette entry.
type Swatch struct {
	Name  string
	Color Color
	Hex   string
}

// Palette is the fixed set of column colors, in display order.
var Palette = []Swatch{
	{Name: "Pink", Color: ColorPink, Hex: "#ec4899"},
	{Name: "Blue", Color: ColorBlue, Hex: "#3b82f6"},
	{Name: "Emerald", Color: ColorEmerald, Hex: "#10b981"},
	{Name: "Purple", Color: ColorPurple, Hex: "#a855f7"},
	{Name: "Orange", Color: ColorOrange, Hex: "#f97316"},
	{Name: "Cyan", Color: ColorCyan, Hex: "#06b6d4"},
}

// ParseColor accepts a palette token ("bg-blue-500") or a name ("blue").
// Anything else maps to DefaultColor.
func ParseColor(s string) Color {
	s = strings.TrimSpace(s)
	for _, sw := range Palette {
		if s == string(sw.Color) || strings.EqualFold(s, sw.Name) {
			return sw.Color
		}
	}
	return DefaultColor
}

// Valid reports whether c is a palette token.
func (c Color) Valid() bool {
	for _, sw := range Palette {
		if sw.Color == c {
			return true
		}
	}
	return false
}

// Swatch returns the palette entry for c, or the default entry.
func (c Color) Swatch() Swatch {
	for _, sw := range Palette {
		if sw.Color == c {
			return sw
		}
	}
	return Palette[0]
}

// Next returns the following palette color, wrapping around.
func (c Color) Next() Color {
	for i, sw := range Palette {
		if sw.Color == c {
			return Palette[(i+1)%len(Palette)].Color
		}
	}
	return Palette[0].Color
}
