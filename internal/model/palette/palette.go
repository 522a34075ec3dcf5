// Package palette assigns display colors and icons to category names.
//
// Known categories come from a fixed table. Any other name gets a color
// derived from a 32-bit polynomial hash of the lower-cased name
// (h = 31*h + c over UTF-16 code units, wrapping like int32), the same hash
// the JVM uses for strings.
package palette

import (
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is packed ARGB.
type Color uint32

func (c Color) Hex() string {
	return fmt.Sprintf("#%06X", uint32(c)&0xFFFFFF)
}

func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

const DefaultIcon = "💰"

type entry struct {
	color Color
	icon  string
}

var known = map[string]entry{
	"transport":     {0xFF90CAF9, "🚗"},
	"food":          {0xFFA5D6A7, "🍴"},
	"shopping":      {0xFFF48FB1, "🛍️"},
	"bills":         {0xFFFFCC80, "🧾"},
	"entertainment": {0xFFCE93D8, "🎬"},
	"health":        {0xFFEF9A9A, "💊"},
	"education":     {0xFF80CBC4, "📚"},
	"travel":        {0xFF81D4FA, "✈️"},
	"groceries":     {0xFFC5E1A5, "🛒"},
	"utilities":     {0xFFB0BEC5, "💡"},
	"other":         {0xFFFFF59D, DefaultIcon},
	"others":        {0xFFFFF59D, DefaultIcon},
}

// ColorFor returns the display color of a category name, case-insensitively.
func ColorFor(name string) Color {
	key := strings.ToLower(name)
	if e, ok := known[key]; ok {
		return e.color
	}
	return generate(key)
}

// IconFor returns the display icon of a category name, case-insensitively.
func IconFor(name string) string {
	if e, ok := known[strings.ToLower(name)]; ok {
		return e.icon
	}
	return DefaultIcon
}

// IsKnown reports whether name has a fixed table entry.
func IsKnown(name string) bool {
	_, ok := known[strings.ToLower(name)]
	return ok
}

func generate(key string) Color {
	signed := int64(hash(key))
	h := signed
	if h < 0 {
		h = -h
	}
	hue := float64(h % 360)

	// saturation and lightness use the signed hash
	sat := 0.4 + float64((signed>>8)&0xFF)/255*0.3
	light := 0.7 + float64((signed>>16)&0xFF)/255*0.2

	r, g, b := colorful.Hsl(hue, sat, light).RGB255()
	return Color(0xFF<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

func hash(s string) int32 {
	var h int32
	for _, c := range utf16.Encode([]rune(s)) {
		h = 31*h + int32(c)
	}
	return h
}
