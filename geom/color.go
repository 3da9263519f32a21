package geom

import (
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGBA color with one signed 16-bit channel per component.
// Channels are nominally in [0, 255] but are not clamped, so arithmetic on
// colors can temporarily leave that range.
type Color struct {
	R, G, B, A int16
}

// White is opaque white.
var White = Color{R: 255, G: 255, B: 255, A: 255}

// ParseColor parses a color from its text form.
//
// The usual form is up to four whitespace-separated integer channels
// "r g b a"; missing channels are zero except alpha, which defaults to 255.
// A leading '#' selects hex notation: "#rgb", "#rrggbb" or "#rrggbbaa".
// Unparseable hex yields the zero Color.
func ParseColor(s string) Color {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "#") {
		return parseHexColor(s)
	}

	c := Color{A: 255}
	ch := []*int16{&c.R, &c.G, &c.B, &c.A}

	for i, f := range fields(s) {
		if i >= len(ch) {
			break
		}

		*ch[i] = int16(ParseInteger(f))
	}

	return c
}

func parseHexColor(s string) Color {
	alpha := int16(255)

	if len(s) == len("#rrggbbaa") {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}
		}

		alpha = int16(a)
		s = s[:7]
	}

	hc, err := colorful.Hex(s)
	if err != nil {
		return Color{}
	}

	r, g, b := hc.RGB255()

	return Color{R: int16(r), G: int16(g), B: int16(b), A: alpha}
}

// ColorFromVector3 converts normalized RGB components to an opaque Color.
func ColorFromVector3(v Vector3) Color {
	return Color{R: channel(v.X), G: channel(v.Y), B: channel(v.Z), A: 255}
}

// ColorFromVector4 converts normalized RGBA components to a Color.
func ColorFromVector4(v Vector4) Color {
	return Color{R: channel(v.X), G: channel(v.Y), B: channel(v.Z), A: channel(v.W)}
}

func channel(f float32) int16 {
	return int16(math.Round(float64(f) * 255))
}

// Gray returns an opaque Color with all three color channels set to v.
func Gray(v int16) Color {
	return Color{R: v, G: v, B: v, A: 255}
}

// String returns the text form "r g b a".
func (c Color) String() string {
	var sb strings.Builder

	for i, v := range []int16{c.R, c.G, c.B, c.A} {
		if i > 0 {
			sb.WriteByte(' ')
		}

		sb.WriteString(strconv.Itoa(int(v)))
	}

	return sb.String()
}

// Vector2 returns the normalized red and green channels.
func (c Color) Vector2() Vector2 {
	v := c.Vector3()

	return Vector2{X: v.X, Y: v.Y}
}

// Vector3 returns the normalized RGB channels.
func (c Color) Vector3() Vector3 {
	return Vector3{X: unit(c.R), Y: unit(c.G), Z: unit(c.B)}
}

// Vector4 returns the normalized RGBA channels.
func (c Color) Vector4() Vector4 {
	return Vector4{X: unit(c.R), Y: unit(c.G), Z: unit(c.B), W: unit(c.A)}
}

func unit(v int16) float32 { return float32(v) / 255 }
