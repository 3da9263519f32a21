package ds

import (
	"strconv"

	"github.com/ardnew/dsys/geom"
)

// String is a text Value. Its numeric and geometric conversions parse the
// text leniently.
type String struct {
	Base
	v string
}

// NewString returns a String bound to s.
func NewString(s *Settings, v string) *String {
	return &String{Base: NewBase(s), v: v}
}

// Get returns the stored text.
func (v *String) Get() string { return v.v }

// Set replaces the stored text.
func (v *String) Set(x string) { v.v = x }

// String returns the canonical text form.
func (v *String) String() string { return v.v }

// TypeName returns "string".
func (*String) TypeName() string { return TypeString }

// Tag returns TagString.
func (*String) Tag() TypeTag { return TagString }

// Int returns the leading integer of the text, saturated to int32.
func (v *String) Int() int32 { return clampInt32(float64(geom.ParseInteger(v.v))) }

// Float returns the leading number of the text.
func (v *String) Float() float32 { return float32(geom.ParseScalar(v.v)) }

// Bool reports whether the text reads as true. See [ParseBool].
func (v *String) Bool() bool { return ParseBool(v.v) }

// Color parses the text as a color. See [geom.ParseColor].
func (v *String) Color() geom.Color { return geom.ParseColor(v.v) }

// Vector2 parses up to two components from the text.
func (v *String) Vector2() geom.Vector2 { return geom.ParseVector2(v.v) }

// Vector3 parses up to three components from the text.
func (v *String) Vector3() geom.Vector3 { return geom.ParseVector3(v.v) }

// Vector4 parses up to four components from the text.
func (v *String) Vector4() geom.Vector4 { return geom.ParseVector4(v.v) }

// Clone returns a copy bound to the same Settings.
func (v *String) Clone() Value { return NewString(v.settings, v.v) }

// Int is a 32-bit integer Value.
type Int struct {
	Base
	v int32
}

// NewInt returns an Int bound to s.
func NewInt(s *Settings, v int32) *Int {
	return &Int{Base: NewBase(s), v: v}
}

// Get returns the stored integer.
func (v *Int) Get() int32 { return v.v }

// Set replaces the stored integer.
func (v *Int) Set(x int32) { v.v = x }

// String returns the canonical text form.
func (v *Int) String() string { return strconv.FormatInt(int64(v.v), 10) }

// TypeName returns "int".
func (*Int) TypeName() string { return TypeInt }

// Tag returns TagInt.
func (*Int) Tag() TypeTag { return TagInt }

// Int returns the stored integer.
func (v *Int) Int() int32 { return v.v }

// Float returns the integer as a float32.
func (v *Int) Float() float32 { return float32(v.v) }

// Bool reports whether the integer is non-zero.
func (v *Int) Bool() bool { return v.v != 0 }

// Color replicates the integer into R, G and B at full alpha.
func (v *Int) Color() geom.Color { return geom.Gray(int16(v.v)) }

// Vector2 replicates the integer into both components.
func (v *Int) Vector2() geom.Vector2 { return geom.Splat2(float32(v.v)) }

// Vector3 replicates the integer into every component.
func (v *Int) Vector3() geom.Vector3 { return geom.Splat3(float32(v.v)) }

// Vector4 replicates the integer into every component.
func (v *Int) Vector4() geom.Vector4 { return geom.Splat4(float32(v.v)) }

// Clone returns a copy bound to the same Settings.
func (v *Int) Clone() Value { return NewInt(v.settings, v.v) }

// Float is a 32-bit floating-point Value. Converting it to a color treats it
// as a normalized channel intensity.
type Float struct {
	Base
	v float32
}

// NewFloat returns a Float bound to s.
func NewFloat(s *Settings, v float32) *Float {
	return &Float{Base: NewBase(s), v: v}
}

// Get returns the stored float.
func (v *Float) Get() float32 { return v.v }

// Set replaces the stored float.
func (v *Float) Set(x float32) { v.v = x }

// String returns the canonical text form.
func (v *Float) String() string { return formatFloat(v.v) }

// TypeName returns "float".
func (*Float) TypeName() string { return TypeFloat }

// Tag returns TagFloat.
func (*Float) Tag() TypeTag { return TagFloat }

// Int truncates the float toward zero, saturated to int32.
func (v *Float) Int() int32 { return clampInt32(float64(v.v)) }

// Float returns the stored float.
func (v *Float) Float() float32 { return v.v }

// Bool reports whether the float is non-zero.
func (v *Float) Bool() bool { return v.v != 0 }

// Color treats the float as a normalized intensity and replicates it into
// R, G and B at full alpha.
func (v *Float) Color() geom.Color {
	return geom.Gray(int16(clampInt32(float64(v.v * 255))))
}

// Vector2 replicates the float into both components.
func (v *Float) Vector2() geom.Vector2 { return geom.Splat2(v.v) }

// Vector3 replicates the float into every component.
func (v *Float) Vector3() geom.Vector3 { return geom.Splat3(v.v) }

// Vector4 replicates the float into every component.
func (v *Float) Vector4() geom.Vector4 { return geom.Splat4(v.v) }

// Clone returns a copy bound to the same Settings.
func (v *Float) Clone() Value { return NewFloat(v.settings, v.v) }

// Bool is a boolean Value.
type Bool struct {
	Base
	v bool
}

// NewBool returns a Bool bound to s.
func NewBool(s *Settings, v bool) *Bool {
	return &Bool{Base: NewBase(s), v: v}
}

// Get returns the stored flag.
func (v *Bool) Get() bool { return v.v }

// Set replaces the stored flag.
func (v *Bool) Set(x bool) { v.v = x }

// String returns the canonical text form.
func (v *Bool) String() string { return strconv.FormatBool(v.v) }

// TypeName returns "bool".
func (*Bool) TypeName() string { return TypeBool }

// Tag returns TagBool.
func (*Bool) Tag() TypeTag { return TagBool }

// Int returns 1 for true and 0 for false.
func (v *Bool) Int() int32 { return int32(boolFloat(v.v)) }

// Float returns 1 for true and 0 for false.
func (v *Bool) Float() float32 { return boolFloat(v.v) }

// Bool returns the stored flag.
func (v *Bool) Bool() bool { return v.v }

// Color returns opaque white for true and opaque black for false.
func (v *Bool) Color() geom.Color {
	return geom.Gray(int16(boolFloat(v.v) * 255))
}

// Vector2 sets both components to 1 for true and 0 for false.
func (v *Bool) Vector2() geom.Vector2 { return geom.Splat2(boolFloat(v.v)) }

// Vector3 sets every component to 1 for true and 0 for false.
func (v *Bool) Vector3() geom.Vector3 { return geom.Splat3(boolFloat(v.v)) }

// Vector4 sets every component to 1 for true and 0 for false.
func (v *Bool) Vector4() geom.Vector4 { return geom.Splat4(boolFloat(v.v)) }

// Clone returns a copy bound to the same Settings.
func (v *Bool) Clone() Value { return NewBool(v.settings, v.v) }
