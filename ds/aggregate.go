package ds

import "github.com/ardnew/dsys/geom"

// Aggregate values (colors and vectors) convert between each other by
// truncating or zero-extending components. Their Int, Float and Bool
// conversions are always 0, 0 and false.
type aggregate struct{ Base }

func (aggregate) Int() int32     { return 0 }
func (aggregate) Float() float32 { return 0 }
func (aggregate) Bool() bool     { return false }

// Color is an RGBA color Value.
type Color struct {
	aggregate
	v geom.Color
}

// NewColor returns a Color bound to s.
func NewColor(s *Settings, v geom.Color) *Color {
	return &Color{aggregate: aggregate{NewBase(s)}, v: v}
}

// Get returns the stored color.
func (v *Color) Get() geom.Color { return v.v }

// Set replaces the stored color.
func (v *Color) Set(x geom.Color) { v.v = x }

// String returns the canonical text form.
func (v *Color) String() string { return v.v.String() }

// TypeName returns "color".
func (*Color) TypeName() string { return TypeColor }

// Tag returns TagColor.
func (*Color) Tag() TypeTag { return TagColor }

// Color returns the stored color.
func (v *Color) Color() geom.Color { return v.v }

// Vector2 returns the normalized red and green channels.
func (v *Color) Vector2() geom.Vector2 { return v.v.Vector2() }

// Vector3 returns the normalized red, green and blue channels.
func (v *Color) Vector3() geom.Vector3 { return v.v.Vector3() }

// Vector4 returns all four channels normalized.
func (v *Color) Vector4() geom.Vector4 { return v.v.Vector4() }

// Clone returns a copy bound to the same Settings.
func (v *Color) Clone() Value { return NewColor(v.settings, v.v) }

// Vector2 is a two-component vector Value.
type Vector2 struct {
	aggregate
	v geom.Vector2
}

// NewVector2 returns a Vector2 bound to s.
func NewVector2(s *Settings, v geom.Vector2) *Vector2 {
	return &Vector2{aggregate: aggregate{NewBase(s)}, v: v}
}

// Get returns the stored vector.
func (v *Vector2) Get() geom.Vector2 { return v.v }

// Set replaces the stored vector.
func (v *Vector2) Set(x geom.Vector2) { v.v = x }

// String returns the canonical text form.
func (v *Vector2) String() string { return v.v.String() }

// TypeName returns "vector2".
func (*Vector2) TypeName() string { return TypeVector2 }

// Tag returns TagVector2.
func (*Vector2) Tag() TypeTag { return TagVector2 }

// Color scales the normalized components to opaque red and green channels.
func (v *Vector2) Color() geom.Color { return geom.ColorFromVector3(v.v.Vector3()) }

// Vector2 returns the stored vector.
func (v *Vector2) Vector2() geom.Vector2 { return v.v }

// Vector3 zero-extends the vector.
func (v *Vector2) Vector3() geom.Vector3 { return v.v.Vector3() }

// Vector4 zero-extends the vector.
func (v *Vector2) Vector4() geom.Vector4 { return v.v.Vector4() }

// Clone returns a copy bound to the same Settings.
func (v *Vector2) Clone() Value { return NewVector2(v.settings, v.v) }

// Vector3 is a three-component vector Value. Its type name is "vector".
type Vector3 struct {
	aggregate
	v geom.Vector3
}

// NewVector3 returns a Vector3 bound to s.
func NewVector3(s *Settings, v geom.Vector3) *Vector3 {
	return &Vector3{aggregate: aggregate{NewBase(s)}, v: v}
}

// Get returns the stored vector.
func (v *Vector3) Get() geom.Vector3 { return v.v }

// Set replaces the stored vector.
func (v *Vector3) Set(x geom.Vector3) { v.v = x }

// String returns the canonical text form.
func (v *Vector3) String() string { return v.v.String() }

// TypeName returns "vector".
func (*Vector3) TypeName() string { return TypeVector3 }

// Tag returns TagVector3.
func (*Vector3) Tag() TypeTag { return TagVector3 }

// Color scales the normalized components to opaque RGB channels.
func (v *Vector3) Color() geom.Color { return geom.ColorFromVector3(v.v) }

// Vector2 drops the Z component.
func (v *Vector3) Vector2() geom.Vector2 { return v.v.Vector2() }

// Vector3 returns the stored vector.
func (v *Vector3) Vector3() geom.Vector3 { return v.v }

// Vector4 zero-extends the vector.
func (v *Vector3) Vector4() geom.Vector4 { return v.v.Vector4() }

// Clone returns a copy bound to the same Settings.
func (v *Vector3) Clone() Value { return NewVector3(v.settings, v.v) }

// Vector4 is a four-component vector Value.
type Vector4 struct {
	aggregate
	v geom.Vector4
}

// NewVector4 returns a Vector4 bound to s.
func NewVector4(s *Settings, v geom.Vector4) *Vector4 {
	return &Vector4{aggregate: aggregate{NewBase(s)}, v: v}
}

// Get returns the stored vector.
func (v *Vector4) Get() geom.Vector4 { return v.v }

// Set replaces the stored vector.
func (v *Vector4) Set(x geom.Vector4) { v.v = x }

// String returns the canonical text form.
func (v *Vector4) String() string { return v.v.String() }

// TypeName returns "vector4".
func (*Vector4) TypeName() string { return TypeVector4 }

// Tag returns TagVector4.
func (*Vector4) Tag() TypeTag { return TagVector4 }

// Color scales the normalized components to RGBA channels.
func (v *Vector4) Color() geom.Color { return geom.ColorFromVector4(v.v) }

// Vector2 keeps the X and Y components.
func (v *Vector4) Vector2() geom.Vector2 { return v.v.Vector2() }

// Vector3 drops the W component.
func (v *Vector4) Vector3() geom.Vector3 { return v.v.Vector3() }

// Vector4 returns the stored vector.
func (v *Vector4) Vector4() geom.Vector4 { return v.v }

// Clone returns a copy bound to the same Settings.
func (v *Vector4) Clone() Value { return NewVector4(v.settings, v.v) }
