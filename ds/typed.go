package ds

import "github.com/ardnew/dsys/geom"

// String returns the text form of the Value stored under name, or def when
// name is absent or does not hold a Value.
func (b *Block) String(name, def string) string {
	if v := b.Value(name); v != nil {
		return v.String()
	}

	return def
}

// Int converts the Value stored under name to int32, or returns def
// when name is absent or does not hold a Value.
func (b *Block) Int(name string, def int32) int32 {
	if v := b.Value(name); v != nil {
		return v.Int()
	}

	return def
}

// Float converts the Value stored under name to float32, or returns def
// when name is absent or does not hold a Value.
func (b *Block) Float(name string, def float32) float32 {
	if v := b.Value(name); v != nil {
		return v.Float()
	}

	return def
}

// Bool converts the Value stored under name to bool, or returns def
// when name is absent or does not hold a Value.
func (b *Block) Bool(name string, def bool) bool {
	if v := b.Value(name); v != nil {
		return v.Bool()
	}

	return def
}

// Color converts the Value stored under name to a Color, or returns def
// when name is absent or does not hold a Value.
func (b *Block) Color(name string, def geom.Color) geom.Color {
	if v := b.Value(name); v != nil {
		return v.Color()
	}

	return def
}

// Vector2 converts the Value stored under name to Vector2, or returns def
// when name is absent or does not hold a Value.
func (b *Block) Vector2(name string, def geom.Vector2) geom.Vector2 {
	if v := b.Value(name); v != nil {
		return v.Vector2()
	}

	return def
}

// Vector3 converts the Value stored under name to Vector3, or returns def
// when name is absent or does not hold a Value.
func (b *Block) Vector3(name string, def geom.Vector3) geom.Vector3 {
	if v := b.Value(name); v != nil {
		return v.Vector3()
	}

	return def
}

// Vector4 converts the Value stored under name to Vector4, or returns def
// when name is absent or does not hold a Value.
func (b *Block) Vector4(name string, def geom.Vector4) geom.Vector4 {
	if v := b.Value(name); v != nil {
		return v.Vector4()
	}

	return def
}

// Is reports whether name holds a Value tagged t.
func (b *Block) Is(name string, t TypeTag) bool {
	v := b.Value(name)

	return v != nil && v.Tag() == t
}

// RawString returns the string stored under name. It reports false unless
// the Value there is tagged TagString; no conversion is attempted.
func (b *Block) RawString(name string) (string, bool) {
	if !b.Is(name, TagString) {
		return "", false
	}

	return b.Value(name).String(), true
}

// RawInt returns the int32 stored under name. It reports false unless
// the Value there is tagged TagInt; no conversion is attempted.
func (b *Block) RawInt(name string) (int32, bool) {
	if !b.Is(name, TagInt) {
		return 0, false
	}

	return b.Value(name).Int(), true
}

// RawFloat returns the float32 stored under name. It reports false unless
// the Value there is tagged TagFloat; no conversion is attempted.
func (b *Block) RawFloat(name string) (float32, bool) {
	if !b.Is(name, TagFloat) {
		return 0, false
	}

	return b.Value(name).Float(), true
}

// RawBool returns the bool stored under name. It reports false unless
// the Value there is tagged TagBool; no conversion is attempted.
func (b *Block) RawBool(name string) (bool, bool) {
	if !b.Is(name, TagBool) {
		return false, false
	}

	return b.Value(name).Bool(), true
}

// RawColor returns the Color stored under name. It reports false unless
// the Value there is tagged TagColor; no conversion is attempted.
func (b *Block) RawColor(name string) (geom.Color, bool) {
	if !b.Is(name, TagColor) {
		return geom.Color{}, false
	}

	return b.Value(name).Color(), true
}

// RawVector2 returns the Vector2 stored under name. It reports false unless
// the Value there is tagged TagVector2; no conversion is attempted.
func (b *Block) RawVector2(name string) (geom.Vector2, bool) {
	if !b.Is(name, TagVector2) {
		return geom.Vector2{}, false
	}

	return b.Value(name).Vector2(), true
}

// RawVector3 returns the Vector3 stored under name. It reports false unless
// the Value there is tagged TagVector3; no conversion is attempted.
func (b *Block) RawVector3(name string) (geom.Vector3, bool) {
	if !b.Is(name, TagVector3) {
		return geom.Vector3{}, false
	}

	return b.Value(name).Vector3(), true
}

// RawVector4 returns the Vector4 stored under name. It reports false unless
// the Value there is tagged TagVector4; no conversion is attempted.
func (b *Block) RawVector4(name string) (geom.Vector4, bool) {
	if !b.Is(name, TagVector4) {
		return geom.Vector4{}, false
	}

	return b.Value(name).Vector4(), true
}

// SetString stores x under name and returns the stored *String. An existing
// *String is updated in place; any other entry is replaced.
func (b *Block) SetString(name, x string) *String {
	if v, ok := b.Value(name).(*String); ok {
		v.Set(x)

		return v
	}

	return set(b, name, NewString(b.settings, x))
}

// SetInt stores x under name and returns the stored *Int. An existing
// *Int is updated in place; any other entry is replaced.
func (b *Block) SetInt(name string, x int32) *Int {
	if v, ok := b.Value(name).(*Int); ok {
		v.Set(x)

		return v
	}

	return set(b, name, NewInt(b.settings, x))
}

// SetFloat stores x under name and returns the stored *Float. An existing
// *Float is updated in place; any other entry is replaced.
func (b *Block) SetFloat(name string, x float32) *Float {
	if v, ok := b.Value(name).(*Float); ok {
		v.Set(x)

		return v
	}

	return set(b, name, NewFloat(b.settings, x))
}

// SetBool stores x under name and returns the stored *Bool. An existing
// *Bool is updated in place; any other entry is replaced.
func (b *Block) SetBool(name string, x bool) *Bool {
	if v, ok := b.Value(name).(*Bool); ok {
		v.Set(x)

		return v
	}

	return set(b, name, NewBool(b.settings, x))
}

// SetColor stores x under name and returns the stored *Color. An existing
// *Color is updated in place; any other entry is replaced.
func (b *Block) SetColor(name string, x geom.Color) *Color {
	if v, ok := b.Value(name).(*Color); ok {
		v.Set(x)

		return v
	}

	return set(b, name, NewColor(b.settings, x))
}

// SetVector2 stores x under name and returns the stored *Vector2. An existing
// *Vector2 is updated in place; any other entry is replaced.
func (b *Block) SetVector2(name string, x geom.Vector2) *Vector2 {
	if v, ok := b.Value(name).(*Vector2); ok {
		v.Set(x)

		return v
	}

	return set(b, name, NewVector2(b.settings, x))
}

// SetVector3 stores x under name and returns the stored *Vector3. An existing
// *Vector3 is updated in place; any other entry is replaced.
func (b *Block) SetVector3(name string, x geom.Vector3) *Vector3 {
	if v, ok := b.Value(name).(*Vector3); ok {
		v.Set(x)

		return v
	}

	return set(b, name, NewVector3(b.settings, x))
}

// SetVector4 stores x under name and returns the stored *Vector4. An existing
// *Vector4 is updated in place; any other entry is replaced.
func (b *Block) SetVector4(name string, x geom.Vector4) *Vector4 {
	if v, ok := b.Value(name).(*Vector4); ok {
		v.Set(x)

		return v
	}

	return set(b, name, NewVector4(b.settings, x))
}

func set[V Value](b *Block, name string, v V) V {
	b.AddChild(name, v)

	return v
}
