package geom

// Vector2 is a two-component float vector.
type Vector2 struct {
	X, Y float32
}

// Vector3 is a three-component float vector.
type Vector3 struct {
	X, Y, Z float32
}

// Vector4 is a four-component float vector.
type Vector4 struct {
	X, Y, Z, W float32
}

// ParseVector2 parses "x y". Missing components are zero.
func ParseVector2(s string) Vector2 {
	c := components(s, 2)

	return Vector2{X: c[0], Y: c[1]}
}

// ParseVector3 parses "x y z". Missing components are zero.
func ParseVector3(s string) Vector3 {
	c := components(s, 3)

	return Vector3{X: c[0], Y: c[1], Z: c[2]}
}

// ParseVector4 parses "x y z w". Missing components are zero.
func ParseVector4(s string) Vector4 {
	c := components(s, 4)

	return Vector4{X: c[0], Y: c[1], Z: c[2], W: c[3]}
}

// Splat2 returns a Vector2 with every component set to f.
func Splat2(f float32) Vector2 { return Vector2{X: f, Y: f} }

// Splat3 returns a Vector3 with every component set to f.
func Splat3(f float32) Vector3 { return Vector3{X: f, Y: f, Z: f} }

// Splat4 returns a Vector4 with every component set to f.
func Splat4(f float32) Vector4 { return Vector4{X: f, Y: f, Z: f, W: f} }

func (v Vector2) String() string { return joinFloats(v.X, v.Y) }

// Vector3 zero-extends v.
func (v Vector2) Vector3() Vector3 { return Vector3{X: v.X, Y: v.Y} }

// Vector4 zero-extends v.
func (v Vector2) Vector4() Vector4 { return Vector4{X: v.X, Y: v.Y} }

func (v Vector3) String() string { return joinFloats(v.X, v.Y, v.Z) }

// Vector2 truncates v.
func (v Vector3) Vector2() Vector2 { return Vector2{X: v.X, Y: v.Y} }

// Vector4 zero-extends v.
func (v Vector3) Vector4() Vector4 { return Vector4{X: v.X, Y: v.Y, Z: v.Z} }

func (v Vector4) String() string { return joinFloats(v.X, v.Y, v.Z, v.W) }

// Vector2 truncates v.
func (v Vector4) Vector2() Vector2 { return Vector2{X: v.X, Y: v.Y} }

// Vector3 truncates v.
func (v Vector4) Vector3() Vector3 { return Vector3{X: v.X, Y: v.Y, Z: v.Z} }
