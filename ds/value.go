package ds

import "github.com/ardnew/dsys/geom"

// Value is a typed leaf. Every implementation converts its payload to every
// other shape; conversions are lossy and never fail.
//
// User-defined types embed [Base] and are registered with [Register]. They
// report [TagUser] from Tag.
type Value interface {
	Node

	// Bind attaches the Value to the Settings of the Block it is stored in.
	Bind(s *Settings)

	// String returns the canonical text form, which reparses to an equal
	// Value through the factory registered under TypeName.
	String() string
	TypeName() string
	Tag() TypeTag

	Int() int32
	Float() float32
	Bool() bool
	Color() geom.Color
	Vector2() geom.Vector2
	Vector3() geom.Vector3
	Vector4() geom.Vector4

	// Clone returns an independent copy sharing the same Settings.
	Clone() Value
}

// Base carries the Settings plumbing common to every Value.
type Base struct {
	settings *Settings
}

// NewBase returns a Base bound to s.
func NewBase(s *Settings) Base { return Base{settings: s} }

// Kind returns [KindValue].
func (Base) Kind() Kind { return KindValue }

// Settings returns the Settings the Value is bound to.
func (b *Base) Settings() *Settings { return b.settings }

// Bind attaches s.
func (b *Base) Bind(s *Settings) { b.settings = s }
