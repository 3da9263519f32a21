package ds

import (
	"slices"
	"strings"

	"github.com/ardnew/dsys/geom"
)

// Factory constructs a Value from its raw text using the given Settings.
type Factory func(s *Settings, raw string) Value

// registry maps lower-cased type names to factories.
//
// It is process-wide and unsynchronized. All registration must happen before
// the first document is parsed; registering after the first lookup is
// undefined.
var registry = map[string]Factory{}

// Register stores f under the lower-cased name. A later registration for the
// same name replaces the earlier one.
func Register(name string, f Factory) {
	registry[strings.ToLower(name)] = f
}

// Lookup returns the factory registered under name, ignoring case.
func Lookup(name string) (Factory, bool) {
	f, ok := registry[strings.ToLower(name)]

	return f, ok && f != nil
}

// Types returns the sorted names of all registered types.
func Types() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Init registers the built-in value types. Calling it more than once is
// harmless, but it overwrites user registrations that reuse a built-in name.
func Init() {
	Register(TypeString, func(s *Settings, raw string) Value {
		return NewString(s, raw)
	})
	Register(TypeInt, func(s *Settings, raw string) Value {
		return NewInt(s, s.EvalInt(raw))
	})
	Register(TypeFloat, func(s *Settings, raw string) Value {
		return NewFloat(s, s.EvalFloat(raw))
	})
	Register(TypeBool, func(s *Settings, raw string) Value {
		return NewBool(s, ParseBool(raw))
	})
	Register(TypeColor, func(s *Settings, raw string) Value {
		return NewColor(s, geom.ParseColor(raw))
	})
	Register(TypeVector2, func(s *Settings, raw string) Value {
		return NewVector2(s, geom.ParseVector2(raw))
	})
	Register(TypeVector3, func(s *Settings, raw string) Value {
		return NewVector3(s, geom.ParseVector3(raw))
	})
	Register(TypeVector4, func(s *Settings, raw string) Value {
		return NewVector4(s, geom.ParseVector4(raw))
	})
}

// Close resets the registry to empty.
func Close() {
	registry = map[string]Factory{}
}
