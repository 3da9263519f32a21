package ds

// Kind identifies the shape of a [Node].
type Kind int

const (
	// KindValue is a typed scalar leaf.
	KindValue Kind = iota

	// KindBlock is a set of uniquely named children.
	KindBlock

	// KindContainer is an ordered list of Blocks sharing one name.
	KindContainer
)

// String returns a string representation of the node kind.
func (k Kind) String() string {
	switch k {
	case KindValue:
		return "Value"
	case KindBlock:
		return "Block"
	case KindContainer:
		return "Container"
	default:
		return "Unknown"
	}
}

// Node is anything that can be stored under a key of a [Block]:
// a [Value], a [*Block] or a [*Container].
type Node interface {
	Kind() Kind
	Settings() *Settings
}

// TypeTag is the closed set of value types known to this package.
// Every registered type that is not a built-in reports [TagUser].
type TypeTag int

const (
	TagString TypeTag = iota
	TagInt
	TagFloat
	TagBool
	TagColor
	TagVector2
	TagVector3
	TagVector4
	TagUser
)

// Type names of the built-in value types.
const (
	TypeString  = "string"
	TypeInt     = "int"
	TypeFloat   = "float"
	TypeBool    = "bool"
	TypeColor   = "color"
	TypeVector2 = "vector2"
	TypeVector3 = "vector"
	TypeVector4 = "vector4"
)

// String returns the type name of a built-in tag.
func (t TypeTag) String() string {
	switch t {
	case TagString:
		return TypeString
	case TagInt:
		return TypeInt
	case TagFloat:
		return TypeFloat
	case TagBool:
		return TypeBool
	case TagColor:
		return TypeColor
	case TagVector2:
		return TypeVector2
	case TagVector3:
		return TypeVector3
	case TagVector4:
		return TypeVector4
	case TagUser:
		return "user"
	default:
		return "unknown"
	}
}
