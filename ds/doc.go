// Package ds implements typed hierarchical documents and their text encoding.
//
// A document is a tree of [Block]s. Each Block maps unique names to nodes:
// typed scalar [Value]s, nested Blocks, or [Container]s. A Container appears
// when the same name is given to more than one Block; it keeps every such
// Block in order.
//
// # Grammar
//
// Informal EBNF:
//
//	Document   → Member* EOF
//	Member     → TypedLeaf | NamedBlock | BareToken
//	TypedLeaf  → '$' Type Token Token
//	NamedBlock → Token '{' Member* '}' | '$' Type Token '{' Member* '}'
//	BareToken  → Token ','?
//	Token      → '"' <text, \" and \\ escaped> '"' | <text up to space, '}' or ','>
//
// A bare token becomes a Value keyed by its position ("0", "1", ...) in the
// enclosing Block. Its type is string unless the Block was opened with a
// type, as in $int name { ... }, which types every bare token inside it.
//
// # Example
//
//	$string "title" "Hello"
//	$int    "count" "2 * LIMIT"
//	window {
//		$vector2 size "640 480"
//		$color   background "#202020"
//	}
//	$float weights { 0.25, 0.5, 0.25 }
//	layer { $string name base }
//	layer { $string name overlay }
//
// Values of type int and float are evaluated as arithmetic expressions with
// expr-lang. Names from the enum table (see [WithEnums]) are bound as numeric
// constants, and tokens that exactly match an enum name are replaced by its
// text before they are interpreted. Text that does not compile as an
// expression is read as a plain number.
//
// # Registry
//
// Value types are constructed by name through a process-wide registry.
// [Init] registers the built-in types and [Register] adds user types. The
// registry is not synchronized: finish all registration before parsing the
// first document. A value whose type is not registered is skipped.
package ds
