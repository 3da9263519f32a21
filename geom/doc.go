// Package geom provides the small value types that typed document values
// carry as payloads: an 8-bit-per-channel [Color] and the float vectors
// [Vector2], [Vector3] and [Vector4].
//
// Every type has a text form made of whitespace-separated components, which
// is what the document encoding stores:
//
//	color   → "255 128 0 255"
//	vector  → "1 0.5 -2"
//
// Parsing is lenient. Missing components are zero (alpha defaults to 255),
// and each component is read with [ParseScalar], which accepts the longest
// numeric prefix and yields zero when there is none. Colors may also be
// written in hex notation ("#ff8000" or "#ff800080").
//
// Conversions between the types truncate or zero-extend components. Colors
// map to vectors by dividing each channel by 255 and back by multiplying.
package geom
