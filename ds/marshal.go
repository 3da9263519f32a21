package ds

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/dsys/geom"
)

// MarshalJSON implements json.Marshaler for Block.
func (b *Block) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.ToMap())
}

// ToMap converts the Block to native Go values: Blocks become maps,
// Containers become slices and Values become their native payload. Colors
// are []int16{r, g, b, a} and vectors are []float32. Infinite and NaN floats
// become their canonical text, as does any vector holding one.
func (b *Block) ToMap() map[string]any {
	result := make(map[string]any, b.Len())

	for k, n := range b.All() {
		result[k] = toNative(n, func(blk *Block) any { return blk.ToMap() })
	}

	return result
}

// ToNative returns the native Go payload of v. See [Block.ToMap].
func ToNative(v Value) any {
	switch v.Tag() {
	case TagString:
		return v.String()
	case TagInt:
		return v.Int()
	case TagFloat:
		if f := v.Float(); finite(f) {
			return f
		}

		return v.String()
	case TagBool:
		return v.Bool()
	case TagColor:
		c := v.Color()

		return []int16{c.R, c.G, c.B, c.A}
	case TagVector2:
		u := v.Vector2()

		return nativeFloats(v, u.X, u.Y)
	case TagVector3:
		u := v.Vector3()

		return nativeFloats(v, u.X, u.Y, u.Z)
	case TagVector4:
		u := v.Vector4()

		return nativeFloats(v, u.X, u.Y, u.Z, u.W)
	default:
		return v.String()
	}
}

func finite(f float32) bool {
	return !math.IsInf(float64(f), 0) && !math.IsNaN(float64(f))
}

func nativeFloats(v Value, f ...float32) any {
	for _, x := range f {
		if !finite(x) {
			return v.String()
		}
	}

	return f
}

func toNative(n Node, block func(*Block) any) any {
	switch n := n.(type) {
	case Value:
		return ToNative(n)
	case *Block:
		return block(n)
	case *Container:
		list := make([]any, 0, n.Len())
		for _, blk := range n.blocks {
			if blk == nil {
				list = append(list, nil)

				continue
			}

			list = append(list, block(blk))
		}

		return list
	default:
		return nil
	}
}

// toMapSlice is like ToMap but keeps insertion order.
func (b *Block) toMapSlice() yaml.MapSlice {
	result := make(yaml.MapSlice, 0, b.Len())

	for k, n := range b.All() {
		result = append(result, yaml.MapItem{
			Key:   k,
			Value: toNative(n, func(blk *Block) any { return blk.toMapSlice() }),
		})
	}

	return result
}

// FormatJSON writes the Block as JSON to the writer.
func (b *Block) FormatJSON(_ context.Context, w io.Writer, indent int) error {
	var (
		jsonData []byte
		err      error
	)

	if indent > 0 {
		jsonData, err = json.MarshalIndent(b, "", strings.Repeat(" ", indent))
	} else {
		jsonData, err = json.Marshal(b)
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(jsonData))

	return err
}

// FormatYAML writes the Block as YAML to the writer, in insertion order.
func (b *Block) FormatYAML(ctx context.Context, w io.Writer, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	yamlData, err := yaml.MarshalContext(ctx, b.toMapSlice(), opts...)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, string(yamlData))

	return err
}

// FromNative builds a Value holding x, choosing the built-in type from x's Go
// type. It reports false for unsupported types.
func FromNative(s *Settings, x any) (Value, bool) {
	switch x := x.(type) {
	case string:
		return NewString(s, x), true
	case int32:
		return NewInt(s, x), true
	case int:
		return NewInt(s, clampInt32(float64(x))), true
	case float32:
		return NewFloat(s, x), true
	case float64:
		return NewFloat(s, float32(x)), true
	case bool:
		return NewBool(s, x), true
	case geom.Color:
		return NewColor(s, x), true
	case geom.Vector2:
		return NewVector2(s, x), true
	case geom.Vector3:
		return NewVector3(s, x), true
	case geom.Vector4:
		return NewVector4(s, x), true
	default:
		return nil, false
	}
}
