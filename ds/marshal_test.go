package ds

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ardnew/dsys/geom"
)

func TestBlock_ToMap(t *testing.T) {
	t.Parallel()

	root := mustParse(t, `
		$string s text
		$int i 3
		$float f 0.5
		$bool b yes
		$color c "1 2 3"
		$vector v "1 2 3"
		grp { $vector2 p "4 5" }
		item { $int n 1 }
		item { $int n 2 }
	`)

	want := map[string]any{
		"s": "text",
		"i": int32(3),
		"f": float32(0.5),
		"b": true,
		"c": []int16{1, 2, 3, 255},
		"v": []float32{1, 2, 3},
		"grp": map[string]any{
			"p": []float32{4, 5},
		},
		"item": []any{
			map[string]any{"n": int32(1)},
			map[string]any{"n": int32(2)},
		},
	}

	if diff := cmp.Diff(want, root.ToMap()); diff != "" {
		t.Errorf("ToMap() mismatch (-want +got):\n%s", diff)
	}
}

func TestBlock_FormatJSON(t *testing.T) {
	t.Parallel()

	root := mustParse(t, `$int x 1 grp { $string name hello }`)

	var buf bytes.Buffer
	if err := root.FormatJSON(context.Background(), &buf, 0); err != nil {
		t.Fatal(err)
	}

	if got, want := buf.String(), `{"grp":{"name":"hello"},"x":1}`+"\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	buf.Reset()
	if err := root.FormatJSON(context.Background(), &buf, 2); err != nil {
		t.Fatal(err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("indented output is not JSON: %v", err)
	}

	if !strings.Contains(buf.String(), "\n  \"x\": 1") {
		t.Errorf("output not indented: %s", buf.String())
	}
}

func TestBlock_FormatJSONNonFinite(t *testing.T) {
	t.Parallel()

	root := mustParse(t, `$float hi "1/0" $float lo "-1/0" $float nan "0/0" $vector2 v "inf 2" $vector2 w "1 2"`)

	var buf bytes.Buffer
	if err := root.FormatJSON(context.Background(), &buf, 0); err != nil {
		t.Fatal(err)
	}

	want := `{"hi":"+Inf","lo":"-Inf","nan":"NaN","v":"+Inf 2","w":[1,2]}` + "\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBlock_FormatYAML(t *testing.T) {
	t.Parallel()

	root := mustParse(t, `$int zeta 1 grp { $string name hello } $int alpha 2`)

	var buf bytes.Buffer
	if err := root.FormatYAML(context.Background(), &buf, 2); err != nil {
		t.Fatal(err)
	}

	out := buf.String()

	for _, want := range []string{"zeta: 1", "grp:", "  name: hello", "alpha: 2"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if strings.Index(out, "zeta") > strings.Index(out, "alpha") {
		t.Errorf("insertion order lost:\n%s", out)
	}

	buf.Reset()
	if err := root.FormatYAML(context.Background(), &buf, 0); err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(strings.TrimSpace(buf.String()), "{") {
		t.Errorf("indent 0 should produce flow style: %s", buf.String())
	}
}

func TestFromNative(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   any
		tag  TypeTag
		text string
		ok   bool
	}{
		{"string", "hi", TagString, "hi", true},
		{"int32", int32(4), TagInt, "4", true},
		{"int", 5, TagInt, "5", true},
		{"float32", float32(0.5), TagFloat, "0.5", true},
		{"float64", 2.0, TagFloat, "2", true},
		{"bool", true, TagBool, "true", true},
		{"color", geom.White, TagColor, "255 255 255 255", true},
		{"vector2", geom.Vector2{X: 1}, TagVector2, "1 0", true},
		{"vector3", geom.Vector3{Z: 1}, TagVector3, "0 0 1", true},
		{"vector4", geom.Splat4(2), TagVector4, "2 2 2 2", true},
		{"unsupported", []string{"x"}, 0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := FromNative(nil, tt.in)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}

			if !ok {
				return
			}

			if v.Tag() != tt.tag || v.String() != tt.text {
				t.Errorf("got %v %q, want %v %q", v.Tag(), v.String(), tt.tag, tt.text)
			}

			if got := ToNative(v); tt.tag == TagString && got != tt.in {
				t.Errorf("ToNative = %v", got)
			}
		})
	}
}
