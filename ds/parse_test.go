package ds

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ardnew/dsys/geom"
	"github.com/ardnew/dsys/log"
)

func TestParse_TypedLeaves(t *testing.T) {
	t.Parallel()

	root := mustParse(t, `
		$string "title" "Hello, world"
		$int count 7
		$float ratio 0.5
		$bool enabled yes
		$color tint "255 128 0"
		$vector2 size "640 480"
		$vector pos "1 2 3"
		$vector4 quat "0 0 0 1"
	`)

	if got := root.Keys(); !cmp.Equal(got, []string{
		"title", "count", "ratio", "enabled", "tint", "size", "pos", "quat",
	}) {
		t.Fatalf("keys = %v", got)
	}

	if s, _ := root.RawString("title"); s != "Hello, world" {
		t.Errorf("title = %q", s)
	}
	if n, _ := root.RawInt("count"); n != 7 {
		t.Errorf("count = %d", n)
	}
	if f, _ := root.RawFloat("ratio"); f != 0.5 {
		t.Errorf("ratio = %v", f)
	}
	if b, _ := root.RawBool("enabled"); !b {
		t.Error("enabled = false")
	}
	if c, _ := root.RawColor("tint"); c != (geom.Color{R: 255, G: 128, B: 0, A: 255}) {
		t.Errorf("tint = %v", c)
	}
	if v, _ := root.RawVector2("size"); v != (geom.Vector2{X: 640, Y: 480}) {
		t.Errorf("size = %v", v)
	}
	if v, _ := root.RawVector3("pos"); v != (geom.Vector3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("pos = %v", v)
	}
	if v, _ := root.RawVector4("quat"); v != (geom.Vector4{W: 1}) {
		t.Errorf("quat = %v", v)
	}
}

func TestParse_BareTokens(t *testing.T) {
	t.Parallel()

	root := mustParse(t, `alpha, beta "gamma delta" inner { x y } tail`)

	want := map[string]string{"0": "alpha", "1": "beta", "2": "gamma delta", "3": "tail"}
	for k, v := range want {
		if got, ok := root.RawString(k); !ok || got != v {
			t.Errorf("%s = %q (%v), want %q", k, got, ok, v)
		}
	}

	inner := root.Block("inner")
	if inner == nil {
		t.Fatal("inner block missing")
	}

	if got := inner.String("0", "") + inner.String("1", ""); got != "xy" {
		t.Errorf("inner counter did not restart: %v", inner.Keys())
	}
}

func TestParse_TypedBlock(t *testing.T) {
	t.Parallel()

	root := mustParse(t, `$int nums { 1, 2 $float f 2.5 3 nested { 4 } }`)

	nums := root.Block("nums")
	if nums == nil {
		t.Fatal("nums missing")
	}

	if got := nums.Keys(); !cmp.Equal(got, []string{"0", "1", "f", "2", "nested"}) {
		t.Errorf("keys = %v", got)
	}

	for k, want := range map[string]int32{"0": 1, "1": 2, "2": 3} {
		if got, ok := nums.RawInt(k); !ok || got != want {
			t.Errorf("%s = %d (%v), want %d", k, got, ok, want)
		}
	}

	if !nums.Is("f", TagFloat) {
		t.Error("explicit $float inside typed block lost its type")
	}

	if n, ok := nums.Block("nested").RawInt("0"); !ok || n != 4 {
		t.Errorf("nested block did not inherit type: %d %v", n, ok)
	}
}

func TestParse_ValueReplacement(t *testing.T) {
	t.Parallel()

	root := mustParse(t, `$int x 1 $string y a $int x 2`)

	if root.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", root.Len())
	}

	if n, _ := root.RawInt("x"); n != 2 {
		t.Errorf("x = %d, want 2", n)
	}

	if got := root.Keys(); !cmp.Equal(got, []string{"x", "y"}) {
		t.Errorf("replacement moved the entry: %v", got)
	}
}

func TestParse_ContainerPromotion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		src   string
		count int
	}{
		{"single", `light { $int id 0 }`, 1},
		{"pair", `light { $int id 0 } light { $int id 1 }`, 2},
		{"triple", `light { $int id 0 } light { $int id 1 } light { $int id 2 }`, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := mustParse(t, tt.src)

			n := root.Get("light")
			if tt.count == 1 {
				if n.Kind() != KindBlock {
					t.Fatalf("kind = %v, want Block", n.Kind())
				}

				return
			}

			c, ok := n.(*Container)
			if !ok {
				t.Fatalf("kind = %v, want Container", n.Kind())
			}

			if c.Len() != tt.count {
				t.Fatalf("Len() = %d, want %d", c.Len(), tt.count)
			}

			i := int32(0)
			for blk := range root.Blocks("light") {
				if id, _ := blk.RawInt("id"); id != i {
					t.Errorf("element %d has id %d", i, id)
				}
				i++
			}
		})
	}
}

func TestParse_CaseInsensitiveTypes(t *testing.T) {
	t.Parallel()

	root := mustParse(t, `$INT a 1 $Float b 2 $Vector c "1 1 1"`)

	for name, tag := range map[string]TypeTag{"a": TagInt, "b": TagFloat, "c": TagVector3} {
		if !root.Is(name, tag) {
			t.Errorf("%s is not %v", name, tag)
		}
	}
}

func TestParse_UnknownTypeSkipped(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := log.Make(&buf, log.WithLevel(log.LevelDebug))

	root := mustParse(t, `$frobnicate x 1 $int y 2`, WithLogger(logger))

	if root.Has("x") {
		t.Error("value of unknown type was stored")
	}
	if n, _ := root.RawInt("y"); n != 2 {
		t.Errorf("y = %d, want 2", n)
	}
	if !strings.Contains(buf.String(), "frobnicate") {
		t.Errorf("unknown type not logged: %s", buf.String())
	}
}

func TestParse_EnumsAndExpressions(t *testing.T) {
	t.Parallel()

	enums := map[string]string{"SOME_ENUM": "42", "RED": "255 0 0", "LIMIT": "10"}

	root := mustParse(t, `
		$int x "SOME_ENUM"
		$float y "2+3*2"
		$int z "LIMIT * 2 + 1"
		$color c RED
		$string s SOME_ENUM
		$string q "SOME_ENUM"
		$string partial "SOME_ENUM 1"
		$int r 3.6
		$int bad "12 apples"
		SOME_ENUM
	`, WithEnums(enums))

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"enum int", root.Int("x", 0), int32(42)},
		{"expression float", root.Float("y", 0), float32(8)},
		{"enum in expression", root.Int("z", 0), int32(21)},
		{"enum color", root.Color("c", geom.Color{}), geom.Color{R: 255, A: 255}},
		{"enum string", root.String("s", ""), "42"},
		{"quoted enum string", root.String("q", ""), "42"},
		{"enum needs whole token", root.String("partial", ""), "SOME_ENUM 1"},
		{"rounded int", root.Int("r", 0), int32(4)},
		{"leading integer fallback", root.Int("bad", 0), int32(12)},
		{"bare token", root.String("0", ""), "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if got := root.Settings().Enums(); !cmp.Equal(got, enums) {
		t.Errorf("settings enums = %v", got)
	}
}

func TestParse_EnumNotAppliedToNames(t *testing.T) {
	t.Parallel()

	root := mustParse(t, `$int KEY 1 KEY { }`, WithEnums(map[string]string{"KEY": "renamed"}))

	if !root.Has("KEY") || root.Has("renamed") {
		t.Errorf("keys = %v", root.Keys())
	}
}

func TestParse_QuotedEscapes(t *testing.T) {
	t.Parallel()

	root := mustParse(t, `$string "a \"b\"" "say \"hi\" \\ C:\path"`)

	got, ok := root.RawString(`a "b"`)
	if !ok {
		t.Fatalf("keys = %q", root.Keys())
	}

	if want := `say "hi" \ C:\path`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParse_QuotedDollarIsBare(t *testing.T) {
	t.Parallel()

	root := mustParse(t, `"$int" x`)

	if got := root.String("0", ""); got != "$int" {
		t.Errorf("0 = %q", got)
	}
	if got := root.String("1", ""); got != "x" {
		t.Errorf("1 = %q", got)
	}
}

func TestParse_Comments(t *testing.T) {
	t.Parallel()

	src := `
		// line comment
		$int a 1 /* block
		comment */ $int b 2
		a/*x*/b
	`

	root := mustParse(t, src, WithComments(true))

	if got := root.Keys(); !cmp.Equal(got, []string{"a", "b", "0", "1"}) {
		t.Errorf("keys = %v", got)
	}

	plain := mustParse(t, `// hi`)
	if got := plain.String("0", ""); got != "//" {
		t.Errorf("comments should be tokens when disabled, got %q", got)
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		opts []Option
		want error
	}{
		{"empty", "", nil, ErrEmptyDocument},
		{"whitespace", " \n\t ", nil, ErrEmptyDocument},
		{"comments only", "// nothing", []Option{WithComments(true)}, ErrEmptyDocument},
		{"stray brace", `$int x 1 }`, nil, ErrUnmatchedBrace},
		{"unclosed block", `outer { $int x 1`, nil, ErrUnexpectedEOF},
		{"unterminated quote", `$string s "open`, nil, ErrUnexpectedEOF},
		{"missing value", `$int x`, nil, ErrUnexpectedEOF},
		{"typed leaf at root", `$int , 1`, nil, ErrParse},
		{"too deep", `a { b { c { } } }`, []Option{WithMaxDepth(2)}, ErrMaxDepth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := ParseString(context.Background(), tt.src, tt.opts...)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}

			if root != nil {
				t.Error("root should be nil on error")
			}
		})
	}
}

func TestParse_MalformedNestedBlockIsTruncated(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := log.Make(&buf, log.WithLevel(log.LevelWarn))

	root := mustParse(t, `
		outer {
			$int kept 1
			$int }
		$int after 5
	`, WithLogger(logger))

	outer := root.Block("outer")
	if outer == nil {
		t.Fatal("outer block missing")
	}

	if n, _ := outer.RawInt("kept"); n != 1 {
		t.Errorf("kept = %d", n)
	}

	if n, _ := root.RawInt("after"); n != 5 {
		t.Errorf("parsing did not resume after the block: %v", root.Keys())
	}

	if !strings.Contains(buf.String(), "truncating") {
		t.Errorf("truncation not logged: %q", buf.String())
	}
}

func TestParse_MalformedSkipsNestedContent(t *testing.T) {
	t.Parallel()

	root := mustParse(t, `outer { $int { inner { "}" } } } $int after 5`)

	if outer := root.Block("outer"); outer == nil || !outer.IsEmpty() {
		t.Errorf("outer = %v", outer)
	}

	if n, _ := root.RawInt("after"); n != 5 {
		t.Errorf("keys = %v", root.Keys())
	}
}

func TestParse_MaxDepthAllowsLimit(t *testing.T) {
	t.Parallel()

	root := mustParse(t, `a { b { $int c 1 } }`, WithMaxDepth(2))

	if n, ok := root.Resolve("a.b.c"); !ok || n.(Value).Int() != 1 {
		t.Errorf("a.b.c = %v %v", n, ok)
	}
}

func TestParse_SharedSettings(t *testing.T) {
	t.Parallel()

	root := mustParse(t, `$int x 1 a { $int y 2 b { z } }`)
	s := root.Settings()

	if s == nil {
		t.Fatal("root settings nil")
	}

	for _, path := range []string{"x", "a", "a.y", "a.b", "a.b.0"} {
		n, ok := root.Resolve(path)
		if !ok {
			t.Fatalf("%s missing", path)
		}

		if n.Settings() != s {
			t.Errorf("%s has different settings", path)
		}
	}
}

func TestLoadDocument(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "doc.ds")

	if err := os.WriteFile(path, []byte(`$int x 3`), 0o600); err != nil {
		t.Fatal(err)
	}

	root, err := LoadDocument(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}

	if n, _ := root.RawInt("x"); n != 3 {
		t.Errorf("x = %d", n)
	}

	_, err = LoadDocument(context.Background(), filepath.Join(dir, "missing.ds"))
	if !errors.Is(err, ErrOpen) || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want ErrOpen wrapping ErrNotExist", err)
	}
}

func TestReadDocument(t *testing.T) {
	t.Parallel()

	root, err := ReadDocument(context.Background(), strings.NewReader(`$bool b on`))
	if err != nil {
		t.Fatal(err)
	}

	if !root.Bool("b", false) {
		t.Error("b = false")
	}

	_, err = ReadDocument(context.Background(), errReader{})
	if !errors.Is(err, ErrRead) {
		t.Errorf("err = %v, want ErrRead", err)
	}
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("boom") }
