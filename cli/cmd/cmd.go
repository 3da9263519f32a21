package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/ardnew/dsys/ds"
	"github.com/ardnew/dsys/log"
)

type (
	kongContextKey struct{}
	optionsKey     struct{}
)

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, kongContextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(kongContextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// WithOptions returns a new context.Context carrying the parser options used
// by every command that reads a document.
func WithOptions(ctx context.Context, opts ...ds.Option) context.Context {
	return context.WithValue(ctx, optionsKey{}, opts)
}

func optionsFrom(ctx context.Context) []ds.Option {
	opts, _ := ctx.Value(optionsKey{}).([]ds.Option)

	return opts
}

// stdout returns the writer for command output: the kong application's
// Stdout if one is bound to ctx, or os.Stdout.
func stdout(ctx context.Context) io.Writer {
	if ktx := kongContextFrom(ctx); ktx != nil && ktx.Stdout != nil {
		return ktx.Stdout
	}

	return os.Stdout
}

// useColor resolves a --color flag against the writer output goes to.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return log.IsTerminal(w)
	}
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// readDocument parses the concatenation of sources as one document. With no
// sources it reads stdin.
func readDocument(ctx context.Context, sources []string) (*ds.Block, error) {
	if len(sources) == 0 {
		sources = []string{stdinSource}
	}

	src, err := openSources(sources)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	log.DebugContext(ctx, "reading document",
		slog.Any("files", src.names),
		slog.Bool("stdin", src.hasStdin),
	)

	return ds.ReadDocument(ctx, src.reader(), optionsFrom(ctx)...)
}

// fileKey uniquely identifies a file by its device and inode numbers.
// This handles deduplication across symlinks, absolute/relative paths, and
// special device files.
type fileKey struct {
	dev uint64
	ino uint64
}

// sourceSet is the deduplicated list of files named as sources.
type sourceSet struct {
	files    []*os.File
	names    []string
	hasStdin bool
}

// openSources opens every source once. Paths resolving to the same file
// (through symlinks or relative forms) are read only the first time they
// appear. All occurrences of "-" collapse to a single stdin reader placed
// after the regular files.
func openSources(sources []string) (*sourceSet, error) {
	var src sourceSet

	seen := make(map[fileKey]struct{})

	stdinInfo, _ := os.Stdin.Stat()
	stdinKey, _ := makeFileKey(stdinInfo)

	for _, path := range sources {
		if path == stdinSource {
			seen[stdinKey] = struct{}{}

			continue
		}

		file, err := openUnique(path, seen)
		if err != nil {
			src.Close()

			return nil, ds.ErrOpen.Wrap(err).With(slog.String("path", path))
		}

		if file != nil {
			src.files = append(src.files, file)
			src.names = append(src.names, path)
		}
	}

	// Stdin may have been named with "-" or by one of its device paths.
	_, src.hasStdin = seen[stdinKey]

	return &src, nil
}

// openUnique opens the file at path unless an earlier source already
// resolved to it, in which case it returns nil.
func openUnique(path string, seen map[fileKey]struct{}) (*os.File, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	resolved, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return nil, err
	}

	if key, ok := makeFileKey(info); ok {
		if _, exists := seen[key]; exists {
			return nil, nil
		}

		seen[key] = struct{}{}
	}

	return os.Open(resolved)
}

// makeFileKey creates a fileKey from os.FileInfo.
// Returns false if the underlying Sys() data is not of type *syscall.Stat_t.
func makeFileKey(info os.FileInfo) (key fileKey, ok bool) {
	if info == nil {
		return key, false
	}

	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return key, false
	}

	return fileKey{dev: uint64(stat.Dev), ino: stat.Ino}, true
}

// reader returns the sources in order, stdin last, with a newline between
// each so a token at the end of one file never joins the start of the next.
func (s *sourceSet) reader() io.Reader {
	readers := make([]io.Reader, 0, 2*len(s.files)+1)

	for i, f := range s.files {
		if i > 0 {
			readers = append(readers, strings.NewReader("\n"))
		}

		readers = append(readers, f)
	}

	if s.hasStdin {
		if len(readers) > 0 {
			readers = append(readers, strings.NewReader("\n"))
		}

		readers = append(readers, os.Stdin)
	}

	return io.MultiReader(readers...)
}

// Close closes every opened file. Stdin is left open.
func (s *sourceSet) Close() error {
	var first error

	for _, f := range s.files {
		if err := f.Close(); err != nil && first == nil {
			first = err
		}
	}

	return first
}
