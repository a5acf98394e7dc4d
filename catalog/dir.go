package catalog

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Dir is a catalog rooted at a directory with one subdirectory per collection.
type Dir struct {
	root    string
	headers map[string]int
	logger  *slog.Logger
}

// Option configures a Dir.
type Option func(*Dir)

// WithHeaderLines sets how many header lines items of collection carry.
func WithHeaderLines(collection string, n int) Option {
	return func(d *Dir) {
		if n >= 0 {
			d.headers[collection] = n
		}
	}
}

// WithLogger sets the logger that reports skipped files.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dir) {
		if l != nil {
			d.logger = l
		}
	}
}

// NewDir returns a catalog rooted at root. Passband and telescope items carry
// one header line by default; all other collections carry none.
func NewDir(root string, opts ...Option) *Dir {
	d := &Dir{
		root: filepath.Clean(root),
		headers: map[string]int{
			Passband:  1,
			Telescope: 1,
		},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	return d
}

// Root returns the catalog root directory.
func (d *Dir) Root() string { return d.root }

// Lookup implements Lookup.
func (d *Dir) Lookup(collection, key string) (Raw, error) {
	path, err := d.Find(collection, key)
	if err != nil {
		return Raw{}, err
	}
	rc, err := open(path)
	if err != nil {
		return Raw{}, err
	}
	defer rc.Close()

	raw, err := Parse(rc, d.headers[collection])
	if err != nil {
		return Raw{}, fmt.Errorf("%s: %w", path, err)
	}
	return raw, nil
}

// Records implements RecordSource.
func (d *Dir) Records(collection, key string, n int) ([]string, error) {
	path, err := d.Find(collection, key)
	if err != nil {
		return nil, err
	}
	rc, err := open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	_, records, err := ReadRecords(rc, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// Find returns the path of the file in collection whose first line matches
// key, ignoring case and surrounding whitespace. Files are scanned in
// lexical order. Files that cannot be read are logged and skipped.
func (d *Dir) Find(collection, key string) (string, error) {
	dir := filepath.Join(d.root, collection)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s/%s (no collection directory)", ErrNotFound, collection, key)
		}
		return "", err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if n := e.Name(); strings.HasSuffix(n, ".txt") || strings.HasSuffix(n, ".txt.gz") {
			names = append(names, n)
		}
	}
	sort.Strings(names)

	want := normalizeKey(key)
	for _, n := range names {
		path := filepath.Join(dir, n)
		first, err := firstLine(path)
		if err != nil {
			d.logger.Warn("skipping unreadable catalog file", "path", path, "err", err)
			continue
		}
		if normalizeKey(first) == want {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %s/%s", ErrNotFound, collection, key)
}

func firstLine(path string) (string, error) {
	rc, err := open(path)
	if err != nil {
		return "", err
	}
	defer rc.Close()

	sc := bufio.NewScanner(rc)
	if sc.Scan() {
		return sc.Text(), nil
	}
	return "", sc.Err()
}

type gzipFile struct {
	*gzip.Reader
	f *os.File
}

// Close closes the gzip reader and the underlying file.
func (g gzipFile) Close() error {
	gerr := g.Reader.Close()
	ferr := g.f.Close()
	if gerr != nil {
		return gerr
	}
	return ferr
}

func open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}
	zr, err := gzip.NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return gzipFile{Reader: zr, f: f}, nil
}
