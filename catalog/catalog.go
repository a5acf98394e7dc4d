package catalog

import (
	"errors"
	"strings"
)

// Collections used by the photometry packages.
const (
	PFlux     = "pflux"
	Filter    = "filter"
	Passband  = "passband"
	Telescope = "telescope"
	Detector  = "detector"
	Site      = "site"
)

// MinPoints is the fewest data lines a table may carry.
const MinPoints = 4

var (
	ErrNotFound  = errors.New("catalog: item not found")
	ErrMalformed = errors.New("catalog: malformed table")
)

// Raw is one tabulated item as read from a catalog.
type Raw struct {
	Name        string
	Wavelengths []float64 // nm, strictly increasing
	Values      []float64
	Header      []string // header lines, comments removed
}

// Lookup resolves an item in a collection to its raw table.
// Implementations return an error wrapping ErrNotFound for unknown items.
type Lookup interface {
	Lookup(collection, key string) (Raw, error)
}

// RecordSource returns the first n data records (non-comment lines after the
// name line) of an item. Site descriptions are read this way.
type RecordSource interface {
	Records(collection, key string, n int) ([]string, error)
}

// Fields splits a record on spaces, tabs and commas, dropping empty tokens.
func Fields(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ',' || r == '\r'
	})
}

func isComment(line string) bool {
	return strings.HasPrefix(line, "//")
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
