package catalog

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
)

func sampleRaw() Raw {
	return Raw{
		Name:        "Airpath Test z=30",
		Header:      []string{"// generated", "1e3"},
		Wavelengths: []float64{300, 300.1, 650.25, 1300},
		Values:      []float64{0.1, 0.123456789012345, 0.5, 1},
	}
}

func TestWriteParseRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	raw := sampleRaw()
	raw.Header = []string{"1e3"}
	if err := Write(&buf, raw); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := Parse(&buf, 1)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got.Name != raw.Name || got.Header[0] != "1e3" {
		t.Fatalf("metadata = %q %v", got.Name, got.Header)
	}
	for i := range raw.Values {
		if got.Wavelengths[i] != raw.Wavelengths[i] || got.Values[i] != raw.Values[i] {
			t.Fatalf("point %d: got (%v, %v), want (%v, %v)", i, got.Wavelengths[i], got.Values[i], raw.Wavelengths[i], raw.Values[i])
		}
	}
}

func TestWriteErrors(t *testing.T) {
	var buf bytes.Buffer
	short := sampleRaw()
	short.Values = short.Values[:2]
	if err := Write(&buf, short); !errors.Is(err, ErrMalformed) {
		t.Fatalf("mismatched lengths: got %v, want ErrMalformed", err)
	}

	multi := sampleRaw()
	multi.Name = "two\nlines"
	if err := Write(&buf, multi); !errors.Is(err, ErrMalformed) {
		t.Fatalf("multi-line name: got %v, want ErrMalformed", err)
	}
}

func TestWriteFileLookup(t *testing.T) {
	root := t.TempDir()
	raw := sampleRaw()
	raw.Header = nil

	for _, name := range []string{"plain.txt", "packed.txt.gz"} {
		dir := filepath.Join(root, name)
		if err := WriteFile(filepath.Join(dir, Filter, name), raw); err != nil {
			t.Fatalf("WriteFile(%s): %v", name, err)
		}
		got, err := NewDir(dir).Lookup(Filter, "airpath test z=30")
		if err != nil {
			t.Fatalf("Lookup(%s): %v", name, err)
		}
		if len(got.Values) != len(raw.Values) || got.Values[1] != raw.Values[1] {
			t.Fatalf("%s: values = %v", name, got.Values)
		}
	}
}
