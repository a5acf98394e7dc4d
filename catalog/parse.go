package catalog

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads one item table from r. headerLines non-comment lines after the
// name are returned as Header; every following line with at least two fields
// is a data point. Lines with fewer than two fields are ignored.
func Parse(r io.Reader, headerLines int) (Raw, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return Raw{}, err
		}
		return Raw{}, fmt.Errorf("%w: empty input", ErrMalformed)
	}
	raw := Raw{Name: strings.TrimSpace(sc.Text())}

	line := 1
	for len(raw.Header) < headerLines && sc.Scan() {
		line++
		text := sc.Text()
		if isComment(text) {
			continue
		}
		raw.Header = append(raw.Header, text)
	}
	if len(raw.Header) < headerLines {
		return Raw{}, fmt.Errorf("%w: %q: want %d header lines, got %d", ErrMalformed, raw.Name, headerLines, len(raw.Header))
	}

	for sc.Scan() {
		line++
		text := sc.Text()
		if isComment(text) {
			continue
		}
		f := Fields(text)
		if len(f) < 2 {
			continue
		}
		nm, err := strconv.ParseFloat(f[0], 64)
		if err != nil {
			return Raw{}, fmt.Errorf("%w: %q line %d: %v", ErrMalformed, raw.Name, line, err)
		}
		y, err := strconv.ParseFloat(f[1], 64)
		if err != nil {
			return Raw{}, fmt.Errorf("%w: %q line %d: %v", ErrMalformed, raw.Name, line, err)
		}
		if n := len(raw.Wavelengths); n > 0 && nm <= raw.Wavelengths[n-1] {
			return Raw{}, fmt.Errorf("%w: %q line %d: wavelength %v not increasing", ErrMalformed, raw.Name, line, nm)
		}
		raw.Wavelengths = append(raw.Wavelengths, nm)
		raw.Values = append(raw.Values, y)
	}
	if err := sc.Err(); err != nil {
		return Raw{}, err
	}
	if len(raw.Wavelengths) < MinPoints {
		return Raw{}, fmt.Errorf("%w: %q: %d data points, need %d", ErrMalformed, raw.Name, len(raw.Wavelengths), MinPoints)
	}
	return raw, nil
}

// ReadRecords returns the first n non-comment lines after the name line.
func ReadRecords(r io.Reader, n int) (name string, records []string, err error) {
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", nil, err
		}
		return "", nil, fmt.Errorf("%w: empty input", ErrMalformed)
	}
	name = strings.TrimSpace(sc.Text())
	for len(records) < n && sc.Scan() {
		if text := sc.Text(); !isComment(text) {
			records = append(records, text)
		}
	}
	if err := sc.Err(); err != nil {
		return name, nil, err
	}
	if len(records) < n {
		return name, nil, fmt.Errorf("%w: %q: want %d records, got %d", ErrMalformed, name, n, len(records))
	}
	return name, records, nil
}
