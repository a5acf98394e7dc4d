package catalog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/pgzip"
)

// Write emits raw in the table format Parse reads: the name, the header
// lines, then one "nm value" line per point.
func Write(w io.Writer, raw Raw) error {
	if len(raw.Wavelengths) != len(raw.Values) {
		return fmt.Errorf("%w: %q: %d wavelengths, %d values", ErrMalformed, raw.Name, len(raw.Wavelengths), len(raw.Values))
	}
	if strings.ContainsAny(raw.Name, "\r\n") {
		return fmt.Errorf("%w: name %q spans lines", ErrMalformed, raw.Name)
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, raw.Name); err != nil {
		return err
	}
	for _, h := range raw.Header {
		if _, err := fmt.Fprintln(bw, h); err != nil {
			return err
		}
	}
	buf := make([]byte, 0, 64)
	for i, nm := range raw.Wavelengths {
		buf = strconv.AppendFloat(buf[:0], nm, 'g', -1, 64)
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, raw.Values[i], 'g', -1, 64)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes raw to path, creating parent directories. A ".gz"
// suffix compresses the table with parallel gzip.
func WriteFile(path string, raw Raw) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if !strings.HasSuffix(path, ".gz") {
		return Write(f, raw)
	}
	zw := pgzip.NewWriter(f)
	if err := Write(zw, raw); err != nil {
		_ = zw.Close()
		return err
	}
	return zw.Close()
}
