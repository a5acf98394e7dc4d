package smarts

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/cwbudde/algo-photometry/catalog"
)

// MinPoints is the fewest (nm, transmittance) rows a usable table holds.
const MinPoints = 4

// ParseExt reads a SMARTS .ext.txt table: one header line, then rows whose
// first two columns are wavelength in nm and transmittance. Reading stops
// at the first row that does not start with two numbers.
func ParseExt(r io.Reader) (nm, t []float64, err error) {
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("%w: empty table", ErrNoOutput)
	}

	for sc.Scan() {
		tok := catalog.Fields(sc.Text())
		if len(tok) == 0 {
			continue
		}
		if len(tok) < 2 {
			break
		}
		x, errX := strconv.ParseFloat(tok[0], 64)
		y, errY := strconv.ParseFloat(tok[1], 64)
		if errX != nil || errY != nil {
			break
		}
		nm = append(nm, x)
		t = append(t, y)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, err
	}
	if len(nm) < MinPoints {
		return nil, nil, fmt.Errorf("%w: %d rows", ErrNoOutput, len(nm))
	}
	return nm, t, nil
}
