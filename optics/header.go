package optics

import (
	"strconv"

	"github.com/cwbudde/algo-photometry/catalog"
)

// headerFloats parses the first n tokens of the first header line.
func headerFloats(raw catalog.Raw, n int) ([]float64, bool) {
	if len(raw.Header) == 0 {
		return nil, false
	}
	tokens := catalog.Fields(raw.Header[0])
	if len(tokens) < n {
		return nil, false
	}
	out := make([]float64, n)
	for i := range out {
		v, err := strconv.ParseFloat(tokens[i], 64)
		if err != nil {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}
