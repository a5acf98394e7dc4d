package pipeline

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-photometry/atmosphere"
	"github.com/cwbudde/algo-photometry/flux"
	"github.com/cwbudde/algo-photometry/internal/numeric"
	"github.com/cwbudde/algo-photometry/internal/testutil"
	"github.com/cwbudde/algo-photometry/optics"
	"github.com/cwbudde/algo-photometry/spectrum"
)

const extinction = 0.2 // mag per airmass

// grey is a wavelength-independent atmosphere of the given extinction.
var grey = atmosphere.ProviderFunc(func(_ context.Context, _ atmosphere.Site, _ atmosphere.Weather, apparent float64) ([]float64, []float64, error) {
	t := numeric.MagToRatio(extinction * numeric.Secant(apparent))
	nm, y := testutil.Table(290, 1310, 11, testutil.Flat(t))
	return nm, y, nil
})

func testChain() Chain {
	return Chain{
		Star:      flux.NewPerArea("flat", spectrum.Constant(1e6)),
		Reflector: optics.NoFilter(),
		Telescope: optics.NewTelescope("unit", spectrum.Constant(1), 1, 0),
		Detector:  optics.NewDetector("half", spectrum.Constant(0.5)),
	}
}

func testAtmosphere(t *testing.T) *atmosphere.Atmosphere {
	t.Helper()
	site := atmosphere.Site{Name: "Test", ElevationM: 300, PollutionModel: 1, AerosolModel: "S&F_RURAL"}
	weather := atmosphere.Weather{
		AirTemperatureC:       10,
		RelativeHumidityPct:   50,
		Season:                atmosphere.SeasonSummer,
		MeanDailyTemperatureC: 10,
		PrecipitableWaterCm:   1,
		OzoneAtmCm:            0.3,
		VisibilityKm:          50,
	}
	a := atmosphere.New(site, weather, grey)
	if !a.Valid() {
		t.Fatal("expected valid atmosphere")
	}
	return a
}

// exoRate is the count rate of testChain with no atmosphere.
var exoRate = 1e6 * math.Pi / 4 * 0.5 * 1000

func TestCountsVectorExo(t *testing.T) {
	c := testChain()
	paths := atmosphere.Exo().MakeAirPaths(context.Background(), []float64{0, 30, -60})
	counts := CountsVector(c, paths, 2)
	if len(counts) != 3 {
		t.Fatalf("len = %d", len(counts))
	}
	for i, n := range counts {
		testutil.RequireNear(t, "counts", n/(2*exoRate), 1, 1e-9)
		if i > 0 && n != counts[0] {
			t.Fatal("exo counts should not depend on angle")
		}
	}
	testutil.RequireNear(t, "ExoCounts", ExoCounts(c, 2)/(2*exoRate), 1, 1e-9)
}

func TestCountsVectorThroughAir(t *testing.T) {
	c := testChain()
	atm := testAtmosphere(t)
	paths := atm.MakeAirPaths(context.Background(), []float64{10, 95, 60})
	counts := CountsVector(c, paths, 1)
	if counts[1] != 0 {
		t.Fatalf("invalid path counted %v", counts[1])
	}
	if !(counts[0] > counts[2] && counts[2] > 0) {
		t.Fatalf("counts = %v", counts)
	}
	want := exoRate * paths[2].Y(5000)
	testutil.RequireNear(t, "60 deg", counts[2]/want, 1, 1e-9)

	all := CountsVector(c, paths, 1, WithZeroAllOnInvalidAirPath())
	for i, n := range all {
		if n != 0 {
			t.Fatalf("entry %d = %v, want 0 under zero-all policy", i, n)
		}
	}
}

func TestCountsVectorInvalidChain(t *testing.T) {
	paths := atmosphere.Exo().MakeAirPaths(context.Background(), []float64{0, 45})
	tests := []struct {
		name    string
		chain   func() Chain
		seconds float64
	}{
		{name: "negative exposure", chain: testChain, seconds: -1},
		{name: "invalid star", chain: func() Chain {
			c := testChain()
			c.Star = flux.NewPerArea("bad", spectrum.Invalid())
			return c
		}, seconds: 1},
		{name: "invalid front filter", chain: func() Chain {
			c := testChain()
			c.FrontFilter = optics.NeutralDensity(2)
			return c
		}, seconds: 1},
		{name: "invalid rear filter", chain: func() Chain {
			c := testChain()
			c.RearFilter = optics.NeutralDensity(-1)
			return c
		}, seconds: 1},
		{name: "no telescope", chain: func() Chain {
			c := testChain()
			c.Telescope = nil
			return c
		}, seconds: 1},
		{name: "invalid detector", chain: func() Chain {
			c := testChain()
			c.Detector = optics.NewDetector("bad", spectrum.Invalid())
			return c
		}, seconds: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i, n := range CountsVector(tt.chain(), paths, tt.seconds) {
				if n != 0 {
					t.Fatalf("entry %d = %v, want 0", i, n)
				}
			}
		})
	}
}

func TestChainFilters(t *testing.T) {
	c := testChain()
	c.FrontFilter = optics.NeutralDensity(0.5)
	c.RearFilter = optics.NeutralDensity(0.1)
	testutil.RequireNear(t, "filtered", c.CountRate(nil)/exoRate, 0.05, 1e-9)
	if !c.Valid() {
		t.Fatal("expected valid chain")
	}
}

func TestInstrumentalMagnitudes(t *testing.T) {
	mags := InstrumentalMagnitudes([]float64{1000, 0, -5, 10}, 10)
	testutil.RequireNear(t, "100/s", mags[0], -5, 1e-12)
	testutil.RequireNear(t, "1/s", mags[3], 0, 1e-12)
	if !math.IsNaN(mags[1]) || !math.IsNaN(mags[2]) {
		t.Fatalf("non-positive counts should give NaN, got %v", mags)
	}
	if m := InstrumentalMagnitudes([]float64{1}, 0); !math.IsNaN(m[0]) {
		t.Fatal("zero exposure should give NaN")
	}
}

func TestAirmassSeriesAndExtinction(t *testing.T) {
	c := testChain()
	atm := testAtmosphere(t)
	obs := AirmassSeries(context.Background(), c, atm, []float64{1, 1.5, 2, 2.5, 0.5}, 30)
	if len(obs) != 5 {
		t.Fatalf("len = %d", len(obs))
	}
	testutil.RequireNear(t, "zenith at X=2", obs[2].ZenithDeg, 60, 1e-9)
	if obs[4].Valid || obs[4].Counts != 0 || !math.IsNaN(obs[4].InstrumentalMagnitude) {
		t.Fatalf("X=0.5 should be invalid, got %+v", obs[4])
	}
	for _, o := range obs[:4] {
		if !o.Valid {
			t.Fatalf("X=%v should be valid", o.Airmass)
		}
	}

	m0, k, err := FitExtinction(obs)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireNear(t, "k", k, extinction, 5e-3)
	testutil.RequireNear(t, "m0", m0, -2.5*math.Log10(exoRate), 1e-2)

	if _, _, err := FitExtinction(obs[4:]); !errors.Is(err, ErrTooFewObservations) {
		t.Fatalf("got %v, want ErrTooFewObservations", err)
	}
}
