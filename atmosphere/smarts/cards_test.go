package smarts

import (
	"strings"
	"testing"

	"github.com/cwbudde/algo-photometry/atmosphere"
)

var (
	testSite = atmosphere.Site{
		Name:           "Far Point",
		LatitudeDeg:    38.89,
		ElevationM:     300,
		HeightM:        1,
		PollutionModel: 1,
		AerosolModel:   "S&F_RURAL",
	}
	testWeather = atmosphere.Weather{
		AirTemperatureC:       20,
		RelativeHumidityPct:   50,
		Season:                atmosphere.SeasonSummer,
		MeanDailyTemperatureC: 18,
		PrecipitableWaterCm:   2.5,
		OzoneAtmCm:            0.31,
		VisibilityKm:          40,
	}
)

func TestWriteInput(t *testing.T) {
	var b strings.Builder
	if err := WriteInput(&b, testSite, testWeather, 29.9837, DefaultCO2); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	if len(lines) != 30 {
		t.Fatalf("got %d cards, want 30:\n%s", len(lines), b.String())
	}

	want := map[int]string{
		0:  "'Site_Far_Point,_zA=29.984_deg_(photsim)'",
		1:  "2",
		2:  "38.890 0.300 0.001",
		4:  "20.000 50.000 'SUMMER' 18.000",
		6:  "2.500",
		8:  "1  0.310",
		10: "1",
		11: "384 ! Card 7: CO2 ppmv",
		13: "S&F_RURAL",
		15: "40.000",
		18: "51 29.984 180",
		19: "290 1310 1 1367",
		21: "290 1310 0.5",
		23: "21 15 16 17 18 19 20",
		28: "1",
		29: "60.016 180",
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("card line %d = %q, want %q", i+1, lines[i], w)
		}
	}
}
