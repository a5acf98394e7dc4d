package smarts

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cwbudde/algo-photometry/atmosphere"
)

// DefaultCO2 is the CO2 mixing ratio in ppmv written to card 7.
const DefaultCO2 = 384.0

// WriteInput writes the SMARTS input cards for a direct-beam transmittance
// run towards apparentZenithDeg. Card numbers follow the SMARTS 2.9.5
// user's manual.
func WriteInput(w io.Writer, site atmosphere.Site, weather atmosphere.Weather, apparentZenithDeg, co2 float64) error {
	bw := bufio.NewWriter(w)
	line := func(format string, args ...any) {
		fmt.Fprintf(bw, format+"\n", args...)
	}

	// 1: comment; SMARTS splits on spaces.
	line("'Site_%s,_zA=%.3f_deg_(photsim)'", strings.ReplaceAll(site.Name, " ", "_"), apparentZenithDeg)
	// 2, 2a: site latitude, elevation and height in km.
	line("2")
	line("%.3f %.3f %.3f", site.LatitudeDeg, site.ElevationM/1000, site.HeightM/1000)
	// 3, 3a: atmosphere from site conditions.
	line("0")
	line("%.3f %.3f '%s' %.3f", weather.AirTemperatureC, weather.RelativeHumidityPct, weather.Season, weather.MeanDailyTemperatureC)
	// 4, 4a: precipitable water.
	line("0")
	line("%.3f", weather.PrecipitableWaterCm)
	// 5, 5a: ozone, altitude corrected.
	line("0")
	line("1  %.3f", weather.OzoneAtmCm)
	// 6, 6a: gaseous absorption and pollution.
	line("0")
	line("%d", site.PollutionModel)
	// 7, 7a: CO2 and extraterrestrial spectrum.
	line("%g ! Card 7: CO2 ppmv", co2)
	line("0")
	// 8: aerosol model.
	line("%s", site.AerosolModel)
	// 9, 9a: turbidity from visibility.
	line("4")
	line("%.3f", weather.VisibilityKm)
	// 10, 10b, 10c: dry long grass albedo; tilted surface facing the source.
	line("51")
	line("1")
	line("51 %.3f 180", apparentZenithDeg)
	// 11: spectral range and solar constant.
	line("290 1310 1 1367")
	// 12, 12a, 12b, 12c: print transmittance every 0.5 nm.
	line("2")
	line("290 1310 0.5")
	line("7")
	line("21 15 16 17 18 19 20")
	// 13-16: no circumsolar, smoothing, illuminance or UV.
	line("0")
	line("0")
	line("0")
	line("0")
	// 17, 17a: solar position from apparent elevation and azimuth.
	line("1")
	line("%.3f 180", 90-apparentZenithDeg)

	return bw.Flush()
}
