package atmosphere

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-photometry/catalog"
)

// Season codes accepted by SMARTS.
const (
	SeasonWinter = "WINTER"
	SeasonSummer = "SUMMER"
)

// ExoSiteName names the site of an exo-atmospheric Atmosphere.
const ExoSiteName = "[No Atmosphere]"

// SiteRecords is the number of data records in a site description.
const SiteRecords = 7

var (
	ErrSiteRecord  = errors.New("atmosphere: malformed site record")
	ErrInputsRange = errors.New("atmosphere: input out of range")
)

// Site is the fixed description of an observing location.
type Site struct {
	Name           string
	LatitudeDeg    float64
	ElevationM     float64 // above sea level
	HeightM        float64 // above local ground
	PollutionModel int     // SMARTS pollution code, 1-5
	AerosolModel   string  // SMARTS aerosol model code
}

// Weather is the current, adjustable state of the air above a site.
type Weather struct {
	AirTemperatureC       float64
	RelativeHumidityPct   float64
	Season                string // SeasonWinter or SeasonSummer
	MeanDailyTemperatureC float64
	PrecipitableWaterCm   float64
	OzoneAtmCm            float64
	VisibilityKm          float64
}

// Validate reports the first site or weather value outside the limits
// SMARTS accepts, wrapped in ErrInputsRange.
func Validate(site Site, weather Weather) error {
	checks := []struct {
		ok   bool
		name string
		v    any
	}{
		{site.Name != "", "site name", site.Name},
		{math.Abs(site.LatitudeDeg) <= 90, "latitude", site.LatitudeDeg},
		{site.ElevationM >= -500 && site.ElevationM <= 8000, "elevation", site.ElevationM},
		{site.HeightM >= -10 && site.HeightM <= 100, "height", site.HeightM},
		{site.PollutionModel >= 1 && site.PollutionModel <= 5, "pollution model", site.PollutionModel},
		{len(site.AerosolModel) >= 2, "aerosol model", site.AerosolModel},
		{inRange(weather.AirTemperatureC, -100, 50), "air temperature", weather.AirTemperatureC},
		{inRange(weather.RelativeHumidityPct, 0, 100), "relative humidity", weather.RelativeHumidityPct},
		{weather.Season == SeasonWinter || weather.Season == SeasonSummer, "season", weather.Season},
		{inRange(weather.MeanDailyTemperatureC, -100, 50), "mean daily temperature", weather.MeanDailyTemperatureC},
		{inRange(weather.PrecipitableWaterCm, 0, 12), "precipitable water", weather.PrecipitableWaterCm},
		{inRange(weather.OzoneAtmCm, 0, 1), "ozone", weather.OzoneAtmCm},
		{inRange(weather.VisibilityKm, 1, 600), "visibility", weather.VisibilityKm},
	}
	for _, c := range checks {
		if !c.ok {
			return fmt.Errorf("%w: %s = %v", ErrInputsRange, c.name, c.v)
		}
	}
	return nil
}

func inRange(v, low, high float64) bool {
	return v >= low && v <= high
}

// ParseSite decodes the seven data records of a site description:
//
//	latitude/deg  elevation/km  height/km
//	pollution model code
//	aerosol model code
//	air temperature/C  relative humidity/%  season  mean daily temperature/C
//	precipitable water/cm
//	ozone/(atm·cm)
//	visibility/km
//
// The weather records are the site's defaults. Range checks are left to
// Validate.
func ParseSite(name string, records []string) (Site, Weather, error) {
	site := Site{Name: name}
	var w Weather
	if len(records) < SiteRecords {
		return site, w, fmt.Errorf("%w: want %d records, got %d", ErrSiteRecord, SiteRecords, len(records))
	}

	f, err := floats(records[0], 3)
	if err != nil {
		return site, w, fmt.Errorf("location: %w", err)
	}
	site.LatitudeDeg, site.ElevationM, site.HeightM = f[0], 1000*f[1], 1000*f[2]

	tok := catalog.Fields(records[1])
	if len(tok) < 1 {
		return site, w, fmt.Errorf("%w: empty pollution model", ErrSiteRecord)
	}
	if site.PollutionModel, err = strconv.Atoi(tok[0]); err != nil {
		return site, w, fmt.Errorf("%w: pollution model %q", ErrSiteRecord, tok[0])
	}

	tok = catalog.Fields(records[2])
	if len(tok) < 1 {
		return site, w, fmt.Errorf("%w: empty aerosol model", ErrSiteRecord)
	}
	site.AerosolModel = trimQuotes(tok[0])

	tok = catalog.Fields(records[3])
	if len(tok) < 4 {
		return site, w, fmt.Errorf("%w: weather record %q", ErrSiteRecord, records[3])
	}
	if w.AirTemperatureC, err = parseFloat(tok[0]); err != nil {
		return site, w, err
	}
	if w.RelativeHumidityPct, err = parseFloat(tok[1]); err != nil {
		return site, w, err
	}
	w.Season = trimQuotes(tok[2])
	if w.MeanDailyTemperatureC, err = parseFloat(tok[3]); err != nil {
		return site, w, err
	}

	for i, dst := range []*float64{&w.PrecipitableWaterCm, &w.OzoneAtmCm, &w.VisibilityKm} {
		f, err := floats(records[4+i], 1)
		if err != nil {
			return site, w, err
		}
		*dst = f[0]
	}
	return site, w, nil
}

func floats(record string, n int) ([]float64, error) {
	tok := catalog.Fields(record)
	if len(tok) < n {
		return nil, fmt.Errorf("%w: want %d values in %q", ErrSiteRecord, n, record)
	}
	out := make([]float64, n)
	for i := range out {
		v, err := parseFloat(tok[i])
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrSiteRecord, s)
	}
	return v, nil
}

// trimQuotes drops at most one single quote from each end.
func trimQuotes(s string) string {
	s = strings.TrimSuffix(s, "'")
	return strings.TrimPrefix(s, "'")
}
