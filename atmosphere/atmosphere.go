package atmosphere

import (
	"context"
	"math"

	"github.com/cwbudde/algo-photometry/catalog"
	"github.com/cwbudde/algo-photometry/internal/metrics"
	"github.com/cwbudde/algo-photometry/internal/numeric"
	"github.com/cwbudde/algo-photometry/spectrum"
)

// Atmosphere is a site with adjustable weather. Weather setters affect only
// air paths made afterwards. An Atmosphere is not safe for concurrent
// mutation.
type Atmosphere struct {
	site     Site
	weather  Weather
	exo      bool
	valid    bool
	provider Provider
	cfg      Config
}

// Exo returns a perfectly transparent, always valid atmosphere.
func Exo(opts ...Option) *Atmosphere {
	return &Atmosphere{
		site:  Site{Name: ExoSiteName},
		exo:   true,
		valid: true,
		cfg:   ApplyOptions(opts...),
	}
}

// New returns an atmosphere for site under weather. It is invalid if any
// input is out of range or provider is nil.
func New(site Site, weather Weather, provider Provider, opts ...Option) *Atmosphere {
	a := &Atmosphere{
		site:     site,
		weather:  weather,
		provider: provider,
		cfg:      ApplyOptions(opts...),
	}
	err := Validate(site, weather)
	if err != nil {
		a.cfg.Logger.Debug("invalid atmosphere", "site", site.Name, "err", err)
	}
	a.valid = err == nil && provider != nil
	return a
}

// FromSiteRecords parses the seven data records of a site description and
// builds an atmosphere from them. A parse failure yields an invalid
// atmosphere.
func FromSiteRecords(name string, records []string, provider Provider, opts ...Option) *Atmosphere {
	site, weather, err := ParseSite(name, records)
	if err != nil {
		a := &Atmosphere{site: Site{Name: name}, provider: provider, cfg: ApplyOptions(opts...)}
		a.cfg.Logger.Debug("unreadable site", "site", name, "err", err)
		return a
	}
	return New(site, weather, provider, opts...)
}

// Load reads site name from the site collection of src.
func Load(src catalog.RecordSource, name string, provider Provider, opts ...Option) *Atmosphere {
	records, err := src.Records(catalog.Site, name, SiteRecords)
	if err != nil {
		a := &Atmosphere{site: Site{Name: name}, provider: provider, cfg: ApplyOptions(opts...)}
		a.cfg.Logger.Debug("site lookup failed", "site", name, "err", err)
		return a
	}
	return FromSiteRecords(name, records, provider, opts...)
}

// Valid reports whether construction succeeded.
func (a *Atmosphere) Valid() bool { return a.valid }

// IsExo reports whether a is exo-atmospheric.
func (a *Atmosphere) IsExo() bool { return a.exo }

// Site returns the site description.
func (a *Atmosphere) Site() Site { return a.site }

// Weather returns the current weather.
func (a *Atmosphere) Weather() Weather { return a.weather }

// InputsValid re-checks the current site and weather against the SMARTS
// limits. It is always true for an exo-atmosphere.
func (a *Atmosphere) InputsValid() bool {
	return a.exo || Validate(a.site, a.weather) == nil
}

// SetAirTemperature sets the air temperature in °C.
func (a *Atmosphere) SetAirTemperature(c float64) { a.weather.AirTemperatureC = c }

// SetRelativeHumidity sets the relative humidity in percent.
func (a *Atmosphere) SetRelativeHumidity(pct float64) { a.weather.RelativeHumidityPct = pct }

// SetSeason sets the season, SeasonWinter or SeasonSummer.
func (a *Atmosphere) SetSeason(season string) { a.weather.Season = season }

// SetMeanDailyTemperature sets the mean daily temperature in °C.
func (a *Atmosphere) SetMeanDailyTemperature(c float64) { a.weather.MeanDailyTemperatureC = c }

// SetPrecipitableWater sets the precipitable water column in cm.
func (a *Atmosphere) SetPrecipitableWater(cm float64) { a.weather.PrecipitableWaterCm = cm }

// SetOzone sets the ozone column in atm·cm.
func (a *Atmosphere) SetOzone(atmCm float64) { a.weather.OzoneAtmCm = atmCm }

// SetVisibility sets the visibility in km.
func (a *Atmosphere) SetVisibility(km float64) { a.weather.VisibilityKm = km }

// ApparentZenithAngle applies the configured refraction at this site's
// elevation and current air temperature.
func (a *Atmosphere) ApparentZenithAngle(geometricZenithDeg float64) float64 {
	return ApparentZenithAngle(geometricZenithDeg, a.weather.AirTemperatureC, a.site.ElevationM, a.cfg.RefractionFraction)
}

// MakeAirPathAtZenithAngle builds the air path towards zenith angle deg.
// The signed angle is stored; transmission depends on its magnitude. Angles
// beyond ±90° give an invalid path with zero transmission. An
// exo-atmosphere yields a valid path of unit transmission for every finite
// or infinite angle, including those beyond ±90°. A NaN angle yields an
// invalid path for every atmosphere, exo included.
func (a *Atmosphere) MakeAirPathAtZenithAngle(ctx context.Context, deg float64) AirPath {
	switch {
	case math.IsNaN(deg):
		return a.newAirPath(deg, spectrum.Invalid())
	case a.exo:
		return a.newAirPath(deg, spectrum.Constant(1))
	case math.Abs(deg) > 90 || !a.valid:
		return a.newAirPath(deg, spectrum.Invalid())
	}
	return a.newAirPath(deg, a.transmission(ctx, math.Abs(deg)))
}

// MakeAirPaths makes one air path per zenith angle, in order.
func (a *Atmosphere) MakeAirPaths(ctx context.Context, degs []float64) []AirPath {
	out := make([]AirPath, len(degs))
	for i, deg := range degs {
		out[i] = a.MakeAirPathAtZenithAngle(ctx, deg)
	}
	return out
}

// transmission returns the clipped transmission at zenith angle z >= 0.
// Below the minimum angle the provider is called at the minimum and each
// sample is rescaled as T^(sec z / sec zmin).
func (a *Atmosphere) transmission(ctx context.Context, z float64) spectrum.Spectrum {
	request := math.Max(z, a.cfg.MinimumZenithAngle)
	apparent := a.ApparentZenithAngle(request)

	nm, t, err := a.provider.Transmission(ctx, a.site, a.weather, apparent)
	if err != nil {
		a.cfg.Logger.Warn("transmission provider failed",
			"site", a.site.Name, "zenith_deg", z, "apparent_deg", apparent, "err", err)
		return spectrum.Invalid()
	}
	if i := firstNonFinite(nm, t); i >= 0 {
		a.cfg.Logger.Warn("non-finite transmission sample",
			"site", a.site.Name, "zenith_deg", z, "index", i)
		return spectrum.Invalid()
	}
	raw := spectrum.FromSamples(nm, t).ClipTo(0, 1)
	if !raw.Valid() {
		a.cfg.Logger.Warn("unusable transmission table",
			"site", a.site.Name, "zenith_deg", z, "points", len(nm))
		return raw
	}
	if request == z {
		return raw
	}

	ratio := numeric.Secant(z) / numeric.Secant(request)
	a.cfg.Logger.Debug("near-zenith correction",
		"site", a.site.Name, "zenith_deg", z, "computed_at_deg", request, "absorbance_ratio", ratio)
	return raw.Map(func(v float64) float64 {
		return math.Min(math.Max(math.Pow(v, ratio), 0), 1)
	})
}

// firstNonFinite returns the index of the first NaN or infinite sample in
// either slice, or -1.
func firstNonFinite(xs ...[]float64) int {
	for _, x := range xs {
		for i, v := range x {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return i
			}
		}
	}
	return -1
}

func (a *Atmosphere) newAirPath(deg float64, s spectrum.Spectrum) AirPath {
	p := AirPath{
		site:    a.site,
		weather: a.weather,
		zenith:  deg,
		s:       s,
		valid:   a.valid && s.Valid(),
	}
	metrics.CountAirPath(p.valid)
	return p
}
