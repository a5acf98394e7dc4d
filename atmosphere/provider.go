package atmosphere

import "context"

// Provider computes the clear-sky transmission of the air above a site
// towards an apparent zenith angle in degrees. It returns tabulated
// (wavelength nm, transmittance) pairs; at least four are required.
type Provider interface {
	Transmission(ctx context.Context, site Site, weather Weather, apparentZenithDeg float64) (wavelengthsNm, transmittance []float64, err error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ctx context.Context, site Site, weather Weather, apparentZenithDeg float64) ([]float64, []float64, error)

// Transmission implements Provider.
func (f ProviderFunc) Transmission(ctx context.Context, site Site, weather Weather, apparentZenithDeg float64) ([]float64, []float64, error) {
	return f(ctx, site, weather, apparentZenithDeg)
}
