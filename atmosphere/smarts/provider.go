package smarts

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/cwbudde/algo-photometry/atmosphere"
	"github.com/cwbudde/algo-photometry/internal/metrics"
)

// Staging file names, fixed by the executable.
const (
	InputFile  = "smarts295.inp.txt"
	ExtFile    = "smarts295.ext.txt"
	OutFile    = "smarts295.out.txt"
	Executable = "smarts295bat"
)

// metricsName labels this provider in the metrics package.
const metricsName = "smarts"

var (
	ErrNoOutput = errors.New("smarts: no transmittance output")
	ErrTimeout  = errors.New("smarts: run timed out")
)

// Provider runs SMARTS in a staging directory. It is safe for concurrent
// use; calls are serialized.
type Provider struct {
	mu      sync.Mutex
	dir     string
	exe     string
	timeout time.Duration
	co2     float64
	logger  *slog.Logger
}

// Option configures a Provider.
type Option func(*Provider)

// WithExecutable overrides the executable, relative to the staging
// directory unless absolute.
func WithExecutable(name string) Option {
	return func(p *Provider) {
		if name != "" {
			p.exe = name
		}
	}
}

// WithTimeout bounds a single run. The default is 30 s.
func WithTimeout(d time.Duration) Option {
	return func(p *Provider) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// WithCO2 sets the CO2 mixing ratio in ppmv.
func WithCO2(ppmv float64) Option {
	return func(p *Provider) {
		if ppmv > 0 {
			p.co2 = ppmv
		}
	}
}

// WithLogger sets the logger for run diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(p *Provider) {
		if l != nil {
			p.logger = l
		}
	}
}

// New returns a provider staging its files in dir.
func New(dir string, opts ...Option) *Provider {
	p := &Provider{
		dir:     dir,
		exe:     Executable,
		timeout: 30 * time.Second,
		co2:     DefaultCO2,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

// Dir returns the staging directory.
func (p *Provider) Dir() string { return p.dir }

// Transmission implements atmosphere.Provider.
func (p *Provider) Transmission(ctx context.Context, site atmosphere.Site, weather atmosphere.Weather, apparentZenithDeg float64) ([]float64, []float64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	start := time.Now()
	nm, t, err := p.run(ctx, site, weather, apparentZenithDeg)
	outcome := metrics.OutcomeOK
	switch {
	case errors.Is(err, ErrTimeout):
		outcome = metrics.OutcomeTimeout
	case err != nil:
		outcome = metrics.OutcomeError
	}
	metrics.ObserveProviderCall(metricsName, outcome, time.Since(start))

	if err != nil {
		return nil, nil, err
	}
	p.logger.Debug("smarts run",
		"site", site.Name, "apparent_deg", apparentZenithDeg, "points", len(nm), "elapsed", time.Since(start))
	return nm, t, nil
}

func (p *Provider) run(ctx context.Context, site atmosphere.Site, weather atmosphere.Weather, apparentZenithDeg float64) ([]float64, []float64, error) {
	if err := p.writeInput(site, weather, apparentZenithDeg); err != nil {
		return nil, nil, err
	}
	for _, name := range []string{ExtFile, OutFile} {
		if err := os.Remove(filepath.Join(p.dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, nil, fmt.Errorf("smarts: clear %s: %w", name, err)
		}
	}

	runCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	exe := p.exe
	if !filepath.IsAbs(exe) {
		exe = filepath.Join(p.dir, exe)
	}
	cmd := exec.CommandContext(runCtx, exe)
	cmd.Dir = p.dir
	cmd.WaitDelay = time.Second
	// The batch build waits for Enter before exiting.
	cmd.Stdin = strings.NewReader("\n")
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
			return nil, nil, fmt.Errorf("%w after %s", ErrTimeout, p.timeout)
		}
		p.logger.Debug("smarts output", "output", out.String())
		return nil, nil, fmt.Errorf("smarts: run %s: %w", exe, err)
	}

	f, err := os.Open(filepath.Join(p.dir, ExtFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, fmt.Errorf("%w: %s not written", ErrNoOutput, ExtFile)
		}
		return nil, nil, err
	}
	defer f.Close()
	return ParseExt(f)
}

func (p *Provider) writeInput(site atmosphere.Site, weather atmosphere.Weather, apparentZenithDeg float64) error {
	f, err := os.Create(filepath.Join(p.dir, InputFile))
	if err != nil {
		return fmt.Errorf("smarts: create input: %w", err)
	}
	if err := WriteInput(f, site, weather, apparentZenithDeg, p.co2); err != nil {
		f.Close()
		return fmt.Errorf("smarts: write input: %w", err)
	}
	return f.Close()
}
