package smarts

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/cwbudde/algo-photometry/atmosphere"
	"github.com/cwbudde/algo-photometry/internal/metrics"
)

var _ atmosphere.Provider = (*Provider)(nil)

// fakeSmarts installs a shell script in place of the executable.
func fakeSmarts(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script executable")
	}
	dir := t.TempDir()
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(filepath.Join(dir, Executable), []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	return dir
}

const writeTable = `grep -q "51 29.984 180" ` + InputFile + ` || exit 3
printf 'Wvlgth Transmittance\n300 0.80\n500 0.90\n800 0.95\n1300 0.99\n' > ` + ExtFile

func TestTransmission(t *testing.T) {
	dir := fakeSmarts(t, writeTable)
	// stale output from an earlier run must be removed
	if err := os.WriteFile(filepath.Join(dir, OutFile), []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}
	calls := metrics.ProviderCalls(metricsName, metrics.OutcomeOK)
	before := testutil.ToFloat64(calls)

	p := New(dir)
	nm, tr, err := p.Transmission(context.Background(), testSite, testWeather, 29.9837)
	if err != nil {
		t.Fatal(err)
	}
	if len(nm) != 4 || nm[1] != 500 || tr[3] != 0.99 {
		t.Fatalf("nm=%v t=%v", nm, tr)
	}
	if _, err := os.Stat(filepath.Join(dir, OutFile)); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("stale %s not removed", OutFile)
	}
	input, err := os.ReadFile(filepath.Join(dir, InputFile))
	if err != nil || !strings.HasPrefix(string(input), "'Site_Far_Point") {
		t.Fatalf("input file: %q, %v", input, err)
	}
	if got := testutil.ToFloat64(calls) - before; got != 1 {
		t.Fatalf("ok calls = %v, want 1", got)
	}
}

func TestTransmissionThroughAtmosphere(t *testing.T) {
	dir := fakeSmarts(t, `printf 'h\n290 0.5\n600 0.6\n1000 0.7\n1310 0.8\n' > `+ExtFile)
	atm := atmosphere.New(testSite, testWeather, New(dir))
	path := atm.MakeAirPathAtZenithAngle(context.Background(), 45)
	if !path.Valid() {
		t.Fatal("expected a valid air path")
	}
	if v := path.Y(3000); v < 0.55 || v > 0.65 {
		t.Fatalf("T(600 nm) = %v", v)
	}
}

func TestTransmissionErrors(t *testing.T) {
	t.Run("no output", func(t *testing.T) {
		dir := fakeSmarts(t, "exit 0")
		if _, _, err := New(dir).Transmission(context.Background(), testSite, testWeather, 10); !errors.Is(err, ErrNoOutput) {
			t.Fatalf("got %v, want ErrNoOutput", err)
		}
	})
	t.Run("exit status", func(t *testing.T) {
		failed := metrics.ProviderCalls(metricsName, metrics.OutcomeError)
		before := testutil.ToFloat64(failed)
		dir := fakeSmarts(t, "exit 2")
		_, _, err := New(dir).Transmission(context.Background(), testSite, testWeather, 10)
		if err == nil || errors.Is(err, ErrNoOutput) {
			t.Fatalf("got %v, want exec error", err)
		}
		if got := testutil.ToFloat64(failed) - before; got != 1 {
			t.Fatalf("error calls = %v, want 1", got)
		}
	})
	t.Run("timeout", func(t *testing.T) {
		dir := fakeSmarts(t, "exec sleep 5")
		p := New(dir, WithTimeout(50*time.Millisecond))
		if _, _, err := p.Transmission(context.Background(), testSite, testWeather, 10); !errors.Is(err, ErrTimeout) {
			t.Fatalf("got %v, want ErrTimeout", err)
		}
	})
	t.Run("missing executable", func(t *testing.T) {
		p := New(t.TempDir(), WithExecutable("does-not-exist"))
		if _, _, err := p.Transmission(context.Background(), testSite, testWeather, 10); err == nil {
			t.Fatal("expected error")
		}
	})
}
