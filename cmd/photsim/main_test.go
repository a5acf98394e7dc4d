package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-photometry/catalog"
	"github.com/cwbudde/algo-photometry/internal/export"
	"github.com/cwbudde/algo-photometry/spectrum"
)

const flat = "300 1\n600 1\n900 1\n1300 1\n"

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// writeCatalog lays out a flat star, a 1 m unobstructed telescope, a unit
// QE detector and a box passband.
func writeCatalog(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "pflux", "star.txt"), "Flat star\n"+flat)
	writeFile(t, filepath.Join(root, "telescope", "scope.txt"), "Scope\n1 0\n"+flat)
	writeFile(t, filepath.Join(root, "detector", "ccd.txt"), "Unit QE\n"+flat)
	writeFile(t, filepath.Join(root, "filter", "clear.txt"), "Clear\n"+flat)
	writeFile(t, filepath.Join(root, "passband", "box.txt"), "Box\n1e6\n"+flat)
	return root
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRunExo(t *testing.T) {
	root := writeCatalog(t)
	cfg := filepath.Join(t.TempDir(), "obs.yaml")
	writeFile(t, cfg, `catalog: `+root+`
observation:
  star: Flat star
  front_filter: Clear
  telescope: Scope
  detector: Unit QE
  exposure_seconds: 2
  airmasses: [1, 2]
`)

	out, _, err := execute(t, "run", "-c", cfg, "--metrics-addr", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	// 1000 photons/s/m² over π/4 m² for 2 s.
	for _, want := range []string{"Airmass", "Inst Mag", "1570.8", "Above atmosphere: 1570.8 counts", "Extinction fit:"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if n := strings.Count(out, "true"); n != 2 {
		t.Errorf("valid rows = %d, want 2:\n%s", n, out)
	}
}

func exoConfig(t *testing.T) string {
	t.Helper()
	root := writeCatalog(t)
	cfg := filepath.Join(t.TempDir(), "obs.yaml")
	writeFile(t, cfg, `catalog: `+root+`
observation:
  star: Flat star
  telescope: Scope
  detector: Unit QE
  airmasses: [1, 1.5, 2]
`)
	return cfg
}

func TestRunParquet(t *testing.T) {
	out := filepath.Join(t.TempDir(), "series.parquet")
	if _, _, err := execute(t, "run", "-c", exoConfig(t), "--parquet", out); err != nil {
		t.Fatalf("run: %v", err)
	}

	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	rows, err := export.ReadSeries(bytes.NewReader(b), int64(len(b)))
	if err != nil {
		t.Fatalf("ReadSeries: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	if r := rows[1]; r.Star != "Flat star" || r.Site != "[No Atmosphere]" || r.Airmass != 1.5 || !r.Valid {
		t.Errorf("row 1 = %+v", r)
	}
}

func TestAirpath(t *testing.T) {
	dir := t.TempDir()
	out, _, err := execute(t, "airpath", "-c", exoConfig(t), "-o", dir, "30")
	if err != nil {
		t.Fatalf("airpath: %v", err)
	}
	if !strings.Contains(out, "1.000000") || !strings.Contains(out, "airpath_z030.000.txt.gz") {
		t.Errorf("unexpected output:\n%s", out)
	}

	raw, err := catalog.NewDir(dir).Lookup(catalog.Filter, "Airpath [No Atmosphere] z=30")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if len(raw.Values) != spectrum.NPoints || raw.Values[0] != 1 || raw.Wavelengths[spectrum.NPoints-1] != spectrum.X(spectrum.NPoints-1) {
		t.Fatalf("stored table: %d points, first %v", len(raw.Values), raw.Values[0])
	}
}

func TestRunInvalidChain(t *testing.T) {
	root := writeCatalog(t)
	cfg := filepath.Join(t.TempDir(), "obs.yaml")
	writeFile(t, cfg, `catalog: `+root+`
observation:
  star: Flat star
  telescope: Missing scope
  detector: Unit QE
`)

	_, _, err := execute(t, "run", "-c", cfg)
	if err == nil || !strings.Contains(err.Error(), "telescope") {
		t.Fatalf("err = %v, want invalid telescope", err)
	}
}

func TestRunRequiresConfig(t *testing.T) {
	if _, _, err := execute(t, "run"); err == nil {
		t.Fatal("expected missing --config error")
	}
	if _, _, err := execute(t, "run", "-c", filepath.Join(t.TempDir(), "none.yaml")); err == nil {
		t.Fatal("expected error for a missing file")
	}
}

func TestRefraction(t *testing.T) {
	out, _, err := execute(t, "refraction", "-t", "10", "-e", "0", "--fraction", "1", "0", "45")
	if err != nil {
		t.Fatalf("refraction: %v", err)
	}
	for _, want := range []string{"Apparent [deg]", "0.016175", "44.983825", "1.0000"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if _, _, err := execute(t, "refraction", "abc"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestBlackbody(t *testing.T) {
	root := writeCatalog(t)
	out, _, err := execute(t, "blackbody", "--catalog", root, "-p", "Box", "5800")
	if err != nil {
		t.Fatalf("blackbody: %v", err)
	}
	if !strings.Contains(out, "5800") || !strings.Contains(out, "0.0000") {
		t.Errorf("unexpected output:\n%s", out)
	}

	if _, _, err := execute(t, "blackbody", "--catalog", root, "-p", "Box", "100"); err == nil {
		t.Fatal("expected error below the blackbody range")
	}
	if _, _, err := execute(t, "blackbody", "--catalog", root, "5800"); err == nil {
		t.Fatal("expected error without a passband")
	}
}

func TestLogFormat(t *testing.T) {
	if _, _, err := execute(t, "--log-format", "xml", "refraction", "0"); err == nil {
		t.Fatal("expected unknown log format error")
	}
}
