package main

import (
	"bytes"
	stdimage "image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ajroetker/pixelwise/hwy"
	"github.com/ajroetker/pixelwise/hwy/contrib/image"
)

func TestParseBackend(t *testing.T) {
	tests := []struct {
		name string
		want hwy.Capabilities
	}{
		{"scalar", hwy.ScalarOnly},
		{"128", hwy.Capabilities{Has128: true}},
		{"256", hwy.Capabilities{Has256: true}},
		{"512", hwy.Capabilities{Has512: true}},
		{"auto", hwy.Detected()},
		{"SCALAR", hwy.ScalarOnly},
	}
	for _, tt := range tests {
		got, err := parseBackend(tt.name)
		if err != nil || got != tt.want {
			t.Errorf("parseBackend(%q) = %v, %v; want %v", tt.name, got, err, tt.want)
		}
	}
	if _, err := parseBackend("1024"); err == nil {
		t.Error("parseBackend(1024) should fail")
	}
}

func TestBackendCaps(t *testing.T) {
	got := backendCaps(hwy.AllWidths)
	want := []hwy.Capabilities{{Has512: true}, {Has256: true}, {Has128: true}, hwy.ScalarOnly}
	if len(got) != len(want) {
		t.Fatalf("backendCaps = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("backendCaps[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := newLogger(&buf, "warn", "json")
	if err != nil {
		t.Fatal(err)
	}
	l.Info("hidden")
	l.Warn("shown", "k", 1)
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, `"msg":"shown"`) {
		t.Errorf("json warn logger output = %q", out)
	}

	if _, err := newLogger(&buf, "loud", "text"); err == nil {
		t.Error("unknown level should fail")
	}
	if _, err := newLogger(&buf, "info", "xml"); err == nil {
		t.Error("unknown format should fail")
	}
}

func TestLookupOps(t *testing.T) {
	ops, err := lookupOps(nil)
	if err != nil || len(ops) != len(cliOps) {
		t.Errorf("lookupOps(nil) = %d ops, %v", len(ops), err)
	}
	ops, err = lookupOps([]string{"AND", "range"})
	if err != nil || len(ops) != 2 || ops[0].name != "and" || ops[1].arity != 1 {
		t.Errorf("lookupOps(AND, range) = %v, %v", ops, err)
	}
	if _, err := lookupOp("blend"); err == nil || !strings.Contains(err.Error(), "absdiff") {
		t.Errorf("lookupOp(blend) error = %v", err)
	}
}

func TestMeanStdDev(t *testing.T) {
	mean, sd := meanStdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if mean != 5 {
		t.Errorf("mean = %v, want 5", mean)
	}
	if sd < 2.13 || sd > 2.14 {
		t.Errorf("sd = %v, want ~2.138", sd)
	}
	if m, s := meanStdDev([]float64{3}); m != 3 || s != 0 {
		t.Errorf("single value = %v, %v", m, s)
	}
}

func TestRunVerify(t *testing.T) {
	checks, err := runVerify(hwy.AllWidths, 20, 7)
	if err != nil {
		t.Fatalf("runVerify: %v", err)
	}
	// 10 operations and one sum per iteration, three vector backends each.
	if want := 20 * (len(cliOps)*2 + 1) * 3; checks != want {
		t.Errorf("checks = %d, want %d", checks, want)
	}

	checks, err = runVerify(hwy.ScalarOnly, 5, 1)
	if err != nil || checks != 0 {
		t.Errorf("scalar-only verify = %d, %v", checks, err)
	}
}

func TestRunBench(t *testing.T) {
	ops, _ := lookupOps([]string{"and", "threshold"})
	var buf bytes.Buffer
	err := runBench(&buf, benchConfig{
		sizes: []int{16, 1024},
		runs:  2,
		ops:   ops,
		caps:  hwy.Capabilities{Has128: true},
		seed:  1,
	})
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"mean ms", "threshold", "128bit", "scalar", "1,024"} {
		if !strings.Contains(out, want) {
			t.Errorf("bench output missing %q:\n%s", want, out)
		}
	}
	if err := runBench(&buf, benchConfig{sizes: []int{8}, runs: 0, ops: ops}); err == nil {
		t.Error("zero runs should fail")
	}
}

func writePNG(t *testing.T, path string, w, h int, value uint8) {
	t.Helper()
	g := stdimage.NewGray(stdimage.Rect(0, 0, w, h))
	for i := range g.Pix {
		g.Pix[i] = value
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, g); err != nil {
		t.Fatal(err)
	}
}

func TestApplyCommand(t *testing.T) {
	dir := t.TempDir()
	in1 := filepath.Join(dir, "a.png")
	in2 := filepath.Join(dir, "b.png")
	writePNG(t, in1, 17, 3, 0xFF)
	writePNG(t, in2, 17, 3, 0x0F)

	for _, ext := range []string{".png", ".bmp", ".tiff"} {
		out := filepath.Join(dir, "and"+ext)
		rootCmd.SetArgs([]string{"apply", "and", "--in", in1, "--in2", in2, "--out", out, "--log-level", "error"})
		if err := rootCmd.Execute(); err != nil {
			t.Fatalf("apply and%s: %v", ext, err)
		}
		img, err := readGray(out)
		if err != nil {
			t.Fatalf("read back %s: %v", out, err)
		}
		if img.Width() != 17 || img.Height() != 3 || img.At(16, 2, 0) != 0x0F {
			t.Errorf("%s: %dx%d value %#x", ext, img.Width(), img.Height(), img.At(16, 2, 0))
		}
	}
}

func TestWriteGrayRejectsUnknownExtension(t *testing.T) {
	if err := writeGray(filepath.Join(t.TempDir(), "x.gif"), image.NewImage(2, 2)); err == nil {
		t.Error("writeGray(.gif) should fail")
	}
}

func TestToGrayConvertsColor(t *testing.T) {
	src := stdimage.NewRGBA(stdimage.Rect(5, 5, 7, 7))
	src.Set(6, 6, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	g := toGray(src)
	if g.Bounds().Dx() != 2 || g.GrayAt(1, 1).Y != 255 || g.GrayAt(0, 0).Y != 0 {
		t.Errorf("toGray = %v", g.Pix)
	}
}

func TestPrintInfo(t *testing.T) {
	var buf bytes.Buffer
	printInfo(&buf, hwy.Capabilities{Has128: true, Has256: true})
	out := buf.String()
	for _, want := range []string{"dispatch level", "selected:       128+256", "256bit", "scalar"} {
		if !strings.Contains(out, want) {
			t.Errorf("info output missing %q:\n%s", want, out)
		}
	}
}
