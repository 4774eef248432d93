package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// snapshot restores the globals after a test mutates them.
func snapshot(t *testing.T) {
	t.Helper()
	c, m, b, cp, g, d := *C, Marquee, Backdrop, Caption, Gallery, Debug
	g.Images = append([]string(nil), Gallery.Images...)
	t.Cleanup(func() {
		*C, Marquee, Backdrop, Caption, Gallery, Debug = c, m, b, cp, g, d
	})
}

func TestDefaultsValidate(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("default configuration invalid: %v", err)
	}
	if len(Gallery.Images) != 7 {
		t.Errorf("default gallery has %d images, want 7", len(Gallery.Images))
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func()
		want   string
	}{
		{"no images", func() { Gallery.Images = nil }, "no images"},
		{"zero width", func() { C.Width = 0 }, "window size"},
		{"zero ratio", func() { Marquee.ItemWidthRatio = 0 }, "item ratio"},
		{"negative gap", func() { Marquee.Gap = -1 }, "gap"},
		{"negative speed", func() { Marquee.ScrollSpeed = -5 }, "scroll speed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot(t)
			tt.mutate()
			err := Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %v, want error mentioning %q", err, tt.want)
			}
		})
	}
}

func TestImageURIs(t *testing.T) {
	g := GalleryConfig{
		Images: []string{"https://a.example/1", "https://a.example/2?x=1"},
		Query:  "w=800",
	}
	got := g.ImageURIs()
	want := []string{"https://a.example/1?w=800", "https://a.example/2?x=1&w=800"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ImageURIs()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestApplyOverlaysOnlyGivenKeys(t *testing.T) {
	snapshot(t)
	gap := Marquee.Gap
	err := Apply([]byte(`
[window]
width = 500

[marquee]
scroll_speed = 120.5

[gallery]
images = ["https://a.example/x"]
disk_cache = false
`))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if C.Width != 500 || C.Height != 844 {
		t.Errorf("window = %dx%d, want 500x844", C.Width, C.Height)
	}
	if Marquee.ScrollSpeed != 120.5 || Marquee.Gap != gap {
		t.Errorf("marquee speed %v gap %v", Marquee.ScrollSpeed, Marquee.Gap)
	}
	if len(Gallery.Images) != 1 || Gallery.DiskCache {
		t.Errorf("gallery = %+v", Gallery)
	}
}

func TestLoadFile(t *testing.T) {
	snapshot(t)
	path := filepath.Join(t.TempDir(), "marquee.toml")
	if err := os.WriteFile(path, []byte("[debug]\noverlay = true\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if !Debug.Overlay {
		t.Error("debug overlay not enabled from file")
	}

	if err := LoadFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("missing file accepted")
	}
	if err := Apply([]byte("[marquee\n")); err == nil {
		t.Error("malformed TOML accepted")
	}
}
