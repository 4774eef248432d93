package factory

import (
	"strings"
	"testing"

	"github.com/automoto/marquee/components"
	"github.com/automoto/marquee/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestWrapText(t *testing.T) {
	if err := fonts.LoadDefaults(); err != nil {
		t.Fatal(err)
	}
	face := fonts.Regular.Face(14)
	long := "Experience the magic of seamless transitions and fluid animations"

	tests := []struct {
		name     string
		in       string
		maxWidth float64
		minLines int
		maxLines int
	}{
		{"empty", "   ", 100, 0, 0},
		{"fits", "Welcome to", 1000, 1, 1},
		{"wraps", long, 150, 2, 10},
		{"oversized word", "AppleInvitesAnimation", 10, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := WrapText(tt.in, face, tt.maxWidth)
			if len(lines) < tt.minLines || len(lines) > tt.maxLines {
				t.Fatalf("got %d lines %q, want %d..%d", len(lines), lines, tt.minLines, tt.maxLines)
			}
			if got := strings.Join(lines, " "); got != strings.Join(strings.Fields(tt.in), " ") {
				t.Errorf("rejoined %q, want the input words", got)
			}
			for _, l := range lines {
				if strings.Contains(l, " ") && text.Advance(l, face) > tt.maxWidth {
					t.Errorf("line %q is wider than %v", l, tt.maxWidth)
				}
			}
		})
	}
}

func TestCreateBackdropAndRetire(t *testing.T) {
	w := ecs.NewECS(donburi.NewWorld())
	entry := CreateBackdrop(w, 4)
	layer := components.Backdrop.Get(entry)
	if layer.Index != 4 || layer.Exiting {
		t.Fatalf("new layer = %+v", layer)
	}

	layer.Alpha, _ = layer.Fade.Update(0.5)
	RetireBackdrop(layer)
	if !layer.Exiting {
		t.Fatal("layer not exiting after retire")
	}
	// The fade-out starts from where the fade-in stopped.
	if got, _ := layer.Fade.Update(0); got != layer.Alpha {
		t.Errorf("fade-out starts at %v, want %v", got, layer.Alpha)
	}

	fade := layer.Fade
	RetireBackdrop(layer)
	if layer.Fade != fade {
		t.Error("retiring twice restarted the fade")
	}
}

func TestCreateStripStartsAboveAndHidden(t *testing.T) {
	w := ecs.NewECS(donburi.NewWorld())
	strip := components.Strip.Get(CreateStrip(w, 400))
	if strip.Opacity != 0 {
		t.Errorf("opacity = %v, want 0", strip.Opacity)
	}
	if strip.ShiftY != -200 {
		t.Errorf("shift = %v, want -200", strip.ShiftY)
	}
	for i := 0; i < 200; i++ {
		strip.Opacity, _ = strip.Fade.Update(1.0 / 60)
		strip.ShiftY, _ = strip.Drop.Update(1.0 / 60)
	}
	if strip.Opacity != 1 || strip.ShiftY != 0 {
		t.Errorf("after entrance opacity=%v shift=%v, want 1 and 0", strip.Opacity, strip.ShiftY)
	}
}
