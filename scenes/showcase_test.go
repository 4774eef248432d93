package scenes

import (
	"context"
	"errors"
	"image"
	"testing"
	"time"

	"github.com/automoto/marquee/fonts"
	"github.com/automoto/marquee/marquee"
	"github.com/automoto/marquee/preload"
)

func TestShowcaseDisposeCancelsPreload(t *testing.T) {
	if err := fonts.LoadDefaults(); err != nil {
		t.Fatal(err)
	}
	geo, err := marquee.NewGeometry(390, 0.62, 1.67, 16, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	loader := preload.New(preload.Options{
		Fetcher: preload.FetcherFunc(func(ctx context.Context, _ string) ([]byte, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		}),
		Process: func(image.Image) (image.Image, image.Image, error) { return nil, nil, nil },
	})
	s := NewShowcaseScene(geo, loader, []string{"a", "b"})

	s.Update()
	m, ok := s.Marquee()
	if !ok {
		t.Fatal("no marquee after first update")
	}
	if m.Mounted {
		t.Fatal("mounted while preload is pending")
	}

	s.Dispose()
	select {
	case <-loader.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("preload did not settle after dispose")
	}
	if loader.State() != preload.StateFailed || !errors.Is(loader.Err(), context.Canceled) {
		t.Errorf("state=%v err=%v, want failed with context.Canceled", loader.State(), loader.Err())
	}
	if !m.Scroller.Stopped() || m.Tracker.IsOpen() {
		t.Error("driver still running after dispose")
	}

	s.Update()
	if m.Mounted {
		t.Error("mounted after dispose")
	}
}
