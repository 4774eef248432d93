package preload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.NRGBA{R: uint8(x), A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func testURIs(n int) []string {
	uris := make([]string, n)
	for i := range uris {
		uris[i] = fmt.Sprintf("https://images.example/%d.png", i)
	}
	return uris
}

func waitSettled(t *testing.T, p *Preloader) {
	t.Helper()
	select {
	case <-p.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("preload did not settle")
	}
}

type memStore struct {
	items map[string][]byte
}

func (s *memStore) LoadItem(key string) ([]byte, error) {
	return s.items[key], nil
}

func (s *memStore) SaveItem(key string, data []byte) error {
	s.items[key] = data
	return nil
}

func TestPreloadAllSucceed(t *testing.T) {
	data := pngBytes(t, 8, 4)
	var calls atomic.Int32
	p := New(Options{
		Fetcher: FetcherFunc(func(ctx context.Context, uri string) ([]byte, error) {
			calls.Add(1)
			return data, nil
		}),
	})
	uris := testURIs(7)
	p.Start(context.Background(), uris)
	waitSettled(t, p)

	if p.State() != StateReady {
		t.Fatalf("State() = %v, want ready (err %v)", p.State(), p.Err())
	}
	if calls.Load() != 7 {
		t.Errorf("fetched %d times, want 7", calls.Load())
	}
	assets := p.Assets()
	if len(assets) != 7 {
		t.Fatalf("len(Assets()) = %d, want 7", len(assets))
	}
	for i, a := range assets {
		if a.Index != i || a.URI != uris[i] {
			t.Errorf("asset %d = {%d %s}, out of source order", i, a.Index, a.URI)
		}
		if a.Card == nil || a.Backdrop == nil {
			t.Errorf("asset %d has no image", i)
		}
	}
}

func TestPreloadOneFailureFailsGate(t *testing.T) {
	data := pngBytes(t, 4, 4)
	p := New(Options{
		Fetcher: FetcherFunc(func(ctx context.Context, uri string) ([]byte, error) {
			if uri == "https://images.example/3.png" {
				return nil, errors.New("connection reset")
			}
			return data, nil
		}),
	})
	p.Start(context.Background(), testURIs(7))
	waitSettled(t, p)

	if p.State() != StateFailed {
		t.Fatalf("State() = %v, want failed", p.State())
	}
	if p.Err() == nil {
		t.Error("Err() = nil for a failed preload")
	}
	if p.Assets() != nil {
		t.Error("Assets() returned images for a failed preload")
	}
}

func TestPreloadDecodeFailure(t *testing.T) {
	p := New(Options{
		Fetcher: FetcherFunc(func(ctx context.Context, uri string) ([]byte, error) {
			return []byte("<html>not an image</html>"), nil
		}),
	})
	p.Start(context.Background(), testURIs(2))
	waitSettled(t, p)
	if p.State() != StateFailed {
		t.Errorf("State() = %v, want failed", p.State())
	}
}

func TestPreloadNoImages(t *testing.T) {
	p := New(Options{})
	p.Start(context.Background(), nil)
	waitSettled(t, p)
	if !errors.Is(p.Err(), ErrNoImages) {
		t.Errorf("Err() = %v, want ErrNoImages", p.Err())
	}
}

func TestPreloadCancel(t *testing.T) {
	started := make(chan struct{}, 7)
	p := New(Options{
		Fetcher: FetcherFunc(func(ctx context.Context, uri string) ([]byte, error) {
			started <- struct{}{}
			<-ctx.Done()
			return nil, ctx.Err()
		}),
	})
	p.Start(context.Background(), testURIs(3))
	<-started

	if p.State() != StatePending {
		t.Fatalf("State() = %v before cancel, want pending", p.State())
	}
	p.Cancel()
	waitSettled(t, p)
	if p.State() != StateFailed {
		t.Errorf("State() = %v after cancel, want failed", p.State())
	}
	if !errors.Is(p.Err(), context.Canceled) {
		t.Errorf("Err() = %v, want context.Canceled", p.Err())
	}
}

func TestPreloadCancelBeforeStart(t *testing.T) {
	p := New(Options{})
	p.Cancel()
	waitSettled(t, p)
	p.Start(context.Background(), testURIs(1))
	if p.State() != StateFailed {
		t.Errorf("State() = %v, want failed", p.State())
	}
}

func TestPreloadProcessor(t *testing.T) {
	data := pngBytes(t, 10, 10)
	small := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	p := New(Options{
		Fetcher: FetcherFunc(func(ctx context.Context, uri string) ([]byte, error) {
			return data, nil
		}),
		Process: func(src image.Image) (image.Image, image.Image, error) {
			return src, small, nil
		},
	})
	p.Start(context.Background(), testURIs(1))
	waitSettled(t, p)

	assets := p.Assets()
	if len(assets) != 1 || assets[0].Backdrop != small {
		t.Errorf("processor output not used: %+v", assets)
	}
}

func TestPreloadUsesWarmCache(t *testing.T) {
	data := pngBytes(t, 4, 4)
	store := &memStore{items: map[string][]byte{}}
	uris := testURIs(3)

	first := New(Options{
		Fetcher: FetcherFunc(func(ctx context.Context, uri string) ([]byte, error) {
			return data, nil
		}),
		Cache: NewCache(store),
	})
	first.Start(context.Background(), uris)
	waitSettled(t, first)
	if len(store.items) != 3 {
		t.Fatalf("disk store holds %d items, want 3", len(store.items))
	}

	// A fresh memory layer over the same disk store needs no network.
	second := New(Options{
		Fetcher: FetcherFunc(func(ctx context.Context, uri string) ([]byte, error) {
			return nil, errors.New("offline")
		}),
		Cache: NewCache(store),
	})
	second.Start(context.Background(), uris)
	waitSettled(t, second)
	if second.State() != StateReady {
		t.Errorf("State() = %v with a warm cache, want ready (err %v)", second.State(), second.Err())
	}
}

func TestCacheMemoryOnly(t *testing.T) {
	c := NewCache(nil)
	if _, ok := c.Get("a"); ok {
		t.Fatal("empty cache reported a hit")
	}
	c.Put("a", []byte{1})
	if got, ok := c.Get("a"); !ok || len(got) != 1 {
		t.Errorf("Get after Put = (%v, %v)", got, ok)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestHTTPFetcher(t *testing.T) {
	data := pngBytes(t, 2, 2)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(data)
	}))
	defer srv.Close()

	f := NewHTTPFetcher()
	got, err := f.Fetch(context.Background(), srv.URL+"/ok.png")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Error("Fetch returned different bytes")
	}

	if _, err := f.Fetch(context.Background(), srv.URL+"/missing"); err == nil {
		t.Error("Fetch of a 404 returned no error")
	}
}

func TestStateSettled(t *testing.T) {
	if StatePending.Settled() {
		t.Error("pending reported settled")
	}
	if !StateReady.Settled() || !StateFailed.Settled() {
		t.Error("terminal state reported unsettled")
	}
}
