// Package preload warms every carousel image before anything animated is
// shown. The gate opens only when all images arrived and decoded; any single
// failure settles it as failed.
package preload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"log"
	"sync"

	// Decoders for the formats an image CDN hands back.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"
)

var ErrNoImages = errors.New("preload: no images")

// Asset is one warmed image, already prepared for drawing.
type Asset struct {
	Index    int
	URI      string
	Card     image.Image
	Backdrop image.Image
}

// Processor turns a decoded source image into its card and backdrop
// renditions. It runs on the preload goroutines, never on the UI goroutine.
type Processor func(src image.Image) (card, backdrop image.Image, err error)

type Options struct {
	Fetcher Fetcher
	Cache   *Cache // nil disables caching
	Process Processor
}

// Preloader runs one all-or-nothing preload. All methods are safe to call
// from the UI goroutine while the preload is in flight.
type Preloader struct {
	opts Options

	mu      sync.Mutex
	state   State
	err     error
	assets  []Asset
	started bool
	cancel  context.CancelFunc
	done    chan struct{}
}

func New(opts Options) *Preloader {
	return &Preloader{
		opts: opts,
		done: make(chan struct{}),
	}
}

// Start kicks off one fetch per URI in the background. Calling it again is a no-op.
func (p *Preloader) Start(ctx context.Context, uris []string) {
	p.mu.Lock()
	if p.started || p.state.Settled() {
		p.mu.Unlock()
		return
	}
	p.started = true
	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.mu.Unlock()

	go p.run(ctx, uris)
}

func (p *Preloader) run(ctx context.Context, uris []string) {
	defer close(p.done)
	defer p.cancel()

	if len(uris) == 0 {
		p.settle(nil, ErrNoImages)
		return
	}

	assets := make([]Asset, len(uris))
	g, gctx := errgroup.WithContext(ctx)
	for i, uri := range uris {
		g.Go(func() error {
			a, err := p.load(gctx, i, uri)
			if err != nil {
				return fmt.Errorf("image %d (%s): %w", i, uri, err)
			}
			assets[i] = a
			return nil
		})
	}
	p.settle(assets, g.Wait())
}

func (p *Preloader) load(ctx context.Context, index int, uri string) (Asset, error) {
	var (
		data   []byte
		cached bool
	)
	if p.opts.Cache != nil {
		data, cached = p.opts.Cache.Get(uri)
	}
	if !cached {
		if p.opts.Fetcher == nil {
			return Asset{}, errors.New("no fetcher configured")
		}
		var err error
		data, err = p.opts.Fetcher.Fetch(ctx, uri)
		if err != nil {
			return Asset{}, fmt.Errorf("fetch: %w", err)
		}
	}
	if err := ctx.Err(); err != nil {
		return Asset{}, err
	}

	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Asset{}, fmt.Errorf("decode: %w", err)
	}
	if !cached && p.opts.Cache != nil {
		p.opts.Cache.Put(uri, data)
	}

	a := Asset{Index: index, URI: uri, Card: src, Backdrop: src}
	if p.opts.Process != nil {
		a.Card, a.Backdrop, err = p.opts.Process(src)
		if err != nil {
			return Asset{}, fmt.Errorf("process %s: %w", format, err)
		}
	}
	return a, nil
}

// settle moves the gate out of Pending. Later calls are ignored.
func (p *Preloader) settle(assets []Asset, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state.Settled() {
		return
	}
	if err != nil {
		p.state = StateFailed
		p.err = err
		log.Printf("[preload] error preloading images: %v", err)
		return
	}
	p.state = StateReady
	p.assets = assets
}

// Cancel aborts any in-flight fetches. A preload that had not finished
// settles as failed.
func (p *Preloader) Cancel() {
	p.mu.Lock()
	if !p.started {
		p.started = true
		p.mu.Unlock()
		p.settle(nil, context.Canceled)
		close(p.done)
		return
	}
	cancel := p.cancel
	p.mu.Unlock()
	cancel()
}

func (p *Preloader) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Err returns the failure that settled the gate, if any.
func (p *Preloader) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

// Assets returns the prepared images in source order once the gate is ready, nil otherwise.
func (p *Preloader) Assets() []Asset {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != StateReady {
		return nil
	}
	out := make([]Asset, len(p.assets))
	copy(out, p.assets)
	return out
}

// Done is closed once the preload has settled.
func (p *Preloader) Done() <-chan struct{} {
	return p.done
}
