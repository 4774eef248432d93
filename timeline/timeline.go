// Package timeline runs fire-and-forget value transitions (fades, slides,
// staggered reveals) on top of gween tweens. A Timeline is a descriptor; a
// Player steps one through time on the update goroutine.
package timeline

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Timeline describes a single transition: hold at From for Delay, then ease
// to To over Duration.
type Timeline struct {
	Delay    time.Duration
	Duration time.Duration
	Ease     ease.TweenFunc
	From     float64
	To       float64
}

// Player advances a Timeline.
type Player struct {
	tl      Timeline
	wait    float64 // seconds of delay left
	tween   *gween.Tween
	current float64
	done    bool
}

func (tl Timeline) Play() *Player {
	p := &Player{
		tl:      tl,
		wait:    tl.Delay.Seconds(),
		current: tl.From,
	}
	if tl.Duration <= 0 {
		return p
	}
	fn := tl.Ease
	if fn == nil {
		fn = ease.Linear
	}
	p.tween = gween.New(float32(tl.From), float32(tl.To), float32(tl.Duration.Seconds()), fn)
	return p
}

// Update moves the player forward by dt seconds and returns the value and
// whether the transition has finished.
func (p *Player) Update(dt float64) (float64, bool) {
	if p.done {
		return p.current, true
	}
	if p.wait > 0 {
		p.wait -= dt
		if p.wait > 0 {
			return p.current, false
		}
		// Carry the overshoot into the tween.
		dt = -p.wait
		p.wait = 0
	}
	if p.tween == nil {
		p.current, p.done = p.tl.To, true
		return p.current, true
	}
	v, finished := p.tween.Update(float32(dt))
	p.current = float64(v)
	if finished {
		p.current, p.done = p.tl.To, true
	}
	return p.current, p.done
}

func (p *Player) Value() float64 {
	return p.current
}

func (p *Player) Done() bool {
	return p.done
}

// Started reports whether the delay has elapsed.
func (p *Player) Started() bool {
	return p.wait <= 0
}

// Stagger returns one Timeline per element: the first starts after initial,
// each following one stagger later. Every element shares the template's
// duration, easing and range.
func Stagger(count int, initial, stagger time.Duration, template Timeline) []Timeline {
	out := make([]Timeline, count)
	for i := range out {
		tl := template
		tl.Delay = initial + time.Duration(i)*stagger
		out[i] = tl
	}
	return out
}
