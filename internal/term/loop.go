// Package term drives a Simulation from a terminal: it polls keys, ticks
// at a fixed rate and redraws when the world changed.
package term

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"pascman/internal/component"
	"pascman/internal/game"
	"pascman/internal/protocol"
	"pascman/internal/render"
)

// Frontend couples a screen, a renderer and a simulation.
type Frontend struct {
	screen   tcell.Screen
	renderer *render.Renderer
	sim      *game.Simulation
	interval time.Duration
	out      io.Writer // directions are written here in protocol mode
	log      *zap.Logger

	pending game.Input
	dir     component.Direction
	steer   bool
	drawn   uint64
	dirty   bool
	fault   error
}

// Option configures a Frontend.
type Option func(*Frontend)

// WithDirections makes the frontend forward direction keys to w as
// protocol direction frames instead of steering locally.
func WithDirections(w io.Writer) Option {
	return func(f *Frontend) { f.out = w }
}

// WithLogger sets the logger; the default discards.
func WithLogger(l *zap.Logger) Option {
	return func(f *Frontend) { f.log = l }
}

// New creates a Frontend ticking sim every interval.
func New(screen tcell.Screen, renderer *render.Renderer, sim *game.Simulation, interval time.Duration, opts ...Option) *Frontend {
	f := &Frontend{
		screen:   screen,
		renderer: renderer,
		sim:      sim,
		interval: interval,
		log:      zap.NewNop(),
		dirty:    true,
	}
	for _, o := range opts {
		o(f)
	}
	return f
}

// Run blocks until ctx is cancelled, the player quits or the screen
// closes. Quitting is not an error.
func (f *Frontend) Run(ctx context.Context) error {
	eventCh := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				close(eventCh)
				return
			}
			select {
			case eventCh <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	f.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-eventCh:
			if !ok {
				return nil
			}
			if quit := f.handle(ev); quit {
				return nil
			}
		case <-ticker.C:
			if err := f.tick(); err != nil {
				return err
			}
		}
	}
}

// handle records the event for the next tick and reports whether the
// player asked to quit.
func (f *Frontend) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		f.screen.Sync()
		f.renderer.Resize()
		f.dirty = true
	case *tcell.EventKey:
		action, dir := keyToInput(ev)
		if action == ActionQuit {
			return true
		}
		in := input(action, dir, f.out != nil)
		// The last move key of the tick steers; other keys only mark a press.
		if in.Move {
			f.pending.Dir, f.pending.Move = in.Dir, true
		}
		f.pending.Key = f.pending.Key || in.Key
		if action == ActionMove {
			f.dir, f.steer = dir, true
		}
	}
	return false
}

// tick advances the simulation by one step, forwards the steering
// direction in protocol mode and redraws when the frame changed.
func (f *Frontend) tick() error {
	if f.out != nil && f.steer {
		b := protocol.EncodeDirection(f.dir)
		if _, err := f.out.Write(b[:]); err != nil {
			return fmt.Errorf("write direction: %w", err)
		}
	}
	f.sim.Tick(f.pending)
	f.pending, f.steer = game.Input{}, false
	if err := f.sim.Fault(); err != nil && err != f.fault {
		f.log.Warn("tick fault", zap.Error(err))
	}
	f.fault = f.sim.Fault()
	f.draw()
	return nil
}

func (f *Frontend) draw() {
	fr := f.sim.Frame()
	if !f.dirty && fr.Fingerprint == f.drawn {
		return
	}
	f.renderer.Draw(fr)
	f.drawn, f.dirty = fr.Fingerprint, false
}
