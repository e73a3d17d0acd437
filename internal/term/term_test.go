package term

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pascman/internal/component"
	"pascman/internal/config"
	"pascman/internal/game"
	"pascman/internal/gamemap"
	"pascman/internal/protocol"
	"pascman/internal/render"
)

func newSimScreen(t *testing.T) tcell.Screen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, ss.Init())
	ss.SetSize(80, 24)
	t.Cleanup(ss.Fini)
	return ss
}

func newFrontend(t *testing.T, opts ...Option) *Frontend {
	t.Helper()
	l, err := gamemap.Parse(strings.NewReader("#.#\n#@#\n#.#"), gamemap.Options{})
	require.NoError(t, err)
	cfg := config.Default()
	cfg.Game.VillainBehavior = config.BehaviorRemote
	sim := game.New(l, cfg, game.WithClock(game.NewManualClock(time.Unix(0, 0))))
	t.Cleanup(sim.Close)
	s := newSimScreen(t)
	return New(s, render.NewRenderer(s, render.ThemeByName("ascii")), sim, time.Millisecond, opts...)
}

func heroPos(t *testing.T, f *Frontend) component.Position {
	t.Helper()
	w := f.sim.World()
	heroes := w.Query(component.CHero)
	require.Len(t, heroes, 1)
	return w.Get(heroes[0], component.CPosition).(component.Position)
}

func key(k tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(k, r, tcell.ModNone)
}

func TestKeyToInput(t *testing.T) {
	tests := []struct {
		name   string
		ev     *tcell.EventKey
		action Action
		dir    component.Direction
	}{
		{"arrow up", key(tcell.KeyUp, 0), ActionMove, component.Up},
		{"arrow left", key(tcell.KeyLeft, 0), ActionMove, component.Left},
		{"vi down", key(tcell.KeyRune, 'j'), ActionMove, component.Down},
		{"wasd right", key(tcell.KeyRune, 'd'), ActionMove, component.Right},
		{"escape", key(tcell.KeyEscape, 0), ActionQuit, component.Down},
		{"q", key(tcell.KeyRune, 'q'), ActionQuit, component.Down},
		{"space", key(tcell.KeyRune, ' '), ActionKey, component.Down},
		{"enter", key(tcell.KeyEnter, 0), ActionKey, component.Down},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, dir := keyToInput(tt.ev)
			assert.Equal(t, tt.action, action)
			if action == ActionMove {
				assert.Equal(t, tt.dir, dir)
			}
		})
	}
}

func TestInputRemoteNeverSteers(t *testing.T) {
	assert.Equal(t, game.Step(component.Up), input(ActionMove, component.Up, false))
	assert.Equal(t, game.AnyKey(), input(ActionMove, component.Up, true))
	assert.Equal(t, game.AnyKey(), input(ActionKey, component.Down, false))
	assert.Equal(t, game.Input{}, input(ActionNone, component.Down, false))
}

func TestMoveKeySteersHero(t *testing.T) {
	f := newFrontend(t)
	require.Equal(t, component.Position{X: 1, Y: 1}, heroPos(t, f))

	assert.False(t, f.handle(key(tcell.KeyUp, 0)))
	require.NoError(t, f.tick())
	assert.Equal(t, component.Position{X: 1, Y: 0}, heroPos(t, f))

	// Input is consumed by the tick.
	require.NoError(t, f.tick())
	assert.Equal(t, component.Position{X: 1, Y: 0}, heroPos(t, f))
}

func TestOtherKeyKeepsPendingMove(t *testing.T) {
	f := newFrontend(t)
	f.handle(key(tcell.KeyLeft, 0))
	f.handle(key(tcell.KeyUp, 0))
	f.handle(key(tcell.KeyRune, ' '))
	assert.Equal(t, game.Input{Dir: component.Up, Move: true, Key: true}, f.pending)

	require.NoError(t, f.tick())
	assert.Equal(t, component.Position{X: 1, Y: 0}, heroPos(t, f))
}

func TestProtocolModeForwardsDirection(t *testing.T) {
	var out bytes.Buffer
	f := newFrontend(t, WithDirections(&out))

	f.handle(key(tcell.KeyRune, 'k'))
	require.NoError(t, f.tick())

	want := protocol.EncodeDirection(component.Up)
	assert.Equal(t, want[:], out.Bytes())
	assert.Equal(t, component.Position{X: 1, Y: 1}, heroPos(t, f), "the server moves the hero")

	require.NoError(t, f.tick())
	assert.Len(t, out.Bytes(), 4, "nothing is sent without a key")
}

func TestQuitKey(t *testing.T) {
	f := newFrontend(t)
	assert.True(t, f.handle(key(tcell.KeyEscape, 0)))
	assert.True(t, f.handle(key(tcell.KeyRune, 'Q')))
}

func TestResizeForcesRedraw(t *testing.T) {
	f := newFrontend(t)
	require.NoError(t, f.tick())
	require.False(t, f.dirty)

	f.handle(tcell.NewEventResize(80, 24))
	assert.True(t, f.dirty)
	require.NoError(t, f.tick())
	assert.False(t, f.dirty)
	assert.Equal(t, f.sim.Frame().Fingerprint, f.drawn)
}

func TestRunStopsOnCancel(t *testing.T) {
	f := newFrontend(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- f.Run(ctx) }()

	time.Sleep(10 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
