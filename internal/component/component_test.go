package component

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTowards(t *testing.T) {
	cases := []struct {
		name   string
		dx, dy int
		want   Direction
		ok     bool
	}{
		{"right", 3, 0, Right, true},
		{"left", -1, 0, Left, true},
		{"horizontal wins over vertical", 1, -5, Right, true},
		{"down", 0, 2, Down, true},
		{"up", 0, -1, Up, true},
		{"zero", 0, 0, Down, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Towards(tc.dx, tc.dy)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestStepCanLeaveTheGrid(t *testing.T) {
	p := Position{X: 0, Y: 0}
	assert.Equal(t, Position{X: -1, Y: 0}, p.Step(Left))
	assert.Equal(t, Position{X: 0, Y: -1}, p.Step(Up))
	assert.Equal(t, Position{X: 0, Y: 1}, p.Step(Down))
}

func TestRoleComponents(t *testing.T) {
	assert.Equal(t, CHunter, RoleHunter.ComponentType())
	assert.Equal(t, CVictim, RoleVictim.Component().Type())
}

func TestBrainDue(t *testing.T) {
	t0 := time.Unix(100, 0)
	b := Brain{NextAt: t0}
	assert.True(t, b.Due(t0))
	assert.False(t, b.Due(t0.Add(-time.Nanosecond)))
}

func TestRenderableGlyph(t *testing.T) {
	r := Renderable{Glyphs: [4]rune{'v', '>', '<', '^'}}
	assert.Equal(t, '^', r.Glyph(Up))
	assert.Equal(t, 'v', r.Glyph(Direction(9)))
}
