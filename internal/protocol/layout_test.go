package protocol

import (
	"strings"
	"testing"

	"pascman/internal/gamemap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutMessages(t *testing.T) {
	l, err := gamemap.Parse(strings.NewReader("#@.\n"), gamemap.Options{})
	require.NoError(t, err)

	msgs := LayoutMessages(1, l)
	require.Len(t, msgs, 1+3+2)
	assert.Equal(t, Registration{Player: 1}, msgs[0])
	assert.Equal(t, Spawn{ID: 3, Item: ItemWall, X: 0, Y: 0}, msgs[1])
	assert.Equal(t, Spawn{ID: 4, Item: ItemFloor, X: 1, Y: 0}, msgs[2])
	assert.Equal(t, Spawn{ID: 9, Item: ItemPlayer1, X: 1, Y: 0}, msgs[4])
	assert.Equal(t, Spawn{ID: 2, Item: ItemFood, X: 2, Y: 0}, msgs[5])
}
