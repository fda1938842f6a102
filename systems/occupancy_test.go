package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pthm-cable/gridsnake/components"
)

func TestOccupancy(t *testing.T) {
	occ := NewOccupancy(Grid{Width: 3, Height: 2})
	occ.Fill([]components.GridPos{pos(0, 0), pos(2, 1), pos(2, 1), pos(9, 9)})

	assert.True(t, occ.Occupied(pos(0, 0)))
	assert.True(t, occ.Occupied(pos(2, 1)))
	assert.False(t, occ.Occupied(pos(1, 0)))
	assert.True(t, occ.Occupied(pos(-1, 0)), "outside the grid counts as occupied")
	assert.Equal(t, 4, occ.FreeCount())
	assert.Equal(t, []components.GridPos{pos(1, 0), pos(2, 0), pos(0, 1), pos(1, 1)}, occ.AppendFree(nil))

	occ.Clear()
	assert.Equal(t, 6, occ.FreeCount())
}
