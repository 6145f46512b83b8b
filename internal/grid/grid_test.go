package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixed = "/img/logo.png"

func TestRoleAt(t *testing.T) {
	dynamic := map[int]bool{1: true, 2: true, 3: true, 4: true, 8: true, 12: true}
	for i := 0; i < CellCount; i++ {
		switch {
		case i == 0:
			assert.Equal(t, RoleFixed, RoleAt(i))
		case dynamic[i]:
			assert.Equal(t, RoleDynamic, RoleAt(i), "cell %d", i)
		default:
			assert.Equal(t, RoleDecorative, RoleAt(i), "cell %d", i)
		}
	}
}

func TestRender_FullSelection(t *testing.T) {
	sel := []string{"A", "B", "C", "D", "E", "F"}
	cells := Render(fixed, sel)

	assert.Equal(t, fixed, cells[0].Image)
	for slot, idx := range DynamicIndices {
		assert.Equal(t, sel[slot], cells[idx].Image, "cell %d", idx)
		assert.Equal(t, slot, cells[idx].Slot)
	}
	decorative := 0
	for i, c := range cells {
		assert.Equal(t, i, c.Index)
		if c.Role == RoleDecorative {
			decorative++
			assert.True(t, c.Empty(), "decorative cell %d shows %q", i, c.Image)
			assert.Equal(t, -1, c.Slot)
		}
	}
	assert.Equal(t, 9, decorative)
}

func TestRender_ShortSelection(t *testing.T) {
	cells := Render(fixed, []string{"A", "B", "C"})

	assert.Equal(t, "A", cells[1].Image)
	assert.Equal(t, "B", cells[2].Image)
	assert.Equal(t, "C", cells[3].Image)
	for _, idx := range []int{4, 8, 12} {
		assert.Equal(t, RoleDynamic, cells[idx].Role)
		assert.True(t, cells[idx].Empty(), "cell %d", idx)
	}
}

func TestRender_EmptySelection(t *testing.T) {
	cells := Render(fixed, nil)

	assert.Equal(t, fixed, cells[0].Image)
	for _, idx := range DynamicIndices {
		assert.True(t, cells[idx].Empty())
	}
}

func TestRender_Idempotent(t *testing.T) {
	sel := []string{"A", "B", "C", "D", "E", "F"}
	first := Render(fixed, sel)
	second := Render(fixed, sel)
	require.Equal(t, first, second)
}

func TestCellPosition(t *testing.T) {
	cells := Render(fixed, nil)
	assert.Equal(t, 0, cells[12].Col())
	assert.Equal(t, 3, cells[12].Row())
	assert.Equal(t, 3, cells[3].Col())
	assert.Equal(t, 0, cells[3].Row())
}
