// Package grid maps a selection of logos onto the 4x4 display grid.
//
// Cell 0 always holds the fixed logo. Cells 1, 2, 3, 4, 8 and 12 (the rest
// of the first row and the first column) take the selection in order. All
// other cells are decorative.
package grid

const (
	Columns   = 4
	Rows      = 4
	CellCount = Columns * Rows
)

// Marker is the glyph shown in decorative cells.
const Marker = "•"

type Role string

const (
	RoleFixed      Role = "fixed"
	RoleDynamic    Role = "dynamic"
	RoleDecorative Role = "decorative"
)

// DynamicIndices lists the dynamic cells in fill order.
var DynamicIndices = [...]int{1, 2, 3, 4, 8, 12}

type Cell struct {
	Index int    `json:"index"`
	Role  Role   `json:"role"`
	Image string `json:"image,omitempty"`
	// Slot is the selection position for dynamic cells, -1 otherwise.
	Slot int `json:"slot"`
}

func (c Cell) Empty() bool {
	return c.Image == ""
}

func (c Cell) Row() int {
	return c.Index / Columns
}

func (c Cell) Col() int {
	return c.Index % Columns
}

// RoleAt returns the static role of a cell index.
func RoleAt(i int) Role {
	if i == 0 {
		return RoleFixed
	}
	for _, d := range DynamicIndices {
		if d == i {
			return RoleDynamic
		}
	}
	return RoleDecorative
}

// Render lays out the grid in row-major order. Dynamic cells beyond the
// end of selection are left empty.
func Render(fixedLogo string, selection []string) [CellCount]Cell {
	var cells [CellCount]Cell
	counter := 0
	for i := 0; i < CellCount; i++ {
		cell := Cell{Index: i, Role: RoleAt(i), Slot: -1}
		switch cell.Role {
		case RoleFixed:
			cell.Image = fixedLogo
		case RoleDynamic:
			cell.Slot = counter
			if counter < len(selection) {
				cell.Image = selection[counter]
			}
			counter++
		}
		cells[i] = cell
	}
	return cells
}
