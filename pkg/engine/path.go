package engine

// Board grid dimensions.
const (
	GridRows = 3
	GridCols = 8
)

// Cell is a grid coordinate on the visual board.
type Cell struct {
	Row int
	Col int
}

// privateLane lists the path indices of a player's own row, column by column.
var privateLane = [GridCols]int{4, 3, 2, 1, 0, 15, 14, 13}

// sharedLane lists the path indices of the middle row, column by column.
var sharedLane = [GridCols]int{5, 6, 7, 8, 9, 10, 11, 12}

// Topology maps grid cells to path indices and back, per player.
// It is built once and never mutated.
type Topology struct {
	gridToPath [2][GridRows][GridCols]int8
	pathToGrid [2][PathLength]Cell
}

// Path is the board topology shared by every game.
var Path = newTopology()

func newTopology() *Topology {
	t := &Topology{}
	for p := range t.gridToPath {
		for r := range t.gridToPath[p] {
			for c := range t.gridToPath[p][r] {
				t.gridToPath[p][r][c] = -1
			}
		}
	}

	privateRow := [2]int{First: 0, Second: 2}
	for _, p := range []Player{First, Second} {
		for col := 0; col < GridCols; col++ {
			t.gridToPath[p][privateRow[p]][col] = int8(privateLane[col])
			t.gridToPath[p][1][col] = int8(sharedLane[col])
		}
		// Reverse direction by inversion.
		for r := 0; r < GridRows; r++ {
			for c := 0; c < GridCols; c++ {
				if idx := t.gridToPath[p][r][c]; idx >= 0 {
					t.pathToGrid[p][idx] = Cell{Row: r, Col: c}
				}
			}
		}
	}
	return t
}

// GridToPath returns the path index of a cell for the given player.
// ok is false when the cell is not part of that player's path.
func (t *Topology) GridToPath(p Player, row, col int) (idx int, ok bool) {
	if !validPlayer(p) || row < 0 || row >= GridRows || col < 0 || col >= GridCols {
		return 0, false
	}
	v := t.gridToPath[p][row][col]
	if v < 0 {
		return 0, false
	}
	return int(v), true
}

// PathToGrid returns the cell of a path index for the given player.
// The reserve (index 0) has no single cell and reports ok == false.
func (t *Topology) PathToGrid(p Player, idx int) (Cell, bool) {
	if !validPlayer(p) || idx <= Reserve || idx >= PathLength {
		return Cell{}, false
	}
	return t.pathToGrid[p][idx], true
}

// Cells returns every grid cell on the player's path, in path order 1-15.
func (t *Topology) Cells(p Player) []Cell {
	cells := make([]Cell, 0, PathLength-1)
	for idx := Reserve + 1; idx < PathLength; idx++ {
		c, ok := t.PathToGrid(p, idx)
		if ok {
			cells = append(cells, c)
		}
	}
	return cells
}

// ActiveCell resolves a clicked coordinate for the player to move.
func (b *Board) ActiveCell(row, col int) (int, error) {
	idx, ok := Path.GridToPath(b.Turn, row, col)
	if !ok {
		return 0, &GridError{Player: b.Turn, Row: row, Col: col}
	}
	return idx, nil
}

func validPlayer(p Player) bool {
	return p == First || p == Second
}
