package domain

// Board owns the grid and whose turn it is. It is not safe for concurrent use;
// the game loop is its only writer.
type Board struct {
	grid    Grid
	active  Cell
	lastRow int
	lastCol int
}

func NewBoard() *Board {
	return &Board{
		grid:    NewGrid(),
		active:  PlayerX,
		lastRow: -1,
		lastCol: -1,
	}
}

// NewBoardFromGrid loads an existing position. The grid is copied.
func NewBoardFromGrid(grid Grid, active Cell) (*Board, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	if !active.IsPlayer() {
		return nil, ErrInvalidSymbol
	}
	return &Board{
		grid:    grid.Copy(),
		active:  active,
		lastRow: -1,
		lastCol: -1,
	}, nil
}

// Place drops the active token into a 1-indexed column. It returns false and
// leaves the grid untouched when the column is out of range or already full.
func (b *Board) Place(column int) bool {
	if column < 1 || column > Columns {
		return false
	}
	col := column - 1

	// shifting the disk from top to bottom till it
	// reaches the end or another disk
	for row := Rows - 1; row >= 0; row-- {
		if b.grid[row][col] == Empty {
			b.grid[row][col] = b.active
			b.lastRow, b.lastCol = row, col
			return true
		}
	}

	return false
}

// HasWin reports whether any four-in-a-row exists on the board
func (b *Board) HasWin() bool {
	for col := 0; col < Columns; col++ {
		for row := 0; row < Rows; row++ {
			if downRun(b.grid, row, col) >= ToWin ||
				horizontalRun(b.grid, row, col) >= ToWin ||
				diagonalRun(b.grid, row, col, 1) >= ToWin ||
				diagonalRun(b.grid, row, col, -1) >= ToWin {
				return true
			}
		}
	}
	return false
}

// IsFull is the draw condition, only meaningful after HasWin came back false
func (b *Board) IsFull() bool {
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			if b.grid[row][col] == Empty {
				return false
			}
		}
	}
	return true
}

func (b *Board) SwitchActivePlayer() {
	b.active = b.active.Opponent()
}

func (b *Board) ActiveSymbol() Cell {
	return b.active
}

// Grid returns a copy, callers can't reach the live cells through it
func (b *Board) Grid() Grid {
	return b.grid.Copy()
}

// LastMove returns where the most recent token landed (0-indexed)
func (b *Board) LastMove() (row, column int, ok bool) {
	if b.lastRow < 0 {
		return -1, -1, false
	}
	return b.lastRow, b.lastCol, true
}
