package domain

import (
	"fmt"
	"strings"
)

// Grid holds the cells row by row, grid[0] is the top row
type Grid [][]Cell

func NewGrid() Grid {
	grid := make(Grid, Rows)
	for i := range grid {
		grid[i] = make([]Cell, Columns)
	}
	return grid
}

// ParseGrid builds a grid from one string per row (top first) using ' ', 'X'
// and 'O'. Mostly handy for loading fixed positions.
func ParseGrid(rows ...string) (Grid, error) {
	if len(rows) != Rows {
		return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrInvalidGrid, Rows, len(rows))
	}
	grid := NewGrid()
	for r, line := range rows {
		runes := []rune(line)
		if len(runes) != Columns {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidGrid, r, len(runes), Columns)
		}
		for c, ch := range runes {
			switch ch {
			case ' ', '.':
				grid[r][c] = Empty
			case 'X', 'x':
				grid[r][c] = PlayerX
			case 'O', 'o':
				grid[r][c] = PlayerO
			default:
				return nil, fmt.Errorf("%w: unexpected symbol %q at row %d column %d", ErrInvalidGrid, ch, r, c)
			}
		}
	}
	return grid, nil
}

// Validate checks the grid has the classic shape and only known cell values
func (g Grid) Validate() error {
	if g == nil {
		return ErrInvalidGrid
	}
	if len(g) != Rows {
		return fmt.Errorf("%w: expected %d rows, got %d", ErrInvalidGrid, Rows, len(g))
	}
	for r, row := range g {
		if len(row) != Columns {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidGrid, r, len(row), Columns)
		}
		for c, cell := range row {
			if cell != Empty && !cell.IsPlayer() {
				return fmt.Errorf("%w: unknown cell value %d at row %d column %d", ErrInvalidGrid, cell, r, c)
			}
		}
	}
	return nil
}

// this creates a deep copy of the grid
func (g Grid) Copy() Grid {
	if g == nil {
		return nil
	}
	newGrid := make(Grid, len(g))
	for i := range g {
		newGrid[i] = make([]Cell, len(g[i]))
		copy(newGrid[i], g[i])
	}
	return newGrid
}

func (g Grid) String() string {
	var sb strings.Builder
	for _, row := range g {
		for _, cell := range row {
			sb.WriteRune(cell.Symbol())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// IsValidMove reports whether the 0-indexed column can take another token.
// here grid[0] represents the top row, so only the top cell needs a look.
func IsValidMove(grid Grid, column int) (bool, error) {
	if err := grid.Validate(); err != nil {
		return false, err
	}
	return grid.CanDrop(column), nil
}

// CanDrop is IsValidMove for a grid that already passed Validate
func (g Grid) CanDrop(column int) bool {
	if column < 0 || column >= Columns {
		return false
	}
	return g[0][column] == Empty
}

// ValidMoves lists the 0-indexed columns that still have room
func ValidMoves(grid Grid) []int {
	validMoves := []int{}
	for col := 0; col < Columns; col++ {
		if grid.CanDrop(col) {
			validMoves = append(validMoves, col)
		}
	}
	return validMoves
}
