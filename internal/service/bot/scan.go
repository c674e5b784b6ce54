package bot

import "github.com/iamasit07/4-in-a-row-console/internal/domain"

// The scans below look for three tokens of one player next to an empty cell.
// They return 1-indexed columns. The direction order, and the small
// differences between the win and block variants, decide which move the bot
// prefers when several lines are open, so keep them as they are.

// findWinningMove looks for a cell that completes four for player
func findWinningMove(grid domain.Grid, player domain.Cell) (int, bool) {
	for row := 0; row < domain.Rows; row++ {
		// left to right: P P P _
		for col := 0; col < domain.Columns-3; col++ {
			if grid[row][col] == player &&
				grid[row][col+1] == player &&
				grid[row][col+2] == player &&
				grid[row][col+3] == domain.Empty {
				return col + 4, true
			}
		}
		// right to left: _ P P P
		for col := domain.Columns - 1; col >= 3; col-- {
			if grid[row][col] == player &&
				grid[row][col-1] == player &&
				grid[row][col-2] == player &&
				grid[row][col-3] == domain.Empty {
				return col - 2, true
			}
		}
	}

	if col, ok := findVertical(grid, player); ok {
		return col, true
	}
	if col, ok := findDiagonal(grid, player, 1); ok {
		return col, true
	}
	return findDiagonal(grid, player, -1)
}

// findBlockingMove looks for a cell that stops opponent from completing four.
// Horizontally it only scans left to right but also accepts the gap in front
// of the run.
func findBlockingMove(grid domain.Grid, opponent domain.Cell) (int, bool) {
	for row := 0; row < domain.Rows; row++ {
		for col := 0; col < domain.Columns-3; col++ {
			three := grid[row][col] == opponent &&
				grid[row][col+1] == opponent &&
				grid[row][col+2] == opponent
			if !three {
				continue
			}
			if grid[row][col+3] == domain.Empty {
				return col + 4, true
			}
			if col != 0 && grid[row][col-1] == domain.Empty {
				return col, true
			}
		}
	}

	if col, ok := findVertical(grid, opponent); ok {
		return col, true
	}
	if col, ok := findDiagonal(grid, opponent, 1); ok {
		return col, true
	}
	return findDiagonal(grid, opponent, -1)
}

// findVertical scans each column bottom-up for three stacked tokens with room
// on top
func findVertical(grid domain.Grid, player domain.Cell) (int, bool) {
	for col := 0; col < domain.Columns; col++ {
		for row := domain.Rows - 1; row >= 3; row-- {
			if grid[row][col] == player &&
				grid[row-1][col] == player &&
				grid[row-2][col] == player &&
				grid[row-3][col] == domain.Empty {
				if row == domain.Rows-1 || grid[row+1][col] != domain.Empty {
					return col + 1, true
				}
			}
		}
	}
	return 0, false
}

// findDiagonal scans rising diagonals, towards the right for step 1 and
// towards the left for step -1. Only the end of the line is considered, a gap
// in the middle of a diagonal is never played. The completing cell has to
// rest on a token so the move lands where it is meant to.
func findDiagonal(grid domain.Grid, player domain.Cell, step int) (int, bool) {
	for row := domain.Rows - 1; row >= 3; row-- {
		for i := 0; i < domain.Columns-3; i++ {
			col := i
			if step < 0 {
				col = domain.Columns - 1 - i
			}
			if grid[row][col] != player ||
				grid[row-1][col+step] != player ||
				grid[row-2][col+2*step] != player ||
				grid[row-3][col+3*step] != domain.Empty {
				continue
			}
			if row != domain.Rows-1 && grid[row+1][col+step] == domain.Empty {
				continue
			}
			if grid[row-2][col+3*step] == domain.Empty {
				continue
			}
			return col + 3*step + 1, true
		}
	}
	return 0, false
}
