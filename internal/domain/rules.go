package domain

// The run counters below all start from (row, col) and count that cell too.
// An empty starting cell always yields 0.

// downRun counts matching cells from (row, col) towards the bottom edge.
// Looking down is enough: tokens only ever land on top of a column.
func downRun(grid Grid, row, col int) int {
	player := grid[row][col]
	if player == Empty {
		return 0
	}
	count := 0
	for r := row; r < Rows && grid[r][col] == player; r++ {
		count++
	}
	return count
}

// horizontalRun joins the run to the left and the run to the right
func horizontalRun(grid Grid, row, col int) int {
	player := grid[row][col]
	if player == Empty {
		return 0
	}
	left := 0
	for c := col; c >= 0 && grid[row][c] == player; c-- {
		left++
	}
	right := 0
	for c := col; c < Columns && grid[row][c] == player; c++ {
		right++
	}
	// the starting cell was counted on both sides
	return left + right - 1
}

// diagonalRun walks downwards, to the right for step 1 and to the left for step -1
func diagonalRun(grid Grid, row, col, step int) int {
	player := grid[row][col]
	if player == Empty {
		return 0
	}
	count := 0
	for r, c := row, col; r < Rows && c >= 0 && c < Columns && grid[r][c] == player; r, c = r+1, c+step {
		count++
	}
	return count
}
