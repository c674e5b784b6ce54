package domain

import (
	"errors"
	"math/rand"
	"testing"
)

func mustGrid(t *testing.T, rows ...string) Grid {
	t.Helper()
	grid, err := ParseGrid(rows...)
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	return grid
}

func gridsEqual(a, b Grid) bool {
	if len(a) != len(b) {
		return false
	}
	for r := range a {
		if len(a[r]) != len(b[r]) {
			return false
		}
		for c := range a[r] {
			if a[r][c] != b[r][c] {
				return false
			}
		}
	}
	return true
}

// drawGrid is a full board without any four-in-a-row
var drawGrid = []string{
	"XOXOXOX",
	"XOXOXOX",
	"OXOXOXO",
	"OXOXOXO",
	"XOXOXOX",
	"XOXOXOX",
}

func TestNewBoardIsEmpty(t *testing.T) {
	b := NewBoard()

	if b.ActiveSymbol() != PlayerX {
		t.Fatalf("active=%v want X", b.ActiveSymbol())
	}
	grid := b.Grid()
	if len(grid) != Rows {
		t.Fatalf("rows=%d want %d", len(grid), Rows)
	}
	for r := range grid {
		for c := range grid[r] {
			if grid[r][c] != Empty {
				t.Fatalf("cell (%d,%d)=%v want empty", r, c, grid[r][c])
			}
		}
	}
	if b.HasWin() {
		t.Fatal("empty board reports a win")
	}
	if b.IsFull() {
		t.Fatal("empty board reports full")
	}
	if _, _, ok := b.LastMove(); ok {
		t.Fatal("empty board has a last move")
	}
}

func TestPlaceValidColumns(t *testing.T) {
	b := NewBoard()
	for col := 1; col <= Columns; col++ {
		if !b.Place(col) {
			t.Fatalf("Place(%d) rejected on an empty board", col)
		}
		row, c, ok := b.LastMove()
		if !ok || row != Rows-1 || c != col-1 {
			t.Fatalf("Place(%d) landed at (%d,%d) want (%d,%d)", col, row, c, Rows-1, col-1)
		}
	}
}

func TestPlaceRejectsOutOfRange(t *testing.T) {
	b := NewBoard()
	b.Place(4)
	before := b.Grid()

	for _, col := range []int{0, -1, -10, 8, 10, 77, 9999} {
		if b.Place(col) {
			t.Errorf("Place(%d) accepted", col)
		}
		if !gridsEqual(before, b.Grid()) {
			t.Fatalf("Place(%d) changed the grid", col)
		}
	}
}

func TestPlaceRejectsFullColumn(t *testing.T) {
	b := NewBoard()
	for i := 0; i < Rows; i++ {
		if !b.Place(3) {
			t.Fatalf("placement %d rejected", i)
		}
		b.SwitchActivePlayer()
	}
	before := b.Grid()
	active := b.ActiveSymbol()

	if b.Place(3) {
		t.Fatal("Place accepted a token in a full column")
	}
	if !gridsEqual(before, b.Grid()) {
		t.Fatal("rejected placement changed the grid")
	}
	if b.ActiveSymbol() != active {
		t.Fatal("rejected placement changed the active symbol")
	}
}

func TestPlaceKeepsColumnsBottomAnchored(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	b := NewBoard()

	for i := 0; i < 200; i++ {
		if b.Place(rng.Intn(Columns+2) - 1) {
			b.SwitchActivePlayer()
		}

		grid := b.Grid()
		for col := 0; col < Columns; col++ {
			seenEmpty := false
			for row := Rows - 1; row >= 0; row-- {
				if grid[row][col] == Empty {
					seenEmpty = true
				} else if seenEmpty {
					t.Fatalf("floating token at (%d,%d) after %d placements:\n%s", row, col, i, grid)
				}
			}
		}
	}
}

func TestHasWinScenario(t *testing.T) {
	b := NewBoard()
	moves := []int{1, 1, 2, 2, 3, 3, 4}

	for i, col := range moves {
		if !b.Place(col) {
			t.Fatalf("move %d (column %d) rejected", i, col)
		}
		if i == len(moves)-1 {
			break
		}
		if b.HasWin() {
			t.Fatalf("win reported after move %d:\n%s", i, b.Grid())
		}
		b.SwitchActivePlayer()
	}

	if !b.HasWin() {
		t.Fatalf("no win after the last move:\n%s", b.Grid())
	}
	if b.ActiveSymbol() != PlayerX {
		t.Fatalf("active=%v want X", b.ActiveSymbol())
	}
}

func TestHasWin(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want bool
	}{
		{
			name: "empty",
			rows: []string{"       ", "       ", "       ", "       ", "       ", "       "},
			want: false,
		},
		{
			name: "horizontal",
			rows: []string{"       ", "       ", "     X ", "    XX ", "   XXX ", "  OOOO "},
			want: true,
		},
		{
			name: "vertical",
			rows: []string{"       ", "       ", "     O ", "    XO ", "   XXO ", "  OOXO "},
			want: true,
		},
		{
			name: "diagonal down-left",
			rows: []string{"       ", "       ", "     X ", "    XO ", "   XOO ", "  XOXO "},
			want: true,
		},
		{
			name: "diagonal down-right",
			rows: []string{"       ", "       ", " O     ", " XO    ", " XXO   ", " XOXO  "},
			want: true,
		},
		{
			name: "three only",
			rows: []string{"       ", "       ", "       ", "   O   ", "   OX  ", " XXOXO "},
			want: false,
		},
		{
			name: "full without a line",
			rows: drawGrid,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBoardFromGrid(mustGrid(t, tt.rows...), PlayerX)
			if err != nil {
				t.Fatalf("NewBoardFromGrid: %v", err)
			}
			if got := b.HasWin(); got != tt.want {
				t.Errorf("HasWin()=%v want %v\n%s", got, tt.want, b.Grid())
			}
		})
	}
}

func TestIsFull(t *testing.T) {
	b := NewBoard()
	for i := 0; i < Rows; i++ {
		for j := 0; j < Columns; j++ {
			if b.IsFull() {
				t.Fatalf("full after %d placements", i*Columns+j)
			}
			if !b.Place(j + 1) {
				t.Fatalf("Place(%d) rejected", j+1)
			}
		}
	}
	if !b.IsFull() {
		t.Fatal("IsFull()=false on a filled board")
	}

	b, err := NewBoardFromGrid(mustGrid(t, drawGrid...), PlayerX)
	if err != nil {
		t.Fatalf("NewBoardFromGrid: %v", err)
	}
	if !b.IsFull() {
		t.Fatal("IsFull()=false on the draw grid")
	}
}

func TestSwitchActivePlayer(t *testing.T) {
	b := NewBoard()
	b.SwitchActivePlayer()
	if b.ActiveSymbol() != PlayerO {
		t.Fatalf("active=%v want O", b.ActiveSymbol())
	}
	b.SwitchActivePlayer()
	if b.ActiveSymbol() != PlayerX {
		t.Fatalf("active=%v want X", b.ActiveSymbol())
	}
}

func TestGridReturnsCopy(t *testing.T) {
	b := NewBoard()
	grid := b.Grid()
	grid[Rows-1][0] = PlayerO

	if b.Grid()[Rows-1][0] != Empty {
		t.Fatal("writing to Grid() reached the board")
	}
}

func TestNewBoardFromGridRejectsMalformed(t *testing.T) {
	ragged := NewGrid()
	ragged[2] = ragged[2][:3]

	badCell := NewGrid()
	badCell[5][5] = Cell(7)

	tests := []struct {
		name   string
		grid   Grid
		active Cell
		want   error
	}{
		{"nil", nil, PlayerX, ErrInvalidGrid},
		{"short", NewGrid()[:5], PlayerX, ErrInvalidGrid},
		{"ragged", ragged, PlayerX, ErrInvalidGrid},
		{"unknown cell", badCell, PlayerX, ErrInvalidGrid},
		{"empty active", NewGrid(), Empty, ErrInvalidSymbol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewBoardFromGrid(tt.grid, tt.active); !errors.Is(err, tt.want) {
				t.Errorf("err=%v want %v", err, tt.want)
			}
		})
	}
}

func TestIsValidMove(t *testing.T) {
	if _, err := IsValidMove(nil, 0); !errors.Is(err, ErrInvalidGrid) {
		t.Fatalf("nil grid: err=%v want %v", err, ErrInvalidGrid)
	}

	empty := NewGrid()
	for _, col := range []int{0, 1, 3, 6} {
		if ok, err := IsValidMove(empty, col); err != nil || !ok {
			t.Errorf("IsValidMove(empty, %d)=%v,%v want true", col, ok, err)
		}
	}
	for _, col := range []int{-1, 7, 100} {
		if ok, _ := IsValidMove(empty, col); ok {
			t.Errorf("IsValidMove(empty, %d)=true", col)
		}
	}

	lastFull := mustGrid(t,
		"      O",
		"      O",
		"      O",
		"      X",
		"      X",
		"      X",
	)
	if ok, _ := IsValidMove(lastFull, 6); ok {
		t.Error("full column reported valid")
	}
	if ok, _ := IsValidMove(lastFull, 1); !ok {
		t.Error("open column reported invalid")
	}
	if got := ValidMoves(lastFull); len(got) != Columns-1 {
		t.Errorf("ValidMoves=%v want %d columns", got, Columns-1)
	}
}

func TestParseGridRejectsUnknownSymbols(t *testing.T) {
	_, err := ParseGrid("       ", "       ", "       ", "    X0 ", "       ", "       ")
	if !errors.Is(err, ErrInvalidGrid) {
		t.Fatalf("err=%v want %v", err, ErrInvalidGrid)
	}
}
