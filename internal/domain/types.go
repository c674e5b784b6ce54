package domain

// Cell is the content of a single board slot
type Cell int

const (
	Empty   Cell = 0
	PlayerX Cell = 1
	PlayerO Cell = 2
)

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

// Symbol returns the character used to draw the cell
func (c Cell) Symbol() rune {
	switch c {
	case PlayerX:
		return 'X'
	case PlayerO:
		return 'O'
	default:
		return ' '
	}
}

func (c Cell) String() string {
	return string(c.Symbol())
}

// Opponent returns the other player token, Empty stays Empty
func (c Cell) Opponent() Cell {
	switch c {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return Empty
	}
}

func (c Cell) IsPlayer() bool {
	return c == PlayerX || c == PlayerO
}

// ParseSymbol maps 'X'/'O' (any case) to a player cell
func ParseSymbol(s string) (Cell, error) {
	switch s {
	case "X", "x":
		return PlayerX, nil
	case "O", "o":
		return PlayerO, nil
	}
	return Empty, ErrInvalidSymbol
}

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidGrid   Error = "invalid board grid"
	ErrInvalidSymbol Error = "symbol must be X or O"
	ErrInvalidMove   Error = "invalid move"
	ErrColumnFull    Error = "column is full"
	ErrGameOver      Error = "game is already over"
)
