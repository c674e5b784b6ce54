package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/iamasit07/4-in-a-row-console/internal/domain"
)

// Renderer draws the board as plain text, one "| X " slot per cell
type Renderer struct {
	out    io.Writer
	tokens map[domain.Cell]*color.Color
}

func NewRenderer(out io.Writer, colored bool) *Renderer {
	tokens := map[domain.Cell]*color.Color{
		domain.PlayerX: color.New(color.FgRed, color.Bold),
		domain.PlayerO: color.New(color.FgYellow, color.Bold),
	}
	if !colored {
		for _, c := range tokens {
			c.DisableColor()
		}
	}
	return &Renderer{out: out, tokens: tokens}
}

// Board returns the drawing without writing it anywhere
func (r *Renderer) Board(grid domain.Grid) string {
	var sb strings.Builder

	header := make([]string, 0, domain.Columns)
	for col := 1; col <= domain.Columns; col++ {
		header = append(header, fmt.Sprintf("  %d", col))
	}
	sb.WriteString(strings.Join(header, " ") + "\n")

	for _, row := range grid {
		for _, cell := range row {
			if cell == domain.Empty {
				sb.WriteString("|   ")
				continue
			}
			sb.WriteString("| " + r.Token(cell) + " ")
		}
		sb.WriteString("|\n")
	}
	return sb.String()
}

func (r *Renderer) Render(grid domain.Grid) {
	fmt.Fprint(r.out, r.Board(grid))
}

// Token returns the symbol for cell, coloured when colours are on
func (r *Renderer) Token(cell domain.Cell) string {
	c, ok := r.tokens[cell]
	if !ok {
		return cell.String()
	}
	return c.Sprint(cell.String())
}
