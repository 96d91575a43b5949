package model

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	gridPosAlive = "o "
	gridPosEmpty = "  "

	borderCorner = "+ "
	borderEdge   = "- "
	rowOpen      = "| "
	rowClose     = "|"
)

// Status is what DisplayStatus needs to print a status line
type Status interface {
	Generation() int
	Population() int
	State() string
}

// TerminalRenderer writes grids as plain text, optionally colored
type TerminalRenderer struct {
	out     io.Writer
	au      aurora.Aurora
	printer *message.Printer
}

// NewTerminalRenderer returns a renderer writing to out. With color off the
// output contains no escape sequences.
func NewTerminalRenderer(out io.Writer, color bool) *TerminalRenderer {
	return &TerminalRenderer{
		out:     out,
		au:      aurora.NewAurora(color),
		printer: message.NewPrinter(language.English),
	}
}

// Display renders the interior of the grid framed by the border
func (r *TerminalRenderer) Display(g *Grid) {
	r.frame(g, func(row, col int) string {
		if g.cells[row][col] {
			return r.au.Green(gridPosAlive).Bold().String()
		}
		return gridPosEmpty
	})
}

// DisplayNeighborCounts renders each interior cell as its live-neighbor count
func (r *TerminalRenderer) DisplayNeighborCounts(g *Grid) {
	r.frame(g, func(row, col int) string {
		n := g.CountNeighbors(row, col)
		cell := fmt.Sprintf("%d ", n)
		if n == 3 || (n == 2 && g.cells[row][col]) {
			return r.au.Green(cell).String()
		}
		return cell
	})
}

// DisplayStatus prints a one-line summary of the simulation
func (r *TerminalRenderer) DisplayStatus(s Status) {
	r.printer.Fprintf(r.out, "Generation: %d | Live cells: %d | Status: %s\n",
		s.Generation(), s.Population(), r.au.Cyan(s.State()).String())
}

// DisplaySummary prints the final line shown when the game ends
func (r *TerminalRenderer) DisplaySummary(s Status) {
	r.printer.Fprintf(r.out, "\nFinished after %d generations with %d live cells\n",
		s.Generation(), s.Population())
}

// DisplayError prints a user-facing problem without stopping the game
func (r *TerminalRenderer) DisplayError(format string, args ...interface{}) {
	fmt.Fprintln(r.out, r.au.Red(fmt.Sprintf(format, args...)).String())
}

func (r *TerminalRenderer) frame(g *Grid, cell func(row, col int) string) {
	r.horizontalBorder(g.width)
	for row := 1; row < g.height-1; row++ {
		fmt.Fprint(r.out, rowOpen)
		for col := 1; col < g.width-1; col++ {
			fmt.Fprint(r.out, cell(row, col))
		}
		fmt.Fprintln(r.out, rowClose)
	}
	r.horizontalBorder(g.width)
}

// horizontalBorder prints "+ - - - +" with one dash per interior column
func (r *TerminalRenderer) horizontalBorder(width int) {
	fmt.Fprint(r.out, borderCorner)
	for col := 1; col < width-1; col++ {
		fmt.Fprint(r.out, borderEdge)
	}
	fmt.Fprintln(r.out, "+")
}
