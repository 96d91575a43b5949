package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-console/model"
	"github.com/sheikhrachel/go-gol-console/utils"
)

// user commands, matched on the first letter of the line
const (
	cmdQuit          = "Q"
	cmdAddCell       = "A"
	cmdNeighborCount = "N"
	cmdAddMultiple   = "M"
	cmdRemoveCell    = "R"
	cmdToggleCell    = "T"

	commandPrompt = "> "
)

// game owns the live grid and the console it is played on
type game struct {
	grid       *model.Grid
	config     utils.Config
	in         *bufio.Scanner
	out        io.Writer
	renderer   *model.TerminalRenderer
	stats      *utils.Stats
	generation int
}

func newGame(grid *model.Grid, config utils.Config, in io.Reader, out io.Writer) *game {
	return &game{
		grid:     grid,
		config:   config,
		in:       bufio.NewScanner(in),
		out:      out,
		renderer: model.NewTerminalRenderer(out, config.Color),
		stats:    utils.NewStats(),
	}
}

// run processes commands until quit or end of input
func (g *game) run() error {
	g.stats.Observe(g.generation, g.grid.CountLivingCells(), g.grid.GetGridHash())

	for {
		g.displayGame()

		line, err := g.readLine(commandPrompt)
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		quit, err := g.dispatch(line)
		if err == io.EOF || quit {
			break
		}
		if err != nil {
			return err
		}
	}

	g.renderer.DisplaySummary(g.stats)
	return nil
}

// dispatch executes one command line, reporting whether the game should end
func (g *game) dispatch(line string) (bool, error) {
	command := strings.ToUpper(strings.TrimSpace(line))

	switch {
	case strings.HasPrefix(command, cmdQuit):
		return true, nil
	case strings.HasPrefix(command, cmdAddCell):
		return false, g.editCell("", g.grid.SetAlive)
	case strings.HasPrefix(command, cmdNeighborCount):
		return false, g.countNeighbors()
	case strings.HasPrefix(command, cmdAddMultiple):
		return false, g.addMultipleCells()
	case strings.HasPrefix(command, cmdRemoveCell):
		return false, g.editCell("", g.grid.SetDead)
	case strings.HasPrefix(command, cmdToggleCell):
		return false, g.editCell("", g.grid.Toggle)
	default:
		g.evolve()
		return false, nil
	}
}

// displayGame shows the grid and, when enabled, the status line
func (g *game) displayGame() {
	g.renderer.Display(g.grid)
	if g.config.ShowStats {
		g.renderer.DisplayStatus(g.stats)
	}
}

func (g *game) evolve() {
	g.grid = g.grid.Evolve()
	g.generation++
	g.stats.Observe(g.generation, g.grid.CountLivingCells(), g.grid.GetGridHash())
}

// editCell prompts for a coordinate and applies edit to it
func (g *game) editCell(label string, edit func(row, col int) error) error {
	row, col, ok, err := g.readCoordinates(label)
	if err != nil || !ok {
		return err
	}
	return g.applyEdit(edit, row, col)
}

// applyEdit reports out-of-bounds edits to the user instead of failing the game
func (g *game) applyEdit(edit func(row, col int) error, row, col int) error {
	if err := edit(row, col); err != nil {
		if errors.Is(err, model.ErrOutOfBounds) {
			g.renderer.DisplayError("Cell (%d, %d) is out of bounds!", row, col)
			return nil
		}
		return err
	}
	g.stats.Touch(g.grid.CountLivingCells(), g.grid.GetGridHash())
	return nil
}

func (g *game) countNeighbors() error {
	row, col, ok, err := g.readCoordinates("")
	if err != nil || !ok {
		return err
	}

	count, err := g.grid.NeighborsAt(row, col)
	if errors.Is(err, model.ErrOutOfBounds) {
		g.renderer.DisplayError("Cell (%d, %d) is out of bounds!", row, col)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(g.out, count)
	if g.config.ShowCounts {
		g.renderer.DisplayNeighborCounts(g.grid)
	}
	return nil
}

// addMultipleCells asks for a count, then for that many coordinates
func (g *game) addMultipleCells() error {
	amount, ok, err := g.readInt("How many do you want to add?: ")
	if err != nil || !ok {
		return err
	}
	if amount < 0 {
		g.renderer.DisplayError("Cannot add %d cells", amount)
		return nil
	}

	for i := 0; i < amount; i++ {
		if err := g.editCell(fmt.Sprintf("#%d ", i+1), g.grid.SetAlive); err != nil {
			return err
		}
	}
	return nil
}

// readCoordinates prompts for a row and a column. ok is false when the user
// typed something that is not a number; the message has already been shown.
func (g *game) readCoordinates(label string) (row, col int, ok bool, err error) {
	if row, ok, err = g.readInt(label + "row: "); err != nil || !ok {
		return
	}
	col, ok, err = g.readInt(label + "col: ")
	return
}

func (g *game) readInt(prompt string) (int, bool, error) {
	line, err := g.readLine(prompt)
	if err != nil {
		return 0, false, err
	}

	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		g.renderer.DisplayError("%q is not a whole number", strings.TrimSpace(line))
		return 0, false, nil
	}
	return n, true, nil
}

// readLine prints prompt and returns the next input line, io.EOF at end of input
func (g *game) readLine(prompt string) (string, error) {
	fmt.Fprint(g.out, prompt)
	if !g.in.Scan() {
		if err := g.in.Err(); err != nil {
			return "", errors.Wrap(err, "[readLine] failed to read input")
		}
		return "", io.EOF
	}
	return g.in.Text(), nil
}
