package rules

import "fmt"

// Outcome is the rule that decided a cell's next state
type Outcome int

const (
	Underpopulation Outcome = iota
	Survival
	Overpopulation
	Birth
	StaysDead
)

var outcomeNames = map[Outcome]string{
	Underpopulation: "underpopulation",
	Survival:        "survival",
	Overpopulation:  "overpopulation",
	Birth:           "birth",
	StaysDead:       "stays dead",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Alive reports whether the outcome leaves the cell alive
func (o Outcome) Alive() bool {
	return o == Survival || o == Birth
}

/*
Classify picks the single row of the Life rule table matching a cell.

	alive, n < 2      -> Underpopulation
	alive, n == 2, 3  -> Survival
	alive, n > 3      -> Overpopulation
	dead,  n == 3     -> Birth
	dead,  otherwise  -> StaysDead
*/
func Classify(alive bool, neighbors int) Outcome {
	switch {
	case alive && neighbors < 2:
		return Underpopulation
	case alive && neighbors <= 3:
		return Survival
	case alive:
		return Overpopulation
	case neighbors == 3:
		return Birth
	default:
		return StaysDead
	}
}

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return Classify(alive, neighbors).Alive()
}
