package squad

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Stat names a float-valued squad column.
type Stat string

const (
	StatFitness     Stat = ColumnFitnessPercent
	StatAttack      Stat = ColumnAttack
	StatDefense     Stat = ColumnDefense
	StatConsistency Stat = ColumnConsistency
)

// Total names an integer-valued squad column.
type Total string

const (
	TotalGoals   Total = ColumnGoals
	TotalAssists Total = ColumnAssists
)

// MissingColumnError reports a column a computation needed but the snapshot lacked.
type MissingColumnError struct {
	Column string
	Path   string
}

func (e *MissingColumnError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("missing column %q in %s", e.Column, e.Path)
	}
	return fmt.Sprintf("missing column %q", e.Column)
}

// ValueError reports an integer cell that does not hold an integer.
type ValueError struct {
	Column string
	Player string
	Value  string
	Err    error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("column %s: player %q: cannot parse %q as integer", e.Column, e.Player, e.Value)
}

func (e *ValueError) Unwrap() error {
	return e.Err
}

// Value returns the player's value for stat, or NaN for an unknown stat.
func (p Player) Value(stat Stat) float64 {
	switch stat {
	case StatFitness:
		return p.FitnessPercent
	case StatAttack:
		return p.Attack
	case StatDefense:
		return p.Defense
	case StatConsistency:
		return p.Consistency
	default:
		return math.NaN()
	}
}

// Count converts the player's raw cell for an integer column.
func (p Player) Count(total Total) (int, error) {
	var raw string
	switch total {
	case TotalGoals:
		raw = p.GoalsLast5Y
	case TotalAssists:
		raw = p.AssistsLast5Y
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &ValueError{Column: string(total), Player: p.Name, Value: raw, Err: err}
	}
	return n, nil
}

// Mean averages stat over the snapshot, skipping missing values.
// It returns NaN when no player has a value.
func (s Snapshot) Mean(stat Stat) float64 {
	var sum float64
	var n int
	for _, p := range s.Players {
		v := p.Value(stat)
		if math.IsNaN(v) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}

// Sum adds an integer column over the snapshot. Every cell must hold an
// integer; a blank or fractional cell is a *ValueError.
func (s Snapshot) Sum(total Total) (int, error) {
	if !s.HasColumn(string(total)) {
		return 0, &MissingColumnError{Column: string(total)}
	}
	var sum int
	for _, p := range s.Players {
		n, err := p.Count(total)
		if err != nil {
			return 0, err
		}
		sum += n
	}
	return sum, nil
}
