package compare

import (
	"fmt"

	"github.com/preston-bernstein/semifinal-compare/internal/domain/squad"
)

// TopN is how many of the largest fitness changes a report ranks.
const TopN = 5

// StatLine is the before/after average of one rating.
type StatLine struct {
	Stat      squad.Stat
	Label     string
	Unit      string
	Precision int
	Before    float64
	After     float64
}

// Change is after minus before.
func (l StatLine) Change() float64 {
	return l.After - l.Before
}

// TotalLine is the before/after sum of one integer column.
type TotalLine struct {
	Total  squad.Total
	Label  string
	Before int
	After  int
}

// Change is after minus before.
func (l TotalLine) Change() int {
	return l.After - l.Before
}

// Report is one team's comparison. A report returned alongside an error holds
// only the sections computed before the failure.
type Report struct {
	Team       string
	Size       int
	Stats      []StatLine
	Totals     []TotalLine
	Ranked     bool
	Matched    int
	TopChanges []squad.Comparison
	Fatigued   []squad.Comparison
}

type statSpec struct {
	stat      squad.Stat
	label     string
	unit      string
	precision int
}

var statSpecs = []statSpec{
	{stat: squad.StatFitness, label: "Fitness", unit: "%", precision: 1},
	{stat: squad.StatAttack, label: "Attack", precision: 1},
	{stat: squad.StatDefense, label: "Defense", precision: 1},
	{stat: squad.StatConsistency, label: "Consistency", precision: 2},
}

type totalSpec struct {
	total squad.Total
	label string
}

// Goals and assists are reported together; the goals column in the
// pre-semifinal snapshot gates both.
var totalSpecs = []totalSpec{
	{total: squad.TotalGoals, label: "Goals (Last 5Y)"},
	{total: squad.TotalAssists, label: "Assists (Last 5Y)"},
}

// Build compares two snapshots of the same team.
func Build(team string, before, after squad.Snapshot) (Report, error) {
	report := Report{Team: team, Size: before.Len()}

	for _, spec := range statSpecs {
		report.Stats = append(report.Stats, StatLine{
			Stat:      spec.stat,
			Label:     spec.label,
			Unit:      spec.unit,
			Precision: spec.precision,
			Before:    before.Mean(spec.stat),
			After:     after.Mean(spec.stat),
		})
	}

	if before.HasColumn(squad.ColumnGoals) {
		for _, spec := range totalSpecs {
			line, err := buildTotal(spec, before, after)
			if err != nil {
				return report, err
			}
			report.Totals = append(report.Totals, line)
		}
	}

	records := Join(before, after)
	report.Ranked = true
	report.Matched = len(records)
	report.TopChanges = TopFitnessChanges(records, TopN)
	report.Fatigued = Fatigued(records)
	return report, nil
}

func buildTotal(spec totalSpec, before, after squad.Snapshot) (TotalLine, error) {
	b, err := before.Sum(spec.total)
	if err != nil {
		return TotalLine{}, fmt.Errorf("before snapshot: %w", err)
	}
	a, err := after.Sum(spec.total)
	if err != nil {
		return TotalLine{}, fmt.Errorf("after snapshot: %w", err)
	}
	return TotalLine{Total: spec.total, Label: spec.label, Before: b, After: a}, nil
}
