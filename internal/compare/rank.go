package compare

import (
	"math"
	"sort"

	"github.com/preston-bernstein/semifinal-compare/internal/domain/squad"
)

// Join pairs players by name, keeping only those present in both snapshots.
// Records follow the order of the before snapshot.
func Join(before, after squad.Snapshot) []squad.Comparison {
	byName := make(map[string][]squad.Player, after.Len())
	for _, p := range after.Players {
		byName[p.Name] = append(byName[p.Name], p)
	}

	records := make([]squad.Comparison, 0, before.Len())
	for _, old := range before.Players {
		for _, cur := range byName[old.Name] {
			records = append(records, squad.Comparison{
				Name:          old.Name,
				Old:           old,
				New:           cur,
				FitnessChange: cur.FitnessPercent - old.FitnessPercent,
			})
		}
	}
	return records
}

// TopFitnessChanges returns the n largest fitness changes, largest first.
// Every record tied with the n-th value is kept, so the result may be longer
// than n. Records without a fitness change are skipped.
func TopFitnessChanges(records []squad.Comparison, n int) []squad.Comparison {
	if n <= 0 {
		return nil
	}
	ranked := withChange(records)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].FitnessChange > ranked[j].FitnessChange
	})
	if len(ranked) <= n {
		return ranked
	}

	cutoff := ranked[n-1].FitnessChange
	end := n
	for end < len(ranked) && ranked[end].FitnessChange == cutoff {
		end++
	}
	return ranked[:end]
}

// Fatigued returns every record whose fitness dropped, steepest drop first.
func Fatigued(records []squad.Comparison) []squad.Comparison {
	var dropped []squad.Comparison
	for _, r := range records {
		if r.FitnessChange < 0 {
			dropped = append(dropped, r)
		}
	}
	sort.SliceStable(dropped, func(i, j int) bool {
		return dropped[i].FitnessChange < dropped[j].FitnessChange
	})
	return dropped
}

func withChange(records []squad.Comparison) []squad.Comparison {
	out := make([]squad.Comparison, 0, len(records))
	for _, r := range records {
		if !math.IsNaN(r.FitnessChange) {
			out = append(out, r)
		}
	}
	return out
}
