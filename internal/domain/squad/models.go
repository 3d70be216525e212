package squad

// Column names carried by squad CSV files.
const (
	ColumnName           = "Name"
	ColumnPosition       = "Position"
	ColumnFitnessPercent = "Fitness_Percent"
	ColumnAttack         = "Attack"
	ColumnDefense        = "Defense"
	ColumnConsistency    = "Consistency"
	ColumnGoals          = "Goals_Last_5Y"
	ColumnAssists        = "Assists_Last_5Y"
)

// RequiredColumns must be present in every snapshot.
var RequiredColumns = []string{
	ColumnName,
	ColumnPosition,
	ColumnFitnessPercent,
	ColumnAttack,
	ColumnDefense,
	ColumnConsistency,
}

// Player is one squad row. Missing float cells hold NaN. Goal and assist
// cells keep their raw text; Snapshot.Sum converts them.
type Player struct {
	Name           string
	Position       string
	FitnessPercent float64
	Attack         float64
	Defense        float64
	Consistency    float64
	GoalsLast5Y    string
	AssistsLast5Y  string
}

// Snapshot is a team's squad at one point in time, in file order.
type Snapshot struct {
	Columns []string
	Players []Player
}

// Len returns the number of players in the snapshot.
func (s Snapshot) Len() int {
	return len(s.Players)
}

// HasColumn reports whether the source file carried the named column.
func (s Snapshot) HasColumn(name string) bool {
	for _, col := range s.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// Comparison joins the same player across two snapshots.
type Comparison struct {
	Name          string
	Old           Player
	New           Player
	FitnessChange float64
}
