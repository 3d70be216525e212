package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// SquadRow is one player line of a squad CSV fixture.
type SquadRow struct {
	Name        string
	Position    string
	Fitness     float64
	Attack      float64
	Defense     float64
	Consistency float64
	Goals       int
	Assists     int
}

const (
	squadHeader       = "Name,Position,Fitness_Percent,Attack,Defense,Consistency"
	squadTotalsHeader = squadHeader + ",Goals_Last_5Y,Assists_Last_5Y"
)

// SquadCSV renders rows as a squad CSV. withTotals adds the goals/assists columns.
func SquadCSV(withTotals bool, rows ...SquadRow) string {
	var b strings.Builder
	if withTotals {
		b.WriteString(squadTotalsHeader)
	} else {
		b.WriteString(squadHeader)
	}
	b.WriteByte('\n')
	for _, r := range rows {
		fmt.Fprintf(&b, "%s,%s,%s,%s,%s,%s",
			r.Name, r.Position, num(r.Fitness), num(r.Attack), num(r.Defense), num(r.Consistency))
		if withTotals {
			fmt.Fprintf(&b, ",%d,%d", r.Goals, r.Assists)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteFile writes body to path, creating parent directories.
func WriteFile(t testing.TB, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
