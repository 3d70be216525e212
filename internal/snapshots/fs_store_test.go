package snapshots

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/preston-bernstein/semifinal-compare/internal/domain/squad"
	"github.com/preston-bernstein/semifinal-compare/internal/testutil"
)

func TestFSStoreLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "egypt_squad.csv")
	testutil.WriteFile(t, path, testutil.SquadCSV(true,
		testutil.SquadRow{Name: "Mohamed Salah", Position: "FW", Fitness: 92, Attack: 91, Defense: 45, Consistency: 8.7, Goals: 60, Assists: 30},
		testutil.SquadRow{Name: "Mohamed Elneny", Position: "MF", Fitness: 85.5, Attack: 70, Defense: 75, Consistency: 7.9, Goals: 4, Assists: 9},
	))

	snap, err := NewFSStore().Load(path)
	if err != nil {
		t.Fatalf("failed to load squad: %v", err)
	}
	if snap.Len() != 2 {
		t.Fatalf("expected 2 players, got %d", snap.Len())
	}
	if !snap.HasColumn(squad.ColumnGoals) || !snap.HasColumn(squad.ColumnAssists) {
		t.Fatalf("expected totals columns, got %v", snap.Columns)
	}
	first := snap.Players[0]
	if first.Name != "Mohamed Salah" || first.Position != "FW" || first.FitnessPercent != 92 || first.GoalsLast5Y != "60" {
		t.Fatalf("unexpected first player %+v", first)
	}
	if snap.Players[1].FitnessPercent != 85.5 || snap.Players[1].AssistsLast5Y != "9" {
		t.Fatalf("unexpected second player %+v", snap.Players[1])
	}
}

func TestFSStoreLoadWithoutTotals(t *testing.T) {
	path := filepath.Join(t.TempDir(), "senegal.csv")
	testutil.WriteFile(t, path, testutil.SquadCSV(false, testutil.SquadRow{Name: "Sadio Mane", Position: "FW", Fitness: 88}))

	snap, err := NewFSStore().Load(path)
	if err != nil {
		t.Fatalf("failed to load squad: %v", err)
	}
	if snap.HasColumn(squad.ColumnGoals) {
		t.Fatal("did not expect goals column")
	}
	if snap.Players[0].GoalsLast5Y != "" {
		t.Fatalf("expected no goals cell, got %q", snap.Players[0].GoalsLast5Y)
	}
}

func TestFSStoreEmptyCellsAreMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "morocco.csv")
	body := "\ufeffName,Position,Fitness_Percent,Attack,Defense,Consistency\nHakimi,DF,,80,85,8.1\nZiyech,MF,90,84\n"
	testutil.WriteFile(t, path, body)

	snap, err := NewFSStore().Load(path)
	if err != nil {
		t.Fatalf("failed to load squad: %v", err)
	}
	if !math.IsNaN(snap.Players[0].FitnessPercent) {
		t.Fatalf("expected NaN fitness, got %v", snap.Players[0].FitnessPercent)
	}
	if !math.IsNaN(snap.Players[1].Consistency) || snap.Players[1].Attack != 84 {
		t.Fatalf("expected short row to leave trailing cells missing, got %+v", snap.Players[1])
	}
}

func TestFSStoreMissingRequiredColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nigeria.csv")
	testutil.WriteFile(t, path, "Name,Position,Fitness_Percent,Attack,Consistency\nOsimhen,FW,90,88,8\n")

	_, err := NewFSStore().Load(path)
	var missing *squad.MissingColumnError
	if !errors.As(err, &missing) || missing.Column != squad.ColumnDefense || missing.Path != path {
		t.Fatalf("expected missing Defense column error, got %v", err)
	}
}

func TestFSStoreKeepsTotalsCellsRaw(t *testing.T) {
	cases := map[string]struct {
		body    string
		goals   string
		assists string
	}{
		"float goals":    {"Name,Position,Fitness_Percent,Attack,Defense,Consistency,Goals_Last_5Y,Assists_Last_5Y\nMane,FW,76,70,60,8,12.0,\n", "12.0", ""},
		"assists blank":  {"Name,Position,Fitness_Percent,Attack,Defense,Consistency,Assists_Last_5Y\nMane,FW,76,70,60,8,\n", "", ""},
		"assists spaced": {"Name,Position,Fitness_Percent,Attack,Defense,Consistency,Assists_Last_5Y\nMane,FW,76,70,60,8, 3\n", "", " 3"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "senegal.csv")
			testutil.WriteFile(t, path, tc.body)

			snap, err := NewFSStore().Load(path)
			if err != nil {
				t.Fatalf("expected totals cells to load raw, got %v", err)
			}
			p := snap.Players[0]
			if p.FitnessPercent != 76 || p.GoalsLast5Y != tc.goals || p.AssistsLast5Y != tc.assists {
				t.Fatalf("unexpected player %+v", p)
			}
		})
	}
}

func TestFSStoreKeepsNamesUntrimmed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "egypt.csv")
	testutil.WriteFile(t, path, "Name,Position,Fitness_Percent,Attack,Defense,Consistency\n Salah,FW, 90 ,1,1,1\n")

	snap, err := NewFSStore().Load(path)
	if err != nil {
		t.Fatalf("failed to load squad: %v", err)
	}
	if p := snap.Players[0]; p.Name != " Salah" || p.FitnessPercent != 90 {
		t.Fatalf("expected raw name and trimmed number, got %+v", p)
	}
}

func TestFSStoreParseErrors(t *testing.T) {
	cases := map[string]string{
		"float":   "Name,Position,Fitness_Percent,Attack,Defense,Consistency\nA,FW,fit,1,1,1\n",
		"defense": "Name,Position,Fitness_Percent,Attack,Defense,Consistency\nA,FW,1,1,strong,1\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.csv")
			testutil.WriteFile(t, path, body)

			_, err := NewFSStore().Load(path)
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("expected parse error, got %v", err)
			}
			if parseErr.Line != 2 || !strings.Contains(err.Error(), path) {
				t.Fatalf("expected line 2 in %s, got %v", path, err)
			}
		})
	}
}

func TestFSStoreTooManyFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wide.csv")
	testutil.WriteFile(t, path, "Name,Position,Fitness_Percent,Attack,Defense,Consistency\nA,FW,1,1,1,1,extra\n")

	if _, err := NewFSStore().Load(path); err == nil {
		t.Fatal("expected error for row wider than header")
	}
}

func TestFSStoreErrors(t *testing.T) {
	store := NewFSStore()
	if _, err := store.Load(filepath.Join(t.TempDir(), "absent.csv")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	if _, err := store.Load(""); !errors.Is(err, ErrEmptyPath) {
		t.Fatalf("expected empty path error, got %v", err)
	}

	empty := filepath.Join(t.TempDir(), "empty.csv")
	testutil.WriteFile(t, empty, "")
	if _, err := store.Load(empty); !errors.Is(err, ErrNoHeader) {
		t.Fatalf("expected no header error, got %v", err)
	}
}
