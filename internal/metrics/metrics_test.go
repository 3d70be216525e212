package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksTeamsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordTeam("Egypt", 26, 10*time.Millisecond, nil)
	rec.RecordTeam("Egypt", 0, 15*time.Millisecond, errors.New("boom"))
	rec.RecordTeam("Senegal", 24, 5*time.Millisecond, nil)

	snap := rec.Snapshot("Egypt")
	if snap.Runs != 2 || snap.Errors != 1 || snap.Players != 26 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if snap.LastDuration != 15*time.Millisecond {
		t.Fatalf("expected last duration 15ms, got %s", snap.LastDuration)
	}

	runs, failed := rec.Totals()
	if runs != 3 || failed != 1 {
		t.Fatalf("expected 3 runs and 1 failure, got %d/%d", runs, failed)
	}
}

func TestRecorderUnknownTeamAndNil(t *testing.T) {
	rec := NewRecorder()
	if snap := rec.Snapshot("Ghana"); snap != (Snapshot{}) {
		t.Fatalf("expected empty snapshot, got %+v", snap)
	}

	var nilRec *Recorder
	nilRec.RecordTeam("Egypt", 1, time.Millisecond, nil)
	if snap := nilRec.Snapshot("Egypt"); snap != (Snapshot{}) {
		t.Fatalf("expected empty snapshot from nil recorder, got %+v", snap)
	}
	if runs, failed := nilRec.Totals(); runs != 0 || failed != 0 {
		t.Fatalf("expected zero totals, got %d/%d", runs, failed)
	}
}
