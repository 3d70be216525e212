package metrics

import (
	"sync"
	"time"
)

type teamStats struct {
	runs         int
	errors       int
	players      int
	lastDuration time.Duration
}

// Recorder captures lightweight, in-memory metrics about team comparisons and
// forwards them to OpenTelemetry instruments when configured.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*teamStats
	otel  *otelInstruments
}

// NewRecorder returns an in-memory Recorder with no OpenTelemetry backing.
func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*teamStats),
		otel:  otel,
	}
}

// RecordTeam records one team comparison: how many players were matched
// across both snapshots, how long it took and whether it failed.
func (r *Recorder) RecordTeam(team string, players int, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.stats[team]
	if !ok {
		stats = &teamStats{}
		r.stats[team] = stats
	}
	stats.runs++
	stats.players += players
	stats.lastDuration = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordTeam(team, players, duration, err)
	}
}

// Snapshot is a copy of the stats recorded for one team.
type Snapshot struct {
	Runs         int
	Errors       int
	Players      int
	LastDuration time.Duration
}

// Snapshot returns the current stats for the team.
func (r *Recorder) Snapshot(team string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[team]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Runs:         stats.runs,
		Errors:       stats.errors,
		Players:      stats.players,
		LastDuration: stats.lastDuration,
	}
}

// Totals sums runs and errors across every team.
func (r *Recorder) Totals() (runs, errors int) {
	if r == nil {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, stats := range r.stats {
		runs += stats.runs
		errors += stats.errors
	}
	return runs, errors
}
