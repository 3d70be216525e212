// Package compare builds the per-team comparison between a pre-semifinal and a
// post-semifinal squad snapshot: averaged ratings, goal and assist totals,
// and per-player fitness movement.
package compare
