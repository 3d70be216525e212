package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/preston-bernstein/semifinal-compare/internal/compare"
	"github.com/preston-bernstein/semifinal-compare/internal/domain/squad"
)

const (
	ruleWidth     = 80
	nameWidth     = 25
	positionWidth = 2
	// FatigueShown caps the fatigued players listed; the count covers all of them.
	FatigueShown = 5

	title        = "AFCON 2025 SEMIFINAL DATA COMPARISON"
	summaryTitle = "COMPARISON SUMMARY"
)

var keyFindings = []string{
	"All teams show realistic tournament fatigue (fitness decreased)",
	"Key players' statistics updated to reflect semifinal performance",
	"Attack and defense ratings adjusted based on recent matches",
	"Goals and assists incremented for standout performers",
}

// Locations names the directories quoted in the summary footer.
type Locations struct {
	BackupDir    string
	PrimaryDir   string
	OpponentsDir string
}

// Writer renders the comparison report as plain text.
// The first write error is kept and returned by Err; later writes are skipped.
type Writer struct {
	out io.Writer
	err error
}

// NewWriter returns a Writer that renders to out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Err returns the first write error, if any.
func (w *Writer) Err() error {
	return w.err
}

// Banner prints the report title block.
func (w *Writer) Banner() {
	w.rule()
	w.line(title)
	w.rule()
	w.line("")
}

// TeamHeader opens a team's section.
func (w *Writer) TeamHeader(team string) {
	w.line("")
	w.rule()
	w.printf("%s - CHANGES ANALYSIS\n", strings.ToUpper(team))
	w.rule()
}

// Team prints every section the report carries.
func (w *Writer) Team(r compare.Report) {
	w.printf("\nTeam Size: %d players\n", r.Size)

	for _, s := range r.Stats {
		w.printf("\nAverage %s:\n", s.Label)
		w.printf("  Before: %s%s\n", formatFloat(s.Before, s.Precision, false), s.Unit)
		w.printf("  After:  %s%s\n", formatFloat(s.After, s.Precision, false), s.Unit)
		w.printf("  Change: %s%s\n", formatFloat(s.Change(), s.Precision, true), s.Unit)
	}

	for _, t := range r.Totals {
		w.printf("\nTotal %s:\n", t.Label)
		w.printf("  Before: %d\n", t.Before)
		w.printf("  After:  %d\n", t.After)
		w.printf("  Change: %+d\n", t.Change())
	}

	if !r.Ranked {
		return
	}
	w.printf("\nTop %d Players with Biggest Fitness Changes:\n", compare.TopN)
	for _, c := range r.TopChanges {
		w.player(c)
	}

	if len(r.Fatigued) > 0 {
		w.printf("\nPlayers Showing Tournament Fatigue: %d\n", len(r.Fatigued))
		shown := r.Fatigued
		if len(shown) > FatigueShown {
			shown = shown[:FatigueShown]
		}
		for _, c := range shown {
			w.player(c)
		}
	}
}

// TeamError reports a team that could not be fully processed.
func (w *Writer) TeamError(team string, err error) {
	w.printf("Error processing %s: %v\n", team, err)
}

// Summary prints the closing findings and file locations.
func (w *Writer) Summary(loc Locations) {
	w.line("")
	w.rule()
	w.line(summaryTitle)
	w.rule()
	w.line("\nKey Findings:")
	for i, finding := range keyFindings {
		w.printf("%d. %s\n", i+1, finding)
	}
	w.printf("\nBackup files preserved in: %s/\n", loc.BackupDir)
	w.printf("Updated files location: %s/ and %s/\n", loc.PrimaryDir, loc.OpponentsDir)
	w.line("")
	w.rule()
}

func (w *Writer) player(c squad.Comparison) {
	w.printf("  %-*s (%-*s): %3s%% -> %3s%% (%s%%)\n",
		nameWidth, c.Name,
		positionWidth, c.Old.Position,
		formatFloat(c.Old.FitnessPercent, 0, false),
		formatFloat(c.New.FitnessPercent, 0, false),
		formatFloat(c.FitnessChange, 0, true),
	)
}

func (w *Writer) rule() {
	w.line(strings.Repeat("=", ruleWidth))
}

func (w *Writer) line(s string) {
	w.printf("%s\n", s)
}

func (w *Writer) printf(format string, args ...any) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.out, format, args...)
}

// formatFloat renders v with prec decimals; signed forces a leading sign.
// NaN renders as "nan".
func formatFloat(v float64, prec int, signed bool) string {
	if math.IsNaN(v) {
		if signed {
			return "+nan"
		}
		return "nan"
	}
	s := strconv.FormatFloat(v, 'f', prec, 64)
	if signed && !strings.HasPrefix(s, "-") {
		s = "+" + s
	}
	return s
}
