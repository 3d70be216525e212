package comparison

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/preston-bernstein/semifinal-compare/internal/compare"
	"github.com/preston-bernstein/semifinal-compare/internal/config"
	"github.com/preston-bernstein/semifinal-compare/internal/logging"
	"github.com/preston-bernstein/semifinal-compare/internal/metrics"
	"github.com/preston-bernstein/semifinal-compare/internal/report"
	"github.com/preston-bernstein/semifinal-compare/internal/snapshots"
)

// Service runs the semifinal comparison for a list of teams, one at a time.
type Service struct {
	store   snapshots.Store
	layout  snapshots.Layout
	out     *report.Writer
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewService wires a Service that prints its report to out.
// logger and rec may be nil.
func NewService(store snapshots.Store, layout snapshots.Layout, out io.Writer, logger *slog.Logger, rec *metrics.Recorder) *Service {
	return &Service{
		store:   store,
		layout:  layout,
		out:     report.NewWriter(out),
		logger:  logger,
		metrics: rec,
	}
}

// Run prints the banner, each team's report in order, and the summary footer.
// A team that fails is reported inline and the run moves on; Run only returns
// an error when ctx is done or the report cannot be written.
func (s *Service) Run(ctx context.Context, teams []config.Team) error {
	s.out.Banner()
	for _, team := range teams {
		if err := ctx.Err(); err != nil {
			return err
		}
		_ = s.CompareTeam(team)
	}
	s.out.Summary(report.Locations{
		BackupDir:    s.layout.BackupDir,
		PrimaryDir:   s.layout.PrimaryDir,
		OpponentsDir: s.layout.OpponentsDir,
	})

	runs, failed := s.metrics.Totals()
	logging.Info(s.logger, "comparison finished", logging.FieldCount, runs, logging.FieldFailed, failed)
	return s.out.Err()
}

// CompareTeam prints one team's comparison. Any failure is printed as an
// error line after whatever part of the report was already computed, and
// returned for callers that want it.
func (s *Service) CompareTeam(team config.Team) error {
	start := time.Now()
	s.out.TeamHeader(team.Name)

	r, err := s.build(team)
	if r != nil {
		s.out.Team(*r)
	}
	if err != nil {
		s.out.TeamError(team.Name, err)
		logging.Error(s.logger, "team comparison failed", err, logging.FieldTeam, team.Name)
	}

	matched := 0
	if r != nil {
		matched = r.Matched
	}
	elapsed := time.Since(start)
	s.metrics.RecordTeam(team.Name, matched, elapsed, err)
	if err == nil {
		logging.Info(s.logger, "team compared",
			logging.FieldTeam, team.Name,
			logging.FieldCount, matched,
			logging.FieldDurationMS, elapsed.Milliseconds(),
		)
	}
	return err
}

// build returns a nil report when nothing could be computed.
func (s *Service) build(team config.Team) (*compare.Report, error) {
	beforePath, afterPath := s.layout.ResolvePaths(team)
	logging.Debug(s.logger, "loading squads",
		logging.FieldTeam, team.Name,
		logging.FieldBeforePath, beforePath,
		logging.FieldAfterPath, afterPath,
	)

	before, err := s.store.Load(beforePath)
	if err != nil {
		return nil, err
	}
	after, err := s.store.Load(afterPath)
	if err != nil {
		return nil, err
	}

	r, err := compare.Build(team.Name, before, after)
	return &r, err
}
