package snapshots

import (
	"path/filepath"

	"github.com/preston-bernstein/semifinal-compare/internal/config"
)

// Layout describes where squad files live on disk.
type Layout struct {
	BackupDir    string // every pre-semifinal squad
	PrimaryDir   string // the primary team's updated squad
	OpponentsDir string // every other team's updated squad
}

// LayoutFromConfig derives the on-disk layout from runtime config.
func LayoutFromConfig(cfg config.Config) Layout {
	return Layout{
		BackupDir:    cfg.BackupDir,
		PrimaryDir:   cfg.DataRoot,
		OpponentsDir: cfg.OpponentsDir(),
	}
}

// ResolvePaths returns the before and after squad paths for a team.
func (l Layout) ResolvePaths(team config.Team) (before, after string) {
	before = filepath.Join(l.BackupDir, team.Before)
	if team.Primary {
		return before, filepath.Join(l.PrimaryDir, team.After)
	}
	return before, filepath.Join(l.OpponentsDir, team.After)
}
