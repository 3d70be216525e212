package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DataRoot != "data" {
		t.Fatalf("expected default data root, got %s", cfg.DataRoot)
	}
	if want := filepath.Join("data", "backup_pre_semifinal"); cfg.BackupDir != want {
		t.Fatalf("expected backup dir %s, got %s", want, cfg.BackupDir)
	}
	if want := filepath.Join("data", "opponents"); cfg.OpponentsDir() != want {
		t.Fatalf("expected opponents dir %s, got %s", want, cfg.OpponentsDir())
	}
	if cfg.Metrics.Enabled {
		t.Fatal("expected metrics disabled by default")
	}
	if cfg.Metrics.ServiceName != "semifinal-compare" {
		t.Fatalf("unexpected service name %s", cfg.Metrics.ServiceName)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Fatalf("unexpected log defaults %+v", cfg.Log)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATA_ROOT", "/srv/afcon")
	t.Setenv("BACKUP_DIR", "/srv/backup")
	t.Setenv("OPPONENTS_SUBDIR", "rivals")
	t.Setenv("METRICS_ENABLED", "true")
	t.Setenv("METRICS_TEXTFILE", "/tmp/compare.prom")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.BackupDir != "/srv/backup" {
		t.Fatalf("expected backup dir override, got %s", cfg.BackupDir)
	}
	if cfg.OpponentsDir() != filepath.Join("/srv/afcon", "rivals") {
		t.Fatalf("unexpected opponents dir %s", cfg.OpponentsDir())
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Textfile != "/tmp/compare.prom" {
		t.Fatalf("unexpected metrics config %+v", cfg.Metrics)
	}
	if cfg.Log.Format != "json" {
		t.Fatalf("expected json log format, got %s", cfg.Log.Format)
	}
}

func TestLoadBackupDirFollowsDataRoot(t *testing.T) {
	t.Setenv("DATA_ROOT", "fixtures")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := filepath.Join("fixtures", "backup_pre_semifinal"); cfg.BackupDir != want {
		t.Fatalf("expected %s, got %s", want, cfg.BackupDir)
	}
}

func TestLoadInvalidBool(t *testing.T) {
	t.Setenv("METRICS_ENABLED", "maybe")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid bool")
	}
}

func TestDefaultTeams(t *testing.T) {
	teams, err := DefaultTeams()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	names := make([]string, 0, len(teams))
	for _, team := range teams {
		names = append(names, team.Name)
	}
	if got := strings.Join(names, ","); got != "Egypt,Senegal,Morocco,Nigeria" {
		t.Fatalf("unexpected team order %s", got)
	}
	if !teams[0].Primary {
		t.Fatal("expected Egypt to be the primary team")
	}
	for _, team := range teams[1:] {
		if team.Primary {
			t.Fatalf("expected %s to be an opponent", team.Name)
		}
	}
	if teams[0].Before != "egypt_squad_backup.csv" || teams[0].After != "egypt_squad.csv" {
		t.Fatalf("unexpected egypt files %+v", teams[0])
	}
}

func TestParseTeamsTable(t *testing.T) {
	body := "teams:\n  - name: Ghana\n    before: ghana_backup.csv\n    after: ghana.csv\n"

	teams, err := parseTeams([]byte(body))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(teams) != 1 || teams[0].Name != "Ghana" || teams[0].Primary {
		t.Fatalf("unexpected teams %+v", teams)
	}
}

func TestParseTeamsErrors(t *testing.T) {
	cases := map[string]string{
		"empty":     "teams: []\n",
		"missing":   "teams:\n  - name: Ghana\n    before: ghana_backup.csv\n",
		"duplicate": "teams:\n  - {name: A, before: a, after: b}\n  - {name: A, before: c, after: d}\n",
		"unknown":   "teams:\n  - {name: A, before: a, after: b, colour: red}\n",
		"malformed": "teams: [",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := parseTeams([]byte(body)); err == nil {
				t.Fatalf("expected error for %s table", name)
			}
		})
	}
}
