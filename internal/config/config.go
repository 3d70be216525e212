package config

import "path/filepath"

// Config holds runtime configuration for a comparison run.
type Config struct {
	DataRoot        string `env:"DATA_ROOT" envDefault:"data"`
	BackupDir       string `env:"BACKUP_DIR"`
	OpponentsSubdir string `env:"OPPONENTS_SUBDIR" envDefault:"opponents"`
	Log             LogConfig
	Metrics         MetricsConfig
}

// LogConfig selects the slog handler and level.
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (Config, error) {
	var cfg Config
	if err := parseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.BackupDir == "" {
		cfg.BackupDir = filepath.Join(cfg.DataRoot, defaultBackupSubdir)
	}
	return cfg, nil
}

// OpponentsDir is where every non-primary team's updated squad lives.
func (c Config) OpponentsDir() string {
	return filepath.Join(c.DataRoot, c.OpponentsSubdir)
}
