package config

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

const defaultTeamsYAML = `# semifinal squads, compared in this order
teams:
  - name: Egypt
    primary: true
    before: egypt_squad_backup.csv
    after: egypt_squad.csv
  - name: Senegal
    before: senegal_backup.csv
    after: senegal.csv
  - name: Morocco
    before: morocco_backup.csv
    after: morocco.csv
  - name: Nigeria
    before: nigeria_backup.csv
    after: nigeria.csv
`

// Team maps a team to its pre- and post-semifinal squad files.
// Primary marks the team whose updated squad lives directly under the data root.
type Team struct {
	Name    string `yaml:"name"`
	Primary bool   `yaml:"primary,omitempty"`
	Before  string `yaml:"before"`
	After   string `yaml:"after"`
}

type teamTable struct {
	Teams []Team `yaml:"teams"`
}

// DefaultTeams returns the team table compiled into the binary.
func DefaultTeams() ([]Team, error) {
	return parseTeams([]byte(defaultTeamsYAML))
}

func parseTeams(data []byte) ([]Team, error) {
	var table teamTable
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&table); err != nil {
		return nil, fmt.Errorf("config: parse teams: %w", err)
	}
	if len(table.Teams) == 0 {
		return nil, errors.New("config: no teams configured")
	}
	seen := make(map[string]struct{}, len(table.Teams))
	for i, team := range table.Teams {
		if team.Name == "" || team.Before == "" || team.After == "" {
			return nil, fmt.Errorf("config: team %d: name, before and after are required", i)
		}
		if _, dup := seen[team.Name]; dup {
			return nil, fmt.Errorf("config: duplicate team %q", team.Name)
		}
		seen[team.Name] = struct{}{}
	}
	return table.Teams, nil
}
