package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrTeam    = "team"
	AttrOutcome = "outcome"
)

// Outcome values for AttrOutcome.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)
