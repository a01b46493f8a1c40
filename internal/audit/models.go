// Package audit records which compliance artifacts were generated and when.
// Events are advisory: computations never fail on a failed audit write.
package audit

import "time"

// Action identifies the generated artifact.
type Action string

const (
	ActionScoreComputed   Action = "score_computed"
	ActionReturnGenerated Action = "annual_return_generated"
	ActionFieldsExported  Action = "fields_exported"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Timestamp     time.Time
	OrgID         string
	Action        Action
	FinancialYear int
	Detail        string
}
