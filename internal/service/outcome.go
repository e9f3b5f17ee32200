package service

import (
	"errors"

	"github.com/leon37/NetoLedger/internal/infrastructure/llm"
	"github.com/leon37/NetoLedger/internal/model"
)

// State is the terminal state of a generation workflow.
type State int

const (
	StateSuccess State = iota
	StateOffline       // no credential, nothing was called
	StateFailed
)

// FailureKind says why a workflow ended in StateFailed.
type FailureKind string

const (
	FailureNone              FailureKind = ""
	FailureProvider          FailureKind = "provider"           // the call itself failed
	FailureMalformedResponse FailureKind = "malformed_response" // empty or not a JSON object
	FailureSchemaViolation   FailureKind = "schema_violation"   // JSON that does not match the schema
)

// Outcome tags a workflow result. Handlers branch on it instead of looking
// at the fallback values inside the result.
type Outcome struct {
	State State
	Kind  FailureKind
	Err   error
}

func success() Outcome { return Outcome{State: StateSuccess} }
func offline() Outcome { return Outcome{State: StateOffline} }

func failed(err error) Outcome {
	return Outcome{State: StateFailed, Kind: classifyFailure(err), Err: err}
}

// Failed reports whether the workflow fell back because of an error.
func (o Outcome) Failed() bool { return o.State == StateFailed }

// Status maps the outcome onto the ia_status value sent to clients.
func (o Outcome) Status() model.IAStatus {
	switch {
	case o.State == StateSuccess:
		return model.IAStatusSuccess
	case o.State == StateOffline:
		return model.IAStatusOffline
	case o.Kind == FailureProvider:
		return model.IAStatusFailed
	default:
		return model.IAStatusFailedUnknown
	}
}

func classifyFailure(err error) FailureKind {
	switch {
	case llm.IsProviderError(err):
		return FailureProvider
	case errors.Is(err, llm.ErrSchemaViolation):
		return FailureSchemaViolation
	default:
		return FailureMalformedResponse
	}
}
