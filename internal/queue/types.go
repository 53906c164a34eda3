// Queue depth observation: the supervisor's only view into broker state
package queue

import "context"

// FailureKind classifies why a depth probe did not yield a reading.
type FailureKind string

const (
	Unreachable       FailureKind = "unreachable"
	Timeout           FailureKind = "timeout"
	MalformedResponse FailureKind = "malformed_response"
)

// ProbeError wraps a FailureKind with the underlying cause.
type ProbeError struct {
	Kind FailureKind
	Err  error
}

func (e *ProbeError) Error() (msg string) {
	if e.Err != nil {
		msg = string(e.Kind) + ": " + e.Err.Error()
		return
	}
	msg = string(e.Kind)
	return
}

func (e *ProbeError) Unwrap() (err error) {
	err = e.Err
	return
}

// DepthProbe is the capability the AutoScaler depends on. Any broker
// backing that can answer "how many messages are queued" satisfies it.
type DepthProbe interface {
	Depth(ctx context.Context, queueName string) (depth int64, err error)
}
