package contact

import "fmt"

// Status is the lifecycle state of the current submission.
type Status int

const (
	// StatusIdle is the resting state; the form accepts a submission.
	StatusIdle Status = iota
	// StatusSending means a dispatch is in flight.
	StatusSending
	// StatusSuccess means the last dispatch was delivered. It reverts to
	// StatusIdle after the reset delay.
	StatusSuccess
	// StatusFailed means the last submission was rejected by validation or
	// by the dispatch service.
	StatusFailed
)

// String returns a lowercase name for logs.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSending:
		return "sending"
	case StatusSuccess:
		return "success"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}
