package service

// Outcome labels used by MetricsRecorder.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeBlocked = "blocked"
)

// MetricsRecorder records domain-level counters.
type MetricsRecorder interface {
	OTPIssued(outcome string)
	OTPValidated(outcome string)
	LinkCompleted(kind, outcome string)
	RatingAppended()
	PushesSent(success, failure int)
}
