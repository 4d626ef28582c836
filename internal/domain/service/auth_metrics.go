package service

// Reset confirmation outcomes reported to AuthMetrics.
const (
	ResetOutcomeSuccess        = "success"
	ResetOutcomeUnauthorized   = "unauthorized"
	ResetOutcomeNotFound       = "not_found"
	ResetOutcomeInvalidState   = "invalid_state"
	ResetOutcomeMismatch       = "mismatch"
	ResetOutcomePersistence    = "persistence_failure"
	ResetOutcomePartialFailure = "partial_failure"
)

// AuthMetrics records authentication outcomes.
type AuthMetrics interface {
	ObserveResetOutcome(outcome string)
	ObserveLogin(success bool)
}
