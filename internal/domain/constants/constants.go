// Package constants holds string constants shared across layers.
package constants

// Pub/Sub provider names accepted in configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Event types published to the message bus.
const (
	EventPasswordResetConfirmed = "password_reset.confirmed"
	EventTransactionRecorded    = "transaction.recorded"
)

// EventTypes lists every event type the service emits.
var EventTypes = []string{
	EventPasswordResetConfirmed,
	EventTransactionRecorded,
}
