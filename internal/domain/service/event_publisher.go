package service

import (
	"context"
	"time"
)

// DomainEvent is a fact published after a state change has been persisted.
// Events never carry credential material.
type DomainEvent struct {
	RequestID  string            `json:"request_id,omitempty"` // For distributed tracing
	Type       string            `json:"type"`
	SubjectID  string            `json:"subject_id"`
	OccurredAt time.Time         `json:"occurred_at"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish sends a domain event for asynchronous consumers
	Publish(ctx context.Context, event *DomainEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
