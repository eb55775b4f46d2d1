// Package pubsub provides a generic publish/subscribe event broker.
//
// Two producers use it: the notify package bridges animal notifications into
// a broker so the Bubble Tea models can react to them, and the log package
// fans out formatted log entries to interested views.
package pubsub

import (
	"context"
	"time"
)

// EventType labels what a published event represents.
type EventType string

const (
	// NotifiedEvent carries an animal that observers were just notified about.
	NotifiedEvent EventType = "notified"

	// LoggedEvent carries a formatted log entry.
	LoggedEvent EventType = "logged"
)

// Event is a published event with a typed payload.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}

// Subscriber provides a subscription channel for events.
type Subscriber[T any] interface {
	Subscribe(ctx context.Context) <-chan Event[T]
}

// Publisher publishes events with a typed payload.
type Publisher[T any] interface {
	Publish(eventType EventType, payload T)
}
