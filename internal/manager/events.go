package manager

// Event names published by the manager.
const (
	EventModelLoaded         = "model_loaded"
	EventModelLoadFailed     = "model_load_failed"
	EventPredictionSucceeded = "prediction_succeeded"
	EventPredictionFailed    = "prediction_failed"
)

// Event represents a manager lifecycle event.
// Minimal and stable: name + revision and optional fields via key/values.
type Event struct {
	Name     string
	Revision string
	Fields   map[string]any
}

// EventPublisher receives events from the manager. Implementations should be
// lightweight and non-blocking; Publish must not panic.
type EventPublisher interface {
	Publish(Event)
}

// noopPublisher is the default; it drops events.
type noopPublisher struct{}

func (noopPublisher) Publish(Event) {}
