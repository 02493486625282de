package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventFieldValueChanged EventType = "FieldValueChanged"
	EventParametersLoaded  EventType = "ParametersLoaded"
	EventParametersSaved   EventType = "ParametersSaved"
	EventAppReady          EventType = "AppReady"
	EventError             EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// FieldValueChangedEvent is emitted when a field value changes outside the editor that observes it
type FieldValueChangedEvent struct {
	FieldID string
	Value   string
}

func (e FieldValueChangedEvent) Type() EventType { return EventFieldValueChanged }

// ParametersLoadedEvent is emitted when installation parameters are read from the host
type ParametersLoadedEvent struct {
	Installed bool // false when the app has no persisted parameters yet
}

func (e ParametersLoadedEvent) Type() EventType { return EventParametersLoaded }

// ParametersSavedEvent is emitted after the configure hook result has been persisted
type ParametersSavedEvent struct{}

func (e ParametersSavedEvent) Type() EventType { return EventParametersSaved }

// AppReadyEvent is emitted when a screen has finished loading and asks to be displayed
type AppReadyEvent struct {
	Location string // "field" or "config"
}

func (e AppReadyEvent) Type() EventType { return EventAppReady }

// ErrorEvent is emitted when an error occurs talking to the host
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
