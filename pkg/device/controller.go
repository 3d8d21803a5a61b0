package device

import "encoding/json"

// Device defines the capability set shared by every simulated device.
// Shells and the hub only ever talk to devices through this interface.
type Device interface {
	// Name returns the display name used for lookup ("Light", "Climate Control", ...)
	Name() string

	// Kind returns the short device kind (light, climate, security)
	Kind() string

	// TurnOn sets the primary power (or armed) flag
	TurnOn() Result

	// TurnOff clears the primary power (or armed) flag
	TurnOff() Result

	// Toggle flips the primary power (or armed) flag in one step
	Toggle() Result

	// Status returns a human readable summary of the current state
	Status() string

	// IsOn reports the primary power (or armed) flag
	IsOn() bool

	// State returns a snapshot of every field
	State() DeviceState

	// StateSchema returns the JSON Schema accepted by ApplyState
	StateSchema() json.RawMessage

	// ApplyState applies a state document through the validated setters,
	// one key at a time in a fixed per-device order. It is not atomic: keys
	// applied before the first rejected one keep their new values. Validate
	// the document against StateSchema first to get all-or-nothing behavior.
	ApplyState(state map[string]any) (Result, error)
}

// EventSubscriber defines the interface for subscribing to device events
type EventSubscriber interface {
	// Subscribe returns a channel that receives new log entries
	Subscribe() chan LogEntry

	// Unsubscribe removes a subscription and closes its channel
	Unsubscribe(ch chan LogEntry)
}

// New constructs a device of the given kind with default state.
func New(kind string) (Device, error) {
	switch kind {
	case KindLight:
		return NewLight(), nil
	case KindClimate:
		return NewClimateControl(), nil
	case KindSecurity:
		return NewSecuritySystem(), nil
	default:
		return nil, unsupportedf("unknown device kind %q", kind)
	}
}

// Toggle turns d on when it is off and off when it is on. The check and the
// change happen under the device's own lock.
func Toggle(d Device) Result {
	return d.Toggle()
}
