package device

import (
	"fmt"
	"time"
)

// Result is the outcome of a device operation. Message is meant for display;
// OK is false when the operation was rejected or had no effect.
type Result struct {
	Message string `json:"message"`
	OK      bool   `json:"ok"`
}

func ok(format string, args ...any) Result {
	return Result{Message: fmt.Sprintf(format, args...), OK: true}
}

func rejected(msg string) Result {
	return Result{Message: msg}
}

// DeviceState represents the current state of a device as a dynamic map.
type DeviceState map[string]any

// LogEntry is a single timestamped security event.
type LogEntry struct {
	Time    time.Time `json:"timestamp"`
	Message string    `json:"message"`
}

// String renders the entry as "<ctime>: <message>".
func (e LogEntry) String() string {
	return e.Time.Format(time.ANSIC) + ": " + e.Message
}

// In returns a copy of the entry with its timestamp converted to loc.
func (e LogEntry) In(loc *time.Location) LogEntry {
	if loc == nil {
		return e
	}
	e.Time = e.Time.In(loc)
	return e
}

// Device kind constants
const (
	KindLight    = "light"
	KindClimate  = "climate"
	KindSecurity = "security"
)

// Device name constants
const (
	NameLight    = "Light"
	NameClimate  = "Climate Control"
	NameSecurity = "Security System"
)

// Power values accepted by the "state" key of ApplyState
const (
	PowerOn  = "ON"
	PowerOff = "OFF"
)

// Kinds returns every supported device kind in default layout order.
func Kinds() []string {
	return []string{KindLight, KindClimate, KindSecurity}
}
