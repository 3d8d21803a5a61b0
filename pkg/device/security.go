package device

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// Motion sensitivity limits
const (
	MinSensitivity = 1
	MaxSensitivity = 10
)

var securitySchema = json.RawMessage(`{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"state": {"type": "string", "enum": ["ON", "OFF"]},
		"sensitivity": {"type": "integer", "minimum": 1, "maximum": 10}
	},
	"additionalProperties": false
}`)

var securityKeys = []string{"sensitivity", "state"}

// SecurityState is the behavioural state derived from the system's flags.
type SecurityState string

const (
	SecurityDisarmed    SecurityState = "disarmed"
	SecurityArmedSecure SecurityState = "armed_secure"
	SecurityArmedMotion SecurityState = "armed_motion_detected"
	SecurityArmedAlarm  SecurityState = "armed_alarm_triggered"
)

// SecuritySystem manages the alarm, motion detection and cameras, and keeps
// an append-only log of security events.
//
// Invariants: cameras are active exactly while armed, the alarm can only be
// raised while armed, and disarming clears alarm and cameras. Disarming does
// not clear the motion flag.
type SecuritySystem struct {
	mu          sync.Mutex
	armed       bool
	alarm       bool
	motion      bool
	camera      bool
	sensitivity int
	logs        []LogEntry
	now         func() time.Time

	subscribers   []chan LogEntry
	subscribersMu sync.Mutex
}

// SecurityOption configures a SecuritySystem.
type SecurityOption func(*SecuritySystem)

// WithClock sets the clock used to timestamp log entries.
func WithClock(now func() time.Time) SecurityOption {
	return func(s *SecuritySystem) {
		s.now = now
	}
}

// NewSecuritySystem returns a disarmed security system with sensitivity 5.
func NewSecuritySystem(opts ...SecurityOption) *SecuritySystem {
	s := &SecuritySystem{
		sensitivity: 5,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *SecuritySystem) Name() string { return NameSecurity }
func (s *SecuritySystem) Kind() string { return KindSecurity }

// TurnOn arms the system and activates the cameras. Every call is logged.
func (s *SecuritySystem) TurnOn() Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.arm()
}

// TurnOff disarms the system, silencing the alarm and deactivating the cameras.
func (s *SecuritySystem) TurnOff() Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disarm()
}

// Toggle disarms an armed system and arms a disarmed one.
func (s *SecuritySystem) Toggle() Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.armed {
		return s.disarm()
	}
	return s.arm()
}

func (s *SecuritySystem) arm() Result {
	s.armed = true
	s.camera = true
	return s.record("Security system armed and cameras activated.")
}

func (s *SecuritySystem) disarm() Result {
	s.armed = false
	s.alarm = false
	s.camera = false
	return s.record("Security system disarmed and cameras deactivated.")
}

func (s *SecuritySystem) IsOn() bool {
	return s.IsArmed()
}

func (s *SecuritySystem) IsArmed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.armed
}

func (s *SecuritySystem) AlarmOn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.alarm
}

func (s *SecuritySystem) MotionDetected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.motion
}

func (s *SecuritySystem) CameraActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.camera
}

func (s *SecuritySystem) Sensitivity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sensitivity
}

// TriggerAlarm raises the alarm. It has no effect unless the system is armed.
func (s *SecuritySystem) TriggerAlarm() Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.armed {
		return rejected("Security system is not armed.")
	}
	return s.triggerAlarm()
}

func (s *SecuritySystem) triggerAlarm() Result {
	s.alarm = true
	return s.record("Alarm triggered!")
}

// DetectMotion records motion and escalates to the alarm. It has no effect
// unless the system is armed. The alarm entry is logged before the motion entry.
func (s *SecuritySystem) DetectMotion() Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.armed {
		return rejected("Security system is not armed.")
	}
	s.motion = true
	s.triggerAlarm()
	return s.record("Motion detected!")
}

// ResetAlarm clears the alarm and motion flags regardless of the armed state.
func (s *SecuritySystem) ResetAlarm() Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alarm = false
	s.motion = false
	return s.record("Alarm reset.")
}

func (s *SecuritySystem) StartCameraRecording() Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.camera {
		return rejected("Cameras are not active.")
	}
	return s.record("Camera recording started.")
}

func (s *SecuritySystem) StopCameraRecording() Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.camera {
		return rejected("Cameras are not active.")
	}
	return s.record("Camera recording stopped.")
}

// SetSensitivity sets the motion sensitivity. Rejected levels are not logged.
func (s *SecuritySystem) SetSensitivity(level int) (Result, error) {
	if level < MinSensitivity || level > MaxSensitivity {
		return reject("Motion sensitivity must be between 1 and 10.")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sensitivity = level
	return s.record(fmt.Sprintf("Motion sensitivity set to %d", level)), nil
}

// Logs returns a copy of the event log in insertion order.
func (s *SecuritySystem) Logs() []LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]LogEntry, len(s.logs))
	copy(out, s.logs)
	return out
}

// Condition returns the state derived from the current flags.
func (s *SecuritySystem) Condition() SecurityState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.condition()
}

func (s *SecuritySystem) condition() SecurityState {
	switch {
	case !s.armed:
		return SecurityDisarmed
	case s.alarm:
		return SecurityArmedAlarm
	case s.motion:
		return SecurityArmedMotion
	default:
		return SecurityArmedSecure
	}
}

func (s *SecuritySystem) Status() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.condition() {
	case SecurityArmedAlarm:
		return "Security system is armed, alarm is triggered!"
	case SecurityArmedMotion:
		return "Security system is armed, motion detected!"
	case SecurityArmedSecure:
		return "Security system is armed, all is secure."
	default:
		return "Security system is disarmed"
	}
}

func (s *SecuritySystem) State() DeviceState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return DeviceState{
		"armed":         s.armed,
		"alarm":         s.alarm,
		"motion":        s.motion,
		"camera_active": s.camera,
		"sensitivity":   s.sensitivity,
		"condition":     string(s.condition()),
		"log_entries":   len(s.logs),
	}
}

func (s *SecuritySystem) StateSchema() json.RawMessage { return securitySchema }

func (s *SecuritySystem) ApplyState(state map[string]any) (Result, error) {
	return applyOrdered(state, securityKeys, func(key string, v any) (Result, error) {
		if key == "state" {
			return applyPower(s, v)
		}
		n, err := intValue(key, v)
		if err != nil {
			return rejected(err.Error()), err
		}
		return s.SetSensitivity(n)
	})
}

// Subscribe returns a channel receiving every log entry appended from now on.
func (s *SecuritySystem) Subscribe() chan LogEntry {
	ch := make(chan LogEntry, 16)
	s.subscribersMu.Lock()
	s.subscribers = append(s.subscribers, ch)
	s.subscribersMu.Unlock()
	return ch
}

func (s *SecuritySystem) Unsubscribe(ch chan LogEntry) {
	s.subscribersMu.Lock()
	defer s.subscribersMu.Unlock()
	for i, sub := range s.subscribers {
		if sub == ch {
			s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
			close(ch)
			return
		}
	}
}

// record appends a log entry and publishes it. Callers hold s.mu.
func (s *SecuritySystem) record(msg string) Result {
	entry := LogEntry{Time: s.now(), Message: msg}
	s.logs = append(s.logs, entry)
	s.publish(entry)
	return ok("%s", msg)
}

func (s *SecuritySystem) publish(entry LogEntry) {
	s.subscribersMu.Lock()
	defer s.subscribersMu.Unlock()
	for _, ch := range s.subscribers {
		select {
		case ch <- entry:
		default:
			// slow subscriber, drop
		}
	}
}
