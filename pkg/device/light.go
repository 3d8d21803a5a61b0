package device

import (
	"encoding/json"
	"sync"
)

var lightSchema = json.RawMessage(`{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"state": {"type": "string", "enum": ["ON", "OFF"]},
		"brightness": {"type": "integer", "minimum": 0, "maximum": 100},
		"color": {"type": "string", "minLength": 1}
	},
	"additionalProperties": false
}`)

var lightKeys = []string{"brightness", "color", "state"}

// Light is a dimmable, colored light.
type Light struct {
	mu         sync.Mutex
	on         bool
	brightness int
	color      string
}

// NewLight returns a light that is off at full brightness and white.
func NewLight() *Light {
	return &Light{brightness: 100, color: "white"}
}

func (l *Light) Name() string { return NameLight }
func (l *Light) Kind() string { return KindLight }

func (l *Light) TurnOn() Result {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.setPower(true)
}

func (l *Light) TurnOff() Result {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.setPower(false)
}

func (l *Light) Toggle() Result {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.setPower(!l.on)
}

func (l *Light) setPower(on bool) Result {
	l.on = on
	if on {
		return ok("Light turned on.")
	}
	return ok("Light turned off.")
}

func (l *Light) IsOn() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.on
}

// SetBrightness sets the brightness percentage. Levels outside [0,100] are rejected.
func (l *Light) SetBrightness(level int) (Result, error) {
	if level < 0 || level > 100 {
		return reject("Brightness level must be between 0 and 100.")
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.brightness = level
	return ok("Light brightness set to %d%%.", level), nil
}

// SetColor sets the light color. Any non-empty text is accepted.
func (l *Light) SetColor(color string) (Result, error) {
	if color == "" {
		return reject("Light color must not be empty.")
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.color = color
	return ok("Light color set to %s.", color), nil
}

func (l *Light) Brightness() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.brightness
}

func (l *Light) Color() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.color
}

// Status deliberately reports power only.
func (l *Light) Status() string {
	if l.IsOn() {
		return "Light is on"
	}
	return "Light is off"
}

func (l *Light) State() DeviceState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return DeviceState{
		"on":         l.on,
		"brightness": l.brightness,
		"color":      l.color,
	}
}

func (l *Light) StateSchema() json.RawMessage { return lightSchema }

func (l *Light) ApplyState(state map[string]any) (Result, error) {
	return applyOrdered(state, lightKeys, func(key string, v any) (Result, error) {
		switch key {
		case "brightness":
			n, err := intValue(key, v)
			if err != nil {
				return rejected(err.Error()), err
			}
			return l.SetBrightness(n)
		case "color":
			s, err := stringValue(key, v)
			if err != nil {
				return rejected(err.Error()), err
			}
			return l.SetColor(s)
		default:
			return applyPower(l, v)
		}
	})
}
