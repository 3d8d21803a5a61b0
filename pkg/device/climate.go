package device

import (
	"encoding/json"
	"fmt"
	"sync"
)

// FanSpeed is a fan level from 0 (Off) to 3 (High).
type FanSpeed int

const (
	FanOff FanSpeed = iota
	FanLow
	FanMedium
	FanHigh
)

var fanSpeedNames = [...]string{"Off", "Low", "Medium", "High"}

func (s FanSpeed) String() string {
	if s < FanOff || s > FanHigh {
		return fmt.Sprintf("FanSpeed(%d)", int(s))
	}
	return fanSpeedNames[s]
}

// Mode is the climate control operating mode.
type Mode string

const (
	ModeCooling Mode = "Cooling"
	ModeHeating Mode = "Heating"
)

// Temperature and humidity limits
const (
	MinTemperature = 10
	MaxTemperature = 30
	MinHumidity    = 0
	MaxHumidity    = 100
)

var climateSchema = json.RawMessage(`{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"state": {"type": "string", "enum": ["ON", "OFF"]},
		"temperature": {"type": "integer", "minimum": 10, "maximum": 30},
		"humidity": {"type": "integer", "minimum": 0, "maximum": 100},
		"fan_speed": {"type": "integer", "minimum": 0, "maximum": 3},
		"mode": {"type": "string", "enum": ["Cooling", "Heating"]}
	},
	"additionalProperties": false
}`)

var climateKeys = []string{"temperature", "humidity", "fan_speed", "mode", "state"}

// ClimateControl controls temperature, humidity and fan speed in a room.
type ClimateControl struct {
	mu          sync.Mutex
	on          bool
	temperature int
	humidity    int
	fanSpeed    FanSpeed
	mode        Mode
}

// NewClimateControl returns a climate control that is off, at 22°C, 50%
// humidity, fan off, cooling.
func NewClimateControl() *ClimateControl {
	return &ClimateControl{
		temperature: 22,
		humidity:    50,
		fanSpeed:    FanOff,
		mode:        ModeCooling,
	}
}

func (c *ClimateControl) Name() string { return NameClimate }
func (c *ClimateControl) Kind() string { return KindClimate }

func (c *ClimateControl) TurnOn() Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.setPower(true)
}

func (c *ClimateControl) TurnOff() Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.setPower(false)
}

func (c *ClimateControl) Toggle() Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.setPower(!c.on)
}

func (c *ClimateControl) setPower(on bool) Result {
	c.on = on
	if on {
		return ok("Climate control turned on.")
	}
	return ok("Climate control turned off.")
}

func (c *ClimateControl) IsOn() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.on
}

func (c *ClimateControl) SetTemperature(t int) (Result, error) {
	if t < MinTemperature || t > MaxTemperature {
		return reject("Temperature must be between 10 and 30°C.")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.temperature = t
	return ok("Temperature set to %d°C.", t), nil
}

func (c *ClimateControl) SetHumidity(h int) (Result, error) {
	if h < MinHumidity || h > MaxHumidity {
		return reject("Humidity level must be between 0 and 100%.")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.humidity = h
	return ok("Humidity set to %d%%.", h), nil
}

func (c *ClimateControl) SetFanSpeed(s int) (Result, error) {
	speed := FanSpeed(s)
	if speed < FanOff || speed > FanHigh {
		return reject("Fan speed must be between 0 (Off) and 3 (High).")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fanSpeed = speed
	return ok("Fan speed set to %s.", speed), nil
}

func (c *ClimateControl) SetMode(m string) (Result, error) {
	mode := Mode(m)
	if mode != ModeCooling && mode != ModeHeating {
		return reject("Mode must be either 'Cooling' or 'Heating'.")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mode = mode
	return ok("Mode set to %s.", mode), nil
}

func (c *ClimateControl) Temperature() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.temperature
}

func (c *ClimateControl) Humidity() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.humidity
}

func (c *ClimateControl) FanSpeed() FanSpeed {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fanSpeed
}

func (c *ClimateControl) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

func (c *ClimateControl) Status() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.on {
		return "Climate control is off"
	}
	return fmt.Sprintf("Climate control is on, Temperature: %d°C, Humidity: %d%%, Fan Speed: %s, Mode: %s",
		c.temperature, c.humidity, c.fanSpeed, c.mode)
}

func (c *ClimateControl) State() DeviceState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return DeviceState{
		"on":          c.on,
		"temperature": c.temperature,
		"humidity":    c.humidity,
		"fan_speed":   int(c.fanSpeed),
		"fan_name":    c.fanSpeed.String(),
		"mode":        string(c.mode),
	}
}

func (c *ClimateControl) StateSchema() json.RawMessage { return climateSchema }

func (c *ClimateControl) ApplyState(state map[string]any) (Result, error) {
	return applyOrdered(state, climateKeys, func(key string, v any) (Result, error) {
		if key == "state" {
			return applyPower(c, v)
		}
		if key == "mode" {
			s, err := stringValue(key, v)
			if err != nil {
				return rejected(err.Error()), err
			}
			return c.SetMode(s)
		}

		n, err := intValue(key, v)
		if err != nil {
			return rejected(err.Error()), err
		}
		switch key {
		case "temperature":
			return c.SetTemperature(n)
		case "humidity":
			return c.SetHumidity(n)
		default:
			return c.SetFanSpeed(n)
		}
	})
}
