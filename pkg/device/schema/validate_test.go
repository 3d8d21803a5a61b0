package schema

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/urmzd/smarthome/pkg/device"
)

func TestValidate_ValidLightPayload(t *testing.T) {
	v := NewValidator()

	err := v.ValidateDevice(device.NewLight(), map[string]any{
		"state":      "ON",
		"brightness": float64(80),
		"color":      "warm white",
	})
	if err != nil {
		t.Errorf("expected valid payload, got: %v", err)
	}
}

func TestValidate_IntegerValues(t *testing.T) {
	v := NewValidator()

	err := v.ValidateDevice(device.NewClimateControl(), map[string]any{
		"temperature": 21,
		"fan_speed":   json.Number("2"),
	})
	if err != nil {
		t.Errorf("expected valid payload, got: %v", err)
	}
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		dev     device.Device
		payload map[string]any
	}{
		{"invalid power", device.NewLight(), map[string]any{"state": "INVALID"}},
		{"brightness out of range", device.NewLight(), map[string]any{"brightness": float64(101)}},
		{"negative brightness", device.NewLight(), map[string]any{"brightness": float64(-1)}},
		{"fractional brightness", device.NewLight(), map[string]any{"brightness": 12.5}},
		{"empty color", device.NewLight(), map[string]any{"color": ""}},
		{"unknown property", device.NewLight(), map[string]any{"state": "ON", "hue": 3}},
		{"cold temperature", device.NewClimateControl(), map[string]any{"temperature": float64(9)}},
		{"hot temperature", device.NewClimateControl(), map[string]any{"temperature": float64(31)}},
		{"fan speed", device.NewClimateControl(), map[string]any{"fan_speed": float64(4)}},
		{"mode", device.NewClimateControl(), map[string]any{"mode": "Auto"}},
		{"wrong type", device.NewClimateControl(), map[string]any{"humidity": "wet"}},
		{"sensitivity", device.NewSecuritySystem(), map[string]any{"sensitivity": float64(0)}},
	}

	v := NewValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateDevice(tt.dev, tt.payload)
			if !errors.Is(err, device.ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestValidate_EmptySchema(t *testing.T) {
	v := NewValidator()

	err := v.Validate(json.RawMessage(`{}`), map[string]any{
		"anything": "goes",
	})
	if err != nil {
		t.Errorf("empty schema should skip validation, got: %v", err)
	}
}

func TestValidate_NilSchema(t *testing.T) {
	v := NewValidator()

	if err := v.Validate(nil, map[string]any{"anything": "goes"}); err != nil {
		t.Errorf("nil schema should skip validation, got: %v", err)
	}
}

func TestValidate_CachesSchema(t *testing.T) {
	v := NewValidator()
	l := device.NewLight()

	if err := v.ValidateDevice(l, map[string]any{"state": "ON"}); err != nil {
		t.Fatal(err)
	}
	if err := v.ValidateDevice(device.NewLight(), map[string]any{"state": "OFF"}); err != nil {
		t.Fatal(err)
	}
	if err := v.ValidateDevice(device.NewSecuritySystem(), map[string]any{"sensitivity": 3}); err != nil {
		t.Fatal(err)
	}

	v.mu.RLock()
	cacheSize := len(v.cache)
	v.mu.RUnlock()
	if cacheSize != 2 {
		t.Errorf("expected 2 cached schemas, got %d", cacheSize)
	}
}
