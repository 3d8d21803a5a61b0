// Package hub coordinates a set of devices: bulk power operations,
// aggregated status and lookup by name.
package hub

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/urmzd/smarthome/pkg/device"
	"github.com/urmzd/smarthome/pkg/metrics"
)

// Outcome pairs a device name with the result of an operation on it and
// the device's status afterwards.
type Outcome struct {
	Name   string        `json:"name"`
	Result device.Result `json:"result"`
	Status string        `json:"status"`
}

// StatusEntry pairs a device name with its status text.
type StatusEntry struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// Hub holds an insertion-ordered collection of devices. Names need not be
// unique; lookups return the first match.
//
// All methods are safe for concurrent use. Each device guards its own state.
type Hub struct {
	mu      sync.RWMutex
	devices []device.Device
}

// New creates an empty hub.
func New() *Hub {
	return &Hub{}
}

// FromKinds builds a hub holding one new device per kind, in order.
func FromKinds(kinds []string) (*Hub, error) {
	h := New()
	for _, kind := range kinds {
		d, err := device.New(kind)
		if err != nil {
			return nil, fmt.Errorf("build hub: %w", err)
		}
		h.Add(d)
	}
	return h, nil
}

// Add registers d. The hub takes ownership of the device.
func (h *Hub) Add(d device.Device) {
	h.mu.Lock()
	h.devices = append(h.devices, d)
	n := len(h.devices)
	h.mu.Unlock()

	log.Debug().Str("device", d.Name()).Int("count", n).Msg("device added")
}

// Devices returns the registered devices in insertion order.
func (h *Hub) Devices() []device.Device {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]device.Device, len(h.devices))
	copy(out, h.devices)
	return out
}

// Len returns the number of registered devices.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.devices)
}

// TurnOnAll turns on every device in insertion order.
func (h *Hub) TurnOnAll() []Outcome {
	return h.each("turn_on", device.Device.TurnOn)
}

// TurnOffAll turns off every device in insertion order.
func (h *Hub) TurnOffAll() []Outcome {
	return h.each("turn_off", device.Device.TurnOff)
}

func (h *Hub) each(op string, fn func(device.Device) device.Result) []Outcome {
	devices := h.Devices()
	out := make([]Outcome, 0, len(devices))
	for _, d := range devices {
		res := fn(d)
		metrics.RecordOperation(d.Name(), op, res.OK, nil)
		out = append(out, Outcome{Name: d.Name(), Result: res, Status: d.Status()})
	}
	log.Debug().Str("operation", op).Int("devices", len(out)).Msg("bulk operation")
	return out
}

// StatusAll returns one status entry per device in insertion order.
func (h *Hub) StatusAll() []StatusEntry {
	devices := h.Devices()
	out := make([]StatusEntry, 0, len(devices))
	for _, d := range devices {
		out = append(out, StatusEntry{Name: d.Name(), Status: d.Status()})
	}
	return out
}

// Find returns the first device whose name equals name.
// Returns device.ErrNotFound if there is none.
func (h *Hub) Find(name string) (device.Device, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, d := range h.devices {
		if d.Name() == name {
			return d, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", device.ErrNotFound, name)
}

// Lookup resolves id as a device name first, then as a device kind.
func (h *Hub) Lookup(id string) (device.Device, error) {
	if d, err := h.Find(id); err == nil {
		return d, nil
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, d := range h.devices {
		if d.Kind() == id {
			return d, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", device.ErrNotFound, id)
}

// Toggle turns the named device on if it is off, otherwise off.
func (h *Hub) Toggle(id string) (Outcome, error) {
	d, err := h.Lookup(id)
	if err != nil {
		return Outcome{}, err
	}
	res := device.Toggle(d)
	metrics.RecordOperation(d.Name(), "toggle", res.OK, nil)
	return Outcome{Name: d.Name(), Result: res, Status: d.Status()}, nil
}

// Security returns the first registered security system.
func (h *Hub) Security() (*device.SecuritySystem, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, d := range h.devices {
		if s, ok := d.(*device.SecuritySystem); ok {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: no security system registered", device.ErrNotFound)
}

// Apply applies a state document to the device identified by id.
// Callers validate the document against the device's schema first.
func (h *Hub) Apply(id string, state map[string]any) (Outcome, error) {
	d, err := h.Lookup(id)
	if err != nil {
		return Outcome{}, err
	}
	res, err := d.ApplyState(state)
	metrics.RecordOperation(d.Name(), "apply_state", res.OK, err)
	if err != nil {
		log.Debug().Err(err).Str("device", d.Name()).Msg("state rejected")
	}
	return Outcome{Name: d.Name(), Result: res, Status: d.Status()}, err
}
