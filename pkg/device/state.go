package device

import (
	"encoding/json"
	"fmt"
	"math"
)

// intValue converts a decoded JSON number to an int.
func intValue(key string, v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return intFrom64(key, n)
	case float64:
		return intFromFloat(key, n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return intFrom64(key, i)
		}
		// Integral decimals such as 50.0 are integers to the schema.
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %s must be a number", ErrValidation, key)
		}
		return intFromFloat(key, f)
	default:
		return 0, fmt.Errorf("%w: %s must be a number", ErrValidation, key)
	}
}

func intFromFloat(key string, f float64) (int, error) {
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: %s must be an integer", ErrValidation, key)
	}
	if f < math.MinInt || f >= -math.MinInt {
		return 0, fmt.Errorf("%w: %s is out of range", ErrValidation, key)
	}
	return int(f), nil
}

func intFrom64(key string, n int64) (int, error) {
	if n < math.MinInt || n > math.MaxInt {
		return 0, fmt.Errorf("%w: %s is out of range", ErrValidation, key)
	}
	return int(n), nil
}

func stringValue(key string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string", ErrValidation, key)
	}
	return s, nil
}

// applyPower handles the "state" key shared by every device.
func applyPower(d Device, v any) (Result, error) {
	s, err := stringValue("state", v)
	if err != nil {
		return rejected(err.Error()), err
	}
	switch s {
	case PowerOn:
		return d.TurnOn(), nil
	case PowerOff:
		return d.TurnOff(), nil
	default:
		return reject(fmt.Sprintf("State must be either '%s' or '%s'.", PowerOn, PowerOff))
	}
}

// checkKeys rejects documents carrying keys outside allowed.
func checkKeys(state map[string]any, allowed []string) error {
	for k := range state {
		known := false
		for _, a := range allowed {
			if k == a {
				known = true
				break
			}
		}
		if !known {
			return unsupportedf("unknown state key %q", k)
		}
	}
	return nil
}

// applyOrdered runs one setter per present key, in the order of keys,
// stopping at the first failure. The returned Result is the last one produced.
func applyOrdered(state map[string]any, keys []string, set func(key string, v any) (Result, error)) (Result, error) {
	if err := checkKeys(state, keys); err != nil {
		return rejected(err.Error()), err
	}
	res := Result{Message: "No changes.", OK: true}
	for _, k := range keys {
		v, present := state[k]
		if !present {
			continue
		}
		r, err := set(k, v)
		if err != nil {
			return r, err
		}
		res = r
	}
	return res, nil
}
