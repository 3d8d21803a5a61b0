package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/urmzd/smarthome/pkg/device"
)

// action is one entry of a device menu. run returns an error only when
// the input has ended.
type action struct {
	label string
	run   func() error
}

// deviceMenu loops over the actions available for d until the user
// returns to the main menu.
func (s *Shell) deviceMenu(ctx context.Context, d device.Device) error {
	actions := s.actionsFor(d)

	var b strings.Builder
	fmt.Fprintf(&b, "%s Menu:\n", d.Name())
	for i, a := range actions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, a.label)
	}
	fmt.Fprintf(&b, "%d. Return to main menu", len(actions)+1)
	menu := b.String()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.println(menu)
		choice, err := s.readChoice("Enter your choice: ", len(actions)+1)
		if errors.Is(err, io.EOF) {
			return err
		}
		if err != nil {
			continue
		}
		if choice == len(actions)+1 {
			return nil
		}
		if err := actions[choice-1].run(); err != nil {
			return err
		}
	}
}

func (s *Shell) actionsFor(d device.Device) []action {
	power := []action{
		{"Turn on", s.simple(d, "turn_on", d.TurnOn)},
		{"Turn off", s.simple(d, "turn_off", d.TurnOff)},
	}

	switch dev := d.(type) {
	case *device.Light:
		return append(power,
			action{"Set brightness", s.numeric(d, "set_brightness", "Enter brightness (0-100): ", dev.SetBrightness)},
			action{"Set color", s.text(d, "set_color", "Enter color: ", dev.SetColor)},
		)
	case *device.ClimateControl:
		return append(power,
			action{"Set temperature", s.numeric(d, "set_temperature", "Enter temperature (10-30°C): ", dev.SetTemperature)},
			action{"Set humidity", s.numeric(d, "set_humidity", "Enter humidity (0-100%): ", dev.SetHumidity)},
			action{"Set fan speed", s.numeric(d, "set_fan_speed", "Enter fan speed (0=Off, 1=Low, 2=Medium, 3=High): ", dev.SetFanSpeed)},
			action{"Set mode", s.text(d, "set_mode", "Enter mode (Cooling, Heating): ", dev.SetMode)},
		)
	case *device.SecuritySystem:
		return []action{
			{"Arm system", s.simple(d, "turn_on", dev.TurnOn)},
			{"Disarm system", s.simple(d, "turn_off", dev.TurnOff)},
			{"Trigger alarm", s.simple(d, "trigger_alarm", dev.TriggerAlarm)},
			{"Detect motion", s.simple(d, "detect_motion", dev.DetectMotion)},
			{"Reset alarm", s.simple(d, "reset_alarm", dev.ResetAlarm)},
			{"Set motion sensitivity", s.numeric(d, "set_sensitivity", "Enter motion sensitivity (1-10): ", dev.SetSensitivity)},
			{"Start camera recording", s.simple(d, "start_recording", dev.StartCameraRecording)},
			{"Stop camera recording", s.simple(d, "stop_recording", dev.StopCameraRecording)},
		}
	default:
		return power
	}
}

func (s *Shell) simple(d device.Device, op string, fn func() device.Result) func() error {
	return func() error {
		s.report(d, op, fn(), nil)
		return nil
	}
}

func (s *Shell) numeric(d device.Device, op, prompt string, fn func(int) (device.Result, error)) func() error {
	return func() error {
		n, err := s.readNumber(prompt)
		if errors.Is(err, io.EOF) {
			return err
		}
		if err != nil {
			return nil
		}
		res, err := fn(n)
		s.report(d, op, res, err)
		return nil
	}
}

func (s *Shell) text(d device.Device, op, prompt string, fn func(string) (device.Result, error)) func() error {
	return func() error {
		value, err := s.readLine(prompt)
		if err != nil {
			return err
		}
		res, err := fn(value)
		s.report(d, op, res, err)
		return nil
	}
}
