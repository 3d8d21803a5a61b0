package device

import (
	"errors"
	"strconv"
	"testing"
	"time"
)

func fixedClock() func() time.Time {
	t0 := time.Date(2024, time.March, 5, 9, 30, 0, 0, time.UTC)
	n := 0
	return func() time.Time {
		n++
		return t0.Add(time.Duration(n) * time.Second)
	}
}

func messages(entries []LogEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Message
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSecuritySystem_Defaults(t *testing.T) {
	s := NewSecuritySystem()

	if got := s.Status(); got != "Security system is disarmed" {
		t.Errorf("Status() = %q", got)
	}
	if s.IsArmed() || s.AlarmOn() || s.MotionDetected() || s.CameraActive() {
		t.Errorf("unexpected default flags: %v", s.State())
	}
	if s.Sensitivity() != 5 {
		t.Errorf("Sensitivity() = %d, want 5", s.Sensitivity())
	}
	if len(s.Logs()) != 0 {
		t.Errorf("expected empty log, got %d entries", len(s.Logs()))
	}
}

func TestSecuritySystem_Scenario(t *testing.T) {
	s := NewSecuritySystem(WithClock(fixedClock()))

	s.TurnOn()
	if !s.IsArmed() || !s.CameraActive() {
		t.Fatal("expected armed with cameras active")
	}
	if got := s.Status(); got != "Security system is armed, all is secure." {
		t.Errorf("Status() = %q", got)
	}

	s.DetectMotion()
	if !s.MotionDetected() || !s.AlarmOn() {
		t.Fatal("expected motion detected and alarm on")
	}
	if got := s.Status(); got != "Security system is armed, alarm is triggered!" {
		t.Errorf("Status() = %q", got)
	}
	if s.Condition() != SecurityArmedAlarm {
		t.Errorf("Condition() = %q", s.Condition())
	}

	s.ResetAlarm()
	if s.AlarmOn() || s.MotionDetected() {
		t.Error("expected alarm and motion cleared")
	}
	if !s.IsArmed() {
		t.Error("ResetAlarm disarmed the system")
	}
	if got := s.Status(); got != "Security system is armed, all is secure." {
		t.Errorf("Status() = %q", got)
	}

	s.TurnOff()
	if s.IsArmed() || s.CameraActive() || s.AlarmOn() {
		t.Errorf("expected everything off, got %v", s.State())
	}
}

func TestSecuritySystem_MotionLogOrder(t *testing.T) {
	s := NewSecuritySystem(WithClock(fixedClock()))
	s.TurnOn()
	s.DetectMotion()

	want := []string{
		"Security system armed and cameras activated.",
		"Alarm triggered!",
		"Motion detected!",
	}
	if got := messages(s.Logs()); !equalStrings(got, want) {
		t.Errorf("Logs() = %v, want %v", got, want)
	}
}

func TestSecuritySystem_DisarmKeepsMotion(t *testing.T) {
	s := NewSecuritySystem()
	s.TurnOn()
	s.DetectMotion()
	s.TurnOff()

	if !s.MotionDetected() {
		t.Error("disarm cleared the motion flag")
	}
	if s.AlarmOn() {
		t.Error("disarm left the alarm on")
	}
	if got := s.Status(); got != "Security system is disarmed" {
		t.Errorf("Status() = %q", got)
	}

	// Re-arming reports motion since it was never reset.
	s.TurnOn()
	if got := s.Status(); got != "Security system is armed, motion detected!" {
		t.Errorf("Status() = %q", got)
	}
}

func TestSecuritySystem_GuardedOperationsWhileDisarmed(t *testing.T) {
	s := NewSecuritySystem()

	if res := s.TriggerAlarm(); res.OK {
		t.Error("TriggerAlarm reported OK while disarmed")
	}
	if res := s.DetectMotion(); res.OK {
		t.Error("DetectMotion reported OK while disarmed")
	}
	if res := s.StartCameraRecording(); res.OK {
		t.Error("StartCameraRecording reported OK with cameras inactive")
	}
	if res := s.StopCameraRecording(); res.OK {
		t.Error("StopCameraRecording reported OK with cameras inactive")
	}
	if s.AlarmOn() || s.MotionDetected() {
		t.Errorf("flags changed while disarmed: %v", s.State())
	}
	if n := len(s.Logs()); n != 0 {
		t.Errorf("expected no log entries, got %d", n)
	}
}

func TestSecuritySystem_ResetWhileDisarmedIsLogged(t *testing.T) {
	s := NewSecuritySystem()
	res := s.ResetAlarm()
	if !res.OK || res.Message != "Alarm reset." {
		t.Errorf("ResetAlarm() = %+v", res)
	}
	if got := messages(s.Logs()); !equalStrings(got, []string{"Alarm reset."}) {
		t.Errorf("Logs() = %v", got)
	}
}

func TestSecuritySystem_CameraRecording(t *testing.T) {
	s := NewSecuritySystem()
	s.TurnOn()

	s.StartCameraRecording()
	s.StopCameraRecording()

	want := []string{
		"Security system armed and cameras activated.",
		"Camera recording started.",
		"Camera recording stopped.",
	}
	if got := messages(s.Logs()); !equalStrings(got, want) {
		t.Errorf("Logs() = %v, want %v", got, want)
	}
	if !s.CameraActive() {
		t.Error("recording changed the camera flag")
	}
}

func TestSecuritySystem_SetSensitivity(t *testing.T) {
	s := NewSecuritySystem()

	for _, level := range []int{1, 10} {
		res, err := s.SetSensitivity(level)
		if err != nil {
			t.Fatalf("SetSensitivity(%d): %v", level, err)
		}
		if s.Sensitivity() != level {
			t.Errorf("Sensitivity() = %d, want %d", s.Sensitivity(), level)
		}
		if res.Message != "Motion sensitivity set to "+strconv.Itoa(level) {
			t.Errorf("message = %q", res.Message)
		}
	}

	logged := len(s.Logs())
	for _, level := range []int{0, 11} {
		if _, err := s.SetSensitivity(level); !errors.Is(err, ErrValidation) {
			t.Errorf("SetSensitivity(%d) err = %v, want ErrValidation", level, err)
		}
	}
	if s.Sensitivity() != 10 {
		t.Errorf("rejections changed sensitivity to %d", s.Sensitivity())
	}
	if len(s.Logs()) != logged {
		t.Error("rejected sensitivity was logged")
	}
}

func TestSecuritySystem_TurnOnLogsEveryCall(t *testing.T) {
	s := NewSecuritySystem()
	s.TurnOn()
	flags := s.State()
	s.TurnOn()

	if len(s.Logs()) != 2 {
		t.Errorf("expected 2 log entries, got %d", len(s.Logs()))
	}
	again := s.State()
	for _, k := range []string{"armed", "alarm", "motion", "camera_active"} {
		if flags[k] != again[k] {
			t.Errorf("%s changed on second TurnOn: %v -> %v", k, flags[k], again[k])
		}
	}
}

func TestSecuritySystem_LogsAreCopies(t *testing.T) {
	s := NewSecuritySystem()
	s.ResetAlarm()

	logs := s.Logs()
	logs[0].Message = "tampered"

	if s.Logs()[0].Message != "Alarm reset." {
		t.Error("Logs() exposed internal storage")
	}
}

func TestLogEntry_String(t *testing.T) {
	e := LogEntry{
		Time:    time.Date(2024, time.March, 5, 9, 30, 1, 0, time.UTC),
		Message: "Alarm reset.",
	}
	want := "Tue Mar  5 09:30:01 2024: Alarm reset."
	if got := e.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestSecuritySystem_Subscribe(t *testing.T) {
	s := NewSecuritySystem()
	ch := s.Subscribe()

	s.TurnOn()
	s.DetectMotion()

	want := []string{
		"Security system armed and cameras activated.",
		"Alarm triggered!",
		"Motion detected!",
	}
	for _, msg := range want {
		select {
		case e := <-ch:
			if e.Message != msg {
				t.Errorf("received %q, want %q", e.Message, msg)
			}
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for %q", msg)
		}
	}

	s.Unsubscribe(ch)
	if _, open := <-ch; open {
		t.Error("channel still open after Unsubscribe")
	}
}
