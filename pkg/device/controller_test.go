package device

import (
	"errors"
	"sync"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		kind       string
		wantName   string
		wantStatus string
	}{
		{KindLight, "Light", "Light is off"},
		{KindClimate, "Climate Control", "Climate control is off"},
		{KindSecurity, "Security System", "Security system is disarmed"},
	}

	for _, tt := range tests {
		d, err := New(tt.kind)
		if err != nil {
			t.Fatalf("New(%q): %v", tt.kind, err)
		}
		if d.Name() != tt.wantName {
			t.Errorf("New(%q).Name() = %q, want %q", tt.kind, d.Name(), tt.wantName)
		}
		if d.Kind() != tt.kind {
			t.Errorf("New(%q).Kind() = %q", tt.kind, d.Kind())
		}
		if d.Status() != tt.wantStatus {
			t.Errorf("New(%q).Status() = %q, want %q", tt.kind, d.Status(), tt.wantStatus)
		}
		if len(d.StateSchema()) == 0 {
			t.Errorf("New(%q) has no state schema", tt.kind)
		}
	}
}

func TestNew_UnknownKind(t *testing.T) {
	if _, err := New("toaster"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
}

func TestToggle(t *testing.T) {
	for _, kind := range Kinds() {
		d, _ := New(kind)

		Toggle(d)
		if !d.IsOn() {
			t.Errorf("%s: first toggle left device off", kind)
		}
		Toggle(d)
		if d.IsOn() {
			t.Errorf("%s: second toggle left device on", kind)
		}
	}
}

func TestToggle_Concurrent(t *testing.T) {
	const toggles = 200

	for _, kind := range Kinds() {
		d, _ := New(kind)

		var wg sync.WaitGroup
		for i := 0; i < toggles; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				Toggle(d)
			}()
		}
		wg.Wait()

		// An even number of flips must land back on off.
		if d.IsOn() {
			t.Errorf("%s: on after %d concurrent toggles", kind, toggles)
		}
	}
}

func TestSecuritySystem_ToggleAlternatesLog(t *testing.T) {
	s := NewSecuritySystem()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Toggle()
		}()
	}
	wg.Wait()

	logs := s.Logs()
	if len(logs) != 50 {
		t.Fatalf("log entries = %d, want 50", len(logs))
	}
	for i, e := range logs {
		want := "Security system armed and cameras activated."
		if i%2 == 1 {
			want = "Security system disarmed and cameras deactivated."
		}
		if e.Message != want {
			t.Fatalf("entry %d = %q, want %q", i, e.Message, want)
		}
	}
}
