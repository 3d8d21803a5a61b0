package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	s, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if s.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", s.LogLevel)
	}
	if s.DBPath != "" || s.Listen != "" {
		t.Errorf("unexpected defaults: %+v", s)
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "smarthome.yaml")
	content := "db_path: /tmp/home.db\nlog_level: debug\nlisten: 127.0.0.1:9000\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SMARTHOME_LISTEN", "127.0.0.1:9100")

	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.DBPath != "/tmp/home.db" {
		t.Errorf("DBPath = %q", s.DBPath)
	}
	if s.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", s.LogLevel)
	}
	if s.Listen != "127.0.0.1:9100" {
		t.Errorf("Listen = %q, want env override", s.Listen)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestSettings_Overrides(t *testing.T) {
	s := &Settings{}
	loc, err := s.Location(time.UTC)
	if err != nil || loc != time.UTC {
		t.Errorf("Location() = %v, %v; want fallback", loc, err)
	}
	if got := s.Address("0.0.0.0:8080"); got != "0.0.0.0:8080" {
		t.Errorf("Address() = %q", got)
	}

	s = &Settings{Timezone: "America/New_York", Listen: "127.0.0.1:9000"}
	loc, err = s.Location(time.UTC)
	if err != nil {
		t.Fatal(err)
	}
	if loc.String() != "America/New_York" {
		t.Errorf("Location() = %v", loc)
	}
	if got := s.Address("0.0.0.0:8080"); got != "127.0.0.1:9000" {
		t.Errorf("Address() = %q", got)
	}

	s = &Settings{Timezone: "Mars/Olympus_Mons"}
	if _, err := s.Location(time.UTC); err == nil {
		t.Error("expected error for unknown timezone")
	}
}
