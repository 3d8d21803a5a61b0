package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/urmzd/smarthome/pkg/device"
)

// Default API server listen config for a bootstrapped profile.
const (
	DefaultAPIHost = "0.0.0.0"
	DefaultAPIPort = 8080
)

// Bootstrap creates the default profile on first run: the detected
// timezone, the default API address, and a hub holding one light, one
// climate control and one security system.
func (db *DB) Bootstrap(ctx context.Context) error {
	needs, err := db.NeedsBootstrap(ctx)
	if err != nil {
		return fmt.Errorf("failed to check profiles: %w", err)
	}
	if !needs {
		return nil
	}

	return db.Tx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `
			INSERT INTO profiles (name, timezone, is_active)
			VALUES (?, ?, 1)
		`, "default", detectTimezone())
		if err != nil {
			return fmt.Errorf("failed to create default profile: %w", err)
		}

		profileID, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get profile ID: %w", err)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO api_servers (profile_id, host, port)
			VALUES (?, ?, ?)
		`, profileID, DefaultAPIHost, DefaultAPIPort)
		if err != nil {
			return fmt.Errorf("failed to create default API server: %w", err)
		}

		if err := setLayout(ctx, tx, profileID, device.Kinds()); err != nil {
			return fmt.Errorf("failed to create default hub layout: %w", err)
		}
		return nil
	})
}

// NeedsBootstrap returns true if no profile exists yet.
func (db *DB) NeedsBootstrap(ctx context.Context) (bool, error) {
	var count int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM profiles`).Scan(&count)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// detectTimezone attempts to detect the system timezone, defaulting to UTC.
func detectTimezone() string {
	if tz := os.Getenv("TZ"); tz != "" {
		return tz
	}

	switch runtime.GOOS {
	case "darwin":
		out, err := exec.Command("systemsetup", "-gettimezone").Output()
		if err == nil {
			if _, tz, found := strings.Cut(string(out), ": "); found {
				return strings.TrimSpace(tz)
			}
		}
	case "linux":
		if data, err := os.ReadFile("/etc/timezone"); err == nil {
			if tz := strings.TrimSpace(string(data)); tz != "" {
				return tz
			}
		}
	}

	if link, err := os.Readlink("/etc/localtime"); err == nil {
		if _, tz, found := strings.Cut(link, "zoneinfo/"); found {
			return tz
		}
	}

	return "UTC"
}
