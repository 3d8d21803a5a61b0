package db

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	database, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func TestMigrate_Idempotent(t *testing.T) {
	ctx := context.Background()
	database := openTestDB(t)

	for i := 0; i < 2; i++ {
		if err := database.Migrate(ctx); err != nil {
			t.Fatalf("migrate #%d: %v", i+1, err)
		}
	}

	version, err := database.SchemaVersion(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if version != currentSchemaVersion {
		t.Errorf("SchemaVersion() = %d, want %d", version, currentSchemaVersion)
	}
}

func TestLoad_BootstrapsDefaultLayout(t *testing.T) {
	ctx := context.Background()
	t.Setenv("TZ", "Europe/Berlin")
	database := openTestDB(t)

	cfg, err := database.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Profile.Name != "default" || !cfg.Profile.IsActive {
		t.Errorf("unexpected profile: %+v", cfg.Profile)
	}
	if cfg.Timezone() != "Europe/Berlin" {
		t.Errorf("Timezone() = %q", cfg.Timezone())
	}
	if cfg.APIAddress() != "0.0.0.0:8080" {
		t.Errorf("APIAddress() = %q", cfg.APIAddress())
	}

	want := []string{"light", "climate", "security"}
	if len(cfg.Devices) != len(want) {
		t.Fatalf("Devices = %v, want %v", cfg.Devices, want)
	}
	for i := range want {
		if cfg.Devices[i] != want[i] {
			t.Errorf("Devices[%d] = %q, want %q", i, cfg.Devices[i], want[i])
		}
	}

	// A second load must not bootstrap again.
	if _, err := database.Load(ctx); err != nil {
		t.Fatal(err)
	}
	profiles, err := database.Profiles().List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(profiles) != 1 {
		t.Errorf("expected 1 profile, got %d", len(profiles))
	}
}

func TestHubLayouts_Set(t *testing.T) {
	ctx := context.Background()
	database := openTestDB(t)
	cfg, err := database.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}

	if err := database.HubLayouts().Set(ctx, cfg.Profile.ID, []string{"security", "light", "light"}); err != nil {
		t.Fatal(err)
	}
	kinds, err := database.HubLayouts().Get(ctx, cfg.Profile.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(kinds) != 3 || kinds[0] != "security" || kinds[2] != "light" {
		t.Errorf("layout = %v", kinds)
	}

	if err := database.HubLayouts().Set(ctx, cfg.Profile.ID, []string{"toaster"}); err == nil {
		t.Error("expected unknown kind to be rejected")
	}
	kinds, _ = database.HubLayouts().Get(ctx, cfg.Profile.ID)
	if len(kinds) != 3 {
		t.Errorf("failed Set changed layout to %v", kinds)
	}
}

func TestAPIServers_Put(t *testing.T) {
	ctx := context.Background()
	database := openTestDB(t)
	cfg, err := database.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}

	err = database.APIServers().Put(ctx, &APIServer{ProfileID: cfg.Profile.ID, Host: "127.0.0.1", Port: 9090})
	if err != nil {
		t.Fatal(err)
	}
	cfg, err = database.ActiveConfig(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.APIAddress() != "127.0.0.1:9090" {
		t.Errorf("APIAddress() = %q", cfg.APIAddress())
	}

	if err := database.APIServers().Put(ctx, &APIServer{ProfileID: cfg.Profile.ID, Port: 0}); err == nil {
		t.Error("expected invalid port to be rejected")
	}
}

func TestProfiles_SetActive(t *testing.T) {
	ctx := context.Background()
	database := openTestDB(t)
	if _, err := database.Load(ctx); err != nil {
		t.Fatal(err)
	}

	p := &Profile{Name: "cabin", Timezone: "America/Denver"}
	if err := database.Profiles().Create(ctx, p); err != nil {
		t.Fatal(err)
	}
	if err := database.Profiles().SetActive(ctx, p.ID); err != nil {
		t.Fatal(err)
	}

	cfg, err := database.ActiveConfig(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Profile.Name != "cabin" {
		t.Errorf("active profile = %q", cfg.Profile.Name)
	}
	if len(cfg.Devices) != 0 {
		t.Errorf("new profile has layout %v", cfg.Devices)
	}
	if cfg.Location().String() != "America/Denver" {
		t.Errorf("Location() = %v", cfg.Location())
	}

	if err := database.Profiles().SetActive(ctx, 999); !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestActiveConfig_NoProfile(t *testing.T) {
	ctx := context.Background()
	database := openTestDB(t)
	if err := database.Migrate(ctx); err != nil {
		t.Fatal(err)
	}

	if _, err := database.ActiveConfig(ctx); !errors.Is(err, ErrNoActiveProfile) {
		t.Errorf("expected ErrNoActiveProfile, got %v", err)
	}
}

func TestProfile_LocationFallback(t *testing.T) {
	p := &Profile{Timezone: "Not/AZone"}
	if p.Location() != time.UTC {
		t.Errorf("Location() = %v, want UTC", p.Location())
	}
}
