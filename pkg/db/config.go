package db

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"
)

var ErrNoActiveProfile = errors.New("no active profile found")

// Config is the stored configuration of the active profile.
type Config struct {
	Profile   *Profile
	APIServer *APIServer
	Devices   []string
}

// APIAddress returns the API server listen address.
func (c *Config) APIAddress() string {
	if c.APIServer == nil {
		return net.JoinHostPort(DefaultAPIHost, strconv.Itoa(DefaultAPIPort))
	}
	return c.APIServer.Address()
}

// Timezone returns the profile timezone.
func (c *Config) Timezone() string {
	if c.Profile == nil {
		return "UTC"
	}
	return c.Profile.Timezone
}

// Location returns the profile timezone as a *time.Location.
func (c *Config) Location() *time.Location {
	return c.Profile.Location()
}

// ActiveConfig loads the complete configuration for the active profile.
func (db *DB) ActiveConfig(ctx context.Context) (*Config, error) {
	profile, err := db.Profiles().GetActive(ctx)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return nil, ErrNoActiveProfile
		}
		return nil, fmt.Errorf("failed to get active profile: %w", err)
	}

	config := &Config{
		Profile: profile,
	}

	apiServer, err := db.APIServers().Get(ctx, profile.ID)
	if err != nil && !errors.Is(err, ErrAPIServerNotFound) {
		return nil, fmt.Errorf("failed to get API server config: %w", err)
	}
	config.APIServer = apiServer

	devices, err := db.HubLayouts().Get(ctx, profile.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get hub layout: %w", err)
	}
	config.Devices = devices

	return config, nil
}
