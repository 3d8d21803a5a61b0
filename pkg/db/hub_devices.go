package db

import (
	"context"
	"database/sql"
	"fmt"
)

// HubLayoutStore stores the ordered list of device kinds registered with
// the hub for a profile.
type HubLayoutStore interface {
	Get(ctx context.Context, profileID int64) ([]string, error)
	Set(ctx context.Context, profileID int64, kinds []string) error
}

// HubLayouts returns a HubLayoutStore for this database.
func (db *DB) HubLayouts() HubLayoutStore {
	return &hubLayoutStore{db: db}
}

type hubLayoutStore struct {
	db *DB
}

func (s *hubLayoutStore) Get(ctx context.Context, profileID int64) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT kind FROM hub_devices WHERE profile_id = ? ORDER BY position
	`, profileID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var kinds []string
	for rows.Next() {
		var kind string
		if err := rows.Scan(&kind); err != nil {
			return nil, err
		}
		kinds = append(kinds, kind)
	}
	return kinds, rows.Err()
}

// Set replaces the layout for profileID.
func (s *hubLayoutStore) Set(ctx context.Context, profileID int64, kinds []string) error {
	return s.db.Tx(ctx, func(tx *sql.Tx) error {
		return setLayout(ctx, tx, profileID, kinds)
	})
}

func setLayout(ctx context.Context, tx *sql.Tx, profileID int64, kinds []string) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM hub_devices WHERE profile_id = ?`, profileID); err != nil {
		return err
	}
	for i, kind := range kinds {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO hub_devices (profile_id, position, kind) VALUES (?, ?, ?)
		`, profileID, i, kind)
		if err != nil {
			return fmt.Errorf("failed to store hub device %q: %w", kind, err)
		}
	}
	return nil
}
