package core

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/void-protocol/void-sdk-go/pkg/void"
)

// ErrProfileNotFound is returned when a named profile does not exist.
var ErrProfileNotFound = errors.New("profile not found")

// Profile is a saved client configuration.
type Profile struct {
	Name      string
	ProgramID string
	Cluster   string
	RPCURL    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ClientConfig returns the SDK configuration stored in the profile.
func (p Profile) ClientConfig() void.ClientConfig {
	return void.ClientConfig{ProgramID: p.ProgramID, Cluster: void.Cluster(p.Cluster)}
}

// SaveProfile inserts p or replaces the profile with the same name.
func (s *Store) SaveProfile(ctx context.Context, p Profile) error {
	if p.Name == "" {
		return ValidationError{Field: "name", Value: "", Message: "profile name is required"}
	}
	now := time.Now().Unix()
	_, err := s.db.ExecContext(ctx, `
INSERT INTO profiles (name, program_id, cluster, rpc_url, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(name) DO UPDATE SET
    program_id = excluded.program_id,
    cluster    = excluded.cluster,
    rpc_url    = excluded.rpc_url,
    updated_at = excluded.updated_at`,
		p.Name, p.ProgramID, p.Cluster, p.RPCURL, now, now)
	if err != nil {
		return fmt.Errorf("save profile %s: %w", p.Name, err)
	}
	return nil
}

// GetProfile loads the profile called name.
func (s *Store) GetProfile(ctx context.Context, name string) (Profile, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT name, program_id, cluster, rpc_url, created_at, updated_at FROM profiles WHERE name = ?`, name)
	p, err := scanProfile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Profile{}, fmt.Errorf("%w: %s", ErrProfileNotFound, name)
	}
	if err != nil {
		return Profile{}, fmt.Errorf("get profile %s: %w", name, err)
	}
	return p, nil
}

// ListProfiles returns every profile ordered by name.
func (s *Store) ListProfiles(ctx context.Context) ([]Profile, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, program_id, cluster, rpc_url, created_at, updated_at FROM profiles ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	var out []Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("list profiles: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// DeleteProfile removes the profile called name.
func (s *Store) DeleteProfile(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM profiles WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete profile %s: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete profile %s: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrProfileNotFound, name)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(r rowScanner) (Profile, error) {
	var (
		p                Profile
		created, updated int64
	)
	if err := r.Scan(&p.Name, &p.ProgramID, &p.Cluster, &p.RPCURL, &created, &updated); err != nil {
		return Profile{}, err
	}
	p.CreatedAt = time.Unix(created, 0)
	p.UpdatedAt = time.Unix(updated, 0)
	return p, nil
}
