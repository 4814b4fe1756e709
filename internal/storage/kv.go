package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// GetRaw returns the stored text for key. ok is false when the key is absent.
func (s *Store) GetRaw(ctx context.Context, key string) (string, bool, error) {
	row := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key)
	var v string
	if err := row.Scan(&v); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("kv get %s: %w", key, err)
	}
	return v, true, nil
}

// SetRaw writes the text for key verbatim, overwriting any prior value.
func (s *Store) SetRaw(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("kv set %s: %w", key, err)
	}
	return nil
}

// Remove deletes the key unconditionally. Removing an absent key is a no-op.
func (s *Store) Remove(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("kv remove %s: %w", key, err)
	}
	return nil
}

// Load decodes the stored snapshot for key. ok is false when the key is
// absent or its value fails to decode; a corrupt value is deleted so the
// next read starts clean.
func Load[T any](ctx context.Context, s *Store, key string) (T, bool, error) {
	var zero T
	raw, ok, err := s.GetRaw(ctx, key)
	if err != nil || !ok {
		return zero, false, err
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		s.resets++
		if err := s.Remove(ctx, key); err != nil {
			return zero, false, err
		}
		return zero, false, nil
	}
	return v, true, nil
}

// Get returns the snapshot for key, falling back to def when nothing
// usable is stored. def is never persisted.
func Get[T any](ctx context.Context, s *Store, key string, def T) (T, error) {
	v, ok, err := Load[T](ctx, s, key)
	if err != nil {
		return def, err
	}
	if !ok {
		return def, nil
	}
	return v, nil
}

// Set serializes v to JSON and stores it under key.
func Set[T any](ctx context.Context, s *Store, key string, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("kv marshal %s: %w", key, err)
	}
	return s.SetRaw(ctx, key, string(data))
}
