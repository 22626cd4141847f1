package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/naoina/toml"
)

// Store persists Configuration as a TOML file.
type Store struct {
	path string
}

// NewStore returns a store backed by path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns settings.toml under the user configuration directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "planetarium", "settings.toml"), nil
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the stored settings. Keys missing from the file, or a missing
// file, resolve to Default. On error the returned configuration is still
// usable: a bad lucky date is reset to UnsetDate and a parse failure yields
// the defaults.
func (s *Store) Load() (Configuration, error) {
	cfg := Default()
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read settings: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse settings %s: %w", s.path, err)
	}
	if err := cfg.Validate(); err != nil {
		cfg.LuckyDate = UnsetDate
		return cfg, fmt.Errorf("settings %s: %w", s.path, err)
	}
	return cfg, nil
}

// Save writes cfg atomically, creating the parent directory if needed.
func (s *Store) Save(cfg Configuration) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace settings: %w", err)
	}
	return nil
}
