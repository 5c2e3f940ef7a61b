// Package storage persists shell credentials between runs. The default
// backend is the OS keychain/credential manager; a file backend exists
// for headless machines without a keyring daemon.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zalando/go-keyring"
)

const service = "campusd-shell"

// Well-known keys. The shell stores the raw API token, the serialized
// user record, and the path the user attempted before being sent to login.
const (
	KeyToken    = "token"
	KeyUser     = "user"
	KeyIntended = "intended"
)

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("storage: key not found")

// Store is a string key-value store for shell credentials.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}

// Keyring stores values in the OS keychain/credential manager.
type Keyring struct{}

func NewKeyring() *Keyring {
	return &Keyring{}
}

func (k *Keyring) Get(key string) (string, error) {
	value, err := keyring.Get(service, key)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to read %s from keyring: %w", key, err)
	}
	return value, nil
}

func (k *Keyring) Set(key, value string) error {
	if err := keyring.Set(service, key, value); err != nil {
		return fmt.Errorf("failed to save %s to keyring: %w", key, err)
	}
	return nil
}

func (k *Keyring) Delete(key string) error {
	if err := keyring.Delete(service, key); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to delete %s from keyring: %w", key, err)
	}
	return nil
}

// File stores values as a JSON object under the user config dir
// (~/.config/campusd/credentials.json). Values are not encrypted; prefer
// the keyring backend where one is available.
type File struct {
	path string
}

// NewFile creates a file-backed store. An empty path defaults to
// ~/.config/campusd/credentials.json.
func NewFile(path string) (*File, error) {
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = filepath.Join(homeDir, ".config", "campusd", "credentials.json")
	}
	return &File{path: path}, nil
}

func (f *File) load() (map[string]string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	values := map[string]string{}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to parse credentials file: %w", err)
	}
	return values, nil
}

func (f *File) save(values map[string]string) error {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal credentials: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// 0600: the file holds the session token
	if err := os.WriteFile(f.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write credentials file: %w", err)
	}
	return nil
}

func (f *File) Get(key string) (string, error) {
	values, err := f.load()
	if err != nil {
		return "", err
	}
	value, ok := values[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (f *File) Set(key, value string) error {
	values, err := f.load()
	if err != nil {
		return err
	}
	values[key] = value
	return f.save(values)
}

func (f *File) Delete(key string) error {
	values, err := f.load()
	if err != nil {
		return err
	}
	if _, ok := values[key]; !ok {
		return nil
	}
	delete(values, key)
	return f.save(values)
}

// Memory is an in-memory store for tests.
type Memory struct {
	values map[string]string
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, error) {
	value, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (m *Memory) Set(key, value string) error {
	m.values[key] = value
	return nil
}

func (m *Memory) Delete(key string) error {
	delete(m.values, key)
	return nil
}
