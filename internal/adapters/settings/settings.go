// Package settings implements the per-user key-value settings file and the
// advisory endpoint resolution chain.
package settings

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/humotica/kit/internal/core/domain"
	"github.com/humotica/kit/internal/core/ports"
	"github.com/kelseyhightower/envconfig"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultAdvisoryURL is the hardcoded local advisory endpoint used when no
// override, environment variable or setting is present.
const DefaultAdvisoryURL = "http://127.0.0.1:11434"

// Store implements ports.SettingsStore on a flat key-value YAML file. The
// file is read per call; it is tiny and only touched on configuration paths.
type Store struct {
	path string
}

// NewStore creates a Store at the default per-user settings path.
func NewStore() *Store {
	return NewStoreWithPath(domain.DefaultSettingsPath())
}

// NewStoreWithPath creates a Store backed by a custom file path.
func NewStoreWithPath(path string) *Store {
	return &Store{path: path}
}

// Get implements ports.SettingsStore. A missing or unreadable file simply
// means the key is unset.
func (s *Store) Get(key string) (string, bool) {
	values, err := s.read()
	if err != nil {
		return "", false
	}
	v, ok := values[key]
	return v, ok
}

// Set implements ports.SettingsStore. The write creates parent directories
// as needed and is best-effort, not atomic-rename protected.
func (s *Store) Set(key, value string) error {
	values, err := s.read()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if values == nil {
		values = map[string]string{}
	}
	values[key] = value

	data, err := yaml.Marshal(values)
	if err != nil {
		return zerr.Wrap(err, domain.ErrSettingsWriteFailed.Error())
	}

	if err := os.MkdirAll(filepath.Dir(s.path), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrSettingsWriteFailed.Error())
	}
	if err := os.WriteFile(s.path, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrSettingsWriteFailed.Error())
	}
	return nil
}

func (s *Store) read() (map[string]string, error) {
	data, err := os.ReadFile(s.path) //nolint:gosec // fixed per-user path
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return nil, zerr.Wrap(err, domain.ErrSettingsReadFailed.Error())
	}

	values := map[string]string{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, zerr.Wrap(err, domain.ErrSettingsParseFailed.Error())
	}
	return values, nil
}

// Env is the snapshot of environment-provided configuration.
type Env struct {
	// OllamaURL is read from KIT_OLLAMA_URL.
	OllamaURL string `envconfig:"OLLAMA_URL"`
}

// LoadEnv captures the environment configuration snapshot.
func LoadEnv() (Env, error) {
	var env Env
	if err := envconfig.Process("kit", &env); err != nil {
		return Env{}, zerr.Wrap(err, "failed to read environment configuration")
	}
	return env, nil
}

// ResolveAdvisoryURL resolves the advisory base URL from explicit inputs, in
// priority order: per-call override, environment snapshot, persisted
// setting, hardcoded local default. Pure over its inputs; no hidden
// process-wide state.
func ResolveAdvisoryURL(override string, env Env, store ports.SettingsStore) string {
	if override != "" {
		return override
	}
	if env.OllamaURL != "" {
		return env.OllamaURL
	}
	if v, ok := store.Get(domain.SettingsKeyOllamaURL); ok && v != "" {
		return v
	}
	return DefaultAdvisoryURL
}
