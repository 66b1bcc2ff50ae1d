package domain

import (
	"os"
	"path/filepath"
)

const (
	// KitDirName is the name of the per-user kit directory.
	KitDirName = ".kit"

	// RegistryFileName is the name of the local registry document.
	RegistryFileName = "packages.json"

	// SettingsFileName is the name of the per-user settings file.
	SettingsFileName = "config.yaml"

	// DeployRegistryPath is the deployment-specific registry location.
	DeployRegistryPath = "/srv/jtel-stack/kit-model/datasets/packages.json"

	// SettingsKeyOllamaURL is the settings key holding the advisory base URL.
	SettingsKeyOllamaURL = "ollama_url"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// RegistryCandidatePaths returns the candidate locations for the local
// registry document, in priority order: the bundled working-directory copy,
// the per-user copy, then the deployment path.
func RegistryCandidatePaths() []string {
	candidates := []string{
		filepath.Join(KitDirName, RegistryFileName),
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, KitDirName, RegistryFileName))
	}
	return append(candidates, DeployRegistryPath)
}

// DefaultSettingsPath returns the per-user settings file path.
func DefaultSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(KitDirName, SettingsFileName)
	}
	return filepath.Join(home, KitDirName, SettingsFileName)
}
