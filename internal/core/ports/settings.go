package ports

// SettingsStore is the persisted per-user key-value settings file.
//
//go:generate mockgen -source=settings.go -destination=mocks/mock_settings.go -package=mocks
type SettingsStore interface {
	// Get returns the value for key, or ok=false when unset.
	Get(key string) (value string, ok bool)

	// Set persists key=value, creating parent directories as needed.
	// Writes are best-effort, not atomic-rename protected.
	Set(key, value string) error
}
