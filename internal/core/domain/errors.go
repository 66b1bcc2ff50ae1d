package domain

import "go.trai.ch/zerr"

var (
	// ErrPackageNotFound is returned when a requested package name has no
	// entry in the registry.
	ErrPackageNotFound = zerr.New("package not found in registry")

	// ErrInstallBlocked is returned when a package fails validation and no
	// force override was given.
	ErrInstallBlocked = zerr.New("package validation failed")

	// ErrInstallFailed is returned when the external installer reports a
	// non-zero exit status.
	ErrInstallFailed = zerr.New("package installation failed")

	// ErrRegistryReadFailed is returned when the registry document cannot be read.
	ErrRegistryReadFailed = zerr.New("failed to read registry document")

	// ErrRegistryParseFailed is returned when the registry document cannot be parsed.
	ErrRegistryParseFailed = zerr.New("failed to parse registry document")

	// ErrRegistryFetchFailed is returned when the remote registry document
	// cannot be fetched.
	ErrRegistryFetchFailed = zerr.New("failed to fetch remote registry")

	// ErrRegistryWriteFailed is returned when the refreshed registry document
	// cannot be persisted locally.
	ErrRegistryWriteFailed = zerr.New("failed to write registry document")

	// ErrSettingsReadFailed is returned when the settings file cannot be read.
	ErrSettingsReadFailed = zerr.New("failed to read settings file")

	// ErrSettingsParseFailed is returned when the settings file cannot be parsed.
	ErrSettingsParseFailed = zerr.New("failed to parse settings file")

	// ErrSettingsWriteFailed is returned when the settings file cannot be written.
	ErrSettingsWriteFailed = zerr.New("failed to write settings file")
)
