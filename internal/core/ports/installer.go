package ports

import "context"

// Installer hands a validated package off to the host package manager. The
// exit status of the underlying tool is the sole success signal.
//
//go:generate mockgen -source=installer.go -destination=mocks/mock_installer.go -package=mocks
type Installer interface {
	// Install installs the given distribution coordinate.
	Install(ctx context.Context, coordinate string) error
}
