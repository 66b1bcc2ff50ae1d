// Package shell provides the pip-backed installer adapter.
package shell

import (
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/humotica/kit/internal/core/domain"
	"github.com/humotica/kit/internal/core/ports"
	"go.trai.ch/zerr"
)

// Installer implements ports.Installer by shelling out to pip. The exit
// status of pip is the sole success signal.
type Installer struct {
	logger ports.Logger
}

// NewInstaller creates a new Installer.
func NewInstaller(logger ports.Logger) *Installer {
	return &Installer{logger: logger}
}

// Install implements ports.Installer.
func (i *Installer) Install(ctx context.Context, coordinate string) error {
	cmd := exec.CommandContext(ctx, "python3", "-m", "pip", "install", coordinate, "-q") //nolint:gosec // coordinate comes from the trust registry

	cmd.Stdout = &logWriter{logger: i.logger, level: "info"}
	cmd.Stderr = &logWriter{logger: i.logger, level: "error"}

	if err := cmd.Run(); err != nil {
		exitCode := -1 // unknown or signal
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		installErr := zerr.Wrap(err, domain.ErrInstallFailed.Error())
		installErr = zerr.With(installErr, "coordinate", coordinate)
		return zerr.With(installErr, "exit_code", exitCode)
	}

	return nil
}

// logWriter streams subprocess output line by line into the logger.
type logWriter struct {
	logger ports.Logger
	level  string
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	lines := strings.Split(strings.TrimSuffix(string(p), "\n"), "\n")
	for _, line := range lines {
		if line == "" {
			continue
		}
		if w.level == "info" {
			w.logger.Info(line)
		} else {
			w.logger.Error(zerr.New(line))
		}
	}
	return len(p), nil
}
