package shell_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/humotica/kit/internal/adapters/shell"
	"github.com/humotica/kit/internal/core/domain"
	"github.com/humotica/kit/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestInstaller_Install_CancelledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger := mocks.NewMockLogger(ctrl)
	installer := shell.NewInstaller(logger)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := installer.Install(ctx, "requests")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInstallFailed) ||
		strings.Contains(err.Error(), domain.ErrInstallFailed.Error()))
}

func TestLogWriter(t *testing.T) {
	t.Run("splits output into lines", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		logger := mocks.NewMockLogger(ctrl)
		logger.EXPECT().Info("line one")
		logger.EXPECT().Info("line two")

		w := shell.NewLogWriter(logger, "info")
		n, err := w.Write([]byte("line one\nline two\n"))
		require.NoError(t, err)
		assert.Equal(t, len("line one\nline two\n"), n)
	})

	t.Run("skips blank lines", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		logger := mocks.NewMockLogger(ctrl)
		logger.EXPECT().Info("only")

		w := shell.NewLogWriter(logger, "info")
		_, err := w.Write([]byte("\nonly\n\n"))
		require.NoError(t, err)
	})

	t.Run("error level routes to Error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		logger := mocks.NewMockLogger(ctrl)
		logger.EXPECT().Error(gomock.Any())

		w := shell.NewLogWriter(logger, "error")
		_, err := w.Write([]byte("pip exploded\n"))
		require.NoError(t, err)
	})
}
