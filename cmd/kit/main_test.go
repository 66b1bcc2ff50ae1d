package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/humotica/kit/internal/app"
	"github.com/humotica/kit/internal/core/ports/mocks"
	"github.com/humotica/kit/internal/engine/gateway"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	registry  *mocks.MockRegistry
	advisory  *mocks.MockAdvisoryClient
	installer *mocks.MockInstaller
	fetcher   *mocks.MockRegistryFetcher
	logger    *mocks.MockLogger
}

func newTestComponents(ctrl *gomock.Controller) (*app.Components, *testMocks) {
	m := &testMocks{
		registry:  mocks.NewMockRegistry(ctrl),
		advisory:  mocks.NewMockAdvisoryClient(ctrl),
		installer: mocks.NewMockInstaller(ctrl),
		fetcher:   mocks.NewMockRegistryFetcher(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}

	application := app.New(
		m.registry,
		gateway.New(m.advisory),
		m.installer,
		m.advisory,
		m.fetcher,
		m.logger,
	)

	return &app.Components{App: application, Logger: m.logger}, m
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	components, _ := newTestComponents(ctrl)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_PackageNotFound verifies a failed install exits 1 without logging,
// since the command already reported the failure in full.
func TestRun_PackageNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	components, m := newTestComponents(ctrl)

	m.registry.EXPECT().Get("no-such-package").Return(nil, false)
	m.logger.EXPECT().Error(gomock.Any()).Times(0)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"install", "no-such-package"}, stderr, provider)
	assert.Equal(t, 1, exitCode)
}
