// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/humotica/kit/internal/adapters/advisory"
	_ "github.com/humotica/kit/internal/adapters/logger"
	_ "github.com/humotica/kit/internal/adapters/registry"
	_ "github.com/humotica/kit/internal/adapters/remote"
	_ "github.com/humotica/kit/internal/adapters/settings"
	_ "github.com/humotica/kit/internal/adapters/shell"
	// Register app and engine nodes.
	_ "github.com/humotica/kit/internal/app"
	_ "github.com/humotica/kit/internal/engine/gateway"
)
