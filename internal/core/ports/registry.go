// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"github.com/humotica/kit/internal/core/domain"
)

// Registry supplies trust metadata for installable packages and resolves
// dependency names to entries.
//
//go:generate mockgen -source=registry.go -destination=mocks/mock_registry.go -package=mocks
type Registry interface {
	// Get performs a case-insensitive exact lookup. Absence is not an
	// error: it returns (nil, false) when no entry matches.
	Get(name string) (*domain.Package, bool)

	// Search returns every package whose name or description contains the
	// query, case-insensitively, in registry insertion order.
	Search(query string) []*domain.Package

	// ListAll returns every package in registry insertion order. Sorting
	// is a presentation concern.
	ListAll() []*domain.Package

	// Refresh fetches a new registry document from the remote source and
	// atomically replaces the in-memory state. It reports whether the
	// registry was brought up to date; on any failure the current state is
	// left untouched and false is returned.
	Refresh(ctx context.Context) bool
}
