// Package registry implements the in-memory package trust registry backed by
// a local JSON document and an optional remote source.
package registry

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/humotica/kit/internal/core/domain"
	"github.com/humotica/kit/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store implements ports.Registry. Records are kept in document insertion
// order next to a lowercase-name index. Refresh replaces the whole state in
// one swap; readers never observe a partially loaded registry.
type Store struct {
	path        string
	fetcher     ports.RegistryFetcher
	logger      ports.Logger
	packages    []*domain.Package
	index       map[string]int
	fingerprint uint64
}

// NewStore creates a Store backed by the document at path, falling back to
// the default candidate locations when path is empty. The document is loaded
// immediately; a missing or malformed document leaves an empty, usable store.
func NewStore(path string, fetcher ports.RegistryFetcher, logger ports.Logger) *Store {
	s := &Store{
		path:    resolvePath(path),
		fetcher: fetcher,
		logger:  logger,
		index:   map[string]int{},
	}
	s.load()
	return s
}

// resolvePath picks the first existing candidate location, or the first
// candidate overall so subsequent refresh writes have a destination.
func resolvePath(explicit string) string {
	if explicit != "" {
		return explicit
	}

	candidates := domain.RegistryCandidatePaths()
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return candidates[0]
}

// Path returns the local document path backing the store.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) load() {
	s.packages = nil
	s.index = map[string]int{}
	s.fingerprint = 0

	data, err := os.ReadFile(s.path) //nolint:gosec // path resolved from fixed candidates
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			readErr := zerr.Wrap(err, domain.ErrRegistryReadFailed.Error())
			s.logger.Error(zerr.With(readErr, "path", s.path))
		}
		return
	}

	entries, err := decodeDocument(data)
	if err != nil {
		parseErr := zerr.Wrap(err, domain.ErrRegistryParseFailed.Error())
		s.logger.Error(zerr.With(parseErr, "path", s.path))
		return
	}

	s.packages, s.index = buildRecords(entries)
	s.fingerprint = xxhash.Sum64(data)
}

// Get implements ports.Registry.
func (s *Store) Get(name string) (*domain.Package, bool) {
	i, ok := s.index[domain.NormalizeName(name)]
	if !ok {
		return nil, false
	}
	return s.packages[i], true
}

// Search implements ports.Registry.
func (s *Store) Search(query string) []*domain.Package {
	q := strings.ToLower(query)

	results := make([]*domain.Package, 0)
	for _, pkg := range s.packages {
		if strings.Contains(domain.NormalizeName(pkg.Name), q) ||
			strings.Contains(strings.ToLower(pkg.Description), q) {
			results = append(results, pkg)
		}
	}
	return results
}

// ListAll implements ports.Registry.
func (s *Store) ListAll() []*domain.Package {
	out := make([]*domain.Package, len(s.packages))
	copy(out, s.packages)
	return out
}

// Refresh implements ports.Registry. It fetches the remote document,
// persists it to the local path and swaps in the re-parsed state wholesale.
// Any failure leaves the current state untouched and returns false.
func (s *Store) Refresh(ctx context.Context) bool {
	data, err := s.fetcher.Fetch(ctx)
	if err != nil {
		s.logger.Warn(fmt.Sprintf("registry refresh failed: %v", err))
		return false
	}

	sum := xxhash.Sum64(data)
	if sum == s.fingerprint && len(s.packages) > 0 {
		// Remote document is identical to the loaded one.
		return true
	}

	entries, err := decodeDocument(data)
	if err != nil {
		s.logger.Error(zerr.Wrap(err, domain.ErrRegistryParseFailed.Error()))
		return false
	}

	if err := s.persist(data); err != nil {
		s.logger.Error(err)
		return false
	}

	s.packages, s.index = buildRecords(entries)
	s.fingerprint = sum
	return true
}

// persist writes the document atomically via a temp file and rename.
func (s *Store) persist(data []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrRegistryWriteFailed.Error())
	}

	tmpFile, err := os.CreateTemp(dir, "registry-*.json")
	if err != nil {
		return zerr.Wrap(err, domain.ErrRegistryWriteFailed.Error())
	}
	tmpName := tmpFile.Name()

	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return zerr.Wrap(err, domain.ErrRegistryWriteFailed.Error())
	}
	if err := tmpFile.Close(); err != nil {
		return zerr.Wrap(err, domain.ErrRegistryWriteFailed.Error())
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrRegistryWriteFailed.Error())
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		return zerr.Wrap(err, domain.ErrRegistryWriteFailed.Error())
	}
	return nil
}
