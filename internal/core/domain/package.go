package domain

import "strings"

// Package represents one installable unit in the trust registry together
// with the metadata the validation gateway decides on.
type Package struct {
	// Name is the canonical package name as declared in the registry.
	Name string

	// Version is a free-form version string. The core never parses it.
	Version string

	// Description is free-form text, searchable alongside the name.
	Description string

	// TrustScore is the confidence value compared against the 0.5 policy
	// threshold. Out-of-range values are preserved as-is.
	TrustScore float64

	// JISCompliant reports whether the package passes the JIS policy.
	JISCompliant bool

	// SNAFTVerified reports whether the SNAFT authority verified the package.
	SNAFTVerified bool

	// Dependencies lists package names this package depends on. Names may
	// reference packages absent from the registry. Never nil.
	Dependencies []string

	// PyPI and NPM are distribution coordinates consumed by the installer.
	// The gateway ignores them.
	PyPI string
	NPM  string

	// MCPConfig is an opaque companion-process launch descriptor, passed
	// through unvalidated.
	MCPConfig map[string]any

	// Author is the package author, "Unknown" when not declared.
	Author string
}

// PackageSpec carries the raw, possibly incomplete attributes of a registry
// document entry before defaulting.
type PackageSpec struct {
	Name          string
	Version       string
	Description   string
	TrustScore    float64
	JISCompliant  bool
	SNAFTVerified bool
	Dependencies  []string
	PyPI          string
	NPM           string
	MCPConfig     map[string]any
	Author        string
}

// NewPackage constructs a Package from a registry document entry, applying
// defaults so that "missing" is never a representable state in the core:
// the entry key stands in for a missing name, the version falls back to
// "0.0.0", dependencies are never nil and the author defaults to "Unknown".
func NewPackage(key string, spec PackageSpec) *Package {
	name := spec.Name
	if name == "" {
		name = key
	}

	version := spec.Version
	if version == "" {
		version = "0.0.0"
	}

	author := spec.Author
	if author == "" {
		author = "Unknown"
	}

	deps := spec.Dependencies
	if deps == nil {
		deps = []string{}
	}

	return &Package{
		Name:          name,
		Version:       version,
		Description:   spec.Description,
		TrustScore:    spec.TrustScore,
		JISCompliant:  spec.JISCompliant,
		SNAFTVerified: spec.SNAFTVerified,
		Dependencies:  deps,
		PyPI:          spec.PyPI,
		NPM:           spec.NPM,
		MCPConfig:     spec.MCPConfig,
		Author:        author,
	}
}

// Key returns the normalized registry identity of the package.
func (p *Package) Key() string {
	return NormalizeName(p.Name)
}

// NormalizeName lowercases a package name for registry lookups. Identity is
// the normalized name; no two records share one in a store.
func NormalizeName(name string) string {
	return strings.ToLower(name)
}
