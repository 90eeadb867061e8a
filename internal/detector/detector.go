package detector

import (
	"sort"

	"github.com/pydantic/logfire-setup/internal/manifest"
	"github.com/pydantic/logfire-setup/internal/registry"
)

// Result is the detector's verdict for one run. It is created once per
// invocation and never mutated afterwards.
type Result struct {
	// DeclaredPackages holds the normalized package names extracted from the
	// project manifest.
	DeclaredPackages map[string]struct{} `json:"declared_packages"`
	// PreselectedExtras holds the extras whose package patterns matched a
	// declared package.
	PreselectedExtras map[string]struct{} `json:"preselected_extras"`
}

// Preselected reports whether the given extra matched a declared dependency.
func (r Result) Preselected(extra string) bool {
	_, ok := r.PreselectedExtras[extra]
	return ok
}

// Extras returns the pre-selected extras sorted for stable output. Ordering
// for presentation is the registry's job; this is only for logs and JSON.
func (r Result) Extras() []string {
	extras := make([]string, 0, len(r.PreselectedExtras))
	for extra := range r.PreselectedExtras {
		extras = append(extras, extra)
	}
	sort.Strings(extras)
	return extras
}

// Detect matches declared package names against the registry. An integration
// is pre-selected iff at least one of its package patterns, normalized,
// equals a declared package name. Equality is exact: "redis" does not match
// "redis-py-cluster" unless that pattern is listed.
func Detect(declared map[string]struct{}, reg *registry.Registry) Result {
	res := Result{
		DeclaredPackages:  declared,
		PreselectedExtras: make(map[string]struct{}),
	}
	for _, integ := range reg.All() {
		for _, pattern := range integ.PackagePatterns {
			if _, ok := declared[manifest.Normalize(pattern)]; ok {
				res.PreselectedExtras[integ.Extra] = struct{}{}
				break
			}
		}
	}
	return res
}
