package detector

import (
	"github.com/pydantic/logfire-setup/internal/manifest"
	"github.com/pydantic/logfire-setup/internal/registry"
)

// ApplyCustomPatterns augments a detection result with user-configured
// package patterns (extra -> additional package names). Extras unknown to
// the registry come from user configuration, not the catalog, so they are
// skipped and returned for the caller to warn about rather than treated as
// invariant violations.
func ApplyCustomPatterns(res Result, reg *registry.Registry, patterns map[string][]string) (Result, []string) {
	var unknown []string
	for extra, names := range patterns {
		if _, ok := reg.FindByExtra(extra); !ok {
			unknown = append(unknown, extra)
			continue
		}
		for _, name := range names {
			if _, ok := res.DeclaredPackages[manifest.Normalize(name)]; ok {
				res.PreselectedExtras[extra] = struct{}{}
				break
			}
		}
	}
	return res, unknown
}
