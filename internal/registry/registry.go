package registry

import (
	"fmt"
	"sort"
	"strings"
)

// Integration represents one supported Logfire integration, identified by the
// extra passed to the package manager (e.g. logfire[fastapi]).
type Integration struct {
	Extra           string   `json:"extra"`
	DisplayName     string   `json:"display_name"`
	Description     string   `json:"description"`
	PackagePatterns []string `json:"package_patterns"`
}

// Category groups integrations for presentation. The Recommended category is
// always first; every other category is flattened into a single alphabetical
// list before being shown.
type Category struct {
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Integrations []Integration `json:"integrations"`
}

// RecommendedCategory is the name of the distinguished first category.
const RecommendedCategory = "Recommended"

// Registry is the catalog of known integrations. It is loaded once at startup
// and read-only afterwards; matching against project dependencies is the
// detector's job, not the registry's.
type Registry struct {
	categories []Category
	byExtra    map[string]Integration
}

// New builds a registry from the given categories and validates its
// invariants. An invalid catalog is a programming error, not a runtime
// condition, so callers should treat a non-nil error as fatal.
func New(categories []Category) (*Registry, error) {
	r := &Registry{
		categories: categories,
		byExtra:    make(map[string]Integration),
	}
	if err := r.validate(); err != nil {
		return nil, err
	}
	for _, cat := range categories {
		for _, integ := range cat.Integrations {
			r.byExtra[integ.Extra] = integ
		}
	}
	return r, nil
}

// Default returns the builtin Logfire integration catalog.
func Default() *Registry {
	r, err := New(builtinCategories)
	if err != nil {
		// The builtin catalog is static data; failing validation means the
		// binary itself is broken.
		panic(fmt.Sprintf("builtin integration catalog is invalid: %v", err))
	}
	return r
}

func (r *Registry) validate() error {
	if len(r.categories) == 0 {
		return fmt.Errorf("registry has no categories")
	}
	if r.categories[0].Name != RecommendedCategory {
		return fmt.Errorf("first category must be %q, got %q", RecommendedCategory, r.categories[0].Name)
	}
	seen := make(map[string]string)
	for i, cat := range r.categories {
		if cat.Name == RecommendedCategory && i != 0 {
			return fmt.Errorf("duplicate %q category", RecommendedCategory)
		}
		for _, integ := range cat.Integrations {
			if integ.Extra == "" {
				return fmt.Errorf("integration %q in category %q has an empty extra", integ.DisplayName, cat.Name)
			}
			if prev, ok := seen[integ.Extra]; ok {
				return fmt.Errorf("extra %q declared in both %q and %q", integ.Extra, prev, cat.Name)
			}
			seen[integ.Extra] = cat.Name
			if len(integ.PackagePatterns) == 0 {
				return fmt.Errorf("integration %q has no package patterns", integ.Extra)
			}
		}
	}
	return nil
}

// Categories returns all categories in declaration order.
func (r *Registry) Categories() []Category {
	return r.categories
}

// Recommended returns the Recommended category's integrations in declaration
// order.
func (r *Registry) Recommended() []Integration {
	return r.categories[0].Integrations
}

// Others returns every non-recommended integration, sorted alphabetically by
// display name. This is the flattened secondary list presented after the
// Recommended pass.
func (r *Registry) Others() []Integration {
	var others []Integration
	for _, cat := range r.categories[1:] {
		others = append(others, cat.Integrations...)
	}
	sort.Slice(others, func(i, j int) bool {
		return strings.ToLower(others[i].DisplayName) < strings.ToLower(others[j].DisplayName)
	})
	return others
}

// All returns every integration across all categories.
func (r *Registry) All() []Integration {
	var all []Integration
	for _, cat := range r.categories {
		all = append(all, cat.Integrations...)
	}
	return all
}

// FindByExtra looks up an integration by its extra name.
func (r *Registry) FindByExtra(extra string) (Integration, bool) {
	integ, ok := r.byExtra[extra]
	return integ, ok
}
