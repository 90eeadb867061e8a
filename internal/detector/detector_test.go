package detector

import (
	"reflect"
	"testing"

	"github.com/pydantic/logfire-setup/internal/registry"
)

func declared(names ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

func TestDetectMatchesExactNormalizedNames(t *testing.T) {
	reg := registry.Default()

	tests := []struct {
		name     string
		declared map[string]struct{}
		want     []string
	}{
		{
			name:     "fastapi and sqlalchemy",
			declared: declared("fastapi", "sqlalchemy", "unrelated-pkg"),
			want:     []string{"fastapi", "sqlalchemy"},
		},
		{
			name:     "empty set",
			declared: declared(),
			want:     []string{},
		},
		{
			name:     "no substring matching",
			declared: declared("redis-py-cluster"),
			want:     []string{},
		},
		{
			name:     "one package can preselect several extras",
			declared: declared("aiohttp"),
			want:     []string{"aiohttp-client", "aiohttp-server"},
		},
		{
			name:     "pattern normalization",
			declared: declared("pydantic-ai"),
			want:     []string{"pydantic-ai"},
		},
		{
			name:     "alternate pattern",
			declared: declared("gunicorn"),
			want:     []string{"wsgi"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Detect(tt.declared, reg)
			if got := res.Extras(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Detect(%v) extras = %v, want %v", tt.declared, got, tt.want)
			}
		})
	}
}

func TestDetectNoFalsePositives(t *testing.T) {
	reg := registry.Default()
	res := Detect(declared("numpy", "pandas", "scikit-learn"), reg)
	if len(res.PreselectedExtras) != 0 {
		t.Errorf("expected no matches, got %v", res.Extras())
	}
}

func TestResultPreselected(t *testing.T) {
	res := Detect(declared("httpx"), registry.Default())
	if !res.Preselected("httpx") {
		t.Error("httpx should be preselected")
	}
	if res.Preselected("fastapi") {
		t.Error("fastapi should not be preselected")
	}
}
