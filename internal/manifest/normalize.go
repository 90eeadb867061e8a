package manifest

import "strings"

var normalizer = strings.NewReplacer("_", "-", ".", "-")

// Normalize canonicalizes a Python package name per PEP 503: lowercase with
// underscores and dots collapsed to hyphens, so My_Package and my-package
// compare equal. Idempotent.
func Normalize(name string) string {
	return normalizer.Replace(strings.ToLower(strings.TrimSpace(name)))
}

// specCutset contains the characters that terminate a bare package name in a
// requirement spec: extras bracket, version operators, whitespace and the
// environment-marker separator.
const specCutset = "[<>=!~ \t;"

// PackageName strips a requirement spec like "fastapi[standard]>=0.100; python_version>'3.9'"
// down to its bare package name.
func PackageName(spec string) string {
	spec = strings.TrimSpace(spec)
	if i := strings.IndexAny(spec, specCutset); i >= 0 {
		spec = spec[:i]
	}
	return spec
}
