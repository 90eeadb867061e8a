package manifest

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ParseError reports a manifest file that exists but could not be parsed.
// Callers treat it as non-fatal: detection proceeds with an empty package set.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// pyproject models the subset of pyproject.toml we read dependencies from.
type pyproject struct {
	Project struct {
		Dependencies         []string            `toml:"dependencies"`
		OptionalDependencies map[string][]string `toml:"optional-dependencies"`
	} `toml:"project"`
	DependencyGroups map[string][]string `toml:"dependency-groups"`
	Tool             struct {
		Poetry struct {
			Dependencies map[string]toml.Primitive `toml:"dependencies"`
		} `toml:"poetry"`
	} `toml:"tool"`
}

// ReadDeclaredPackages extracts the set of normalized package names declared
// by the project at root. It consults pyproject.toml and requirements.txt;
// absence of both is not an error and yields an empty set.
func ReadDeclaredPackages(root string) (map[string]struct{}, error) {
	packages := make(map[string]struct{})

	pyprojectPath := filepath.Join(root, "pyproject.toml")
	if _, err := os.Stat(pyprojectPath); err == nil {
		if err := readPyproject(pyprojectPath, packages); err != nil {
			return packages, err
		}
	}

	reqPath := filepath.Join(root, "requirements.txt")
	if _, err := os.Stat(reqPath); err == nil {
		if err := readRequirements(reqPath, packages); err != nil {
			return packages, err
		}
	}

	return packages, nil
}

func readPyproject(path string, packages map[string]struct{}) error {
	var doc pyproject
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return &ParseError{Path: path, Err: err}
	}

	add := func(specs []string) {
		for _, spec := range specs {
			if name := Normalize(PackageName(spec)); name != "" {
				packages[name] = struct{}{}
			}
		}
	}

	// [project.dependencies]
	add(doc.Project.Dependencies)

	// [project.optional-dependencies]
	for _, group := range doc.Project.OptionalDependencies {
		add(group)
	}

	// [dependency-groups] (PEP 735)
	for _, group := range doc.DependencyGroups {
		add(group)
	}

	// [tool.poetry.dependencies]: keys are package names, values are version
	// constraints in varying shapes we don't need.
	for name := range doc.Tool.Poetry.Dependencies {
		if name == "python" {
			continue
		}
		packages[Normalize(name)] = struct{}{}
	}

	return nil
}

func readRequirements(path string, packages map[string]struct{}) error {
	file, err := os.Open(path)
	if err != nil {
		return &ParseError{Path: path, Err: err}
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		// Skip blanks, comments and pip flags like -e/-r/--index-url.
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
			continue
		}
		if name := Normalize(PackageName(line)); name != "" {
			packages[name] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		return &ParseError{Path: path, Err: err}
	}
	return nil
}
