package detector

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/go-enry/go-enry/v2"
)

// maxSampledFiles bounds the language scan; the summary only needs to answer
// "does this look like a Python project", not classify the whole tree.
const maxSampledFiles = 400

var skippedDirs = map[string]bool{
	".git":         true,
	".venv":        true,
	"venv":         true,
	"env":          true,
	"node_modules": true,
	"__pycache__":  true,
	".tox":         true,
	"dist":         true,
	"build":        true,
}

// ProjectLanguages classifies a sample of files under root and returns the
// detected programming languages ordered by file count, most common first.
func ProjectLanguages(root string) ([]string, error) {
	counts := make(map[string]int)
	sampled := 0

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if skippedDirs[info.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if sampled >= maxSampledFiles {
			return filepath.SkipAll
		}
		lang, safe := enry.GetLanguageByExtension(path)
		if !safe {
			content, readErr := os.ReadFile(path)
			if readErr != nil {
				return nil
			}
			lang = enry.GetLanguage(filepath.Base(path), content)
		}
		if lang == "" || enry.GetLanguageType(lang) != enry.Programming {
			return nil
		}
		counts[lang]++
		sampled++
		return nil
	})
	if err != nil {
		return nil, err
	}

	languages := make([]string, 0, len(counts))
	for lang := range counts {
		languages = append(languages, lang)
	}
	sort.Slice(languages, func(i, j int) bool {
		if counts[languages[i]] == counts[languages[j]] {
			return languages[i] < languages[j]
		}
		return counts[languages[i]] > counts[languages[j]]
	})
	return languages, nil
}

// IsPythonProject reports whether Python is among the detected languages.
func IsPythonProject(languages []string) bool {
	for _, lang := range languages {
		if lang == "Python" {
			return true
		}
	}
	return false
}
