package selection

import (
	"fmt"
	"sort"

	"github.com/pydantic/logfire-setup/internal/detector"
	"github.com/pydantic/logfire-setup/internal/registry"
)

// Option is one selectable integration as presented to the user.
type Option struct {
	Extra       string
	Label       string
	Preselected bool
}

// Prompter is the interactive capability: given labeled, pre-checked options,
// return the extras the user confirms. The pipeline does not know how the
// checkboxes are rendered; tests supply a scripted implementation.
type Prompter interface {
	MultiSelect(title, description string, options []Option) ([]string, error)
}

// Set is the confirmed outcome of the interactive pass. Every element is a
// valid registry extra; an empty set is a legitimate choice.
type Set struct {
	ConfirmedExtras map[string]struct{}
}

// Contains reports whether the extra was confirmed.
func (s Set) Contains(extra string) bool {
	_, ok := s.ConfirmedExtras[extra]
	return ok
}

// Extras returns the confirmed extras in sorted order.
func (s Set) Extras() []string {
	extras := make([]string, 0, len(s.ConfirmedExtras))
	for extra := range s.ConfirmedExtras {
		extras = append(extras, extra)
	}
	sort.Strings(extras)
	return extras
}

// Select runs the two prompt passes: the Recommended category first in
// registry order, then all remaining integrations flattened and sorted
// alphabetically. Each option is pre-checked iff detection matched it.
func Select(res detector.Result, reg *registry.Registry, prompter Prompter) (Set, error) {
	set := Set{ConfirmedExtras: make(map[string]struct{})}

	recommended := reg.Categories()[0]
	picked, err := prompter.MultiSelect(
		recommended.Name,
		recommended.Description,
		buildOptions(recommended.Integrations, res),
	)
	if err != nil {
		return Set{}, err
	}
	if err := set.add(picked, reg); err != nil {
		return Set{}, err
	}

	picked, err = prompter.MultiSelect(
		"Other Integrations",
		"Additional framework and library instrumentation",
		buildOptions(reg.Others(), res),
	)
	if err != nil {
		return Set{}, err
	}
	if err := set.add(picked, reg); err != nil {
		return Set{}, err
	}

	return set, nil
}

func buildOptions(integrations []registry.Integration, res detector.Result) []Option {
	options := make([]Option, 0, len(integrations))
	for _, integ := range integrations {
		label := fmt.Sprintf("%s - %s", integ.DisplayName, integ.Description)
		preselected := res.Preselected(integ.Extra)
		if preselected {
			label += " [DETECTED]"
		}
		options = append(options, Option{
			Extra:       integ.Extra,
			Label:       label,
			Preselected: preselected,
		})
	}
	return options
}

// add validates confirmed extras against the registry. An unknown extra means
// the prompter and the registry disagree about what exists: a data-integrity
// fault that must stop the flow.
func (s Set) add(extras []string, reg *registry.Registry) error {
	for _, extra := range extras {
		if _, ok := reg.FindByExtra(extra); !ok {
			return fmt.Errorf("confirmed extra %q is not in the integration registry", extra)
		}
		s.ConfirmedExtras[extra] = struct{}{}
	}
	return nil
}
