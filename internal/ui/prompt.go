package ui

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/pydantic/logfire-setup/internal/auth"
	"github.com/pydantic/logfire-setup/internal/selection"
)

// HuhPrompter renders interactive prompts with huh forms. It implements
// selection.Prompter and auth.ProjectPicker.
type HuhPrompter struct{}

// NewPrompter creates the interactive prompter used in a terminal session.
func NewPrompter() *HuhPrompter {
	return &HuhPrompter{}
}

// MultiSelect presents a checkbox list and returns the confirmed extras.
func (p *HuhPrompter) MultiSelect(title, description string, options []selection.Option) ([]string, error) {
	huhOptions := make([]huh.Option[string], 0, len(options))
	var preselected []string
	for _, opt := range options {
		huhOptions = append(huhOptions, huh.NewOption(opt.Label, opt.Extra).Selected(opt.Preselected))
		if opt.Preselected {
			preselected = append(preselected, opt.Extra)
		}
	}

	picked := preselected
	form := huh.NewForm(huh.NewGroup(
		huh.NewMultiSelect[string]().
			Title(title).
			Description(description).
			Options(huhOptions...).
			Value(&picked),
	))
	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("selection cancelled: %w", err)
	}
	return picked, nil
}

// skipSentinel marks the "no project" choice in the picker.
const skipSentinel = "-"

// PickProject presents the remote projects with an explicit skip option.
// A nil result means the user skipped.
func (p *HuhPrompter) PickProject(projects []auth.Project) (*auth.Project, error) {
	options := make([]huh.Option[string], 0, len(projects)+1)
	byPath := make(map[string]auth.Project, len(projects))
	for _, project := range projects {
		options = append(options, huh.NewOption(project.Path(), project.Path()))
		byPath[project.Path()] = project
	}
	options = append(options, huh.NewOption("Skip project selection", skipSentinel))

	var picked string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Select a project").
			Options(options...).
			Value(&picked),
	))
	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("project selection cancelled: %w", err)
	}
	if picked == skipSentinel {
		return nil, nil
	}
	project := byPath[picked]
	return &project, nil
}

// Confirm asks a yes/no question.
func (p *HuhPrompter) Confirm(question string, defaultYes bool) (bool, error) {
	answer := defaultYes
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(question).
			Affirmative("Yes").
			Negative("No").
			Value(&answer),
	))
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("prompt cancelled: %w", err)
	}
	return answer, nil
}
