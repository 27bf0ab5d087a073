package console

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/southerncoder/jirasweep/pkg/tty"
)

// PromptSelect asks the user to choose exactly one option.
func PromptSelect(title, description string, options []SelectOption) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("no options provided")
	}

	var selected string
	err := RunForm([]FormField{
		{
			Type:        "select",
			Title:       title,
			Description: description,
			Value:       &selected,
			Options:     options,
		},
	})
	if err != nil {
		return "", err
	}
	return selected, nil
}

// PromptMultiSelect asks the user to choose zero or more options. A limit of
// 0 means unlimited.
func PromptMultiSelect(title, description string, options []SelectOption, limit int) ([]string, error) {
	if len(options) == 0 {
		return nil, fmt.Errorf("no options provided")
	}
	if !tty.IsStdinTerminal() {
		return nil, fmt.Errorf("cannot prompt: stdin is not a TTY")
	}

	huhOptions := make([]huh.Option[string], 0, len(options))
	for _, opt := range options {
		huhOptions = append(huhOptions, huh.NewOption(opt.Label, opt.Value))
	}

	var selected []string
	field := huh.NewMultiSelect[string]().
		Title(title).
		Description(description).
		Options(huhOptions...).
		Value(&selected)
	if limit > 0 {
		field = field.Limit(limit)
	}

	if err := huh.NewForm(huh.NewGroup(field)).Run(); err != nil {
		return nil, err
	}
	return selected, nil
}
