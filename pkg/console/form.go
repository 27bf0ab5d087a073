package console

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/southerncoder/jirasweep/pkg/tty"
)

// FormField describes a single field in an interactive form.
//
// Type is one of "input", "password", "confirm", or "select". Value must be a
// pointer of the matching type (*string for input/password/select, *bool for
// confirm).
type FormField struct {
	Type        string
	Title       string
	Description string
	Placeholder string
	Value       any
	Options     []SelectOption
	Validate    func(string) error
}

// SelectOption is a single choice in a select or multi-select prompt.
type SelectOption struct {
	Label string
	Value string
}

// RunForm renders an interactive form with the given fields and blocks until
// the user submits or cancels it. It returns huh.ErrUserAborted when the user
// cancels with Ctrl-C.
func RunForm(fields []FormField) error {
	if len(fields) == 0 {
		return fmt.Errorf("no form fields provided")
	}

	huhFields := make([]huh.Field, 0, len(fields))
	for _, f := range fields {
		switch f.Type {
		case "input", "password":
			value, ok := f.Value.(*string)
			if !ok {
				return fmt.Errorf("field %q: value must be *string", f.Title)
			}
			input := huh.NewInput().
				Title(f.Title).
				Description(f.Description).
				Placeholder(f.Placeholder).
				Value(value)
			if f.Type == "password" {
				input = input.EchoMode(huh.EchoModePassword)
			}
			if f.Validate != nil {
				input = input.Validate(f.Validate)
			}
			huhFields = append(huhFields, input)
		case "confirm":
			value, ok := f.Value.(*bool)
			if !ok {
				return fmt.Errorf("field %q: value must be *bool", f.Title)
			}
			huhFields = append(huhFields, huh.NewConfirm().
				Title(f.Title).
				Description(f.Description).
				Value(value))
		case "select":
			if len(f.Options) == 0 {
				return fmt.Errorf("field %q: select requires options", f.Title)
			}
			value, ok := f.Value.(*string)
			if !ok {
				return fmt.Errorf("field %q: value must be *string", f.Title)
			}
			options := make([]huh.Option[string], 0, len(f.Options))
			for _, opt := range f.Options {
				options = append(options, huh.NewOption(opt.Label, opt.Value))
			}
			huhFields = append(huhFields, huh.NewSelect[string]().
				Title(f.Title).
				Description(f.Description).
				Options(options...).
				Value(value))
		default:
			return fmt.Errorf("unknown field type: %q", f.Type)
		}
	}

	if !tty.IsStdinTerminal() {
		return fmt.Errorf("cannot prompt: stdin is not a TTY")
	}

	return huh.NewForm(huh.NewGroup(huhFields...)).Run()
}
