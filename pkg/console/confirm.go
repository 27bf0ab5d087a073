package console

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/southerncoder/jirasweep/pkg/tty"
)

// ConfirmAction asks the user a yes/no question and returns their answer.
// The affirmative and negative labels customize the two choices. Cancelling
// the prompt (Ctrl-C) is treated as a "no", not an error.
func ConfirmAction(question, affirmative, negative string) (bool, error) {
	if !tty.IsStdinTerminal() {
		return false, fmt.Errorf("cannot prompt: stdin is not a TTY")
	}

	var confirmed bool
	field := huh.NewConfirm().
		Title(question).
		Affirmative(affirmative).
		Negative(negative).
		Value(&confirmed)

	err := huh.NewForm(huh.NewGroup(field)).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return confirmed, nil
}
