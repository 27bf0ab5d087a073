package console

// PromptInput asks the user for a single line of text.
func PromptInput(title, description, placeholder string) (string, error) {
	return PromptInputWithValidation(title, description, placeholder, nil)
}

// PromptInputWithValidation asks the user for a single line of text and
// validates it with the supplied function before accepting.
func PromptInputWithValidation(title, description, placeholder string, validate func(string) error) (string, error) {
	var value string
	err := RunForm([]FormField{
		{
			Type:        "input",
			Title:       title,
			Description: description,
			Placeholder: placeholder,
			Value:       &value,
			Validate:    validate,
		},
	})
	if err != nil {
		return "", err
	}
	return value, nil
}

// PromptSecretInput asks the user for a value that should not be echoed,
// such as an API token.
func PromptSecretInput(title, description string) (string, error) {
	var value string
	err := RunForm([]FormField{
		{
			Type:        "password",
			Title:       title,
			Description: description,
			Value:       &value,
		},
	})
	if err != nil {
		return "", err
	}
	return value, nil
}
