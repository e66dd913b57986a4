package console

import (
	survey "github.com/AlecAivazis/survey/v2"
)

// AskMissing prompts for whichever of query and file path is absent from
// args and returns the completed positional arguments.
func AskMissing(args []string) ([]string, error) {
	out := append([]string(nil), args...)
	if len(out) < 1 {
		var q string
		if err := survey.AskOne(&survey.Input{Message: "Search for:"}, &q); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	if len(out) < 2 {
		var p string
		if err := survey.AskOne(&survey.Input{Message: "In file:"}, &p, survey.WithValidator(survey.Required)); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
