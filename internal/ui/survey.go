package ui

import "github.com/AlecAivazis/survey/v2"

// IconOption sets the survey question icon to "-" so confirmations match
// the rest of the terminal output.
func IconOption() survey.AskOpt {
	return survey.WithIcons(func(icons *survey.IconSet) {
		icons.Question.Text = "-"
	})
}
