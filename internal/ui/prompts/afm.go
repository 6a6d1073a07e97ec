package prompts

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/hance08/findpayments/internal/model"
)

var ErrNoAFM = errors.New("no AFM entered")

// PromptAFM asks the operator to type the AFM to search payments for.
// Candidate AFMs are offered as suggestions. Without a terminal on stdin
// the prompt degrades to plain line reading.
func PromptAFM(candidates []model.Candidate) (string, error) {
	if !IsTerminal(os.Stdin) {
		return ReadAFM(os.Stderr, os.Stdin, candidates)
	}

	var afm string
	if err := newAFMInput(candidates, &afm).Run(); err != nil {
		return "", err
	}
	return finishAFM(afm)
}

// ReadAFM reads one AFM line from r, echoing the prompt to w.
func ReadAFM(w io.Writer, r io.Reader, candidates []model.Candidate) (string, error) {
	var afm string
	if err := newAFMInput(candidates, &afm).RunAccessible(w, r); err != nil {
		return "", err
	}
	return finishAFM(afm)
}

func newAFMInput(candidates []model.Candidate, value *string) *huh.Input {
	suggestions := make([]string, 0, len(candidates))
	for _, c := range candidates {
		suggestions = append(suggestions, c.AFM)
	}

	return huh.NewInput().
		Title("Please enter correct AFM:").
		Suggestions(suggestions).
		Value(value).
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("AFM is required")
			}
			return nil
		})
}

func finishAFM(afm string) (string, error) {
	afm = strings.TrimSpace(afm)
	if afm == "" {
		return "", ErrNoAFM
	}
	return afm, nil
}
