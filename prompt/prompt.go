package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"cuisine-scene/models"
)

const (
	question = "Enter the name of your state: "
	sorry    = "Sorry, I don't know that state, perhaps you mistyped?"
)

// ErrNoInput is returned when input ends before a valid state was given.
var ErrNoInput = errors.New("prompt: no valid state entered")

// StateResolver is the part of services.LocalityResolver the prompt needs.
type StateResolver interface {
	Resolve(regionName string) (models.Locality, error)
	States() []string
}

// IsInteractiveTerminal returns true if both stdin and stdout are TTYs.
func IsInteractiveTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// AskState asks on the terminal when there is one, and reads lines from
// stdin otherwise.
func AskState(r StateResolver) (models.Locality, error) {
	if IsInteractiveTerminal() {
		return AskStateInteractive(r)
	}
	return AskStateLines(os.Stdin, os.Stdout, r)
}

// AskStateLines reads one answer per line until one resolves. Every miss
// prints an apology and asks again.
func AskStateLines(in io.Reader, out io.Writer, r StateResolver) (models.Locality, error) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, question)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			if err := scanner.Err(); err != nil {
				return models.Locality{}, fmt.Errorf("prompt: read: %w", err)
			}
			return models.Locality{}, ErrNoInput
		}

		loc, err := r.Resolve(scanner.Text())
		if err == nil {
			return loc, nil
		}
		fmt.Fprintln(out, sorry)
	}
}

// AskStateInteractive shows an input with state-name suggestions and inline
// validation.
func AskStateInteractive(r StateResolver) (models.Locality, error) {
	var answer string
	var loc models.Locality

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Enter the name of your state").
				Description("Any of the 50 U.S. states. Tab completes.").
				Suggestions(r.States()).
				Value(&answer).
				Validate(func(s string) error {
					resolved, err := r.Resolve(s)
					if err != nil {
						return errors.New(sorry)
					}
					loc = resolved
					return nil
				}),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return models.Locality{}, ErrNoInput
		}
		return models.Locality{}, fmt.Errorf("prompt: %w", err)
	}
	return loc, nil
}
