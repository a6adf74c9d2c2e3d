package input

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/GuySartorelli/local-dev/internal/errors"
	"github.com/GuySartorelli/local-dev/internal/logger"
	"github.com/GuySartorelli/local-dev/internal/output"
)

// Prompt is a single question put to the operator
type Prompt struct {
	Label    string
	Default  string             // used when the answer is blank
	Validate func(string) error // optional; a failing answer is asked again
}

// text returns the prompt as shown, e.g. "Country (default NZ): "
func (p Prompt) text() string {
	if p.Default != "" {
		return fmt.Sprintf("%s (default %s): ", p.Label, p.Default)
	}
	return p.Label + ": "
}

// NotEmpty rejects blank answers
func NotEmpty(name string) func(string) error {
	return func(s string) error {
		if s == "" {
			return errors.Validation(name + " cannot be empty")
		}
		return nil
	}
}

// Prompter asks questions on the output writer and reads answers from a Reader
type Prompter struct {
	reader Reader
}

// NewPrompter creates a Prompter reading from r
func NewPrompter(r Reader) *Prompter {
	return &Prompter{reader: r}
}

// readLine reads one answer. A final line without a newline still counts;
// nothing left to read is ErrInputClosed.
func (p *Prompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimSpace(line), nil
		}
		if err == io.EOF {
			// finish the unanswered prompt line
			output.Print("")
			return "", errors.ErrInputClosed
		}
		return "", errors.Wrap(errors.ErrCodeInput, "failed to read input", err)
	}
	return strings.TrimSpace(line), nil
}

// Ask puts q to the operator until it gets an acceptable answer
func (p *Prompter) Ask(q Prompt) (string, error) {
	for {
		output.Prompt(q.text())

		answer, err := p.readLine()
		if err != nil {
			return "", err
		}
		if answer == "" {
			answer = q.Default
		}

		if q.Validate != nil {
			if err := q.Validate(answer); err != nil {
				output.Warn("%v", err)
				continue
			}
		}

		logger.Debug("prompt %q answered %q", q.Label, answer)
		return answer, nil
	}
}

// Choose prints a numbered menu starting at 1 and returns the
// zero-based index of the chosen entry. Invalid numbers are asked again.
func (p *Prompter) Choose(header string, labels []string) (int, error) {
	if len(labels) == 0 {
		return 0, errors.Wrap(errors.ErrCodeInternal, "menu has no entries", nil)
	}

	for {
		output.Print(header)
		for i, label := range labels {
			output.Print("    %d: %s", i+1, label)
		}
		output.Prompt("Environment number: ")

		answer, err := p.readLine()
		if err != nil {
			return 0, err
		}

		n, convErr := strconv.Atoi(answer)
		if convErr != nil || n < 1 || n > len(labels) {
			logger.Debug("rejected menu answer %q", answer)
			output.Print("Invalid environment number.")
			continue
		}
		return n - 1, nil
	}
}

// Confirm asks a yes/no question. Only "y" and "yes" (any case) mean yes.
func (p *Prompter) Confirm(question string) (bool, error) {
	output.Prompt(question + " (y, n)? ")

	answer, err := p.readLine()
	if err != nil {
		return false, err
	}

	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
