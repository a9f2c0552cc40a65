package command

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

// PromptPassword reads a secret from the terminal without echoing it.
//
//nolint:forbidigo // Password input requires direct terminal I/O
func PromptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)

	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", errors.Wrap(err, "failed to read password from terminal")
	}

	return string(password), nil
}

// PromptLine reads one line from stdin.
func PromptLine(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && len(line) == 0 {
		return "", errors.Wrap(err, "failed to read line")
	}

	return strings.TrimSpace(line), nil
}

// Confirm asks a yes/no question. Only "y" and "yes" confirm.
func Confirm(prompt string) (bool, error) {
	answer, err := PromptLine(prompt + " [y/N]: ")
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
