package utils

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

type PasswordPrompter interface {
	Run() ([]byte, error)
}

type defaultPasswordPrompter struct {
	inputLabelText string
	stdin          *os.File
	stdout         *os.File
}

var _ PasswordPrompter = (*defaultPasswordPrompter)(nil)

// Run reads a line from the terminal without echoing it. The caller owns the returned buffer.
func (pp *defaultPasswordPrompter) Run() ([]byte, error) {
	_, err := fmt.Fprint(pp.stdout, pp.inputLabelText, " ")
	if err != nil {
		return nil, fmt.Errorf("writing input label text: %w", err)
	}

	password, err := term.ReadPassword(int(pp.stdin.Fd()))
	if err != nil {
		return nil, fmt.Errorf("reading password: %w", err)
	}
	_, err = fmt.Fprintln(pp.stdout)
	if err != nil {
		return nil, fmt.Errorf("writing newline: %w", err)
	}

	return password, nil
}

func NewDefaultPasswordPrompter(inputLabelText string, stdin *os.File, stdout *os.File) (*defaultPasswordPrompter, error) {
	if stdin == nil {
		return nil, fmt.Errorf("stdin cannot be nil")
	}

	if stdout == nil {
		return nil, fmt.Errorf("stdout cannot be nil")
	}

	inputLabelText = strings.TrimSpace(inputLabelText)
	if inputLabelText == "" {
		return nil, fmt.Errorf("input label text cannot be empty")
	}

	return &defaultPasswordPrompter{
		inputLabelText: inputLabelText,
		stdin:          stdin,
		stdout:         stdout,
	}, nil
}
