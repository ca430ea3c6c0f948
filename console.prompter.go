package main

import (
	"errors"
	"io"

	"github.com/peterh/liner"
)

var _ Prompter = (*liner.State)(nil) // ensure liner state implements Prompter.

// Prompter reads one line of user input after displaying a prompt.
type Prompter interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
	Close() error
}

// NewLinerPrompter sets up readline-style input on the terminal. When standard
// input is not a terminal liner falls back to plain line reads.
func NewLinerPrompter(config *ConsoleConfig) *liner.State {
	line := liner.NewLiner()
	line.SetCtrlCAborts(config.CtrlCAborts)
	line.SetMultiLineMode(false)
	return line
}

// IsEndOfInput reports whether err means the user closed the input,
// either by sending EOF or by aborting the prompt with Ctrl-C.
func IsEndOfInput(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted)
}
