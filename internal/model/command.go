package model

import (
	"fmt"
	"strings"

	"github.com/google/shlex"
)

// Command is a resolved external command: a program and its argument list.
// Command strings from configuration are parsed exactly once, at
// config-resolution time, using shell-word semantics.
type Command struct {
	Program string
	Args    []string
}

// ParseCommand splits a command string into a Command using shell-word
// semantics (quoted segments respected). An empty or unparseable string is
// an error.
func ParseCommand(s string) (Command, error) {
	words, err := shlex.Split(s)
	if err != nil {
		return Command{}, fmt.Errorf("parse command %q: %w", s, err)
	}

	if len(words) == 0 {
		return Command{}, fmt.Errorf("parse command %q: empty command", s)
	}

	return Command{Program: words[0], Args: words[1:]}, nil
}

// IsZero reports whether the command is unset.
func (c Command) IsZero() bool {
	return c.Program == ""
}

// WithArgs returns a copy of the command with extra arguments appended.
func (c Command) WithArgs(extra ...string) Command {
	args := make([]string, 0, len(c.Args)+len(extra))
	args = append(args, c.Args...)
	args = append(args, extra...)

	return Command{Program: c.Program, Args: args}
}

// Argv returns the program followed by its arguments.
func (c Command) Argv() []string {
	argv := make([]string, 0, len(c.Args)+1)
	argv = append(argv, c.Program)
	argv = append(argv, c.Args...)

	return argv
}

func (c Command) String() string {
	return strings.Join(c.Argv(), " ")
}
