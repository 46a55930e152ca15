package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func readTerminalPassword() ([]byte, error) {
	return term.ReadPassword(int(os.Stdin.Fd()))
}

// readInputs resolves the passwords to work on: the positional argument, a hidden
// terminal prompt, or one password per line of piped input.
func (a *app) readInputs(args []string, prompt string) ([]string, error) {
	if len(args) > 0 {
		return args[:1], nil
	}

	if a.io.IsTerminal != nil && a.io.IsTerminal() {
		fmt.Fprint(a.io.ErrOut, prompt)
		secret, err := a.io.ReadPassword()
		fmt.Fprintln(a.io.ErrOut)
		if err != nil {
			return nil, fmt.Errorf("failed to read password: %w", err)
		}
		return []string{string(secret)}, nil
	}

	var inputs []string
	scanner := bufio.NewScanner(a.io.In)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		inputs = append(inputs, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return inputs, nil
}
