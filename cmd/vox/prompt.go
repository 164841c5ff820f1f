package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// confirmOverwrite asks on stderr whether an existing file may be replaced.
// Only an explicit y (any case) proceeds; a non-terminal stdin declines
// without prompting so piped runs never hang.
func confirmOverwrite(path string) (bool, error) {
	fd := os.Stdin.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return false, nil
	}

	fmt.Fprintf(os.Stderr, "File '%s' exists. Overwrite? [y/N] ", path)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && strings.TrimSpace(line) == "" {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(line), "y"), nil
}
