package cmd

import (
	"bufio"
	"fmt"
	"os"
)

// readSourceFile reads the named file, exiting (code 1, not one of the
// three pipeline codes) if it cannot be read.
func readSourceFile(filename string) string {
	content, err := os.ReadFile(filename)
	if err != nil {
		exitWithError("could not read file %q: %v", filename, err)
	}
	return string(content)
}

// repl drives an interactive `> ` prompt, calling process once per line
// until stdin is closed (Ctrl-D) or interrupted (Ctrl-C terminates the
// whole process directly).
func repl(process func(line string)) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprint(os.Stdout, "> ")
		if !scanner.Scan() {
			return
		}
		process(scanner.Text())
	}
}
