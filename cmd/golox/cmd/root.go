package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "golox",
	Short: "golox tokenizer, parser, and interpreter",
	Long: `golox is a tree-walking interpreter for Lox, a small dynamically
typed, lexically scoped, class-based scripting language.

Commands:
  tokenize   scan source into tokens and print them
  parse      parse source into an expression tree and print it
  interpret  run a Lox program (or start a REPL with no file)

With a filename argument, a command reads and processes that file then
exits. Without one, tokenize/parse/interpret read from an interactive
prompt, processing one line at a time until interrupted.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "print the total run time of an interpreted file to stderr")
}

// exitWithError reports an error outside the three pipeline exit codes
// (0/65/70) -- bad flags, unreadable files -- and exits 1.
func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
