// Command llregex is a small demo/driver around the llregex library: it
// compiles a pattern and either matches or searches it against one or
// more inputs, printing the outcome.
package main

import (
	"fmt"
	"os"

	"github.com/llregex/llregex"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		gologger.Error().Msgf("%v", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		mode    string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "llregex <pattern> <input...>",
		Short: "Compile a pattern and match or search it against one or more inputs",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
			}
			return run(args[0], args[1:], mode)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&mode, "mode", "m", "match", `evaluation mode: "match" (anchored) or "search" (longest prefix)`)
	flags.BoolVarP(&verbose, "verbose", "v", false, "log each compile/match/search step")

	return cmd
}

func run(pattern string, inputs []string, mode string) error {
	gologger.Verbose().Msgf("compiling pattern %q", pattern)
	re, err := llregex.Compile(pattern)
	if err != nil {
		return fmt.Errorf("compile %q: %w", pattern, err)
	}

	switch mode {
	case "match":
		for _, in := range inputs {
			gologger.Verbose().Msgf("matching %q", in)
			ok := re.MatchString(in)
			report(in, ok, -1)
		}
	case "search":
		for _, in := range inputs {
			gologger.Verbose().Msgf("searching %q", in)
			n := re.SearchString(in)
			report(in, n >= 0, n)
		}
	default:
		return fmt.Errorf("unknown mode %q: want \"match\" or \"search\"", mode)
	}
	return nil
}

func report(input string, ok bool, length int) {
	if !ok {
		fmt.Printf("%-30q  FAIL\n", input)
		return
	}
	if length < 0 {
		fmt.Printf("%-30q  MATCH\n", input)
		return
	}
	fmt.Printf("%-30q  MATCH (prefix length %d)\n", input, length)
}
