package cmd

import (
	"fmt"
	"os"

	"github.com/GowayLee/agent-sync/pkg/agentsync"
)

// newClient builds a library client from the global flags. With no --config
// the configuration is discovered by walking upward from the current
// directory.
func newClient() (*agentsync.Client, error) {
	return agentsync.New(agentsync.Options{ConfigPath: configPath})
}

// printResult prints a batch result: successes unless quiet, failures always.
// Failure messages are surfaced verbatim per agent.
func printResult(result *agentsync.SyncResult, verb string) {
	for _, name := range result.Successes {
		info("  %s  %s", verb, name)
	}
	for _, f := range result.Failures {
		errorf("%s: %s", f.Agent, f.Message)
	}
}

// info prints a line unless quiet mode is active.
func info(format string, args ...any) {
	if !quiet {
		fmt.Printf(format+"\n", args...)
	}
}

// detail prints a line only in verbose mode.
func detail(format string, args ...any) {
	if verbose {
		fmt.Printf("  "+format+"\n", args...)
	}
}

// errorf prints an error message to stderr.
func errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}
