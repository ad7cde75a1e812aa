// crzds-selfcheck runs the container reference suites and prints an
// indented pass/fail report. The exit status is 0 when every test passed, 1
// when any failed, and 2 for usage errors.
//
//	crzds-selfcheck [--suite name]... [--log-level level] [--list]
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/spf13/pflag"

	"github.com/forestrie/go-crzds/harness"
	"github.com/forestrie/go-crzds/internal/selfcheck"
)

const serviceName = "crzds-selfcheck"

func main() {
	code, err := run(os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	os.Exit(code)
}

func run(args []string, stdout, stderr io.Writer) (int, error) {
	var suites []string
	var logLevel string
	var list bool

	flagSet := pflag.NewFlagSet(serviceName, pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringSliceVar(&suites, "suite", nil, "suite to run, repeatable (default: all)")
	flagSet.StringVar(&logLevel, "log-level", "NOOP", "level for the structured log (NOOP, DEBUG, INFO, ...)")
	flagSet.BoolVar(&list, "list", false, "list the suite names and exit")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(stdout, flagSet)
			return 0, nil
		}
		return 2, err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(stdout, flagSet)
		return 0, nil
	}
	if flagSet.NArg() > 0 {
		return 2, fmt.Errorf("unexpected arguments: %v", flagSet.Args())
	}

	if list {
		for _, s := range selfcheck.Suites {
			fmt.Fprintln(stdout, s.Name)
		}
		return 0, nil
	}

	logger.New(logLevel)
	defer logger.OnExit()
	log := logger.Sugar.WithServiceName(serviceName)

	h := harness.New(harness.WithWriter(stdout), harness.WithLogger(log))
	if err := selfcheck.Run(h, suites...); err != nil {
		return 2, err
	}
	return h.Summary(), nil
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, "usage: %s [flags]\n\nRuns the container reference suites.\n\nFlags:\n", serviceName)
	fmt.Fprint(w, flagSet.FlagUsages())
}
