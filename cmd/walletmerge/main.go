// Command walletmerge merges the labels of duplicate wallet addresses in a
// tab-separated file and prints the addresses ranked by how many labels
// each one has.
//
// Usage:
//
//	walletmerge [-v] [-json] [-jq QUERY] [FILE]
//
// FILE defaults to wallets.txt; "-" reads standard input.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/walletkit/remarks"
)

const (
	defaultPath = "wallets.txt"
	stdinPath   = "-"
)

func main() {
	os.Exit(run())
}

func run() int {
	return walletmerge(os.Args[1:], os.Stdout, os.Stderr)
}

func walletmerge(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("walletmerge", flag.ContinueOnError)
	flags.SetOutput(stderr)
	verbose := flags.Bool("v", false, "log diagnostics to standard error")
	asJSON := flags.Bool("json", false, "print the report as a JSON array")
	query := flags.String("jq", "", "run the jq `query` over the JSON report")
	flags.Usage = func() {
		fmt.Fprintln(stderr, "Usage: walletmerge [-v] [-json] [-jq QUERY] [FILE]")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if flags.NArg() > 1 {
		flags.Usage()
		return 2
	}
	path := defaultPath
	if flags.NArg() == 1 {
		path = flags.Arg(0)
	}

	log := newLogger(*verbose, stderr)
	defer log.Sync()

	groups, err := readGroups(path)
	if err != nil {
		var fe *remarks.FileError
		if errors.As(err, &fe) {
			log.Debugw("read failed", "path", path, "kind", fe.Kind.String(), "error", fe.Err)
		}
		fmt.Fprintln(stdout, err)
		return 1
	}
	log.Debugw("grouped records",
		"path", path,
		"lines", groups.Lines,
		"skipped", groups.Skipped,
		"addresses", groups.Len(),
	)
	report := groups.Report()

	if !*asJSON && *query == "" {
		fmt.Fprintln(stdout, report.String())
		return 0
	}
	data, err := json.Marshal(report)
	if err != nil {
		fmt.Fprintln(stderr, "walletmerge:", err)
		return 1
	}
	p := remarks.Echo(string(data) + "\n").WithStdout(stdout)
	if *query != "" {
		p = p.JQ(*query)
	}
	if _, err := p.Stdout(); err != nil {
		log.Debugw("query failed", "query", *query, "error", err)
		fmt.Fprintln(stderr, "walletmerge:", err)
		return 1
	}
	return 0
}

// readGroups groups the records in the file at path, or on standard input
// when path is "-".
func readGroups(path string) (*remarks.Groups, error) {
	if path == stdinPath {
		return remarks.ReadGroups(remarks.Stdin(), path)
	}
	return remarks.Open(path)
}

// newLogger returns a development logger writing to w, or a no-op logger
// unless verbose is set.
func newLogger(verbose bool, w io.Writer) *zap.SugaredLogger {
	if !verbose {
		return zap.NewNop().Sugar()
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	)
	return zap.New(core).Sugar()
}
