// Package main provides the strata CLI.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/born-ml/strata/internal/serialization"
)

const version = "v0.1.0-dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stdout)
		return 0
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(stdout, "strata %s\n", version)
	case "inspect":
		if len(args) != 2 {
			fmt.Fprintln(stderr, "usage: strata inspect <weights>")
			return 2
		}
		s, err := serialization.Inspect(args[1])
		if err != nil {
			fmt.Fprintf(stderr, "inspect: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "file:     %s\n", args[1])
		fmt.Fprintf(stdout, "values:   %d\n", s.Count)
		fmt.Fprintf(stdout, "range:    [%g, %g]\n", s.Min, s.Max)
		fmt.Fprintf(stdout, "sha256:   %x\n", s.Checksum)
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		usage(stderr)
		return 2
	}
	return 0
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "strata %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version             Show version")
	fmt.Fprintln(w, "  inspect <weights>   Summarise a weights file")
}
