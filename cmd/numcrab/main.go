// Package main provides the numcrab CLI.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/numcrab/numcrab/internal/config"
	"github.com/numcrab/numcrab/internal/diag"
	"github.com/numcrab/numcrab/internal/host"
	"github.com/numcrab/numcrab/internal/ndarray"
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
		fmt.Fprintf(stdout, "numcrab %s\n", version)
		return 0
	case "greet":
		fmt.Fprintln(stdout, diag.Greet())
		return 0
	case "dtype":
		return runDtype(args[1:], stdout, stderr)
	case "build":
		return runBuild(args[1:], stdout, stderr)
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		usage(stderr)
		return 2
	}
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "numcrab %s - minimal N-dimensional arrays\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version                         Show version")
	fmt.Fprintln(w, "  greet                           Print the greeting")
	fmt.Fprintln(w, "  dtype <name>                    Show a dtype (int8, int16, int32, float64)")
	fmt.Fprintln(w, "  build [flags] <json>            Build an array from a JSON nested array")
}

func runDtype(args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(stderr, "usage: numcrab dtype <name>")
		return 2
	}
	v, err := ndarray.ParseVariant(args[0])
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Fprintln(stdout, ndarray.NewDtype(v))
	return 0
}

func runBuild(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	fs.SetOutput(stderr)
	dtypeName := fs.String("dtype", "", "element dtype (default: inferred)")
	configPath := fs.String("config", "", "JSON builder config file")
	verbose := fs.Bool("v", false, "log diagnostics to stderr")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "usage: numcrab build [-dtype name] [-config file] [-v] <json>")
		return 2
	}

	if *verbose {
		diag.Setup(stderr)
		defer diag.SetLogger(nil)
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}
	b, err := ndarray.NewBuilder(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	var dtypes []ndarray.Dtype
	if *dtypeName != "" {
		v, err := ndarray.ParseVariant(*dtypeName)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		dtypes = append(dtypes, ndarray.NewDtype(v))
	}

	input, err := host.ParseJSON([]byte(fs.Arg(0)))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	arr, err := b.Build(input, dtypes...)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	text, err := arr.PrettyPrint()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "dtype: %s\n", arr.Dtype())
	fmt.Fprintf(stdout, "shape: %s\n", arr.Shape())
	fmt.Fprintf(stdout, "data:  %s\n", text)
	return 0
}
