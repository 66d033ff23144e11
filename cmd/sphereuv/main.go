// sphereuv regenerates spherical texture coordinates for an OBJ mesh.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/sphereuv/internal/config"
	"github.com/Faultbox/sphereuv/internal/convert"
	"github.com/Faultbox/sphereuv/internal/logger"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the tool and returns the process exit status. Missing
// positional arguments print the usage text and count as success.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("sphereuv", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(stdout) }
	config.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if fs.NArg() < 2 {
		printUsage(stdout)
		return 0
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	if _, err := convert.File(fs.Arg(0), fs.Arg(1), cfg.Header()); err != nil {
		logger.Log.Error("conversion failed", zap.Error(err))
		return 1
	}
	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `usage: sphereuv [options] input output

Replaces the texture coordinates of an OBJ mesh with spherical
longitude/latitude coordinates and writes the result to output.

Options:
  -config <path>     Config file (default ./sphereuv.yaml)
  -debug             Enable debug logging
  -log-file <path>   Also write logs to this file
  -mtllib <name>     Material library named in the output
  -object <name>     Object name written to the output
  -material <name>   Material used by the output faces
`)
}
