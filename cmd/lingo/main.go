// SPDX-License-Identifier: MIT

// Command lingo clusters search-result snippets from JSON requests.
//
//	lingo cluster --input req.json [--config params.yaml] [--format json|msgpack]
//	lingo params [--config params.yaml]
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lingo/config"
	"github.com/katalvlaran/lingo/lingo"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "lingo",
		Short:        "Label-first clustering of search results",
		SilenceUsage: true,
	}
	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error, disabled)")
	root.AddCommand(newClusterCmd(), newParamsCmd())

	return root
}

// newLogger writes human-readable logs to w at the level named by the
// --log-level flag.
func newLogger(cmd *cobra.Command, w io.Writer) (zerolog.Logger, error) {
	name, _ := cmd.Flags().GetString("log-level")
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("--log-level: %w", err)
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
		Level(level).
		With().Timestamp().Logger(), nil
}

// loadParams reads the --config file, or returns the defaults when the
// flag is empty.
func loadParams(path string) (lingo.Params, error) {
	if path == "" {
		return lingo.DefaultParams(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return lingo.Params{}, err
	}
	defer f.Close()

	return config.Load(f)
}
