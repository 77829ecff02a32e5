// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lingo/config"
	"github.com/katalvlaran/lingo/service"
)

func newClusterCmd() *cobra.Command {
	var (
		input   string
		cfgPath string
		format  string
		workers int
	)
	cmd := &cobra.Command{
		Use:   "cluster",
		Short: "Cluster the documents of one or more JSON requests",
		Long: `Reads a request object {"language", "documents", "parameters"} or an
array of them and writes one response per request. Parameters in the
--config file apply to every request; request parameters override them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(cmd, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if workers < 1 {
				return fmt.Errorf("--workers=%d must be >= 1", workers)
			}
			params, err := loadParams(cfgPath)
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			base, err := config.ToMap(params)
			if err != nil {
				return err
			}

			var in io.Reader = cmd.InOrStdin()
			if input != "-" {
				f, err := os.Open(input)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			reqs, err := service.ReadRequests(in)
			if err != nil {
				return err
			}
			logger.Debug().Int("requests", len(reqs)).Str("input", input).Msg("read requests")

			svc := service.New(
				service.WithLogger(logger),
				service.WithWorkers(workers),
				service.WithBaseParameters(base),
			)
			resps, runErr := svc.ClusterAll(cmd.Context(), reqs)

			var out any = resps
			if len(resps) == 1 {
				out = resps[0]
			}
			if err = service.Encode(cmd.OutOrStdout(), out, format); err != nil {
				return err
			}

			return runErr
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "-", "request file, - for stdin")
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "YAML parameter file")
	cmd.Flags().StringVarP(&format, "format", "f", service.FormatJSON, "output format: json or msgpack")
	cmd.Flags().IntVarP(&workers, "workers", "w", runtime.NumCPU(), "concurrent requests")

	return cmd
}
