// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lingo/config"
)

func newParamsCmd() *cobra.Command {
	var cfgPath string
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Print the effective parameters as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params, err := loadParams(cfgPath)
			if err != nil {
				return err
			}
			out, err := config.Dump(params)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "YAML parameter file to resolve")

	return cmd
}
