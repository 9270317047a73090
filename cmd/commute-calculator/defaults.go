package main

import (
	"fmt"

	"github.com/iwvelando/commute-calculator/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func defaultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Print a commute config holding the default inputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := yaml.Marshal(config.DefaultConfiguration())
			if err != nil {
				return fmt.Errorf("failed to encode defaults: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
