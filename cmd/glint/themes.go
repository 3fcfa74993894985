package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newThemesCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the registered styles",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := newRegistry(flags)
			if err != nil {
				return err
			}
			def := reg.Default()
			for _, name := range reg.Names() {
				marker := " "
				if def != nil && name == def.Name() {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, name)
			}
			return nil
		},
	}
}
