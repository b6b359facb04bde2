package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newResolveCmd(a *app) *cobra.Command {
	var absolute bool

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the prediction endpoint chosen for --origin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := a.resolver()
			if err != nil {
				return err
			}
			if !absolute {
				fmt.Fprintln(cmd.OutOrStdout(), resolver.Resolve(a.origin))
				return nil
			}
			target, err := resolver.Target(a.origin)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), target)
			return nil
		},
	}
	cmd.Flags().BoolVar(&absolute, "absolute", false, "join a same-origin path onto the origin")
	return cmd
}
