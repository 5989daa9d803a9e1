// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
//
func NewListCommand(_ *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List demo circuits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, d := range demos {
				fmt.Fprintf(w, "%-12s %s\n", d.name, d.help)
			}
			return nil
		},
	}
}
