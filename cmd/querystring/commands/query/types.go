package query

import (
	"fmt"

	"github.com/speakeasy-api/querystring/jellyfin"
	"github.com/spf13/cobra"
)

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the DTO names accepted by --type",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			for _, name := range jellyfin.Names() {
				fmt.Fprintln(out, name)
			}
		},
	}
}
