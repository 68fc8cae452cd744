package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/tgprov/cmd/tgprov/handlers"
)

// Networks returns the command listing remote networks.
func Networks() *cobra.Command {
	var opts handlers.NetworksOptions

	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List remote networks and their connector addresses",
		Long: `List the first page of remote networks with each connector's public
and private addresses. Only the API URL and key need to be configured.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Networks(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file (default: tgprov.yaml)")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Print the networks as JSON")

	return cmd
}
