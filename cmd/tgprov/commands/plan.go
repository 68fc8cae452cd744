package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/tgprov/cmd/tgprov/handlers"
)

// Plan returns the dry-run command.
func Plan() *cobra.Command {
	var opts handlers.PlanOptions

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the resources apply would create",
		Long: `Look up the target remote network and print the resources apply would
create, in creation order. Nothing is created.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Plan(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file (default: tgprov.yaml)")
	cmd.Flags().StringVarP(&opts.Network, "network", "n", "", "Target network name")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Print the plan as JSON")

	return cmd
}
