package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/tgprov/cmd/tgprov/handlers"
)

// Apply returns the command that creates the resources.
//
// Optional flags:
//
//	--config, -c: Path to configuration YAML file (default: auto-detect tgprov.yaml)
//	--network, -n: Target network name, overrides config and TARGET_NETWORK_NAME
//	--metrics-file: Write run metrics in Prometheus textfile format
//	--log-format: text or json
//	--debug: Log raw API requests and responses
//
// Environment variables:
//
//	API_URL, API_KEY, TARGET_NETWORK_NAME
func Apply() *cobra.Command {
	var opts handlers.ApplyOptions

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Create one resource per connector address",
		Long: `Look up the target remote network and create one resource for each
public and private address of its connectors.

Connectors are processed in the order the service returns them. For each
connector the public address comes first, then the private addresses.
Resources are named Resource-Public-<address> and Resource-Private-<address>
with dots replaced by dashes.

The run stops at the first failed creation. Resources created before the
failure are kept. Running apply twice creates duplicate resources.

If the network does not exist, nothing is created and the command succeeds.

Examples:
  # Use tgprov.yaml in the current directory
  tgprov apply

  # Override the target network
  tgprov apply --network Branch-A

  # Export metrics for the node_exporter textfile collector
  tgprov apply --metrics-file /var/lib/node_exporter/tgprov.prom`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Apply(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file (default: tgprov.yaml)")
	cmd.Flags().StringVarP(&opts.Network, "network", "n", "", "Target network name")
	cmd.Flags().StringVar(&opts.MetricsFile, "metrics-file", "", "Write run metrics to this file")
	cmd.Flags().StringVar(&opts.LogFormat, "log-format", handlers.LogFormatText, "Log format (text or json)")
	cmd.Flags().BoolVar(&opts.Debug, "debug", false, "Log raw API requests and responses")

	return cmd
}
