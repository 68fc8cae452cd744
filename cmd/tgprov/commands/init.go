package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/tgprov/cmd/tgprov/handlers"
	"github.com/imamik/tgprov/internal/config"
)

// Init returns the command for interactively creating a configuration file.
//
// Flags:
//
//	--output, -o: Path to output file (default "tgprov.yaml")
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a configuration file",
		Long: `Interactively create a configuration file.

The wizard asks for the API URL, the API key and the target network name.
The API key is only written to the file if you choose to store it;
otherwise set API_KEY in the environment before running apply.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", config.DefaultConfigFilename, "Output file path")

	return cmd
}
