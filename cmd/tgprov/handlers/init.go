package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/imamik/tgprov/internal/config"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// runWizard runs the interactive wizard.
	runWizard = config.RunWizard

	// writeConfig writes the config to a file.
	writeConfig = config.WriteYAML
)

// Init runs the configuration wizard and writes the result to a file.
func Init(ctx context.Context, outputPath string) error {
	if fileExists(outputPath) {
		fmt.Printf("Warning: %s already exists and will be overwritten.\n\n", outputPath)
	}

	printWelcome()

	result, err := runWizard(ctx)
	if err != nil {
		return fmt.Errorf("wizard canceled: %w", err)
	}

	cfg := result.ToConfig()

	if err := writeConfig(cfg, outputPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	printInitSuccess(outputPath, cfg)

	return nil
}

func printWelcome() {
	fmt.Println()
	fmt.Println("tgprov - access resources for remote networks")
	fmt.Println("=============================================")
	fmt.Println()
	fmt.Println("This wizard asks for the API connection and the network to provision.")
	fmt.Println()
}

func printInitSuccess(outputPath string, cfg *config.Config) {
	fmt.Println()
	fmt.Println("Configuration saved!")
	fmt.Println()
	fmt.Printf("  File:    %s\n", outputPath)
	fmt.Printf("  API URL: %s\n", cfg.APIURL)
	fmt.Printf("  Network: %s\n", cfg.TargetNetwork)
	fmt.Println()

	fmt.Println("Next Steps")
	fmt.Println("----------")
	step := 1
	if cfg.APIKey == "" {
		fmt.Printf("  %d. Set your API key:\n", step)
		fmt.Printf("     export %s=<your-key>\n", config.EnvAPIKey)
		fmt.Println()
		step++
	}
	fmt.Printf("  %d. Preview the resources:\n", step)
	fmt.Printf("     tgprov plan -c %s\n", outputPath)
	fmt.Println()
	fmt.Printf("  %d. Create them:\n", step+1)
	fmt.Printf("     tgprov apply -c %s\n", outputPath)
	fmt.Println()
}
