package config

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
)

// Validation errors for the interactive wizard.
var (
	errAPIURLRequired  = errors.New("API URL is required")
	errNetworkRequired = errors.New("network name is required")
)

// WizardResult holds the answers from the interactive wizard.
type WizardResult struct {
	APIURL        string
	APIKey        string
	StoreAPIKey   bool
	TargetNetwork string
}

// ToConfig converts the wizard answers into a Config. The API key is dropped
// unless the user chose to store it in the file.
func (r *WizardResult) ToConfig() *Config {
	cfg := &Config{
		APIURL:        strings.TrimSpace(r.APIURL),
		TargetNetwork: strings.TrimSpace(r.TargetNetwork),
	}
	if r.StoreAPIKey {
		cfg.APIKey = strings.TrimSpace(r.APIKey)
	}
	return cfg
}

// RunWizard prompts for the connection settings and the target network.
func RunWizard(ctx context.Context) (*WizardResult, error) {
	result := &WizardResult{}

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("API URL").
				Description("GraphQL endpoint of your tenant").
				Placeholder("https://example.twingate.com/api/graphql/").
				Value(&result.APIURL).
				Validate(validateWizardAPIURL),
			huh.NewInput().
				Title("API Key").
				Description("Sent as X-API-KEY. Leave empty to use the "+EnvAPIKey+" environment variable.").
				EchoMode(huh.EchoModePassword).
				Value(&result.APIKey),
		).Title("Connection"),
		huh.NewGroup(
			huh.NewInput().
				Title("Target Network").
				Description("Name of the remote network whose connector addresses are provisioned").
				Value(&result.TargetNetwork).
				Validate(validateNetworkName),
		).Title("Network"),
	).RunWithContext(ctx)
	if err != nil {
		return nil, err
	}

	if result.APIKey != "" {
		err = huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("Store API key in the config file?").
					Description("The file is written with 0600 permissions.").
					Affirmative("Yes").
					Negative("No, use " + EnvAPIKey).
					Value(&result.StoreAPIKey),
			),
		).RunWithContext(ctx)
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

func validateWizardAPIURL(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errAPIURLRequired
	}
	return validateAPIURL(s)
}

func validateNetworkName(s string) error {
	if strings.TrimSpace(s) == "" {
		return errNetworkRequired
	}
	return nil
}
