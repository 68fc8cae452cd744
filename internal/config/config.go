package config

// DefaultConfigFilename is looked up in the working directory and its parents
// when no --config flag is given.
const DefaultConfigFilename = "tgprov.yaml"

// Environment variables that override file values.
const (
	EnvAPIURL        = "API_URL"
	EnvAPIKey        = "API_KEY"
	EnvTargetNetwork = "TARGET_NETWORK_NAME"
)

// Config holds the application configuration.
type Config struct {
	APIURL        string `mapstructure:"api_url" yaml:"api_url"`
	APIKey        string `mapstructure:"api_key" yaml:"api_key,omitempty"`
	TargetNetwork string `mapstructure:"target_network" yaml:"target_network"`

	// Timeouts is populated from the environment, never from the file.
	Timeouts *Timeouts `mapstructure:"-" yaml:"-"`
}

// WithTargetNetwork returns a copy of the config targeting another network.
// An empty name leaves the config unchanged.
func (c *Config) WithTargetNetwork(name string) *Config {
	out := *c
	if name != "" {
		out.TargetNetwork = name
	}
	return &out
}
