// Package config defines the configuration model for tgprov.
//
// The [Config] struct carries the three settings every run needs: the API
// endpoint, the API key sent as X-API-KEY, and the name of the remote network
// whose connector addresses are provisioned. It is loaded from a YAML file
// (see [Load]) and overridden by environment variables, then validated before
// any API call is made.
//
// The package also owns the interactive `init` wizard ([RunWizard]) and the
// YAML writer used to persist its result ([WriteYAML]).
package config
