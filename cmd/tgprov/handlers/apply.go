package handlers

import (
	"context"
	"fmt"

	"github.com/imamik/tgprov/internal/config"
	"github.com/imamik/tgprov/internal/provisioning"
)

// ApplyOptions holds the apply command's flags.
type ApplyOptions struct {
	ConfigPath  string
	Network     string
	MetricsFile string
	LogFormat   string
	Debug       bool
}

// runProvision runs the provisioning pipeline. Replaced in tests.
var runProvision = provisioning.Provision

// Apply looks up the target network and creates its resources.
//
// A missing network is reported and is not an error. On failure the resources
// created so far are still printed before the error is returned.
func Apply(ctx context.Context, opts ApplyOptions) error {
	cfg, err := loadConfigFile(opts.ConfigPath, config.WithTargetOverride(opts.Network))
	if err != nil {
		return err
	}

	observer, err := newObserver(opts.LogFormat)
	if err != nil {
		return err
	}

	client := newAPIClient(cfg, debugLogger(opts.Debug, observer))
	pCtx := provisioning.NewContext(ctx, cfg, client, provisioning.WithObserver(observer))

	runErr := runProvision(pCtx)

	if opts.MetricsFile != "" {
		if err := pCtx.Metrics.WriteTextfile(opts.MetricsFile); err != nil {
			if runErr == nil {
				return err
			}
			pCtx.Observer.Printf("Warning: %v", err)
		}
	}

	if pCtx.State.NotFound {
		fmt.Printf("Network '%s' not found.\n", cfg.TargetNetwork)
		return nil
	}

	printApplySummary(cfg.TargetNetwork, pCtx.State, runErr != nil)
	return runErr
}

func printApplySummary(target string, state *provisioning.State, failed bool) {
	if isTTY() {
		fmt.Print(renderApplySummary(target, state, failed))
		return
	}

	for _, created := range state.Created {
		fmt.Printf("Created %s resource %s (id: %s, address: %s)\n",
			created.Kind, created.Resource.Name, created.Resource.ID, created.Resource.Address.Value)
	}
	if failed {
		fmt.Printf("Stopped after %d of %d resource(s) in network '%s'.\n",
			len(state.Created), len(state.Plan), target)
		return
	}
	fmt.Printf("Created %d resource(s) in network '%s'.\n", len(state.Created), target)
}
