package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/imamik/tgprov/internal/config"
	"github.com/imamik/tgprov/internal/provisioning"
)

// PlanOptions holds the plan command's flags.
type PlanOptions struct {
	ConfigPath string
	Network    string
	JSON       bool
}

// runPlan runs lookup and planning. Replaced in tests.
var runPlan = provisioning.Plan

// planEntry is the JSON form of one planned resource.
type planEntry struct {
	Kind          string `json:"kind"`
	Address       string `json:"address"`
	Name          string `json:"name"`
	ConnectorID   string `json:"connector_id"`
	ConnectorName string `json:"connector_name"`
}

// Plan prints the resources apply would create, without creating them.
func Plan(ctx context.Context, opts PlanOptions) error {
	cfg, err := loadConfigFile(opts.ConfigPath, config.WithTargetOverride(opts.Network))
	if err != nil {
		return err
	}

	observer, err := newObserver(LogFormatText)
	if err != nil {
		return err
	}

	client := newAPIClient(cfg, nil)
	pCtx := provisioning.NewContext(ctx, cfg, client, provisioning.WithObserver(observer))

	if err := runPlan(pCtx); err != nil {
		return err
	}

	if pCtx.State.NotFound {
		fmt.Printf("Network '%s' not found.\n", cfg.TargetNetwork)
		return nil
	}

	if opts.JSON {
		return printPlanJSON(pCtx.State.Plan)
	}
	if isTTY() {
		fmt.Print(renderPlan(pCtx.State.Network.Name, pCtx.State.Plan))
		return nil
	}

	for _, p := range pCtx.State.Plan {
		fmt.Printf("%-8s %-16s %s (connector %s)\n", p.Kind, p.Address, p.Name, p.ConnectorName)
	}
	fmt.Printf("%d resource(s) would be created in network '%s'.\n", len(pCtx.State.Plan), pCtx.State.Network.Name)
	return nil
}

func printPlanJSON(plan []provisioning.PlannedResource) error {
	entries := make([]planEntry, 0, len(plan))
	for _, p := range plan {
		entries = append(entries, planEntry{
			Kind:          p.Kind,
			Address:       p.Address,
			Name:          p.Name,
			ConnectorID:   p.ConnectorID,
			ConnectorName: p.ConnectorName,
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}
