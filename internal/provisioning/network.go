package provisioning

import "fmt"

const phaseNetworkLookup = "network-lookup"

// NetworkLookupPhase locates the target network and snapshots it into State.
type NetworkLookupPhase struct{}

// NewNetworkLookupPhase creates a new network lookup phase.
func NewNetworkLookupPhase() *NetworkLookupPhase {
	return &NetworkLookupPhase{}
}

// Name implements the Phase interface.
func (p *NetworkLookupPhase) Name() string {
	return phaseNetworkLookup
}

// Provision implements the Phase interface.
func (p *NetworkLookupPhase) Provision(ctx *Context) error {
	target := ctx.Config.TargetNetwork
	ctx.Observer.Printf("Searching for target network: %s...", target)

	network, err := ctx.Client.FindNetwork(ctx, target)
	if err != nil {
		ctx.Metrics.RecordLookup(LookupError)
		return fmt.Errorf("failed to look up network %q: %w", target, err)
	}

	if network == nil {
		ctx.Metrics.RecordLookup(LookupNotFound)
		LogNetworkNotFound(ctx.Observer, phaseNetworkLookup, target)
		ctx.State.NotFound = true
		ctx.State.Done = true
		return nil
	}

	ctx.Metrics.RecordLookup(LookupFound)
	LogNetworkFound(ctx.Observer, phaseNetworkLookup, network.Name, network.ID, len(network.Connectors))
	ctx.State.Network = network
	return nil
}
