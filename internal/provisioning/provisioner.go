package provisioning

import "time"

// Provision runs a full provisioning run: lookup, plan and resource creation.
// A network that is not found ends the run without error; check State.NotFound.
func Provision(ctx *Context) error {
	start := time.Now()
	defer func() {
		ctx.Metrics.ObserveRun(time.Since(start))
	}()

	return NewPipeline(
		NewNetworkLookupPhase(),
		NewPlanPhase(),
		NewResourcePhase(),
	).Run(ctx)
}

// Plan runs lookup and planning only. Nothing is created.
func Plan(ctx *Context) error {
	return NewPipeline(
		NewNetworkLookupPhase(),
		NewPlanPhase(),
	).Run(ctx)
}
