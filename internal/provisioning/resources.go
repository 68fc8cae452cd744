package provisioning

import (
	"errors"
	"fmt"

	"github.com/imamik/tgprov/internal/platform/twingate"
)

const (
	phasePlan      = "plan"
	phaseResources = "resources"
)

// PlanPhase derives the ordered list of resources from the located network.
type PlanPhase struct{}

// NewPlanPhase creates a new plan phase.
func NewPlanPhase() *PlanPhase {
	return &PlanPhase{}
}

// Name implements the Phase interface.
func (p *PlanPhase) Name() string {
	return phasePlan
}

// Provision implements the Phase interface.
func (p *PlanPhase) Provision(ctx *Context) error {
	if ctx.State.Network == nil {
		return errors.New("no network located")
	}
	ctx.State.Plan = BuildPlan(ctx.State.Network)
	ctx.Observer.Printf("Planned %d resource(s) across %d connector(s)",
		len(ctx.State.Plan), len(ctx.State.Network.Connectors))
	return nil
}

// ResourcePhase creates the planned resources one at a time.
type ResourcePhase struct{}

// NewResourcePhase creates a new resource phase.
func NewResourcePhase() *ResourcePhase {
	return &ResourcePhase{}
}

// Name implements the Phase interface.
func (p *ResourcePhase) Name() string {
	return phaseResources
}

// Provision implements the Phase interface.
//
// Creation is fail-fast: the first error is returned and no further resource
// is attempted. Resources created before the failure remain in State.Created.
func (p *ResourcePhase) Provision(ctx *Context) error {
	if ctx.State.Network == nil {
		return errors.New("no network located")
	}
	networkID := ctx.State.Network.ID
	total := len(ctx.State.Plan)

	for i, planned := range ctx.State.Plan {
		LogResourceCreating(ctx.Observer, phaseResources, planned)

		res, err := ctx.Client.CreateResource(ctx, planned.CreateOpts(networkID))
		if err != nil {
			ctx.Metrics.RecordFailure(planned.Kind)
			LogResourceFailed(ctx.Observer, phaseResources, planned, err)
			if twingate.IsResourceCreation(err) {
				return err
			}
			return fmt.Errorf("failed to create resource %s (%s): %w", planned.Name, planned.Address, err)
		}

		ctx.Metrics.RecordCreated(planned.Kind)
		ctx.State.Created = append(ctx.State.Created, ProvisionedResource{
			PlannedResource: planned,
			Resource:        *res,
		})
		LogResourceCreated(ctx.Observer, phaseResources, planned, res)
		ctx.Observer.Progress(phaseResources, i+1, total)
	}

	return nil
}
