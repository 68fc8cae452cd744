package provisioning

import (
	"fmt"
	"time"
)

// Pipeline runs phases in order.
type Pipeline struct {
	Phases []Phase
}

// NewPipeline creates a pipeline from the given phases.
func NewPipeline(phases ...Phase) *Pipeline {
	return &Pipeline{Phases: phases}
}

// Run executes the pipeline's phases.
func (p *Pipeline) Run(ctx *Context) error {
	return RunPhases(ctx, p.Phases)
}

// RunPhases executes all provisioning phases sequentially.
// It stops at the first failing phase, or without error once State.Done is set.
func RunPhases(ctx *Context, phases []Phase) error {
	start := time.Now()
	ctx.Observer.Printf("Starting provisioning with %d phases...", len(phases))

	for i, phase := range phases {
		if ctx.State.Done {
			ctx.Observer.Printf("Run finished early, skipping %d remaining phase(s)", len(phases)-i)
			break
		}

		phaseStart := time.Now()
		LogPhaseStart(ctx.Observer, fmt.Sprintf("%s (%d/%d)", phase.Name(), i+1, len(phases)))

		if err := phase.Provision(ctx); err != nil {
			LogPhaseFailed(ctx.Observer, phase.Name(), err)
			return fmt.Errorf("%s phase failed: %w", phase.Name(), err)
		}

		LogPhaseComplete(ctx.Observer, phase.Name(), time.Since(phaseStart))
	}

	ctx.State.Done = true
	ctx.Observer.Printf("Provisioning completed in %v", time.Since(start).Round(time.Millisecond))
	return nil
}
