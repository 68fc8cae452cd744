package provisioning

import "github.com/imamik/tgprov/internal/platform/twingate"

// State holds the shared results of provisioning phases.
// It is progressively populated as each phase completes and is passed
// to subsequent phases that need earlier results.
type State struct {
	// Network is the snapshot taken by the lookup phase. It is never re-fetched.
	Network *twingate.RemoteNetwork
	// NotFound is set when no network on the first page matched.
	NotFound bool

	Plan    []PlannedResource
	Created []ProvisionedResource

	// Done is terminal: once set, no further phase runs.
	Done bool
}

// ProvisionedResource pairs a planned address with what the service created for it.
type ProvisionedResource struct {
	PlannedResource
	Resource twingate.CreatedResource
}

// NewState creates an empty provisioning state.
func NewState() *State {
	return &State{}
}
