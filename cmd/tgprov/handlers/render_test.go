package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/imamik/tgprov/internal/platform/twingate"
	"github.com/imamik/tgprov/internal/provisioning"
	tgtesting "github.com/imamik/tgprov/internal/testing"
)

func TestRenderPlan(t *testing.T) {
	t.Parallel()
	network := tgtesting.NewNetwork("n1", "Office",
		tgtesting.NewConnector("c1", "198.51.100.7", "10.0.0.5"),
		tgtesting.NewConnector("c2", "", "10.0.0.9"),
	)

	out := renderPlan("Office", provisioning.BuildPlan(&network))

	assert.Contains(t, out, "tgprov plan: Office")
	assert.Contains(t, out, "connector-c1")
	assert.Contains(t, out, "connector-c2")
	assert.Contains(t, out, "Resource-Public-198-51-100-7")
	assert.Contains(t, out, "Resource-Private-10-0-0-9")
	assert.Contains(t, out, "3 resource(s) would be created")
}

func TestRenderPlan_Empty(t *testing.T) {
	t.Parallel()
	out := renderPlan("Quiet", nil)
	assert.Contains(t, out, "nothing to create")
}

func TestRenderApplySummary(t *testing.T) {
	t.Parallel()
	state := &provisioning.State{
		Plan: make([]provisioning.PlannedResource, 3),
		Created: []provisioning.ProvisionedResource{{
			PlannedResource: provisioning.PlannedResource{Kind: "Public", Address: "203.0.113.5"},
			Resource: twingate.CreatedResource{
				ID:      "r-1",
				Name:    "Resource-Public-203-0-113-5",
				Address: twingate.ResourceAddress{Type: "IP", Value: "203.0.113.5"},
			},
		}},
	}

	ok := renderApplySummary("Branch-A", state, false)
	assert.Contains(t, ok, "Resource-Public-203-0-113-5")
	assert.Contains(t, ok, "r-1")
	assert.Contains(t, ok, "Created 1 resource(s)")

	failed := renderApplySummary("Branch-A", state, true)
	assert.Contains(t, failed, "Stopped after 1 of 3 resource(s)")
}

func TestRenderNetworks(t *testing.T) {
	t.Parallel()
	assert.Contains(t, renderNetworks(nil), "No remote networks found.")

	out := renderNetworks([]twingate.RemoteNetwork{tgtesting.BranchA()})
	assert.Contains(t, out, "Branch-A")
	assert.Contains(t, out, "net-branch-a")
	assert.Contains(t, out, "public:  203.0.113.5")
	assert.Contains(t, out, "private: 10.1.1.1")
}
