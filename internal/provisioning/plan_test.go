package provisioning

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/imamik/tgprov/internal/platform/twingate"
	tgtesting "github.com/imamik/tgprov/internal/testing"
)

func TestBuildPlan(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		network *twingate.RemoteNetwork
		want    []PlannedResource
	}{
		{
			name:    "nil network",
			network: nil,
			want:    nil,
		},
		{
			name:    "no connectors",
			network: ptr(tgtesting.NewNetwork("n1", "Empty")),
			want:    []PlannedResource{},
		},
		{
			name:    "connector without addresses",
			network: ptr(tgtesting.NewNetwork("n1", "Bare", tgtesting.NewConnector("c1", ""))),
			want:    []PlannedResource{},
		},
		{
			name: "public first then private in order",
			network: ptr(tgtesting.NewNetwork("n1", "Office",
				tgtesting.NewConnector("c1", "198.51.100.7", "10.0.0.5", "10.0.0.6"),
			)),
			want: []PlannedResource{
				{Kind: "Public", Address: "198.51.100.7", Name: "Resource-Public-198-51-100-7", ConnectorID: "c1", ConnectorName: "connector-c1"},
				{Kind: "Private", Address: "10.0.0.5", Name: "Resource-Private-10-0-0-5", ConnectorID: "c1", ConnectorName: "connector-c1"},
				{Kind: "Private", Address: "10.0.0.6", Name: "Resource-Private-10-0-0-6", ConnectorID: "c1", ConnectorName: "connector-c1"},
			},
		},
		{
			name: "connectors in given order, missing public skipped",
			network: ptr(tgtesting.NewNetwork("n1", "Office",
				tgtesting.NewConnector("c1", "", "10.0.0.1"),
				tgtesting.NewConnector("c2", "203.0.113.9"),
			)),
			want: []PlannedResource{
				{Kind: "Private", Address: "10.0.0.1", Name: "Resource-Private-10-0-0-1", ConnectorID: "c1", ConnectorName: "connector-c1"},
				{Kind: "Public", Address: "203.0.113.9", Name: "Resource-Public-203-0-113-9", ConnectorID: "c2", ConnectorName: "connector-c2"},
			},
		},
		{
			name: "addresses are not deduplicated",
			network: ptr(tgtesting.NewNetwork("n1", "Office",
				tgtesting.NewConnector("c1", "", "10.0.0.1", "10.0.0.1"),
			)),
			want: []PlannedResource{
				{Kind: "Private", Address: "10.0.0.1", Name: "Resource-Private-10-0-0-1", ConnectorID: "c1", ConnectorName: "connector-c1"},
				{Kind: "Private", Address: "10.0.0.1", Name: "Resource-Private-10-0-0-1", ConnectorID: "c1", ConnectorName: "connector-c1"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := BuildPlan(tt.network)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("BuildPlan() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPlannedResource_CreateOpts(t *testing.T) {
	t.Parallel()
	p := PlannedResource{Kind: "Public", Address: "203.0.113.5", Name: "Resource-Public-203-0-113-5"}

	assert.Equal(t, twingate.ResourceCreateOpts{
		Name:            "Resource-Public-203-0-113-5",
		Address:         "203.0.113.5",
		RemoteNetworkID: "net-1",
	}, p.CreateOpts("net-1"))
}

func ptr[T any](v T) *T {
	return &v
}
