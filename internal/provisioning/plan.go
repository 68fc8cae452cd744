package provisioning

import (
	"github.com/imamik/tgprov/internal/platform/twingate"
	"github.com/imamik/tgprov/internal/util/naming"
)

// PlannedResource is one resource the run will create.
type PlannedResource struct {
	Kind          string // naming.KindPublic or naming.KindPrivate
	Address       string
	Name          string
	ConnectorID   string
	ConnectorName string
}

// CreateOpts returns the creation request for this resource in networkID.
func (p PlannedResource) CreateOpts(networkID string) twingate.ResourceCreateOpts {
	return twingate.ResourceCreateOpts{
		Name:            p.Name,
		Address:         p.Address,
		RemoteNetworkID: networkID,
	}
}

// BuildPlan lists the resources to create for a network, in creation order:
// connectors in the given order, and per connector the public address
// followed by the private addresses. Addresses are not validated or deduplicated.
func BuildPlan(network *twingate.RemoteNetwork) []PlannedResource {
	if network == nil {
		return nil
	}

	plan := make([]PlannedResource, 0)
	for _, c := range network.Connectors {
		if c.HasPublicIP() {
			plan = append(plan, plannedFor(c, naming.KindPublic, c.PublicIP))
		}
		for _, ip := range c.PrivateIPs {
			plan = append(plan, plannedFor(c, naming.KindPrivate, ip))
		}
	}
	return plan
}

func plannedFor(c twingate.Connector, kind, address string) PlannedResource {
	return PlannedResource{
		Kind:          kind,
		Address:       address,
		Name:          naming.Resource(kind, address),
		ConnectorID:   c.ID,
		ConnectorName: c.Name,
	}
}
