package testing

import (
	"github.com/imamik/tgprov/internal/platform/twingate"
	"github.com/imamik/tgprov/internal/testing/fakeapi"
)

// NewConnector builds a connector. An empty publicIP means no public address.
func NewConnector(id, publicIP string, privateIPs ...string) twingate.Connector {
	if privateIPs == nil {
		privateIPs = []string{}
	}
	return twingate.Connector{
		ID:         id,
		Name:       "connector-" + id,
		PublicIP:   publicIP,
		PrivateIPs: privateIPs,
	}
}

// NewNetwork builds a remote network and fills in the connectors' back-references.
func NewNetwork(id, name string, connectors ...twingate.Connector) twingate.RemoteNetwork {
	network := twingate.RemoteNetwork{
		ID:         id,
		Name:       name,
		Connectors: make([]twingate.Connector, 0, len(connectors)),
	}
	for _, c := range connectors {
		c.RemoteNetwork = twingate.NetworkRef{ID: id, Name: name}
		network.Connectors = append(network.Connectors, c)
	}
	return network
}

// BranchA is a network with one connector exposing 203.0.113.5 publicly and 10.1.1.1 privately.
func BranchA() twingate.RemoteNetwork {
	return NewNetwork("net-branch-a", "Branch-A",
		NewConnector("conn-a1", "203.0.113.5", "10.1.1.1"),
	)
}

// ToFake converts networks to the fake API's representation.
func ToFake(networks ...twingate.RemoteNetwork) []fakeapi.Network {
	out := make([]fakeapi.Network, 0, len(networks))
	for _, n := range networks {
		fn := fakeapi.Network{ID: n.ID, Name: n.Name}
		for _, c := range n.Connectors {
			fn.Connectors = append(fn.Connectors, fakeapi.Connector{
				ID:         c.ID,
				Name:       c.Name,
				PublicIP:   c.PublicIP,
				PrivateIPs: c.PrivateIPs,
			})
		}
		out = append(out, fn)
	}
	return out
}
