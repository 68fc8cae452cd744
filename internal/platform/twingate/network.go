package twingate

import (
	"context"
	"errors"
	"fmt"
)

const opListRemoteNetworks = "list remote networks"

type remoteNetworksResponse struct {
	RemoteNetworks *struct {
		Edges []struct {
			Node remoteNetworkNode `json:"node"`
		} `json:"edges"`
	} `json:"remoteNetworks"`
}

type remoteNetworkNode struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Connectors *struct {
		Edges []struct {
			Node connectorNode `json:"node"`
		} `json:"edges"`
	} `json:"connectors"`
}

type connectorNode struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	PublicIP      *string    `json:"publicIP"`
	PrivateIPs    []string   `json:"privateIPs"`
	RemoteNetwork NetworkRef `json:"remoteNetwork"`
}

// ListRemoteNetworks returns the first page of remote networks in service order.
func (c *RealClient) ListRemoteNetworks(ctx context.Context) ([]RemoteNetwork, error) {
	var resp remoteNetworksResponse
	vars := map[string]interface{}{
		"after": nil,
		"first": NetworkPageSize,
	}
	if err := c.run(ctx, opListRemoteNetworks, queryRemoteNetworks, vars, &resp); err != nil {
		return nil, err
	}
	if resp.RemoteNetworks == nil {
		return nil, &MalformedResponseError{Op: opListRemoteNetworks, Err: errors.New("missing remoteNetworks")}
	}

	networks := make([]RemoteNetwork, 0, len(resp.RemoteNetworks.Edges))
	for i, edge := range resp.RemoteNetworks.Edges {
		network, err := edge.Node.toRemoteNetwork()
		if err != nil {
			return nil, &MalformedResponseError{Op: opListRemoteNetworks, Err: fmt.Errorf("network %d: %w", i, err)}
		}
		networks = append(networks, network)
	}
	return networks, nil
}

// FindNetwork returns the first network named name, or nil if none matches.
// The comparison is exact and case-sensitive.
func (c *RealClient) FindNetwork(ctx context.Context, name string) (*RemoteNetwork, error) {
	networks, err := c.ListRemoteNetworks(ctx)
	if err != nil {
		return nil, err
	}
	return FirstNetworkNamed(networks, name), nil
}

// FirstNetworkNamed returns the first network in networks named name, or nil.
func FirstNetworkNamed(networks []RemoteNetwork, name string) *RemoteNetwork {
	for i := range networks {
		if networks[i].Name == name {
			network := networks[i]
			return &network
		}
	}
	return nil
}

func (n remoteNetworkNode) toRemoteNetwork() (RemoteNetwork, error) {
	if n.ID == "" {
		return RemoteNetwork{}, errors.New("missing id")
	}

	network := RemoteNetwork{
		ID:         n.ID,
		Name:       n.Name,
		Connectors: []Connector{},
	}
	if n.Connectors == nil {
		return network, nil
	}

	for _, edge := range n.Connectors.Edges {
		node := edge.Node
		connector := Connector{
			ID:            node.ID,
			Name:          node.Name,
			PrivateIPs:    node.PrivateIPs,
			RemoteNetwork: node.RemoteNetwork,
		}
		if node.PublicIP != nil {
			connector.PublicIP = *node.PublicIP
		}
		if connector.PrivateIPs == nil {
			connector.PrivateIPs = []string{}
		}
		network.Connectors = append(network.Connectors, connector)
	}
	return network, nil
}
