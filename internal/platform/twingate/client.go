package twingate

import "context"

// NetworkLocator defines the interface for reading remote networks.
type NetworkLocator interface {
	// ListRemoteNetworks returns the first page of remote networks with
	// their connectors and addresses.
	ListRemoteNetworks(ctx context.Context) ([]RemoteNetwork, error)
	// FindNetwork returns the first network whose name equals name exactly,
	// or nil if no network on the first page matches.
	FindNetwork(ctx context.Context, name string) (*RemoteNetwork, error)
}

// ResourceCreator defines the interface for creating resources.
type ResourceCreator interface {
	// CreateResource creates one resource. Calling it twice with the same
	// options creates two resources.
	CreateResource(ctx context.Context, opts ResourceCreateOpts) (*CreatedResource, error)
}

// API combines all interfaces used by the provisioner.
type API interface {
	NetworkLocator
	ResourceCreator
}
