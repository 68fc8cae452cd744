package twingate

import "context"

// MockClient is a mock implementation of API.
type MockClient struct {
	ListRemoteNetworksFunc func(ctx context.Context) ([]RemoteNetwork, error)
	FindNetworkFunc        func(ctx context.Context, name string) (*RemoteNetwork, error)
	CreateResourceFunc     func(ctx context.Context, opts ResourceCreateOpts) (*CreatedResource, error)

	// CreateCalls records every CreateResource call in order.
	CreateCalls []ResourceCreateOpts
}

func (m *MockClient) ListRemoteNetworks(ctx context.Context) ([]RemoteNetwork, error) {
	if m.ListRemoteNetworksFunc != nil {
		return m.ListRemoteNetworksFunc(ctx)
	}
	return nil, nil
}

// FindNetwork falls back to scanning ListRemoteNetworksFunc when FindNetworkFunc is unset.
func (m *MockClient) FindNetwork(ctx context.Context, name string) (*RemoteNetwork, error) {
	if m.FindNetworkFunc != nil {
		return m.FindNetworkFunc(ctx, name)
	}
	networks, err := m.ListRemoteNetworks(ctx)
	if err != nil {
		return nil, err
	}
	return FirstNetworkNamed(networks, name), nil
}

func (m *MockClient) CreateResource(ctx context.Context, opts ResourceCreateOpts) (*CreatedResource, error) {
	m.CreateCalls = append(m.CreateCalls, opts)
	if m.CreateResourceFunc != nil {
		return m.CreateResourceFunc(ctx, opts)
	}
	return &CreatedResource{
		ID:      "mock-" + opts.Name,
		Name:    opts.Name,
		Address: ResourceAddress{Type: "IP", Value: opts.Address},
	}, nil
}
