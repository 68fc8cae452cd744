package twingate

// RemoteNetwork is a logical grouping of connectors.
type RemoteNetwork struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Connectors []Connector `json:"connectors"`
}

// NetworkRef is a connector's back-reference to its remote network.
type NetworkRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Connector is a gateway within a remote network.
type Connector struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// PublicIP is empty when the connector has no public address.
	PublicIP      string     `json:"publicIP,omitempty"`
	PrivateIPs    []string   `json:"privateIPs"`
	RemoteNetwork NetworkRef `json:"remoteNetwork"`
}

// HasPublicIP reports whether the connector exposes a public address.
func (c Connector) HasPublicIP() bool {
	return c.PublicIP != ""
}

// ResourceCreateOpts holds the parameters of a resource creation request.
type ResourceCreateOpts struct {
	Name            string
	Address         string
	RemoteNetworkID string
}

// ResourceAddress is the address of a created resource as reported by the service.
type ResourceAddress struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// CreatedResource is a resource returned by a successful creation.
type CreatedResource struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Address ResourceAddress `json:"address"`
}
