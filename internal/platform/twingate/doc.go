// Package twingate provides a client for the access-control service's GraphQL API.
//
// # Architecture
//
//   - client.go: NetworkLocator, ResourceCreator and the combined API interface
//   - real_client.go: RealClient, the GraphQL implementation of API
//   - transport.go: HTTP status checking below the GraphQL client
//   - queries.go: the query and mutation documents
//   - network.go: remote network listing and lookup by name
//   - resource.go: resource creation
//   - errors.go: transport, malformed-response and resource-creation errors
//   - mock_client.go: function-field mock for tests
//
// # Error Kinds
//
// Every method distinguishes three failure kinds. A *TransportError means the
// request did not complete (network, HTTP status, GraphQL protocol error). A
// *MalformedResponseError means the service answered with a body that does not
// match the expected shape. A *ResourceCreationError means the service
// explicitly rejected a creation and carries its reason verbatim.
//
// A network that is not found is not an error: FindNetwork returns (nil, nil).
//
// # Limitations
//
// Only the first NetworkPageSize networks are fetched; networks on later
// pages are reported as not found. Resource creation is not idempotent.
package twingate
