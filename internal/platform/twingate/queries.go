package twingate

// NetworkPageSize is the number of remote networks fetched by a lookup.
// Later pages are never requested.
const NetworkPageSize = 10

const queryRemoteNetworks = `
query GetRemoteNetworkDetails($after: String, $first: Int) {
  remoteNetworks(after: $after, first: $first) {
    edges {
      node {
        id
        name
        connectors {
          edges {
            node {
              id
              name
              publicIP
              privateIPs
              remoteNetwork {
                id
                name
              }
            }
          }
        }
      }
    }
  }
}
`

const mutationCreateResource = `
mutation CreateResource($name: String!, $address: String!, $remoteNetworkId: ID!) {
  resourceCreate(name: $name, address: $address, remoteNetworkId: $remoteNetworkId) {
    ok
    error
    entity {
      id
      name
      address {
        type
        value
      }
    }
  }
}
`
