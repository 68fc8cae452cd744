// Package fakeapi serves an in-memory access-control GraphQL API for tests.
//
// The schema covers the two operations tgprov consumes: the remoteNetworks
// connection query and the resourceCreate mutation. Requests must carry the
// configured X-API-KEY header; anything else is answered with HTTP 401.
//
//	api := fakeapi.New("test-key", fakeapi.Network{
//	    ID:   "net-1",
//	    Name: "Branch-A",
//	    Connectors: []fakeapi.Connector{{ID: "c-1", PublicIP: "203.0.113.5"}},
//	})
//	defer api.Close()
//
//	client := twingate.NewRealClient(api.URL(), "test-key")
package fakeapi
