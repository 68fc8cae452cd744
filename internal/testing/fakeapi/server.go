package fakeapi

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/google/uuid"
	"github.com/graphql-go/graphql"
)

// Connector is a connector served by the fake API. An empty PublicIP is served as null.
type Connector struct {
	ID         string
	Name       string
	PublicIP   string
	PrivateIPs []string
}

// Network is a remote network served by the fake API.
type Network struct {
	ID         string
	Name       string
	Connectors []Connector
}

// Resource is a resource created through the fake API.
type Resource struct {
	ID              string
	Name            string
	Address         string
	AddressType     string
	RemoteNetworkID string
}

// Server is a fake access-control API backed by an httptest server.
type Server struct {
	apiKey string
	server *httptest.Server
	schema graphql.Schema

	mu         sync.Mutex
	networks   []Network
	resources  []Resource
	rejections map[int]string
	listCalls  int
	createSeq  int
	apiKeys    []string
}

// New starts a fake API serving networks in the given order.
func New(apiKey string, networks ...Network) *Server {
	s := &Server{
		apiKey:     apiKey,
		networks:   networks,
		rejections: make(map[int]string),
	}
	s.initSchema()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/graphql", s.handleGraphQL)
	s.server = httptest.NewServer(mux)
	return s
}

// URL returns the GraphQL endpoint.
func (s *Server) URL() string {
	return s.server.URL + "/api/graphql"
}

// Close shuts the server down.
func (s *Server) Close() {
	s.server.Close()
}

// RejectCreateCall makes the n-th resourceCreate call (1-based) answer
// ok: false with reason as the error.
func (s *Server) RejectCreateCall(n int, reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rejections[n] = reason
}

// Resources returns the resources created so far, in creation order.
func (s *Server) Resources() []Resource {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Resource, len(s.resources))
	copy(out, s.resources)
	return out
}

// CreateCalls returns the number of resourceCreate calls, rejected ones included.
func (s *Server) CreateCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createSeq
}

// ListCalls returns the number of remoteNetworks queries.
func (s *Server) ListCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listCalls
}

// APIKeys returns the X-API-KEY header of every authorized request.
func (s *Server) APIKeys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.apiKeys))
	copy(out, s.apiKeys)
	return out
}

func (s *Server) handleGraphQL(w http.ResponseWriter, r *http.Request) {
	key := r.Header.Get("X-API-KEY")
	if key != s.apiKey {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid API key"})
		return
	}

	var req struct {
		Query         string                 `json:"query"`
		Variables     map[string]interface{} `json:"variables"`
		OperationName string                 `json:"operationName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "problems parsing JSON"})
		return
	}

	s.mu.Lock()
	s.apiKeys = append(s.apiKeys, key)
	s.mu.Unlock()

	result := graphql.Do(graphql.Params{
		Schema:         s.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        r.Context(),
	})

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) initSchema() {
	networkRefType := graphql.NewObject(graphql.ObjectConfig{
		Name: "RemoteNetworkRef",
		Fields: graphql.Fields{
			"id":   &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	connectorType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Connector",
		Fields: graphql.Fields{
			"id":            &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":          &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"publicIP":      &graphql.Field{Type: graphql.String},
			"privateIPs":    &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.String)))},
			"remoteNetwork": &graphql.Field{Type: graphql.NewNonNull(networkRefType)},
		},
	})

	remoteNetworkType := graphql.NewObject(graphql.ObjectConfig{
		Name: "RemoteNetwork",
		Fields: graphql.Fields{
			"id":         &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"connectors": &graphql.Field{Type: graphql.NewNonNull(connectionType("Connector", connectorType))},
		},
	})

	addressType := graphql.NewObject(graphql.ObjectConfig{
		Name: "ResourceAddress",
		Fields: graphql.Fields{
			"type":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"value": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	resourceType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Resource",
		Fields: graphql.Fields{
			"id":      &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"address": &graphql.Field{Type: graphql.NewNonNull(addressType)},
		},
	})

	createPayloadType := graphql.NewObject(graphql.ObjectConfig{
		Name: "ResourceCreatePayload",
		Fields: graphql.Fields{
			"ok":     &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"error":  &graphql.Field{Type: graphql.String},
			"entity": &graphql.Field{Type: resourceType},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"remoteNetworks": &graphql.Field{
				Type: graphql.NewNonNull(connectionType("RemoteNetwork", remoteNetworkType)),
				Args: graphql.FieldConfigArgument{
					"after": &graphql.ArgumentConfig{Type: graphql.String},
					"first": &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: s.resolveRemoteNetworks,
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"resourceCreate": &graphql.Field{
				Type: graphql.NewNonNull(createPayloadType),
				Args: graphql.FieldConfigArgument{
					"name":            &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"address":         &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"remoteNetworkId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: s.resolveResourceCreate,
			},
		},
	})

	schema, err := graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
	if err != nil {
		panic(fmt.Sprintf("failed to create graphql schema: %v", err))
	}
	s.schema = schema
}

// connectionType builds a relay-style {edges {node}} wrapper around nodeType.
func connectionType(name string, nodeType *graphql.Object) *graphql.Object {
	edgeType := graphql.NewObject(graphql.ObjectConfig{
		Name: name + "Edge",
		Fields: graphql.Fields{
			"node": &graphql.Field{Type: graphql.NewNonNull(nodeType)},
		},
	})
	return graphql.NewObject(graphql.ObjectConfig{
		Name: name + "Connection",
		Fields: graphql.Fields{
			"edges": &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(edgeType)))},
		},
	})
}

func (s *Server) resolveRemoteNetworks(p graphql.ResolveParams) (interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listCalls++

	limit := len(s.networks)
	if first, ok := p.Args["first"].(int); ok && first >= 0 && first < limit {
		limit = first
	}

	edges := make([]interface{}, 0, limit)
	for _, n := range s.networks[:limit] {
		edges = append(edges, map[string]interface{}{"node": networkToGraphQL(n)})
	}
	return map[string]interface{}{"edges": edges}, nil
}

func (s *Server) resolveResourceCreate(p graphql.ResolveParams) (interface{}, error) {
	name, _ := p.Args["name"].(string)
	address, _ := p.Args["address"].(string)
	networkID, _ := p.Args["remoteNetworkId"].(string)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.createSeq++

	if reason, rejected := s.rejections[s.createSeq]; rejected {
		return rejection(reason), nil
	}
	if !s.hasNetwork(networkID) {
		return rejection("remote network not found"), nil
	}

	res := Resource{
		ID:              uuid.NewString(),
		Name:            name,
		Address:         address,
		AddressType:     addressType(address),
		RemoteNetworkID: networkID,
	}
	s.resources = append(s.resources, res)

	return map[string]interface{}{
		"ok":    true,
		"error": nil,
		"entity": map[string]interface{}{
			"id":   res.ID,
			"name": res.Name,
			"address": map[string]interface{}{
				"type":  res.AddressType,
				"value": res.Address,
			},
		},
	}, nil
}

func (s *Server) hasNetwork(id string) bool {
	for _, n := range s.networks {
		if n.ID == id {
			return true
		}
	}
	return false
}

func rejection(reason string) map[string]interface{} {
	return map[string]interface{}{
		"ok":     false,
		"error":  reason,
		"entity": nil,
	}
}

func addressType(address string) string {
	if net.ParseIP(address) != nil {
		return "IP"
	}
	return "DNS"
}

func networkToGraphQL(n Network) map[string]interface{} {
	connectorEdges := make([]interface{}, 0, len(n.Connectors))
	for _, c := range n.Connectors {
		var publicIP interface{}
		if c.PublicIP != "" {
			publicIP = c.PublicIP
		}
		privateIPs := c.PrivateIPs
		if privateIPs == nil {
			privateIPs = []string{}
		}
		connectorEdges = append(connectorEdges, map[string]interface{}{
			"node": map[string]interface{}{
				"id":         c.ID,
				"name":       c.Name,
				"publicIP":   publicIP,
				"privateIPs": privateIPs,
				"remoteNetwork": map[string]interface{}{
					"id":   n.ID,
					"name": n.Name,
				},
			},
		})
	}
	return map[string]interface{}{
		"id":         n.ID,
		"name":       n.Name,
		"connectors": map[string]interface{}{"edges": connectorEdges},
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
