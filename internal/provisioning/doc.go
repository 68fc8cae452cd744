// Package provisioning creates one access-control resource per connector address
// of a remote network.
//
// # Flow
//
// A run is a pipeline of phases executed in order by [Pipeline.Run]:
//
//   - network-lookup: fetch the first page of remote networks and pick the
//     first one named like the configured target. A missing network ends the
//     run cleanly (State.NotFound, State.Done) without creating anything.
//   - plan: walk the connectors in service order; for each connector emit the
//     public address first (if any), then every private address in order.
//   - resources: create the planned resources one at a time. The first
//     failure stops the run; everything created before it stays in State.Created.
//
// A dry run ([Plan]) stops after the plan phase.
//
// # Core Types
//
// Context carries configuration, state, API client, observer and metrics.
// Phase defines a provisioning step with Name() and Provision() methods.
// State accumulates the located network, the plan and the created resources.
package provisioning
