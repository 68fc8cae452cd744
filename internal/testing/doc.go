// Package testing provides test utilities and fixtures for unit and integration tests.
//
// This package centralizes common testing patterns to avoid duplication across test files:
//   - NewNetwork / NewConnector: compact builders for remote network snapshots
//   - BranchA: the single-connector network used by end-to-end scenarios
//   - TestContext: a context bounded by a test timeout
//
// The fake GraphQL service lives in the fakeapi subpackage.
package testing
