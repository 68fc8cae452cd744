// Package naming provides consistent naming functions for access-control resources.
//
// Resource names follow the pattern Resource-{kind}-{address}, where kind is
// Public or Private and every dot in the address is replaced by a dash. The
// derivation is deterministic so re-runs produce identical names.
package naming
