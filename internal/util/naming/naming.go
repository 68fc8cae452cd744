package naming

import (
	"fmt"
	"strings"
)

// Address kinds used in resource names.
const (
	KindPublic  = "Public"
	KindPrivate = "Private"
)

// Resource returns the resource name for an address of the given kind.
func Resource(kind, address string) string {
	return fmt.Sprintf("Resource-%s-%s", kind, strings.ReplaceAll(address, ".", "-"))
}

func PublicResource(address string) string {
	return Resource(KindPublic, address)
}

func PrivateResource(address string) string {
	return Resource(KindPrivate, address)
}
