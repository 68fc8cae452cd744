package naming

import "testing"

func TestNamingFunctions(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{
			name:     "Resource public",
			got:      Resource("Public", "10.0.0.5"),
			expected: "Resource-Public-10-0-0-5",
		},
		{
			name:     "Resource private",
			got:      Resource("Private", "192.168.1.1"),
			expected: "Resource-Private-192-168-1-1",
		},
		{
			name:     "PublicResource",
			got:      PublicResource("203.0.113.5"),
			expected: "Resource-Public-203-0-113-5",
		},
		{
			name:     "PrivateResource",
			got:      PrivateResource("10.1.1.1"),
			expected: "Resource-Private-10-1-1-1",
		},
		{
			name:     "no dots",
			got:      PrivateResource("db"),
			expected: "Resource-Private-db",
		},
		{
			name:     "hostname",
			got:      PublicResource("vpn.example.com"),
			expected: "Resource-Public-vpn-example-com",
		},
		{
			name:     "ipv6 untouched",
			got:      PrivateResource("fd00::1"),
			expected: "Resource-Private-fd00::1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, tt.got)
			}
		})
	}
}

func TestResource_Deterministic(t *testing.T) {
	first := Resource(KindPublic, "1.2.3.4")
	second := Resource(KindPublic, "1.2.3.4")
	if first != second {
		t.Errorf("Expected identical names, got %q and %q", first, second)
	}
}
