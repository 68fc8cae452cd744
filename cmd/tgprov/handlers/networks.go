package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/imamik/tgprov/internal/config"
	"github.com/imamik/tgprov/internal/platform/twingate"
)

// NetworksOptions holds the networks command's flags.
type NetworksOptions struct {
	ConfigPath string
	JSON       bool
}

type networkJSON struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Connectors []connectorJSON `json:"connectors"`
}

type connectorJSON struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	PublicIP   *string  `json:"public_ip"`
	PrivateIPs []string `json:"private_ips"`
}

// Networks lists the first page of remote networks.
func Networks(ctx context.Context, opts NetworksOptions) error {
	cfg, err := loadConfigFile(opts.ConfigPath, config.WithoutTarget())
	if err != nil {
		return err
	}

	client := newAPIClient(cfg, nil)
	networks, err := client.ListRemoteNetworks(ctx)
	if err != nil {
		return fmt.Errorf("failed to list networks: %w", err)
	}

	if opts.JSON {
		return printNetworksJSON(networks)
	}
	if isTTY() {
		fmt.Print(renderNetworks(networks))
		return nil
	}

	if len(networks) == 0 {
		fmt.Println("No remote networks found.")
		return nil
	}
	for _, n := range networks {
		fmt.Printf("%s (%s)\n", n.Name, n.ID)
		for _, c := range n.Connectors {
			fmt.Printf("  %s public=%s private=%s\n", c.Name, publicOrNone(c), privateList(c))
		}
	}
	return nil
}

func printNetworksJSON(networks []twingate.RemoteNetwork) error {
	out := make([]networkJSON, 0, len(networks))
	for _, n := range networks {
		nj := networkJSON{ID: n.ID, Name: n.Name, Connectors: make([]connectorJSON, 0, len(n.Connectors))}
		for _, c := range n.Connectors {
			cj := connectorJSON{ID: c.ID, Name: c.Name, PrivateIPs: c.PrivateIPs}
			if cj.PrivateIPs == nil {
				cj.PrivateIPs = []string{}
			}
			if c.HasPublicIP() {
				ip := c.PublicIP
				cj.PublicIP = &ip
			}
			nj.Connectors = append(nj.Connectors, cj)
		}
		out = append(out, nj)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func publicOrNone(c twingate.Connector) string {
	if c.HasPublicIP() {
		return c.PublicIP
	}
	return "none"
}

func privateList(c twingate.Connector) string {
	if len(c.PrivateIPs) == 0 {
		return "none"
	}
	return strings.Join(c.PrivateIPs, ",")
}
