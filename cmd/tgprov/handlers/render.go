package handlers

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/imamik/tgprov/internal/platform/twingate"
	"github.com/imamik/tgprov/internal/provisioning"
)

var (
	colorGreen = lipgloss.Color("#22c55e")
	colorRed   = lipgloss.Color("#ef4444")
	colorBlue  = lipgloss.Color("#3b82f6")
	colorDim   = lipgloss.Color("#6b7280")
	colorWhite = lipgloss.Color("#f9fafb")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	greenStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	redStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	kindStyle = lipgloss.NewStyle().
			Width(8)

	addressStyle = lipgloss.NewStyle().
			Width(16)
)

func writeHeader(b *strings.Builder, title string) {
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("  " + title))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  " + strings.Repeat("═", 30)))
	b.WriteString("\n\n")
}

// renderApplySummary produces a lipgloss-styled summary of an apply run.
func renderApplySummary(target string, state *provisioning.State, failed bool) string {
	var b strings.Builder
	writeHeader(&b, fmt.Sprintf("tgprov apply: %s", target))

	for _, created := range state.Created {
		b.WriteString("    ")
		b.WriteString(greenStyle.Render("✓ "))
		b.WriteString(kindStyle.Render(created.Kind))
		b.WriteString(addressStyle.Render(created.Resource.Address.Value))
		b.WriteString(created.Resource.Name)
		b.WriteString(dimStyle.Render("  " + created.Resource.ID))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if failed {
		b.WriteString(redStyle.Render(fmt.Sprintf("  Stopped after %d of %d resource(s)", len(state.Created), len(state.Plan))))
	} else {
		b.WriteString(greenStyle.Render(fmt.Sprintf("  Created %d resource(s)", len(state.Created))))
	}
	b.WriteString("\n")
	return b.String()
}

// renderPlan produces a lipgloss-styled creation plan.
func renderPlan(network string, plan []provisioning.PlannedResource) string {
	var b strings.Builder
	writeHeader(&b, fmt.Sprintf("tgprov plan: %s", network))

	if len(plan) == 0 {
		b.WriteString(dimStyle.Render("  No connector addresses, nothing to create."))
		b.WriteString("\n")
		return b.String()
	}

	connector := ""
	for _, p := range plan {
		if p.ConnectorName != connector {
			connector = p.ConnectorName
			b.WriteString(sectionStyle.Render("  " + connector))
			b.WriteString("\n")
		}
		b.WriteString("    + ")
		b.WriteString(kindStyle.Render(p.Kind))
		b.WriteString(addressStyle.Render(p.Address))
		b.WriteString(p.Name)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %d resource(s) would be created", len(plan))))
	b.WriteString("\n")
	return b.String()
}

// renderNetworks produces a lipgloss-styled network listing.
func renderNetworks(networks []twingate.RemoteNetwork) string {
	var b strings.Builder
	writeHeader(&b, "tgprov networks")

	if len(networks) == 0 {
		b.WriteString(dimStyle.Render("  No remote networks found."))
		b.WriteString("\n")
		return b.String()
	}

	for _, n := range networks {
		b.WriteString(sectionStyle.Render("  " + n.Name))
		b.WriteString(dimStyle.Render("  " + n.ID))
		b.WriteString("\n")
		for _, c := range n.Connectors {
			b.WriteString(fmt.Sprintf("    %s\n", c.Name))
			b.WriteString(dimStyle.Render(fmt.Sprintf("      public:  %s", publicOrNone(c))))
			b.WriteString("\n")
			b.WriteString(dimStyle.Render(fmt.Sprintf("      private: %s", privateList(c))))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}
