// Package cli provides the command-line interface for sitescout.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/sitescout-io/sitescout/internal/catalog"
)

// styleSiteCategory renders category headings in the sites listing.
//
//nolint:gochecknoglobals // Intentional package-level styling constant
var styleSiteCategory = lipgloss.NewStyle().Bold(true)

// AddSitesCommand adds the sites command to the root command.
func AddSitesCommand(root *cobra.Command) {
	root.AddCommand(newSitesCmd())
}

// newSitesCmd creates the sites command, which lists the built-in catalog
// without checking anything.
func newSitesCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "sites",
		Short: "List the cataloged websites",
		Long: `Sites prints the built-in website catalog grouped by category, in the
order the check command processes it. No sites are visited.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if asJSON {
				return printSitesJSON(cmd.OutOrStdout())
			}
			return printSites(cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the catalog as JSON")

	return cmd
}

// printSites writes the catalog grouped by category in catalog order.
func printSites(w io.Writer) error {
	byCategory := make(map[string][]catalog.Site)
	for _, site := range catalog.Sites() {
		byCategory[site.Category] = append(byCategory[site.Category], site)
	}

	for _, cat := range catalog.Categories() {
		if _, err := fmt.Fprintf(w, "%s\n", styleSiteCategory.Render(cat)); err != nil {
			return err
		}
		for _, site := range byCategory[cat] {
			if _, err := fmt.Fprintf(w, "  %-16s %s\n", site.Name, site.URL); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "%d sites in %d categories\n", catalog.Len(), len(catalog.Categories()))
	return err
}

// printSitesJSON writes the catalog as a JSON array in catalog order.
func printSitesJSON(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(catalog.Sites())
}
