package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/sitescout-io/sitescout/internal/catalog"
	"github.com/sitescout-io/sitescout/internal/constants"
)

// Summary prints the human-readable run summary: one line per site with a
// status glyph, grouped by category, plus an indented error line for DOWN
// sites. siteOrder fixes both the section order and the line order within a
// section (catalog order in production). Recorded outcomes absent from
// siteOrder are appended alphabetically so nothing recorded is ever
// silently dropped.
func (r *Report) Summary(w io.Writer, siteOrder []catalog.Site) error {
	if _, err := fmt.Fprintln(w, "\n=== Summary ==="); err != nil {
		return err
	}

	for _, cat := range r.orderedCategories(siteOrder) {
		sites := r.Categories[cat]
		if len(sites) == 0 {
			continue
		}

		if _, err := fmt.Fprintf(w, "\n%s:\n", styleCategory.Render(cat)); err != nil {
			return err
		}

		for _, name := range orderedNames(sites, cat, siteOrder) {
			outcome := sites[name]
			line := fmt.Sprintf("%s %s: %s", outcome.Status.Glyph(), name, outcome.Status)
			style := styleUp
			if outcome.Status != constants.StatusUp {
				style = styleDown
			}
			if _, err := fmt.Fprintln(w, style.Render(line)); err != nil {
				return err
			}
			if outcome.Error != nil {
				if _, err := fmt.Fprintln(w, styleError.Render("   Error: "+*outcome.Error)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// orderedCategories returns the recorded categories in siteOrder
// first-appearance order, then any stragglers alphabetically.
func (r *Report) orderedCategories(siteOrder []catalog.Site) []string {
	ordered := make([]string, 0, len(r.Categories))
	seen := make(map[string]bool, len(r.Categories))

	for _, site := range siteOrder {
		if seen[site.Category] {
			continue
		}
		if _, ok := r.Categories[site.Category]; ok {
			ordered = append(ordered, site.Category)
			seen[site.Category] = true
		}
	}

	var rest []string
	for cat := range r.Categories {
		if !seen[cat] {
			rest = append(rest, cat)
		}
	}
	sort.Strings(rest)

	return append(ordered, rest...)
}

// orderedNames returns cat's recorded site names in siteOrder order, then
// any stragglers alphabetically.
func orderedNames(recorded map[string]Outcome, cat string, siteOrder []catalog.Site) []string {
	ordered := make([]string, 0, len(recorded))
	seen := make(map[string]bool, len(recorded))

	for _, site := range siteOrder {
		if site.Category != cat || seen[site.Name] {
			continue
		}
		if _, ok := recorded[site.Name]; ok {
			ordered = append(ordered, site.Name)
			seen[site.Name] = true
		}
	}

	var rest []string
	for name := range recorded {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)

	return append(ordered, rest...)
}
