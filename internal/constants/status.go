package constants

// SiteStatus represents the resolved verdict for one site in one run.
// Status values use the uppercase forms required by the report artifact.
type SiteStatus string

// Site status constants define the only two verdicts a check can produce.
// There is no intermediate state: a check that cannot complete for any
// reason resolves to StatusDown with an explanatory error.
const (
	// StatusUp indicates the agent judged the site to be working.
	StatusUp SiteStatus = "UP"

	// StatusDown indicates the agent judged the site broken, the agent's
	// output could not be parsed, or the check itself failed.
	StatusDown SiteStatus = "DOWN"
)

// String returns the string representation of the SiteStatus.
// This implements fmt.Stringer for convenient logging and debugging.
func (s SiteStatus) String() string {
	return string(s)
}

// Glyph returns the summary glyph for the status.
func (s SiteStatus) Glyph() string {
	if s == StatusUp {
		return "✅"
	}
	return "❌"
}
