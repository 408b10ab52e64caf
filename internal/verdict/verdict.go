// Package verdict turns the agent's raw textual output into a structured
// UP/DOWN verdict.
//
// LLM output is untrusted: it may be clean JSON, JSON wrapped in Markdown
// code fences or prose, or free text with no structure at all. Parse never
// fails past this boundary - anything that cannot be decoded is itself a
// terminal DOWN verdict for the site in this run.
package verdict

import (
	"encoding/json"
	"strings"

	"github.com/sitescout-io/sitescout/internal/constants"
)

// NoReason is the reason recorded when the agent reports DOWN without one.
const NoReason = "No reason provided"

// Verdict is the parsed judgment for one site.
type Verdict struct {
	// Status is UP or DOWN.
	Status constants.SiteStatus

	// Reason explains a DOWN verdict. Empty for UP.
	Reason string
}

// response matches the JSON object the agent is instructed to produce.
type response struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

// Parse decodes the agent's raw output into a Verdict.
//
// Rules:
//   - a JSON object with status "UP" yields {UP, ""}
//   - a JSON object with any other status yields {DOWN, reason}, falling
//     back to NoReason when the reason field is absent or empty
//   - output that cannot be decoded yields {DOWN, "Invalid response format: <raw>"}
func Parse(raw string) Verdict {
	var resp response
	if err := json.Unmarshal([]byte(extractObject(raw)), &resp); err != nil {
		return Verdict{
			Status: constants.StatusDown,
			Reason: "Invalid response format: " + raw,
		}
	}

	if resp.Status == string(constants.StatusUp) {
		return Verdict{Status: constants.StatusUp}
	}

	reason := resp.Reason
	if reason == "" {
		reason = NoReason
	}
	return Verdict{Status: constants.StatusDown, Reason: reason}
}

// extractObject returns the first balanced top-level JSON object in raw,
// or raw unchanged if none is found. Models often wrap their answer in
// Markdown code fences or surround it with prose; the verdict object is
// still in there.
//
// Brace counting ignores braces inside JSON strings so reasons like
// "404 {not found}" don't truncate the object.
func extractObject(raw string) string {
	start := strings.IndexByte(raw, '{')
	if start < 0 {
		return raw
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		c := raw[i]
		switch {
		case escaped:
			escaped = false
		case inString && c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return raw[start : i+1]
			}
		}
	}
	return raw
}
