package agent

import (
	"fmt"
	"strings"

	"github.com/sitescout-io/sitescout/internal/browser"
)

// checkPromptTemplate is the fixed instruction given to the agent for every
// site, parameterized only by the URL.
const checkPromptTemplate = `Visit %s and check if the website is working properly.
Simply respond with a JSON:
{
    "status": "UP" if the page loads successfully, "DOWN" if it fails,
    "reason": "brief explanation of what you see"
}`

// CheckPrompt returns the check instruction for url.
func CheckPrompt(url string) string {
	return fmt.Sprintf(checkPromptTemplate, url)
}

// observationPrompt appends the browser's observations to the instruction so
// the LLM judges real page state rather than guessing from the URL.
func observationPrompt(prompt string, state *browser.PageState) string {
	var sb strings.Builder
	sb.WriteString(prompt)
	sb.WriteString("\n\nThe browser visited the page and observed:\n")
	fmt.Fprintf(&sb, "Final URL: %s\n", state.URL)
	if state.Status != 0 {
		fmt.Fprintf(&sb, "HTTP status: %d\n", state.Status)
	}
	if state.Title != "" {
		fmt.Fprintf(&sb, "Title: %s\n", state.Title)
	}
	if state.Text != "" {
		fmt.Fprintf(&sb, "Visible text:\n%s\n", state.Text)
	}
	sb.WriteString("\nRespond with only the JSON object.")
	return sb.String()
}
