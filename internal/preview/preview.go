/*
Package preview fetches a remote page and extracts a link preview.

One outbound GET per request, no retry, no cache. Extraction prefers
OpenGraph metadata and falls back to document tags; body text is reduced
to a whitespace-collapsed excerpt.
*/
package preview

import "github.com/featherworks/aviary/internal/platform/constants"

// Result is the extracted link preview.
type Result struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Content     string `json:"content"`
}

// ContentBudget is the maximum excerpt length in characters, before the
// trailing ellipsis.
const ContentBudget = constants.PreviewContentBudget
