package usecase

import "pr-review-relay/pkg/llmprovider"

const (
	// FallbackMessage is published when the backend returns nothing usable.
	FallbackMessage = "Unable to generate a detailed AI review at this time. Please review the changes manually."

	// AdvisoryNote is appended once to reviews that fail the richness check.
	AdvisoryNote = "> **Note:** this automated review is brief and may be incomplete. Please review the changes manually as well."

	DefaultFallbackTitle = "Automated review"
	DefaultMaxDiffChars  = 12000

	truncationMarker = "\n... (diff truncated)"
)

const defaultSystemPrompt = `You are an experienced code reviewer. Review the pull request changes below.

Rules:
1. Only comment on the changes shown. Lines starting with "+ " were added, "- " were removed, and lines indented by two spaces are unchanged context.
2. Focus on bugs, security issues, performance problems and correctness.
3. Be concise and actionable. Use markdown.
4. Finish with one line of the form "Title: <suggested pull request title>".`

// richness is the minimum size a review must have to be published without
// the advisory note.
type richness struct {
	minChars int
	minLines int
}

// Chat models produce longer answers than plain text-generation endpoints.
var defaultRichness = map[llmprovider.RawFormat]richness{
	llmprovider.FormatChatCompletion: {minChars: 200, minLines: 3},
	llmprovider.FormatGeneratedText:  {minChars: 80, minLines: 2},
	llmprovider.FormatSummaryText:    {minChars: 80, minLines: 2},
}
