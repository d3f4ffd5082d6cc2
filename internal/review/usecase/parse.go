package usecase

import (
	"regexp"
	"strings"

	"pr-review-relay/internal/review"
	"pr-review-relay/pkg/llmprovider"
)

// titleLine matches "Title: x" with optional heading or bold markers,
// e.g. "## Title: x" or "**Title:** x".
var titleLine = regexp.MustCompile(`(?i)^\s*(?:#+\s*)?(?:\*\*|__)?title\s*(?:\*\*|__)?\s*:\s*(?:\*\*|__)?\s*(.*?)\s*(?:\*\*|__)?\s*$`)

// postProcess extracts the title and applies the richness check.
func (uc *implUseCase) postProcess(text string, format llmprovider.RawFormat) review.GeneratedReview {
	gen := review.GeneratedReview{RawFormat: format}

	title, body, ok := extractTitle(text)
	if ok {
		gen.Title = title
		gen.TitleExtracted = true
	} else {
		gen.Title = uc.cfg.FallbackTitle
	}

	body = strings.TrimSpace(body)
	if body == "" {
		return uc.fallbackReview(gen)
	}

	gen.Body = body
	if uc.tooShort(body, format) {
		gen.TooShort = true
		gen.Body = appendAdvisory(body)
	}
	return gen
}

// fallbackReview is used when the backend output is empty or unusable.
func (uc *implUseCase) fallbackReview(gen review.GeneratedReview) review.GeneratedReview {
	gen.Body = FallbackMessage
	gen.Fallback = true
	if !gen.TitleExtracted {
		gen.Title = uc.cfg.FallbackTitle
	}
	return gen
}

// extractTitle returns the first "Title:" line and the text without it.
func extractTitle(text string) (string, string, bool) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		m := titleLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		title := strings.Trim(strings.TrimSpace(m[1]), `"'`+"`")
		if title == "" {
			continue
		}
		rest := append(lines[:i:i], lines[i+1:]...)
		return title, strings.Join(rest, "\n"), true
	}
	return "", text, false
}

func (uc *implUseCase) tooShort(body string, format llmprovider.RawFormat) bool {
	r, ok := defaultRichness[format]
	if !ok {
		r = defaultRichness[llmprovider.FormatGeneratedText]
	}
	if uc.cfg.MinBodyChars > 0 {
		r.minChars = uc.cfg.MinBodyChars
	}
	if uc.cfg.MinBodyLines > 0 {
		r.minLines = uc.cfg.MinBodyLines
	}
	return len([]rune(body)) < r.minChars || countLines(body) < r.minLines
}

// countLines counts non-blank lines.
func countLines(s string) int {
	n := 0
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}

func appendAdvisory(body string) string {
	if strings.Contains(body, AdvisoryNote) {
		return body
	}
	return body + "\n\n" + AdvisoryNote
}
