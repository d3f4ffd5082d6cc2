package usecase

import (
	"fmt"
	"strings"

	"pr-review-relay/internal/review"
)

// buildPrompt is a pure transform of the fetched pull request.
func (uc *implUseCase) buildPrompt(req review.Request) string {
	var changes string
	if uc.cfg.DiffMode == DiffModeFiles {
		changes = formatFiles(req.Files)
	} else {
		changes = formatDiff(req.Diff)
	}
	changes, _ = truncate(changes, uc.cfg.MaxDiffChars)

	var b strings.Builder
	fmt.Fprintf(&b, "Repository: %s/%s\n", req.Owner, req.Repo)
	if req.PR != nil {
		fmt.Fprintf(&b, "Pull request #%d: %s\n", req.Number, req.PR.Title)
		if body := strings.TrimSpace(req.PR.Body); body != "" {
			fmt.Fprintf(&b, "\nDescription:\n%s\n", body)
		}
	} else {
		fmt.Fprintf(&b, "Pull request #%d\n", req.Number)
	}

	b.WriteString("\n--- BEGIN CHANGES ---\n")
	if strings.TrimSpace(changes) == "" {
		b.WriteString("(no changes)\n")
	} else {
		b.WriteString(changes)
	}
	b.WriteString("--- END CHANGES ---\n")

	return b.String()
}
