package usecase

import (
	"strings"
	"unicode/utf8"

	"pr-review-relay/pkg/github"
)

// formatDiff rewrites a unified diff into per-file blocks with "File:"
// headers and explicit line markers.
func formatDiff(diff string) string {
	var b strings.Builder
	for _, section := range splitSections(diff) {
		path := pathFromSection(section)
		if path == "" {
			continue
		}
		writeFileHeader(&b, path, "")
		writeHunks(&b, hunksOf(section))
	}
	return b.String()
}

// formatFiles renders the changed files listing the same way as formatDiff.
// Binary or oversized files come without a patch and are listed by name.
func formatFiles(files []*github.File) string {
	var b strings.Builder
	for _, f := range files {
		if f == nil || f.Filename == "" {
			continue
		}
		writeFileHeader(&b, f.Filename, f.Status)
		if f.Patch == "" {
			b.WriteString("  (no textual changes)\n")
			continue
		}
		writeHunks(&b, f.Patch)
	}
	return b.String()
}

func writeFileHeader(b *strings.Builder, path, status string) {
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	b.WriteString("File: ")
	b.WriteString(path)
	if status != "" {
		b.WriteString(" (")
		b.WriteString(status)
		b.WriteString(")")
	}
	b.WriteString("\n")
}

func writeHunks(b *strings.Builder, patch string) {
	for _, line := range strings.Split(strings.TrimRight(patch, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "@@"):
			b.WriteString(line)
		case strings.HasPrefix(line, "+"):
			b.WriteString("+ ")
			b.WriteString(line[1:])
		case strings.HasPrefix(line, "-"):
			b.WriteString("- ")
			b.WriteString(line[1:])
		case strings.HasPrefix(line, `\`):
			continue // "\ No newline at end of file"
		default:
			b.WriteString("  ")
			b.WriteString(strings.TrimPrefix(line, " "))
		}
		b.WriteString("\n")
	}
}

// splitSections cuts a unified diff at each "diff --git" line.
func splitSections(diff string) []string {
	if strings.TrimSpace(diff) == "" {
		return nil
	}
	var sections []string
	var current strings.Builder
	for _, line := range strings.Split(diff, "\n") {
		if strings.HasPrefix(line, "diff --git") && current.Len() > 0 {
			sections = append(sections, current.String())
			current.Reset()
		}
		current.WriteString(line)
		current.WriteString("\n")
	}
	if strings.TrimSpace(current.String()) != "" {
		sections = append(sections, current.String())
	}
	return sections
}

// pathFromSection prefers the new path; deleted files only have the old one.
func pathFromSection(section string) string {
	var oldPath string
	for _, line := range strings.Split(section, "\n") {
		switch {
		case strings.HasPrefix(line, "+++ b/"):
			return strings.TrimPrefix(line, "+++ b/")
		case strings.HasPrefix(line, "--- a/"):
			oldPath = strings.TrimPrefix(line, "--- a/")
		case strings.HasPrefix(line, "diff --git a/") && oldPath == "":
			if i := strings.Index(line, " b/"); i > 0 {
				oldPath = line[i+3:]
			}
		}
	}
	return oldPath
}

// hunksOf returns the section from its first hunk header on.
func hunksOf(section string) string {
	i := strings.Index(section, "\n@@")
	if i < 0 {
		return ""
	}
	return section[i+1:]
}

// truncate cuts s to at most max bytes on a line boundary when possible.
func truncate(s string, max int) (string, bool) {
	if max <= 0 || len(s) <= max {
		return s, false
	}
	cut := s[:max]
	for !utf8.ValidString(cut) && len(cut) > 0 {
		cut = cut[:len(cut)-1]
	}
	if i := strings.LastIndexByte(cut, '\n'); i > max/2 {
		cut = cut[:i]
	}
	return cut + truncationMarker, true
}
