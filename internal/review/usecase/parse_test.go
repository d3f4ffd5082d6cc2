package usecase

import (
	"strings"
	"testing"

	"pr-review-relay/pkg/llmprovider"
	"pr-review-relay/pkg/log"
)

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantTitle string
		wantBody  string
		wantOK    bool
	}{
		{name: "plain", text: "Null deref fixed.\nTitle: Fix null check", wantTitle: "Fix null check", wantBody: "Null deref fixed.", wantOK: true},
		{name: "first line", text: "Title: Fix null check\nBody here", wantTitle: "Fix null check", wantBody: "Body here", wantOK: true},
		{name: "case insensitive", text: "TITLE: Upper", wantTitle: "Upper", wantOK: true},
		{name: "bold", text: "Review\n**Title:** Bold one", wantTitle: "Bold one", wantBody: "Review", wantOK: true},
		{name: "heading", text: "## Title: Heading one\nok", wantTitle: "Heading one", wantBody: "ok", wantOK: true},
		{name: "quoted", text: `Title: "Quoted"`, wantTitle: "Quoted", wantOK: true},
		{name: "first match wins", text: "Title: One\nTitle: Two", wantTitle: "One", wantBody: "Title: Two", wantOK: true},
		{name: "no title", text: "Looks good.", wantBody: "Looks good."},
		{name: "subtitle is not a title", text: "Subtitle: nope", wantBody: "Subtitle: nope"},
		{name: "empty title", text: "Title:   \nbody", wantBody: "Title:   \nbody"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, body, ok := extractTitle(tt.text)
			if ok != tt.wantOK || title != tt.wantTitle {
				t.Errorf("extractTitle() = %q, %v; want %q, %v", title, ok, tt.wantTitle, tt.wantOK)
			}
			if strings.TrimSpace(body) != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestPostProcess_Richness(t *testing.T) {
	uc := New(nil, nil, Config{}, log.NewNop())
	long := strings.Repeat("This change looks correct and well tested.\n", 6)

	tests := []struct {
		name     string
		text     string
		format   llmprovider.RawFormat
		tooShort bool
	}{
		{name: "short chat", text: "Looks good.", format: llmprovider.FormatChatCompletion, tooShort: true},
		{name: "long chat", text: long, format: llmprovider.FormatChatCompletion},
		{name: "two lines of generated text over 80 chars", text: strings.Repeat("a", 50) + "\n" + strings.Repeat("b", 50), format: llmprovider.FormatGeneratedText},
		{name: "same text is short for chat", text: strings.Repeat("a", 50) + "\n" + strings.Repeat("b", 50), format: llmprovider.FormatChatCompletion, tooShort: true},
		{name: "one long line", text: strings.Repeat("a", 300), format: llmprovider.FormatSummaryText, tooShort: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := uc.postProcess(tt.text, tt.format)
			if gen.TooShort != tt.tooShort {
				t.Errorf("TooShort = %v, want %v", gen.TooShort, tt.tooShort)
			}
			if got := strings.Count(gen.Body, AdvisoryNote); (got == 1) != tt.tooShort || got > 1 {
				t.Errorf("advisory count = %d", got)
			}
		})
	}
}

func TestPostProcess_ThresholdOverride(t *testing.T) {
	uc := New(nil, nil, Config{MinBodyChars: 5, MinBodyLines: 1}, log.NewNop())
	if gen := uc.postProcess("Looks good.", llmprovider.FormatChatCompletion); gen.TooShort {
		t.Error("override thresholds ignored")
	}
}

func TestAppendAdvisory_Once(t *testing.T) {
	once := appendAdvisory("Looks good.")
	twice := appendAdvisory(once)
	if once != twice || strings.Count(twice, AdvisoryNote) != 1 {
		t.Errorf("advisory duplicated: %q", twice)
	}
}

func TestPostProcess_TitleOnlyFallsBack(t *testing.T) {
	uc := New(nil, nil, Config{}, log.NewNop())
	gen := uc.postProcess("Title: Only a title", llmprovider.FormatChatCompletion)
	if !gen.Fallback || gen.Body != FallbackMessage || gen.Title != "Only a title" || !gen.TitleExtracted {
		t.Errorf("postProcess() = %+v", gen)
	}
}
