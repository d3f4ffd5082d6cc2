package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"pr-review-relay/internal/model"
	"pr-review-relay/internal/review"
	"pr-review-relay/pkg/github"
	"pr-review-relay/pkg/llmprovider"
	"pr-review-relay/pkg/log"
)

const singleFileDiff = `diff --git a/main.go b/main.go
index 1111111..2222222 100644
--- a/main.go
+++ b/main.go
@@ -1,3 +1,3 @@
 package main
-func old() {}
+func renamed() {}
`

// fakeGitHub records every call; unset methods panic through the nil embed.
type fakeGitHub struct {
	github.IGitHub
	token      string
	diff       string
	files      []*github.File
	fetchErr   error
	commentErr error
	updateErr  error

	reads    []string
	comments []string
	updates  []github.PullRequestUpdate
}

func (f *fakeGitHub) ForToken(token string) github.IGitHub {
	f.token = token
	return f
}

func (f *fakeGitHub) GetPullRequest(ctx context.Context, owner, repo string, number int) (*github.PullRequest, error) {
	f.reads = append(f.reads, "pr")
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return &github.PullRequest{Number: number, Title: "Refactor", Body: "Renames old"}, nil
}

func (f *fakeGitHub) GetDiff(ctx context.Context, owner, repo string, number int) (string, error) {
	f.reads = append(f.reads, "diff")
	return f.diff, nil
}

func (f *fakeGitHub) ListFiles(ctx context.Context, owner, repo string, number int) ([]*github.File, error) {
	f.reads = append(f.reads, "files")
	return f.files, nil
}

func (f *fakeGitHub) CreateComment(ctx context.Context, owner, repo string, number int, body string) (int64, error) {
	if f.commentErr != nil {
		return 0, f.commentErr
	}
	f.comments = append(f.comments, body)
	return int64(len(f.comments)), nil
}

func (f *fakeGitHub) UpdatePullRequest(ctx context.Context, owner, repo string, number int, update github.PullRequestUpdate) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates = append(f.updates, update)
	return nil
}

func (f *fakeGitHub) writes() int {
	return len(f.comments) + len(f.updates)
}

type fakeGenerator struct {
	text    string
	format  llmprovider.RawFormat
	err     error
	prompts []*llmprovider.Request
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	f.prompts = append(f.prompts, req)
	if f.err != nil {
		return nil, f.err
	}
	return &llmprovider.Response{Text: f.text, RawFormat: f.format, ProviderName: "openai"}, nil
}

func openedEvent() review.ReviewInput {
	return review.ReviewInput{
		Event: model.PullRequestEvent{Action: model.ActionOpened, Number: 42, Owner: "octo", Repo: "hello"},
		Credential: model.Credential{
			Owner: "octo", Repo: "hello", Token: "gho_owner", Source: model.CredentialFromRegistration,
		},
	}
}

func newTestUseCase(gh *fakeGitHub, gen *fakeGenerator, cfg Config) *implUseCase {
	return New(gh, gen, cfg, log.NewNop())
}

func TestReview_EndToEnd(t *testing.T) {
	gh := &fakeGitHub{diff: singleFileDiff}
	gen := &fakeGenerator{text: "Looks good.\nTitle: Minor cleanup", format: llmprovider.FormatChatCompletion}
	uc := newTestUseCase(gh, gen, Config{PatchTitle: true})

	out, err := uc.Review(context.Background(), openedEvent())
	if err != nil {
		t.Fatalf("Review() error: %v", err)
	}
	if out.State != review.StateCompleted || !out.TitlePatched || !out.Advisory {
		t.Errorf("Review() = %+v", out)
	}
	if gh.token != "gho_owner" {
		t.Errorf("GitHub called with token %q, want registration token", gh.token)
	}

	if len(gh.comments) != 1 {
		t.Fatalf("comments = %d, want 1", len(gh.comments))
	}
	comment := gh.comments[0]
	if !strings.HasPrefix(comment, "Looks good.") {
		t.Errorf("comment = %q", comment)
	}
	if strings.Count(comment, AdvisoryNote) != 1 {
		t.Errorf("advisory appended %d times", strings.Count(comment, AdvisoryNote))
	}
	if strings.Contains(comment, "Title:") {
		t.Errorf("title line left in comment: %q", comment)
	}

	if len(gh.updates) != 1 || gh.updates[0].Title == nil || *gh.updates[0].Title != "Minor cleanup" {
		t.Fatalf("updates = %+v", gh.updates)
	}
	if gh.updates[0].Body != nil {
		t.Error("description patched without patch_description")
	}

	prompt := gen.prompts[0].Prompt
	if !strings.Contains(prompt, "File: main.go") || !strings.Contains(prompt, "+ func renamed() {}") || !strings.Contains(prompt, "- func old() {}") {
		t.Errorf("prompt does not carry the formatted diff:\n%s", prompt)
	}
}

func TestReview_IgnoredActions(t *testing.T) {
	for _, action := range []string{"closed", "edited", "labeled", "reopened", ""} {
		t.Run(fmt.Sprintf("action %q", action), func(t *testing.T) {
			gh := &fakeGitHub{diff: singleFileDiff}
			gen := &fakeGenerator{text: "x"}
			uc := newTestUseCase(gh, gen, Config{PatchTitle: true})

			in := openedEvent()
			in.Event.Action = action
			out, err := uc.Review(context.Background(), in)
			if err != nil || out.State != review.StateIgnored {
				t.Fatalf("Review() = %+v, %v", out, err)
			}
			if len(gh.reads) != 0 || gh.writes() != 0 || len(gen.prompts) != 0 {
				t.Errorf("ignored action touched collaborators: reads=%v writes=%d prompts=%d", gh.reads, gh.writes(), len(gen.prompts))
			}
		})
	}
}

func TestReview_SynchronizeIsReviewed(t *testing.T) {
	gh := &fakeGitHub{diff: singleFileDiff}
	uc := newTestUseCase(gh, &fakeGenerator{text: "ok"}, Config{})

	in := openedEvent()
	in.Event.Action = model.ActionSynchronize
	if out, err := uc.Review(context.Background(), in); err != nil || out.State != review.StateCompleted {
		t.Fatalf("Review() = %+v, %v", out, err)
	}
	if len(gh.comments) != 1 {
		t.Error("synchronize did not publish a comment")
	}
}

func TestReview_NoTitleKeepsPullRequestTitle(t *testing.T) {
	gh := &fakeGitHub{diff: singleFileDiff}
	uc := newTestUseCase(gh, &fakeGenerator{text: "Looks good."}, Config{PatchTitle: true})

	out, err := uc.Review(context.Background(), openedEvent())
	if err != nil {
		t.Fatalf("Review() error: %v", err)
	}
	if out.Title != DefaultFallbackTitle || out.TitlePatched {
		t.Errorf("Review() = %+v", out)
	}
	if len(gh.updates) != 0 {
		t.Errorf("PR patched with fallback title: %+v", gh.updates)
	}
}

func TestReview_EmptyOutputPublishesFallback(t *testing.T) {
	gh := &fakeGitHub{diff: singleFileDiff}
	gen := &fakeGenerator{err: fmt.Errorf("%w: %w", llmprovider.ErrAllProvidersFailed, llmprovider.ErrEmptyOutput)}
	uc := newTestUseCase(gh, gen, Config{PatchTitle: true})

	out, err := uc.Review(context.Background(), openedEvent())
	if err != nil {
		t.Fatalf("Review() error: %v", err)
	}
	if out.State != review.StateCompleted {
		t.Errorf("state = %s", out.State)
	}
	if len(gh.comments) != 1 || gh.comments[0] != FallbackMessage {
		t.Errorf("comments = %q", gh.comments)
	}
}

func TestReview_Failures(t *testing.T) {
	tests := []struct {
		name       string
		gh         *fakeGitHub
		gen        *fakeGenerator
		mutate     func(*review.ReviewInput)
		want       error
		wantWrites int
	}{
		{
			name: "diff fetch fails",
			gh:   &fakeGitHub{fetchErr: &github.APIError{Op: "GetPullRequest", StatusCode: 404}},
			gen:  &fakeGenerator{text: "x"},
			want: review.ErrFetchDiff,
		},
		{
			name: "backend exhausted",
			gh:   &fakeGitHub{diff: singleFileDiff},
			gen:  &fakeGenerator{err: fmt.Errorf("%w: %w", llmprovider.ErrAllProvidersFailed, &llmprovider.StatusError{Provider: "hf", StatusCode: 503})},
			want: review.ErrGenerate,
		},
		{
			name:   "missing credential",
			gh:     &fakeGitHub{diff: singleFileDiff},
			gen:    &fakeGenerator{text: "x"},
			mutate: func(in *review.ReviewInput) { in.Credential.Token = "" },
			want:   review.ErrMissingCredential,
		},
		{
			name:   "missing number",
			gh:     &fakeGitHub{diff: singleFileDiff},
			gen:    &fakeGenerator{text: "x"},
			mutate: func(in *review.ReviewInput) { in.Event.Number = 0 },
			want:   review.ErrInvalidEvent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(tt.gh, tt.gen, Config{PatchTitle: true})
			in := openedEvent()
			if tt.mutate != nil {
				tt.mutate(&in)
			}
			out, err := uc.Review(context.Background(), in)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Review() error = %v, want %v", err, tt.want)
			}
			if out.State != review.StateFailed {
				t.Errorf("state = %s, want failed", out.State)
			}
			if tt.gh.writes() != 0 {
				t.Errorf("writes = %d, want none", tt.gh.writes())
			}
		})
	}
}

func TestReview_PartialPublishIsNotRolledBack(t *testing.T) {
	gh := &fakeGitHub{diff: singleFileDiff, updateErr: &github.APIError{Op: "UpdatePullRequest", StatusCode: 403}}
	uc := newTestUseCase(gh, &fakeGenerator{text: "Looks good.\nTitle: Minor cleanup"}, Config{PatchTitle: true})

	out, err := uc.Review(context.Background(), openedEvent())
	if !errors.Is(err, review.ErrPublishFailed) {
		t.Fatalf("Review() error = %v, want ErrPublishFailed", err)
	}
	if out.State != review.StateCompleted || out.CommentID != 1 || out.TitlePatched {
		t.Errorf("Review() = %+v", out)
	}
	if len(gh.comments) != 1 {
		t.Error("comment must stay posted after the patch fails")
	}
}

func TestReview_CommentFailureStillPatches(t *testing.T) {
	gh := &fakeGitHub{diff: singleFileDiff, commentErr: &github.APIError{Op: "CreateComment", StatusCode: 500}}
	uc := newTestUseCase(gh, &fakeGenerator{text: "Looks good.\nTitle: Minor cleanup"}, Config{PatchTitle: true})

	out, err := uc.Review(context.Background(), openedEvent())
	if !errors.Is(err, review.ErrPublishFailed) {
		t.Fatalf("Review() error = %v", err)
	}
	if out.State != review.StateFailed || !out.TitlePatched {
		t.Errorf("Review() = %+v", out)
	}
}

func TestReview_FilesMode(t *testing.T) {
	gh := &fakeGitHub{files: []*github.File{
		{Filename: "a.go", Status: "modified", Patch: "@@ -1 +1 @@\n-a\n+A"},
		{Filename: "logo.png", Status: "added"},
	}}
	gen := &fakeGenerator{text: "fine"}
	uc := newTestUseCase(gh, gen, Config{DiffMode: DiffModeFiles})

	if _, err := uc.Review(context.Background(), openedEvent()); err != nil {
		t.Fatalf("Review() error: %v", err)
	}
	if gh.reads[1] != "files" {
		t.Errorf("reads = %v, want files listing", gh.reads)
	}
	prompt := gen.prompts[0].Prompt
	if !strings.Contains(prompt, "File: a.go (modified)") || !strings.Contains(prompt, "File: logo.png (added)") {
		t.Errorf("prompt:\n%s", prompt)
	}
}

func TestReview_PatchDescription(t *testing.T) {
	gh := &fakeGitHub{diff: singleFileDiff}
	uc := newTestUseCase(gh, &fakeGenerator{text: "Looks good.\nTitle: Minor cleanup"}, Config{PatchTitle: true, PatchDescription: true})

	if _, err := uc.Review(context.Background(), openedEvent()); err != nil {
		t.Fatalf("Review() error: %v", err)
	}
	if len(gh.updates) != 1 || gh.updates[0].Body == nil || !strings.HasPrefix(*gh.updates[0].Body, "Looks good.") {
		t.Errorf("updates = %+v", gh.updates)
	}
}
