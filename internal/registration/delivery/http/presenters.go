package http

import (
	"strings"

	"pr-review-relay/internal/registration"
	pkgErrors "pr-review-relay/pkg/errors"
)

var errMissingRepository = pkgErrors.NewHTTPError(400, "owner and repo are required")

// --- Request DTOs ---

// createWebhookReq accepts both {owner, repo} and the {repoOwner, repoName}
// shape the dashboard sends.
type createWebhookReq struct {
	Owner     string `json:"owner"`
	Repo      string `json:"repo"`
	RepoOwner string `json:"repoOwner"`
	RepoName  string `json:"repoName"`
}

func (r *createWebhookReq) validate() error {
	if r.Owner == "" {
		r.Owner = r.RepoOwner
	}
	if r.Repo == "" {
		r.Repo = r.RepoName
	}
	if strings.TrimSpace(r.Owner) == "" || strings.TrimSpace(r.Repo) == "" {
		return errMissingRepository
	}
	return nil
}

func (r createWebhookReq) toInput() registration.CreateWebhookInput {
	return registration.CreateWebhookInput{Owner: r.Owner, Repo: r.Repo}
}

// ---

type checkWebhookReq struct {
	RepoOwner  string `json:"repoOwner"`
	RepoName   string `json:"repoName"`
	WebhookURL string `json:"webhookUrl"`
}

func (r checkWebhookReq) validate() error {
	if strings.TrimSpace(r.RepoOwner) == "" || strings.TrimSpace(r.RepoName) == "" {
		return errMissingRepository
	}
	return nil
}

func (r checkWebhookReq) toInput() registration.CheckWebhookInput {
	return registration.CheckWebhookInput{Owner: r.RepoOwner, Repo: r.RepoName, WebhookURL: r.WebhookURL}
}

// --- Response DTOs ---

type createWebhookResp struct {
	Owner  string `json:"owner"`
	Repo   string `json:"repo"`
	HookID int64  `json:"hook_id"`
}

func (h *handler) newCreateWebhookResp(o registration.CreateWebhookOutput) createWebhookResp {
	return createWebhookResp{Owner: o.Owner, Repo: o.Repo, HookID: o.HookID}
}

type checkWebhookResp struct {
	Exists bool `json:"exists"`
}

func (h *handler) newCheckWebhookResp(o registration.CheckWebhookOutput) checkWebhookResp {
	return checkWebhookResp{Exists: o.Exists}
}
