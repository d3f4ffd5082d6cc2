package registration

// CreateWebhookInput identifies the repository to register.
type CreateWebhookInput struct {
	Owner string
	Repo  string
}

// CreateWebhookOutput never carries the secret.
type CreateWebhookOutput struct {
	Owner  string
	Repo   string
	HookID int64
}

// CheckWebhookInput asks whether a hook pointing at WebhookURL exists.
// An empty WebhookURL means the configured relay URL.
type CheckWebhookInput struct {
	Owner      string
	Repo       string
	WebhookURL string
}

type CheckWebhookOutput struct {
	Exists bool
}
