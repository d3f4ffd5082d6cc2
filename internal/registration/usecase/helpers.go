package usecase

import (
	"crypto/rand"
	"encoding/hex"
	"strings"

	"pr-review-relay/internal/registration"
)

const secretBytes = 32

// generateSecret returns a 64-char hex webhook secret.
func generateSecret() (string, error) {
	b := make([]byte, secretBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func normalizeRepo(owner, repo string) (string, string, error) {
	owner = strings.TrimSpace(owner)
	repo = strings.TrimSpace(repo)
	if owner == "" || repo == "" || strings.Contains(owner, "/") || strings.Contains(repo, "/") {
		return "", "", registration.ErrInvalidRepository
	}
	return owner, repo, nil
}

func sameURL(a, b string) bool {
	return strings.EqualFold(strings.TrimRight(a, "/"), strings.TrimRight(b, "/"))
}
