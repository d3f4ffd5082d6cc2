package usecase

import (
	"time"

	"pr-review-relay/internal/registration/repository"
	"pr-review-relay/pkg/github"
	"pr-review-relay/pkg/log"
)

// implUseCase is the private implementation of registration.UseCase.
type implUseCase struct {
	repo       repository.Repository
	gh         github.IFactory
	webhookURL string
	l          log.Logger
	now        func() time.Time
}

// New creates a registration UseCase. webhookURL is the public address
// GitHub delivers pull_request events to.
func New(repo repository.Repository, gh github.IFactory, webhookURL string, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:       repo,
		gh:         gh,
		webhookURL: webhookURL,
		l:          l,
		now:        time.Now,
	}
}
