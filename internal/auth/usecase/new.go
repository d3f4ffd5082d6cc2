package usecase

import (
	"time"

	"github.com/google/uuid"

	"pr-review-relay/internal/auth/repository"
	"pr-review-relay/pkg/github"
	"pr-review-relay/pkg/log"
)

// implUseCase is the private implementation of auth.UseCase.
type implUseCase struct {
	repo  repository.Repository
	oauth github.IOAuth
	l     log.Logger
	now   func() time.Time
	newID func() string
}

// New creates an auth UseCase.
func New(repo repository.Repository, oauth github.IOAuth, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:  repo,
		oauth: oauth,
		l:     l,
		now:   time.Now,
		newID: uuid.NewString,
	}
}
