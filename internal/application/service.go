package application

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"user-management-api/internal/domain/user"
	"user-management-api/internal/infrastructure/cache"
	"user-management-api/internal/infrastructure/search"
	"user-management-api/pkg/helpers"
	"user-management-api/pkg/mailer"
)

// Service orchestrates the user aggregate against the repository and token
// service ports. Cache, search, and the mail publisher are optional; a nil
// handle disables the corresponding side effect.
type Service struct {
	Repo   user.Repository
	Tokens TokenService
	Cache  *cache.RedisCache
	Search *search.UserIndex
	Mail   *helpers.RabbitPublisher
	Logger *logrus.Logger
}

func NewService(repo user.Repository, tokens TokenService, c *cache.RedisCache, idx *search.UserIndex, mail *helpers.RabbitPublisher, logger *logrus.Logger) *Service {
	return &Service{
		Repo:   repo,
		Tokens: tokens,
		Cache:  c,
		Search: idx,
		Mail:   mail,
		Logger: logger,
	}
}

func userCacheKey(id user.ID) string {
	return fmt.Sprintf("user:profile:%d", id.Int64())
}

// indexUser pushes the public user document to the search index. Best effort:
// failures are logged and never surfaced to the caller.
func (s *Service) indexUser(ctx context.Context, u *user.User) {
	if s.Search == nil {
		return
	}
	doc := search.UserDocument{
		ID:        u.ID().Int64(),
		Email:     u.Email().String(),
		FirstName: u.Profile().FirstName(),
		LastName:  u.Profile().LastName(),
		Age:       u.Profile().Age(),
		CreatedAt: u.CreatedAt().Format("2006-01-02"),
	}
	if err := s.Search.Index(ctx, doc); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", doc.ID).Warn("user index failed")
	}
}

// enqueueWelcome queues the post-registration welcome email. Best effort.
func (s *Service) enqueueWelcome(ctx context.Context, u *user.User) {
	if s.Mail == nil {
		return
	}
	job := mailer.NewWelcomeJob(u.Email().String(), u.Profile().FirstName())
	if err := s.Mail.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID().Int64()).Warn("welcome email enqueue failed")
	}
}

func (s *Service) invalidateUser(ctx context.Context, id user.ID) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Delete(ctx, userCacheKey(id)); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", id.Int64()).Warn("cache invalidation failed")
	}
}
