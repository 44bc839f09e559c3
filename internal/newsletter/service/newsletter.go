package service

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"tripora/internal/newsletter/repository"
	"tripora/pkg/config"
	apperrors "tripora/pkg/errors"
	"tripora/pkg/model"
	"tripora/pkg/sanitizer"
	"tripora/pkg/validation"
)

type NewsletterService interface {
	Subscribe(ctx context.Context, subscriber *model.NewsletterSubscriber) error
}

type newsletterService struct {
	repo      repository.NewsletterRepository
	validator *validation.Validator
	cfg       *config.Config
}

func NewNewsletterService(repo repository.NewsletterRepository, validator *validation.Validator, cfg *config.Config) NewsletterService {
	return &newsletterService{
		repo:      repo,
		validator: validator,
		cfg:       cfg,
	}
}

// Subscribe records the email. A duplicate subscribe is an idempotent
// success, the caller cannot tell the two apart.
func (s *newsletterService) Subscribe(ctx context.Context, subscriber *model.NewsletterSubscriber) error {
	subscriber.Email = sanitizer.NormalizeEmail(subscriber.Email)
	if err := s.validator.Check(subscriber); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, subscriber); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			s.cfg.Log.Info("Newsletter subscribe repeated", "email", subscriber.Email)
			return nil
		}
		s.cfg.Log.Error("Failed to create newsletter subscriber", "error", err)
		return apperrors.Internal("Failed to subscribe to newsletter", err)
	}

	s.cfg.Log.Info("Newsletter subscriber added", "email", subscriber.Email)
	return nil
}
