package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"tripora/pkg/config"
	"tripora/pkg/model"
)

const (
	CollectionName = "NewsletterSubscribers"
)

type mongoNewsletterRepository struct {
	cfg        *config.Config
	db         *mongo.Database
	collection *mongo.Collection
}

type NewsletterRepository interface {
	Create(ctx context.Context, subscriber *model.NewsletterSubscriber) error
}

func NewMongoNewsletterRepository(cfg *config.Config) NewsletterRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoNewsletterRepository{
		cfg:        cfg,
		db:         db,
		collection: db.Collection(CollectionName),
	}
}

// Create inserts the subscriber. The unique email index makes a repeat
// subscribe surface as a duplicate key error, which the caller treats as
// success.
func (r *mongoNewsletterRepository) Create(ctx context.Context, subscriber *model.NewsletterSubscriber) error {
	subscriber.SubscribedAt = time.Now().UTC().Truncate(time.Millisecond)
	_, err := r.collection.InsertOne(ctx, subscriber)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return err
		}
		return fmt.Errorf("failed to create newsletter subscriber: %w", err)
	}
	return nil
}
