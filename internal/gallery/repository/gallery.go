package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	galleryerrors "tripora/internal/gallery/errors"
	"tripora/pkg/config"
	"tripora/pkg/model"
)

const (
	CollectionName = "Gallery"
)

type mongoGalleryRepository struct {
	cfg        *config.Config
	db         *mongo.Database
	collection *mongo.Collection
}

type GalleryRepository interface {
	Create(ctx context.Context, image *model.GalleryImage) error
	FindByID(ctx context.Context, id string) (*model.GalleryImage, error)
	FindAll(ctx context.Context, category string, limit int, offset int64) ([]*model.GalleryImage, error)
	Count(ctx context.Context, category string) (int64, error)
	Update(ctx context.Context, id string, set bson.M) error
	Delete(ctx context.Context, id string) error
}

func NewMongoGalleryRepository(cfg *config.Config) GalleryRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoGalleryRepository{
		cfg:        cfg,
		db:         db,
		collection: db.Collection(CollectionName),
	}
}

func (r *mongoGalleryRepository) Create(ctx context.Context, image *model.GalleryImage) error {
	image.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	result, err := r.collection.InsertOne(ctx, image)
	if err != nil {
		return fmt.Errorf("failed to create gallery image: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		image.ID = oid.Hex()
	}
	return nil
}

func (r *mongoGalleryRepository) FindByID(ctx context.Context, id string) (*model.GalleryImage, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", galleryerrors.ErrInvalidID, id)
	}

	var image model.GalleryImage
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&image)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, galleryerrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find gallery image: %w", err)
	}

	return &image, nil
}

func buildGalleryFilter(category string) bson.M {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	return filter
}

func (r *mongoGalleryRepository) FindAll(ctx context.Context, category string, limit int, offset int64) ([]*model.GalleryImage, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "order", Value: 1}, {Key: "created_at", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(offset)

	cursor, err := r.collection.Find(ctx, buildGalleryFilter(category), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find gallery images: %w", err)
	}
	defer cursor.Close(ctx)

	var images []*model.GalleryImage
	if err = cursor.All(ctx, &images); err != nil {
		return nil, fmt.Errorf("failed to decode gallery images: %w", err)
	}

	return images, nil
}

func (r *mongoGalleryRepository) Count(ctx context.Context, category string) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, buildGalleryFilter(category))
	if err != nil {
		return 0, fmt.Errorf("failed to count gallery images: %w", err)
	}

	return count, nil
}

func (r *mongoGalleryRepository) Update(ctx context.Context, id string, set bson.M) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", galleryerrors.ErrInvalidID, id)
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update gallery image: %w", err)
	}

	if result.MatchedCount == 0 {
		return galleryerrors.ErrNotFound
	}

	return nil
}

func (r *mongoGalleryRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", galleryerrors.ErrInvalidID, id)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("failed to delete gallery image: %w", err)
	}

	if result.DeletedCount == 0 {
		return galleryerrors.ErrNotFound
	}

	return nil
}
