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

	inquirieserrors "tripora/internal/inquiries/errors"
	"tripora/pkg/config"
	"tripora/pkg/model"
)

const (
	CollectionName = "Inquiries"
)

type mongoInquiryRepository struct {
	cfg        *config.Config
	db         *mongo.Database
	collection *mongo.Collection
}

type InquiryRepository interface {
	Create(ctx context.Context, inquiry *model.Inquiry) error
	FindByID(ctx context.Context, id string) (*model.Inquiry, error)
	FindAll(ctx context.Context, limit int, offset int64) ([]*model.Inquiry, error)
	Count(ctx context.Context) (int64, error)
	UpdateStatus(ctx context.Context, id string, status string) error
}

func NewMongoInquiryRepository(cfg *config.Config) InquiryRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoInquiryRepository{
		cfg:        cfg,
		db:         db,
		collection: db.Collection(CollectionName),
	}
}

func (r *mongoInquiryRepository) Create(ctx context.Context, inquiry *model.Inquiry) error {
	inquiry.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	result, err := r.collection.InsertOne(ctx, inquiry)
	if err != nil {
		return fmt.Errorf("failed to create inquiry: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		inquiry.ID = oid.Hex()
	}
	return nil
}

func (r *mongoInquiryRepository) FindByID(ctx context.Context, id string) (*model.Inquiry, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", inquirieserrors.ErrInvalidID, id)
	}

	var inquiry model.Inquiry
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&inquiry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, inquirieserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find inquiry: %w", err)
	}

	return &inquiry, nil
}

func (r *mongoInquiryRepository) FindAll(ctx context.Context, limit int, offset int64) ([]*model.Inquiry, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(offset)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find inquiries: %w", err)
	}
	defer cursor.Close(ctx)

	var inquiries []*model.Inquiry
	if err = cursor.All(ctx, &inquiries); err != nil {
		return nil, fmt.Errorf("failed to decode inquiries: %w", err)
	}

	return inquiries, nil
}

func (r *mongoInquiryRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count inquiries: %w", err)
	}

	return count, nil
}

func (r *mongoInquiryRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", inquirieserrors.ErrInvalidID, id)
	}

	update := bson.M{
		"$set": bson.M{
			"status":     status,
			"updated_at": time.Now().UTC().Truncate(time.Millisecond),
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return fmt.Errorf("failed to update inquiry status: %w", err)
	}

	if result.MatchedCount == 0 {
		return inquirieserrors.ErrNotFound
	}

	return nil
}
