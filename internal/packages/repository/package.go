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

	packageserrors "tripora/internal/packages/errors"
	"tripora/pkg/config"
	"tripora/pkg/model"
)

const (
	CollectionName = "Packages"
)

type mongoPackageRepository struct {
	cfg        *config.Config
	db         *mongo.Database
	collection *mongo.Collection
}

type PackageRepository interface {
	Create(ctx context.Context, pkg *model.Package) error
	FindByID(ctx context.Context, id string) (*model.Package, error)
	FindAll(ctx context.Context, filter *model.PackageFilter, limit int, offset int64) ([]*model.Package, error)
	Count(ctx context.Context, filter *model.PackageFilter) (int64, error)
	Update(ctx context.Context, id string, set bson.M) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id string) error
}

func NewMongoPackageRepository(cfg *config.Config) PackageRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoPackageRepository{
		cfg:        cfg,
		db:         db,
		collection: db.Collection(CollectionName),
	}
}

func (r *mongoPackageRepository) Create(ctx context.Context, pkg *model.Package) error {
	pkg.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	result, err := r.collection.InsertOne(ctx, pkg)
	if err != nil {
		return fmt.Errorf("failed to create package: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		pkg.ID = oid.Hex()
	}
	return nil
}

func (r *mongoPackageRepository) FindByID(ctx context.Context, id string) (*model.Package, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", packageserrors.ErrInvalidID, id)
	}

	var pkg model.Package
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&pkg)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, packageserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find package: %w", err)
	}

	return &pkg, nil
}

func (r *mongoPackageRepository) FindAll(ctx context.Context, filter *model.PackageFilter, limit int, offset int64) ([]*model.Package, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "featured", Value: -1}, {Key: "created_at", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(offset)

	cursor, err := r.collection.Find(ctx, buildPackageFilter(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find packages: %w", err)
	}
	defer cursor.Close(ctx)

	var packages []*model.Package
	if err = cursor.All(ctx, &packages); err != nil {
		return nil, fmt.Errorf("failed to decode packages: %w", err)
	}

	return packages, nil
}

func (r *mongoPackageRepository) Count(ctx context.Context, filter *model.PackageFilter) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, buildPackageFilter(filter))
	if err != nil {
		return 0, fmt.Errorf("failed to count packages: %w", err)
	}
	return count, nil
}

func (r *mongoPackageRepository) Update(ctx context.Context, id string, set bson.M) (*mongo.UpdateResult, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", packageserrors.ErrInvalidID, id)
	}

	set["updated_at"] = time.Now().UTC().Truncate(time.Millisecond)
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("failed to update package: %w", err)
	}

	if result.MatchedCount == 0 {
		return nil, packageserrors.ErrNotFound
	}

	return result, nil
}

func (r *mongoPackageRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", packageserrors.ErrInvalidID, id)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("failed to delete package: %w", err)
	}

	if result.DeletedCount == 0 {
		return packageserrors.ErrNotFound
	}

	return nil
}

func buildPackageFilter(f *model.PackageFilter) bson.M {
	filter := bson.M{}
	if f == nil {
		return filter
	}

	if f.Destination != "" {
		filter["destination"] = bson.M{"$regex": f.Destination, "$options": "i"}
	}

	price := bson.M{}
	if f.MinPrice != nil {
		price["$gte"] = *f.MinPrice
	}
	if f.MaxPrice != nil {
		price["$lte"] = *f.MaxPrice
	}
	if len(price) > 0 {
		filter["price"] = price
	}

	duration := bson.M{}
	if f.MinDuration != nil {
		duration["$gte"] = *f.MinDuration
	}
	if f.MaxDuration != nil {
		duration["$lte"] = *f.MaxDuration
	}
	if len(duration) > 0 {
		filter["duration"] = duration
	}

	if f.Featured != nil {
		filter["featured"] = *f.Featured
	}

	return filter
}
