package service

import (
	"context"
	"errors"
	"sync"

	"go.mongodb.org/mongo-driver/bson"

	packageserrors "tripora/internal/packages/errors"
	"tripora/internal/packages/repository"
	"tripora/pkg/config"
	apperrors "tripora/pkg/errors"
	"tripora/pkg/model"
	"tripora/pkg/sanitizer"
	"tripora/pkg/validation"
)

type PackageService interface {
	Create(ctx context.Context, pkg *model.Package) error
	GetByID(ctx context.Context, id string) (*model.Package, error)
	GetAll(ctx context.Context, filter *model.PackageFilter, limit int, offset int64) ([]*model.Package, int64, error)
	Update(ctx context.Context, id string, updates *model.PackageUpdate) (*model.Package, error)
	Delete(ctx context.Context, id string) error
}

type packageService struct {
	repo      repository.PackageRepository
	validator *validation.Validator
	cfg       *config.Config
}

func NewPackageService(repo repository.PackageRepository, validator *validation.Validator, cfg *config.Config) PackageService {
	return &packageService{
		repo:      repo,
		validator: validator,
		cfg:       cfg,
	}
}

func (s *packageService) Create(ctx context.Context, pkg *model.Package) error {
	s.sanitize(pkg)
	pkg.Active = true
	if err := s.validator.Check(pkg); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, pkg); err != nil {
		s.cfg.Log.Error("Failed to create package", "error", err)
		return apperrors.Internal("Failed to create package", err)
	}

	s.cfg.Log.Info("Package created successfully",
		"id", pkg.ID,
		"name", pkg.Name,
		"destination", pkg.Destination,
	)
	return nil
}

func (s *packageService) GetByID(ctx context.Context, id string) (*model.Package, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Package ID cannot be empty")
	}

	pkg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateLookupError(err, id)
	}

	return pkg, nil
}

func (s *packageService) GetAll(ctx context.Context, filter *model.PackageFilter, limit int, offset int64) ([]*model.Package, int64, error) {
	var count int64
	var packages []*model.Package
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.repo.Count(ctx, filter)
		if errCount != nil {
			s.cfg.Log.Error("Failed to count packages", "error", errCount)
			errCount = apperrors.Internal("Failed to count packages", errCount)
		}
	}()

	go func() {
		defer wg.Done()
		packages, errFind = s.repo.FindAll(ctx, filter, limit, offset)
		if errFind != nil {
			s.cfg.Log.Error("Failed to list packages", "error", errFind)
			errFind = apperrors.Internal("Failed to retrieve packages", errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	if packages == nil {
		packages = []*model.Package{}
	}
	return packages, count, nil
}

func (s *packageService) Update(ctx context.Context, id string, updates *model.PackageUpdate) (*model.Package, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Package ID cannot be empty")
	}

	// Only the supplied fields are re-validated
	if err := s.validator.Check(updates); err != nil {
		return nil, err
	}

	set := buildUpdateSet(updates)
	if len(set) == 0 {
		return nil, apperrors.InvalidInput("No fields supplied for update")
	}

	if _, err := s.repo.Update(ctx, id, set); err != nil {
		return nil, translateLookupError(err, id)
	}

	pkg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateLookupError(err, id)
	}

	s.cfg.Log.Info("Package updated successfully", "id", id)
	return pkg, nil
}

func (s *packageService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Package ID cannot be empty")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return translateLookupError(err, id)
	}

	s.cfg.Log.Info("Package deleted successfully", "id", id)
	return nil
}

func (s *packageService) sanitize(pkg *model.Package) {
	pkg.Name = sanitizer.NormalizeName(pkg.Name)
	pkg.Destination = sanitizer.NormalizeDestination(pkg.Destination)
}

func buildUpdateSet(u *model.PackageUpdate) bson.M {
	set := bson.M{}
	if u.Name != nil {
		set["name"] = sanitizer.NormalizeName(*u.Name)
	}
	if u.Destination != nil {
		set["destination"] = sanitizer.NormalizeDestination(*u.Destination)
	}
	if u.Duration != nil {
		set["duration"] = *u.Duration
	}
	if u.Price != nil {
		set["price"] = *u.Price
	}
	if u.Description != nil {
		set["description"] = *u.Description
	}
	if u.Itinerary != nil {
		set["itinerary"] = *u.Itinerary
	}
	if u.Inclusions != nil {
		set["inclusions"] = *u.Inclusions
	}
	if u.Exclusions != nil {
		set["exclusions"] = *u.Exclusions
	}
	if u.Images != nil {
		set["images"] = *u.Images
	}
	if u.Featured != nil {
		set["featured"] = *u.Featured
	}
	if u.Active != nil {
		set["active"] = *u.Active
	}
	return set
}

// translateLookupError maps store-level lookup failures to the API error
// taxonomy. Malformed ids are a 400, not a 500.
func translateLookupError(err error, id string) error {
	if errors.Is(err, packageserrors.ErrNotFound) {
		return apperrors.NotFound("Package")
	}
	if errors.Is(err, packageserrors.ErrInvalidID) {
		return apperrors.InvalidInput("Invalid package ID format")
	}
	return apperrors.Internal("Package store operation failed", err)
}
