package service

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson"

	galleryerrors "tripora/internal/gallery/errors"
	"tripora/internal/gallery/repository"
	"tripora/pkg/config"
	apperrors "tripora/pkg/errors"
	"tripora/pkg/model"
	"tripora/pkg/sanitizer"
	"tripora/pkg/validation"
)

// FileStore abstracts the disk store for tests.
type FileStore interface {
	Save(r io.Reader) (string, error)
	Remove(name string) error
}

// Upload carries the multipart fields of a gallery upload.
type Upload struct {
	File        io.Reader
	Category    string
	Caption     string
	Destination string
	Order       int
}

type GalleryService interface {
	Upload(ctx context.Context, upload *Upload) (*model.GalleryImage, error)
	GetByID(ctx context.Context, id string) (*model.GalleryImage, error)
	GetAll(ctx context.Context, category string, limit int, offset int64) ([]*model.GalleryImage, int64, error)
	Update(ctx context.Context, id string, updates *model.GalleryImageUpdate) (*model.GalleryImage, error)
	Delete(ctx context.Context, id string) error
}

type galleryService struct {
	repo      repository.GalleryRepository
	files     FileStore
	validator *validation.Validator
	cfg       *config.Config
}

func NewGalleryService(repo repository.GalleryRepository, files FileStore, validator *validation.Validator, cfg *config.Config) GalleryService {
	return &galleryService{
		repo:      repo,
		files:     files,
		validator: validator,
		cfg:       cfg,
	}
}

// Upload stores the binary first, then the record; a failed insert rolls
// the file back so the upload directory cannot accumulate orphans.
func (s *galleryService) Upload(ctx context.Context, upload *Upload) (*model.GalleryImage, error) {
	name, err := s.files.Save(upload.File)
	if err != nil {
		if errors.Is(err, galleryerrors.ErrUnsupportedType) {
			return nil, apperrors.ValidationFailed([]apperrors.FieldError{
				{Field: "image", Message: "File must be a JPEG, PNG, GIF or WebP image"},
			})
		}
		s.cfg.Log.Error("Failed to store gallery upload", "error", err)
		return nil, apperrors.Internal("Failed to store uploaded image", err)
	}

	image := &model.GalleryImage{
		URL:         path.Join("/uploads", name),
		Category:    sanitizer.NormalizeCategory(upload.Category),
		Caption:     sanitizer.TrimAndNormalize(upload.Caption),
		Destination: sanitizer.NormalizeDestination(upload.Destination),
		Order:       upload.Order,
	}

	if err := s.validator.Check(image); err != nil {
		s.removeFile(name)
		return nil, err
	}

	if err := s.repo.Create(ctx, image); err != nil {
		s.removeFile(name)
		s.cfg.Log.Error("Failed to create gallery image", "error", err)
		return nil, apperrors.Internal("Failed to create gallery image", err)
	}

	s.cfg.Log.Info("Gallery image uploaded", "id", image.ID, "url", image.URL, "category", image.Category)
	return image, nil
}

func (s *galleryService) GetByID(ctx context.Context, id string) (*model.GalleryImage, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Gallery image ID cannot be empty")
	}

	image, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateLookupError(err)
	}

	return image, nil
}

func (s *galleryService) GetAll(ctx context.Context, category string, limit int, offset int64) ([]*model.GalleryImage, int64, error) {
	category = sanitizer.NormalizeCategory(category)

	var count int64
	var images []*model.GalleryImage
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.repo.Count(ctx, category)
		if errCount != nil {
			s.cfg.Log.Error("Failed to count gallery images", "error", errCount)
			errCount = apperrors.Internal("Failed to count gallery images", errCount)
		}
	}()

	go func() {
		defer wg.Done()
		images, errFind = s.repo.FindAll(ctx, category, limit, offset)
		if errFind != nil {
			s.cfg.Log.Error("Failed to list gallery images", "error", errFind)
			errFind = apperrors.Internal("Failed to retrieve gallery images", errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	if images == nil {
		images = []*model.GalleryImage{}
	}
	return images, count, nil
}

func (s *galleryService) Update(ctx context.Context, id string, updates *model.GalleryImageUpdate) (*model.GalleryImage, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Gallery image ID cannot be empty")
	}

	if err := s.validator.Check(updates); err != nil {
		return nil, err
	}

	set := buildUpdateSet(updates)
	if len(set) == 0 {
		return nil, apperrors.InvalidInput("No fields supplied for update")
	}

	if err := s.repo.Update(ctx, id, set); err != nil {
		return nil, translateLookupError(err)
	}

	image, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateLookupError(err)
	}

	s.cfg.Log.Info("Gallery image updated", "id", id)
	return image, nil
}

// Delete removes the record and then the binary. The file removal is
// best-effort once the record is gone.
func (s *galleryService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Gallery image ID cannot be empty")
	}

	image, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return translateLookupError(err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return translateLookupError(err)
	}

	if name := strings.TrimPrefix(image.URL, "/uploads/"); name != image.URL {
		s.removeFile(name)
	}

	s.cfg.Log.Info("Gallery image deleted", "id", id)
	return nil
}

func (s *galleryService) removeFile(name string) {
	if err := s.files.Remove(name); err != nil {
		s.cfg.Log.Warn("Failed to remove gallery file", "file", name, "error", err)
	}
}

func buildUpdateSet(u *model.GalleryImageUpdate) bson.M {
	set := bson.M{}
	if u.Category != nil {
		set["category"] = sanitizer.NormalizeCategory(*u.Category)
	}
	if u.Caption != nil {
		set["caption"] = sanitizer.TrimAndNormalize(*u.Caption)
	}
	if u.Destination != nil {
		set["destination"] = sanitizer.NormalizeDestination(*u.Destination)
	}
	if u.Order != nil {
		set["order"] = *u.Order
	}
	return set
}

func translateLookupError(err error) error {
	if errors.Is(err, galleryerrors.ErrNotFound) {
		return apperrors.NotFound("Gallery image")
	}
	if errors.Is(err, galleryerrors.ErrInvalidID) {
		return apperrors.InvalidInput("Invalid gallery image ID format")
	}
	return apperrors.Internal("Gallery store operation failed", err)
}
