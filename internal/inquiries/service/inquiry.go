package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"tripora/internal/events"
	inquirieserrors "tripora/internal/inquiries/errors"
	"tripora/internal/inquiries/repository"
	"tripora/internal/mail"
	packageserrors "tripora/internal/packages/errors"
	"tripora/pkg/config"
	apperrors "tripora/pkg/errors"
	"tripora/pkg/model"
	"tripora/pkg/sanitizer"
	"tripora/pkg/validation"
)

const sideEffectTimeout = 30 * time.Second

// PackageResolver resolves the optional packageId on an inquiry.
type PackageResolver interface {
	FindByID(ctx context.Context, id string) (*model.Package, error)
}

type Notifier interface {
	Send(kind mail.Kind, data mail.Data) mail.Result
}

type EventPublisher interface {
	Publish(ctx context.Context, eventType, key string, payload any) error
}

type InquiryService interface {
	Create(ctx context.Context, inquiry *model.Inquiry) error
	GetByID(ctx context.Context, id string) (*model.Inquiry, error)
	GetAll(ctx context.Context, limit int, offset int64) ([]*model.Inquiry, int64, error)
	UpdateStatus(ctx context.Context, id string, status string) (*model.InquiryWithPackage, error)
}

type inquiryService struct {
	repo      repository.InquiryRepository
	packages  PackageResolver
	notifier  Notifier
	publisher EventPublisher
	validator *validation.Validator
	cfg       *config.Config
}

func NewInquiryService(
	repo repository.InquiryRepository,
	packages PackageResolver,
	notifier Notifier,
	publisher EventPublisher,
	validator *validation.Validator,
	cfg *config.Config,
) InquiryService {
	return &inquiryService{
		repo:      repo,
		packages:  packages,
		notifier:  notifier,
		publisher: publisher,
		validator: validator,
		cfg:       cfg,
	}
}

func (s *inquiryService) Create(ctx context.Context, inquiry *model.Inquiry) error {
	s.sanitize(inquiry)
	if inquiry.Status == "" {
		inquiry.Status = model.InquiryStatusNew
	}

	// packageId is optional; when present it must reference a real package
	var pkg *model.Package
	if inquiry.PackageID != "" {
		resolved, err := s.resolvePackage(ctx, inquiry.PackageID)
		if err != nil {
			return err
		}
		pkg = resolved
	}

	if err := s.validator.Check(inquiry); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, inquiry); err != nil {
		s.cfg.Log.Error("Failed to create inquiry", "error", err)
		return apperrors.Internal("Failed to create inquiry", err)
	}

	s.cfg.Log.Info("Inquiry created successfully", "id", inquiry.ID, "package_id", inquiry.PackageID)

	created := *inquiry
	go s.dispatchSideEffects(&created, pkg)

	return nil
}

func (s *inquiryService) dispatchSideEffects(inquiry *model.Inquiry, pkg *model.Package) {
	ctx, cancel := context.WithTimeout(context.Background(), sideEffectTimeout)
	defer cancel()

	data := mail.Data{Inquiry: inquiry, Package: pkg}

	if result := s.notifier.Send(mail.KindInquiryAck, data); !result.Success {
		s.cfg.Log.Warn("Inquiry acknowledgement email failed", "inquiry_id", inquiry.ID, "error", result.Err)
	}
	if result := s.notifier.Send(mail.KindInquiryAlert, data); !result.Success {
		s.cfg.Log.Warn("Inquiry alert email failed", "inquiry_id", inquiry.ID, "error", result.Err)
	}

	if err := s.publisher.Publish(ctx, events.TypeInquiryCreated, inquiry.ID, inquiry); err != nil {
		s.cfg.Log.Warn("Inquiry event publish failed", "inquiry_id", inquiry.ID, "error", err)
	}
}

func (s *inquiryService) GetByID(ctx context.Context, id string) (*model.Inquiry, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Inquiry ID cannot be empty")
	}

	inquiry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateLookupError(err)
	}

	return inquiry, nil
}

func (s *inquiryService) GetAll(ctx context.Context, limit int, offset int64) ([]*model.Inquiry, int64, error) {
	var count int64
	var inquiries []*model.Inquiry
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.repo.Count(ctx)
		if errCount != nil {
			s.cfg.Log.Error("Failed to count inquiries", "error", errCount)
			errCount = apperrors.Internal("Failed to count inquiries", errCount)
		}
	}()

	go func() {
		defer wg.Done()
		inquiries, errFind = s.repo.FindAll(ctx, limit, offset)
		if errFind != nil {
			s.cfg.Log.Error("Failed to list inquiries", "error", errFind)
			errFind = apperrors.Internal("Failed to retrieve inquiries", errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	if inquiries == nil {
		inquiries = []*model.Inquiry{}
	}
	return inquiries, count, nil
}

// UpdateStatus transitions the inquiry and returns it together with the
// referenced package summary so the admin view needs no second lookup.
func (s *inquiryService) UpdateStatus(ctx context.Context, id string, status string) (*model.InquiryWithPackage, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Inquiry ID cannot be empty")
	}
	if !model.IsValidInquiryStatus(status) {
		return nil, apperrors.InvalidStatus(status, model.InquiryStatuses)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, translateLookupError(err)
	}

	inquiry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateLookupError(err)
	}

	result := &model.InquiryWithPackage{Inquiry: *inquiry}
	if inquiry.PackageID != "" {
		// A dangling reference is tolerated here, the summary is best-effort
		pkg, err := s.packages.FindByID(ctx, inquiry.PackageID)
		if err != nil {
			s.cfg.Log.Warn("Failed to resolve inquiry package", "inquiry_id", id, "package_id", inquiry.PackageID, "error", err)
		} else {
			result.Package = pkg.Summary()
		}
	}

	s.cfg.Log.Info("Inquiry status updated", "id", id, "status", status)
	return result, nil
}

func (s *inquiryService) sanitize(i *model.Inquiry) {
	i.Name = sanitizer.NormalizeName(i.Name)
	i.Email = sanitizer.NormalizeEmail(i.Email)
	i.Message = sanitizer.TrimAndNormalize(i.Message)
}

func (s *inquiryService) resolvePackage(ctx context.Context, packageID string) (*model.Package, error) {
	pkg, err := s.packages.FindByID(ctx, packageID)
	if err != nil {
		if errors.Is(err, packageserrors.ErrNotFound) {
			return nil, apperrors.NotFound("Package")
		}
		if errors.Is(err, packageserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid package ID format")
		}
		return nil, apperrors.Internal("Failed to resolve package", err)
	}

	return pkg, nil
}

func translateLookupError(err error) error {
	if errors.Is(err, inquirieserrors.ErrNotFound) {
		return apperrors.NotFound("Inquiry")
	}
	if errors.Is(err, inquirieserrors.ErrInvalidID) {
		return apperrors.InvalidInput("Invalid inquiry ID format")
	}
	return apperrors.Internal("Inquiry store operation failed", err)
}
