package service

import (
	"context"
	"errors"
	"sync"
	"time"

	bookingserrors "tripora/internal/bookings/errors"
	"tripora/internal/bookings/repository"
	"tripora/internal/events"
	"tripora/internal/mail"
	packageserrors "tripora/internal/packages/errors"
	"tripora/pkg/config"
	apperrors "tripora/pkg/errors"
	"tripora/pkg/model"
	"tripora/pkg/sanitizer"
	"tripora/pkg/validation"
)

// sideEffectTimeout bounds the detached notification/event work spawned
// after a successful create; it is independent of the request context.
const sideEffectTimeout = 30 * time.Second

// PackageResolver is the slice of the package repository booking creation
// needs: resolve packageId or fail the create with 404.
type PackageResolver interface {
	FindByID(ctx context.Context, id string) (*model.Package, error)
}

// Notifier abstracts the mail dispatcher for tests.
type Notifier interface {
	Send(kind mail.Kind, data mail.Data) mail.Result
}

// EventPublisher abstracts the Kafka producer for tests.
type EventPublisher interface {
	Publish(ctx context.Context, eventType, key string, payload any) error
}

type BookingService interface {
	Create(ctx context.Context, booking *model.Booking) error
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	GetAll(ctx context.Context, limit int, offset int64) ([]*model.Booking, int64, error)
	UpdateStatus(ctx context.Context, id string, status string) (*model.Booking, error)
}

type bookingService struct {
	repo      repository.BookingRepository
	packages  PackageResolver
	notifier  Notifier
	publisher EventPublisher
	validator *validation.Validator
	cfg       *config.Config
}

func NewBookingService(
	repo repository.BookingRepository,
	packages PackageResolver,
	notifier Notifier,
	publisher EventPublisher,
	validator *validation.Validator,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:      repo,
		packages:  packages,
		notifier:  notifier,
		publisher: publisher,
		validator: validator,
		cfg:       cfg,
	}
}

func (s *bookingService) Create(ctx context.Context, booking *model.Booking) error {
	s.sanitize(booking)
	if booking.Status == "" {
		booking.Status = model.BookingStatusPending
	}

	// packageId must resolve before anything else; an unknown package is
	// a 404, not a validation failure
	pkg, err := s.resolvePackage(ctx, booking.PackageID)
	if err != nil {
		return err
	}

	if err := s.validator.Check(booking); err != nil {
		return err
	}

	if booking.TotalPrice == 0 && pkg.Price != nil {
		booking.TotalPrice = *pkg.Price * float64(booking.NumberOfTravelers)
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		s.cfg.Log.Error("Failed to create booking", "error", err)
		return apperrors.Internal("Failed to create booking", err)
	}

	s.cfg.Log.Info("Booking created successfully",
		"id", booking.ID,
		"package_id", booking.PackageID,
		"travel_date", booking.TravelDate,
	)

	// The persisted record is the source of truth; notification and event
	// delivery are best-effort and never fail the create
	created := *booking
	resolved := *pkg
	go s.dispatchSideEffects(&created, &resolved)

	return nil
}

func (s *bookingService) dispatchSideEffects(booking *model.Booking, pkg *model.Package) {
	ctx, cancel := context.WithTimeout(context.Background(), sideEffectTimeout)
	defer cancel()

	data := mail.Data{Booking: booking, Package: pkg}

	if result := s.notifier.Send(mail.KindBookingConfirmation, data); !result.Success {
		s.cfg.Log.Warn("Booking confirmation email failed", "booking_id", booking.ID, "error", result.Err)
	}
	if result := s.notifier.Send(mail.KindBookingAlert, data); !result.Success {
		s.cfg.Log.Warn("Booking alert email failed", "booking_id", booking.ID, "error", result.Err)
	}

	if err := s.publisher.Publish(ctx, events.TypeBookingCreated, booking.ID, booking); err != nil {
		s.cfg.Log.Warn("Booking event publish failed", "booking_id", booking.ID, "error", err)
	}
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateLookupError(err)
	}

	return booking, nil
}

func (s *bookingService) GetAll(ctx context.Context, limit int, offset int64) ([]*model.Booking, int64, error) {
	var count int64
	var bookings []*model.Booking
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.repo.Count(ctx)
		if errCount != nil {
			s.cfg.Log.Error("Failed to count bookings", "error", errCount)
			errCount = apperrors.Internal("Failed to count bookings", errCount)
		}
	}()

	go func() {
		defer wg.Done()
		bookings, errFind = s.repo.FindAll(ctx, limit, offset)
		if errFind != nil {
			s.cfg.Log.Error("Failed to list bookings", "error", errFind)
			errFind = apperrors.Internal("Failed to retrieve bookings", errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	if bookings == nil {
		bookings = []*model.Booking{}
	}
	return bookings, count, nil
}

// UpdateStatus is a flat set-membership check, not a guarded transition
// graph: any status in the set may move to any other, including away from
// terminal-looking states.
func (s *bookingService) UpdateStatus(ctx context.Context, id string, status string) (*model.Booking, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}
	if !model.IsValidBookingStatus(status) {
		return nil, apperrors.InvalidStatus(status, model.BookingStatuses)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, translateLookupError(err)
	}

	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateLookupError(err)
	}

	s.cfg.Log.Info("Booking status updated", "id", id, "status", status)
	return booking, nil
}

func (s *bookingService) sanitize(b *model.Booking) {
	b.CustomerName = sanitizer.NormalizeName(b.CustomerName)
	b.Email = sanitizer.NormalizeEmail(b.Email)
}

func (s *bookingService) resolvePackage(ctx context.Context, packageID string) (*model.Package, error) {
	if packageID == "" {
		return nil, apperrors.ValidationFailed([]apperrors.FieldError{
			{Field: "packageId", Message: "packageId is required"},
		})
	}

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
	if errors.Is(err, bookingserrors.ErrNotFound) {
		return apperrors.NotFound("Booking")
	}
	if errors.Is(err, bookingserrors.ErrInvalidID) {
		return apperrors.InvalidInput("Invalid booking ID format")
	}
	return apperrors.Internal("Booking store operation failed", err)
}
