package main

import (
	authhandler "tripora/internal/auth/handler"
	authservice "tripora/internal/auth/service"
	"tripora/internal/auth/token"
	bookingshandler "tripora/internal/bookings/handler"
	bookingsrepository "tripora/internal/bookings/repository"
	bookingsservice "tripora/internal/bookings/service"
	"tripora/internal/events"
	galleryhandler "tripora/internal/gallery/handler"
	galleryrepository "tripora/internal/gallery/repository"
	galleryservice "tripora/internal/gallery/service"
	"tripora/internal/gallery/storage"
	inquirieshandler "tripora/internal/inquiries/handler"
	inquiriesrepository "tripora/internal/inquiries/repository"
	inquiriesservice "tripora/internal/inquiries/service"
	"tripora/internal/mail"
	newsletterhandler "tripora/internal/newsletter/handler"
	newsletterrepository "tripora/internal/newsletter/repository"
	newsletterservice "tripora/internal/newsletter/service"
	packageshandler "tripora/internal/packages/handler"
	packagesrepository "tripora/internal/packages/repository"
	packagesservice "tripora/internal/packages/service"
	usersrepository "tripora/internal/users/repository"
	"tripora/pkg/app"
	"tripora/pkg/config"
	"tripora/pkg/middleware"
	"tripora/pkg/validation"
)

const ServiceName = "api"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	cfg.Log.Info("Starting Tripora API")

	validator := validation.New(cfg.Log)
	tokens := token.NewService(cfg.JWTSecret, cfg.JWTExpiry)
	auth := middleware.NewAuthenticator(tokens, cfg.Log)

	notifier := mail.NewDispatcher(cfg)
	producer := events.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic, cfg.Log)

	files, err := storage.NewDiskStore(cfg.UploadDir)
	if err != nil {
		cfg.Log.Fatal("Failed to initialize upload storage", "error", err)
	}

	packageRepo := packagesrepository.NewMongoPackageRepository(cfg)
	bookingRepo := bookingsrepository.NewMongoBookingRepository(cfg)
	inquiryRepo := inquiriesrepository.NewMongoInquiryRepository(cfg)
	galleryRepo := galleryrepository.NewMongoGalleryRepository(cfg)
	newsletterRepo := newsletterrepository.NewMongoNewsletterRepository(cfg)
	userRepo := usersrepository.NewMongoUserRepository(cfg)

	packageService := packagesservice.NewPackageService(packageRepo, validator, cfg)
	bookingService := bookingsservice.NewBookingService(bookingRepo, packageRepo, notifier, producer, validator, cfg)
	inquiryService := inquiriesservice.NewInquiryService(inquiryRepo, packageRepo, notifier, producer, validator, cfg)
	galleryService := galleryservice.NewGalleryService(galleryRepo, files, validator, cfg)
	newsletterService := newsletterservice.NewNewsletterService(newsletterRepo, validator, cfg)
	authService := authservice.NewAuthService(userRepo, tokens, cfg)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(producer,
		packageshandler.NewPackageHandler(packageService, auth, cfg.Log),
		bookingshandler.NewBookingHandler(bookingService, auth, cfg.Log),
		inquirieshandler.NewInquiryHandler(inquiryService, auth, cfg.Log),
		galleryhandler.NewGalleryHandler(galleryService, auth, cfg),
		newsletterhandler.NewNewsletterHandler(newsletterService, cfg.Log),
		authhandler.NewAuthHandler(authService, auth, cfg.Log),
	)
	serverApp.Run()
}
