package app

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/staylodge/staylodge-backend/internal/api"
	"github.com/staylodge/staylodge-backend/internal/auth"
	"github.com/staylodge/staylodge-backend/internal/booking"
	"github.com/staylodge/staylodge-backend/internal/config"
	"github.com/staylodge/staylodge-backend/internal/lock"
	"github.com/staylodge/staylodge-backend/internal/logger"
	"github.com/staylodge/staylodge-backend/internal/notify"
	"github.com/staylodge/staylodge-backend/internal/payment"
	"github.com/staylodge/staylodge-backend/internal/pkg/clock"
	"github.com/staylodge/staylodge-backend/internal/pkg/storage"
	"github.com/staylodge/staylodge-backend/internal/pricing"
	"github.com/staylodge/staylodge-backend/internal/property"
	"github.com/staylodge/staylodge-backend/internal/rate"
	"github.com/staylodge/staylodge-backend/internal/report"
	"github.com/staylodge/staylodge-backend/internal/review"
	"github.com/staylodge/staylodge-backend/internal/room"
	"github.com/staylodge/staylodge-backend/internal/sweeper"
	"github.com/staylodge/staylodge-backend/internal/user"
)

// Container holds the initialized components that are needed externally.
type Container struct {
	Router   *gin.Engine
	Sweeper  *sweeper.Sweeper
	Producer *notify.EventProducer
}

// NewContainer wires every module together from leaf to root.
func NewContainer(cfg *config.Config, pool *pgxpool.Pool, redisClient *redis.Client, log *logger.Logger) (*Container, error) {
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTAccessTokenTTL)
	clk := clock.Real{}

	files, err := storage.NewLocalStorage(cfg.StoragePath)
	if err != nil {
		return nil, err
	}
	imageProcessor := storage.NewImageProcessor()

	// User module
	userRepo := user.NewPgxRepository(pool)
	userService := user.NewService(userRepo, passwordHasher)

	// Property module
	propertyRepo := property.NewPgxRepository(pool)
	propertyService := property.NewService(propertyRepo)

	// Room module
	roomRepo := room.NewPgxRepository(pool)
	roomService := room.NewService(roomRepo, propertyService)

	// Peak season rate module
	rateRepo := rate.NewPgxRepository(pool)
	rateService := rate.NewService(rateRepo, propertyService, roomService)

	// Pricing
	pricingService := pricing.NewService(roomService, rateRepo)

	// Booking module and its collaborators
	gateway := payment.NewGatewayClient(cfg.GatewayBaseURL, cfg.GatewayServerKey)
	roomLocker := lock.NewRedisRoomLocker(redisClient)
	mailer := notify.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
	producer := notify.NewEventProducer(cfg.KafkaBrokers, cfg.KafkaBookingTopic)
	notifier := notify.NewNotifier(mailer, producer)

	bookingRepo := booking.NewPgxRepository(pool)
	bookingService := booking.NewService(
		bookingRepo, roomService, propertyService, pricingService,
		gateway, roomLocker, notifier, clk, log, cfg.PaymentWindow,
	)

	// Payment webhook reconciliation
	paymentService := payment.NewService(bookingService, cfg.GatewayServerKey, log)

	// Review module
	reviewRepo := review.NewPgxRepository(pool)
	reviewService := review.NewService(reviewRepo, bookingRepo, clk)

	// Tenant reporting
	reportRepo := report.NewPgxRepository(pool)

	router := api.NewRouter(api.Config{
		IsProduction:    cfg.IsProduction,
		ProdOrigins:     cfg.ProdOrigins,
		StoragePath:     cfg.StoragePath,
		UserService:     userService,
		PropertyService: propertyService,
		RoomService:     roomService,
		RateService:     rateService,
		BookingService:  bookingService,
		PaymentService:  paymentService,
		ReviewService:   reviewService,
		ReportRepo:      reportRepo,
		Files:           files,
		ImageProcessor:  imageProcessor,
		JWTManager:      jwtManager,
	})

	return &Container{
		Router:   router,
		Sweeper:  sweeper.New(bookingService, cfg.SweepInterval, log),
		Producer: producer,
	}, nil
}
